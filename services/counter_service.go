package services

import (
	"context"

	"counter-lab/contract"
	"counter-lab/domain"
)

type ICounterService interface {
	Join(ctx context.Context, sessionID, roomID string, sink contract.EventSink) (int64, error)
	Leave(sessionID string, roomID domain.RoomID)
	Disconnect(sessionID string)
	Broadcast(roomID domain.RoomID, value int64)
}

// CounterService is a thin facade over the orchestrator so the transport
// layer depends on a service interface rather than on the runtime package.
type CounterService struct {
	orchestrator contract.IOrchestrator
}

func NewCounterService(o contract.IOrchestrator) *CounterService {
	return &CounterService{orchestrator: o}
}

func (s *CounterService) Join(ctx context.Context, sessionID, roomID string,
	sink contract.EventSink) (int64, error) {
	return s.orchestrator.Join(ctx, sessionID, roomID, sink)
}

func (s *CounterService) Leave(sessionID string, roomID domain.RoomID) {
	s.orchestrator.Leave(sessionID, roomID)
}

func (s *CounterService) Disconnect(sessionID string) {
	s.orchestrator.Disconnect(sessionID)
}

func (s *CounterService) Broadcast(roomID domain.RoomID, value int64) {
	s.orchestrator.Broadcast(roomID, value)
}
