package grpc

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"counter-lab/domain/event"
	"counter-lab/observability"
	pb "counter-lab/proto/counter"
	"counter-lab/services"

	"github.com/google/uuid"
)

type CounterServer struct {
	pb.UnimplementedCounterServiceServer
	counterService       services.ICounterService
	monitoring           *observability.MonitoringManager
	connectionBufferSize int
	log                  *slog.Logger
}

func NewCounterServer(log *slog.Logger, counterService services.ICounterService,
	monitoring *observability.MonitoringManager, connectionBufferSize int) *CounterServer {
	return &CounterServer{
		counterService:       counterService,
		monitoring:           monitoring,
		connectionBufferSize: connectionBufferSize,
		log:                  log,
	}
}

// Connect establishes the long-lived bidirectional stream that is one client
// session. The client sends JoinRequests over it; each one subscribes the
// session to the room AND increments the counter, acked with the new value
// (ok=false on any failure, to the caller only). Broadcast increments arrive
// through the session's Sink and are pushed as IncrementEvents.
//
// This method blocks until the client disconnects or a network error occurs.
// Session cleanup runs when the recv goroutine winds down, after the last
// in-flight join, so the session never stays registered in any room once the
// stream is gone.
func (s *CounterServer) Connect(stream pb.CounterService_ConnectServer) error {
	sessionID := uuid.NewString()
	sink := NewSink(s.connectionBufferSize)

	s.monitoring.IncrActiveSessions()
	defer s.monitoring.DecrActiveSessions()

	// Acks travel through their own channel so the single send loop below is
	// the only writer on the stream.
	acks := make(chan *pb.JoinAck, s.connectionBufferSize)
	recvFailed := make(chan error, 1)

	// The recv goroutine owns the session teardown: every Subscribe happens
	// inside a Join on that goroutine, so deferring Disconnect there is the
	// only ordering that cannot leave a membership behind when the stream
	// dies mid-join.
	go s.receiveJoins(stream, sessionID, sink, acks, recvFailed)

	for {
		select {
		case <-stream.Context().Done():
			s.log.Warn(fmt.Sprintf("Client %s disconnected", sessionID))
			return nil
		case err := <-recvFailed:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		case ack := <-acks:
			if err := stream.Send(&pb.CounterEvent{Event: &pb.CounterEvent_Ack{Ack: ack}}); err != nil {
				s.log.Error("failed to push ack to stream", "session_id", sessionID, "error", err)
				return err
			}
		case evt := <-sink.ConnectedUserEvent:
			inc, ok := evt.(event.CounterIncremented)
			if !ok {
				continue
			}
			err := stream.Send(&pb.CounterEvent{Event: &pb.CounterEvent_Increment{
				Increment: &pb.IncrementEvent{RoomId: string(inc.Room), Value: inc.Value},
			}})
			if err != nil {
				s.log.Error("failed to push event to stream",
					"session_id", sessionID,
					"room_id", inc.Room,
					"error", err)
				return err
			}
		}
	}
}

// receiveJoins is the stream's read half: one join at a time, in the order
// the client sent them. A failed join produces a failure ack for the caller
// and nothing else; the room and the counter are untouched.
func (s *CounterServer) receiveJoins(stream pb.CounterService_ConnectServer,
	sessionID string, sink *Sink, acks chan<- *pb.JoinAck, recvFailed chan<- error) {
	defer s.counterService.Disconnect(sessionID)
	for {
		req, err := stream.Recv()
		if err != nil {
			recvFailed <- err
			return
		}

		value, err := s.counterService.Join(stream.Context(), sessionID, req.GetRoomId(), sink)
		ack := &pb.JoinAck{RoomId: req.GetRoomId(), Ok: err == nil, Value: value}
		if err != nil {
			s.log.Debug("join rejected",
				"session_id", sessionID,
				"room_id", req.GetRoomId(),
				"error", err)
		}

		select {
		case acks <- ack:
		case <-stream.Context().Done():
			return
		}
	}
}
