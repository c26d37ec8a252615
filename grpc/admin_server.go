package grpc

import (
	"context"

	"counter-lab/auth"
	"counter-lab/domain"
	"counter-lab/errors"
	pb "counter-lab/proto/admin"
	"counter-lab/services"

	"github.com/samber/lo"
)

type AdminServer struct {
	pb.UnimplementedCounterAdminServiceServer
	adminService services.IAdminService
}

func NewAdminServer(adminService services.IAdminService) *AdminServer {
	return &AdminServer{adminService: adminService}
}

// CreateCounter stores a new counter at value 0 for the authenticated owner.
func (s *AdminServer) CreateCounter(ctx context.Context, req *pb.CreateCounterRequest) (*pb.CounterResponse, error) {
	owner, ok := auth.UserID(ctx)
	if !ok {
		return nil, errors.MapToGRPCError(errors.ErrMissingOwner)
	}

	counter, err := s.adminService.CreateCounter(ctx, owner, req.GetName(), int(req.GetNumber()))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toCounterResponse(counter), nil
}

func (s *AdminServer) RenameCounter(ctx context.Context, req *pb.RenameCounterRequest) (*pb.CounterResponse, error) {
	if _, ok := auth.UserID(ctx); !ok {
		return nil, errors.MapToGRPCError(errors.ErrMissingOwner)
	}

	counter, err := s.adminService.RenameCounter(ctx, req.GetCounterId(), req.GetName())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toCounterResponse(counter), nil
}

func (s *AdminServer) ListCounters(ctx context.Context, _ *pb.ListCountersRequest) (*pb.ListCountersResponse, error) {
	owner, ok := auth.UserID(ctx)
	if !ok {
		return nil, errors.MapToGRPCError(errors.ErrMissingOwner)
	}

	counters, err := s.adminService.ListCounters(owner)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListCountersResponse{Counters: toCounterResponses(counters)}, nil
}

func (s *AdminServer) SearchCounters(ctx context.Context, req *pb.SearchCountersRequest) (*pb.ListCountersResponse, error) {
	owner, ok := auth.UserID(ctx)
	if !ok {
		return nil, errors.MapToGRPCError(errors.ErrMissingOwner)
	}

	counters, err := s.adminService.SearchCounters(ctx, owner, req.GetQuery())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListCountersResponse{Counters: toCounterResponses(counters)}, nil
}

func toCounterResponse(c domain.Counter) *pb.CounterResponse {
	return &pb.CounterResponse{
		CounterId: c.ID,
		Owner:     c.Owner,
		Name:      c.Name,
		Number:    int32(c.Number),
		Value:     c.Value,
	}
}

func toCounterResponses(counters []domain.Counter) []*pb.CounterResponse {
	return lo.Map(counters, func(item domain.Counter, _ int) *pb.CounterResponse {
		return toCounterResponse(item)
	})
}
