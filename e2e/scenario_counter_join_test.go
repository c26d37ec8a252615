package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	pb3 "counter-lab/proto/account"
	pb2 "counter-lab/proto/admin"
	pb "counter-lab/proto/counter"
)

type testCounterJoinSuite struct {
	BaseGrpcSuite
}

func TestCounterJoinSuite(t *testing.T) {
	suite.Run(t, &testCounterJoinSuite{})
}

// recvAck reads stream events until the join ack shows up. Broadcast
// increments may legally interleave with the ack, so they are collected and
// handed back rather than rejected.
func (s *testCounterJoinSuite) recvAck(stream pb.CounterService_ConnectClient) (*pb.JoinAck, []int64) {
	var increments []int64
	for {
		evt, err := stream.Recv()
		s.Require().NoError(err)
		if ack := evt.GetAck(); ack != nil {
			return ack, increments
		}
		increments = append(increments, evt.GetIncrement().GetValue())
	}
}

// recvIncrements tops the collected increments up to want entries.
func (s *testCounterJoinSuite) recvIncrements(stream pb.CounterService_ConnectClient,
	want int, increments []int64) []int64 {
	for len(increments) < want {
		evt, err := stream.Recv()
		s.Require().NoError(err)
		inc := evt.GetIncrement()
		s.Require().NotNil(inc, "Only increments are expected after the ack")
		increments = append(increments, inc.GetValue())
	}
	return increments
}

func (s *testCounterJoinSuite) TestFullCounterJoinFlow() {
	email := fmt.Sprintf("e2e-%s@example.com", uuid.NewString()[:8])
	password := "ComplexPass123!"
	var token string
	var counterID string

	// --- STEP 0: IDENTITY ---
	s.Run("Step 0: Register a fresh account", func() {
		s.WithAuth("Registering e2e account", func(ctx context.Context, client pb3.AuthServiceClient) {
			resp, err := client.Register(ctx, &pb3.RegisterRequest{Email: email, Password: password})
			s.Require().NoError(err, "Failed to register")
			s.Require().NotEmpty(resp.Token)
			token = resp.Token
		})
	})

	// --- STEP 1: COUNTER CREATION ---
	s.Run("Step 1: Create a counter with the issued token", func() {
		s.WithAdmin("Creating counter", token, func(ctx context.Context, client pb2.CounterAdminServiceClient) {
			resp, err := client.CreateCounter(ctx, &pb2.CreateCounterRequest{Name: "e2e joins", Number: 1})
			s.Require().NoError(err, "Failed to create counter")
			s.Require().NotEmpty(resp.CounterId)
			s.Require().Zero(resp.Value, "A fresh counter must start at zero")
			counterID = resp.CounterId
		})
	})

	// --- STEP 2: REALTIME JOINS ---
	s.Run("Step 2: Two sessions join, both are notified of their own join", func() {
		s.WithCounter("Joining from two streams", func(ctx context.Context, client pb.CounterServiceClient) {
			streamA, err := client.Connect(ctx)
			s.Require().NoError(err)
			streamB, err := client.Connect(ctx)
			s.Require().NoError(err)

			// First join: counter moves to 1, acked to A, and A is a member
			// of its own broadcast so it also sees increment 1. The ack and
			// the broadcast may arrive in either order.
			s.Require().NoError(streamA.Send(&pb.JoinRequest{RoomId: counterID}))
			ackA, incrementsA := s.recvAck(streamA)
			s.Require().True(ackA.Ok)
			s.Require().EqualValues(1, ackA.Value)
			incrementsA = s.recvIncrements(streamA, 1, incrementsA)
			s.Require().Equal([]int64{1}, incrementsA)

			// Second join from B: counter moves to 2, and B sees its own
			// broadcast too
			s.Require().NoError(streamB.Send(&pb.JoinRequest{RoomId: counterID}))
			ackB, incrementsB := s.recvAck(streamB)
			s.Require().True(ackB.Ok)
			s.Require().EqualValues(2, ackB.Value)
			incrementsB = s.recvIncrements(streamB, 1, incrementsB)
			s.Require().Equal([]int64{2}, incrementsB)

			// A was already a member, so A receives B's increment as well
			incrementsA = s.recvIncrements(streamA, 2, incrementsA)
			s.Require().Equal([]int64{1, 2}, incrementsA)
		})
	})

	// --- STEP 3: FAILED JOIN ---
	s.Run("Step 3: Joining an unknown counter is refused", func() {
		s.WithCounter("Joining a room that does not exist", func(ctx context.Context, client pb.CounterServiceClient) {
			stream, err := client.Connect(ctx)
			s.Require().NoError(err)

			s.Require().NoError(stream.Send(&pb.JoinRequest{RoomId: uuid.NewString()}))
			evt, err := stream.Recv()
			s.Require().NoError(err)
			s.Require().False(evt.GetAck().GetOk(), "Unknown counters must be refused, not created")
		})
	})

	// --- STEP 4: ADMIN READ MODEL ---
	s.Run("Step 4: The counter value survives in the admin view", func() {
		s.WithAdmin("Listing counters", token, func(ctx context.Context, client pb2.CounterAdminServiceClient) {
			// Give the badger sync a moment after the realtime writes
			time.Sleep(100 * time.Millisecond)

			resp, err := client.ListCounters(ctx, &pb2.ListCountersRequest{})
			s.Require().NoError(err)

			var found *pb2.CounterResponse
			for _, c := range resp.Counters {
				if c.CounterId == counterID {
					found = c
				}
			}
			s.Require().NotNil(found, "Created counter must appear in the owner's list")
			s.Require().EqualValues(2, found.Value)
		})
	})
}
