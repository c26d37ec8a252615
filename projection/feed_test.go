package projection

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"counter-lab/domain"
	"counter-lab/domain/event"
)

func TestFeed_Consume_CounterIncremented(t *testing.T) {
	feed := NewFeed(10)
	ctx := context.Background()

	evt1 := event.CounterIncremented{
		Room:  domain.RoomID("room-1"),
		Value: 4,
		At:    time.Now(),
	}

	evt2 := event.CounterIncremented{
		Room:  domain.RoomID("room-2"),
		Value: 7,
		At:    time.Now().Add(time.Second),
	}

	err := feed.Consume(ctx, evt1)
	require.NoError(t, err)
	err = feed.Consume(ctx, evt2)
	require.NoError(t, err)

	require.Len(t, feed.Recent(), 2)
	require.Equal(t, domain.RoomID("room-1"), feed.Recent()[0].Room)
	require.Equal(t, int64(7), feed.Recent()[1].Value)
}

func TestFeed_Keeps_Only_The_Last_N(t *testing.T) {
	feed := NewFeed(3)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		err := feed.Consume(ctx, event.CounterIncremented{
			Room:  domain.RoomID("room"),
			Value: int64(i),
			At:    time.Now(),
		})
		require.NoError(t, err)
	}

	recent := feed.Recent()
	require.Len(t, recent, 3)
	require.Equal(t, int64(3), recent[0].Value)
	require.Equal(t, int64(5), recent[2].Value)
}

func TestFeed_Ignores_Other_Events(t *testing.T) {
	feed := NewFeed(10)

	err := feed.Consume(context.Background(), event.CounterCreated{
		Room: domain.RoomID("room"),
		Name: "steps",
		At:   time.Now(),
	})

	require.NoError(t, err)
	require.Empty(t, feed.Recent())
}
