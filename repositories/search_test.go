package repositories

import (
	"context"
	"log/slog"
	"testing"

	"counter-lab/domain"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestLabelIndex_SearchByOwnerAndLabel(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)
	index, err := NewLabelIndex(t.TempDir(), log)
	req.NoError(err)
	t.Cleanup(func() { _ = index.Close() })

	// Given three indexed counters across two owners
	req.NoError(index.IndexCounter(domain.Counter{ID: "c1", Owner: "alice", Name: "coffee runs"}))
	req.NoError(index.IndexCounter(domain.Counter{ID: "c2", Owner: "alice", Name: "gym sessions"}))
	req.NoError(index.IndexCounter(domain.Counter{ID: "c3", Owner: "bob", Name: "coffee breaks"}))

	// When alice searches for coffee
	ids, err := index.Search(context.Background(), "alice", "coffee")
	req.NoError(err)

	// Then only her own counter matches
	req.Equal([]string{"c1"}, ids)
}

func TestLabelIndex_ReindexOnRename(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)
	index, err := NewLabelIndex(t.TempDir(), log)
	req.NoError(err)
	t.Cleanup(func() { _ = index.Close() })

	req.NoError(index.IndexCounter(domain.Counter{ID: "c1", Owner: "alice", Name: "old label"}))
	// Renaming re-indexes under the same document id
	req.NoError(index.IndexCounter(domain.Counter{ID: "c1", Owner: "alice", Name: "fresh label"}))

	ids, err := index.Search(context.Background(), "alice", "old")
	req.NoError(err)
	req.Empty(ids)

	ids, err = index.Search(context.Background(), "alice", "fresh")
	req.NoError(err)
	req.Equal([]string{"c1"}, ids)
}
