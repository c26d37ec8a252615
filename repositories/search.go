//go:generate go run go.uber.org/mock/mockgen -source=search.go -destination=../mocks/mock_search_index.go -package=mocks
package repositories

import (
	"context"
	"fmt"
	"log/slog"

	"counter-lab/domain"

	"github.com/blugelabs/bluge"
)

type ISearchIndex interface {
	IndexCounter(c domain.Counter) error
	Search(ctx context.Context, owner, query string) ([]string, error)
	Close() error
}

// LabelIndex is a Bluge full-text index over counter labels, so an owner can
// find a counter by what it is called rather than by its id. Create and
// rename both re-index the document; the index never drives the core
// broadcast path.
type LabelIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewLabelIndex(path string, log *slog.Logger) (*LabelIndex, error) {
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(path))
	if err != nil {
		return nil, fmt.Errorf("opening bluge index: %w", err)
	}
	return &LabelIndex{writer: writer, log: log}, nil
}

// IndexCounter upserts the counter's label document, keyed by counter id.
func (i *LabelIndex) IndexCounter(c domain.Counter) error {
	doc := bluge.NewDocument(c.ID).
		AddField(bluge.NewTextField("name", c.Name)).
		AddField(bluge.NewKeywordField("owner", c.Owner))
	return i.writer.Update(doc.ID(), doc)
}

// Search returns the ids of the owner's counters whose label matches the query.
func (i *LabelIndex) Search(ctx context.Context, owner, query string) ([]string, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("opening bluge reader: %w", err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			i.log.Warn("closing bluge reader", "error", err)
		}
	}()

	q := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(query).SetField("name")).
		AddMust(bluge.NewTermQuery(owner).SetField("owner"))

	it, err := reader.Search(ctx, bluge.NewTopNSearch(50, q))
	if err != nil {
		return nil, fmt.Errorf("bluge search: %w", err)
	}

	var ids []string
	for {
		match, err := it.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				ids = append(ids, string(value))
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	return ids, nil
}

func (i *LabelIndex) Close() error {
	return i.writer.Close()
}
