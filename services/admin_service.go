package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"counter-lab/contract"
	"counter-lab/domain"
	"counter-lab/domain/event"
	"counter-lab/errors"
	"counter-lab/moderation"
	"counter-lab/repositories"
)

type IAdminService interface {
	CreateCounter(ctx context.Context, owner, name string, number int) (domain.Counter, error)
	RenameCounter(ctx context.Context, id, name string) (domain.Counter, error)
	ListCounters(owner string) ([]domain.Counter, error)
	SearchCounters(ctx context.Context, owner, query string) ([]domain.Counter, error)
}

// AdminService covers the administrative surface: creating, renaming,
// listing and searching counters. Labels are censored before they are stored
// or indexed; the realtime core never goes through this service.
type AdminService struct {
	log          *slog.Logger
	counters     repositories.ICounterRepository
	index        repositories.ISearchIndex
	moderator    moderation.Moderator
	orchestrator contract.IOrchestrator
}

func NewAdminService(log *slog.Logger, counters repositories.ICounterRepository,
	index repositories.ISearchIndex, moderator moderation.Moderator,
	orchestrator contract.IOrchestrator) *AdminService {
	return &AdminService{
		log:          log,
		counters:     counters,
		index:        index,
		moderator:    moderator,
		orchestrator: orchestrator,
	}
}

// CreateCounter stores a new counter at value 0 for the owner and indexes its
// censored label.
func (s *AdminService) CreateCounter(ctx context.Context, owner, name string,
	number int) (domain.Counter, error) {
	label, err := s.sanitizeLabel(name)
	if err != nil {
		return domain.Counter{}, err
	}

	counter, err := s.counters.CreateCounter(owner, label, number)
	if err != nil {
		return domain.Counter{}, err
	}

	if err := s.index.IndexCounter(counter); err != nil {
		// The record exists; a stale index only degrades search
		s.log.Warn("indexing counter failed", "counter_id", counter.ID, "error", err)
	}

	s.orchestrator.Emit(event.CounterCreated{
		Room:  counter.Room(),
		Owner: owner,
		Name:  label,
		At:    time.Now().UTC(),
	})
	return counter, nil
}

// RenameCounter replaces the label, re-censored and re-indexed.
func (s *AdminService) RenameCounter(ctx context.Context, id, name string) (domain.Counter, error) {
	label, err := s.sanitizeLabel(name)
	if err != nil {
		return domain.Counter{}, err
	}

	counter, err := s.counters.RenameCounter(id, label)
	if err != nil {
		return domain.Counter{}, err
	}

	if err := s.index.IndexCounter(counter); err != nil {
		s.log.Warn("re-indexing counter failed", "counter_id", counter.ID, "error", err)
	}

	s.orchestrator.Emit(event.CounterRenamed{Room: counter.Room(), Name: label, At: time.Now().UTC()})
	return counter, nil
}

func (s *AdminService) ListCounters(owner string) ([]domain.Counter, error) {
	return s.counters.ListCountersByOwner(owner)
}

// SearchCounters resolves the owner's matching ids from the label index, then
// loads the live records so values are current.
func (s *AdminService) SearchCounters(ctx context.Context, owner, query string) ([]domain.Counter, error) {
	ids, err := s.index.Search(ctx, owner, query)
	if err != nil {
		return nil, err
	}

	var counters []domain.Counter
	for _, id := range ids {
		counter, err := s.counters.GetCounter(id)
		if err != nil {
			s.log.Warn("indexed counter missing from store", "counter_id", id)
			continue
		}
		counters = append(counters, counter)
	}
	return counters, nil
}

func (s *AdminService) sanitizeLabel(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", errors.ErrEmptyLabel
	}

	label := s.moderator.Censor(trimmed)
	if label != trimmed {
		s.log.Info(fmt.Sprintf("Label censored [lang=%s]", moderation.DetectLanguage(trimmed)))
	}
	return label, nil
}
