package service

import (
	"context"
	"errors"

	"github.com/collections-admin-api/internal/form"
	"github.com/collections-admin-api/internal/metrics"
	"github.com/collections-admin-api/internal/models"
	"github.com/collections-admin-api/internal/notify"
	"github.com/collections-admin-api/internal/repository"
	"github.com/collections-admin-api/internal/validation"
	"github.com/rs/zerolog"
)

// collectionService is the concrete implementation of CollectionService
type collectionService struct {
	repo    repository.CollectionRepository
	sink    notify.Sink
	metrics *metrics.Metrics
	log     zerolog.Logger
}

func newCollectionService(repo repository.CollectionRepository, sink notify.Sink, m *metrics.Metrics, log zerolog.Logger) *collectionService {
	return &collectionService{
		repo:    repo,
		sink:    sink,
		metrics: m,
		log:     log.With().Str("service", "collection").Logger(),
	}
}

// NewCollectionService creates a CollectionService backed by repo
func NewCollectionService(repo repository.CollectionRepository, sink notify.Sink, m *metrics.Metrics, log zerolog.Logger) CollectionService {
	return newCollectionService(repo, sink, m, log)
}

func (s *collectionService) Options() CollectionOptions {
	genres := make([]string, len(models.Genres))
	copy(genres, models.Genres)
	types := make([]models.ContentTypeOption, len(models.ContentTypes))
	copy(types, models.ContentTypes)
	return CollectionOptions{Genres: genres, ContentTypes: types}
}

func (s *collectionService) List(ctx context.Context, limit, offset int) ([]*models.Collection, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *collectionService) Get(ctx context.Context, id string) (*models.Collection, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCollectionNotFound
	}
	return c, nil
}

// Create runs in through a fresh create-mode form
func (s *collectionService) Create(ctx context.Context, in models.CollectionInput) (*form.Outcome, error) {
	f := s.newForm()
	f.Initialize(nil)
	f.Apply(in)
	return s.submit(ctx, f, "create")
}

// Update loads the target and runs in through an edit-mode form
func (s *collectionService) Update(ctx context.Context, id string, in models.CollectionInput) (*form.Outcome, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	f := s.newForm()
	f.Initialize(existing)
	f.Apply(in)
	outcome, err := s.submit(ctx, f, "update")

	var perr *form.PersistenceError
	if errors.As(err, &perr) && errors.Is(perr.Err, repository.ErrNotFound) {
		// deleted between load and save
		return outcome, ErrCollectionNotFound
	}
	return outcome, err
}

func (s *collectionService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCollectionNotFound
	}
	if err != nil {
		return err
	}
	s.log.Info().Str("collection_id", id).Msg("Collection deleted")
	return nil
}

func (s *collectionService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *collectionService) newForm() *form.CollectionForm {
	return form.NewCollectionForm(s.repo, s.sink)
}

func (s *collectionService) submit(ctx context.Context, f *form.CollectionForm, mode string) (*form.Outcome, error) {
	outcome, err := f.Submit(ctx)

	var verrs validation.Errors
	switch {
	case err == nil:
		s.record(mode, "success", outcome)
		s.log.Info().
			Str("collection_id", outcome.Collection.ID).
			Str("mode", mode).
			Msg("Collection saved")
	case errors.As(err, &verrs):
		s.record(mode, "invalid", nil)
	case errors.Is(err, form.ErrSubmitPending):
		s.record(mode, "busy", nil)
	default:
		s.record(mode, "failed", outcome)
		s.log.Error().Err(err).Str("mode", mode).Msg("Collection save failed")
	}
	return outcome, err
}

func (s *collectionService) record(mode, result string, outcome *form.Outcome) {
	if s.metrics == nil {
		return
	}
	s.metrics.CollectionSubmissions.WithLabelValues(mode, result).Inc()
	if outcome != nil {
		s.metrics.NotificationsShown.WithLabelValues(string(outcome.Notification.Category)).Inc()
	}
}
