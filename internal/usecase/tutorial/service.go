package tutorial

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"tutorial-api/internal/domain/entity"
	"tutorial-api/internal/observability/metrics"
	"tutorial-api/internal/observability/tracing"
	"tutorial-api/internal/repository"
)

// CreateInput represents the input parameters for creating a new tutorial.
// A nil Published is stored as false.
type CreateInput struct {
	Title       string
	Description string
	Published   *bool
}

// UpdateInput represents the input parameters for updating an existing tutorial.
// Only non-nil fields are applied; ID and omitted fields keep their stored values.
type UpdateInput struct {
	ID          int64
	Title       *string
	Description *string
	Published   *bool
}

// Service provides tutorial management use cases.
// It handles business logic for tutorial operations and delegates persistence to the repository.
type Service struct {
	Repo repository.TutorialRepository
}

// List returns every tutorial, or only those whose title contains titleFilter
// (case-insensitive) when the filter is non-empty.
func (s *Service) List(ctx context.Context, titleFilter string) ([]*entity.Tutorial, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "tutorial.List")
	defer span.End()

	var (
		list []*entity.Tutorial
		err  error
	)
	if titleFilter == "" {
		list, err = s.Repo.List(ctx)
	} else {
		span.SetAttributes(attribute.String("tutorial.title_filter", titleFilter))
		list, err = s.Repo.SearchByTitle(ctx, titleFilter)
	}
	metrics.RecordTutorialOperation("list", err)
	if err != nil {
		return nil, fmt.Errorf("list tutorials: %w", err)
	}
	return list, nil
}

// ListPublished returns tutorials whose published flag is true.
func (s *Service) ListPublished(ctx context.Context) ([]*entity.Tutorial, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "tutorial.ListPublished")
	defer span.End()

	list, err := s.Repo.ListByPublished(ctx, true)
	metrics.RecordTutorialOperation("list_published", err)
	if err != nil {
		return nil, fmt.Errorf("list published tutorials: %w", err)
	}
	return list, nil
}

// Get returns the tutorial with the given ID.
// Returns ErrTutorialNotFound if it does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Tutorial, error) {
	if id <= 0 {
		return nil, ErrInvalidTutorialID
	}

	ctx, span := tracing.GetTracer().Start(ctx, "tutorial.Get")
	defer span.End()
	span.SetAttributes(attribute.Int64("tutorial.id", id))

	t, err := s.Repo.Get(ctx, id)
	metrics.RecordTutorialOperation("get", err)
	if err != nil {
		return nil, fmt.Errorf("get tutorial: %w", err)
	}
	if t == nil {
		return nil, ErrTutorialNotFound
	}
	return t, nil
}

// Create validates the input and stores a new tutorial.
// The returned tutorial carries the ID assigned by the datastore.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Tutorial, error) {
	t := &entity.Tutorial{
		Title:       in.Title,
		Description: in.Description,
	}
	if in.Published != nil {
		t.Published = *in.Published
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracing.GetTracer().Start(ctx, "tutorial.Create")
	defer span.End()

	err := s.Repo.Create(ctx, t)
	metrics.RecordTutorialOperation("create", err)
	if err != nil {
		return nil, fmt.Errorf("create tutorial: %w", err)
	}
	span.SetAttributes(attribute.Int64("tutorial.id", t.ID))
	return t, nil
}

// Update applies the provided fields to an existing tutorial and stores it.
// Returns ErrTutorialNotFound if the tutorial does not exist.
// Returns a ValidationError if the resulting tutorial is invalid.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Tutorial, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidTutorialID
	}

	ctx, span := tracing.GetTracer().Start(ctx, "tutorial.Update")
	defer span.End()
	span.SetAttributes(attribute.Int64("tutorial.id", in.ID))

	t, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		metrics.RecordTutorialOperation("update", err)
		return nil, fmt.Errorf("get tutorial: %w", err)
	}
	if t == nil {
		return nil, ErrTutorialNotFound
	}

	updated := *t
	if in.Title != nil {
		updated.Title = *in.Title
	}
	if in.Description != nil {
		updated.Description = *in.Description
	}
	if in.Published != nil {
		updated.Published = *in.Published
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	err = s.Repo.Update(ctx, &updated)
	if errors.Is(err, entity.ErrNotFound) {
		// deleted between Get and Update
		return nil, ErrTutorialNotFound
	}
	metrics.RecordTutorialOperation("update", err)
	if err != nil {
		return nil, fmt.Errorf("update tutorial: %w", err)
	}
	return &updated, nil
}

// Delete removes a tutorial by its ID.
// Deleting an ID that does not exist succeeds.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidTutorialID
	}

	ctx, span := tracing.GetTracer().Start(ctx, "tutorial.Delete")
	defer span.End()
	span.SetAttributes(attribute.Int64("tutorial.id", id))

	err := s.Repo.Delete(ctx, id)
	metrics.RecordTutorialOperation("delete", err)
	if err != nil {
		return fmt.Errorf("delete tutorial: %w", err)
	}
	return nil
}

// DeleteAll removes every tutorial and returns how many rows were deleted.
func (s *Service) DeleteAll(ctx context.Context) (int64, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "tutorial.DeleteAll")
	defer span.End()

	n, err := s.Repo.DeleteAll(ctx)
	metrics.RecordTutorialOperation("delete_all", err)
	if err != nil {
		return 0, fmt.Errorf("delete all tutorials: %w", err)
	}
	span.SetAttributes(attribute.Int64("tutorial.deleted", n))
	return n, nil
}

// Count returns the number of stored tutorials.
func (s *Service) Count(ctx context.Context) (int64, error) {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count tutorials: %w", err)
	}
	return n, nil
}
