package repository

import (
	"context"

	"tutorial-api/internal/domain/entity"
)

// TutorialRepository is the datastore collaborator behind the tutorial use cases.
// Get returns (nil, nil) when no row matches. Update of a missing id wraps
// entity.ErrNotFound. Delete of a missing id is not an error.
type TutorialRepository interface {
	Get(ctx context.Context, id int64) (*entity.Tutorial, error)
	List(ctx context.Context) ([]*entity.Tutorial, error)
	SearchByTitle(ctx context.Context, title string) ([]*entity.Tutorial, error)
	ListByPublished(ctx context.Context, published bool) ([]*entity.Tutorial, error)
	Create(ctx context.Context, tutorial *entity.Tutorial) error
	Update(ctx context.Context, tutorial *entity.Tutorial) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}
