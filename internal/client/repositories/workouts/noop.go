package workouts

import (
	"context"
	"time"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
	"github.com/Moha-Why/WorkOut-sub000/internal/common"
)

// NoopRepository is the storage-unavailable fallback: an always-empty cache.
type NoopRepository struct{}

func NewNoopRepository() *NoopRepository { return &NoopRepository{} }

func (*NoopRepository) Upsert(context.Context, *models.CachedWorkout) error { return nil }

func (*NoopRepository) GetByID(context.Context, string) (*models.CachedWorkout, error) {
	return nil, common.ErrNotFound
}

func (*NoopRepository) GetAll(context.Context) ([]models.CachedWorkout, error) { return nil, nil }

func (*NoopRepository) Exists(context.Context, string) (bool, error) { return false, nil }

func (*NoopRepository) MarkCompleted(context.Context, string, time.Time) error { return nil }

func (*NoopRepository) DeleteByID(context.Context, string) error { return nil }

func (*NoopRepository) DeleteCachedBefore(context.Context, time.Time) (int64, error) { return 0, nil }
