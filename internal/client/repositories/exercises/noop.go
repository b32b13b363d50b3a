package exercises

import (
	"context"
	"time"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
	"github.com/Moha-Why/WorkOut-sub000/internal/common"
)

// NoopRepository is the fallback used when persistent storage cannot be
// opened: reads behave as an empty cache and writes are silently dropped, so
// the host application keeps working without offline support.
type NoopRepository struct{}

func NewNoopRepository() *NoopRepository { return &NoopRepository{} }

func (*NoopRepository) Upsert(context.Context, *models.CachedExercise) error { return nil }

func (*NoopRepository) GetByID(context.Context, string) (*models.CachedExercise, error) {
	return nil, common.ErrNotFound
}

func (*NoopRepository) GetAll(context.Context) ([]models.CachedExercise, error) { return nil, nil }

func (*NoopRepository) Exists(context.Context, string) (bool, error) { return false, nil }

func (*NoopRepository) DeleteByID(context.Context, string) error { return nil }

func (*NoopRepository) DeleteCachedBefore(context.Context, time.Time) (int64, error) { return 0, nil }
