package videos

import (
	"context"
	"time"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
	"github.com/Moha-Why/WorkOut-sub000/internal/common"
)

// NoopRepository is the storage-unavailable fallback: an always-empty cache.
type NoopRepository struct{}

func NewNoopRepository() *NoopRepository { return &NoopRepository{} }

func (*NoopRepository) Upsert(context.Context, *models.CachedVideo) error { return nil }

func (*NoopRepository) Get(context.Context, string, string) (*models.CachedVideo, error) {
	return nil, common.ErrNotFound
}

func (*NoopRepository) GetAll(context.Context) ([]models.CachedVideo, error) { return nil, nil }

func (*NoopRepository) Exists(context.Context, string, string) (bool, error) { return false, nil }

func (*NoopRepository) Delete(context.Context, string, string) error { return nil }

func (*NoopRepository) DeleteCachedBefore(context.Context, time.Time) (int64, error) { return 0, nil }
