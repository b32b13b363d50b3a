package programs

import (
	"context"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
	"github.com/Moha-Why/WorkOut-sub000/internal/common"
)

// NoopRepository is the storage-unavailable fallback: an always-empty cache.
type NoopRepository struct{}

func NewNoopRepository() *NoopRepository { return &NoopRepository{} }

func (*NoopRepository) Upsert(context.Context, *models.CachedProgram) error { return nil }

func (*NoopRepository) GetByID(context.Context, string) (*models.CachedProgram, error) {
	return nil, common.ErrNotFound
}

func (*NoopRepository) GetAll(context.Context) ([]models.CachedProgram, error) { return nil, nil }

func (*NoopRepository) DeleteByID(context.Context, string) error { return nil }
