package completions

import (
	"context"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
)

// NoopRepository is the storage-unavailable fallback.
type NoopRepository struct{}

func NewNoopRepository() *NoopRepository { return &NoopRepository{} }

func (*NoopRepository) Insert(context.Context, *models.PendingCompletion) error { return nil }

func (*NoopRepository) GetPending(context.Context) ([]models.PendingCompletion, error) {
	return nil, nil
}

func (*NoopRepository) CountPending(context.Context) (int, error) { return 0, nil }

func (*NoopRepository) DeleteByID(context.Context, string) error { return nil }
