// Package programs stores cached program metadata for offline use.
package programs

import (
	"context"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
)

// Repository describes the program cache namespace. Programs are small and
// have no TTL sweep of their own; they go away with an explicit delete or the
// clear-all operation.
type Repository interface {
	Upsert(ctx context.Context, p *models.CachedProgram) error
	GetByID(ctx context.Context, id string) (*models.CachedProgram, error)
	GetAll(ctx context.Context) ([]models.CachedProgram, error)
	DeleteByID(ctx context.Context, id string) error
}
