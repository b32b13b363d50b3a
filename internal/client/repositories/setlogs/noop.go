package setlogs

import (
	"context"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
	"github.com/Moha-Why/WorkOut-sub000/internal/common"
)

// NoopRepository is the storage-unavailable fallback. Writes vanish and reads
// come back empty; the host UI keeps working without offline logging.
type NoopRepository struct{}

func NewNoopRepository() *NoopRepository { return &NoopRepository{} }

func (*NoopRepository) Insert(context.Context, *models.SetLog) error { return nil }

func (*NoopRepository) GetByID(context.Context, string) (*models.SetLog, error) {
	return nil, common.ErrNotFound
}

func (*NoopRepository) GetByWorkout(context.Context, string) ([]models.SetLog, error) {
	return nil, nil
}

func (*NoopRepository) GetByExercise(context.Context, string) ([]models.SetLog, error) {
	return nil, nil
}

func (*NoopRepository) GetByUser(context.Context, string) ([]models.SetLog, error) { return nil, nil }

func (*NoopRepository) GetPending(context.Context) ([]models.SetLog, error) { return nil, nil }

func (*NoopRepository) CountPending(context.Context) (int, error) { return 0, nil }

func (*NoopRepository) MarkSynced(context.Context, string) error { return nil }

func (*NoopRepository) GetByExerciseExcludingWorkout(context.Context, string, string) ([]models.SetLog, error) {
	return nil, nil
}
