package videos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
	"github.com/Moha-Why/WorkOut-sub000/internal/common"
	"github.com/Moha-Why/WorkOut-sub000/internal/dbx"
	"github.com/Moha-Why/WorkOut-sub000/internal/timex"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Upsert(ctx context.Context, v *models.CachedVideo) error {
	if v.Provider == "" || v.VideoID == "" {
		return common.ErrMissingID
	}
	query := `INSERT INTO cached_videos (provider, video_id, embed_url, size_bytes, cached_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(provider, video_id) DO UPDATE SET embed_url = excluded.embed_url,
			size_bytes = excluded.size_bytes,
			cached_at = excluded.cached_at`
	_, err := r.db.ExecContext(ctx, query,
		v.Provider, v.VideoID, v.EmbedURL, v.SizeBytes, timex.FormatSortable(v.CachedAt))
	if err != nil {
		return fmt.Errorf("failed to upsert cached video: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, provider, videoID string) (*models.CachedVideo, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT provider, video_id, embed_url, size_bytes, cached_at
		 FROM cached_videos WHERE provider = ? AND video_id = ?`, provider, videoID)
	item, err := scanVideo(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select cached video: %w", err)
	}
	return item, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.CachedVideo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT provider, video_id, embed_url, size_bytes, cached_at FROM cached_videos`)
	if err != nil {
		return nil, fmt.Errorf("failed to select cached videos: %w", err)
	}
	defer rows.Close()

	var result []models.CachedVideo
	for rows.Next() {
		item, err := scanVideo(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Exists(ctx context.Context, provider, videoID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM cached_videos WHERE provider = ? AND video_id = ?`,
		provider, videoID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check cached video: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, provider, videoID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM cached_videos WHERE provider = ? AND video_id = ?`, provider, videoID)
	if err != nil {
		return fmt.Errorf("failed to delete cached video: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteCachedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM cached_videos WHERE cached_at < ?`, timex.FormatSortable(cutoff))
	if err != nil {
		return 0, fmt.Errorf("failed to expire cached videos: %w", err)
	}
	return res.RowsAffected()
}

func scanVideo(scan func(dest ...any) error) (*models.CachedVideo, error) {
	var item models.CachedVideo
	var cachedAt string
	if err := scan(&item.Provider, &item.VideoID, &item.EmbedURL, &item.SizeBytes, &cachedAt); err != nil {
		return nil, err
	}
	ts, err := timex.ParseSortable(cachedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cached_at: %w", err)
	}
	item.CachedAt = ts
	return &item, nil
}
