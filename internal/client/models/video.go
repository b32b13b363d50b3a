package models

import "time"

// CachedVideo holds the embed metadata for an exercise video, keyed by
// (provider, video id). Videos are shared across workouts that reference the
// same exercise and expire on their own TTL, independent of the parent
// workout's cache entry. Only metadata is cached; byte delivery is left to
// the platform HTTP cache.
type CachedVideo struct {
	Provider  string
	VideoID   string
	EmbedURL  string
	SizeBytes int64
	CachedAt  time.Time
}

// Key returns the composite cache key.
func (v CachedVideo) Key() string {
	return v.Provider + ":" + v.VideoID
}
