//go:build !unix

package services

// StatfsQuota has no quota API on this platform; callers fail open.
type StatfsQuota struct {
	Path string
}

func (q StatfsQuota) Available() (int64, bool) {
	return 0, false
}
