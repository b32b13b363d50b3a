//go:build unix

package services

import "golang.org/x/sys/unix"

// StatfsQuota reports free space on the filesystem holding the local
// database directory.
type StatfsQuota struct {
	Path string
}

func (q StatfsQuota) Available() (int64, bool) {
	var st unix.Statfs_t
	if err := unix.Statfs(q.Path, &st); err != nil {
		return 0, false
	}
	return int64(st.Bavail) * int64(st.Bsize), true
}
