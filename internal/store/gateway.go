package store

import "context"

// Snapshot keys. Each key holds one whole collection.
const (
	CoursesKey     = "courses"
	EnrollmentsKey = "enrollments"
)

// Gateway persists whole-collection snapshots under a key.
//
// Implementations must make each Save atomic: a concurrent or later Load sees
// either the previous snapshot or the new one, never a mix.
type Gateway interface {
	// Load decodes the snapshot stored under key into dst.
	// It reports found=false, leaving dst untouched, when nothing is stored.
	// Undecodable data is reported as an error wrapping ErrSnapshotUnreadable.
	Load(ctx context.Context, key string, dst any) (found bool, err error)

	// Save replaces the snapshot stored under key with v.
	Save(ctx context.Context, key string, v any) error
}
