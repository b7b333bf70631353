package usecase

import (
	"sync"

	"vitrine/internal/domain/model"
)

// CollectionView is the current list of one page session. It is replaced
// wholesale on each successful load; out-of-order responses are dropped by a
// monotonic sequence so a slow old load never overwrites a newer one.
type CollectionView[F model.Fields] struct {
	mu      sync.Mutex
	issued  uint64
	applied uint64
	records []model.Record[F]
}

// Begin reserves the next load sequence number.
func (v *CollectionView[F]) Begin() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.issued++

	return v.issued
}

// Apply installs records for the load started at seq. It reports false, and
// leaves the view untouched, when a younger load has already been applied.
func (v *CollectionView[F]) Apply(seq uint64, records []model.Record[F]) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if seq <= v.applied {
		return false
	}

	v.applied = seq
	v.records = records

	return true
}

// Records returns the last applied list.
func (v *CollectionView[F]) Records() []model.Record[F] {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.records
}
