// Package handle mints opaque, non-dereferenceable tokens for use as
// the payload of a Variant/DynamicData of kind Pointer. Go has no safe
// way to export a raw, GC-untracked pointer, so a Pointer's "opaque
// machine-word reference with no ownership" (SPEC_FULL.md §3) is
// represented by a process-local handle instead — grounded on
// ramsesyok-ratta's internal/domain/id package, which mints opaque
// identifiers (nanoid/uuid) for the same "unique, comparable, not
// otherwise meaningful" contract.
package handle

import (
	"sync"

	"github.com/google/uuid"
)

var (
	mu    sync.Mutex
	seen  = make(map[uintptr]uuid.UUID)
	next  uintptr = 1
	uuidV7Generator = uuid.NewV7
)

// New mints a fresh, process-unique handle. Concurrent calls from
// independent goroutines building independent trees are safe, per
// SPEC_FULL.md §9's allocator note — this is the one piece of shared
// state in the module.
func New() (uintptr, error) {
	id, err := uuidV7Generator()
	if err != nil {
		return 0, err
	}

	mu.Lock()
	defer mu.Unlock()
	h := next
	next++
	seen[h] = id
	return h, nil
}

// Origin returns the uuid a handle was minted from, for diagnostics.
// The second return value is false if h was never minted by New.
func Origin(h uintptr) (uuid.UUID, bool) {
	mu.Lock()
	defer mu.Unlock()
	id, ok := seen[h]
	return id, ok
}
