package sync

import "locsync/core/termstore"

// Difference partitions the symmetric difference between the local and
// remote key sets.
type Difference struct {
	// Insertions are keys present locally but absent remotely.
	Insertions termstore.KeySet

	// Removals are keys present remotely but absent locally.
	Removals termstore.KeySet
}

// Empty reports whether the two sets were already in step.
func (d Difference) Empty() bool {
	return d.Insertions.Len() == 0 && d.Removals.Len() == 0
}

// Diff computes the symmetric set difference between local and remote keys.
// It is a pure function: no I/O, no side effects, identical inputs always
// produce identical output. Either side may be empty (a first-ever sync has
// an empty remote, so every local key becomes an insertion).
func Diff(local, remote termstore.KeySet) Difference {
	insertions := termstore.NewKeySet()
	for key := range local {
		if !remote.Contains(key) {
			insertions.Add(key)
		}
	}

	removals := termstore.NewKeySet()
	for key := range remote {
		if !local.Contains(key) {
			removals.Add(key)
		}
	}

	return Difference{Insertions: insertions, Removals: removals}
}
