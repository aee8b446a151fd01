package corpus

import "context"

// Sequencer assigns speech clusters their stable ordinal in
// first-appearance order. Speeches observe their cluster as they commit;
// the post-pass then numbers clusters 0, 1, 2, ... in the order they
// were first seen, which is stable for a given input file set.
type Sequencer struct {
	seen  map[int]bool
	order []int
}

func NewSequencer() *Sequencer {
	return &Sequencer{seen: make(map[int]bool)}
}

// Observe records a cluster id at the moment a member speech commits.
// Repeat observations are ignored.
func (s *Sequencer) Observe(clusterID int) {
	if s.seen[clusterID] {
		return
	}
	s.seen[clusterID] = true
	s.order = append(s.order, clusterID)
}

// Assign writes the ordinals through the store.
func (s *Sequencer) Assign(ctx context.Context, store Store) error {
	for ordinal, clusterID := range s.order {
		if err := store.SetClusterSeq(ctx, clusterID, ordinal); err != nil {
			return err
		}
	}
	return nil
}

// Ordinal reports the assigned ordinal for a cluster, for tests and
// diagnostics.
func (s *Sequencer) Ordinal(clusterID int) (int, bool) {
	for ordinal, id := range s.order {
		if id == clusterID {
			return ordinal, true
		}
	}
	return 0, false
}
