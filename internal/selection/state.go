package selection

// State is an immutable selection: a set of ids plus an optional anchor index.
//
// The zero value is an empty selection with no anchor. Methods never mutate
// the receiver; operations that change the selection return a new State.
type State[K comparable] struct {
	order     []K // insertion order, defines membership
	members   map[K]struct{}
	anchor    int
	anchorID  K
	hasAnchor bool
}

// Clear returns an empty selection with no anchor.
func Clear[K comparable]() State[K] {
	return State[K]{}
}

// Of builds a selection containing ids (duplicates ignored) with no anchor.
func Of[K comparable](ids ...K) State[K] {
	var s State[K]
	for _, id := range ids {
		if !s.Contains(id) {
			s = s.with(id)
		}
	}
	return s
}

// Anchor returns the anchor index and whether one is set.
func (s State[K]) Anchor() (int, bool) {
	if !s.hasAnchor {
		return 0, false
	}
	return s.anchor, true
}

// AnchorID returns the id that was targeted when the anchor was last set.
func (s State[K]) AnchorID() (K, bool) {
	return s.anchorID, s.hasAnchor
}

func (s State[K]) Len() int { return len(s.order) }

func (s State[K]) Contains(id K) bool {
	_, ok := s.members[id]
	return ok
}

// Selected returns the selected ids in the order they were added.
func (s State[K]) Selected() []K {
	out := make([]K, len(s.order))
	copy(out, s.order)
	return out
}

// Retain drops ids that are no longer present in items. The anchor is kept as is.
func (s State[K]) Retain(items []K) State[K] {
	present := make(map[K]struct{}, len(items))
	for _, item := range items {
		present[item] = struct{}{}
	}

	next := State[K]{anchor: s.anchor, anchorID: s.anchorID, hasAnchor: s.hasAnchor}
	for _, id := range s.order {
		if _, ok := present[id]; ok {
			next = next.with(id)
		}
	}
	return next
}

// SameSelection reports whether s and other select exactly the same ids, ignoring order and anchor.
func (s State[K]) SameSelection(other State[K]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, id := range s.order {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}

func (s State[K]) clone() State[K] {
	next := s
	next.order = make([]K, len(s.order), len(s.order)+1)
	copy(next.order, s.order)
	next.members = make(map[K]struct{}, len(s.order)+1)
	for _, id := range s.order {
		next.members[id] = struct{}{}
	}
	return next
}

// with returns a copy with id appended. Callers check membership first.
func (s State[K]) with(id K) State[K] {
	next := s.clone()
	next.order = append(next.order, id)
	next.members[id] = struct{}{}
	return next
}

func (s State[K]) without(id K) State[K] {
	next := s.clone()
	next.order = next.order[:0]
	for _, member := range s.order {
		if member != id {
			next.order = append(next.order, member)
		}
	}
	delete(next.members, id)
	return next
}

func (s State[K]) anchoredAt(index int, id K) State[K] {
	s.anchor, s.anchorID, s.hasAnchor = index, id, true
	return s
}

func (s State[K]) unanchored() State[K] {
	var zero K
	s.anchor, s.anchorID, s.hasAnchor = 0, zero, false
	return s
}
