package selection

// Toggles is an immutable set of individually flagged ids, e.g. annotations hidden from an overlay.
//
// The zero value is an empty set.
type Toggles[K comparable] struct {
	on map[K]struct{}
}

// Has reports whether id is flagged.
func (t Toggles[K]) Has(id K) bool {
	_, ok := t.on[id]
	return ok
}

func (t Toggles[K]) Len() int { return len(t.on) }

// Flip returns a copy with id's flag inverted.
func (t Toggles[K]) Flip(id K) Toggles[K] {
	return t.Set(id, !t.Has(id))
}

// Set returns a copy with id flagged or unflagged.
func (t Toggles[K]) Set(id K, on bool) Toggles[K] {
	next := make(map[K]struct{}, len(t.on)+1)
	for k := range t.on {
		next[k] = struct{}{}
	}
	if on {
		next[id] = struct{}{}
	} else {
		delete(next, id)
	}
	return Toggles[K]{on: next}
}

// Keys returns the flagged ids in no particular order.
func (t Toggles[K]) Keys() []K {
	out := make([]K, 0, len(t.on))
	for k := range t.on {
		out = append(out, k)
	}
	return out
}
