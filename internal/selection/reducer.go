package selection

// Apply folds ev into s against the current item order and returns the next state.
//
// Events targeting an id that is not in items leave s unchanged.
func Apply[K comparable](s State[K], items []K, ev Event[K]) State[K] {
	idx := indexOf(items, ev.ID)
	if idx < 0 {
		return s
	}

	switch ev.Kind {
	case Plain:
		return plain(s, ev.ID, idx)
	case Toggle:
		return toggle(s, items, ev.ID, idx)
	case Range:
		return extend(s, items, ev.ID, idx)
	default:
		return s
	}
}

// ApplyAll folds events into s in order.
func ApplyAll[K comparable](s State[K], items []K, events ...Event[K]) State[K] {
	for _, ev := range events {
		s = Apply(s, items, ev)
	}
	return s
}

func plain[K comparable](s State[K], id K, idx int) State[K] {
	if s.Len() == 1 && s.order[0] == id {
		return Clear[K]()
	}
	return State[K]{}.with(id).anchoredAt(idx, id)
}

func toggle[K comparable](s State[K], items []K, id K, idx int) State[K] {
	if !s.Contains(id) {
		return s.with(id).anchoredAt(idx, id)
	}

	next := s.without(id)
	switch {
	case next.Len() == 0:
		return next.unanchored()
	case s.hasAnchor && s.anchorID == id:
		// Fall back to the newest surviving member.
		last := next.order[next.Len()-1]
		if i := indexOf(items, last); i >= 0 {
			return next.anchoredAt(i, last)
		}
		return next.unanchored()
	default:
		return next
	}
}

func extend[K comparable](s State[K], items []K, id K, idx int) State[K] {
	if !s.hasAnchor {
		return plain(s, id, idx)
	}

	from := min(s.anchor, len(items)-1)
	lo, hi := Resolve(from, idx)

	next := s.clone()
	add := func(i int) {
		if _, ok := next.members[items[i]]; !ok {
			next.order = append(next.order, items[i])
			next.members[items[i]] = struct{}{}
		}
	}
	// Walk from the anchor toward the target so the target is inserted last.
	if from <= idx {
		for i := lo; i <= hi; i++ {
			add(i)
		}
	} else {
		for i := hi; i >= lo; i-- {
			add(i)
		}
	}
	return next.anchoredAt(idx, id)
}
