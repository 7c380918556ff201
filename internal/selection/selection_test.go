package selection

import (
	"slices"
	"testing"
)

func assertSelected[K comparable](t *testing.T, s State[K], want ...K) {
	t.Helper()
	if s.Len() != len(want) {
		t.Fatalf("expected %d selected, got %d (%v)", len(want), s.Len(), s.Selected())
	}
	for _, id := range want {
		if !s.Contains(id) {
			t.Errorf("expected %v to be selected, got %v", id, s.Selected())
		}
	}
}

func assertAnchor[K comparable](t *testing.T, s State[K], want int) {
	t.Helper()
	got, ok := s.Anchor()
	if !ok {
		t.Fatalf("expected anchor %d, got none", want)
	}
	if got != want {
		t.Errorf("expected anchor %d, got %d", want, got)
	}
}

func assertNoAnchor[K comparable](t *testing.T, s State[K]) {
	t.Helper()
	if got, ok := s.Anchor(); ok {
		t.Errorf("expected no anchor, got %d", got)
	}
}

func TestResolve(t *testing.T) {
	tt := []struct {
		name   string
		a, b   int
		lo, hi int
	}{
		{name: "ascending", a: 1, b: 4, lo: 1, hi: 4},
		{name: "descending", a: 7, b: 2, lo: 2, hi: 7},
		{name: "equal", a: 3, b: 3, lo: 3, hi: 3},
		{name: "zero", a: 0, b: 0, lo: 0, hi: 0},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			lo, hi := Resolve(tc.a, tc.b)
			if lo != tc.lo || hi != tc.hi {
				t.Errorf("Resolve(%d, %d) = (%d, %d), want (%d, %d)", tc.a, tc.b, lo, hi, tc.lo, tc.hi)
			}
		})
	}
}

func TestEventFor(t *testing.T) {
	tt := []struct {
		name        string
		ctrl, shift bool
		want        EventKind
	}{
		{name: "no modifiers", want: Plain},
		{name: "ctrl", ctrl: true, want: Toggle},
		{name: "shift", shift: true, want: Range},
		{name: "ctrl wins over shift", ctrl: true, shift: true, want: Toggle},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			ev := EventFor("a", tc.ctrl, tc.shift)
			if ev.Kind != tc.want {
				t.Errorf("EventFor() kind = %v, want %v", ev.Kind, tc.want)
			}
			if ev.ID != "a" {
				t.Errorf("EventFor() id = %v, want a", ev.ID)
			}
		})
	}
}

func TestApply(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	t.Run("PlainClick", func(t *testing.T) {
		t.Run("selects a single item and anchors it", func(t *testing.T) {
			s := Apply(Clear[int](), items, PlainClick(1))
			assertSelected(t, s, 1)
			assertAnchor(t, s, 0)
		})

		t.Run("replaces an existing selection", func(t *testing.T) {
			s := Apply(Of(1, 2, 3), items, PlainClick(5))
			assertSelected(t, s, 5)
			assertAnchor(t, s, 4)
		})

		t.Run("clicking the sole selected item clears", func(t *testing.T) {
			s := Apply(Of(7), []int{6, 7, 8}, PlainClick(7))
			assertSelected(t, s)
			assertNoAnchor(t, s)
		})

		t.Run("last of a sequence wins", func(t *testing.T) {
			s := ApplyAll(Clear[int](), items, PlainClick(2), PlainClick(5), PlainClick(1), PlainClick(3))
			assertSelected(t, s, 3)
			assertAnchor(t, s, 2)
		})
	})

	t.Run("RangeClick", func(t *testing.T) {
		t.Run("extends from the anchor", func(t *testing.T) {
			s := Apply(Clear[int](), items, PlainClick(1))
			s = Apply(s, items, RangeClick(4))
			assertSelected(t, s, 1, 2, 3, 4)
			assertAnchor(t, s, 3)
		})

		t.Run("extends backwards", func(t *testing.T) {
			s := Apply(Clear[int](), items, PlainClick(5))
			s = Apply(s, items, RangeClick(2))
			assertSelected(t, s, 2, 3, 4, 5)
			assertAnchor(t, s, 1)
		})

		t.Run("without an anchor behaves like a plain click", func(t *testing.T) {
			got := Apply(Clear[int](), items, RangeClick(3))
			want := Apply(Clear[int](), items, PlainClick(3))
			if !got.SameSelection(want) {
				t.Errorf("expected %v, got %v", want.Selected(), got.Selected())
			}
			assertAnchor(t, got, 2)
		})

		t.Run("keeps selections outside the range", func(t *testing.T) {
			s := ApplyAll(Clear[int](), items, PlainClick(1), ToggleClick(5), RangeClick(3))
			assertSelected(t, s, 1, 3, 4, 5)
			assertAnchor(t, s, 2)
		})

		t.Run("subsequent ranges extend from the new terminus", func(t *testing.T) {
			s := ApplyAll(Clear[int](), items, PlainClick(1), RangeClick(2), RangeClick(5))
			assertSelected(t, s, 1, 2, 3, 4, 5)
			assertAnchor(t, s, 4)
		})

		t.Run("target is inserted last", func(t *testing.T) {
			s := ApplyAll(Clear[int](), items, PlainClick(4), RangeClick(1))
			want := []int{4, 3, 2, 1}
			if got := s.Selected(); !slices.Equal(got, want) {
				t.Errorf("expected insertion order %v, got %v", want, got)
			}
		})

		t.Run("clamps an anchor beyond a shrunken list", func(t *testing.T) {
			s := Apply(Clear[int](), items, PlainClick(5))
			shorter := []int{1, 2, 3}
			s = Apply(s, shorter, RangeClick(1))
			assertSelected(t, s, 5, 1, 2, 3)
			assertAnchor(t, s, 0)
		})
	})

	t.Run("ToggleClick", func(t *testing.T) {
		t.Run("removing a non-anchor leaves the anchor", func(t *testing.T) {
			s := ApplyAll(Clear[int](), items, PlainClick(1), RangeClick(4))
			s = Apply(s, items, ToggleClick(2))
			assertSelected(t, s, 1, 3, 4)
			assertAnchor(t, s, 3)
		})

		t.Run("adding anchors the target", func(t *testing.T) {
			s := ApplyAll(Clear[int](), items, PlainClick(1), ToggleClick(4))
			assertSelected(t, s, 1, 4)
			assertAnchor(t, s, 3)
		})

		t.Run("removing the last member drops the anchor", func(t *testing.T) {
			s := ApplyAll(Clear[int](), items, ToggleClick(2), ToggleClick(2))
			assertSelected(t, s)
			assertNoAnchor(t, s)
		})

		t.Run("removing the anchor falls back to the newest member", func(t *testing.T) {
			s := ApplyAll(Clear[int](), items, ToggleClick(1), ToggleClick(3), ToggleClick(5), ToggleClick(2))
			s = Apply(s, items, ToggleClick(2))
			assertSelected(t, s, 1, 3, 5)
			assertAnchor(t, s, 4)
			if id, _ := s.AnchorID(); id != 5 {
				t.Errorf("expected anchor id 5, got %d", id)
			}
		})

		t.Run("fallback member missing from items drops the anchor", func(t *testing.T) {
			s := ApplyAll(Clear[int](), items, ToggleClick(1), ToggleClick(3), ToggleClick(2))
			s = Apply(s, []int{1, 2, 4}, ToggleClick(2))
			assertSelected(t, s, 1, 3)
			assertNoAnchor(t, s)
		})

		t.Run("twice restores the selection", func(t *testing.T) {
			for _, id := range items {
				before := ApplyAll(Clear[int](), items, PlainClick(2), RangeClick(4))
				after := ApplyAll(before, items, ToggleClick(id), ToggleClick(id))
				if !after.SameSelection(before) {
					t.Errorf("toggling %d twice: expected %v, got %v", id, before.Selected(), after.Selected())
				}
			}
		})
	})

	t.Run("stale ids are no-ops", func(t *testing.T) {
		s := ApplyAll(Clear[int](), items, PlainClick(2), RangeClick(3))
		for _, ev := range []Event[int]{PlainClick(99), ToggleClick(99), RangeClick(99)} {
			got := Apply(s, items, ev)
			assertSelected(t, got, 2, 3)
			assertAnchor(t, got, 2)
		}
	})

	t.Run("does not mutate the input state", func(t *testing.T) {
		before := ApplyAll(Clear[int](), items, PlainClick(1), RangeClick(3))
		_ = Apply(before, items, ToggleClick(2))
		_ = Apply(before, items, RangeClick(5))
		_ = Apply(before, items, PlainClick(4))
		assertSelected(t, before, 1, 2, 3)
		assertAnchor(t, before, 2)
		if got := before.Selected(); !slices.Equal(got, []int{1, 2, 3}) {
			t.Errorf("expected order [1 2 3], got %v", got)
		}
	})
}

func TestState(t *testing.T) {
	t.Run("zero value is empty", func(t *testing.T) {
		var s State[string]
		assertSelected(t, s)
		assertNoAnchor(t, s)
	})

	t.Run("Of ignores duplicates", func(t *testing.T) {
		s := Of("a", "b", "a")
		assertSelected(t, s, "a", "b")
	})

	t.Run("Retain drops stale ids", func(t *testing.T) {
		s := ApplyAll(Clear[string](), []string{"a", "b", "c"}, PlainClick("a"), RangeClick("c"))
		s = s.Retain([]string{"c", "a"})
		assertSelected(t, s, "a", "c")
		assertAnchor(t, s, 2)
	})

	t.Run("Selected returns a copy", func(t *testing.T) {
		s := Of("a", "b")
		ids := s.Selected()
		ids[0] = "z"
		if !s.Contains("a") || s.Contains("z") {
			t.Errorf("mutating Selected() leaked into state: %v", s.Selected())
		}
	})
}

func TestController(t *testing.T) {
	items := []string{"a", "b", "c"}

	t.Run("notifies on change", func(t *testing.T) {
		var calls [][]string
		c := NewController(func(ids []string) { calls = append(calls, ids) })

		c.Dispatch(items, PlainClick("a"))
		c.Dispatch(items, RangeClick("c"))
		c.Dispatch(items, PlainClick("zzz"))
		c.Clear()

		if len(calls) != 3 {
			t.Fatalf("expected 3 notifications, got %d: %v", len(calls), calls)
		}
		if len(calls[1]) != 3 {
			t.Errorf("expected 3 ids after range, got %v", calls[1])
		}
		if len(calls[2]) != 0 {
			t.Errorf("expected empty selection after clear, got %v", calls[2])
		}
	})

	t.Run("anchor-only changes are silent", func(t *testing.T) {
		count := 0
		c := NewController(func([]string) { count++ })
		c.Dispatch(items, PlainClick("a"))
		c.Dispatch(items, RangeClick("a"))
		if count != 1 {
			t.Errorf("expected 1 notification, got %d", count)
		}
	})

	t.Run("Retain prunes after a filter", func(t *testing.T) {
		c := NewController[string](nil)
		c.Dispatch(items, PlainClick("a"))
		c.Dispatch(items, ToggleClick("b"))
		s := c.Retain([]string{"b", "c"})
		assertSelected(t, s, "b")
	})
}

func TestToggles(t *testing.T) {
	var hidden Toggles[string]
	a := hidden.Flip("face-1")
	b := a.Flip("face-2").Flip("face-1")

	if hidden.Len() != 0 {
		t.Errorf("expected zero value to stay empty, got %d", hidden.Len())
	}
	if !a.Has("face-1") || a.Has("face-2") {
		t.Errorf("unexpected flags after first flip: %v", a.Keys())
	}
	if b.Has("face-1") || !b.Has("face-2") {
		t.Errorf("unexpected flags after second flip: %v", b.Keys())
	}
	if c := b.Set("face-2", true); c.Len() != 1 {
		t.Errorf("Set on an existing flag should be idempotent, got %v", c.Keys())
	}
}
