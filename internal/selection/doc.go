// Package selection implements the multi-selection model used by gallery grids.
//
// A [State] is an immutable value holding the selected ids and the anchor
// used as the origin of range selections. [Apply] folds a single [Event]
// into a state against the current item order:
//
//   - [PlainClick] selects exactly one item, or clears when that item is already the sole selection
//   - [ToggleClick] flips one item's membership (ctrl/cmd-click)
//   - [RangeClick] unions every item between the anchor and the target (shift-click)
//
// Item positions are never cached. Every call resolves ids against the items
// slice it is given, so the list may be reordered or filtered between events.
//
// [Controller] wraps the reducer for UI layers that want a change callback,
// and [Toggles] applies the same immutable-set approach to per-item visibility flags.
package selection
