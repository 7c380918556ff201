package selection

// Controller holds the current [State] for a single displayed list and reports selection changes.
//
// It is not safe for concurrent use; UI layers dispatch one event per interaction from their update loop.
type Controller[K comparable] struct {
	state    State[K]
	onChange func([]K)
}

// NewController creates a [Controller] with an empty selection.
// onChange, if non-nil, receives the selected ids whenever the selected set changes.
func NewController[K comparable](onChange func([]K)) *Controller[K] {
	return &Controller[K]{onChange: onChange}
}

// State returns the current selection value.
func (c *Controller[K]) State() State[K] { return c.state }

// Dispatch applies ev against items and returns the resulting state.
func (c *Controller[K]) Dispatch(items []K, ev Event[K]) State[K] {
	return c.replace(Apply(c.state, items, ev))
}

// Clear empties the selection and drops the anchor.
func (c *Controller[K]) Clear() State[K] {
	return c.replace(Clear[K]())
}

// Retain drops selected ids missing from items, for callers that keep a selection across a filtered list.
func (c *Controller[K]) Retain(items []K) State[K] {
	return c.replace(c.state.Retain(items))
}

func (c *Controller[K]) replace(next State[K]) State[K] {
	prev := c.state
	c.state = next
	if c.onChange != nil && !prev.SameSelection(next) {
		c.onChange(next.Selected())
	}
	return next
}
