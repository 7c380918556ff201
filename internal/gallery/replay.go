package gallery

import (
	"fmt"
	"strings"

	"github.com/desertthunder/photox/internal/selection"
	"github.com/desertthunder/photox/internal/shared"
)

// Step is one scripted interaction: either a click event or a clear.
type Step struct {
	Event selection.Event[string]
	Clear bool
}

// ParseStep parses "click:ID", "ctrl:ID", "shift:ID" or "clear".
func ParseStep(s string) (Step, error) {
	s = strings.TrimSpace(s)
	if s == "clear" {
		return Step{Clear: true}, nil
	}

	kind, id, ok := strings.Cut(s, ":")
	if !ok || id == "" {
		return Step{}, fmt.Errorf("%w: step %q, expected kind:id", shared.ErrInvalidArgument, s)
	}

	switch kind {
	case "click":
		return Step{Event: selection.PlainClick(id)}, nil
	case "ctrl", "cmd", "toggle":
		return Step{Event: selection.ToggleClick(id)}, nil
	case "shift", "range":
		return Step{Event: selection.RangeClick(id)}, nil
	default:
		return Step{}, fmt.Errorf("%w: unknown step kind %q", shared.ErrInvalidArgument, kind)
	}
}

// ParseSteps parses each element of args, also splitting on commas.
func ParseSteps(args []string) ([]Step, error) {
	var steps []Step
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			step, err := ParseStep(part)
			if err != nil {
				return nil, err
			}
			steps = append(steps, step)
		}
	}
	return steps, nil
}

// Replay folds steps into an empty selection over items.
func Replay(items []string, steps []Step) selection.State[string] {
	state := selection.Clear[string]()
	for _, step := range steps {
		if step.Clear {
			state = selection.Clear[string]()
			continue
		}
		state = selection.Apply(state, items, step.Event)
	}
	return state
}
