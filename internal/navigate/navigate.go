package navigate

import (
	"fmt"

	"tomlgen/internal/indexpath"
	"tomlgen/internal/value"
)

// Lookup applies each step of path to root and returns the selected
// value. Misses degrade to the empty value instead of failing; the
// result is a pure function of root and path.
func Lookup(root value.Value, path indexpath.Path) value.Value {
	current := root

	for _, step := range path {
		next, err := apply(current, step, 0)
		if err != nil {
			current = value.Empty()

			continue
		}

		current = next
	}

	return current
}

// LookupStrict applies each step of path to root and fails on the first
// miss, reporting the 1-based segment number.
func LookupStrict(root value.Value, path indexpath.Path) (value.Value, error) {
	current := root

	for i, step := range path {
		next, err := apply(current, step, i+1)
		if err != nil {
			return nil, err
		}

		current = next
	}

	return current, nil
}

// apply performs a single navigation step. segment is the 1-based
// position used in error messages.
func apply(current value.Value, step indexpath.Step, segment int) (value.Value, error) {
	switch step.Kind {
	case indexpath.StepKey:
		table, ok := current.(value.Table)
		if !ok {
			return nil, fmt.Errorf("segment %d: cannot index %s with key %q", segment, current.Kind(), step.Key)
		}

		v, ok := table.Get(step.Key)
		if !ok {
			return nil, fmt.Errorf("segment %d: key %q not found", segment, step.Key)
		}

		return v, nil

	case indexpath.StepIndex:
		arr, ok := current.(value.Array)
		if !ok {
			return nil, fmt.Errorf("segment %d: cannot index %s with position %d", segment, current.Kind(), step.Index)
		}

		if step.Index >= uint64(len(arr)) {
			return nil, fmt.Errorf("segment %d: position %d out of range (array has %d elements)", segment, step.Index, len(arr))
		}

		return arr[step.Index], nil

	default:
		return nil, fmt.Errorf("segment %d: unknown step kind", segment)
	}
}
