package indexpath

import (
	"strconv"
	"strings"
)

// StepKind identifies the variant of a Step.
type StepKind int

const (
	// StepKey selects the value under a string key in a table.
	StepKey StepKind = iota
	// StepIndex selects the n-th element of an array.
	StepIndex
)

// Step is a single navigation instruction: either a table key or an
// array index.
type Step struct {
	Kind  StepKind
	Key   string
	Index uint64
}

// Key returns a key-selecting step.
func Key(key string) Step {
	return Step{Kind: StepKey, Key: key}
}

// Index returns an index-selecting step.
func Index(n uint64) Step {
	return Step{Kind: StepIndex, Index: n}
}

// String renders the step the way it appears in a path expression.
func (s Step) String() string {
	if s.Kind == StepKey {
		return strconv.Quote(s.Key)
	}

	return strconv.FormatUint(s.Index, 10)
}

// Path is an ordered, non-empty sequence of steps. It is built once by
// Parse and never mutated afterwards.
type Path []Step

// String renders the path in source form, steps joined by dots.
func (p Path) String() string {
	parts := make([]string, 0, len(p))
	for _, s := range p {
		parts = append(parts, s.String())
	}

	return strings.Join(parts, ".")
}
