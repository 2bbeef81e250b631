// Package selector_test contains functional tests for fragment chain
// construction, verifying the ordering contract, singleton uniqueness,
// combinator validation, and the fail-fast error surface.
package selector_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/cssel/selector"
	"github.com/stretchr/testify/require"
)

// chain applies steps left to right, failing the test on any step error.
// It keeps table cases readable: each step extends the previous value.
type step func(*selector.Selector) (*selector.Selector, error)

func build(t *testing.T, root *selector.Selector, steps ...step) *selector.Selector {
	t.Helper()
	sel := root
	for _, fn := range steps {
		next, err := fn(sel)
		require.NoError(t, err)
		sel = next
	}

	return sel
}

// TestExtend_OrderViolation verifies that adding a fragment whose kind
// precedes one already present anywhere in the chain fails with
// ErrFragmentOrder at the violating call.
func TestExtend_OrderViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		root *selector.Selector
		ext  step
	}{
		{
			name: "id after class",
			root: selector.Class("a"),
			ext:  func(s *selector.Selector) (*selector.Selector, error) { return s.ID("x") },
		},
		{
			name: "element after id",
			root: selector.ID("main"),
			ext:  func(s *selector.Selector) (*selector.Selector, error) { return s.Element("div") },
		},
		{
			name: "class after attribute",
			root: selector.Attr(`href$=".png"`),
			ext:  func(s *selector.Selector) (*selector.Selector, error) { return s.Class("x") },
		},
		{
			name: "attribute after pseudo-class",
			root: selector.PseudoClass("focus"),
			ext:  func(s *selector.Selector) (*selector.Selector, error) { return s.Attr("disabled") },
		},
		{
			name: "pseudo-class after pseudo-element",
			root: selector.PseudoElement("before"),
			ext:  func(s *selector.Selector) (*selector.Selector, error) { return s.PseudoClass("hover") },
		},
		{
			name: "violation deep in the chain",
			root: build(t, selector.Element("div"),
				func(s *selector.Selector) (*selector.Selector, error) { return s.Class("a") },
				func(s *selector.Selector) (*selector.Selector, error) { return s.PseudoClass("hover") },
			),
			ext: func(s *selector.Selector) (*selector.Selector, error) { return s.Attr("checked") },
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.ext(tc.root)
			require.ErrorIs(t, err, selector.ErrFragmentOrder)
			require.Nil(t, got, "a rejected call must return no value")
		})
	}
}

// TestExtend_DuplicateSingleton verifies that element, id, and
// pseudo-element are rejected the second time they appear in one chain.
func TestExtend_DuplicateSingleton(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		root *selector.Selector
		ext  step
	}{
		{
			name: "second id",
			root: selector.ID("a"),
			ext:  func(s *selector.Selector) (*selector.Selector, error) { return s.ID("b") },
		},
		{
			name: "second element",
			root: selector.Element("div"),
			ext:  func(s *selector.Selector) (*selector.Selector, error) { return s.Element("p") },
		},
		{
			name: "second pseudo-element",
			root: build(t, selector.Element("p"),
				func(s *selector.Selector) (*selector.Selector, error) { return s.PseudoElement("before") },
			),
			ext: func(s *selector.Selector) (*selector.Selector, error) { return s.PseudoElement("after") },
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.ext(tc.root)
			require.ErrorIs(t, err, selector.ErrDuplicateFragment)
			require.Nil(t, got)
		})
	}
}

// TestExtend_RepeatableKinds verifies that class, attribute, and
// pseudo-class may repeat any number of times.
func TestExtend_RepeatableKinds(t *testing.T) {
	t.Parallel()

	sel := build(t, selector.Class("a"),
		func(s *selector.Selector) (*selector.Selector, error) { return s.Class("b") },
		func(s *selector.Selector) (*selector.Selector, error) { return s.Class("c") },
		func(s *selector.Selector) (*selector.Selector, error) { return s.Attr("draggable") },
		func(s *selector.Selector) (*selector.Selector, error) { return s.Attr(`lang|="en"`) },
		func(s *selector.Selector) (*selector.Selector, error) { return s.PseudoClass("hover") },
		func(s *selector.Selector) (*selector.Selector, error) { return s.PseudoClass("focus") },
	)
	require.Equal(t, `.a.b.c[draggable][lang|="en"]:hover:focus`, sel.String())
}

// TestExtend_NilReceiver verifies that a nil *Selector acts as the empty
// chain: every fragment method starts a fresh selector from it.
func TestExtend_NilReceiver(t *testing.T) {
	t.Parallel()

	var empty *selector.Selector
	sel, err := empty.Element("div")
	require.NoError(t, err)
	require.Equal(t, "div", sel.String())
	require.Equal(t, "", empty.String())
}

// TestCombine_TokenValidation verifies Combine accepts exactly the four
// combinator tokens and rejects everything else.
func TestCombine_TokenValidation(t *testing.T) {
	t.Parallel()

	left := selector.Element("div")
	right := selector.Element("p")

	for _, op := range []selector.Combinator{
		selector.Descendant, selector.Child, selector.Adjacent, selector.General,
	} {
		sel, err := selector.Combine(left, op, right)
		require.NoError(t, err, "token %q must be accepted", string(op))
		require.NotNil(t, sel)
	}

	for _, op := range []selector.Combinator{"", "||", ">>", "  ", "a"} {
		sel, err := selector.Combine(left, op, right)
		require.ErrorIs(t, err, selector.ErrBadCombinator, "token %q must be rejected", string(op))
		require.Nil(t, sel)
	}
}

// TestCombine_NilOperand verifies both sides of a combination must be
// already built selectors.
func TestCombine_NilOperand(t *testing.T) {
	t.Parallel()

	sel, err := selector.Combine(nil, selector.Child, selector.Element("p"))
	require.ErrorIs(t, err, selector.ErrNilSelector)
	require.Nil(t, sel)

	sel, err = selector.Combine(selector.Element("p"), selector.Child, nil)
	require.ErrorIs(t, err, selector.ErrNilSelector)
	require.Nil(t, sel)
}

// TestBaseReuse verifies the persistence law: extending a shared base in
// two directions never lets one extension observe the other.
func TestBaseReuse(t *testing.T) {
	t.Parallel()

	a := selector.Class("x")
	b, err := a.Class("y")
	require.NoError(t, err)
	c, err := a.Class("z")
	require.NoError(t, err)

	require.Equal(t, ".x.y", b.String())
	require.Equal(t, ".x.z", c.String())
	require.Equal(t, ".x", a.String(), "the base itself must stay untouched")
}

// TestErrorContext verifies error context carries the method name and the
// offending value while preserving the sentinel for errors.Is.
func TestErrorContext(t *testing.T) {
	t.Parallel()

	_, err := selector.Class("a").ID("x")
	require.Error(t, err)
	require.True(t, errors.Is(err, selector.ErrFragmentOrder))
	require.Contains(t, err.Error(), `ID("x")`)
}
