// Package decompose - the trivial identity strategy.
package decompose

// IdentityDecomposer exposes the entire problem as the "subproblem",
// unchanged. Useful when a caller wants the composition machinery
// (parallel branches, racing) without actual decomposition.
type IdentityDecomposer struct{}

// NewIdentity creates an identity decomposer.
func NewIdentity() *IdentityDecomposer { return &IdentityDecomposer{} }

// Setup implements Decomposer; nothing to prepare.
func (d *IdentityDecomposer) Setup(State) error { return nil }

// Select returns the state with the full problem as its subproblem.
func (d *IdentityDecomposer) Select(st State) (State, error) {
	if st.Problem == nil {
		return st, ErrMissingProblem
	}
	return st.WithSubproblem(st.Problem), nil
}
