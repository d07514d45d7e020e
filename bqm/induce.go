// Package bqm - induced sub-models over a variable subset.
package bqm

import "fmt"

// InducedBy returns the sub-model of b over exactly the variables in
// scope, given a sample fixing every excluded variable.
//
// Interactions among scope variables are copied unchanged. The linear
// bias of each kept variable v is adjusted by adding, for every excluded
// neighbor u, fixed[u]·J_uv — so locally optimizing the induced model
// while excluded variables stay at their fixed values is equivalent to
// optimizing the corresponding slice of b's energy landscape. The
// induced model's offset is zero: subproblem energies are comparable to
// each other, not to the full problem's.
//
// Errors: ErrEmptyScope when scope is empty, ErrVariableNotFound when a
// scope variable is absent from b, ErrIncompleteSample when fixed lacks
// a needed excluded-neighbor value. Duplicate scope entries are allowed
// and collapse.
//
// Complexity: O(S·deg·log deg) for S scope variables.
func InducedBy(b *BQM, scope []string, fixed Sample) (*BQM, error) {
	if len(scope) == 0 {
		return nil, ErrEmptyScope
	}
	kept := make(map[string]struct{}, len(scope))
	for _, v := range scope {
		if !b.HasVariable(v) {
			return nil, fmt.Errorf("%w: %q", ErrVariableNotFound, v)
		}
		kept[v] = struct{}{}
	}

	sub := New(b.vartype)
	for v := range kept {
		bias := b.Linear(v)
		neighbors, err := b.Neighbors(v)
		if err != nil {
			return nil, err
		}
		for _, u := range neighbors {
			w, _ := b.Quadratic(u, v)
			if _, in := kept[u]; in {
				if v < u { // each kept pair once
					if err = sub.SetQuadratic(v, u, w); err != nil {
						return nil, err
					}
				}
				continue
			}
			x, ok := fixed[u]
			if !ok {
				return nil, fmt.Errorf("%w: %q (fixed neighbor of %q)", ErrIncompleteSample, u, v)
			}
			bias += w * float64(x)
		}
		if err = sub.SetLinear(v, bias); err != nil {
			return nil, err
		}
	}
	return sub, nil
}
