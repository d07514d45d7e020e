package decompose_test

import (
	"errors"
	"fmt"

	"github.com/hhtong/dwave-hybrid/bqm"
	"github.com/hhtong/dwave-hybrid/decompose"
)

// ExampleEnergyImpactDecomposer shows rolling selection walking down
// the gain ranking across calls, then rewinding once the whole problem
// has been exposed.
func ExampleEnergyImpactDecomposer() {
	b := bqm.New(bqm.Binary)
	_ = b.SetLinear("a", 3.5)
	_ = b.SetLinear("b", 1.5)
	_ = b.SetLinear("c", -0.5)
	_ = b.SetLinear("d", -1.5)
	for _, p := range [][2]string{{"a", "b"}, {"a", "c"}, {"a", "d"}, {"b", "c"}, {"b", "d"}, {"c", "d"}} {
		_ = b.SetQuadratic(p[0], p[1], 0.5)
	}
	ss, _ := bqm.FromSamples(b, bqm.Sample{"a": 1, "b": 1, "c": 1, "d": 1})
	st := decompose.State{Problem: b, Samples: ss}

	d, _ := decompose.NewEnergyImpact(2, decompose.WithRollingHistory(1.0))
	for call := 0; call < 3; call++ {
		out, _ := d.Select(st)
		fmt.Println(out.Subproblem.Variables())
	}
	// Output:
	// [a b]
	// [c d]
	// [a b]
}

// ExampleEnergyImpactDecomposer_endOfStream shows the recoverable
// end-of-stream signal with silent rewind disabled.
func ExampleEnergyImpactDecomposer_endOfStream() {
	b := bqm.New(bqm.Binary)
	_ = b.SetLinear("x", 2)
	_ = b.SetLinear("y", 1)
	ss, _ := bqm.FromSamples(b, bqm.Sample{"x": 1, "y": 1})
	st := decompose.State{Problem: b, Samples: ss}

	d, _ := decompose.NewEnergyImpact(1,
		decompose.WithRollingHistory(1.0),
		decompose.WithSilentRewind(false),
	)
	for call := 0; call < 4; call++ {
		out, err := d.Select(st)
		if errors.Is(err, decompose.ErrEndOfStream) {
			fmt.Println("cycle complete")
			continue
		}
		fmt.Println(out.Subproblem.Variables())
	}
	// Output:
	// [x]
	// [y]
	// cycle complete
	// [x]
}
