// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying table validity,
// per-family shapes, determinism, and sentinel errors.
package builder_test

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/katalvlaran/stablematch/builder"
	"github.com/katalvlaran/stablematch/prefs"
)

// mustRows asserts that both tables of in validate as permutation tables.
func mustRows(t *testing.T, in *prefs.Instance) {
	t.Helper()
	if err := in.Validate(); err != nil {
		t.Fatalf("constructed instance failed validation: %v", err)
	}
}

// TestConstructors_Functional runs table-driven functional tests for each family.
func TestConstructors_Functional(t *testing.T) {
	t.Parallel() // allow this test to run in parallel with others

	const n = 8 // side size shared by all sub-tests

	tests := []struct {
		name        string
		ctor        builder.Constructor
		opts        []builder.Option
		sampleCheck func(t *testing.T, in *prefs.Instance) // family-specific shape checks
	}{
		{
			name: "Uniform(seed=42)",
			ctor: builder.Uniform(),
			opts: []builder.Option{builder.WithSeed(42)},
			sampleCheck: func(t *testing.T, in *prefs.Instance) {
				// Valid permutations are the whole contract; shapes are random.
				mustRows(t, in)
			},
		},
		{
			name: "Aligned()",
			ctor: builder.Aligned(),
			sampleCheck: func(t *testing.T, in *prefs.Instance) {
				mustRows(t, in)
				// Every row must be the identity master list.
				for p := 0; p < n; p++ {
					for k := 0; k < n; k++ {
						if in.Sellers[p][k] != k || in.Buyers[p][k] != k {
							t.Fatalf("Aligned: row %d is not the identity: %v / %v", p, in.Sellers[p], in.Buyers[p])
						}
					}
				}
			},
		},
		{
			name: "Contested(seed=7)",
			ctor: builder.Contested(),
			opts: []builder.Option{builder.WithSeed(7)},
			sampleCheck: func(t *testing.T, in *prefs.Instance) {
				mustRows(t, in)
				// All rows within a side must be the same master list.
				for p := 1; p < n; p++ {
					if !reflect.DeepEqual(in.Sellers[p], in.Sellers[0]) {
						t.Fatalf("Contested: seller row %d differs from the master: %v vs %v", p, in.Sellers[p], in.Sellers[0])
					}
					if !reflect.DeepEqual(in.Buyers[p], in.Buyers[0]) {
						t.Fatalf("Contested: buyer row %d differs from the master: %v vs %v", p, in.Buyers[p], in.Buyers[0])
					}
				}
			},
		},
		{
			name: "Rotated()",
			ctor: builder.Rotated(),
			sampleCheck: func(t *testing.T, in *prefs.Instance) {
				mustRows(t, in)
				// Row p must open with p and wrap around.
				for p := 0; p < n; p++ {
					for k := 0; k < n; k++ {
						if want := (p + k) % n; in.Sellers[p][k] != want {
							t.Fatalf("Rotated: Sellers[%d][%d] = %d; want %d", p, k, in.Sellers[p][k], want)
						}
					}
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in, err := builder.BuildInstance(n, tc.opts, tc.ctor)
			if err != nil {
				t.Fatalf("BuildInstance failed: %v", err)
			}
			if in.Size() != n {
				t.Fatalf("instance size = %d; want %d", in.Size(), n)
			}
			tc.sampleCheck(t, in)
		})
	}
}

// TestBuildInstance_Errors exercises every sentinel the orchestrator and the
// stochastic constructors can return.
func TestBuildInstance_Errors(t *testing.T) {
	t.Parallel()

	// 1. Negative size is rejected before any allocation.
	if _, err := builder.BuildInstance(-1, nil, builder.Aligned()); !errors.Is(err, builder.ErrBadSize) {
		t.Errorf("n=-1: expected ErrBadSize, got %v", err)
	}

	// 2. A nil constructor in the list is a programmer error, not a panic.
	if _, err := builder.BuildInstance(3, nil, nil); !errors.Is(err, builder.ErrConstructFailed) {
		t.Errorf("nil constructor: expected ErrConstructFailed, got %v", err)
	}

	// 3. Stochastic families refuse to run without an explicit RNG.
	if _, err := builder.BuildInstance(3, nil, builder.Uniform()); !errors.Is(err, builder.ErrNeedRandSource) {
		t.Errorf("Uniform without rng: expected ErrNeedRandSource, got %v", err)
	}
	if _, err := builder.BuildInstance(3, nil, builder.Contested()); !errors.Is(err, builder.ErrNeedRandSource) {
		t.Errorf("Contested without rng: expected ErrNeedRandSource, got %v", err)
	}
}

// TestBuildInstance_Determinism locks seed-driven reproducibility and checks
// that WithSeed and an equivalent WithRand produce the same instance.
func TestBuildInstance_Determinism(t *testing.T) {
	t.Parallel()

	const n = 16

	// 1. Same seed twice → identical instances, field by field.
	in1, err := builder.BuildInstance(n, []builder.Option{builder.WithSeed(1234)}, builder.Uniform())
	if err != nil {
		t.Fatalf("first build failed: %v", err)
	}
	in2, err := builder.BuildInstance(n, []builder.Option{builder.WithSeed(1234)}, builder.Uniform())
	if err != nil {
		t.Fatalf("second build failed: %v", err)
	}
	if !reflect.DeepEqual(in1, in2) {
		t.Fatal("same seed produced different instances")
	}

	// 2. WithRand over the same source seed matches WithSeed exactly.
	in3, err := builder.BuildInstance(n, []builder.Option{builder.WithRand(rand.New(rand.NewSource(1234)))}, builder.Uniform())
	if err != nil {
		t.Fatalf("WithRand build failed: %v", err)
	}
	if !reflect.DeepEqual(in1, in3) {
		t.Fatal("WithRand(NewSource(s)) diverged from WithSeed(s)")
	}

	// 3. Different seeds must not collide at this size (16 rows of 16! orders).
	in4, err := builder.BuildInstance(n, []builder.Option{builder.WithSeed(4321)}, builder.Uniform())
	if err != nil {
		t.Fatalf("fourth build failed: %v", err)
	}
	if reflect.DeepEqual(in1, in4) {
		t.Fatal("distinct seeds produced identical instances")
	}
}

// TestBuildInstance_ZeroSize covers the n=0 degenerate instance.
func TestBuildInstance_ZeroSize(t *testing.T) {
	t.Parallel()

	in, err := builder.BuildInstance(0, []builder.Option{builder.WithSeed(1)}, builder.Uniform())
	if err != nil {
		t.Fatalf("n=0 build failed: %v", err)
	}
	if in.Size() != 0 {
		t.Fatalf("n=0 instance size = %d", in.Size())
	}
	if err = in.Validate(); err != nil {
		t.Fatalf("n=0 instance must validate: %v", err)
	}
}

// TestBuildInstance_NoConstructors documents the all-zeros canvas semantics.
func TestBuildInstance_NoConstructors(t *testing.T) {
	t.Parallel()

	in, err := builder.BuildInstance(3, nil)
	if err != nil {
		t.Fatalf("bare build failed: %v", err)
	}
	// Zeroed rows repeat id 0 and therefore are not permutations.
	if err = in.Validate(); !errors.Is(err, prefs.ErrNotPermutation) {
		t.Fatalf("bare canvas must fail validation with ErrNotPermutation, got %v", err)
	}
}

// TestBuildInstance_ComposeLastWins verifies that a later constructor
// overwrites the rows of an earlier one (documented composition order).
func TestBuildInstance_ComposeLastWins(t *testing.T) {
	t.Parallel()

	const n = 5
	in, err := builder.BuildInstance(n, nil, builder.Aligned(), builder.Rotated())
	if err != nil {
		t.Fatalf("composed build failed: %v", err)
	}
	// Rotated ran last, so row 1 must start with 1, not with 0.
	if in.Sellers[1][0] != 1 {
		t.Fatalf("composition order broken: Sellers[1] = %v", in.Sellers[1])
	}
}
