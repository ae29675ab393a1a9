package galeshapley_test

import (
	"testing"

	"github.com/katalvlaran/stablematch/builder"
	"github.com/katalvlaran/stablematch/galeshapley"
	"github.com/katalvlaran/stablematch/prefs"
)

// benchSeed pins every benchmark instance so runs are comparable.
const benchSeed int64 = 97

// benchInstance builds one fixed instance outside the timed region.
func benchInstance(b *testing.B, n int, cons builder.Constructor) *prefs.Instance {
	b.Helper()

	in, err := builder.BuildInstance(n,
		[]builder.Option{builder.WithSeed(benchSeed)},
		cons,
	)
	if err != nil {
		b.Fatalf("failed to build n=%d instance: %v", n, err)
	}

	return in
}

// BenchmarkSolveUniform_n256 measures the engine alone on a uniformly
// random 256×256 instance.
func BenchmarkSolveUniform_n256(b *testing.B) {
	in := benchInstance(b, 256, builder.Uniform())

	b.ReportAllocs()
	b.ResetTimer()
	var it int
	for it = 0; it < b.N; it++ {
		if _, err := galeshapley.Solve(in); err != nil {
			b.Fatalf("solve: %v", err)
		}
	}
}

// BenchmarkSolveUniform_n1024 is the headline O(n²) data point.
func BenchmarkSolveUniform_n1024(b *testing.B) {
	in := benchInstance(b, 1024, builder.Uniform())

	b.ReportAllocs()
	b.ResetTimer()
	var it int
	for it = 0; it < b.N; it++ {
		if _, err := galeshapley.Solve(in); err != nil {
			b.Fatalf("solve: %v", err)
		}
	}
}

// BenchmarkSolveContested_n1024 stresses the rejection path: identical
// master lists force the longest realistic proposal chains.
func BenchmarkSolveContested_n1024(b *testing.B) {
	in := benchInstance(b, 1024, builder.Contested())

	b.ReportAllocs()
	b.ResetTimer()
	var it int
	for it = 0; it < b.N; it++ {
		if _, err := galeshapley.Solve(in); err != nil {
			b.Fatalf("solve: %v", err)
		}
	}
}

// BenchmarkVerify_n1024 prices the independent stability audit.
func BenchmarkVerify_n1024(b *testing.B) {
	in := benchInstance(b, 1024, builder.Uniform())
	res, err := galeshapley.Solve(in)
	if err != nil {
		b.Fatalf("solve: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	var it int
	for it = 0; it < b.N; it++ {
		if err = galeshapley.Verify(in, res); err != nil {
			b.Fatalf("verify: %v", err)
		}
	}
}
