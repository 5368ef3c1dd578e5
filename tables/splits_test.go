package tables

import (
	"errors"
	"math/rand"
	"testing"
)

func filterOrFatal(t *testing.T, cfg Config, values []float64) []float64 {
	t.Helper()
	out, err := NewSplitFilter(cfg).Filter(values)
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	return out
}

func TestSplitFilter_SortsAndDeduplicates(t *testing.T) {
	got := filterOrFatal(t, DefaultConfig(), []float64{100, 0, 50, 0, 100})
	want := []float64{0, 50, 100}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, got)
			break
		}
	}
}

func TestSplitFilter_MergesWithinTolerance(t *testing.T) {
	// Gap of exactly the tolerance merges to the mean.
	got := filterOrFatal(t, DefaultConfig(), []float64{0, 1, 50})
	if len(got) != 2 || got[0] != 0.5 || got[1] != 50 {
		t.Errorf("Expected [0.5 50], got %v", got)
	}

	// Gap just beyond the tolerance stays distinct.
	got = filterOrFatal(t, DefaultConfig(), []float64{0, 1.1, 50})
	if len(got) != 3 {
		t.Errorf("Expected 3 splits, got %v", got)
	}
}

// Closeness is pairwise, not transitive: after the first two values merge
// to their mean, the third stays when it is beyond the tolerance from it.
func TestSplitFilter_ChainedToleranceNotTransitive(t *testing.T) {
	got := filterOrFatal(t, DefaultConfig(), []float64{0, 0.8, 1.6})
	if len(got) != 2 || got[0] != 0.4 || got[1] != 1.6 {
		t.Errorf("Expected [0.4 1.6], got %v", got)
	}
}

func TestSplitFilter_ChainCollapsesWhenMeansStayClose(t *testing.T) {
	// 0 and 0.5 merge to 0.25; 1.0 is within tolerance of that, so the
	// chain collapses completely.
	got := filterOrFatal(t, DefaultConfig(), []float64{0, 0.5, 1.0})
	if len(got) != 1 || got[0] != 0.625 {
		t.Errorf("Expected [0.625], got %v", got)
	}
}

// Every consecutive gap in the result exceeds the tolerance.
func TestSplitFilter_ResultIsWellSeparated(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(42))

	values := make([]float64, 200)
	for i := range values {
		values[i] = rng.Float64() * 100
	}

	got := filterOrFatal(t, cfg, values)
	for i := 0; i+1 < len(got); i++ {
		if got[i+1]-got[i] <= cfg.BorderWidth {
			t.Fatalf("Splits %g and %g are within tolerance %g", got[i], got[i+1], cfg.BorderWidth)
		}
	}
}

func TestSplitFilter_Idempotent(t *testing.T) {
	cfg := DefaultConfig()
	once := filterOrFatal(t, cfg, []float64{0, 0.4, 0.9, 10, 10.2, 30})
	twice := filterOrFatal(t, cfg, once)

	if len(once) != len(twice) {
		t.Fatalf("Expected idempotent filtering, got %v then %v", once, twice)
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("Expected idempotent filtering, got %v then %v", once, twice)
			break
		}
	}
}

func TestSplitFilter_InputNotMutated(t *testing.T) {
	values := []float64{50, 0, 100}
	if _, err := NewSplitFilter(DefaultConfig()).Filter(values); err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if values[0] != 50 || values[1] != 0 || values[2] != 100 {
		t.Errorf("Input slice was mutated: %v", values)
	}
}

func TestSplitFilter_StepLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSplitSteps = 1

	// Needs two merges: [0 0.5 1 100] -> [0.25 1 100] -> [0.625 100].
	_, err := NewSplitFilter(cfg).Filter([]float64{0, 0.5, 1, 100})
	if err == nil {
		t.Fatal("Expected step limit error, got nil")
	}
	var limit *StepLimitError
	if !errors.As(err, &limit) {
		t.Fatalf("Expected *StepLimitError, got %T: %v", err, err)
	}
	if limit.Limit != 1 {
		t.Errorf("Expected limit 1 in error, got %d", limit.Limit)
	}
}

func TestSplitFilter_EmptyInput(t *testing.T) {
	got := filterOrFatal(t, DefaultConfig(), nil)
	if len(got) != 0 {
		t.Errorf("Expected empty result, got %v", got)
	}
}

func BenchmarkSplitFilter(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	values := make([]float64, 500)
	for i := range values {
		values[i] = rng.Float64() * 1000
	}
	f := NewSplitFilter(DefaultConfig())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Filter(values); err != nil {
			b.Fatal(err)
		}
	}
}
