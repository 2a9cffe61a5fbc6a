package montecarlo

import (
	"math"
	"math/rand"
	"testing"
)

func TestPercentile_Interpolation(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	cases := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{50, 5.5}, // rank 4.5, halfway between 5 and 6
		{100, 10},
		{25, 3.25},
		{90, 9.1},
	}
	for _, tc := range cases {
		got := Percentile(values, tc.p)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("P%.0f: expected %f, got %f", tc.p, tc.want, got)
		}
	}
}

func TestPercentile_UnsortedInput(t *testing.T) {
	// Input order must not matter and the input must not be mutated.
	values := []float64{9, 1, 5, 3, 7}
	got := Percentile(values, 50)
	if got != 5 {
		t.Errorf("Expected median 5, got %f", got)
	}
	if values[0] != 9 {
		t.Errorf("Percentile mutated its input: %v", values)
	}
}

func TestPercentile_ClampsOutOfRange(t *testing.T) {
	values := []float64{2, 4, 6}
	if got := Percentile(values, -10); got != 2 {
		t.Errorf("Expected clamp to minimum 2, got %f", got)
	}
	if got := Percentile(values, 150); got != 6 {
		t.Errorf("Expected clamp to maximum 6, got %f", got)
	}
}

func TestPercentile_Empty(t *testing.T) {
	if got := Percentile(nil, 50); got != 0 {
		t.Errorf("Expected 0 for empty input, got %f", got)
	}
}

func TestSampleTriangular_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 10000; i++ {
		v := sampleTriangular(rng, 8, 10, 12)
		if v < 8 || v > 12 {
			t.Fatalf("sample %d outside [8, 12]: %f", i, v)
		}
	}
}

func TestSampleTriangular_DegenerateWidth(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	if v := sampleTriangular(rng, 5, 5, 5); v != 5 {
		t.Errorf("Expected point mass at the mode, got %f", v)
	}
}

func TestSampleTriangular_MeanNearExpectation(t *testing.T) {
	// The triangular mean is (low + mode + high) / 3 = 10 for (8, 10, 12).
	rng := rand.New(rand.NewSource(23))
	var sum float64
	const n = 50000
	for i := 0; i < n; i++ {
		sum += sampleTriangular(rng, 8, 10, 12)
	}
	mean := sum / n
	if math.Abs(mean-10) > 0.05 {
		t.Errorf("Expected sample mean near 10, got %f", mean)
	}
}
