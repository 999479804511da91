package signal

import "testing"

func TestResampleLinear(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 10, 20}
	got, err := Resample(xs, ys, []float64{0.5, 1.5, 2})
	if err != nil {
		t.Fatalf("resample: %v", err)
	}
	almostEqual(t, got, []float64{5, 15, 20})
}

func TestResampleClampsOutOfRange(t *testing.T) {
	got, err := Resample([]float64{0, 1}, []float64{3, 7}, []float64{-1, 2})
	if err != nil {
		t.Fatalf("resample: %v", err)
	}
	almostEqual(t, got, []float64{3, 7})
}

func TestResampleErrors(t *testing.T) {
	if _, err := Resample([]float64{0}, []float64{1}, nil); err == nil {
		t.Fatal("want error for a single sample")
	}
	if _, err := Resample([]float64{0, 1}, []float64{1}, nil); err == nil {
		t.Fatal("want error for mismatched lengths")
	}
	if _, err := Resample([]float64{1, 0}, []float64{1, 2}, nil); err == nil {
		t.Fatal("want error for non-increasing time values")
	}
}
