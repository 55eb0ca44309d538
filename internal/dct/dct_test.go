package dct

import (
	"fmt"
	"math"
	"testing"
)

// naiveDCTII computes the unnormalized DCT-II directly from its definition.
func naiveDCTII(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		var sum float64
		for i := 0; i < n; i++ {
			sum += x[i] * math.Cos(math.Pi*float64(k)*float64(2*i+1)/float64(2*n))
		}
		out[k] = sum
	}
	return out
}

func TestTransform_MatchesNaive(t *testing.T) {
	const tolerance = 1e-9

	sizes := []int{1, 2, 4, 8, 16, 32, 64}

	for _, n := range sizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			x := make([]float64, n)
			for i := range x {
				x[i] = math.Sin(0.7*float64(i)+0.3) + 0.5*math.Cos(1.9*float64(i))
			}

			want := naiveDCTII(x)

			d := New(n)
			d.Transform(x)

			for k := range want {
				if diff := math.Abs(x[k] - want[k]); diff > tolerance {
					t.Errorf("X[%d] = %v, want %v (diff %v)", k, x[k], want[k], diff)
				}
			}
		})
	}
}

func TestTransform_SizeOneIsIdentity(t *testing.T) {
	d := New(1)
	x := []float64{3.25}
	d.Transform(x)
	if x[0] != 3.25 {
		t.Errorf("X[0] = %v, want 3.25", x[0])
	}
}

func TestNew_StageTables(t *testing.T) {
	tests := []struct {
		n          int
		wantStages int
	}{
		{1, 0},
		{2, 1},
		{8, 3},
		{64, 6},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			d := New(tt.n)
			if d.Size() != tt.n {
				t.Errorf("Size() = %d, want %d", d.Size(), tt.n)
			}
			if len(d.stages) != tt.wantStages {
				t.Fatalf("len(stages) = %d, want %d", len(d.stages), tt.wantStages)
			}
			for s, tab := range d.stages {
				wantLen := tt.n >> (s + 1)
				if len(tab) != wantLen {
					t.Errorf("len(stages[%d]) = %d, want %d", s, len(tab), wantLen)
				}
			}
			if len(d.scratch) != tt.n {
				t.Errorf("len(scratch) = %d, want %d", len(d.scratch), tt.n)
			}
		})
	}
}

func TestNew_PanicsOnInvalidSize(t *testing.T) {
	for _, n := range []int{0, -1, 3, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d) did not panic", n)
				}
			}()
			New(n)
		})
	}
}

func TestTransform_PanicsOnLengthMismatch(t *testing.T) {
	d := New(8)

	defer func() {
		if recover() == nil {
			t.Error("Transform with mis-sized buffer did not panic")
		}
	}()
	d.Transform(make([]float64, 4))
}
