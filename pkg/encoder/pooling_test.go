package encoder

import (
	"math"
	"testing"
)

func TestMeanPooling(t *testing.T) {
	t.Run("averages only attended tokens", func(t *testing.T) {
		// batch=1, seq=3, hidden=2; third token is padding
		states := []float32{
			1, 2,
			3, 4,
			100, 100,
		}
		mask := []int64{1, 1, 0}

		got := meanPooling(states, mask, 1, 3, 2)
		want := []float32{2, 3}

		for i := range want {
			if got[0][i] != want[i] {
				t.Errorf("component %d mismatch: got %v, want %v", i, got[0][i], want[i])
			}
		}
	})

	t.Run("independent batch rows", func(t *testing.T) {
		// batch=2, seq=2, hidden=1
		states := []float32{
			2, 4,
			6, 10,
		}
		mask := []int64{1, 1, 1, 1}

		got := meanPooling(states, mask, 2, 2, 1)
		if got[0][0] != 3 {
			t.Errorf("row 0 mismatch: got %v, want 3", got[0][0])
		}
		if got[1][0] != 8 {
			t.Errorf("row 1 mismatch: got %v, want 8", got[1][0])
		}
	})

	t.Run("all-zero mask yields zero vector", func(t *testing.T) {
		states := []float32{1, 2, 3, 4}
		mask := []int64{0, 0}

		got := meanPooling(states, mask, 1, 2, 2)
		for i, v := range got[0] {
			if v != 0 {
				t.Errorf("component %d mismatch: got %v, want 0", i, v)
			}
		}
	})
}

func TestCLSPooling(t *testing.T) {
	// batch=2, seq=2, hidden=2
	states := []float32{
		1, 2,
		9, 9,
		3, 4,
		9, 9,
	}

	got := clsPooling(states, 2, 2, 2)
	if got[0][0] != 1 || got[0][1] != 2 {
		t.Errorf("row 0 mismatch: got %v, want [1 2]", got[0])
	}
	if got[1][0] != 3 || got[1][1] != 4 {
		t.Errorf("row 1 mismatch: got %v, want [3 4]", got[1])
	}
}

func TestL2Normalize(t *testing.T) {
	t.Run("unit norm", func(t *testing.T) {
		v := []float32{3, 4}
		l2Normalize(v)

		var sum float64
		for _, x := range v {
			sum += float64(x) * float64(x)
		}
		if math.Abs(math.Sqrt(sum)-1) > 1e-6 {
			t.Errorf("norm mismatch: got %v, want 1", math.Sqrt(sum))
		}
		if math.Abs(float64(v[0])-0.6) > 1e-6 {
			t.Errorf("component 0 mismatch: got %v, want 0.6", v[0])
		}
	})

	t.Run("zero vector stays zero", func(t *testing.T) {
		v := []float32{0, 0, 0}
		l2Normalize(v)
		for i, x := range v {
			if x != 0 {
				t.Errorf("component %d mismatch: got %v, want 0", i, x)
			}
		}
	})
}
