package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 1, -5, 5, 1},
		{"below", -7, -5, 5, -5},
		{"above", 9, -5, 5, 5},
		{"edge", 5, -5, 5, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Clamp(c.v, c.lo, c.hi))
		})
	}
}

func TestSign(t *testing.T) {
	assert.Equal(t, -1.0, Sign(-0.3))
	assert.Equal(t, 1.0, Sign(0.3))
	assert.Equal(t, 1.0, Sign(0))
}

func TestLerp(t *testing.T) {
	assert.InDelta(t, 5.0, Lerp(0, 10, 0.5), 1e-9)
	assert.InDelta(t, 0.0, Lerp(0, 10, 0), 1e-9)
}

func TestSmoothDampConvergesWithoutOvershoot(t *testing.T) {
	cur := 0.0
	vel := 0.0
	for i := 0; i < 600; i++ {
		cur = SmoothDamp(cur, 8, &vel, 0.2, 1.0/60.0)
		if cur > 8 {
			t.Fatalf("overshoot at step %d: %v", i, cur)
		}
	}
	assert.InDelta(t, 8.0, cur, 1e-3)
}

func TestSmoothDampZeroDt(t *testing.T) {
	vel := 0.0
	assert.Equal(t, 3.0, SmoothDamp(3, 8, &vel, 0.2, 0))
}
