package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{10.567, 10.57},
		{10.562, 10.56},
		{24.99, 24.99},
		{-3.333, -3.33},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.in))
	}
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 74.97, Total(24.99, 3))
	assert.Equal(t, 0.0, Total(9.99, 0))
	assert.Equal(t, 0.3, Total(0.1, 3), "totals are rounded, not raw float products")
}
