package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		stop     float64
		n        int
		expected []float64
	}{
		{name: "Zero pontos", start: 20, stop: 120, n: 0, expected: []float64{}},
		{name: "Um ponto", start: 20, stop: 120, n: 1, expected: []float64{20}},
		{name: "Dois pontos", start: 2, stop: 5, n: 2, expected: []float64{2, 5}},
		{name: "Cinco pontos", start: 200, stop: 300, n: 5, expected: []float64{200, 225, 250, 275, 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Linspace(tt.start, tt.stop, tt.n))
		})
	}
}

func TestLinspace_StrictlyIncreasing(t *testing.T) {
	values := Linspace(3.0, 15.0, 100)
	require.Len(t, values, 100)

	assert.Equal(t, 3.0, values[0])
	assert.Equal(t, 15.0, values[99])
	for i := 1; i < len(values); i++ {
		assert.Greater(t, values[i], values[i-1])
	}
}
