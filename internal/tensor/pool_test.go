package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolResolve(t *testing.T) {
	tests := []struct {
		name      string
		in        Shape
		cfg       PoolConfig
		out       Shape
		padBefore []int
	}{
		{
			name: "valid 2x2 stride 2",
			in:   Shape{1, 1, 4, 4},
			cfg:  PoolConfig{Window: []int{1, 1, 2, 2}, Strides: []int{1, 1, 2, 2}},
			out:  Shape{1, 1, 2, 2}, padBefore: []int{0, 0, 0, 0},
		},
		{
			name: "valid 3 stride 2 drops the tail",
			in:   Shape{6},
			cfg:  PoolConfig{Window: []int{3}, Strides: []int{2}},
			out:  Shape{2}, padBefore: []int{0},
		},
		{
			name: "nil strides default to 1",
			in:   Shape{5, 5},
			cfg:  PoolConfig{Window: []int{3, 3}},
			out:  Shape{3, 3}, padBefore: []int{0, 0},
		},
		{
			name: "same stride 1",
			in:   Shape{5},
			cfg:  PoolConfig{Window: []int{3}, Padding: Same},
			out:  Shape{5}, padBefore: []int{1},
		},
		{
			name: "same stride 2",
			in:   Shape{5, 6},
			cfg:  PoolConfig{Window: []int{2, 3}, Strides: []int{2, 2}, Padding: Same},
			out:  Shape{3, 3}, padBefore: []int{0, 0},
		},
		{
			name: "same window larger than input",
			in:   Shape{2},
			cfg:  PoolConfig{Window: []int{5}, Padding: Same},
			out:  Shape{2}, padBefore: []int{2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := tt.cfg.Resolve(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.out, g.Out)
			assert.Equal(t, tt.padBefore, g.PadBefore)

			out, err := PoolOutputShape(tt.in, tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.out, out)
		})
	}
}

func TestPoolResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		in   Shape
		cfg  PoolConfig
	}{
		{"window rank", Shape{4, 4}, PoolConfig{Window: []int{2}}},
		{"strides rank", Shape{4, 4}, PoolConfig{Window: []int{2, 2}, Strides: []int{1}}},
		{"zero window", Shape{4}, PoolConfig{Window: []int{0}}},
		{"zero stride", Shape{4}, PoolConfig{Window: []int{2}, Strides: []int{0}}},
		{"valid window too large", Shape{2}, PoolConfig{Window: []int{3}}},
		{"unknown mode", Shape{4}, PoolConfig{Window: []int{2}, Mode: PoolingMode(9)}},
		{"unknown padding", Shape{4}, PoolConfig{Window: []int{2}, Padding: Padding(9)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Resolve(tt.in)
			assert.ErrorIs(t, err, ErrInvalidPool)
		})
	}
}

func TestPoolingModeString(t *testing.T) {
	assert.Equal(t, "max", Max.String())
	assert.Equal(t, "average", Average.String())
	assert.Equal(t, "average-padding", AveragePadding.String())
	assert.Equal(t, "unknown", PoolingMode(9).String())
}
