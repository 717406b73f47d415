package cpu

import (
	"testing"

	"github.com/born-ml/strided/internal/tensor"
)

// sequential returns a packed tensor holding 1, 2, 3, ... in storage order.
func sequential(t *testing.T, shape tensor.Shape) *tensor.DenseTensor[float32] {
	t.Helper()
	x, err := tensor.Arange[float32](1, shape, tensor.RowMajor)
	if err != nil {
		t.Fatalf("Arange(%v): %v", shape, err)
	}
	return x
}

// TestMaxPool2D_BasicForward tests basic max pooling correctness.
func TestMaxPool2D_BasicForward(t *testing.T) {
	backend := New()

	// Input: [1, 1, 4, 4] with sequential values 1-16
	input := sequential(t, tensor.Shape{1, 1, 4, 4})

	// MaxPool2D with 2x2 kernel, stride=2
	output, err := MaxPool2D(backend, input, 2, 2)
	if err != nil {
		t.Fatal(err)
	}

	// Expected output: [1, 1, 2, 2]
	expectedShape := tensor.Shape{1, 1, 2, 2}
	if !output.Shape().Equal(expectedShape) {
		t.Errorf("Output shape: expected %v, got %v", expectedShape, output.Shape())
	}

	// Expected values (max in each 2x2 window):
	// [[1,2,3,4],      -> [[6,8],
	//  [5,6,7,8],         [14,16]]
	//  [9,10,11,12],
	//  [13,14,15,16]]
	expected := []float32{6, 8, 14, 16}
	outputData := output.Buffer().Slice(0, 4)

	for i, exp := range expected {
		if outputData[i] != exp {
			t.Errorf("Output[%d]: expected %.1f, got %.1f", i, exp, outputData[i])
		}
	}
}

// TestMaxPool2D_WithStride tests max pooling with different stride.
func TestMaxPool2D_WithStride(t *testing.T) {
	backend := New()

	// Input: [1, 1, 5, 5]
	input := sequential(t, tensor.Shape{1, 1, 5, 5})

	// MaxPool2D with 3x3 kernel, stride=1
	output, err := MaxPool2D(backend, input, 3, 1)
	if err != nil {
		t.Fatal(err)
	}

	// Expected output: [1, 1, 3, 3]
	// out_h = (5 - 3) / 1 + 1 = 3
	expectedShape := tensor.Shape{1, 1, 3, 3}
	if !output.Shape().Equal(expectedShape) {
		t.Errorf("Output shape: expected %v, got %v", expectedShape, output.Shape())
	}

	// Verify first output (max of top-left 3x3 window)
	// [[1,2,3],
	//  [6,7,8],
	//  [11,12,13]] -> max = 13
	if got := output.At(0, 0, 0, 0); got != 13 {
		t.Errorf("First output: expected 13, got %.1f", got)
	}
	if got := output.At(0, 0, 2, 2); got != 25 {
		t.Errorf("Last output: expected 25, got %.1f", got)
	}
}

// TestMaxPool2D_MultiChannel tests multi-channel max pooling.
func TestMaxPool2D_MultiChannel(t *testing.T) {
	backend := New()

	// Input: [2, 3, 4, 4]; channel c of batch n holds (n*3+c)*16 + 1 ... + 16
	input := sequential(t, tensor.Shape{2, 3, 4, 4})

	output, err := MaxPool2D(backend, input, 2, 2)
	if err != nil {
		t.Fatal(err)
	}

	for n := 0; n < 2; n++ {
		for c := 0; c < 3; c++ {
			base := float32((n*3 + c) * 16)
			expected := [][]float32{{base + 6, base + 8}, {base + 14, base + 16}}
			for h := 0; h < 2; h++ {
				for w := 0; w < 2; w++ {
					if got := output.At(n, c, h, w); got != expected[h][w] {
						t.Errorf("[%d,%d,%d,%d]: expected %.1f, got %.1f", n, c, h, w, expected[h][w], got)
					}
				}
			}
		}
	}
}

// TestMaxPool2D_Float64 tests max pooling with float64.
func TestMaxPool2D_Float64(t *testing.T) {
	backend := New()

	input, err := tensor.FromNested[float64]([][][][]float64{{{
		{1.5, -2.5},
		{-3.5, 0.5},
	}}}, tensor.RowMajor)
	if err != nil {
		t.Fatal(err)
	}

	output, err := MaxPool2D(backend, input, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := output.At(0, 0, 0, 0); got != 1.5 {
		t.Errorf("expected 1.5, got %v", got)
	}
}

// TestMaxPool2D_Errors tests input validation.
func TestMaxPool2D_Errors(t *testing.T) {
	backend := New()

	if _, err := MaxPool2D(backend, sequential(t, tensor.Shape{4, 4}), 2, 2); err == nil {
		t.Error("expected error for 2D input")
	}
	if _, err := MaxPool2D(backend, sequential(t, tensor.Shape{1, 1, 2, 2}), 3, 1); err == nil {
		t.Error("expected error for kernel larger than input")
	}
}
