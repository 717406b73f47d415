package cpu

import (
	"fmt"

	"github.com/born-ml/strided/internal/tensor"
)

// MaxPool2D performs 2D max pooling.
//
// Max pooling reduces spatial dimensions by taking the maximum value
// in each pooling window.
//
// Input shape:  [batch, channels, height, width]
// Output shape: [batch, channels, out_height, out_width]
//
// Where:
//
//	out_height = (height - kernelSize) / stride + 1
//	out_width = (width - kernelSize) / stride + 1
//
// Example (2x2 pool, stride=2):
//
//	Input: [[1,2,3,4],    Output: [[6,8],
//	        [5,6,7,8],             [14,16]]
//	        [9,10,11,12],
//	        [13,14,15,16]]
func MaxPool2D[E tensor.Numeric](cpu *CPUBackend, input *tensor.DenseTensor[E], kernelSize, stride int) (*tensor.DenseTensor[E], error) {
	if input.Rank() != 4 {
		return nil, fmt.Errorf("maxpool2d: expected 4D input [N,C,H,W], got %dD", input.Rank())
	}

	cfg := tensor.PoolConfig{
		Window:  []int{1, 1, kernelSize, kernelSize},
		Strides: []int{1, 1, stride, stride},
		Padding: tensor.Valid,
		Mode:    tensor.Max,
	}
	outShape, err := tensor.PoolOutputShape(input.Shape(), cfg)
	if err != nil {
		return nil, fmt.Errorf("maxpool2d: %w", err)
	}

	output, err := tensor.Zeros[E](outShape, input.Order())
	if err != nil {
		return nil, fmt.Errorf("maxpool2d: failed to create output: %w", err)
	}
	if err := Pool(cpu, input, output, cfg); err != nil {
		return nil, err
	}
	return output, nil
}
