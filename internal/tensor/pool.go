package tensor

import "fmt"

// Padding selects how pooling windows treat the input border.
type Padding int

// Supported paddings.
const (
	// Valid keeps only windows that fit entirely inside the input.
	Valid Padding = iota
	// Same pads so that out = ceil(in / stride) along every axis.
	Same
)

// PoolingMode selects the window reduction.
type PoolingMode int

// Supported pooling modes.
const (
	// Max takes the largest in-bounds element.
	Max PoolingMode = iota
	// Average divides by the number of in-bounds elements.
	Average
	// AveragePadding divides by the full window size, counting padding as zero.
	AveragePadding
)

// String returns a human-readable mode name.
func (m PoolingMode) String() string {
	switch m {
	case Max:
		return "max"
	case Average:
		return "average"
	case AveragePadding:
		return "average-padding"
	default:
		return "unknown"
	}
}

// PoolConfig describes a pooling window over every axis of the input.
// A nil Strides means stride 1 on every axis.
//
// Example (2x2 spatial pooling of an NCHW tensor):
//
//	cfg := PoolConfig{Window: []int{1, 1, 2, 2}, Strides: []int{1, 1, 2, 2}, Mode: Max}
type PoolConfig struct {
	Window  []int
	Strides []int
	Padding Padding
	Mode    PoolingMode
}

// PoolGeometry is a PoolConfig resolved against an input shape.
type PoolGeometry struct {
	In        Shape
	Out       Shape
	Window    Shape
	Strides   []int
	PadBefore []int
	Mode      PoolingMode
}

// Resolve validates cfg for input shape in and computes the output shape and
// leading padding.
func (cfg PoolConfig) Resolve(in Shape) (PoolGeometry, error) {
	rank := len(in)
	if len(cfg.Window) != rank {
		return PoolGeometry{}, fmt.Errorf("%w: window %v for rank %d input", ErrInvalidPool, cfg.Window, rank)
	}
	strides := cfg.Strides
	if strides == nil {
		strides = make([]int, rank)
		for i := range strides {
			strides[i] = 1
		}
	}
	if len(strides) != rank {
		return PoolGeometry{}, fmt.Errorf("%w: strides %v for rank %d input", ErrInvalidPool, strides, rank)
	}
	if cfg.Mode < Max || cfg.Mode > AveragePadding {
		return PoolGeometry{}, fmt.Errorf("%w: unknown mode %d", ErrInvalidPool, cfg.Mode)
	}

	g := PoolGeometry{
		In:        in.Clone(),
		Out:       make(Shape, rank),
		Window:    Shape(cfg.Window).Clone(),
		Strides:   append([]int(nil), strides...),
		PadBefore: make([]int, rank),
		Mode:      cfg.Mode,
	}
	for axis := 0; axis < rank; axis++ {
		w, s, n := cfg.Window[axis], strides[axis], in[axis]
		if w <= 0 || s <= 0 {
			return PoolGeometry{}, fmt.Errorf("%w: window %d stride %d at axis %d", ErrInvalidPool, w, s, axis)
		}
		switch cfg.Padding {
		case Valid:
			if w > n {
				return PoolGeometry{}, fmt.Errorf("%w: window %d larger than input %d at axis %d",
					ErrInvalidPool, w, n, axis)
			}
			g.Out[axis] = (n-w)/s + 1
		case Same:
			out := (n + s - 1) / s
			g.Out[axis] = out
			if out > 0 {
				g.PadBefore[axis] = max((out-1)*s+w-n, 0) / 2
			}
		default:
			return PoolGeometry{}, fmt.Errorf("%w: unknown padding %d", ErrInvalidPool, cfg.Padding)
		}
	}
	return g, nil
}

// PoolOutputShape returns the shape pooling in with cfg produces.
func PoolOutputShape(in Shape, cfg PoolConfig) (Shape, error) {
	g, err := cfg.Resolve(in)
	if err != nil {
		return nil, err
	}
	return g.Out, nil
}
