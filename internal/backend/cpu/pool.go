package cpu

import (
	"fmt"

	"github.com/born-ml/strided/internal/parallel"
	"github.com/born-ml/strided/internal/tensor"
)

// Pool reduces every window of x into out.
//
// x may have any strides (views, transposes, broadcasts); out must be
// contiguous and shaped as tensor.PoolOutputShape(x.Shape(), cfg). Windows
// are walked in row-major order, so floating-point sums are reproducible
// across backends.
func Pool[E tensor.Numeric](cpu *CPUBackend, x, out *tensor.DenseTensor[E], cfg tensor.PoolConfig) error {
	if !out.IsContiguous() {
		return fmt.Errorf("pool: %w: strides %v for shape %v", tensor.ErrNonContiguousOutput, out.Strides(), out.Shape())
	}
	g, err := cfg.Resolve(x.Shape())
	if err != nil {
		return fmt.Errorf("pool: %w", err)
	}
	if !g.Out.Equal(out.Shape()) {
		return fmt.Errorf("pool: %w: output %v, expected %v", tensor.ErrShapeMismatch, out.Shape(), g.Out)
	}

	out.MakeExclusive()
	dst := out.Buffer().Slice(out.Offset(), out.Offset()+out.Count())
	poolInto(x, dst, out.Order(), g, cpu.parallel)
	return nil
}

// poolInto writes one reduced window per element of dst, which is laid out
// in the given storage order.
func poolInto[E tensor.Numeric](x *tensor.DenseTensor[E], dst []E, order tensor.StorageOrder, g tensor.PoolGeometry, cfg parallel.Config) {
	if len(dst) == 0 {
		return
	}
	rank := len(g.In)
	windowCount := g.Window.NumElements()
	buf := x.Buffer()

	parallel.ForRange(len(dst), func(start, end int) {
		outPos := make([]int, rank)
		window := make([]int, rank)
		inPos := make([]int, rank)

		for k := start; k < end; k++ {
			g.Out.Unravel(k, order, outPos)
			clear(window)

			var acc E
			n := 0
			for w := 0; w < windowCount; w++ {
				inside := true
				for a := 0; a < rank; a++ {
					p := outPos[a]*g.Strides[a] + window[a] - g.PadBefore[a]
					if p < 0 || p >= g.In[a] {
						inside = false
						break
					}
					inPos[a] = p
				}
				if inside {
					v := buf.Load(x.LinearOffset(inPos))
					if g.Mode == tensor.Max {
						if n == 0 || v > acc {
							acc = v
						}
					} else {
						acc += v
					}
					n++
				}
				g.Window.Increment(window, tensor.RowMajor)
			}

			switch g.Mode {
			case tensor.Average:
				if n > 0 {
					acc /= E(n)
				}
			case tensor.AveragePadding:
				acc /= E(windowCount)
			}
			dst[k] = acc
		}
	}, cfg)
}
