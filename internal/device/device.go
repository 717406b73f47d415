// Package device routes tensor kernels to the GPU when one is usable and to
// the CPU otherwise, and marks the synchronization point before host reads.
package device

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/born-ml/strided/internal/backend/cpu"
	"github.com/born-ml/strided/internal/backend/webgpu"
	"github.com/born-ml/strided/internal/parallel"
	"github.com/born-ml/strided/internal/tensor"
)

// Config controls how a Queue picks its backends.
type Config struct {
	UseGPU   bool            // Try to open a WebGPU adapter.
	Parallel parallel.Config // Fan-out for the CPU kernels.
	Logger   *slog.Logger    // Dispatch decisions; nil discards.
}

// DefaultConfig returns a GPU-enabled configuration with default CPU
// parallelism and no logging.
func DefaultConfig() Config {
	return Config{
		UseGPU:   true,
		Parallel: parallel.DefaultConfig(),
	}
}

// gpuPooler is the part of the WebGPU backend the queue drives.
type gpuPooler interface {
	Name() string
	Pool(x, out *tensor.DenseTensor[float32], cfg tensor.PoolConfig) error
	FlushCommands()
	Release()
}

// Queue serializes kernel submission for one set of backends.
//
// Kernels may run asynchronously on the GPU; Sync must be called before
// reading results on the host. Nested does that for you.
type Queue struct {
	cpu    *cpu.CPUBackend
	gpu    gpuPooler
	logger *slog.Logger
	mu     sync.Mutex
}

// New creates a queue. A failure to open the GPU is not an error: the queue
// logs it and runs everything on the CPU.
func New(cfg Config) *Queue {
	var gpu gpuPooler
	if cfg.UseGPU {
		backend, err := webgpu.New()
		if err == nil {
			gpu = backend
		} else {
			loggerOf(cfg).Info("gpu unavailable, using cpu", "error", err)
		}
	}
	return newQueue(cfg, gpu)
}

func newQueue(cfg Config, gpu gpuPooler) *Queue {
	q := &Queue{
		cpu:    cpu.NewWithConfig(cfg.Parallel),
		gpu:    gpu,
		logger: loggerOf(cfg),
	}
	if gpu != nil {
		q.logger.Info("gpu backend ready", "adapter", gpu.Name())
	}
	return q
}

func loggerOf(cfg Config) *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// UsesGPU reports whether a GPU backend is attached.
func (q *Queue) UsesGPU() bool {
	return q.gpu != nil
}

// Name describes the backends in use.
func (q *Queue) Name() string {
	if q.gpu != nil {
		return q.gpu.Name()
	}
	return q.cpu.Name()
}

// Sync waits for every submitted kernel to finish.
func (q *Queue) Sync() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.gpu != nil {
		q.gpu.FlushCommands()
	}
}

// Release frees the GPU backend. The queue keeps working on the CPU.
func (q *Queue) Release() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.gpu != nil {
		q.gpu.Release()
		q.gpu = nil
	}
}

// Pool reduces every window of x into out.
//
// out must be contiguous, otherwise ErrNonContiguousOutput is returned before
// anything is dispatched. float32 work goes to the GPU when one is attached;
// if the GPU kernel fails the CPU kernel runs instead and produces the same
// values.
func Pool[E tensor.Numeric](q *Queue, x, out *tensor.DenseTensor[E], cfg tensor.PoolConfig) error {
	if !out.IsContiguous() {
		return fmt.Errorf("device: pool: %w: strides %v for shape %v",
			tensor.ErrNonContiguousOutput, out.Strides(), out.Shape())
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.gpu != nil {
		if x32, ok := any(x).(*tensor.DenseTensor[float32]); ok {
			out32, _ := any(out).(*tensor.DenseTensor[float32])
			err := q.gpu.Pool(x32, out32, cfg)
			if err == nil {
				return nil
			}
			q.logger.Warn("gpu pool failed, falling back to cpu",
				"shape", x.Shape().String(), "mode", cfg.Mode.String(), "error", err)
		} else {
			q.logger.Debug("element type not supported on gpu, using cpu",
				"dtype", tensor.DataTypeOf[E]().String())
		}
	}
	return cpu.Pool(q.cpu, x, out, cfg)
}

// Nested syncs q and returns t as nested slices (see DenseTensor.Nested).
func Nested[E any](q *Queue, t *tensor.DenseTensor[E]) any {
	q.Sync()
	return t.Nested()
}
