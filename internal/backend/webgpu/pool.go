//go:build windows

package webgpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/born-ml/strided/internal/tensor"
	"github.com/go-webgpu/webgpu/wgpu"
)

// Pool reduces every window of x into out on the GPU.
//
// x may be strided: only its reachable span is uploaded and the shader
// addresses it through the strides. out must be contiguous.
func (b *Backend) Pool(x, out *tensor.DenseTensor[float32], cfg tensor.PoolConfig) error {
	if !out.IsContiguous() {
		return fmt.Errorf("webgpu: pool: %w", tensor.ErrNonContiguousOutput)
	}
	g, err := cfg.Resolve(x.Shape())
	if err != nil {
		return fmt.Errorf("webgpu: pool: %w", err)
	}
	if !g.Out.Equal(out.Shape()) {
		return fmt.Errorf("webgpu: pool: %w: output %v, expected %v", tensor.ErrShapeMismatch, out.Shape(), g.Out)
	}
	if len(g.In) > maxRank {
		return fmt.Errorf("webgpu: pool: %w: rank %d exceeds %d", tensor.ErrInvalidPool, len(g.In), maxRank)
	}
	if out.Count() == 0 {
		return nil
	}
	if x.SpanCount() > math.MaxInt32 || out.Count() > math.MaxInt32 {
		return fmt.Errorf("webgpu: pool: %w: tensor too large for 32-bit addressing", tensor.ErrInvalidPool)
	}

	out.MakeExclusive()

	src := x.Buffer().Slice(x.Offset(), x.Offset()+x.SpanCount())
	inputBytes := make([]byte, 4*len(src))
	for i, v := range src {
		binary.LittleEndian.PutUint32(inputBytes[4*i:], math.Float32bits(v))
	}
	params := poolParams(g, x.Strides(), out.Strides(), out.Count())

	shader := b.compileShader("pool", poolShader)
	pipeline := b.getOrCreatePipeline("pool", shader)

	bufferInput := b.createBuffer(inputBytes, wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferInput.Release()

	bufferParams := b.createBuffer(params, wgpu.BufferUsageStorage|wgpu.BufferUsageCopyDst)
	defer bufferParams.Release()

	//nolint:gosec // G115: Count() is non-negative and checked against MaxInt32
	resultSize := uint64(4 * out.Count())
	bufferResult := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  resultSize,
	})
	defer bufferResult.Release()

	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	bindGroup := b.device.CreateBindGroupSimple(bindGroupLayout, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferInput, 0, uint64(len(inputBytes))),
		wgpu.BufferBindingEntry(1, bufferResult, 0, resultSize),
		wgpu.BufferBindingEntry(2, bufferParams, 0, uint64(len(params))),
	})
	defer bindGroup.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	computePass := encoder.BeginComputePass(nil)
	computePass.SetPipeline(pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)

	//nolint:gosec // G115: workgroup count is non-negative
	workgroups := uint32((out.Count() + workgroupSize - 1) / workgroupSize)
	computePass.DispatchWorkgroups(workgroups, 1, 1)
	computePass.End()
	b.queueCommand(encoder.Finish(nil))

	resultData, err := b.readBuffer(bufferResult, resultSize)
	if err != nil {
		return fmt.Errorf("webgpu: pool: %w", err)
	}

	dst := out.Buffer().Slice(out.Offset(), out.Offset()+out.Count())
	for i := range dst {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(resultData[4*i:]))
	}
	return nil
}

// poolParams encodes the shader parameter block.
func poolParams(g tensor.PoolGeometry, inStrides, outStrides []int, outCount int) []byte {
	words := make([]int32, paramHeader+paramSections*maxRank)
	//nolint:gosec // G115: every value below is checked against MaxInt32
	words[0], words[1], words[2], words[3] = int32(len(g.In)), int32(g.Mode), int32(outCount), int32(g.Window.NumElements())

	sections := [paramSections][]int{
		paramInShape:    g.In,
		paramInStrides:  inStrides,
		paramOutShape:   g.Out,
		paramOutStrides: outStrides,
		paramWindow:     g.Window,
		paramStride:     g.Strides,
		paramPadBefore:  g.PadBefore,
	}
	for k, values := range sections {
		for axis, v := range values {
			words[paramHeader+k*maxRank+axis] = int32(v) //nolint:gosec // G115: checked against MaxInt32
		}
	}

	out := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(out[4*i:], uint32(w))
	}
	return out
}
