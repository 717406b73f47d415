//go:build windows

package webgpu

// workgroupSize is the default number of threads per workgroup.
const workgroupSize = 256

// maxRank is the largest input rank the pooling shader handles.
const maxRank = 6

// Pool parameter layout (array<i32>):
//
//	[0] rank  [1] mode  [2] output count  [3] window count  [4] input offset
//	[8 + k*maxRank + axis] for sections k = paramInShape ... paramPadBefore
const paramHeader = 8

const (
	paramInShape = iota
	paramInStrides
	paramOutShape
	paramOutStrides
	paramWindow
	paramStride
	paramPadBefore
	paramSections
)

// poolShader reduces one window per invocation. The input may be strided;
// the output is addressed through its strides so either storage order works.
// Windows are unravelled in row-major order to match the CPU kernel.
const poolShader = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;
@group(0) @binding(2) var<storage, read> params: array<i32>;

const MAX_RANK: u32 = 6u;
const HEADER: u32 = 8u;

fn param(section: u32, axis: u32) -> i32 {
    return params[HEADER + section * MAX_RANK + axis];
}

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    let rank = params[0];
    let mode = params[1];
    let total = u32(params[2]);
    let windowCount = u32(params[3]);
    if (idx >= total) {
        return;
    }

    var outPos: array<i32, 6>;
    var rem = i32(idx);
    var outOffset = 0;
    for (var a = rank - 1; a >= 0; a = a - 1) {
        let ua = u32(a);
        let extent = param(2u, ua);
        outPos[ua] = rem % extent;
        rem = rem / extent;
        outOffset = outOffset + outPos[ua] * param(3u, ua);
    }

    var acc = 0.0;
    var n = 0;
    for (var w = 0u; w < windowCount; w = w + 1u) {
        var wrem = i32(w);
        var inside = true;
        var inOffset = params[4];
        for (var a = rank - 1; a >= 0; a = a - 1) {
            let ua = u32(a);
            let extent = param(4u, ua);
            let wi = wrem % extent;
            wrem = wrem / extent;
            let pos = outPos[ua] * param(5u, ua) + wi - param(6u, ua);
            if (pos < 0 || pos >= param(0u, ua)) {
                inside = false;
            }
            inOffset = inOffset + pos * param(1u, ua);
        }
        if (inside) {
            let v = input[u32(inOffset)];
            if (mode == 0) {
                if (n == 0 || v > acc) {
                    acc = v;
                }
            } else {
                acc = acc + v;
            }
            n = n + 1;
        }
    }

    if (mode == 1 && n > 0) {
        acc = acc / f32(n);
    }
    if (mode == 2) {
        acc = acc / f32(windowCount);
    }
    result[u32(outOffset)] = acc;
}
`
