// Package main provides the strided CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/born-ml/strided/backend/webgpu"
	"github.com/born-ml/strided/device"
	"github.com/born-ml/strided/tensor"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("strided %s\n", version)
	case "info":
		info()
	case "pool":
		mode := "max"
		if len(os.Args) > 2 {
			mode = os.Args[2]
		}
		if err := pool(mode); err != nil {
			fmt.Fprintf(os.Stderr, "pool: %v\n", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("strided - strided tensor storage for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version              Show version")
	fmt.Println("  info                 Show available devices")
	fmt.Println("  pool [max|average|average-padding]")
	fmt.Println("                       Pool a 4x4 matrix with a 2x2 window")
}

func info() {
	fmt.Println("Devices:")
	fmt.Printf("  %-8s available\n", tensor.CPU)
	if gpu, err := webgpu.New(); err == nil {
		fmt.Printf("  %-8s available (%s)\n", tensor.WebGPU, gpu.Name())
		gpu.Release()
	} else {
		fmt.Printf("  %-8s unavailable: %v\n", tensor.WebGPU, err)
	}
}

func pool(modeName string) error {
	modes := map[string]tensor.PoolingMode{
		tensor.Max.String():            tensor.Max,
		tensor.Average.String():        tensor.Average,
		tensor.AveragePadding.String(): tensor.AveragePadding,
	}
	mode, ok := modes[modeName]
	if !ok {
		return fmt.Errorf("unknown mode %q", modeName)
	}

	cfg := device.DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	q := device.New(cfg)
	defer q.Release()

	x, err := tensor.Arange[float32](1, tensor.Shape{4, 4}, tensor.RowMajor)
	if err != nil {
		return err
	}
	poolCfg := tensor.PoolConfig{
		Window:  []int{2, 2},
		Strides: []int{2, 2},
		Padding: tensor.Same,
		Mode:    mode,
	}
	shape, err := tensor.PoolOutputShape(x.Shape(), poolCfg)
	if err != nil {
		return err
	}
	out, err := tensor.Zeros[float32](shape, tensor.RowMajor)
	if err != nil {
		return err
	}
	if err := device.Pool(q, x, out, poolCfg); err != nil {
		return err
	}

	fmt.Printf("input  %v: %v\n", x.Shape(), x.Nested())
	fmt.Printf("output %v: %v (%s, %s)\n", out.Shape(), device.Nested(q, out), mode, q.Name())
	return nil
}
