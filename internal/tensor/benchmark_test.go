package tensor

import "testing"

func BenchmarkIterator(b *testing.B) {
	x, _ := Arange[float32](0, Shape{256, 256}, RowMajor)
	xt, _ := x.Transpose()

	b.Run("packed", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum float32
			for v := range x.Values() {
				sum += v
			}
			_ = sum
		}
	})

	b.Run("transposed", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum float32
			for v := range xt.Values() {
				sum += v
			}
			_ = sum
		}
	})
}

func BenchmarkClone(b *testing.B) {
	x, _ := Arange[float32](0, Shape{64, 128, 128}, RowMajor)
	xt, _ := x.Transpose(2, 0, 1)

	b.Run("packed", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = x.Clone()
		}
	})

	b.Run("strided", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = xt.Clone()
		}
	})
}

func BenchmarkNested(b *testing.B) {
	x, _ := Arange[float64](0, Shape{64, 64, 64}, ColMajor)
	for i := 0; i < b.N; i++ {
		_ = x.Nested()
	}
}
