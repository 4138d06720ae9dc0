package diffusion_test

import (
	"testing"

	"github.com/katalvlaran/pixlath/diffusion"
	"github.com/katalvlaran/pixlath/raster"
)

// BenchmarkBinary measures scalar dithering of a 512×512 color image.
func BenchmarkBinary(b *testing.B) {
	img := randomImage(b, 512, 512, raster.Color, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = diffusion.Binary(img)
	}
}

// BenchmarkToPalette measures vector dithering against the additive preset.
func BenchmarkToPalette(b *testing.B) {
	img := randomImage(b, 512, 512, raster.Color, 42)
	p := diffusion.Additive()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = diffusion.ToPalette(img, p)
	}
}
