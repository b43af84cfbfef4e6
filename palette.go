package tessellate

import (
	"image/color"
	"math"
	"math/rand"
)

// HSV converts hue (degrees), saturation & value (0-1) to an opaque colour.
func HSV(hue, saturation, value float64) color.RGBA {
	channel := func(n float64) uint8 {
		k := math.Mod(n+hue/60, 6)
		k = math.Max(0, math.Min(1, math.Min(k, 4-k)))
		return uint8(math.Round((value - value*saturation*k) * 255))
	}
	return color.RGBA{R: channel(5), G: channel(3), B: channel(1), A: 0xff}
}

// RandomSites places n sites uniformly over the grid with random hues at
// saturation & value 0.7.
func RandomSites(rng *rand.Rand, n int, grid Grid) []Site {
	sites := make([]Site, n)
	for i := range sites {
		sites[i] = Site{
			X:     rng.Float64() * float64(grid.Width),
			Y:     rng.Float64() * float64(grid.Height),
			Color: HSV(rng.Float64()*360, 0.7, 0.7),
		}
	}
	return sites
}
