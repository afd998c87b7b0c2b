package dense

import (
	"github.com/aquilax/go-perlin"

	"lifelab/internal/core"
)

const (
	noiseAlpha   = 2
	noiseBeta    = 2
	noiseOctaves = 3
)

// Randomize fills the board with a uniform random soup at the given density.
// The same seed always produces the same board.
func (b *Board) Randomize(seed int64, density float64) {
	core.FillBinary(core.NewRNG(seed), b.cur.Cells(), density)
	b.gen = 0
}

// NoiseFill seeds the board from 2D Perlin noise: cells whose noise sample
// exceeds the threshold start alive. The result is clumpier than a uniform
// soup, which tends to survive longer. Scale is the noise feature size in
// cells; threshold is in [-1, 1].
func (b *Board) NoiseFill(seed int64, scale, threshold float64) {
	if scale <= 0 {
		scale = 16
	}
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	cells := b.cur.Cells()
	for y := 0; y < b.cur.H; y++ {
		for x := 0; x < b.cur.W; x++ {
			v := p.Noise2D(float64(x)/scale, float64(y)/scale)
			idx := b.cur.Index(x, y)
			cells[idx] = 0
			if v > threshold {
				cells[idx] = 1
			}
		}
	}
	b.gen = 0
}
