package dense

import "testing"

func TestRandomizeDeterministic(t *testing.T) {
	a := New(30, 30, EdgeWrap)
	b := New(30, 30, EdgeWrap)
	a.Randomize(7, 0.5)
	b.Randomize(7, 0.5)

	if a.Population() == 0 {
		t.Fatal("randomize at density 0.5 produced an empty board")
	}
	for i, c := range a.Cells() {
		if b.Cells()[i] != c {
			t.Fatalf("boards diverge at index %d for identical seeds", i)
		}
	}
}

func TestNoiseFillDeterministic(t *testing.T) {
	a := New(40, 40, EdgeWrap)
	b := New(40, 40, EdgeWrap)
	a.NoiseFill(11, 16, 0.1)
	b.NoiseFill(11, 16, 0.1)

	for i, c := range a.Cells() {
		if b.Cells()[i] != c {
			t.Fatalf("noise fills diverge at index %d for identical seeds", i)
		}
	}
}

func TestNoiseFillThresholdOne(t *testing.T) {
	b := New(20, 20, EdgeWrap)
	b.NoiseFill(3, 8, 1)
	if b.Population() != 0 {
		t.Fatalf("threshold 1 should kill every cell, population=%d", b.Population())
	}
}
