package nn

import (
	"math"
	"math/rand"
	"testing"
)

func TestXavierWeightsBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const fanIn, fanOut = 20, 30

	w := xavierWeights(fanIn, fanOut, rng)
	if r, c := w.Dims(); r != fanOut || c != fanIn {
		t.Fatalf("Dims() = (%d, %d), want (%d, %d)", r, c, fanOut, fanIn)
	}

	scale := xavierScale(fanIn, fanOut)
	if want := math.Sqrt(2.0 / 50.0); math.Abs(scale-want) > 1e-12 {
		t.Errorf("xavierScale(%d, %d) = %v, want %v", fanIn, fanOut, scale, want)
	}
	for i := 0; i < fanOut; i++ {
		for j := 0; j < fanIn; j++ {
			if v := w.At(i, j); v < -scale || v > scale {
				t.Fatalf("weight (%d,%d) = %v outside [-%v, %v]", i, j, v, scale, scale)
			}
		}
	}
}

func TestUniformBiasesRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	b := uniformBiases(100, rng)
	for i := 0; i < b.Len(); i++ {
		if v := b.AtVec(i); v < 0 || v >= maxInitialBias {
			t.Fatalf("bias %d = %v outside [0, %v)", i, v, maxInitialBias)
		}
	}
}

func TestInitializationVaries(t *testing.T) {
	a := xavierWeights(4, 4, rand.New(rand.NewSource(1)))
	b := xavierWeights(4, 4, rand.New(rand.NewSource(2)))

	same := true
	for i := 0; i < 4 && same; i++ {
		for j := 0; j < 4; j++ {
			if a.At(i, j) != b.At(i, j) {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical weights")
	}
}
