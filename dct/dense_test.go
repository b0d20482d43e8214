package dct_test

import (
	"errors"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/comersaglam/dct-steganography/dct"
)

func TestForwardDenseMatchesForward2D(t *testing.T) {
	rng := rand.New(rand.NewSource(61))
	g := makeBlock(4, 6, rng)
	m, err := dct.GridToDense(g)
	if err != nil {
		t.Fatalf("GridToDense: %v", err)
	}
	got, err := dct.ForwardDense(m)
	if err != nil {
		t.Fatalf("ForwardDense: %v", err)
	}
	want := forward2D(t, g)
	if d := maxAbsDiff(dct.DenseToGrid(got), want); d > roundTripEpsilon {
		t.Errorf("ForwardDense vs Forward2D max diff = %e, want < %e", d, roundTripEpsilon)
	}
}

func TestDenseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(62))
	g := makeBlock(8, 8, rng)
	m, err := dct.GridToDense(g)
	if err != nil {
		t.Fatalf("GridToDense: %v", err)
	}
	coef, err := dct.ForwardDense(m)
	if err != nil {
		t.Fatalf("ForwardDense: %v", err)
	}
	rec, err := dct.InverseDense(coef)
	if err != nil {
		t.Fatalf("InverseDense: %v", err)
	}
	if !mat.EqualApprox(m, rec, roundTripEpsilon) {
		t.Errorf("dense round-trip differs:\ngot:\n%v\nwant:\n%v",
			mat.Formatted(rec), mat.Formatted(m))
	}
}

// TestForwardDenseOfTransposeView: ForwardDense accepts any mat.Matrix,
// including views such as transposes.
func TestForwardDenseOfTransposeView(t *testing.T) {
	rng := rand.New(rand.NewSource(63))
	g := makeBlock(3, 5, rng)
	m, err := dct.GridToDense(g)
	if err != nil {
		t.Fatalf("GridToDense: %v", err)
	}
	got, err := dct.ForwardDense(m.T())
	if err != nil {
		t.Fatalf("ForwardDense: %v", err)
	}
	want := forward2D(t, transpose(g))
	if d := maxAbsDiff(dct.DenseToGrid(got), want); d > roundTripEpsilon {
		t.Errorf("transpose view max diff = %e, want < %e", d, roundTripEpsilon)
	}
}

func TestGridToDenseErrors(t *testing.T) {
	if _, err := dct.GridToDense(nil); !errors.Is(err, dct.ErrEmptyInput) {
		t.Errorf("GridToDense(nil) error = %v, want ErrEmptyInput", err)
	}
	if _, err := dct.GridToDense([][]float64{{1, 2}, {3}}); !errors.Is(err, dct.ErrNonRectangular) {
		t.Errorf("GridToDense(ragged) error = %v, want ErrNonRectangular", err)
	}
}

func TestDenseToGridValues(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	g := dct.DenseToGrid(m)
	want := [][]float64{{1, 2, 3}, {4, 5, 6}}
	if d := maxAbsDiff(g, want); d != 0 {
		t.Errorf("DenseToGrid = %v, want %v", g, want)
	}
}

func TestForwardDenseNil(t *testing.T) {
	if _, err := dct.ForwardDense(nil); !errors.Is(err, dct.ErrEmptyInput) {
		t.Errorf("ForwardDense(nil) error = %v, want ErrEmptyInput", err)
	}
}
