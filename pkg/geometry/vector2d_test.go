package geometry

import (
	"math"
	"testing"
)

func TestVector2D_Arithmetic(t *testing.T) {
	a := Vector2D{X: 1, Y: 2}
	b := Vector2D{X: 3, Y: -1}

	if got := a.Add(b); !got.Eq(Vector2D{X: 4, Y: 1}) {
		t.Errorf("Add: expected (4,1), got %s", got)
	}
	if got := a.Sub(b); !got.Eq(Vector2D{X: -2, Y: 3}) {
		t.Errorf("Sub: expected (-2,3), got %s", got)
	}
	if got := a.Mul(2); !got.Eq(Vector2D{X: 2, Y: 4}) {
		t.Errorf("Mul: expected (2,4), got %s", got)
	}
}

func TestVector2D_Len(t *testing.T) {
	v := Vector2D{X: 3, Y: 4}

	if got := v.Len(); math.Abs(got-5) > Epsilon {
		t.Errorf("Len: expected 5, got %f", got)
	}
	if got := v.LenSqr(); math.Abs(got-25) > Epsilon {
		t.Errorf("LenSqr: expected 25, got %f", got)
	}
}

func TestVector2D_Normalize(t *testing.T) {
	v := Vector2D{X: 10, Y: 0}
	if got := v.Normalize(); !got.Eq(Vector2D{X: 1, Y: 0}) {
		t.Errorf("Normalize: expected (1,0), got %s", got)
	}

	// A zero vector must normalize to zero, not NaN.
	zero := Vector2D{}
	if got := zero.Normalize(); !got.Eq(Vector2D{}) {
		t.Errorf("Normalize zero: expected (0,0), got %s", got)
	}
}

func TestVector2D_Distance(t *testing.T) {
	a := Vector2D{X: 0, Y: 0}
	b := Vector2D{X: 6, Y: 8}

	if got := a.DistanceTo(b); math.Abs(got-10) > Epsilon {
		t.Errorf("DistanceTo: expected 10, got %f", got)
	}
	if got := a.DistanceSquaredTo(b); math.Abs(got-100) > Epsilon {
		t.Errorf("DistanceSquaredTo: expected 100, got %f", got)
	}
}

func TestVector2D_Angle(t *testing.T) {
	if got := (Vector2D{X: 1, Y: 0}).Angle(); math.Abs(got) > Epsilon {
		t.Errorf("Angle of (1,0): expected 0, got %f", got)
	}
	if got := (Vector2D{X: 0, Y: 1}).Angle(); math.Abs(got-math.Pi/2) > Epsilon {
		t.Errorf("Angle of (0,1): expected Pi/2, got %f", got)
	}
}
