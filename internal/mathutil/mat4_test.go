package mathutil

import (
	"math"
	"testing"
)

func TestMat4MulIdentity(t *testing.T) {
	m := Mat4{
		2, 0, 0, 1,
		0, 3, 0, 2,
		0, 0, 4, 3,
		0, 0, 0, 1,
	}
	if got := Mat4Mul(m, Mat4Identity()); got != m {
		t.Errorf("m × I = %v, want %v", got, m)
	}
	if got := Mat4Mul(Mat4Identity(), m); got != m {
		t.Errorf("I × m = %v, want %v", got, m)
	}
}

func TestMulVec4(t *testing.T) {
	m := Mat4{
		1, 0, 0, 5,
		0, 1, 0, 6,
		0, 0, 1, 7,
		0, 0, 1, 0,
	}
	got := m.MulVec4(Vec4{1, 2, 3, 1})
	want := Vec4{6, 8, 10, 3}
	if got != want {
		t.Errorf("MulVec4 = %v, want %v", got, want)
	}
}

func TestMulVec4MatchesComposition(t *testing.T) {
	a := RotY(0.7)
	b := RotX(-1.2)
	v := Vec4{0.3, -2, 5, 1}

	got := Mat4Mul(a, b).MulVec4(v)
	want := a.MulVec4(b.MulVec4(v))
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("(a×b)v = %v, a(bv) = %v", got, want)
		}
	}
}

func TestRotYQuarterTurn(t *testing.T) {
	got := RotY(math.Pi / 2).MulPoint(Vec3{1, 0, 0})
	want := Vec3{0, 0, -1}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("RotY(π/2)·(1,0,0) = %v, want %v", got, want)
		}
	}
}

func TestIsIdentity(t *testing.T) {
	if !Mat4Identity().IsIdentity() {
		t.Error("identity not recognized")
	}
	if RotZ(0.01).IsIdentity() {
		t.Error("rotation recognized as identity")
	}
}
