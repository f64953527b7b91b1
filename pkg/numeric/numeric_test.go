package numeric

import "testing"

func TestNearlyEqual(t *testing.T) {
	cases := []struct {
		a, b float64
		want bool
	}{
		{1.0, 1.0, true},
		{1.0, 1.0 + 1e-12, true},
		{1.0, 1.1, false},
		{0, 1e-12, true},
		{1e9, 1e9 + 1e-3, true},
	}
	for _, c := range cases {
		if got := NearlyEqual(c.a, c.b); got != c.want {
			t.Errorf("NearlyEqual(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestSign(t *testing.T) {
	if Sign(1) != 1 {
		t.Fatal("expected positive sign")
	}
	if Sign(-1) != -1 {
		t.Fatal("expected negative sign")
	}
	if Sign(0) != 0 {
		t.Fatal("expected zero sign")
	}
	if Sign(Epsilon/2) != 0 {
		t.Fatal("expected epsilon-small value to be zero")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 1) != 1 {
		t.Fatal("expected clamp to upper bound")
	}
	if Clamp(-5, 0, 1) != 0 {
		t.Fatal("expected clamp to lower bound")
	}
	if Clamp(0.5, 0, 1) != 0.5 {
		t.Fatal("expected value within bounds unchanged")
	}
}
