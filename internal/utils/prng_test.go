package utils

import "testing"

func TestPRNGServiceDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Uniform(-3, 3), b.Uniform(-3, 3); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
}

func TestPRNGServiceUniformRange(t *testing.T) {
	s := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		v := s.Uniform(-12, 4)
		if v < -12 || v >= 4 {
			t.Fatalf("Uniform(-12, 4) = %v out of range", v)
		}
		if w := s.Symmetric(2.5); w < -2.5 || w >= 2.5 {
			t.Fatalf("Symmetric(2.5) = %v out of range", w)
		}
	}
	if v := s.Uniform(3, 3); v != 3 {
		t.Errorf("Uniform(3, 3) = %v, want 3", v)
	}
}

func TestPRNGServiceZeroSeed(t *testing.T) {
	s := NewPRNGService(0)
	if s.Seed() == 0 {
		t.Error("zero seed should be replaced by a time-based seed")
	}
}
