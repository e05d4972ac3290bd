package core

import (
	"math"
	"testing"
)

func TestRandomInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(sampler)
		if p.LengthSquared() >= 1 {
			t.Fatalf("Sample %d outside unit sphere: %v", i, p)
		}
	}
}

func TestRandomUnitVector(t *testing.T) {
	sampler := NewSeededSampler(7)
	var sum Vec3
	const n = 5000
	for i := 0; i < n; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit length, got %f", v.Length())
		}
		sum = sum.Add(v)
	}

	// Uniform directions average out near the origin
	if mean := sum.Multiply(1.0 / n); mean.Length() > 0.05 {
		t.Errorf("Expected mean direction near zero, got %v", mean)
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(3)
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("Expected Z=0, got %v", p)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("Sample outside unit disk: %v", p)
		}
	}
}

func TestRandomInt(t *testing.T) {
	sampler := NewSeededSampler(11)
	seen := map[int]bool{}
	for i := 0; i < 300; i++ {
		n := RandomInt(sampler, 0, 2)
		if n < 0 || n > 2 {
			t.Fatalf("RandomInt out of range: %d", n)
		}
		seen[n] = true
	}
	if len(seen) != 3 {
		t.Errorf("Expected all three axes to be drawn, got %v", seen)
	}
}

func TestSeededSamplerIsDeterministic(t *testing.T) {
	a := NewSeededSampler(99)
	b := NewSeededSampler(99)
	for i := 0; i < 10; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
}

func TestSkyGradient(t *testing.T) {
	sky := NewSkyGradient()

	up := sky.Radiance(NewRay(Vec3{}, NewVec3(0, 1, 0)))
	if up != sky.Top {
		t.Errorf("Expected top color looking up, got %v", up)
	}

	down := sky.Radiance(NewRay(Vec3{}, NewVec3(0, -3, 0)))
	if down != sky.Bottom {
		t.Errorf("Expected bottom color looking down, got %v", down)
	}
}
