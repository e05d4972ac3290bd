package geometry

import (
	"math"
	"testing"

	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
)

func TestRects_Hit(t *testing.T) {
	tests := []struct {
		name           string
		object         Hittable
		ray            core.Ray
		expectedT      float64
		expectedU      float64
		expectedV      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "xy front",
			object:         NewXYRect(0, 1, 0, 1, -1, testMaterial),
			ray:            core.NewRay(core.NewVec3(0.5, 0.25, 1), core.NewVec3(0, 0, -1)),
			expectedT:      2,
			expectedU:      0.5,
			expectedV:      0.25,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "xz front",
			object:         NewXZRect(0, 2, 0, 4, 3, testMaterial),
			ray:            core.NewRay(core.NewVec3(1, 10, 2), core.NewVec3(0, -1, 0)),
			expectedT:      7,
			expectedU:      0.5,
			expectedV:      0.5,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 1, 0),
		},
		{
			name:           "yz back",
			object:         NewYZRect(0, 1, 0, 1, 0, testMaterial),
			ray:            core.NewRay(core.NewVec3(-1, 0.5, 0.75), core.NewVec3(1, 0, 0)),
			expectedT:      1,
			expectedU:      0.5,
			expectedV:      0.75,
			expectedFront:  false,
			expectedNormal: core.NewVec3(-1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := tt.object.Hit(tt.ray, 0.001, math.Inf(1), nil)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if math.Abs(hit.U-tt.expectedU) > 1e-9 || math.Abs(hit.V-tt.expectedV) > 1e-9 {
				t.Errorf("Expected uv (%f, %f), got (%f, %f)", tt.expectedU, tt.expectedV, hit.U, hit.V)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal != tt.expectedNormal {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestXYRect_Misses(t *testing.T) {
	r := NewXYRect(0, 1, 0, 1, -1, testMaterial)

	tests := []struct {
		name string
		ray  core.Ray
	}{
		{"outside bounds", core.NewRay(core.NewVec3(1.5, 0.5, 1), core.NewVec3(0, 0, -1))},
		{"parallel", core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(1, 0, 0))},
		{"parallel in plane", core.NewRay(core.NewVec3(0.5, 0.5, -1), core.NewVec3(1, 0, 0))},
		{"behind origin", core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, 1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, isHit := r.Hit(tt.ray, 0.001, math.Inf(1), nil); isHit {
				t.Error("Expected miss")
			}
		})
	}
}

func TestRects_BoundingBoxPadded(t *testing.T) {
	box, ok := NewXZRect(0, 2, 0, 4, 3, testMaterial).BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected rect to have a bounding box")
	}
	if box.Min.Y >= 3 || box.Max.Y <= 3 {
		t.Errorf("Expected flat axis to be padded around y=3, got %v", box)
	}
	if box.Min.X != 0 || box.Max.X != 2 || box.Min.Z != 0 || box.Max.Z != 4 {
		t.Errorf("Expected in-plane extent to be exact, got %v", box)
	}
}

func TestBox(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), testMaterial)

	hit, isHit := box.Hit(core.NewRay(core.NewVec3(0.5, 0.5, 5), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1), nil)
	if !isHit || math.Abs(hit.T-4) > 1e-9 || hit.Normal != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected closest face z=1 at t=4, got %v %t", hit, isHit)
	}

	// From inside, the first face reached is a back face
	hit, isHit = box.Hit(core.NewRay(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(1, 0, 0)), 0.001, math.Inf(1), nil)
	if !isHit || math.Abs(hit.T-0.5) > 1e-9 || hit.FrontFace {
		t.Errorf("Expected back face hit at t=0.5, got %v %t", hit, isHit)
	}

	bbox, ok := box.BoundingBox(0, 1)
	if !ok || bbox.Min != core.NewVec3(0, 0, 0) || bbox.Max != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected exact corner box, got %v", bbox)
	}
}
