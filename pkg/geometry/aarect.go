package geometry

import (
	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/material"
)

// rectThickness pads the flat axis of a rectangle's bounding box
const rectThickness = 0.0001

// rect is an axis-aligned rectangle spanning [a0,a1]×[b0,b1] in the plane where axis k equals K
type rect struct {
	a0, a1, b0, b1, k float64
	axisA, axisB      int // in-plane axes
	axisK             int // axis of the plane normal
	material          material.Material
}

func (r *rect) hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	// Parallel rays divide by zero and produce ±Inf or NaN, both rejected by the range test
	t := (r.k - ray.Origin.Axis(r.axisK)) / ray.Direction.Axis(r.axisK)
	if !(t >= tMin && t <= tMax) {
		return nil, false
	}

	a := ray.Origin.Axis(r.axisA) + t*ray.Direction.Axis(r.axisA)
	b := ray.Origin.Axis(r.axisB) + t*ray.Direction.Axis(r.axisB)
	if a < r.a0 || a > r.a1 || b < r.b0 || b > r.b1 {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        (a - r.a0) / (r.a1 - r.a0),
		V:        (b - r.b0) / (r.b1 - r.b0),
		Material: r.material,
	}
	hit.SetFaceNormal(ray, axisVector(r.axisK))
	return hit, true
}

func (r *rect) boundingBox() core.AABB {
	var min, max [3]float64
	min[r.axisA], max[r.axisA] = r.a0, r.a1
	min[r.axisB], max[r.axisB] = r.b0, r.b1
	min[r.axisK], max[r.axisK] = r.k-rectThickness, r.k+rectThickness
	return core.NewAABB(core.NewVec3(min[0], min[1], min[2]), core.NewVec3(max[0], max[1], max[2]))
}

func axisVector(axis int) core.Vec3 {
	switch axis {
	case 0:
		return core.NewVec3(1, 0, 0)
	case 1:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(0, 0, 1)
	}
}

// XYRect is a rectangle in the plane z = k with outward normal +Z
type XYRect struct {
	rect
}

// NewXYRect creates a rectangle spanning [x0,x1]×[y0,y1] at z = k
func NewXYRect(x0, x1, y0, y1, k float64, mat material.Material) *XYRect {
	return &XYRect{rect{a0: x0, a1: x1, b0: y0, b1: y1, k: k, axisA: 0, axisB: 1, axisK: 2, material: mat}}
}

// Hit implements Hittable
func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return r.hit(ray, tMin, tMax)
}

// BoundingBox implements Hittable
func (r *XYRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.boundingBox(), true
}

// XZRect is a rectangle in the plane y = k with outward normal +Y
type XZRect struct {
	rect
}

// NewXZRect creates a rectangle spanning [x0,x1]×[z0,z1] at y = k
func NewXZRect(x0, x1, z0, z1, k float64, mat material.Material) *XZRect {
	return &XZRect{rect{a0: x0, a1: x1, b0: z0, b1: z1, k: k, axisA: 0, axisB: 2, axisK: 1, material: mat}}
}

// Hit implements Hittable
func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return r.hit(ray, tMin, tMax)
}

// BoundingBox implements Hittable
func (r *XZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.boundingBox(), true
}

// YZRect is a rectangle in the plane x = k with outward normal +X
type YZRect struct {
	rect
}

// NewYZRect creates a rectangle spanning [y0,y1]×[z0,z1] at x = k
func NewYZRect(y0, y1, z0, z1, k float64, mat material.Material) *YZRect {
	return &YZRect{rect{a0: y0, a1: y1, b0: z0, b1: z1, k: k, axisA: 1, axisB: 2, axisK: 0, material: mat}}
}

// Hit implements Hittable
func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return r.hit(ray, tMin, tMax)
}

// BoundingBox implements Hittable
func (r *YZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.boundingBox(), true
}
