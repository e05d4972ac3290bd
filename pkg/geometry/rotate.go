package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/material"
)

// RotateY rotates a child hittable about the Y axis
type RotateY struct {
	Object  Hittable
	Degrees float64

	toWorld  mgl64.Mat3 // object space -> world space
	toObject mgl64.Mat3 // world space -> object space
	box      core.AABB
	hasBox   bool
}

// NewRotateY wraps object rotated by the given angle in degrees
func NewRotateY(object Hittable, degrees float64) *RotateY {
	toWorld := mgl64.Rotate3DY(mgl64.DegToRad(degrees))
	r := &RotateY{
		Object:   object,
		Degrees:  degrees,
		toWorld:  toWorld,
		toObject: toWorld.Transpose(),
	}

	childBox, ok := object.BoundingBox(0, 1)
	r.hasBox = ok
	if !ok {
		return r
	}

	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for _, corner := range childBox.Corners() {
		rotated := transform(toWorld, corner)
		min = min.Min(rotated)
		max = max.Max(rotated)
	}
	r.box = core.NewAABB(min, max)
	return r
}

// Hit rotates the ray into object space and rotates the hit back to world space
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	rotated := core.NewRayAtTime(transform(r.toObject, ray.Origin), transform(r.toObject, ray.Direction), ray.Time)

	hit, ok := r.Object.Hit(rotated, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	// Rotation preserves dot products: the normal still opposes the ray and FrontFace stays valid
	hit.Point = transform(r.toWorld, hit.Point)
	hit.Normal = transform(r.toWorld, hit.Normal)
	return hit, true
}

// BoundingBox returns the box around the eight rotated corners of the child's box
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.box, r.hasBox
}

func transform(m mgl64.Mat3, v core.Vec3) core.Vec3 {
	out := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return core.NewVec3(out[0], out[1], out[2])
}
