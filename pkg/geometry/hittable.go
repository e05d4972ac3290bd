package geometry

import (
	"errors"

	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/material"
)

// ErrNoBoundingBox is returned when a BVH is built over an object without a bounding box
var ErrNoBoundingBox = errors.New("no bounding box in bvh node constructor")

// Hittable interface for objects that can be hit by rays
type Hittable interface {
	// Hit returns the closest intersection with t in [tMin, tMax].
	// The sampler is only consumed by participating media.
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)

	// BoundingBox returns a box enclosing the object over the shutter interval,
	// or false for objects that have none (an empty list).
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}
