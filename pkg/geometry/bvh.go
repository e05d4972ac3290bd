package geometry

import (
	"fmt"
	"sort"

	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/material"
)

// BVHNode is a node in a Bounding Volume Hierarchy.
// It is immutable after construction and safe for concurrent Hit calls.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	Box   core.AABB
}

// NewBVHNode builds a hierarchy over the objects for the shutter interval [time0, time1].
// The split axis of every node is drawn from sampler; a seeded sampler makes the tree reproducible.
// The input slice is not modified.
func NewBVHNode(objects []Hittable, time0, time1 float64, sampler core.Sampler) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, fmt.Errorf("building bvh over empty object list: %w", ErrNoBoundingBox)
	}

	// Sort a copy so callers can keep using their list
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy, time0, time1, sampler)
}

// NewBVHFromList builds a hierarchy over the objects of a list
func NewBVHFromList(list *HittableList, time0, time1 float64, sampler core.Sampler) (*BVHNode, error) {
	return NewBVHNode(list.Objects(), time0, time1, sampler)
}

func buildBVH(objects []Hittable, time0, time1 float64, sampler core.Sampler) (*BVHNode, error) {
	axis := core.RandomInt(sampler, 0, 2)
	node := &BVHNode{}

	switch len(objects) {
	case 1:
		node.Left, node.Right = objects[0], objects[0]
	case 2:
		less, err := boxLess(objects[0], objects[1], axis)
		if err != nil {
			return nil, err
		}
		if less {
			node.Left, node.Right = objects[0], objects[1]
		} else {
			node.Left, node.Right = objects[1], objects[0]
		}
	default:
		if err := sortByBoxMin(objects, axis); err != nil {
			return nil, err
		}
		mid := len(objects) / 2
		left, err := buildBVH(objects[:mid], time0, time1, sampler)
		if err != nil {
			return nil, err
		}
		right, err := buildBVH(objects[mid:], time0, time1, sampler)
		if err != nil {
			return nil, err
		}
		node.Left, node.Right = left, right
	}

	boxLeft, okLeft := node.Left.BoundingBox(time0, time1)
	boxRight, okRight := node.Right.BoundingBox(time0, time1)
	if !okLeft || !okRight {
		return nil, fmt.Errorf("building bvh node: %w", ErrNoBoundingBox)
	}
	node.Box = core.SurroundingBox(boxLeft, boxRight)
	return node, nil
}

// boxLess orders two objects by the minimum corner of their boxes along axis
func boxLess(a, b Hittable, axis int) (bool, error) {
	boxA, okA := a.BoundingBox(0, 0)
	boxB, okB := b.BoundingBox(0, 0)
	if !okA || !okB {
		return false, fmt.Errorf("comparing bvh children: %w", ErrNoBoundingBox)
	}
	return boxA.Min.Axis(axis) < boxB.Min.Axis(axis), nil
}

func sortByBoxMin(objects []Hittable, axis int) error {
	// Boxes are fetched once; Swap keeps objects and keys aligned
	keys := make([]float64, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox(0, 0)
		if !ok {
			return fmt.Errorf("sorting bvh children: %w", ErrNoBoundingBox)
		}
		keys[i] = box.Min.Axis(axis)
	}
	sort.Sort(byKey{objects: objects, keys: keys})
	return nil
}

type byKey struct {
	objects []Hittable
	keys    []float64
}

func (b byKey) Len() int           { return len(b.objects) }
func (b byKey) Less(i, j int) bool { return b.keys[i] < b.keys[j] }
func (b byKey) Swap(i, j int) {
	b.objects[i], b.objects[j] = b.objects[j], b.objects[i]
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
}

// Hit rejects rays that miss the node box, then tests the right child only up to the left child's hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, sampler)
	if hitLeft {
		tMax = leftHit.T
	}
	if rightHit, hitRight := n.Right.Hit(ray, tMin, tMax, sampler); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the cached union of the children's boxes
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

// Depth returns the number of BVH levels below and including this node
func (n *BVHNode) Depth() int {
	depth := 0
	for _, child := range []Hittable{n.Left, n.Right} {
		if node, ok := child.(*BVHNode); ok {
			if d := node.Depth(); d > depth {
				depth = d
			}
		}
	}
	return depth + 1
}
