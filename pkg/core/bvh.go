package core

import (
	"fmt"
	"math/rand"
	"sort"
)

// BVHNode is a node in the bounding volume hierarchy. A leaf stores a
// single Hittable directly in Left and Right (both point at the same
// sentinel object); an internal node splits its children by a randomly
// chosen axis.
type BVHNode struct {
	Left, Right Hittable
	Box         AABB
}

// NewBVH builds a BVH over shapes for the given exposure interval. It is
// fatal to build a BVH over zero shapes: there is no meaningful empty tree,
// and callers should use an empty HittableList instead.
func NewBVH(shapes []Hittable, timeStart, timeEnd float64, rnd *rand.Rand) *BVHNode {
	if len(shapes) == 0 {
		panic("core: NewBVH requires at least one shape")
	}

	// Operate on a private copy: construction must not mutate the caller's
	// slice via the in-place sort below.
	objects := make([]Hittable, len(shapes))
	copy(objects, shapes)

	return buildBVH(objects, timeStart, timeEnd, rnd)
}

func buildBVH(objects []Hittable, timeStart, timeEnd float64, rnd *rand.Rand) *BVHNode {
	axis := rnd.Intn(3)
	comparator := func(a, b Hittable) bool {
		return boxAxisMin(a, timeStart, timeEnd, axis) < boxAxisMin(b, timeStart, timeEnd, axis)
	}

	node := &BVHNode{}

	switch len(objects) {
	case 1:
		node.Left = objects[0]
		node.Right = objects[0]
	case 2:
		if comparator(objects[0], objects[1]) {
			node.Left, node.Right = objects[0], objects[1]
		} else {
			node.Left, node.Right = objects[1], objects[0]
		}
	default:
		sort.SliceStable(objects, func(i, j int) bool {
			return comparator(objects[i], objects[j])
		})
		mid := len(objects) / 2
		node.Left = buildBVH(objects[:mid], timeStart, timeEnd, rnd)
		node.Right = buildBVH(objects[mid:], timeStart, timeEnd, rnd)
	}

	leftBox, leftOK := node.Left.BoundingBox(timeStart, timeEnd)
	rightBox, rightOK := node.Right.BoundingBox(timeStart, timeEnd)
	if !leftOK || !rightOK {
		panic(fmt.Sprintf("core: NewBVH requires boundable shapes (left ok=%v, right ok=%v)", leftOK, rightOK))
	}
	node.Box = leftBox.Union(rightBox)

	return node
}

func boxAxisMin(h Hittable, timeStart, timeEnd float64, axis int) float64 {
	box, ok := h.BoundingBox(timeStart, timeEnd)
	if !ok {
		return 0
	}
	return box.Min.Axis(axis)
}

// Hit descends the tree, tightening tMax by any hit already found on the
// left so the right subtree only needs to beat it.
func (n *BVHNode) Hit(ray Ray, tMin, tMax float64) (HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return HitRecord{}, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax)
	searchMax := tMax
	if hitLeft {
		searchMax = leftHit.T
	}
	rightHit, hitRight := n.Right.Hit(ray, tMin, searchMax)

	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the precomputed box covering both children.
func (n *BVHNode) BoundingBox(timeStart, timeEnd float64) (AABB, bool) {
	return n.Box, true
}

// PDFValue is not meaningful for a BVH root; lights are sampled through a
// dedicated HittableList, never through the acceleration structure.
func (n *BVHNode) PDFValue(origin Point3, direction Vec3) float64 { return 0 }

// Random is not meaningful for a BVH root (see PDFValue).
func (n *BVHNode) Random(origin Point3, sampler Sampler) Vec3 { return NewVec3(0, 0, 1) }
