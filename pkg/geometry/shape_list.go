package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ShapeList is an insertion-ordered collection of shapes answering nearest-hit
// queries by linear search. It implements Shape itself.
type ShapeList struct {
	shapes []Shape
}

// NewShapeList creates a list holding the given shapes
func NewShapeList(shapes ...Shape) *ShapeList {
	return &ShapeList{shapes: append([]Shape(nil), shapes...)}
}

// Add appends a shape
func (l *ShapeList) Add(shape Shape) {
	l.shapes = append(l.shapes, shape)
}

// Len returns the number of shapes
func (l *ShapeList) Len() int {
	return len(l.shapes)
}

// Shapes returns the shapes in insertion order
func (l *ShapeList) Shapes() []Shape {
	return l.shapes
}

// Hit returns the nearest intersection in [tMin, tMax]. On equal distances the
// shape added first wins.
func (l *ShapeList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.shapes {
		hit, isHit := shape.Hit(ray, tMin, closestSoFar)
		// Ranges are inclusive, so an equally distant later hit must not replace the first
		if isHit && (closestHit == nil || hit.T < closestSoFar) {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
