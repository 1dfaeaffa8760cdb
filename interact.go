package layout

// PolygonContainsPoint reports whether pt is inside p or on its boundary.
// Points inside a hole are outside the polygon.
func PolygonContainsPoint(p Polygon, pt Point) bool {
	if !p.BBox().Contains(pt) {
		return false
	}
	onEdge := false
	p.Edges(func(e Edge) {
		if !onEdge && e.Contains(pt) {
			onEdge = true
		}
	})
	if onEdge {
		return true
	}
	inside := contourWinding(p.hull, pt)
	for _, h := range p.holes {
		if contourWinding(h, pt) {
			inside = !inside
		}
	}
	return inside
}

// contourWinding casts a ray to the right of pt and reports whether it
// crosses the contour an odd number of times.
func contourWinding(c []Point, pt Point) bool {
	inside := false
	for i := range c {
		a, b := c[i], c[(i+1)%len(c)]
		if (a.Y > pt.Y) == (b.Y > pt.Y) {
			continue
		}
		if a.Y > b.Y {
			a, b = b, a
		}
		// pt is left of the upward edge, so the ray crosses it
		if cross(a, b, pt) > 0 {
			inside = !inside
		}
	}
	return inside
}

// PolygonsInteract reports whether both polygons share at least one point.
// Polygons that only touch along their boundaries interact.
func PolygonsInteract(a, b Polygon) bool {
	if !a.BBox().Touches(b.BBox()) {
		return false
	}
	bb := b.BBox()
	hit := false
	a.Edges(func(ea Edge) {
		if hit || !ea.BBox().Touches(bb) {
			return
		}
		b.Edges(func(eb Edge) {
			if !hit && ea.Intersects(eb) {
				hit = true
			}
		})
	})
	if hit {
		return true
	}
	// without crossing edges one polygon is either inside the other or apart
	if len(b.hull) > 0 && PolygonContainsPoint(a, b.hull[0]) {
		return true
	}
	return len(a.hull) > 0 && PolygonContainsPoint(b, a.hull[0])
}
