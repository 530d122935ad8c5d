// Package detector manages the lifecycle of a text detection model and the
// decode of its raw score maps into polygonal text regions.
package detector

import (
	"math"
	"sort"
)

// Point is a polygon vertex in pixel coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// polygonArea returns the absolute area of a polygon by the shoelace formula.
func polygonArea(poly []Point) float64 {
	if len(poly) < 3 {
		return 0
	}
	sum := 0.0
	for i := range poly {
		j := (i + 1) % len(poly)
		sum += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return math.Abs(sum) / 2
}

// polygonPerimeter returns the total edge length of a closed polygon.
func polygonPerimeter(poly []Point) float64 {
	if len(poly) < 2 {
		return 0
	}
	sum := 0.0
	for i := range poly {
		j := (i + 1) % len(poly)
		sum += math.Hypot(poly[j].X-poly[i].X, poly[j].Y-poly[i].Y)
	}
	return sum
}

// cross computes the z component of (b-a) x (c-a).
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// convexHull computes the convex hull of a point set with the monotone
// chain algorithm. The result is in counter-clockwise order for y-up
// coordinates, which is clockwise on an image grid.
func convexHull(points []Point) []Point {
	if len(points) <= 2 {
		out := make([]Point, len(points))
		copy(out, points)
		return out
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	hull := make([]Point, 0, 2*len(sorted))
	for _, p := range sorted {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

// minAreaRect finds the minimum-area enclosing rectangle of a point set by
// rotating calipers over the convex hull. It returns the four corners and
// the shorter side length.
func minAreaRect(points []Point) (corners [4]Point, shortSide float64) {
	hull := convexHull(points)
	switch len(hull) {
	case 0:
		return corners, 0
	case 1:
		for i := range corners {
			corners[i] = hull[0]
		}
		return corners, 0
	case 2:
		corners[0], corners[1] = hull[0], hull[1]
		corners[2], corners[3] = hull[1], hull[0]
		return corners, 0
	}

	best := math.MaxFloat64
	for i := range hull {
		j := (i + 1) % len(hull)
		ex, ey := hull[j].X-hull[i].X, hull[j].Y-hull[i].Y
		length := math.Hypot(ex, ey)
		if length == 0 {
			continue
		}
		ex, ey = ex/length, ey/length
		// Normal to the edge direction.
		nx, ny := -ey, ex

		minU, maxU := math.MaxFloat64, -math.MaxFloat64
		minV, maxV := math.MaxFloat64, -math.MaxFloat64
		for _, p := range hull {
			u := p.X*ex + p.Y*ey
			v := p.X*nx + p.Y*ny
			minU, maxU = math.Min(minU, u), math.Max(maxU, u)
			minV, maxV = math.Min(minV, v), math.Max(maxV, v)
		}

		w, h := maxU-minU, maxV-minV
		if area := w * h; area < best {
			best = area
			corners[0] = Point{X: minU*ex + minV*nx, Y: minU*ey + minV*ny}
			corners[1] = Point{X: maxU*ex + minV*nx, Y: maxU*ey + minV*ny}
			corners[2] = Point{X: maxU*ex + maxV*nx, Y: maxU*ey + maxV*ny}
			corners[3] = Point{X: minU*ex + maxV*nx, Y: minU*ey + maxV*ny}
			shortSide = math.Min(w, h)
		}
	}
	return corners, shortSide
}

// expandPolygon offsets a convex polygon outward by distance, moving each
// edge along its outward normal and intersecting adjacent edges. A zero
// distance returns the polygon unchanged.
func expandPolygon(poly []Point, distance float64) []Point {
	if distance == 0 || len(poly) < 3 {
		out := make([]Point, len(poly))
		copy(out, poly)
		return out
	}

	var cx, cy float64
	for _, p := range poly {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(poly))
	cy /= float64(len(poly))

	n := len(poly)
	shifted := make([]line, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		dx, dy := poly[j].X-poly[i].X, poly[j].Y-poly[i].Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		nx, ny := -dy/length, dx/length
		// Flip the normal if it points toward the centroid.
		midX, midY := (poly[i].X+poly[j].X)/2, (poly[i].Y+poly[j].Y)/2
		if (midX+nx-cx)*(midX+nx-cx)+(midY+ny-cy)*(midY+ny-cy) <
			(midX-cx)*(midX-cx)+(midY-cy)*(midY-cy) {
			nx, ny = -nx, -ny
		}
		shifted[i] = line{px: poly[i].X + nx*distance, py: poly[i].Y + ny*distance, dx: dx, dy: dy}
	}

	out := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		prev := shifted[(i+n-1)%n]
		cur := shifted[i]
		p, ok := intersectLines(prev, cur)
		if !ok {
			// Parallel adjacent edges; fall back to the shifted vertex.
			p = Point{X: cur.px, Y: cur.py}
		}
		out = append(out, p)
	}
	return out
}

// line is a point plus a direction vector.
type line struct{ px, py, dx, dy float64 }

func intersectLines(a, b line) (Point, bool) {
	denom := a.dx*b.dy - a.dy*b.dx
	if math.Abs(denom) < 1e-9 {
		return Point{}, false
	}
	t := ((b.px-a.px)*b.dy - (b.py-a.py)*b.dx) / denom
	return Point{X: a.px + t*a.dx, Y: a.py + t*a.dy}, true
}

// orderVertices arranges the four rectangle corners clockwise on the image
// grid, starting from the corner with the smallest x+y sum.
func orderVertices(corners [4]Point) [4]Point {
	pts := corners[:]
	// Clockwise on a y-down grid means positive signed area.
	signed := 0.0
	for i := range pts {
		j := (i + 1) % len(pts)
		signed += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	ordered := make([]Point, 4)
	copy(ordered, pts)
	if signed < 0 {
		ordered[1], ordered[3] = ordered[3], ordered[1]
	}

	start := 0
	for i := 1; i < 4; i++ {
		if ordered[i].X+ordered[i].Y < ordered[start].X+ordered[start].Y {
			start = i
		}
	}
	var out [4]Point
	for i := 0; i < 4; i++ {
		out[i] = ordered[(start+i)%4]
	}
	return out
}

// clampPoints limits every vertex to the rectangle [0,w-1] x [0,h-1].
func clampPoints(poly []Point, width, height int) {
	maxX, maxY := float64(width-1), float64(height-1)
	for i := range poly {
		poly[i].X = math.Max(0, math.Min(poly[i].X, maxX))
		poly[i].Y = math.Max(0, math.Min(poly[i].Y, maxY))
	}
}
