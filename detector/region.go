package detector

import (
	"math"
	"sort"

	"github.com/nvr-ai/go-textdetect/images"
)

// Region is one detected text area: a closed polygon in original image
// coordinates plus the mean probability over its pixels.
type Region struct {
	Polygon []Point `json:"polygon"`
	Score   float64 `json:"score"`
}

// BoundingBox returns the axis-aligned extent of the region polygon.
func (r Region) BoundingBox() (minX, minY, maxX, maxY float64) {
	if len(r.Polygon) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = math.MaxFloat64, math.MaxFloat64
	maxX, maxY = -math.MaxFloat64, -math.MaxFloat64
	for _, p := range r.Polygon {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}

// Result is the output of one detect call, produced fresh every time.
type Result struct {
	// Regions are the detected text areas in original image coordinates,
	// ordered top-to-bottom then left-to-right by bounding box.
	Regions []Region
	// Mask is the probability field at working resolution with the
	// alignment padding cropped away. Use Transform to map it back to
	// original coordinates.
	Mask *Mask
	// Transform records the resize and padding applied before inference.
	Transform images.Transform
}

// sortRegions orders regions top-to-bottom, then left-to-right, by the
// top-left corner of their bounding boxes. The sort is stable so equal
// boxes keep their discovery order.
func sortRegions(regions []Region) {
	sort.SliceStable(regions, func(i, j int) bool {
		_, iy, _, _ := regions[i].BoundingBox()
		_, jy, _, _ := regions[j].BoundingBox()
		if iy != jy {
			return iy < jy
		}
		ix, _, _, _ := regions[i].BoundingBox()
		jx, _, _, _ := regions[j].BoundingBox()
		return ix < jx
	})
}
