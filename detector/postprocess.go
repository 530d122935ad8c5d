package detector

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-textdetect/images"
	"github.com/nvr-ai/go-textdetect/inference"
)

// component is one connected blob of above-threshold pixels.
type component struct {
	points   []Point
	scoreSum float64
}

// decodeRegions turns a probability map into polygonal regions in original
// image coordinates: binarize, trace connected components, fit a minimum
// area rectangle per component, score it by mean probability, expand it by
// the unclip ratio, and map it through the inverse resize transform.
func decodeRegions(
	score *tensor.Dense,
	opts DecodeOptions,
	transform images.Transform,
) ([]Region, error) {
	height, width, ok := inference.PlaneDims(score)
	if !ok {
		return nil, errors.Errorf("score tensor has unusable shape %v", score.Shape())
	}
	data, ok := score.Data().([]float32)
	if !ok {
		return nil, errors.New("score tensor must be float32")
	}
	if len(data) < width*height {
		return nil, errors.Errorf("score tensor has %d values, expected %d", len(data), width*height)
	}

	threshold := float32(opts.MaskThreshold)
	components := traceComponents(data, width, height, threshold, opts.MaxCandidates)

	regions := make([]Region, 0, len(components))
	for _, comp := range components {
		corners, shortSide := minAreaRect(comp.points)
		if shortSide < float64(opts.MinBoxSize) {
			continue
		}
		meanScore := comp.scoreSum / float64(len(comp.points))
		if meanScore < opts.BoxScoreThreshold {
			continue
		}

		poly := corners[:]
		if opts.UnclipRatio > 0 {
			perimeter := polygonPerimeter(poly)
			if perimeter == 0 {
				continue
			}
			distance := polygonArea(poly) * opts.UnclipRatio / perimeter
			expanded := expandPolygon(poly, distance)
			corners, shortSide = minAreaRect(expanded)
			if shortSide < float64(opts.MinBoxSize)+2 {
				continue
			}
			poly = corners[:]
		}

		clampPoints(poly, width, height)
		ordered := orderVertices([4]Point{poly[0], poly[1], poly[2], poly[3]})

		mapped := make([]Point, 4)
		for i, p := range ordered {
			x, y := transform.ToOriginal(p.X, p.Y)
			mapped[i] = Point{X: x, Y: y}
		}
		if polygonArea(mapped) < opts.MinRegionArea {
			continue
		}
		regions = append(regions, Region{Polygon: mapped, Score: meanScore})
	}

	sortRegions(regions)
	return regions, nil
}

// traceComponents finds 4-connected components of above-threshold pixels
// with a breadth-first flood fill, stopping after maxCandidates blobs.
func traceComponents(
	data []float32,
	width, height int,
	threshold float32,
	maxCandidates int,
) []component {
	visited := make([]bool, width*height)
	var components []component

	for start := 0; start < width*height; start++ {
		if visited[start] || data[start] < threshold {
			continue
		}
		if len(components) >= maxCandidates {
			break
		}

		comp := component{}
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			idx := queue[0]
			queue = queue[1:]
			x, y := idx%width, idx/width
			comp.points = append(comp.points, Point{X: float64(x), Y: float64(y)})
			comp.scoreSum += float64(data[idx])

			if x > 0 && !visited[idx-1] && data[idx-1] >= threshold {
				visited[idx-1] = true
				queue = append(queue, idx-1)
			}
			if x < width-1 && !visited[idx+1] && data[idx+1] >= threshold {
				visited[idx+1] = true
				queue = append(queue, idx+1)
			}
			if y > 0 && !visited[idx-width] && data[idx-width] >= threshold {
				visited[idx-width] = true
				queue = append(queue, idx-width)
			}
			if y < height-1 && !visited[idx+width] && data[idx+width] >= threshold {
				visited[idx+width] = true
				queue = append(queue, idx+width)
			}
		}
		components = append(components, comp)
	}
	return components
}

// extractMask converts a backend mask tensor to a Mask cropped to the
// working content area. A nil tensor falls back to the score map itself.
func extractMask(out *inference.Outputs, transform images.Transform) (*Mask, error) {
	src := out.Mask
	if src == nil {
		src = out.Score
	}
	height, width, ok := inference.PlaneDims(src)
	if !ok {
		return nil, errors.Errorf("mask tensor has unusable shape %v", src.Shape())
	}
	data, ok := src.Data().([]float32)
	if !ok {
		return nil, errors.New("mask tensor must be float32")
	}
	if len(data) < width*height {
		return nil, errors.Errorf("mask tensor has %d values, expected %d", len(data), width*height)
	}

	mask := &Mask{Width: width, Height: height, Data: make([]float32, width*height)}
	copy(mask.Data, data[:width*height])
	return mask.crop(transform.ContentWidth(), transform.ContentHeight()), nil
}
