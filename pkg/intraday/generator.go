package intraday

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/peter-kozarec/fillsim/pkg/common"
)

const (
	waypointCount = 4
	segmentCount  = waypointCount - 1

	// excursion is the bridge scale relative to the segment span before the
	// span bound is applied.
	excursion = 0.5
)

type Point struct {
	Price float64 `json:"price"`
}

// Path is an ordered intraday price trajectory. It starts at the bar open,
// ends at the bar close, visits high and low and never leaves [low, high].
type Path []Point

func (p Path) Prices() []float64 {
	prices := make([]float64, len(p))
	for i, point := range p {
		prices[i] = point.Price
	}
	return prices
}

// Generate builds a path for bar. The random source is seeded from cfg.Seed,
// or from the clock when no seed is set.
func Generate(bar common.Bar, cfg Config) (Path, error) {
	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	return GenerateRand(bar, cfg, rand.New(rand.NewSource(seed)))
}

// GenerateRand builds a path for bar drawing all randomness from rng. cfg.Seed
// is ignored, the caller owns seeding.
func GenerateRand(bar common.Bar, cfg Config, rng *rand.Rand) (Path, error) {
	if err := bar.Validate(); err != nil {
		return nil, fmt.Errorf("unable to generate path: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("unable to generate path: %w", err)
	}

	waypoints := orderWaypoints(bar, rng)

	if cfg.TotalPoints <= waypointCount {
		path := make(Path, waypointCount)
		for i, w := range waypoints {
			path[i] = Point{Price: w}
		}
		return path, nil
	}

	counts := distribute(cfg.TotalPoints-waypointCount, cfg.Profile)
	shockScale := studentTStdDev(cfg.DegreesOfFreedom)

	prices := make([]float64, 0, cfg.TotalPoints)
	prices = append(prices, waypoints[0])
	for s := 0; s < segmentCount; s++ {
		times := segmentTimes(counts[s], cfg.Profile)
		prices = appendSegment(prices, waypoints[s], waypoints[s+1], times, cfg.DegreesOfFreedom, shockScale, rng)
	}

	path := make(Path, len(prices))
	for i, p := range prices {
		path[i] = Point{Price: clamp(p, bar.Low, bar.High)}
	}
	return path, nil
}

// orderWaypoints picks open-high-low-close or open-low-high-close with equal
// probability, regardless of the bar direction.
func orderWaypoints(bar common.Bar, rng *rand.Rand) [waypointCount]float64 {
	if rng.Intn(2) == 0 {
		return [waypointCount]float64{bar.Open, bar.High, bar.Low, bar.Close}
	}
	return [waypointCount]float64{bar.Open, bar.Low, bar.High, bar.Close}
}

// distribute splits n interior points over the three segments.
func distribute(n int, profile Profile) [segmentCount]int {
	var weights [segmentCount]int
	switch profile {
	case ProfileJShaped:
		weights = [segmentCount]int{1, 2, 3}
	case ProfileReverseJ:
		weights = [segmentCount]int{3, 2, 1}
	default:
		weights = [segmentCount]int{1, 1, 1}
	}

	total := 0
	for _, w := range weights {
		total += w
	}

	var counts [segmentCount]int
	assigned := 0
	for i, w := range weights {
		counts[i] = n * w / total
		assigned += counts[i]
	}

	// Leftovers go to the heaviest segments first, ties broken left to right.
	order := [segmentCount]int{0, 1, 2}
	if profile == ProfileJShaped {
		order = [segmentCount]int{2, 1, 0}
	}
	for i := 0; assigned < n; i = (i + 1) % segmentCount {
		counts[order[i]]++
		assigned++
	}
	return counts
}

// segmentTimes returns m+2 increasing time positions in [0, 1] for a segment
// with m interior points, endpoints included.
func segmentTimes(m int, profile Profile) []float64 {
	times := make([]float64, m+2)
	for k := range times {
		x := float64(k) / float64(m+1)
		switch profile {
		case ProfileUShaped:
			times[k] = (1 - math.Cos(math.Pi*x)) / 2
		case ProfileJShaped:
			times[k] = math.Sqrt(x)
		case ProfileReverseJ:
			times[k] = x * x
		default:
			times[k] = x
		}
	}
	times[0], times[m+1] = 0, 1
	return times
}

// appendSegment appends the interior points of the a->b segment followed by b.
// Prices follow the straight line from a to b plus a Student's t bridge that
// is zero at both ends and scaled down until it fits inside [min(a,b), max(a,b)].
func appendSegment(prices []float64, a, b float64, times []float64, nu, shockScale float64, rng *rand.Rand) []float64 {
	m := len(times) - 2
	if m <= 0 {
		return append(prices, b)
	}

	walk := make([]float64, m+2)
	for k := 1; k <= m+1; k++ {
		dt := times[k] - times[k-1]
		walk[k] = walk[k-1] + studentT(rng, nu)/shockScale*math.Sqrt(dt)
	}

	lo, hi := math.Min(a, b), math.Max(a, b)
	bridge := make([]float64, m+1)
	linear := make([]float64, m+1)
	scale := (hi - lo) * excursion

	for k := 1; k <= m; k++ {
		bridge[k] = walk[k] - times[k]*walk[m+1]
		linear[k] = a + (b-a)*times[k]

		var limit float64
		switch {
		case bridge[k] > 0:
			limit = (hi - linear[k]) / bridge[k]
		case bridge[k] < 0:
			limit = (lo - linear[k]) / bridge[k]
		default:
			continue
		}
		if limit < scale {
			scale = math.Max(limit, 0)
		}
	}

	for k := 1; k <= m; k++ {
		p := linear[k] + scale*bridge[k]
		if math.IsNaN(p) {
			p = linear[k]
		}
		prices = append(prices, clamp(p, lo, hi))
	}
	return append(prices, b)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
