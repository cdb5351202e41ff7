package intraday

import (
	"math"
	"math/rand"
)

// studentT draws from a zero centered Student's t distribution with nu
// degrees of freedom as Z / sqrt(V/nu), V being chi-square(nu).
func studentT(rng *rand.Rand, nu float64) float64 {
	z := rng.NormFloat64()
	v := 2 * gammaSample(rng, nu/2)
	if v <= 0 {
		return z
	}
	return z / math.Sqrt(v/nu)
}

// studentTStdDev is the standard deviation of t(nu). It is infinite for
// nu <= 2, in which case shocks are left unscaled.
func studentTStdDev(nu float64) float64 {
	if nu <= 2 {
		return 1
	}
	return math.Sqrt(nu / (nu - 2))
}

// gammaSample draws Gamma(shape, 1) with the Marsaglia-Tsang method.
func gammaSample(rng *rand.Rand, shape float64) float64 {
	if shape < 1 {
		u := rng.Float64()
		for u == 0 {
			u = rng.Float64()
		}
		return gammaSample(rng, shape+1) * math.Pow(u, 1/shape)
	}

	d := shape - 1.0/3.0
	c := 1 / math.Sqrt(9*d)
	for {
		x := rng.NormFloat64()
		v := 1 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := rng.Float64()
		if u < 1-0.0331*x*x*x*x {
			return d * v
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v
		}
	}
}
