package fixed

import (
	"math"

	"github.com/govalues/decimal"
)

// Point is an unsafe wrapper around decimal implementation. Caller must make sure the calculations
// are correct and will not result in an error state, otherwise it will panic
type Point struct {
	v decimal.Decimal
}

var (
	Zero = Point{}
	One  = FromInt64(1, 0)
)

func FromInt64(value int64, scale int) Point {
	return Point{must(decimal.New(value, scale))}
}

// FromFloat64 converts using the shortest decimal representation of value,
// so 0.005 becomes exactly 0.005 rather than its binary approximation.
func FromFloat64(value float64) Point {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic("fixed: value is not finite")
	}
	return Point{must(decimal.NewFromFloat64(value))}
}

func (p Point) String() string { return p.v.String() }

// Float64 returns the nearest binary float. Precision loss is silent, values
// handled here are prices and fees well inside float64 range.
func (p Point) Float64() float64 {
	f, _ := p.v.Float64()
	return f
}

func (p Point) Add(o Point) Point { return Point{must(p.v.Add(o.v))} }
func (p Point) Sub(o Point) Point { return Point{must(p.v.Sub(o.v))} }
func (p Point) Mul(o Point) Point { return Point{must(p.v.Mul(o.v))} }

func (p Point) Eq(o Point) bool  { return p.v.Cmp(o.v) == 0 }
func (p Point) Gt(o Point) bool  { return p.v.Cmp(o.v) > 0 }
func (p Point) Lt(o Point) bool  { return p.v.Cmp(o.v) < 0 }
func (p Point) Gte(o Point) bool { return p.v.Cmp(o.v) >= 0 }
func (p Point) Lte(o Point) bool { return p.v.Cmp(o.v) <= 0 }

func (p Point) IsZero() bool { return p.v.IsZero() }

func Max(a, b Point) Point {
	if a.Gte(b) {
		return a
	}
	return b
}

func (p Point) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func must(v decimal.Decimal, err error) decimal.Decimal {
	if err == nil {
		// Return in the happy path
		return v
	}
	panic(err)
}
