package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedPoint_FromFloat64(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"zero", 0.0, "0"},
		{"positive", 123.45, "123.45"},
		{"negative", -0.5, "-0.5"},
		{"shortest representation", 0.005, "0.005"},
		{"tenth", 0.1, "0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromFloat64(tt.value).String())
		})
	}
}

func TestFixedPoint_FromFloat64NotFinite(t *testing.T) {
	var zero float64
	assert.Panics(t, func() { FromFloat64(1 / zero) })
}

func TestFixedPoint_Arithmetic(t *testing.T) {
	a := FromFloat64(0.1)
	b := FromFloat64(0.2)

	assert.Equal(t, "0.3", a.Add(b).String())
	assert.Equal(t, "-0.1", a.Sub(b).String())
	assert.Equal(t, 0.3, FromInt64(3, 0).Mul(a).Float64())
	assert.Equal(t, 0.5, FromInt64(100, 0).Mul(FromFloat64(0.005)).Float64())
}

func TestFixedPoint_Comparisons(t *testing.T) {
	a := FromInt64(15, 1)
	b := FromFloat64(1.5)
	c := FromInt64(2, 0)

	assert.True(t, a.Eq(b))
	assert.True(t, a.Lt(c))
	assert.True(t, c.Gt(a))
	assert.True(t, a.Gte(b))
	assert.True(t, a.Lte(c))
	assert.True(t, Zero.IsZero())
	assert.False(t, One.IsZero())
}

func TestFixedPoint_Max(t *testing.T) {
	assert.Equal(t, "2", Max(FromInt64(2, 0), One).String())
	assert.Equal(t, "2", Max(One, FromInt64(2, 0)).String())
}
