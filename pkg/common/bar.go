package common

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/peter-kozarec/fillsim/pkg/utility"
	"go.uber.org/zap"
)

var ErrInvalidBar = errors.New("invalid bar")

// Bar is the OHLC summary of one period for one symbol. A newer bar for the
// same symbol replaces the older one, bars are never merged.
type Bar struct {
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`

	Source      string              `json:"src,omitempty"`
	Symbol      string              `json:"symbol,omitempty"`
	ExecutionId utility.ExecutionID `json:"eid,omitempty"`
	TraceID     utility.TraceID     `json:"tid,omitempty"`
	TimeStamp   time.Time           `json:"ts"`
}

// Validate checks low <= min(open, close) <= max(open, close) <= high.
func (b Bar) Validate() error {
	for _, v := range [...]float64{b.Open, b.High, b.Low, b.Close} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s has non finite price", ErrInvalidBar, b.Symbol)
		}
	}
	if b.Low > math.Min(b.Open, b.Close) || math.Max(b.Open, b.Close) > b.High {
		return fmt.Errorf("%w: %s o=%v h=%v l=%v c=%v", ErrInvalidBar, b.Symbol, b.Open, b.High, b.Low, b.Close)
	}
	return nil
}

func (b Bar) Fields() []zap.Field {
	return []zap.Field{
		zap.String("symbol", b.Symbol),
		zap.Float64("open", b.Open),
		zap.Float64("high", b.High),
		zap.Float64("low", b.Low),
		zap.Float64("close", b.Close),
	}
}
