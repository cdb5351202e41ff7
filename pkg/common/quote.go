package common

import (
	"math"
	"time"

	"github.com/peter-kozarec/fillsim/pkg/utility"
)

type Quote struct {
	Bid  float64 `json:"bid"`
	Ask  float64 `json:"ask"`
	Last float64 `json:"last"`

	Source      string              `json:"src,omitempty"`
	Symbol      string              `json:"symbol,omitempty"`
	ExecutionId utility.ExecutionID `json:"eid,omitempty"`
	TraceID     utility.TraceID     `json:"tid,omitempty"`
	TimeStamp   time.Time           `json:"ts"`
}

// Bar converts the quote into an equivalent bar: open and close at the last
// traded price, high and low spanning bid, ask and last.
func (q Quote) Bar() Bar {
	return Bar{
		Open:        q.Last,
		High:        math.Max(q.Bid, math.Max(q.Ask, q.Last)),
		Low:         math.Min(q.Bid, math.Min(q.Ask, q.Last)),
		Close:       q.Last,
		Source:      q.Source,
		Symbol:      q.Symbol,
		ExecutionId: q.ExecutionId,
		TraceID:     q.TraceID,
		TimeStamp:   q.TimeStamp,
	}
}

// QuoteFromBar is the read back view of a bar when no quote was supplied.
func QuoteFromBar(b Bar) Quote {
	return Quote{
		Bid:         b.Close,
		Ask:         b.Close,
		Last:        b.Close,
		Source:      b.Source,
		Symbol:      b.Symbol,
		ExecutionId: b.ExecutionId,
		TraceID:     b.TraceID,
		TimeStamp:   b.TimeStamp,
	}
}
