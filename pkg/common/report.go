package common

import (
	"time"

	"github.com/peter-kozarec/fillsim/pkg/utility"
)

type ReportStatus int

const (
	ReportStatusUnfilled ReportStatus = iota
	ReportStatusPartiallyFilled
	ReportStatusFilled
)

func (s ReportStatus) String() string {
	switch s {
	case ReportStatusFilled:
		return "filled"
	case ReportStatusPartiallyFilled:
		return "partially-filled"
	default:
		return "unfilled"
	}
}

// ExecutionReport describes the activity of one order during one matching
// cycle. AveragePrice is meaningful only when FilledQuantity is positive.
type ExecutionReport struct {
	OrderId           OrderId      `json:"order_id"`
	Status            ReportStatus `json:"status"`
	FilledQuantity    float64      `json:"filled_quantity"`
	RemainingQuantity float64      `json:"remaining_quantity"`
	AveragePrice      float64      `json:"average_price,omitempty"`
	Trades            []Trade      `json:"trades"`

	Source      string              `json:"src,omitempty"`
	Symbol      string              `json:"symbol,omitempty"`
	ExecutionId utility.ExecutionID `json:"eid,omitempty"`
	TraceID     utility.TraceID     `json:"tid,omitempty"`
	TimeStamp   time.Time           `json:"ts"`
}
