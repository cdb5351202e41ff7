package common

import (
	"time"

	"github.com/peter-kozarec/fillsim/pkg/utility"
	"go.uber.org/zap"
)

type TradeId = int64

type Trade struct {
	Id         TradeId `json:"id"`
	OrderId    OrderId `json:"order_id"`
	Side       Side    `json:"side"`
	Quantity   float64 `json:"quantity"`
	Price      float64 `json:"price"`
	Commission float64 `json:"commission"`

	Source      string              `json:"src,omitempty"`
	Symbol      string              `json:"symbol,omitempty"`
	ExecutionId utility.ExecutionID `json:"eid,omitempty"`
	TraceID     utility.TraceID     `json:"tid,omitempty"`
	TimeStamp   time.Time           `json:"ts"`
}

func (t Trade) Fields() []zap.Field {
	return []zap.Field{
		zap.Int64("trade_id", t.Id),
		zap.Int64("order_id", t.OrderId),
		zap.String("symbol", t.Symbol),
		zap.Stringer("side", t.Side),
		zap.Float64("quantity", t.Quantity),
		zap.Float64("price", t.Price),
		zap.Float64("commission", t.Commission),
	}
}
