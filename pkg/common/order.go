package common

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/peter-kozarec/fillsim/pkg/utility"
	"go.uber.org/zap"
)

type OrderId = int64
type Side int
type OrderKind int
type TimeInForce int
type OrderStatus int

const (
	SideBuy Side = iota
	SideSell
)

const (
	OrderKindMarket OrderKind = iota
	OrderKindLimit
	OrderKindStop
	OrderKindStopLimit
)

const (
	TimeInForceDay TimeInForce = iota
	TimeInForceGoodTillCancel
	TimeInForceImmediateOrCancel
	TimeInForceFillOrKill
)

const (
	OrderStatusPending OrderStatus = iota
	OrderStatusTriggered
	OrderStatusFilled
	OrderStatusCancelled
	OrderStatusRejected
)

var ErrInvalidOrderType = errors.New("invalid order type")

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "buy"
	case SideSell:
		return "sell"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

func (k OrderKind) String() string {
	switch k {
	case OrderKindMarket:
		return "market"
	case OrderKindLimit:
		return "limit"
	case OrderKindStop:
		return "stop"
	case OrderKindStopLimit:
		return "stop-limit"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusPending:
		return "pending"
	case OrderStatusTriggered:
		return "triggered"
	case OrderStatusFilled:
		return "filled"
	case OrderStatusCancelled:
		return "cancelled"
	case OrderStatusRejected:
		return "rejected"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// IsActive reports whether an order with this status may still fill.
func (s OrderStatus) IsActive() bool {
	return s == OrderStatusPending || s == OrderStatusTriggered
}

// OrderType is a tagged union over the supported order types. Only the price
// fields belonging to Kind are meaningful: Price for limit and stop,
// StopPrice and LimitPrice for stop-limit.
type OrderType struct {
	Kind       OrderKind `json:"kind"`
	Price      float64   `json:"price,omitempty"`
	StopPrice  float64   `json:"stop_price,omitempty"`
	LimitPrice float64   `json:"limit_price,omitempty"`
}

func MarketOrder() OrderType {
	return OrderType{Kind: OrderKindMarket}
}

func LimitOrder(price float64) OrderType {
	return OrderType{Kind: OrderKindLimit, Price: price}
}

func StopOrder(price float64) OrderType {
	return OrderType{Kind: OrderKindStop, Price: price}
}

func StopLimitOrder(stopPrice, limitPrice float64) OrderType {
	return OrderType{Kind: OrderKindStopLimit, StopPrice: stopPrice, LimitPrice: limitPrice}
}

func (t OrderType) Validate() error {
	var prices []float64
	switch t.Kind {
	case OrderKindMarket:
		return nil
	case OrderKindLimit, OrderKindStop:
		prices = []float64{t.Price}
	case OrderKindStopLimit:
		prices = []float64{t.StopPrice, t.LimitPrice}
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidOrderType, t.Kind)
	}
	for _, p := range prices {
		if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
			return fmt.Errorf("%w: %s price %v", ErrInvalidOrderType, t.Kind, p)
		}
	}
	return nil
}

func (t OrderType) String() string {
	switch t.Kind {
	case OrderKindLimit, OrderKindStop:
		return fmt.Sprintf("%s(%v)", t.Kind, t.Price)
	case OrderKindStopLimit:
		return fmt.Sprintf("%s(%v, %v)", t.Kind, t.StopPrice, t.LimitPrice)
	default:
		return t.Kind.String()
	}
}

type Order struct {
	Id          OrderId     `json:"id"`
	Symbol      string      `json:"symbol"`
	Side        Side        `json:"side"`
	Type        OrderType   `json:"type"`
	Quantity    float64     `json:"quantity"`
	TimeInForce TimeInForce `json:"time_in_force"`
	Status      OrderStatus `json:"status"`
	// Triggered is set once the stop leg of a stop-limit order fired in an
	// earlier cycle. From then on the order rests as a plain limit.
	Triggered bool `json:"triggered,omitempty"`

	Source      string              `json:"src,omitempty"`
	ExecutionId utility.ExecutionID `json:"eid,omitempty"`
	TraceID     utility.TraceID     `json:"tid,omitempty"`
	TimeStamp   time.Time           `json:"ts"`
}

func (o Order) Fields() []zap.Field {
	return []zap.Field{
		zap.Int64("order_id", o.Id),
		zap.String("symbol", o.Symbol),
		zap.Stringer("side", o.Side),
		zap.Stringer("type", o.Type),
		zap.Float64("quantity", o.Quantity),
		zap.Stringer("status", o.Status),
	}
}
