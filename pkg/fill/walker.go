package fill

import "github.com/peter-kozarec/fillsim/pkg/common"

// Result of walking a price sequence for one order. Index is the position in
// the sequence at which the fill happened.
type Result struct {
	Filled bool
	Price  float64
	Index  int
}

var noFill = Result{Index: -1}

type condition func(price float64) bool

// cross is the one primitive every order type is built from. The leg starts
// at prices[from], observed at open. If the condition already holds there the
// market gapped through the order and it fills at open. Otherwise the first
// later point satisfying the condition fills at trigger, the price the order
// was resting at, however far the path overshoots it.
func cross(prices []float64, from int, open float64, holds condition, trigger float64) Result {
	if from < 0 || from >= len(prices) {
		return noFill
	}
	if holds(open) {
		return Result{Filled: true, Price: open, Index: from}
	}
	for i := from + 1; i < len(prices); i++ {
		if holds(prices[i]) {
			return Result{Filled: true, Price: trigger, Index: i}
		}
	}
	return noFill
}

func limitCondition(side common.Side, price float64) condition {
	if side == common.SideBuy {
		return func(p float64) bool { return p <= price }
	}
	return func(p float64) bool { return p >= price }
}

func stopCondition(side common.Side, price float64) condition {
	if side == common.SideBuy {
		return func(p float64) bool { return p >= price }
	}
	return func(p float64) bool { return p <= price }
}

// Evaluate walks prices once from left to right and decides whether an order
// of the given side and type fills, and at which price.
func Evaluate(prices []float64, side common.Side, orderType common.OrderType) Result {
	if len(prices) == 0 {
		return noFill
	}

	switch orderType.Kind {
	case common.OrderKindMarket:
		return Result{Filled: true, Price: prices[0], Index: 0}
	case common.OrderKindLimit:
		return cross(prices, 0, prices[0], limitCondition(side, orderType.Price), orderType.Price)
	case common.OrderKindStop:
		return cross(prices, 0, prices[0], stopCondition(side, orderType.Price), orderType.Price)
	case common.OrderKindStopLimit:
		return evaluateStopLimit(prices, side, orderType.StopPrice, orderType.LimitPrice)
	default:
		return noFill
	}
}

// EvaluateTriggered walks a stop-limit whose stop fired in an earlier
// sequence. It rests as a plain limit order.
func EvaluateTriggered(prices []float64, side common.Side, orderType common.OrderType) Result {
	if orderType.Kind != common.OrderKindStopLimit {
		return Evaluate(prices, side, orderType)
	}
	return Evaluate(prices, side, common.LimitOrder(orderType.LimitPrice))
}

// Trigger locates the stop trigger of a stop or stop-limit order. The
// returned price is the observed trigger price: the open on a gap, the stop
// price otherwise.
func Trigger(prices []float64, side common.Side, stopPrice float64) (price float64, index int, ok bool) {
	if len(prices) == 0 {
		return 0, -1, false
	}
	r := cross(prices, 0, prices[0], stopCondition(side, stopPrice), stopPrice)
	return r.Price, r.Index, r.Filled
}

// evaluateStopLimit finds the stop trigger first, then restarts a limit leg
// at the trigger index with the observed trigger price as the leg open.
func evaluateStopLimit(prices []float64, side common.Side, stopPrice, limitPrice float64) Result {
	observed, index, ok := Trigger(prices, side, stopPrice)
	if !ok {
		return noFill
	}
	return cross(prices, index, observed, limitCondition(side, limitPrice), limitPrice)
}
