package fill

import "github.com/peter-kozarec/fillsim/pkg/common"

// MightFill reports whether bar's range leaves any chance of a fill. It is a
// necessary condition only: false guarantees the walker finds no fill on any
// path consistent with bar, true guarantees nothing.
//
// The limit leg of a stop-limit is not checked here, it is evaluated after
// the trigger while walking.
func MightFill(bar common.Bar, side common.Side, orderType common.OrderType) bool {
	switch orderType.Kind {
	case common.OrderKindMarket:
		return true
	case common.OrderKindLimit:
		return reachesLimit(bar, side, orderType.Price)
	case common.OrderKindStop:
		return reachesStop(bar, side, orderType.Price)
	case common.OrderKindStopLimit:
		return reachesStop(bar, side, orderType.StopPrice)
	default:
		return false
	}
}

// MightFillOrder is MightFill for an order, treating a stop-limit whose stop
// already fired as the limit it has become.
func MightFillOrder(bar common.Bar, order common.Order) bool {
	if order.Triggered && order.Type.Kind == common.OrderKindStopLimit {
		return reachesLimit(bar, order.Side, order.Type.LimitPrice)
	}
	return MightFill(bar, order.Side, order.Type)
}

func reachesLimit(bar common.Bar, side common.Side, price float64) bool {
	if side == common.SideBuy {
		return bar.Low <= price
	}
	return bar.High >= price
}

func reachesStop(bar common.Bar, side common.Side, price float64) bool {
	if side == common.SideBuy {
		return bar.High >= price
	}
	return bar.Low <= price
}
