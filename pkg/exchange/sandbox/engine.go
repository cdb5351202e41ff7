package sandbox

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/peter-kozarec/fillsim/internal/dbg"
	"github.com/peter-kozarec/fillsim/pkg/common"
	"github.com/peter-kozarec/fillsim/pkg/fill"
	"github.com/peter-kozarec/fillsim/pkg/intraday"
	"github.com/peter-kozarec/fillsim/pkg/utility"
	"github.com/peter-kozarec/fillsim/pkg/utility/fixed"
)

const engineComponentName = "exchange.sandbox.engine"

// OrderManager owns the order book the engine matches against. The engine
// only reads active orders and reports status transitions back.
type OrderManager interface {
	ActiveOrders() []common.Order
	UpdateStatus(id common.OrderId, status common.OrderStatus) error
}

// TriggerRecorder is implemented by order managers that remember stop-limit
// orders whose stop fired without the limit filling in the same cycle.
type TriggerRecorder interface {
	MarkTriggered(id common.OrderId) error
}

type market struct {
	bar   common.Bar
	quote common.Quote
}

// Engine matches resting orders against the latest bar of each symbol by
// walking a synthetic intraday path through it. It is not safe for concurrent
// use, run one engine per simulation worker.
type Engine struct {
	logger *zap.Logger
	clock  func() time.Time

	perShare   fixed.Point
	minimum    fixed.Point
	pathConfig intraday.Config

	// rng is nil unless randomized paths were requested.
	rng *rand.Rand

	markets        map[string]market
	tradeIdCounter common.TradeId
}

func NewEngine(cfg Config, options ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := dbg.NewLogger(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("unable to create engine: %w", err)
	}

	e := &Engine{
		logger:     logger,
		clock:      time.Now,
		perShare:   fixed.FromFloat64(cfg.Commission.PerShare),
		minimum:    fixed.FromFloat64(cfg.Commission.Minimum),
		pathConfig: cfg.Path,
		markets:    make(map[string]market),
	}

	for _, option := range options {
		option(e)
	}

	return e, nil
}

// UpdateMarket stores the latest bar per symbol, replacing any earlier bar or
// quote. Nothing is stored when one of the bars is invalid.
func (e *Engine) UpdateMarket(bars ...common.Bar) error {
	for _, bar := range bars {
		if err := bar.Validate(); err != nil {
			return fmt.Errorf("unable to update market: %w", err)
		}
	}

	for _, bar := range bars {
		e.markets[strings.ToUpper(bar.Symbol)] = market{bar: bar, quote: common.QuoteFromBar(bar)}
		e.logger.Debug("market updated", bar.Fields()...)
	}
	return nil
}

// UpdateQuotes stores quotes as equivalent bars. The quote itself is kept for
// MarketData.
func (e *Engine) UpdateQuotes(quotes ...common.Quote) error {
	for _, quote := range quotes {
		if err := quote.Bar().Validate(); err != nil {
			return fmt.Errorf("unable to update quotes: %w", err)
		}
	}

	for _, quote := range quotes {
		bar := quote.Bar()
		e.markets[strings.ToUpper(quote.Symbol)] = market{bar: bar, quote: quote}
		e.logger.Debug("quote updated", bar.Fields()...)
	}
	return nil
}

func (e *Engine) MarketData(symbol string) (common.Quote, bool) {
	m, ok := e.markets[strings.ToUpper(symbol)]
	return m.quote, ok
}

// ProcessOrders runs one matching cycle over every active order. All orders
// on the same symbol see the same synthetic path. Reports produced before a
// failing order manager call are returned together with the error, those
// orders are already filled.
func (e *Engine) ProcessOrders(om OrderManager) ([]common.ExecutionReport, error) {
	var reports []common.ExecutionReport
	paths := make(map[string][]float64)

	for _, order := range om.ActiveOrders() {
		key := strings.ToUpper(order.Symbol)

		m, ok := e.markets[key]
		if !ok {
			e.logger.Debug("no market data, skipping order", order.Fields()...)
			continue
		}
		if !e.acceptable(order) || !fill.MightFillOrder(m.bar, order) {
			continue
		}

		prices, ok := paths[key]
		if !ok {
			path, err := e.generatePath(m.bar)
			if err != nil {
				return reports, fmt.Errorf("unable to process orders: %w", err)
			}
			prices = path.Prices()
			paths[key] = prices
		}

		report, err := e.match(om, order, prices, m.bar.TimeStamp)
		if err != nil {
			return reports, err
		}
		if report != nil {
			reports = append(reports, *report)
		}
	}

	return reports, nil
}

// ProcessMiniBars matches the active orders of symbol against an observed
// mini bar sequence instead of a synthetic path. Orders on other symbols are
// left untouched.
func (e *Engine) ProcessMiniBars(symbol string, om OrderManager, miniBars []common.MiniBar) ([]common.ExecutionReport, error) {
	rangeBar, ok := common.MiniBarRange(symbol, miniBars)
	if !ok {
		return nil, nil
	}
	if err := rangeBar.Validate(); err != nil {
		return nil, fmt.Errorf("unable to process mini bars: %w", err)
	}

	prices := common.MiniBarPrices(miniBars)
	timestamp := e.markets[strings.ToUpper(symbol)].bar.TimeStamp

	var reports []common.ExecutionReport
	for _, order := range om.ActiveOrders() {
		if !strings.EqualFold(order.Symbol, symbol) {
			continue
		}
		if !e.acceptable(order) || !fill.MightFillOrder(rangeBar, order) {
			continue
		}

		report, err := e.match(om, order, prices, timestamp)
		if err != nil {
			return reports, err
		}
		if report != nil {
			reports = append(reports, *report)
		}
	}

	return reports, nil
}

func (e *Engine) match(om OrderManager, order common.Order, prices []float64, timestamp time.Time) (*common.ExecutionReport, error) {
	var result fill.Result
	if order.Triggered {
		result = fill.EvaluateTriggered(prices, order.Side, order.Type)
	} else {
		result = fill.Evaluate(prices, order.Side, order.Type)
	}

	if !result.Filled {
		return nil, e.recordTrigger(om, order, prices)
	}

	if err := om.UpdateStatus(order.Id, common.OrderStatusFilled); err != nil {
		return nil, fmt.Errorf("unable to mark order %d filled: %w", order.Id, err)
	}

	if timestamp.IsZero() {
		timestamp = e.clock()
	}

	e.tradeIdCounter++
	trade := common.Trade{
		Id:          e.tradeIdCounter,
		OrderId:     order.Id,
		Side:        order.Side,
		Quantity:    order.Quantity,
		Price:       result.Price,
		Commission:  e.commission(order.Quantity),
		Source:      engineComponentName,
		Symbol:      order.Symbol,
		ExecutionId: utility.GetExecutionID(),
		TraceID:     utility.CreateTraceID(),
		TimeStamp:   timestamp,
	}

	e.logger.Info("order filled", trade.Fields()...)

	return &common.ExecutionReport{
		OrderId:           order.Id,
		Status:            common.ReportStatusFilled,
		FilledQuantity:    order.Quantity,
		RemainingQuantity: 0,
		AveragePrice:      result.Price,
		Trades:            []common.Trade{trade},
		Source:            engineComponentName,
		Symbol:            order.Symbol,
		ExecutionId:       trade.ExecutionId,
		TraceID:           trade.TraceID,
		TimeStamp:         timestamp,
	}, nil
}

// recordTrigger remembers a stop-limit whose stop fired on prices while the
// limit did not fill, so the next cycle treats it as a resting limit.
func (e *Engine) recordTrigger(om OrderManager, order common.Order, prices []float64) error {
	if order.Type.Kind != common.OrderKindStopLimit || order.Triggered {
		return nil
	}
	if _, _, fired := fill.Trigger(prices, order.Side, order.Type.StopPrice); !fired {
		return nil
	}

	recorder, ok := om.(TriggerRecorder)
	if !ok {
		return nil
	}
	if err := recorder.MarkTriggered(order.Id); err != nil {
		return fmt.Errorf("unable to mark order %d triggered: %w", order.Id, err)
	}

	e.logger.Debug("stop triggered, limit resting", order.Fields()...)
	return nil
}

// commission is max(quantity * per share, minimum), computed in decimal.
func (e *Engine) commission(quantity float64) float64 {
	return fixed.Max(fixed.FromFloat64(quantity).Mul(e.perShare), e.minimum).Float64()
}

func (e *Engine) acceptable(order common.Order) bool {
	if math.IsNaN(order.Quantity) || math.IsInf(order.Quantity, 0) || order.Quantity <= 0 {
		e.logger.Warn("order has invalid quantity, skipping", order.Fields()...)
		return false
	}
	if err := order.Type.Validate(); err != nil {
		e.logger.Warn("order has invalid type, skipping", append(order.Fields(), zap.Error(err))...)
		return false
	}
	return true
}

func (e *Engine) generatePath(bar common.Bar) (intraday.Path, error) {
	rng := e.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(e.pathSeed(bar)))
	}
	return intraday.GenerateRand(bar, e.pathConfig, rng)
}

// pathSeed derives a per bar seed so that identical inputs give identical
// paths while consecutive bars still draw different waypoint orders.
func (e *Engine) pathSeed(bar common.Bar) int64 {
	var buf [8]byte

	h := xxhash.New()
	_, _ = h.WriteString(strings.ToUpper(bar.Symbol))
	for _, v := range [...]float64{bar.Open, bar.High, bar.Low, bar.Close} {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = h.Write(buf[:])
	}

	seed := int64(h.Sum64())
	if e.pathConfig.Seed != nil {
		seed ^= *e.pathConfig.Seed
	}
	return seed
}
