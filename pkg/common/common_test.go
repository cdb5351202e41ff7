package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBar_Validate(t *testing.T) {
	tests := []struct {
		name    string
		bar     Bar
		wantErr bool
	}{
		{"up bar", Bar{Symbol: "SPY", Open: 100, High: 110, Low: 95, Close: 105}, false},
		{"flat bar", Bar{Symbol: "SPY", Open: 100, High: 100, Low: 100, Close: 100}, false},
		{"open above high", Bar{Symbol: "SPY", Open: 111, High: 110, Low: 95, Close: 105}, true},
		{"close below low", Bar{Symbol: "SPY", Open: 100, High: 110, Low: 95, Close: 94}, true},
		{"low above high", Bar{Symbol: "SPY", Open: 100, High: 90, Low: 110, Close: 100}, true},
		{"nan price", Bar{Symbol: "SPY", Open: math.NaN(), High: 110, Low: 95, Close: 105}, true},
		{"infinite high", Bar{Symbol: "SPY", Open: 100, High: math.Inf(1), Low: 95, Close: 105}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bar.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBar)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuote_Bar(t *testing.T) {
	q := Quote{Symbol: "SPY", Bid: 99.5, Ask: 100.5, Last: 100}

	bar := q.Bar()
	assert.Equal(t, Bar{Symbol: "SPY", Open: 100, High: 100.5, Low: 99.5, Close: 100}, bar)
	require.NoError(t, bar.Validate())

	// last printed outside the spread still yields a consistent bar
	q = Quote{Symbol: "SPY", Bid: 99.5, Ask: 100.5, Last: 101}
	bar = q.Bar()
	assert.Equal(t, 101.0, bar.High)
	assert.Equal(t, 99.5, bar.Low)
	require.NoError(t, bar.Validate())
}

func TestQuoteFromBar(t *testing.T) {
	q := QuoteFromBar(Bar{Symbol: "SPY", Open: 100, High: 110, Low: 95, Close: 105})
	assert.Equal(t, Quote{Symbol: "SPY", Bid: 105, Ask: 105, Last: 105}, q)
}

func TestMiniBarPrices(t *testing.T) {
	prices := MiniBarPrices([]MiniBar{
		{TimeFraction: 0, OpenPrice: 100, ClosePrice: 101},
		{TimeFraction: 0.5, OpenPrice: 102, ClosePrice: 99},
	})
	assert.Equal(t, []float64{100, 101, 102, 99}, prices)
	assert.Empty(t, MiniBarPrices(nil))
}

func TestMiniBarRange(t *testing.T) {
	_, ok := MiniBarRange("SPY", nil)
	assert.False(t, ok)

	bar, ok := MiniBarRange("SPY", []MiniBar{
		{TimeFraction: 0, OpenPrice: 100, ClosePrice: 103},
		{TimeFraction: 0.5, OpenPrice: 97, ClosePrice: 101},
	})
	require.True(t, ok)
	assert.Equal(t, Bar{Symbol: "SPY", Open: 100, High: 103, Low: 97, Close: 101}, bar)
}

func TestOrderType_Validate(t *testing.T) {
	tests := []struct {
		name    string
		typ     OrderType
		wantErr bool
	}{
		{"market", MarketOrder(), false},
		{"limit", LimitOrder(10), false},
		{"stop", StopOrder(10), false},
		{"stop limit", StopLimitOrder(10, 9), false},
		{"zero limit", LimitOrder(0), true},
		{"negative stop", StopOrder(-1), true},
		{"nan limit leg", StopLimitOrder(10, math.NaN()), true},
		{"unknown kind", OrderType{Kind: OrderKind(42)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.typ.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOrderType)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderType_String(t *testing.T) {
	assert.Equal(t, "market", MarketOrder().String())
	assert.Equal(t, "limit(97.5)", LimitOrder(97.5).String())
	assert.Equal(t, "stop-limit(100, 98)", StopLimitOrder(100, 98).String())
}

func TestOrderStatus_IsActive(t *testing.T) {
	assert.True(t, OrderStatusPending.IsActive())
	assert.True(t, OrderStatusTriggered.IsActive())
	assert.False(t, OrderStatusFilled.IsActive())
	assert.False(t, OrderStatusCancelled.IsActive())
	assert.False(t, OrderStatusRejected.IsActive())
}
