package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTradeStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from TradeStatus
		to   TradeStatus
		want bool
	}{
		{"pending to accepted", TradeStatusPending, TradeStatusAccepted, true},
		{"pending to rejected", TradeStatusPending, TradeStatusRejected, true},
		{"pending to completed", TradeStatusPending, TradeStatusCompleted, false},
		{"accepted to completed", TradeStatusAccepted, TradeStatusCompleted, true},
		{"accepted to rejected", TradeStatusAccepted, TradeStatusRejected, false},
		{"rejected is terminal", TradeStatusRejected, TradeStatusAccepted, false},
		{"completed is terminal", TradeStatusCompleted, TradeStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTrade_Resolve(t *testing.T) {
	trade := &Trade{Status: TradeStatusPending}

	assert.True(t, trade.Resolve(TradeStatusAccepted))
	assert.Equal(t, TradeStatusAccepted, trade.Status)

	// A resolved trade cannot be resolved again.
	assert.False(t, trade.Resolve(TradeStatusRejected))
	assert.Equal(t, TradeStatusAccepted, trade.Status)
}

func TestTradeAction_Status(t *testing.T) {
	status, ok := TradeActionAccept.Status()
	assert.True(t, ok)
	assert.Equal(t, TradeStatusAccepted, status)

	status, ok = TradeActionReject.Status()
	assert.True(t, ok)
	assert.Equal(t, TradeStatusRejected, status)

	_, ok = TradeAction("cancel").Status()
	assert.False(t, ok)
}
