package service

import (
	"context"
	"errors"
	"testing"

	"stock-intel/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Intent
	}{
		{name: "symbol", raw: "VCB", want: Intent{Kind: IntentSymbol, Symbol: "VCB"}},
		{name: "symbol with whitespace", raw: "  FPT\n", want: Intent{Kind: IntentSymbol, Symbol: "FPT"}},
		{name: "alphanumeric code", raw: "TXN12345", want: Intent{Kind: IntentSymbol, Symbol: "TXN12345"}},
		{name: "market sentinel", raw: "MARKET\n", want: Intent{Kind: IntentMarket}},
		{name: "other sentinel", raw: " OTHER ", want: Intent{Kind: IntentOther}},
		{name: "blank output", raw: " \n", want: Intent{Kind: IntentOther}},
		{name: "lowercase market is a symbol", raw: "market", want: Intent{Kind: IntentSymbol, Symbol: "market"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseIntent(tt.raw))
		})
	}
}

func TestIntentService_Resolve(t *testing.T) {
	svc := NewIntentService(&fakeClassifier{out: "VNM\n"}, logger.NewNop())

	intent, err := svc.Resolve(context.Background(), "What is Vinamilk?")
	require.NoError(t, err)
	assert.Equal(t, Intent{Kind: IntentSymbol, Symbol: "VNM"}, intent)
}

func TestIntentService_Resolve_ProviderFailure(t *testing.T) {
	providerErr := errors.New("connection reset")
	svc := NewIntentService(&fakeClassifier{err: providerErr}, logger.NewNop())

	_, err := svc.Resolve(context.Background(), "Tell me about VCB")
	assert.ErrorIs(t, err, ErrProviderFailure)
	assert.ErrorIs(t, err, providerErr)
}
