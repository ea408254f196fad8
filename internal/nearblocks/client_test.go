package nearblocks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAccountTransactions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/account/alice.testnet/txns", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"txns":[{"hash":"abc"},{"hash":"def"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, zap.NewNop())

	txns, err := client.AccountTransactions(context.Background(), "alice.testnet")
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.JSONEq(t, `{"hash":"abc"}`, string(txns[0]))
}

func TestAccountTransactionsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, zap.NewNop())

	_, err := client.AccountTransactions(context.Background(), "alice.testnet")
	require.Error(t, err)
}

func TestAccountTransactionsEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"txns":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, zap.NewNop())

	txns, err := client.AccountTransactions(context.Background(), "alice.testnet")
	require.NoError(t, err)
	assert.Empty(t, txns)
}
