package near

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testPrivateKey(t *testing.T) string {
	t.Helper()
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	return "ed25519:" + base58.Encode(ed25519.NewKeyFromSeed(seed))
}

// fakeRPC - JSON-RPC узел для тестов: диспетчеризация по имени метода.
func fakeRPC(t *testing.T, handlers map[string]func(params json.RawMessage) any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			JSONRPC string          `json:"jsonrpc"`
			ID      string          `json:"id"`
			Method  string          `json:"method"`
			Params  json.RawMessage `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2.0", req.JSONRPC)
		assert.NotEmpty(t, req.ID)

		handler, ok := handlers[req.Method]
		require.True(t, ok, "unexpected rpc method: %s", req.Method)

		result, err := json.Marshal(handler(req.Params))
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","id":"` + req.ID + `","result":` + string(result) + `}`))
	}))
}

func TestViewDecodesByteArray(t *testing.T) {
	server := fakeRPC(t, map[string]func(json.RawMessage) any{
		"query": func(params json.RawMessage) any {
			var p map[string]any
			require.NoError(t, json.Unmarshal(params, &p))
			assert.Equal(t, "call_function", p["request_type"])
			assert.Equal(t, "meme.testnet", p["account_id"])
			assert.Equal(t, "get_balance", p["method_name"])

			// Контракт вернул JSON-строку "42" (байты 34 52 50 34)
			return map[string]any{"result": []int{34, 52, 50, 34}, "logs": []string{}}
		},
	})
	defer server.Close()

	client, err := NewClient(server.URL, "agent.testnet", testPrivateKey(t), 5*time.Second, zap.NewNop())
	require.NoError(t, err)

	raw, err := client.View(context.Background(), "meme.testnet", "get_balance", map[string]any{"account": "alice.testnet"})
	require.NoError(t, err)
	assert.Equal(t, `"42"`, string(raw))
}

func TestCallSignsAndBroadcasts(t *testing.T) {
	blockHash := make([]byte, 32)
	blockHash[0] = 7

	var broadcasted string
	server := fakeRPC(t, map[string]func(json.RawMessage) any{
		"query": func(params json.RawMessage) any {
			var p map[string]any
			require.NoError(t, json.Unmarshal(params, &p))
			assert.Equal(t, "view_access_key", p["request_type"])
			assert.Equal(t, "agent.testnet", p["account_id"])

			return map[string]any{
				"nonce":      uint64(41),
				"block_hash": base58.Encode(blockHash),
			}
		},
		"broadcast_tx_commit": func(params json.RawMessage) any {
			var encoded []string
			require.NoError(t, json.Unmarshal(params, &encoded))
			require.Len(t, encoded, 1)
			broadcasted = encoded[0]

			return map[string]any{
				"status":      map[string]any{"SuccessValue": ""},
				"transaction": map[string]any{"hash": "tx123"},
			}
		},
	})
	defer server.Close()

	client, err := NewClient(server.URL, "agent.testnet", testPrivateKey(t), 5*time.Second, zap.NewNop())
	require.NoError(t, err)

	err = client.Call(context.Background(), "meme.testnet", "tip",
		map[string]any{"receiver": "bob.testnet", "amount": "100"}, 300_000_000_000_000, nil)
	require.NoError(t, err)

	// Транзакция ушла в виде валидного base64
	raw, err := base64.StdEncoding.DecodeString(broadcasted)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}

// Неуспешный исход в блокчейне превращается в ErrCallFailed.
func TestCallFailureOutcome(t *testing.T) {
	blockHash := make([]byte, 32)

	server := fakeRPC(t, map[string]func(json.RawMessage) any{
		"query": func(params json.RawMessage) any {
			return map[string]any{
				"nonce":      uint64(1),
				"block_hash": base58.Encode(blockHash),
			}
		},
		"broadcast_tx_commit": func(params json.RawMessage) any {
			return map[string]any{
				"status": map[string]any{
					"Failure": map[string]any{"error_message": "Smart contract panicked"},
				},
				"transaction": map[string]any{"hash": "tx456"},
			}
		},
	})
	defer server.Close()

	client, err := NewClient(server.URL, "agent.testnet", testPrivateKey(t), 5*time.Second, zap.NewNop())
	require.NoError(t, err)

	err = client.Call(context.Background(), "meme.testnet", "mint", map[string]any{}, 300_000_000_000_000, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCallFailed)
}

// Конкурентные change-вызовы не пересекаются: каждый следующий читает nonce
// только после отправки предыдущей транзакции.
func TestConcurrentCallsSerializeNonceSequence(t *testing.T) {
	blockHash := make([]byte, 32)

	var mu sync.Mutex
	nonce := uint64(10)
	inFlight := false

	server := fakeRPC(t, map[string]func(json.RawMessage) any{
		"query": func(params json.RawMessage) any {
			mu.Lock()
			defer mu.Unlock()
			assert.False(t, inFlight, "nonce fetched while another call is still in flight")
			inFlight = true
			return map[string]any{
				"nonce":      nonce,
				"block_hash": base58.Encode(blockHash),
			}
		},
		"broadcast_tx_commit": func(params json.RawMessage) any {
			mu.Lock()
			defer mu.Unlock()
			inFlight = false
			nonce++
			return map[string]any{
				"status":      map[string]any{"SuccessValue": ""},
				"transaction": map[string]any{"hash": "tx"},
			}
		},
	})
	defer server.Close()

	client, err := NewClient(server.URL, "agent.testnet", testPrivateKey(t), 5*time.Second, zap.NewNop())
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = client.Call(context.Background(), "meme.testnet", "tip",
				map[string]any{"receiver": "bob.testnet", "amount": "1"}, 300_000_000_000_000, nil)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, uint64(14), nonce)
}

func TestRPCErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","id":"1","error":{"code":-32000,"message":"Server error"}}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "agent.testnet", testPrivateKey(t), 5*time.Second, zap.NewNop())
	require.NoError(t, err)

	require.Error(t, client.Ping(context.Background()))
}
