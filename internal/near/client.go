package near

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"github.com/near/borsh-go"
	"go.uber.org/zap"
)

// ErrCallFailed - удаленный вызов завершился неуспешным исходом в блокчейне.
var ErrCallFailed = errors.New("near: contract call failed")

// Client - JSON-RPC клиент NEAR. View-вызовы идут через query/call_function,
// изменяющие вызовы подписываются ed25519 и отправляются broadcast_tx_commit.
type Client struct {
	rpcURL     string
	accountID  string
	privateKey ed25519.PrivateKey
	publicKey  ed25519.PublicKey
	httpClient *http.Client
	logger     *zap.Logger

	// txMu сериализует change-вызовы одного ключа: два конкурентных вызова
	// прочитали бы одинаковый nonce, и узел отверг бы одну транзакцию
	txMu sync.Mutex
}

// NewClient создает клиент для учетной записи accountID с ключом privateKey
// (формат "ed25519:<base58>"). timeout ограничивает каждый HTTP-запрос.
func NewClient(rpcURL, accountID, privateKey string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	key, err := ParsePrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("invalid NEAR private key: %w", err)
	}

	return &Client{
		rpcURL:     rpcURL,
		accountID:  accountID,
		privateKey: key,
		publicKey:  key.Public().(ed25519.PublicKey),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.Named("NearClient"),
	}, nil
}

// AccountID возвращает учетную запись, от имени которой подписываются вызовы.
func (c *Client) AccountID() string {
	return c.accountID
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type rpcErrorBody struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcErrorBody   `json:"error"`
}

// rpc выполняет один JSON-RPC 2.0 запрос и возвращает сырое поле result.
func (c *Client) rpc(ctx context.Context, method string, params any) (json.RawMessage, error) {
	reqBody, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rpc request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rpc request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("NEAR RPC returned non-OK status",
			zap.String("method", method),
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("response_body", bodyBytes),
		)
		return nil, fmt.Errorf("rpc returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}
	if readErr != nil {
		return nil, fmt.Errorf("failed to read rpc response body: %w", readErr)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(bodyBytes, &rpcResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rpc response: %w", err)
	}
	if rpcResp.Error != nil {
		c.logger.Error("NEAR RPC returned error",
			zap.String("method", method),
			zap.Int("code", rpcResp.Error.Code),
			zap.String("message", rpcResp.Error.Message),
			zap.ByteString("data", rpcResp.Error.Data),
		)
		return nil, fmt.Errorf("rpc error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message)
	}

	return rpcResp.Result, nil
}

// Ping проверяет доступность RPC-узла (используется при старте).
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.rpc(ctx, "status", []any{})
	return err
}

// View вызывает view-метод контракта и возвращает сырые байты результата
// (обычно это JSON-значение).
func (c *Client) View(ctx context.Context, contractID, method string, args any) ([]byte, error) {
	argsJSON, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal view args: %w", err)
	}

	raw, err := c.rpc(ctx, "query", map[string]any{
		"request_type": "call_function",
		"finality":     "final",
		"account_id":   contractID,
		"method_name":  method,
		"args_base64":  base64.StdEncoding.EncodeToString(argsJSON),
	})
	if err != nil {
		return nil, err
	}

	// Узел отдает результат как массив чисел-байтов
	var result struct {
		Result []int    `json:"result"`
		Logs   []string `json:"logs"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal call_function result: %w", err)
	}

	out := make([]byte, len(result.Result))
	for i, b := range result.Result {
		out[i] = byte(b)
	}
	return out, nil
}

// Call подписывает и отправляет изменяющий вызов метода контракта.
// deposit может быть nil (вызов без прикрепленного депозита).
func (c *Client) Call(ctx context.Context, contractID, method string, args any, gas uint64, deposit *big.Int) error {
	argsJSON, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("failed to marshal call args: %w", err)
	}

	c.txMu.Lock()
	defer c.txMu.Unlock()

	nonce, blockHash, err := c.accessKeyState(ctx)
	if err != nil {
		return err
	}

	var pub publicKey
	copy(pub.Data[:], c.publicKey)

	attached := big.NewInt(0)
	if deposit != nil {
		attached = deposit
	}

	fnCall := action{Enum: borsh.Enum(actionFunctionCall)}
	fnCall.FunctionCall = functionCall{
		MethodName: method,
		Args:       argsJSON,
		Gas:        gas,
		Deposit:    *attached,
	}

	tx := transaction{
		SignerID:   c.accountID,
		PublicKey:  pub,
		Nonce:      nonce + 1,
		ReceiverID: contractID,
		BlockHash:  blockHash,
		Actions:    []action{fnCall},
	}

	txBytes, err := borsh.Serialize(tx)
	if err != nil {
		return fmt.Errorf("failed to serialize transaction: %w", err)
	}
	txHash := sha256.Sum256(txBytes)

	var sig signature
	copy(sig.Data[:], ed25519.Sign(c.privateKey, txHash[:]))

	signedBytes, err := borsh.Serialize(signedTransaction{
		Transaction: tx,
		Signature:   sig,
	})
	if err != nil {
		return fmt.Errorf("failed to serialize signed transaction: %w", err)
	}

	raw, err := c.rpc(ctx, "broadcast_tx_commit", []string{
		base64.StdEncoding.EncodeToString(signedBytes),
	})
	if err != nil {
		return err
	}

	var outcome struct {
		Status struct {
			SuccessValue *string         `json:"SuccessValue"`
			Failure      json.RawMessage `json:"Failure"`
		} `json:"status"`
		Transaction struct {
			Hash string `json:"hash"`
		} `json:"transaction"`
	}
	if err := json.Unmarshal(raw, &outcome); err != nil {
		return fmt.Errorf("failed to unmarshal execution outcome: %w", err)
	}
	if len(outcome.Status.Failure) > 0 {
		c.logger.Error("Contract call failed on chain",
			zap.String("contract_id", contractID),
			zap.String("method", method),
			zap.String("tx_hash", outcome.Transaction.Hash),
			zap.ByteString("failure", outcome.Status.Failure),
		)
		return fmt.Errorf("%w: %s %s", ErrCallFailed, method, outcome.Transaction.Hash)
	}

	c.logger.Debug("Contract call succeeded",
		zap.String("contract_id", contractID),
		zap.String("method", method),
		zap.String("tx_hash", outcome.Transaction.Hash),
	)
	return nil
}

// accessKeyState возвращает текущий nonce ключа и хеш недавнего блока.
func (c *Client) accessKeyState(ctx context.Context) (uint64, [32]byte, error) {
	var blockHash [32]byte

	raw, err := c.rpc(ctx, "query", map[string]any{
		"request_type": "view_access_key",
		"finality":     "final",
		"account_id":   c.accountID,
		"public_key":   EncodePublicKey(c.publicKey),
	})
	if err != nil {
		return 0, blockHash, err
	}

	var result struct {
		Nonce     uint64 `json:"nonce"`
		BlockHash string `json:"block_hash"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return 0, blockHash, fmt.Errorf("failed to unmarshal access key state: %w", err)
	}

	decoded, err := base58.Decode(result.BlockHash)
	if err != nil {
		return 0, blockHash, fmt.Errorf("failed to decode block hash: %w", err)
	}
	if len(decoded) != len(blockHash) {
		return 0, blockHash, fmt.Errorf("unexpected block hash length: %d", len(decoded))
	}
	copy(blockHash[:], decoded)

	return result.Nonce, blockHash, nil
}
