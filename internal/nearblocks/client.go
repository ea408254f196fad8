package nearblocks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Client получает историю транзакций аккаунта из NearBlocks API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient создает клиент NearBlocks.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.Named("NearBlocks"),
	}
}

// AccountTransactions возвращает сырые записи транзакций аккаунта.
func (c *Client) AccountTransactions(ctx context.Context, account string) ([]json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/v1/account/%s/txns", c.baseURL, url.PathEscape(account))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("NearBlocks request failed", zap.String("account", account), zap.Error(err))
		return nil, fmt.Errorf("nearblocks request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("NearBlocks returned non-OK status",
			zap.String("account", account),
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("response_body", bodyBytes),
		)
		return nil, fmt.Errorf("nearblocks returned status %d", resp.StatusCode)
	}
	if readErr != nil {
		return nil, fmt.Errorf("failed to read nearblocks response: %w", readErr)
	}

	var result struct {
		Txns []json.RawMessage `json:"txns"`
	}
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal nearblocks response: %w", err)
	}

	return result.Txns, nil
}
