package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ErrImageGenerationFailed - ошибка при генерации изображения.
var ErrImageGenerationFailed = errors.New("image generation failed")

// Client вызывает Hugging Face Inference API (Stable Diffusion) и возвращает
// сырые байты изображения.
type Client struct {
	modelURL   string
	apiToken   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient создает клиент генерации изображений.
func NewClient(modelURL, apiToken string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		modelURL: modelURL,
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.Named("ImageGen"),
	}
}

type generateRequest struct {
	Inputs     string `json:"inputs"`
	Parameters struct {
		NumInferenceSteps int `json:"num_inference_steps"`
	} `json:"parameters"`
}

// GenerateMemeImage генерирует изображение по текстовому промпту.
func (c *Client) GenerateMemeImage(ctx context.Context, prompt string) ([]byte, error) {
	log := c.logger.With(zap.String("model_url", c.modelURL))

	reqPayload := generateRequest{Inputs: prompt}
	reqPayload.Parameters.NumInferenceSteps = 5

	reqBodyBytes, err := json.Marshal(reqPayload)
	if err != nil {
		log.Error("Failed to marshal image generation payload", zap.Error(err))
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.modelURL, bytes.NewReader(reqBodyBytes))
	if err != nil {
		log.Error("Failed to create image generation request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "image/*")

	log.Debug("Sending request to Hugging Face API")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("Failed to execute image generation request", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrImageGenerationFailed, err)
	}
	defer resp.Body.Close()

	bodyBytes, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		// Тело ошибки обычно JSON с причиной (например, загрузка модели)
		log.Error("Hugging Face API returned non-OK status",
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("response_body", bodyBytes),
		)
		return nil, fmt.Errorf("%w: API returned status %d", ErrImageGenerationFailed, resp.StatusCode)
	}
	if readErr != nil {
		log.Error("Failed to read image response body", zap.Error(readErr))
		return nil, fmt.Errorf("failed to read response body: %w", readErr)
	}
	if len(bodyBytes) == 0 {
		log.Error("Hugging Face API returned empty image data")
		return nil, fmt.Errorf("%w: API returned empty data", ErrImageGenerationFailed)
	}

	log.Info("Image data received", zap.Int("size_bytes", len(bodyBytes)))
	return bodyBytes, nil
}
