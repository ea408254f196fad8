package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OffTopicReply возвращается без обращения к модели, если вопрос не про блокчейн.
const OffTopicReply = "I only answer about blockchain. Please ask a blockchain-related question."

const answerSystemPrompt = "You are a knowledgeable blockchain assistant. Provide a thorough, easy-to-understand answer to the user's question."

const summarySystemPrompt = "You are an assistant that summarizes NEAR on-chain activity. " +
	"Given raw transaction records, produce a short, user-friendly summary of what the account has been doing."

// blockchainTopics - фильтр тем: модель вызывается только для вопросов о блокчейне.
var blockchainTopics = regexp.MustCompile(`(?i)blockchain|crypto|smart contract|defi|nft|token|consensus|distributed ledger`)

// Client - клиент языковой модели для свободных вопросов, подсказок к мемам
// и сводок активности.
type Client struct {
	openaiClient *openai.Client
	modelName    string
	logger       *zap.Logger
}

// NewClient создает клиент для OpenAI-совместимого API.
// baseURL может быть пустым (используется api.openai.com).
func NewClient(apiKey, baseURL, model string, logger *zap.Logger) *Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &Client{
		openaiClient: openai.NewClientWithConfig(config),
		modelName:    model,
		logger:       logger.Named("AIClient"),
	}
}

// GetBlockchainAnswer отвечает на свободный вопрос пользователя.
// Вопрос не о блокчейне отклоняется фиксированной репликой без вызова модели.
func (c *Client) GetBlockchainAnswer(ctx context.Context, query string) (string, error) {
	if !blockchainTopics.MatchString(query) {
		return OffTopicReply, nil
	}

	resp, err := c.openaiClient.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: answerSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
		MaxTokens:   200,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("received empty response from API")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// MemeSuggestions возвращает варианты расширения промпта для мема.
func (c *Client) MemeSuggestions(_ context.Context, prompt string) ([]string, error) {
	return []string{
		prompt + " in neon cyberpunk style",
		prompt + " on the moon",
		prompt + " watercolor painting",
	}, nil
}

// SummarizeActivity превращает сырые транзакции NearBlocks в краткую сводку.
func (c *Client) SummarizeActivity(ctx context.Context, txns []json.RawMessage) (string, error) {
	if len(txns) == 0 {
		return "No recent transactions found for this account.", nil
	}

	payload, err := json.Marshal(txns)
	if err != nil {
		return "", fmt.Errorf("failed to marshal transactions: %w", err)
	}

	resp, err := c.openaiClient.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: summarySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: string(payload)},
		},
		MaxTokens:   300,
		Temperature: 0.5,
	})
	if err != nil {
		return "", fmt.Errorf("openai activity summary failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("received empty response from API")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
