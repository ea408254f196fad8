package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"memecoin-agent/internal/bot"
)

// Transport - мок исходящего чат-транспорта.
type Transport struct {
	mock.Mock
}

func (m *Transport) SendMessage(chatID int64, text string) error {
	args := m.Called(chatID, text)
	return args.Error(0)
}

func (m *Transport) SendMarkdown(chatID int64, text string) error {
	args := m.Called(chatID, text)
	return args.Error(0)
}

func (m *Transport) SendPhoto(chatID int64, image []byte, caption string) error {
	args := m.Called(chatID, image, caption)
	return args.Error(0)
}

func (m *Transport) SendButtons(chatID int64, text string, buttons []bot.Button) error {
	args := m.Called(chatID, text, buttons)
	return args.Error(0)
}

func (m *Transport) SendTyping(chatID int64) error {
	args := m.Called(chatID)
	return args.Error(0)
}

func (m *Transport) AnswerCallback(callbackID, text string) error {
	args := m.Called(callbackID, text)
	return args.Error(0)
}

// AIService - мок языковой модели.
type AIService struct {
	mock.Mock
}

func (m *AIService) GetBlockchainAnswer(ctx context.Context, query string) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}

func (m *AIService) MemeSuggestions(ctx context.Context, prompt string) ([]string, error) {
	args := m.Called(ctx, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *AIService) SummarizeActivity(ctx context.Context, txns []json.RawMessage) (string, error) {
	args := m.Called(ctx, txns)
	return args.String(0), args.Error(1)
}

// ImageService - мок генератора изображений.
type ImageService struct {
	mock.Mock
}

func (m *ImageService) GenerateMemeImage(ctx context.Context, prompt string) ([]byte, error) {
	args := m.Called(ctx, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// ActivityService - мок клиента истории транзакций.
type ActivityService struct {
	mock.Mock
}

func (m *ActivityService) AccountTransactions(ctx context.Context, account string) ([]json.RawMessage, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]json.RawMessage), args.Error(1)
}
