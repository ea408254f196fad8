package bot

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Размер буфера очереди одного чата. Переполнение означает, что чат
// генерирует команды быстрее, чем бот успевает их выполнять.
const chatQueueSize = 32

const (
	pollTimeoutSeconds = 30
	pollRetryDelay     = 3 * time.Second
)

// Telegram реализует Transport поверх Bot API и владеет циклом long polling.
// Сообщения одного чата обрабатываются строго по порядку, разные чаты -
// параллельно.
type Telegram struct {
	api        *tgbotapi.BotAPI
	dispatcher *Dispatcher
	liveness   *Liveness
	logger     *zap.Logger
	queues     map[int64]chan func()

	// poll и retryDelay подменяются в тестах
	poll       func(cfg tgbotapi.UpdateConfig) ([]tgbotapi.Update, error)
	retryDelay time.Duration
}

// NewTelegram подключается к Bot API и возвращает транспорт.
func NewTelegram(token string, liveness *Liveness, logger *zap.Logger) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Telegram: %w", err)
	}
	logger.Info("Authorized on Telegram", zap.String("username", api.Self.UserName))
	return &Telegram{
		api:        api,
		liveness:   liveness,
		logger:     logger.Named("Telegram"),
		queues:     make(map[int64]chan func()),
		poll:       api.GetUpdates,
		retryDelay: pollRetryDelay,
	}, nil
}

// SetDispatcher привязывает диспетчер команд. Вызывается до Run.
func (t *Telegram) SetDispatcher(d *Dispatcher) {
	t.dispatcher = d
}

// Run крутит long polling до отмены контекста. Ошибка опроса переводит бота
// в offline до первого успешного ответа Bot API; ошибка обработки одного
// обновления не прерывает цикл. При выходе очереди чатов закрываются и
// воркеры дорабатывают уже принятые обновления.
func (t *Telegram) Run(ctx context.Context) error {
	defer t.closeQueues()

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = pollTimeoutSeconds

	t.logger.Info("Started polling for updates")

	for {
		if ctx.Err() != nil {
			t.logger.Info("Stopped polling for updates")
			return ctx.Err()
		}

		updates, err := t.poll(cfg)
		if err != nil {
			t.liveness.SetOnline(false)
			t.logger.Error("Polling failed", zap.Error(err))
			select {
			case <-ctx.Done():
				t.logger.Info("Stopped polling for updates")
				return ctx.Err()
			case <-time.After(t.retryDelay):
			}
			continue
		}
		t.liveness.SetOnline(true)

		for _, update := range updates {
			if update.UpdateID >= cfg.Offset {
				cfg.Offset = update.UpdateID + 1
			}
			t.routeUpdate(update)
		}
	}
}

// routeUpdate кладет обновление в очередь его чата, сохраняя порядок
// сообщений внутри одного разговора.
func (t *Telegram) routeUpdate(update tgbotapi.Update) {
	switch {
	case update.Message != nil && update.Message.Text != "":
		chatID := update.Message.Chat.ID
		text := update.Message.Text
		t.enqueue(chatID, func() {
			t.dispatcher.HandleMessage(chatID, text)
		})
	case update.CallbackQuery != nil:
		chatID := update.CallbackQuery.Message.Chat.ID
		callbackID := update.CallbackQuery.ID
		payload := update.CallbackQuery.Data
		t.enqueue(chatID, func() {
			t.dispatcher.HandleCallback(chatID, callbackID, payload)
		})
	}
}

// enqueue запускает воркер чата при первом обращении. Доступ к карте
// очередей идет только из горутины Run, поэтому блокировка не нужна.
func (t *Telegram) enqueue(chatID int64, task func()) {
	queue, ok := t.queues[chatID]
	if !ok {
		queue = make(chan func(), chatQueueSize)
		t.queues[chatID] = queue
		go func() {
			for fn := range queue {
				fn()
			}
		}()
	}
	select {
	case queue <- task:
	default:
		t.logger.Warn("Chat queue overflow, dropping update", zap.Int64("chat_id", chatID))
	}
}

// closeQueues отпускает воркеров чатов: закрытая очередь дорабатывается
// до конца и горутина завершается.
func (t *Telegram) closeQueues() {
	for _, queue := range t.queues {
		close(queue)
	}
}

// send отправляет сообщение и опускает флаг liveness при ошибке транспорта.
func (t *Telegram) send(c tgbotapi.Chattable) error {
	if _, err := t.api.Send(c); err != nil {
		t.liveness.SetOnline(false)
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}

func (t *Telegram) SendMessage(chatID int64, text string) error {
	return t.send(tgbotapi.NewMessage(chatID, text))
}

func (t *Telegram) SendMarkdown(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	return t.send(msg)
}

func (t *Telegram) SendPhoto(chatID int64, image []byte, caption string) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
		Name:  "meme.png",
		Bytes: image,
	})
	photo.Caption = caption
	photo.ParseMode = tgbotapi.ModeMarkdown
	return t.send(photo)
}

func (t *Telegram) SendButtons(chatID int64, text string, buttons []Button) error {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, b := range buttons {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Payload))
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(row)
	return t.send(msg)
}

func (t *Telegram) SendTyping(chatID int64) error {
	action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	if _, err := t.api.Request(action); err != nil {
		return fmt.Errorf("failed to send typing action: %w", err)
	}
	return nil
}

func (t *Telegram) AnswerCallback(callbackID, text string) error {
	callback := tgbotapi.NewCallback(callbackID, text)
	if _, err := t.api.Request(callback); err != nil {
		return fmt.Errorf("failed to answer callback: %w", err)
	}
	return nil
}
