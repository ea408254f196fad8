package bot

// Button - одна кнопка inline-клавиатуры: подпись и полезная нагрузка
// callback-события.
type Button struct {
	Label   string
	Payload string
}

// Transport - исходящая сторона чат-транспорта. Диспетчер не знает о
// Telegram напрямую, что позволяет тестировать исполнителей без сети.
type Transport interface {
	// SendMessage отправляет обычный текст.
	SendMessage(chatID int64, text string) error
	// SendMarkdown отправляет текст с Markdown-разметкой.
	SendMarkdown(chatID int64, text string) error
	// SendPhoto отправляет изображение с подписью (Markdown).
	SendPhoto(chatID int64, image []byte, caption string) error
	// SendButtons отправляет текст с inline-клавиатурой в один ряд.
	SendButtons(chatID int64, text string, buttons []Button) error
	// SendTyping показывает индикатор набора текста (best effort).
	SendTyping(chatID int64) error
	// AnswerCallback подтверждает callback-событие коротким уведомлением.
	AnswerCallback(callbackID, text string) error
}
