package store

import (
	"context"
	"errors"
)

// ErrNotFound возвращается, когда значение по ключу отсутствует.
var ErrNotFound = errors.New("store: key not found")

// Store - минимальный key-value интерфейс для эфемерного состояния бота
// (ожидающие подтверждения минта, счетчики попыток мини-игры).
// Реализация в памяти используется по умолчанию; Redis-реализация позволяет
// пережить рестарт процесса без изменений в логике исполнителей.
type Store interface {
	// Get возвращает значение по ключу или ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set сохраняет значение по ключу, перезаписывая существующее.
	Set(ctx context.Context, key string, value []byte) error
	// Delete удаляет ключ. Отсутствие ключа не является ошибкой.
	Delete(ctx context.Context, key string) error
}
