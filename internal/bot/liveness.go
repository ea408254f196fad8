package bot

import "sync/atomic"

// Liveness - флаг состояния подключения бота. Выставляется в true после
// успешной инициализации шлюза контракта, в false - при ошибках транспорта.
// Флаг только информационный: исполнители не сверяются с ним перед
// удаленными вызовами, его читает лишь команда /status.
type Liveness struct {
	online atomic.Bool
}

// NewLiveness создает трекер в состоянии offline.
func NewLiveness() *Liveness {
	return &Liveness{}
}

// SetOnline выставляет состояние подключения.
func (l *Liveness) SetOnline(online bool) {
	l.online.Store(online)
}

// Online возвращает текущее состояние.
func (l *Liveness) Online() bool {
	return l.online.Load()
}
