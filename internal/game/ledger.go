package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"go.uber.org/zap"

	"memecoin-agent/internal/store"
)

const (
	// FreeTriesOnStart - бесплатные попытки при первом /startGame.
	FreeTriesOnStart = 3
	// PurchasedPerBuy - сколько попыток дает один успешный /buyTries,
	// независимо от суммы чаевых.
	PurchasedPerBuy = 3
	// Бросок выигрывает строго при значении > winThreshold.
	winThreshold = 80
)

// TipPayer - платеж чаевых контракту, которым оплачиваются попытки.
type TipPayer interface {
	Tip(ctx context.Context, receiver, amount string) error
}

// Record - счетчики попыток пользователя. Оба счетчика всегда >= 0.
type Record struct {
	FreeTries      int `json:"free_tries"`
	PurchasedTries int `json:"purchased_tries"`
}

// Ledger ведет счетчики попыток мини-игры поверх key-value хранилища.
// Мутации одного пользователя сериализуются per-user мьютексом, чтобы
// повторный /buyTries во время медленного платежа не задвоил начисление.
type Ledger struct {
	store  store.Store
	logger *zap.Logger

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	// roll возвращает число в [1,100]; подменяется в тестах
	roll func() int
}

// NewLedger создает журнал попыток мини-игры.
func NewLedger(s store.Store, logger *zap.Logger) *Ledger {
	return &Ledger{
		store:  s,
		logger: logger.Named("GameLedger"),
		locks:  make(map[string]*sync.Mutex),
		roll: func() int {
			return rand.Intn(100) + 1
		},
	}
}

// userLock возвращает мьютекс пользователя. Записи из карты не удаляются
// даже после Stop: мьютекс обязан сохранять идентичность, иначе конкурентный
// вызов получил бы свежий незанятый экземпляр и сериализация сломалась бы.
func (l *Ledger) userLock(userID string) *sync.Mutex {
	l.locksMu.Lock()
	defer l.locksMu.Unlock()
	mu, ok := l.locks[userID]
	if !ok {
		mu = &sync.Mutex{}
		l.locks[userID] = mu
	}
	return mu
}

func (l *Ledger) key(userID string) string {
	return "game:" + userID
}

// load возвращает запись пользователя; отсутствие записи - нулевые счетчики.
func (l *Ledger) load(ctx context.Context, userID string) (Record, bool, error) {
	raw, err := l.store.Get(ctx, l.key(userID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Record{}, false, nil
		}
		return Record{}, false, err
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}, false, fmt.Errorf("corrupted game record for %s: %w", userID, err)
	}
	return rec, true, nil
}

func (l *Ledger) save(ctx context.Context, userID string, rec Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal game record: %w", err)
	}
	return l.store.Set(ctx, l.key(userID), raw)
}

// Start выдает стартовые бесплатные попытки. Повторный вызов ничего не меняет
// и просто повторяет текущее состояние.
func (l *Ledger) Start(ctx context.Context, userID string) (string, error) {
	mu := l.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	rec, exists, err := l.load(ctx, userID)
	if err != nil {
		return "", err
	}
	if !exists {
		rec = Record{FreeTries: FreeTriesOnStart, PurchasedTries: 0}
		if err := l.save(ctx, userID, rec); err != nil {
			return "", err
		}
		l.logger.Info("Game session started", zap.String("user_id", userID))
	}

	return fmt.Sprintf("Welcome, %s! You have %d free tries. Use /play to roll!", userID, rec.FreeTries), nil
}

// Play тратит одну попытку (сначала бесплатные) и бросает кубик.
// Отсутствие попыток - не ошибка, а подсказка купить еще.
func (l *Ledger) Play(ctx context.Context, userID string) (string, error) {
	mu := l.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	rec, _, err := l.load(ctx, userID)
	if err != nil {
		return "", err
	}

	if rec.FreeTries+rec.PurchasedTries <= 0 {
		return "No tries left. Use /buyTries to purchase more tries.", nil
	}

	if rec.FreeTries > 0 {
		rec.FreeTries--
	} else {
		rec.PurchasedTries--
	}
	if err := l.save(ctx, userID, rec); err != nil {
		return "", err
	}

	roll := l.roll()
	if roll > winThreshold {
		return fmt.Sprintf("You rolled %d. You WIN! (No token payout in this version)", roll), nil
	}
	return fmt.Sprintf("You rolled %d. Sorry, you lose.", roll), nil
}

// BuyTries отправляет чаевые контракту и при успехе начисляет ровно
// PurchasedPerBuy попыток. При неуспехе платежа ничего не начисляется.
func (l *Ledger) BuyTries(ctx context.Context, userID, amountYocto string, payer TipPayer, receiver string) (string, error) {
	mu := l.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	if err := payer.Tip(ctx, receiver, amountYocto); err != nil {
		l.logger.Error("Tip payment for tries failed",
			zap.String("user_id", userID),
			zap.String("amount", amountYocto),
			zap.Error(err),
		)
		return "", fmt.Errorf("failed to buy tries: %w", err)
	}

	rec, _, err := l.load(ctx, userID)
	if err != nil {
		return "", err
	}
	rec.PurchasedTries += PurchasedPerBuy
	if err := l.save(ctx, userID, rec); err != nil {
		return "", err
	}

	l.logger.Info("Tries purchased",
		zap.String("user_id", userID),
		zap.String("amount", amountYocto),
		zap.Int("purchased_tries", rec.PurchasedTries),
	)
	return fmt.Sprintf("You successfully tipped %s tokens to %s and purchased 3 tries! You now have %d purchased tries.",
		amountYocto, receiver, rec.PurchasedTries), nil
}

// Stop полностью удаляет запись пользователя.
func (l *Ledger) Stop(ctx context.Context, userID string) (string, error) {
	mu := l.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	if err := l.store.Delete(ctx, l.key(userID)); err != nil {
		return "", err
	}
	return "Your game session has been stopped. All tries cleared.", nil
}

// Snapshot возвращает текущие счетчики (для тестов и /status-диагностики).
func (l *Ledger) Snapshot(ctx context.Context, userID string) (Record, error) {
	rec, _, err := l.load(ctx, userID)
	return rec, err
}

// SetRollFunc подменяет источник случайности (только для тестов).
func (l *Ledger) SetRollFunc(roll func() int) {
	l.roll = roll
}
