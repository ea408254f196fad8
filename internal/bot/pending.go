package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"memecoin-agent/internal/store"
)

// PendingMint - промпт мема, ожидающий решения пользователя о минте NFT.
// Неизменяем после создания; новый /meme молча вытесняет неразрешенный старый.
type PendingMint struct {
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
}

// PendingStore хранит не более одной ожидающей записи на разговор.
type PendingStore struct {
	store store.Store
}

// NewPendingStore создает хранилище ожидающих подтверждений.
func NewPendingStore(s store.Store) *PendingStore {
	return &PendingStore{store: s}
}

func (p *PendingStore) key(conversationID string) string {
	return "pending_nft:" + conversationID
}

// Propose записывает ожидающий промпт, перезаписывая существующий
// (последняя запись выигрывает).
func (p *PendingStore) Propose(ctx context.Context, conversationID, prompt string) error {
	raw, err := json.Marshal(PendingMint{
		Prompt:    prompt,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal pending mint: %w", err)
	}
	return p.store.Set(ctx, p.key(conversationID), raw)
}

// Get возвращает ожидающую запись разговора, если она есть.
func (p *PendingStore) Get(ctx context.Context, conversationID string) (PendingMint, bool, error) {
	raw, err := p.store.Get(ctx, p.key(conversationID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PendingMint{}, false, nil
		}
		return PendingMint{}, false, err
	}
	var pending PendingMint
	if err := json.Unmarshal(raw, &pending); err != nil {
		return PendingMint{}, false, fmt.Errorf("corrupted pending mint for %s: %w", conversationID, err)
	}
	return pending, true, nil
}

// Clear удаляет запись разговора. Отсутствие записи не является ошибкой.
func (p *PendingStore) Clear(ctx context.Context, conversationID string) error {
	return p.store.Delete(ctx, p.key(conversationID))
}
