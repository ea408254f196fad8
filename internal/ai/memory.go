package ai

import "sync"

// Memory хранит контекст разговора per-chat: последний сминченный NFT и
// хвост переписки. Только в памяти процесса.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
}

type memoryEntry struct {
	lastMintedNFT string
	conversation  []string
}

// Сколько последних сообщений храним на разговор.
const conversationTail = 20

// NewMemory создает пустое хранилище контекста.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]*memoryEntry),
	}
}

func (m *Memory) entry(conversationID string) *memoryEntry {
	e, ok := m.entries[conversationID]
	if !ok {
		e = &memoryEntry{}
		m.entries[conversationID] = e
	}
	return e
}

// RecordMint запоминает метаданные последнего успешного nft_mint.
func (m *Memory) RecordMint(conversationID, metadata string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entry(conversationID).lastMintedNFT = metadata
}

// LastMint возвращает метаданные последнего NFT разговора.
func (m *Memory) LastMint(conversationID string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[conversationID]
	if !ok || e.lastMintedNFT == "" {
		return "", false
	}
	return e.lastMintedNFT, true
}

// RecordMessage добавляет сообщение в хвост переписки разговора.
func (m *Memory) RecordMessage(conversationID, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := m.entry(conversationID)
	e.conversation = append(e.conversation, text)
	if len(e.conversation) > conversationTail {
		e.conversation = e.conversation[len(e.conversation)-conversationTail:]
	}
}
