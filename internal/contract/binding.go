package contract

import "sync"

// ViewMethods - view-методы контракта memecoin, доступные боту.
var ViewMethods = []string{"get_balance", "get_total_supply", "get_top_tipper"}

// ChangeMethods - изменяющие методы контракта memecoin, доступные боту.
var ChangeMethods = []string{
	"mint", "tip", "withdraw", "burn", "stake", "unstake",
	"claim_rewards", "register_referral", "propose", "vote",
	"finalize_proposal", "nft_mint",
}

// Binding описывает активную привязку к контракту: от чьего имени идут вызовы
// и к какому контракту. Значение неизменяемо; смена контракта создает новую
// привязку целиком.
type Binding struct {
	AccountID     string
	ContractID    string
	ViewMethods   []string
	ChangeMethods []string
}

// NewBinding создает привязку со стандартными списками методов.
func NewBinding(accountID, contractID string) Binding {
	return Binding{
		AccountID:     accountID,
		ContractID:    contractID,
		ViewMethods:   ViewMethods,
		ChangeMethods: ChangeMethods,
	}
}

// Factory создает типизированный клиент для заданного contractID.
type Factory func(contractID string) Client

// Holder хранит активную привязку и соответствующий ей клиент.
// Один писатель (/setContract), много читателей (исполнители команд).
// Вызов, захвативший клиента до смены привязки, завершается против
// старого контракта - это задокументированное поведение.
type Holder struct {
	mu      sync.RWMutex
	factory Factory
	binding Binding
	client  Client
}

// NewHolder создает Holder с начальной привязкой.
func NewHolder(factory Factory, accountID, contractID string) *Holder {
	return &Holder{
		factory: factory,
		binding: NewBinding(accountID, contractID),
		client:  factory(contractID),
	}
}

// Current возвращает активный клиент и привязку.
func (h *Holder) Current() (Client, Binding) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.client, h.binding
}

// Rebind целиком заменяет привязку на новый контракт от того же аккаунта.
func (h *Holder) Rebind(contractID string) Binding {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.binding = NewBinding(h.binding.AccountID, contractID)
	h.client = h.factory(contractID)
	return h.binding
}
