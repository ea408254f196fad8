package contract

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"go.uber.org/zap"
)

// CallGas - фиксированный газовый бюджет каждого изменяющего вызова (300 TGas).
const CallGas uint64 = 300_000_000_000_000

// DefaultMintDeposit - депозит по умолчанию для /mint (0.01 NEAR в yocto).
const DefaultMintDeposit = "10000000000000000"

// Депозиты отдельных методов. Контракт требует deposit > 1 для nft_mint,
// поэтому прикрепляем минимум 2 yoctoNEAR.
const (
	stakeDeposit   = "1"
	proposeDeposit = "1"
	nftMintDeposit = "2"
)

// Caller - низкоуровневый RPC-доступ к контракту. Реализуется *near.Client.
type Caller interface {
	View(ctx context.Context, contractID, method string, args any) ([]byte, error)
	Call(ctx context.Context, contractID, method string, args any, gas uint64, deposit *big.Int) error
}

// Client - закрытый типизированный шлюз к контракту memecoin: по одному
// методу на каждый удаленный вызов, неподдерживаемый метод - ошибка компиляции.
type Client interface {
	GetBalance(ctx context.Context, account string) (string, error)
	GetTotalSupply(ctx context.Context) (string, error)
	GetTopTipper(ctx context.Context) (string, error)

	Mint(ctx context.Context, depositYocto string) error
	Tip(ctx context.Context, receiver, amount string) error
	Withdraw(ctx context.Context, amount string) error
	Burn(ctx context.Context, amount string) error
	Stake(ctx context.Context, amount string) error
	Unstake(ctx context.Context, amount string) error
	ClaimRewards(ctx context.Context) error
	RegisterReferral(ctx context.Context, referrer string) error
	Propose(ctx context.Context, description string) error
	Vote(ctx context.Context, proposalID int, support bool) error
	FinalizeProposal(ctx context.Context, proposalID int) error
	NftMint(ctx context.Context, metadata string) error
}

// Compile-time check to ensure tokenContract implements Client
var _ Client = (*tokenContract)(nil)

type tokenContract struct {
	rpc        Caller
	contractID string
	logger     *zap.Logger
}

// NewClient создает типизированный клиент контракта поверх RPC-доступа.
func NewClient(rpc Caller, contractID string, logger *zap.Logger) Client {
	return &tokenContract{
		rpc:        rpc,
		contractID: contractID,
		logger:     logger.Named("Contract").With(zap.String("contract_id", contractID)),
	}
}

// viewString выполняет view-вызов и приводит JSON-результат к строке
// (контракт отдает балансы как число или строку U128).
func (c *tokenContract) viewString(ctx context.Context, method string, args any) (string, error) {
	raw, err := c.rpc.View(ctx, c.contractID, method, args)
	if err != nil {
		return "", err
	}
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("failed to unmarshal %s result: %w", method, err)
		}
		return s, nil
	}
	return trimmed, nil
}

func (c *tokenContract) GetBalance(ctx context.Context, account string) (string, error) {
	return c.viewString(ctx, "get_balance", map[string]any{"account": account})
}

func (c *tokenContract) GetTotalSupply(ctx context.Context) (string, error) {
	return c.viewString(ctx, "get_total_supply", map[string]any{})
}

// GetTopTipper возвращает пустую строку, если чаевых еще не было (null).
func (c *tokenContract) GetTopTipper(ctx context.Context) (string, error) {
	raw, err := c.rpc.View(ctx, c.contractID, "get_top_tipper", map[string]any{})
	if err != nil {
		return "", err
	}
	var tipper *string
	if err := json.Unmarshal(raw, &tipper); err != nil {
		return "", fmt.Errorf("failed to unmarshal get_top_tipper result: %w", err)
	}
	if tipper == nil {
		return "", nil
	}
	return *tipper, nil
}

func (c *tokenContract) Mint(ctx context.Context, depositYocto string) error {
	deposit, err := parseYocto(depositYocto)
	if err != nil {
		return err
	}
	return c.rpc.Call(ctx, c.contractID, "mint", map[string]any{}, CallGas, deposit)
}

func (c *tokenContract) Tip(ctx context.Context, receiver, amount string) error {
	args := map[string]any{"receiver": receiver, "amount": amount}
	return c.rpc.Call(ctx, c.contractID, "tip", args, CallGas, nil)
}

func (c *tokenContract) Withdraw(ctx context.Context, amount string) error {
	return c.rpc.Call(ctx, c.contractID, "withdraw", map[string]any{"amount": amount}, CallGas, nil)
}

func (c *tokenContract) Burn(ctx context.Context, amount string) error {
	return c.rpc.Call(ctx, c.contractID, "burn", map[string]any{"amount": amount}, CallGas, nil)
}

func (c *tokenContract) Stake(ctx context.Context, amount string) error {
	deposit, err := parseYocto(stakeDeposit)
	if err != nil {
		return err
	}
	return c.rpc.Call(ctx, c.contractID, "stake", map[string]any{"amount": amount}, CallGas, deposit)
}

func (c *tokenContract) Unstake(ctx context.Context, amount string) error {
	return c.rpc.Call(ctx, c.contractID, "unstake", map[string]any{"amount": amount}, CallGas, nil)
}

func (c *tokenContract) ClaimRewards(ctx context.Context) error {
	return c.rpc.Call(ctx, c.contractID, "claim_rewards", map[string]any{}, CallGas, nil)
}

func (c *tokenContract) RegisterReferral(ctx context.Context, referrer string) error {
	return c.rpc.Call(ctx, c.contractID, "register_referral", map[string]any{"referrer": referrer}, CallGas, nil)
}

func (c *tokenContract) Propose(ctx context.Context, description string) error {
	deposit, err := parseYocto(proposeDeposit)
	if err != nil {
		return err
	}
	return c.rpc.Call(ctx, c.contractID, "propose", map[string]any{"description": description}, CallGas, deposit)
}

func (c *tokenContract) Vote(ctx context.Context, proposalID int, support bool) error {
	args := map[string]any{"proposal_id": proposalID, "support": support}
	return c.rpc.Call(ctx, c.contractID, "vote", args, CallGas, nil)
}

func (c *tokenContract) FinalizeProposal(ctx context.Context, proposalID int) error {
	return c.rpc.Call(ctx, c.contractID, "finalize_proposal", map[string]any{"proposal_id": proposalID}, CallGas, nil)
}

func (c *tokenContract) NftMint(ctx context.Context, metadata string) error {
	deposit, err := parseYocto(nftMintDeposit)
	if err != nil {
		return err
	}
	return c.rpc.Call(ctx, c.contractID, "nft_mint", map[string]any{"metadata": metadata}, CallGas, deposit)
}

// parseYocto разбирает десятичную строку yoctoNEAR в big.Int.
func parseYocto(amount string) (*big.Int, error) {
	value, ok := new(big.Int).SetString(amount, 10)
	if !ok || value.Sign() < 0 {
		return nil, fmt.Errorf("invalid yocto amount: %q", amount)
	}
	return value, nil
}
