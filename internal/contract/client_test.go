package contract

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockCaller - мок низкоуровневого RPC-доступа.
type mockCaller struct {
	mock.Mock
}

func (m *mockCaller) View(ctx context.Context, contractID, method string, args any) ([]byte, error) {
	callArgs := m.Called(ctx, contractID, method, args)
	if callArgs.Get(0) == nil {
		return nil, callArgs.Error(1)
	}
	return callArgs.Get(0).([]byte), callArgs.Error(1)
}

func (m *mockCaller) Call(ctx context.Context, contractID, method string, args any, gas uint64, deposit *big.Int) error {
	callArgs := m.Called(ctx, contractID, method, args, gas, deposit)
	return callArgs.Error(0)
}

func newTestContract(rpc Caller) Client {
	return NewClient(rpc, "meme.testnet", zap.NewNop())
}

// Баланс может прийти как JSON-строка или как голое число.
func TestGetBalanceNormalizesResult(t *testing.T) {
	ctx := context.Background()

	rpc := new(mockCaller)
	rpc.On("View", mock.Anything, "meme.testnet", "get_balance",
		map[string]any{"account": "alice.testnet"}).Return([]byte(`"12345"`), nil).Once()
	client := newTestContract(rpc)

	balance, err := client.GetBalance(ctx, "alice.testnet")
	require.NoError(t, err)
	assert.Equal(t, "12345", balance)

	rpc.On("View", mock.Anything, "meme.testnet", "get_balance",
		map[string]any{"account": "alice.testnet"}).Return([]byte(`67890`), nil).Once()

	balance, err = client.GetBalance(ctx, "alice.testnet")
	require.NoError(t, err)
	assert.Equal(t, "67890", balance)
}

// null от контракта означает отсутствие чаевых.
func TestGetTopTipperNull(t *testing.T) {
	rpc := new(mockCaller)
	rpc.On("View", mock.Anything, "meme.testnet", "get_top_tipper",
		map[string]any{}).Return([]byte(`null`), nil)
	client := newTestContract(rpc)

	tipper, err := client.GetTopTipper(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", tipper)
}

// Каждый изменяющий вызов идет с фиксированным газом; депозиты прикрепляются
// только там, где их требует контракт.
func TestChangeCallDeposits(t *testing.T) {
	ctx := context.Background()

	rpc := new(mockCaller)
	client := newTestContract(rpc)

	rpc.On("Call", mock.Anything, "meme.testnet", "mint",
		map[string]any{}, CallGas, big.NewInt(10_000_000_000_000_000)).Return(nil)
	require.NoError(t, client.Mint(ctx, DefaultMintDeposit))

	rpc.On("Call", mock.Anything, "meme.testnet", "tip",
		map[string]any{"receiver": "bob.testnet", "amount": "100"}, CallGas, (*big.Int)(nil)).Return(nil)
	require.NoError(t, client.Tip(ctx, "bob.testnet", "100"))

	rpc.On("Call", mock.Anything, "meme.testnet", "stake",
		map[string]any{"amount": "50"}, CallGas, big.NewInt(1)).Return(nil)
	require.NoError(t, client.Stake(ctx, "50"))

	rpc.On("Call", mock.Anything, "meme.testnet", "nft_mint",
		map[string]any{"metadata": "shiny"}, CallGas, big.NewInt(2)).Return(nil)
	require.NoError(t, client.NftMint(ctx, "shiny"))

	rpc.AssertExpectations(t)
}

// Некорректная сумма отклоняется до похода в сеть.
func TestMintRejectsInvalidDeposit(t *testing.T) {
	rpc := new(mockCaller)
	client := newTestContract(rpc)

	err := client.Mint(context.Background(), "not-a-number")
	require.Error(t, err)
	rpc.AssertNotCalled(t, "Call", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
