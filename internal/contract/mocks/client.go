package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Mock contract.Client
type ContractClient struct {
	mock.Mock
}

func (m *ContractClient) GetBalance(ctx context.Context, account string) (string, error) {
	args := m.Called(ctx, account)
	return args.String(0), args.Error(1)
}

func (m *ContractClient) GetTotalSupply(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *ContractClient) GetTopTipper(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *ContractClient) Mint(ctx context.Context, depositYocto string) error {
	args := m.Called(ctx, depositYocto)
	return args.Error(0)
}

func (m *ContractClient) Tip(ctx context.Context, receiver, amount string) error {
	args := m.Called(ctx, receiver, amount)
	return args.Error(0)
}

func (m *ContractClient) Withdraw(ctx context.Context, amount string) error {
	args := m.Called(ctx, amount)
	return args.Error(0)
}

func (m *ContractClient) Burn(ctx context.Context, amount string) error {
	args := m.Called(ctx, amount)
	return args.Error(0)
}

func (m *ContractClient) Stake(ctx context.Context, amount string) error {
	args := m.Called(ctx, amount)
	return args.Error(0)
}

func (m *ContractClient) Unstake(ctx context.Context, amount string) error {
	args := m.Called(ctx, amount)
	return args.Error(0)
}

func (m *ContractClient) ClaimRewards(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *ContractClient) RegisterReferral(ctx context.Context, referrer string) error {
	args := m.Called(ctx, referrer)
	return args.Error(0)
}

func (m *ContractClient) Propose(ctx context.Context, description string) error {
	args := m.Called(ctx, description)
	return args.Error(0)
}

func (m *ContractClient) Vote(ctx context.Context, proposalID int, support bool) error {
	args := m.Called(ctx, proposalID, support)
	return args.Error(0)
}

func (m *ContractClient) FinalizeProposal(ctx context.Context, proposalID int) error {
	args := m.Called(ctx, proposalID)
	return args.Error(0)
}

func (m *ContractClient) NftMint(ctx context.Context, metadata string) error {
	args := m.Called(ctx, metadata)
	return args.Error(0)
}
