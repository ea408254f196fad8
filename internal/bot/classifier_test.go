package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestClassifyCommands проверяет разбор каждой формы команды.
func TestClassifyCommands(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Command
	}{
		{
			name:     "setContract",
			text:     "/setContract meme.testnet",
			expected: Command{Kind: KindSetContract, ContractID: "meme.testnet"},
		},
		{
			name:     "status",
			text:     "/status",
			expected: Command{Kind: KindStatus},
		},
		{
			name:     "help",
			text:     "/help",
			expected: Command{Kind: KindHelp},
		},
		{
			name:     "mint без депозита",
			text:     "/mint",
			expected: Command{Kind: KindMint, Deposit: ""},
		},
		{
			name:     "mint с депозитом",
			text:     "/mint 5000000000000000",
			expected: Command{Kind: KindMint, Deposit: "5000000000000000"},
		},
		{
			name:     "balance",
			text:     "/balance alice.testnet",
			expected: Command{Kind: KindBalance, Account: "alice.testnet"},
		},
		{
			name:     "totalSupply",
			text:     "/totalSupply",
			expected: Command{Kind: KindTotalSupply},
		},
		{
			name:     "topTipper",
			text:     "/topTipper",
			expected: Command{Kind: KindTopTipper},
		},
		{
			name:     "tip",
			text:     "/tip bob.testnet 100",
			expected: Command{Kind: KindTip, Receiver: "bob.testnet", Amount: "100"},
		},
		{
			name:     "withdraw",
			text:     "/withdraw 50",
			expected: Command{Kind: KindWithdraw, Amount: "50"},
		},
		{
			name:     "burn",
			text:     "/burn 25",
			expected: Command{Kind: KindBurn, Amount: "25"},
		},
		{
			name:     "stake",
			text:     "/stake 10",
			expected: Command{Kind: KindStake, Amount: "10"},
		},
		{
			name:     "unstake",
			text:     "/unstake 10",
			expected: Command{Kind: KindUnstake, Amount: "10"},
		},
		{
			name:     "claim_rewards",
			text:     "/claim_rewards",
			expected: Command{Kind: KindClaimRewards},
		},
		{
			name:     "register_referral",
			text:     "/register_referral carol.testnet",
			expected: Command{Kind: KindRegisterReferral, Referrer: "carol.testnet"},
		},
		{
			name:     "propose с пробелами в описании",
			text:     "/propose Fund the meme treasury",
			expected: Command{Kind: KindPropose, Description: "Fund the meme treasury"},
		},
		{
			name:     "vote за",
			text:     "/vote 7 true",
			expected: Command{Kind: KindVote, ProposalID: 7, Support: true},
		},
		{
			name:     "vote против",
			text:     "/vote 7 false",
			expected: Command{Kind: KindVote, ProposalID: 7, Support: false},
		},
		{
			name:     "vote TRUE без учета регистра",
			text:     "/vote 7 TRUE",
			expected: Command{Kind: KindVote, ProposalID: 7, Support: true},
		},
		{
			name:     "vote с мусорным токеном трактуется как против",
			text:     "/vote 7 maybe",
			expected: Command{Kind: KindVote, ProposalID: 7, Support: false},
		},
		{
			name:     "finalize_proposal",
			text:     "/finalize_proposal 3",
			expected: Command{Kind: KindFinalizeProposal, ProposalID: 3},
		},
		{
			name:     "nft_mint",
			text:     "/nft_mint my shiny metadata",
			expected: Command{Kind: KindNftMint, Metadata: "my shiny metadata"},
		},
		{
			name:     "meme",
			text:     "/meme doge to the moon",
			expected: Command{Kind: KindMeme, Prompt: "doge to the moon"},
		},
		{
			name:     "startGame",
			text:     "/startGame",
			expected: Command{Kind: KindStartGame},
		},
		{
			name:     "play",
			text:     "/play",
			expected: Command{Kind: KindPlay},
		},
		{
			name:     "buyTries",
			text:     "/buyTries 1000000",
			expected: Command{Kind: KindBuyTries, Amount: "1000000"},
		},
		{
			name:     "stopGame",
			text:     "/stopGame",
			expected: Command{Kind: KindStopGame},
		},
		{
			name:     "activity",
			text:     "/activity alice.testnet",
			expected: Command{Kind: KindActivity, Account: "alice.testnet"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.text))
		})
	}
}

// TestClassifyUsage: известная команда с плохими аргументами дает подсказку,
// а не свободный текст.
func TestClassifyUsage(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		usage string
	}{
		{"balance без аккаунта", "/balance", "Usage: /balance <account>"},
		{"tip без суммы", "/tip bob.testnet", "Usage: /tip <receiver> <amount>"},
		{"vote с нечисловым id", "/vote abc true", "Usage: /vote <proposal_id> <true|false>"},
		{"finalize_proposal с нечисловым id", "/finalize_proposal abc", "Usage: /finalize_proposal <proposal_id>"},
		{"meme без промпта", "/meme", "Usage: /meme <prompt>"},
		{"buyTries без суммы", "/buyTries", "Usage: /buyTries <yoctoAmount>"},
		{"setContract без id", "/setContract", "Usage: /setContract <contractId>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Classify(tt.text)
			assert.Equal(t, KindUsage, cmd.Kind)
			assert.Equal(t, tt.usage, cmd.Usage)
		})
	}
}

// TestClassifyFallbacks: тотальность классификатора - каждый текст
// отображается ровно в одну команду.
func TestClassifyFallbacks(t *testing.T) {
	// Неизвестная slash-команда
	assert.Equal(t, KindUnknown, Classify("/frobnicate 42").Kind)

	// Контекстный запрос последнего NFT, без учета регистра
	assert.Equal(t, KindLastNFT, Classify("show me MY LAST NFT please").Kind)

	// Свободный текст уходит в AI
	cmd := Classify("what is a smart contract?")
	assert.Equal(t, KindFreeText, cmd.Kind)
	assert.Equal(t, "what is a smart contract?", cmd.Text)

	// Пробелы по краям не влияют на разбор
	assert.Equal(t, KindStatus, Classify("  /status  ").Kind)
}
