package bot

// Kind перечисляет все распознаваемые формы команд. Классификация тотальна:
// любой входной текст отображается ровно в один Kind (включая KindFreeText).
type Kind int

const (
	// Административные команды
	KindSetContract Kind = iota
	KindStatus
	KindHelp

	// Команды, затрагивающие контракт
	KindMint
	KindBalance
	KindTotalSupply
	KindTopTipper
	KindTip
	KindWithdraw
	KindBurn
	KindStake
	KindUnstake
	KindClaimRewards
	KindRegisterReferral
	KindPropose
	KindVote
	KindFinalizeProposal
	KindNftMint

	// Генерация контента
	KindMeme

	// Мини-игра
	KindStartGame
	KindPlay
	KindBuyTries
	KindStopGame

	// Аналитика и контекст
	KindActivity
	KindLastNFT

	// Валидация и fallback
	KindUsage    // команда узнана, аргументы не подошли: ответить Usage-репликой
	KindUnknown  // неизвестная slash-команда
	KindFreeText // свободный текст: вопрос к AI
)

// String возвращает имя команды для логов и метрик.
func (k Kind) String() string {
	switch k {
	case KindSetContract:
		return "setContract"
	case KindStatus:
		return "status"
	case KindHelp:
		return "help"
	case KindMint:
		return "mint"
	case KindBalance:
		return "balance"
	case KindTotalSupply:
		return "totalSupply"
	case KindTopTipper:
		return "topTipper"
	case KindTip:
		return "tip"
	case KindWithdraw:
		return "withdraw"
	case KindBurn:
		return "burn"
	case KindStake:
		return "stake"
	case KindUnstake:
		return "unstake"
	case KindClaimRewards:
		return "claim_rewards"
	case KindRegisterReferral:
		return "register_referral"
	case KindPropose:
		return "propose"
	case KindVote:
		return "vote"
	case KindFinalizeProposal:
		return "finalize_proposal"
	case KindNftMint:
		return "nft_mint"
	case KindMeme:
		return "meme"
	case KindStartGame:
		return "startGame"
	case KindPlay:
		return "play"
	case KindBuyTries:
		return "buyTries"
	case KindStopGame:
		return "stopGame"
	case KindActivity:
		return "activity"
	case KindLastNFT:
		return "lastNFT"
	case KindUsage:
		return "usage"
	case KindUnknown:
		return "unknown"
	case KindFreeText:
		return "freeText"
	default:
		return "invalid"
	}
}

// Command - разобранная команда. Создается заново на каждое входящее
// сообщение и не мутируется после создания.
type Command struct {
	Kind Kind

	// Аргументы (заполняются в зависимости от Kind)
	Account     string // balance, activity
	Receiver    string // tip
	Amount      string // tip, withdraw, burn, stake, unstake, buyTries
	Deposit     string // mint (пусто = депозит по умолчанию)
	Referrer    string // register_referral
	Description string // propose
	ProposalID  int    // vote, finalize_proposal
	Support     bool   // vote
	Metadata    string // nft_mint
	Prompt      string // meme
	ContractID  string // setContract
	Text        string // freeText

	// Usage-реплика для KindUsage
	Usage string
}
