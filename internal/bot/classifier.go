package bot

import (
	"regexp"
	"strconv"
	"strings"
)

// rule - одна строка таблицы классификации: анкерный шаблон и разбор
// аргументов в Command.
type rule struct {
	re    *regexp.Regexp
	parse func(m []string) Command
}

// rules - таблица классификации в порядке приоритета: административные
// команды, затем команды контракта, генерация контента, мини-игра, аналитика.
// Порядок фиксирован; первый совпавший шаблон выигрывает.
var rules = []rule{
	// Административные
	{regexp.MustCompile(`^/setContract (\S+)$`), func(m []string) Command {
		return Command{Kind: KindSetContract, ContractID: m[1]}
	}},
	{regexp.MustCompile(`^/status$`), func(m []string) Command {
		return Command{Kind: KindStatus}
	}},
	{regexp.MustCompile(`^/help$`), func(m []string) Command {
		return Command{Kind: KindHelp}
	}},

	// Контракт
	{regexp.MustCompile(`^/mint(?: (\S+))?$`), func(m []string) Command {
		return Command{Kind: KindMint, Deposit: m[1]}
	}},
	{regexp.MustCompile(`^/balance (\S+)$`), func(m []string) Command {
		return Command{Kind: KindBalance, Account: m[1]}
	}},
	{regexp.MustCompile(`^/totalSupply$`), func(m []string) Command {
		return Command{Kind: KindTotalSupply}
	}},
	{regexp.MustCompile(`^/topTipper$`), func(m []string) Command {
		return Command{Kind: KindTopTipper}
	}},
	{regexp.MustCompile(`^/tip (\S+) (\S+)$`), func(m []string) Command {
		return Command{Kind: KindTip, Receiver: m[1], Amount: m[2]}
	}},
	{regexp.MustCompile(`^/withdraw (\S+)$`), func(m []string) Command {
		return Command{Kind: KindWithdraw, Amount: m[1]}
	}},
	{regexp.MustCompile(`^/burn (\S+)$`), func(m []string) Command {
		return Command{Kind: KindBurn, Amount: m[1]}
	}},
	{regexp.MustCompile(`^/stake (\S+)$`), func(m []string) Command {
		return Command{Kind: KindStake, Amount: m[1]}
	}},
	{regexp.MustCompile(`^/unstake (\S+)$`), func(m []string) Command {
		return Command{Kind: KindUnstake, Amount: m[1]}
	}},
	{regexp.MustCompile(`^/claim_rewards$`), func(m []string) Command {
		return Command{Kind: KindClaimRewards}
	}},
	{regexp.MustCompile(`^/register_referral (\S+)$`), func(m []string) Command {
		return Command{Kind: KindRegisterReferral, Referrer: m[1]}
	}},
	{regexp.MustCompile(`^/propose (.+)$`), func(m []string) Command {
		return Command{Kind: KindPropose, Description: m[1]}
	}},
	{regexp.MustCompile(`^/vote (\S+) (\S+)$`), func(m []string) Command {
		id, err := strconv.Atoi(m[1])
		if err != nil {
			return Command{Kind: KindUsage, Usage: usageByCommand["vote"]}
		}
		// Любой токен, кроме "true" (без учета регистра), трактуется как false.
		return Command{Kind: KindVote, ProposalID: id, Support: strings.EqualFold(m[2], "true")}
	}},
	{regexp.MustCompile(`^/finalize_proposal (\S+)$`), func(m []string) Command {
		id, err := strconv.Atoi(m[1])
		if err != nil {
			return Command{Kind: KindUsage, Usage: usageByCommand["finalize_proposal"]}
		}
		return Command{Kind: KindFinalizeProposal, ProposalID: id}
	}},
	{regexp.MustCompile(`^/nft_mint (.+)$`), func(m []string) Command {
		return Command{Kind: KindNftMint, Metadata: m[1]}
	}},

	// Генерация контента
	{regexp.MustCompile(`^/meme (.+)$`), func(m []string) Command {
		return Command{Kind: KindMeme, Prompt: m[1]}
	}},

	// Мини-игра
	{regexp.MustCompile(`^/startGame$`), func(m []string) Command {
		return Command{Kind: KindStartGame}
	}},
	{regexp.MustCompile(`^/play$`), func(m []string) Command {
		return Command{Kind: KindPlay}
	}},
	{regexp.MustCompile(`^/buyTries (\S+)$`), func(m []string) Command {
		return Command{Kind: KindBuyTries, Amount: m[1]}
	}},
	{regexp.MustCompile(`^/stopGame$`), func(m []string) Command {
		return Command{Kind: KindStopGame}
	}},

	// Аналитика
	{regexp.MustCompile(`^/activity (\S+)$`), func(m []string) Command {
		return Command{Kind: KindActivity, Account: m[1]}
	}},
}

// usageByCommand - подсказки для узнанных команд с недостающими или
// некорректными аргументами.
var usageByCommand = map[string]string{
	"setContract":       "Usage: /setContract <contractId>",
	"balance":           "Usage: /balance <account>",
	"tip":               "Usage: /tip <receiver> <amount>",
	"withdraw":          "Usage: /withdraw <amount>",
	"burn":              "Usage: /burn <amount>",
	"stake":             "Usage: /stake <amount>",
	"unstake":           "Usage: /unstake <amount>",
	"register_referral": "Usage: /register_referral <referrer_account>",
	"propose":           "Usage: /propose <proposal description>",
	"vote":              "Usage: /vote <proposal_id> <true|false>",
	"finalize_proposal": "Usage: /finalize_proposal <proposal_id>",
	"nft_mint":          "Usage: /nft_mint <metadata>",
	"meme":              "Usage: /meme <prompt>",
	"buyTries":          "Usage: /buyTries <yoctoAmount>",
	"activity":          "Usage: /activity <account>",
}

// Classify отображает текст сообщения ровно в одну команду.
// Текст без ведущего слеша - либо контекстный запрос "my last nft",
// либо свободный вопрос к AI.
func Classify(text string) Command {
	trimmed := strings.TrimSpace(text)

	for _, r := range rules {
		if m := r.re.FindStringSubmatch(trimmed); m != nil {
			return r.parse(m)
		}
	}

	if strings.HasPrefix(trimmed, "/") {
		word := strings.TrimPrefix(trimmed, "/")
		if i := strings.IndexAny(word, " \t"); i >= 0 {
			word = word[:i]
		}
		if usage, ok := usageByCommand[word]; ok {
			return Command{Kind: KindUsage, Usage: usage}
		}
		return Command{Kind: KindUnknown}
	}

	if strings.Contains(strings.ToLower(trimmed), "my last nft") {
		return Command{Kind: KindLastNFT}
	}

	return Command{Kind: KindFreeText, Text: trimmed}
}
