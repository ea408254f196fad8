package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"memecoin-agent/internal/ai"
	"memecoin-agent/internal/contract"
	"memecoin-agent/internal/game"
)

// Callback-данные inline-кнопок. Пары mint_yes/mint_no оставлены для
// обратной совместимости со старыми клавиатурами.
const (
	CallbackMemeYes = "meme_nft_yes"
	CallbackMemeNo  = "meme_nft_no"
	CallbackMintYes = "mint_yes"
	CallbackMintNo  = "mint_no"
)

const unknownCommandReply = "Unknown command. Use /help to see available commands."

// AIService - языковая модель: свободные вопросы, подсказки, сводки.
type AIService interface {
	GetBlockchainAnswer(ctx context.Context, query string) (string, error)
	MemeSuggestions(ctx context.Context, prompt string) ([]string, error)
	SummarizeActivity(ctx context.Context, txns []json.RawMessage) (string, error)
}

// ImageService - генерация изображения по промпту.
type ImageService interface {
	GenerateMemeImage(ctx context.Context, prompt string) ([]byte, error)
}

// ActivityService - история транзакций аккаунта.
type ActivityService interface {
	AccountTransactions(ctx context.Context, account string) ([]json.RawMessage, error)
}

// Dispatcher связывает классификатор с исполнителями команд. Каждый
// исполнитель делает ровно один удаленный вызов и превращает любую его
// ошибку в ответ пользователю: сбой одной команды никогда не валит цикл
// обработки и не задевает другие разговоры.
type Dispatcher struct {
	transport Transport
	holder    *contract.Holder
	ledger    *game.Ledger
	pending   *PendingStore
	aiClient  AIService
	images    ImageService
	activity  ActivityService
	memory    *ai.Memory
	liveness  *Liveness
	timeout   time.Duration
	logger    *zap.Logger
}

// NewDispatcher создает диспетчер команд.
func NewDispatcher(
	transport Transport,
	holder *contract.Holder,
	ledger *game.Ledger,
	pending *PendingStore,
	aiClient AIService,
	images ImageService,
	activity ActivityService,
	memory *ai.Memory,
	liveness *Liveness,
	timeout time.Duration,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		transport: transport,
		holder:    holder,
		ledger:    ledger,
		pending:   pending,
		aiClient:  aiClient,
		images:    images,
		activity:  activity,
		memory:    memory,
		liveness:  liveness,
		timeout:   timeout,
		logger:    logger.Named("Dispatcher"),
	}
}

// conversationID - ключ эфемерного состояния разговора.
func conversationID(chatID int64) string {
	return fmt.Sprintf("tg_%d", chatID)
}

// callCtx ограничивает каждый удаленный вызов настроенным таймаутом.
func (d *Dispatcher) callCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d.timeout)
}

// HandleMessage классифицирует текст и выполняет ровно одну команду.
func (d *Dispatcher) HandleMessage(chatID int64, text string) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Panic while handling message", zap.Int64("chat_id", chatID), zap.Any("panic", r))
		}
	}()

	cmd := Classify(text)
	metricsCommandProcessed(cmd.Kind)

	log := d.logger.With(zap.Int64("chat_id", chatID), zap.String("command", cmd.Kind.String()))
	log.Debug("Dispatching command")

	convID := conversationID(chatID)

	switch cmd.Kind {
	case KindSetContract:
		d.execSetContract(chatID, cmd.ContractID)
	case KindStatus:
		d.execStatus(chatID)
	case KindHelp:
		d.reply(chatID, helpMessage, true)
	case KindMint:
		d.execMint(chatID, cmd.Deposit)
	case KindBalance:
		d.execBalance(chatID, cmd.Account)
	case KindTotalSupply:
		d.execTotalSupply(chatID)
	case KindTopTipper:
		d.execTopTipper(chatID)
	case KindTip:
		d.execTip(chatID, cmd.Receiver, cmd.Amount)
	case KindWithdraw:
		d.execWithdraw(chatID, cmd.Amount)
	case KindBurn:
		d.execBurn(chatID, cmd.Amount)
	case KindStake:
		d.execStake(chatID, cmd.Amount)
	case KindUnstake:
		d.execUnstake(chatID, cmd.Amount)
	case KindClaimRewards:
		d.execClaimRewards(chatID)
	case KindRegisterReferral:
		d.execRegisterReferral(chatID, cmd.Referrer)
	case KindPropose:
		d.execPropose(chatID, cmd.Description)
	case KindVote:
		d.execVote(chatID, cmd.ProposalID, cmd.Support)
	case KindFinalizeProposal:
		d.execFinalizeProposal(chatID, cmd.ProposalID)
	case KindNftMint:
		d.execNftMint(chatID, convID, cmd.Metadata)
	case KindMeme:
		d.execMeme(chatID, convID, cmd.Prompt)
	case KindStartGame:
		d.execStartGame(chatID, convID)
	case KindPlay:
		d.execPlay(chatID, convID)
	case KindBuyTries:
		d.execBuyTries(chatID, convID, cmd.Amount)
	case KindStopGame:
		d.execStopGame(chatID, convID)
	case KindActivity:
		d.execActivity(chatID, cmd.Account)
	case KindLastNFT:
		d.execLastNFT(chatID, convID)
	case KindUsage:
		d.reply(chatID, cmd.Usage, false)
	case KindUnknown:
		d.reply(chatID, unknownCommandReply, false)
	case KindFreeText:
		d.execFreeText(chatID, convID, cmd.Text)
	}
}

// HandleCallback обрабатывает нажатие inline-кнопки подтверждения минта.
// Корреляция с ожидающим промптом идет только по идентификатору разговора.
func (d *Dispatcher) HandleCallback(chatID int64, callbackID, payload string) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Panic while handling callback", zap.Int64("chat_id", chatID), zap.Any("panic", r))
		}
	}()

	metricsCallbackProcessed()
	convID := conversationID(chatID)

	switch payload {
	case CallbackMemeNo, CallbackMintNo:
		d.resolveNo(chatID, convID, callbackID)
	case CallbackMemeYes, CallbackMintYes:
		d.resolveYes(chatID, convID, callbackID)
	default:
		d.logger.Warn("Unknown callback payload", zap.Int64("chat_id", chatID), zap.String("payload", payload))
	}
}

// reply отправляет ответ; ошибка отправки только логируется.
func (d *Dispatcher) reply(chatID int64, text string, markdown bool) {
	var err error
	if markdown {
		err = d.transport.SendMarkdown(chatID, text)
	} else {
		err = d.transport.SendMessage(chatID, text)
	}
	if err != nil {
		d.logger.Error("Failed to send reply", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (d *Dispatcher) typing(chatID int64) {
	if err := d.transport.SendTyping(chatID); err != nil {
		d.logger.Debug("Failed to send typing action", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// ---------------- Исполнители ----------------

func (d *Dispatcher) execSetContract(chatID int64, contractID string) {
	binding := d.holder.Rebind(contractID)
	d.logger.Info("Switched contract", zap.String("contract_id", binding.ContractID))
	d.reply(chatID, fmt.Sprintf("✅ Contract ID switched to: %s", binding.ContractID), false)
}

func (d *Dispatcher) execStatus(chatID int64) {
	if d.liveness.Online() {
		d.reply(chatID, "Bot is ONLINE and NEAR is connected.", false)
	} else {
		d.reply(chatID, "Bot is currently marked as OFFLINE (polling/webhook error).", false)
	}
}

func (d *Dispatcher) execMint(chatID int64, deposit string) {
	if deposit == "" {
		deposit = contract.DefaultMintDeposit
	}
	d.typing(chatID)

	client, _ := d.holder.Current()
	ctx, cancel := d.callCtx()
	defer cancel()

	if err := client.Mint(ctx, deposit); err != nil {
		d.logger.Error("Error minting tokens", zap.Int64("chat_id", chatID), zap.Error(err))
		metricsRemoteCallFailed("mint")
		d.reply(chatID, "⚠️ *Error minting tokens.*", true)
		return
	}
	d.reply(chatID, fmt.Sprintf("✨ *Mint Successful!* \nYou attached `%s` yoctoNEAR.\nEnjoy your newly minted tokens!", deposit), true)
}

func (d *Dispatcher) execBalance(chatID int64, account string) {
	d.typing(chatID)

	client, _ := d.holder.Current()
	ctx, cancel := d.callCtx()
	defer cancel()

	balance, err := client.GetBalance(ctx, account)
	if err != nil {
		d.logger.Error("Error fetching balance", zap.Int64("chat_id", chatID), zap.String("account", account), zap.Error(err))
		metricsRemoteCallFailed("get_balance")
		d.reply(chatID, "⚠️ Error retrieving token balance.", false)
		return
	}
	d.reply(chatID, fmt.Sprintf("💰 The token balance for *%s* is: `%s`", account, balance), true)
}

func (d *Dispatcher) execTotalSupply(chatID int64) {
	d.typing(chatID)

	client, _ := d.holder.Current()
	ctx, cancel := d.callCtx()
	defer cancel()

	supply, err := client.GetTotalSupply(ctx)
	if err != nil {
		d.logger.Error("Error fetching total supply", zap.Int64("chat_id", chatID), zap.Error(err))
		metricsRemoteCallFailed("get_total_supply")
		d.reply(chatID, "⚠️ Error retrieving total supply.", false)
		return
	}
	d.reply(chatID, fmt.Sprintf("🏦 *Total Token Supply:* `%s`", supply), true)
}

func (d *Dispatcher) execTopTipper(chatID int64) {
	d.typing(chatID)

	client, _ := d.holder.Current()
	ctx, cancel := d.callCtx()
	defer cancel()

	tipper, err := client.GetTopTipper(ctx)
	if err != nil {
		d.logger.Error("Error fetching top tipper", zap.Int64("chat_id", chatID), zap.Error(err))
		metricsRemoteCallFailed("get_top_tipper")
		d.reply(chatID, "⚠️ Error retrieving top tipper.", false)
		return
	}
	if tipper == "" {
		tipper = "No tipper yet"
	}
	d.reply(chatID, fmt.Sprintf("🏆 The top tipper is: *%s*", tipper), true)
}

func (d *Dispatcher) execTip(chatID int64, receiver, amount string) {
	client, _ := d.holder.Current()
	ctx, cancel := d.callCtx()
	defer cancel()

	if err := client.Tip(ctx, receiver, amount); err != nil {
		d.logger.Error("Error tipping tokens", zap.Int64("chat_id", chatID), zap.String("receiver", receiver), zap.Error(err))
		metricsRemoteCallFailed("tip")
		d.reply(chatID, "Error tipping tokens.", false)
		return
	}
	d.reply(chatID, fmt.Sprintf("Successfully tipped %s tokens to %s", amount, receiver), false)
}

func (d *Dispatcher) execWithdraw(chatID int64, amount string) {
	client, _ := d.holder.Current()
	ctx, cancel := d.callCtx()
	defer cancel()

	if err := client.Withdraw(ctx, amount); err != nil {
		d.logger.Error("Error withdrawing tokens", zap.Int64("chat_id", chatID), zap.Error(err))
		metricsRemoteCallFailed("withdraw")
		d.reply(chatID, "Error withdrawing tokens.", false)
		return
	}
	d.reply(chatID, fmt.Sprintf("Successfully withdrew %s tokens", amount), false)
}

func (d *Dispatcher) execBurn(chatID int64, amount string) {
	client, _ := d.holder.Current()
	ctx, cancel := d.callCtx()
	defer cancel()

	if err := client.Burn(ctx, amount); err != nil {
		d.logger.Error("Error burning tokens", zap.Int64("chat_id", chatID), zap.Error(err))
		metricsRemoteCallFailed("burn")
		d.reply(chatID, "Error burning tokens.", false)
		return
	}
	d.reply(chatID, fmt.Sprintf("Successfully burned %s tokens", amount), false)
}

func (d *Dispatcher) execStake(chatID int64, amount string) {
	client, _ := d.holder.Current()
	ctx, cancel := d.callCtx()
	defer cancel()

	if err := client.Stake(ctx, amount); err != nil {
		d.logger.Error("Error staking tokens", zap.Int64("chat_id", chatID), zap.Error(err))
		metricsRemoteCallFailed("stake")
		d.reply(chatID, "Error staking tokens.", false)
		return
	}
	d.reply(chatID, fmt.Sprintf("Successfully staked %s tokens", amount), false)
}

func (d *Dispatcher) execUnstake(chatID int64, amount string) {
	client, _ := d.holder.Current()
	ctx, cancel := d.callCtx()
	defer cancel()

	if err := client.Unstake(ctx, amount); err != nil {
		d.logger.Error("Error unstaking tokens", zap.Int64("chat_id", chatID), zap.Error(err))
		metricsRemoteCallFailed("unstake")
		d.reply(chatID, "Error unstaking tokens.", false)
		return
	}
	d.reply(chatID, fmt.Sprintf("Successfully unstaked %s tokens", amount), false)
}

func (d *Dispatcher) execClaimRewards(chatID int64) {
	client, _ := d.holder.Current()
	ctx, cancel := d.callCtx()
	defer cancel()

	if err := client.ClaimRewards(ctx); err != nil {
		d.logger.Error("Error claiming rewards", zap.Int64("chat_id", chatID), zap.Error(err))
		metricsRemoteCallFailed("claim_rewards")
		d.reply(chatID, "Error claiming rewards.", false)
		return
	}
	d.reply(chatID, "Successfully claimed staking rewards", false)
}

func (d *Dispatcher) execRegisterReferral(chatID int64, referrer string) {
	client, _ := d.holder.Current()
	ctx, cancel := d.callCtx()
	defer cancel()

	if err := client.RegisterReferral(ctx, referrer); err != nil {
		d.logger.Error("Error registering referral", zap.Int64("chat_id", chatID), zap.Error(err))
		metricsRemoteCallFailed("register_referral")
		d.reply(chatID, "Error registering referral.", false)
		return
	}
	d.reply(chatID, fmt.Sprintf("Successfully registered referrer: %s", referrer), false)
}

func (d *Dispatcher) execPropose(chatID int64, description string) {
	client, _ := d.holder.Current()
	ctx, cancel := d.callCtx()
	defer cancel()

	if err := client.Propose(ctx, description); err != nil {
		d.logger.Error("Error creating proposal", zap.Int64("chat_id", chatID), zap.Error(err))
		metricsRemoteCallFailed("propose")
		d.reply(chatID, "Error creating proposal.", false)
		return
	}
	d.reply(chatID, fmt.Sprintf("Proposal created: %q", description), false)
}

func (d *Dispatcher) execVote(chatID int64, proposalID int, support bool) {
	client, _ := d.holder.Current()
	ctx, cancel := d.callCtx()
	defer cancel()

	if err := client.Vote(ctx, proposalID, support); err != nil {
		d.logger.Error("Error voting on proposal", zap.Int64("chat_id", chatID), zap.Int("proposal_id", proposalID), zap.Error(err))
		metricsRemoteCallFailed("vote")
		d.reply(chatID, "Error voting on proposal.", false)
		return
	}
	d.reply(chatID, fmt.Sprintf("Voted on proposal %d with support=%t", proposalID, support), false)
}

func (d *Dispatcher) execFinalizeProposal(chatID int64, proposalID int) {
	client, _ := d.holder.Current()
	ctx, cancel := d.callCtx()
	defer cancel()

	if err := client.FinalizeProposal(ctx, proposalID); err != nil {
		d.logger.Error("Error finalizing proposal", zap.Int64("chat_id", chatID), zap.Int("proposal_id", proposalID), zap.Error(err))
		metricsRemoteCallFailed("finalize_proposal")
		d.reply(chatID, "Error finalizing proposal.", false)
		return
	}
	d.reply(chatID, fmt.Sprintf("Finalized proposal %d", proposalID), false)
}

func (d *Dispatcher) execNftMint(chatID int64, convID, metadata string) {
	d.typing(chatID)

	client, _ := d.holder.Current()
	ctx, cancel := d.callCtx()
	defer cancel()

	if err := client.NftMint(ctx, metadata); err != nil {
		d.logger.Error("Error minting NFT", zap.Int64("chat_id", chatID), zap.Error(err))
		metricsRemoteCallFailed("nft_mint")
		d.reply(chatID, "⚠️ Error minting NFT.", false)
		return
	}
	d.memory.RecordMint(convID, metadata)
	d.reply(chatID, fmt.Sprintf("🖼️ *NFT minted!* \nMetadata: `%s`", metadata), true)
}

// execMeme генерирует изображение, сохраняет ожидающий промпт и предлагает
// минт. Каждый удаленный шаг живет в собственном окне таймаута: медленные
// подсказки не съедают бюджет генерации. При ошибке генерации ничего не
// сохраняется.
func (d *Dispatcher) execMeme(chatID int64, convID, prompt string) {
	// Подсказки - необязательное украшение: их сбой не мешает генерации
	suggestionsCtx, cancelSuggestions := d.callCtx()
	suggestions, err := d.aiClient.MemeSuggestions(suggestionsCtx, prompt)
	cancelSuggestions()
	if err != nil {
		d.logger.Warn("Failed to get meme suggestions", zap.Int64("chat_id", chatID), zap.Error(err))
	} else if len(suggestions) > 0 {
		text := "🤖 *AI Suggestions* for your meme prompt:"
		for _, s := range suggestions {
			text += "\n- " + s
		}
		d.reply(chatID, text, true)
	}

	d.typing(chatID)

	generateCtx, cancelGenerate := d.callCtx()
	image, err := d.images.GenerateMemeImage(generateCtx, prompt)
	cancelGenerate()
	if err != nil {
		d.logger.Error("Error generating meme image", zap.Int64("chat_id", chatID), zap.Error(err))
		metricsRemoteCallFailed("meme_image")
		d.reply(chatID, "⚠️ *Sorry, an error occurred while generating your meme image.*", true)
		return
	}

	if err := d.transport.SendPhoto(chatID, image, "✨ *Here is your meme image!* ✨"); err != nil {
		d.logger.Error("Failed to send meme image", zap.Int64("chat_id", chatID), zap.Error(err))
		return
	}

	storeCtx, cancelStore := d.callCtx()
	defer cancelStore()
	if err := d.pending.Propose(storeCtx, convID, prompt); err != nil {
		d.logger.Error("Failed to store pending mint", zap.Int64("chat_id", chatID), zap.Error(err))
		return
	}

	err = d.transport.SendButtons(chatID, "Do you want to mint this meme as an NFT?", []Button{
		{Label: "Yes, mint NFT", Payload: CallbackMemeYes},
		{Label: "No, thanks", Payload: CallbackMemeNo},
	})
	if err != nil {
		d.logger.Error("Failed to send mint confirmation keyboard", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (d *Dispatcher) execStartGame(chatID int64, convID string) {
	ctx, cancel := d.callCtx()
	defer cancel()

	response, err := d.ledger.Start(ctx, convID)
	if err != nil {
		d.logger.Error("Error starting game", zap.Int64("chat_id", chatID), zap.Error(err))
		d.reply(chatID, "⚠️ Failed to start the game. Try again later.", false)
		return
	}
	d.reply(chatID, response, false)
}

func (d *Dispatcher) execPlay(chatID int64, convID string) {
	ctx, cancel := d.callCtx()
	defer cancel()

	response, err := d.ledger.Play(ctx, convID)
	if err != nil {
		d.logger.Error("Error playing game", zap.Int64("chat_id", chatID), zap.Error(err))
		d.reply(chatID, "⚠️ Failed to play. Try again later.", false)
		return
	}
	d.reply(chatID, response, false)
}

func (d *Dispatcher) execBuyTries(chatID int64, convID, amount string) {
	client, binding := d.holder.Current()
	ctx, cancel := d.callCtx()
	defer cancel()

	// Чаевые уходят самому контракту; попытки начисляются только после
	// успешного платежа
	response, err := d.ledger.BuyTries(ctx, convID, amount, client, binding.ContractID)
	if err != nil {
		d.logger.Error("Error in buyTries", zap.Int64("chat_id", chatID), zap.Error(err))
		metricsRemoteCallFailed("tip")
		d.reply(chatID, "⚠️ Failed to buy tries. Check logs.", false)
		return
	}
	d.reply(chatID, response, false)
}

func (d *Dispatcher) execStopGame(chatID int64, convID string) {
	ctx, cancel := d.callCtx()
	defer cancel()

	response, err := d.ledger.Stop(ctx, convID)
	if err != nil {
		d.logger.Error("Error stopping game", zap.Int64("chat_id", chatID), zap.Error(err))
		d.reply(chatID, "⚠️ Failed to stop the game. Try again later.", false)
		return
	}
	d.reply(chatID, response, false)
}

func (d *Dispatcher) execActivity(chatID int64, account string) {
	d.typing(chatID)

	ctx, cancel := d.callCtx()
	defer cancel()

	txns, err := d.activity.AccountTransactions(ctx, account)
	if err != nil {
		d.logger.Error("Error retrieving activity", zap.Int64("chat_id", chatID), zap.String("account", account), zap.Error(err))
		metricsRemoteCallFailed("activity")
		d.reply(chatID, "⚠️ Error retrieving activity or summarizing data.", false)
		return
	}

	summary, err := d.aiClient.SummarizeActivity(ctx, txns)
	if err != nil {
		d.logger.Error("Error summarizing activity", zap.Int64("chat_id", chatID), zap.String("account", account), zap.Error(err))
		metricsRemoteCallFailed("activity_summary")
		d.reply(chatID, "⚠️ Error retrieving activity or summarizing data.", false)
		return
	}

	d.reply(chatID, fmt.Sprintf("🤖 *AI Summary of %s activity:* \n%s", account, summary), true)
}

func (d *Dispatcher) execLastNFT(chatID int64, convID string) {
	metadata, ok := d.memory.LastMint(convID)
	if !ok {
		d.reply(chatID, "You haven't minted any NFT yet. Generate a meme with /meme and mint it!", false)
		return
	}
	d.reply(chatID, fmt.Sprintf("🖼️ Your last minted NFT: `%s`", metadata), true)
}

func (d *Dispatcher) execFreeText(chatID int64, convID, text string) {
	d.typing(chatID)
	d.memory.RecordMessage(convID, text)

	ctx, cancel := d.callCtx()
	defer cancel()

	answer, err := d.aiClient.GetBlockchainAnswer(ctx, text)
	if err != nil {
		d.logger.Error("Error in AI chatbot", zap.Int64("chat_id", chatID), zap.Error(err))
		metricsRemoteCallFailed("ai_answer")
		d.reply(chatID, "⚠️ Error retrieving AI answer.", false)
		return
	}
	d.reply(chatID, "🤖 "+answer, false)
}

// ---------------- Протокол подтверждения минта ----------------

// resolveYes выполняет отложенный nft_mint по сохраненному промпту.
// Запись удаляется безусловно, даже если минт не удался: неудачный минт
// не должен оставлять "висящее" подтверждение.
func (d *Dispatcher) resolveYes(chatID int64, convID, callbackID string) {
	if err := d.transport.AnswerCallback(callbackID, "Minting NFT..."); err != nil {
		d.logger.Debug("Failed to answer callback", zap.Int64("chat_id", chatID), zap.Error(err))
	}

	ctx, cancel := d.callCtx()
	defer cancel()

	pending, ok, err := d.pending.Get(ctx, convID)
	if err != nil {
		d.logger.Error("Failed to read pending mint", zap.Int64("chat_id", chatID), zap.Error(err))
		d.reply(chatID, "⚠️ Error minting NFT.", false)
		return
	}
	if !ok {
		d.reply(chatID, "No meme prompt found to mint.", false)
		return
	}

	d.typing(chatID)

	metadata := fmt.Sprintf("Meme minted with prompt: %s", pending.Prompt)
	client, _ := d.holder.Current()

	if mintErr := client.NftMint(ctx, metadata); mintErr != nil {
		d.logger.Error("Error minting NFT from pending prompt", zap.Int64("chat_id", chatID), zap.Error(mintErr))
		metricsRemoteCallFailed("nft_mint")
		d.reply(chatID, "⚠️ Error minting NFT.", false)
	} else {
		d.memory.RecordMint(convID, metadata)
		d.reply(chatID, "🎉 NFT minted for your meme!", false)
	}

	if err := d.pending.Clear(ctx, convID); err != nil {
		d.logger.Error("Failed to clear pending mint", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// resolveNo снимает ожидающее подтверждение; отсутствие записи - не ошибка.
func (d *Dispatcher) resolveNo(chatID int64, convID, callbackID string) {
	if err := d.transport.AnswerCallback(callbackID, "NFT mint canceled."); err != nil {
		d.logger.Debug("Failed to answer callback", zap.Int64("chat_id", chatID), zap.Error(err))
	}

	ctx, cancel := d.callCtx()
	defer cancel()

	if err := d.pending.Clear(ctx, convID); err != nil {
		d.logger.Error("Failed to clear pending mint", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
