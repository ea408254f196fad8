package bot

// helpMessage - сводка всех команд бота, отправляется в Markdown.
const helpMessage = `🤖 *Available Commands:*
/setContract <contract_id> - Switch to another token contract
/status - Check bot and NEAR connection status
/mint [deposit] - Mint tokens (default deposit 0.01 NEAR)
/balance <account_id> - Check token balance of an account
/totalSupply - Show total token supply
/topTipper - Show the account that tipped the most
/tip <receiver_id> <amount> - Tip tokens to another account
/withdraw <amount> - Withdraw tokens
/burn <amount> - Burn tokens
/stake <amount> - Stake tokens
/unstake <amount> - Unstake tokens
/claim_rewards - Claim staking rewards
/register_referral <referrer_id> - Register a referrer
/propose <description> - Create a governance proposal
/vote <proposal_id> <true|false> - Vote on a proposal
/finalize_proposal <proposal_id> - Finalize a proposal
/nft_mint <metadata> - Mint an NFT with given metadata
/meme <prompt> - Generate a meme image, then optionally mint it as NFT
/startGame - Start the mini-game (3 free tries)
/play - Roll the dice (1-100, above 80 wins)
/buyTries <amount> - Tip the contract to buy 3 more tries
/stopGame - Stop the mini-game and clear your tries
/activity <account_id> - AI summary of recent account activity

You can also just ask me anything about blockchain! 🚀`
