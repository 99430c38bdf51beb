package bot

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/blabel3/praeses-blackjack/internal/cards"
	"github.com/blabel3/praeses-blackjack/internal/config"
	"github.com/blabel3/praeses-blackjack/internal/game"
	"github.com/blabel3/praeses-blackjack/internal/player"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Handler struct {
	bot     *tgbotapi.BotAPI
	cfg     *config.Config
	rules   game.Rules
	players player.Repository
	rounds  *game.Manager
}

func NewHandler(bot *tgbotapi.BotAPI, cfg *config.Config, repo player.Repository) *Handler {
	return &Handler{
		bot: bot,
		cfg: cfg,
		rules: game.Rules{
			DealerHitsSoft17: cfg.DealerHitsSoft17,
			BlackjackPays:    cfg.BlackjackPays,
		},
		players: repo,
		rounds:  game.NewManager(),
	}
}

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		logrus.WithError(err).Error("failed to send message")
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		logrus.WithError(err).Error("failed to send message")
	}
}

func (h *Handler) answerCallback(id, text string) {
	h.bot.Request(tgbotapi.NewCallback(id, text))
}

func (h *Handler) getPlayer(chatID int64) (*player.Player, error) {
	return h.players.GetOrCreate(chatID, h.cfg.StartBalance, h.cfg.DefaultBet)
}

func (h *Handler) savePlayer(p *player.Player) {
	if err := h.players.Save(p); err != nil {
		logrus.WithError(err).Error("failed to save player")
	}
}

func handString(hand []cards.Card) string {
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatStatus(snap game.Snapshot) string {
	dealer := fmt.Sprintf("[%s, ?]", snap.Upcard())
	if !snap.HoleHidden {
		dealer = fmt.Sprintf("%s (%d)", handString(snap.Dealer), snap.DealerTotal)
	}

	return fmt.Sprintf("🎴 You: %s (%d)\n🃏 Dealer: %s",
		handString(snap.Player), snap.PlayerTotal, dealer)
}

func resultText(o game.Outcome) string {
	switch o {
	case game.OutcomePlayerBlackjack:
		return "🎰 BLACKJACK! You win!"
	case game.OutcomePlayerWin:
		return "🎉 You win!"
	case game.OutcomeDealerBust:
		return "🎉 Dealer busts! You win!"
	case game.OutcomePlayerBust:
		return "💥 Bust! You lose!"
	case game.OutcomeDealerWin:
		return "😔 Dealer wins!"
	case game.OutcomePush:
		return "🤝 Push! Bet returned"
	}
	return ""
}

func (h *Handler) HandleStart(chatID int64) {
	p, err := h.getPlayer(chatID)
	if err != nil {
		h.send(chatID, "❌ Something went wrong. Try again later.")
		return
	}

	h.send(chatID, fmt.Sprintf(
		"🎰 Welcome to Blackjack!\n\n"+
			"💵 Balance: %d\n\n"+
			"/play <bet> — play a round\n"+
			"/balance — your stats\n"+
			"/top — leaderboard\n"+
			"/help — rules",
		p.Balance))
}

func (h *Handler) HandleHelp(chatID int64) {
	h.send(chatID,
		"📖 Blackjack rules:\n\n"+
			"🎯 Goal: beat the dealer without going over 21\n\n"+
			"📊 Card values:\n"+
			"• 2-10 — face value\n"+
			"• J, Q, K — 10\n"+
			"• A — 11 or 1\n\n"+
			"🎮 Actions:\n"+
			"• Hit — take a card\n"+
			"• Stand — stop and let the dealer play\n\n"+
			fmt.Sprintf("🎰 Blackjack pays x%.1f", 1+h.cfg.BlackjackPays))
}

func (h *Handler) HandleBalance(chatID int64) {
	p, err := h.getPlayer(chatID)
	if err != nil {
		h.send(chatID, "❌ Something went wrong")
		return
	}

	h.send(chatID, fmt.Sprintf(
		"💰 Balance: %d\n\n"+
			"📊 Stats:\n"+
			"🎮 Games: %d\n"+
			"✅ Wins: %d (%.1f%%)\n"+
			"❌ Losses: %d\n"+
			"🤝 Pushes: %d",
		p.Balance, p.Games, p.Wins, p.WinRate(), p.Losses, p.Draws))
}

func (h *Handler) HandleTop(chatID int64) {
	stats, err := h.players.GetTopByBalance(10)
	if err != nil {
		h.send(chatID, "❌ Something went wrong")
		return
	}

	if len(stats) == 0 {
		h.send(chatID, "🏆 Nobody has played yet!")
		return
	}

	var sb strings.Builder
	sb.WriteString("🏆 Top players:\n\n")

	medals := []string{"🥇", "🥈", "🥉"}
	for i, s := range stats {
		medal := fmt.Sprintf("%d.", i+1)
		if i < 3 {
			medal = medals[i]
		}
		sb.WriteString(fmt.Sprintf("%s %d 💰 | %d games (%.0f%%)\n",
			medal, s.Balance, s.Games, s.WinRate))
	}

	h.send(chatID, sb.String())
}

func (h *Handler) HandlePlay(chatID int64, args []string) {
	p, err := h.getPlayer(chatID)
	if err != nil {
		h.send(chatID, "❌ Something went wrong")
		return
	}

	bet := h.cfg.DefaultBet
	if len(args) > 0 {
		if b, err := strconv.Atoi(args[0]); err == nil && b > 0 {
			bet = b
		} else {
			h.send(chatID, fmt.Sprintf("❌ Invalid bet. Example: /play %d", h.cfg.DefaultBet))
			return
		}
	}

	if bet < h.cfg.MinBet || bet > h.cfg.MaxBet {
		h.send(chatID, fmt.Sprintf("❌ Bet must be between %d and %d", h.cfg.MinBet, h.cfg.MaxBet))
		return
	}

	if !p.PlaceBet(bet) {
		h.send(chatID, fmt.Sprintf("❌ Not enough funds! Balance: %d", p.Balance))
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	rd, err := game.NewRound(rng, h.rules)
	if err != nil {
		p.Balance += bet
		h.savePlayer(p)
		h.send(chatID, "❌ Could not deal the round")
		logrus.WithError(err).Error("failed to start round")
		return
	}

	h.rounds.Set(chatID, rd)
	logrus.WithFields(logrus.Fields{"round": rd.ID, "chat": chatID, "bet": bet}).Info("round started")

	// Naturals settle before any turn is taken.
	if outcome, ok := rd.Outcome(); ok {
		h.finishRound(chatID, rd, p, outcome, bet)
		return
	}

	h.savePlayer(p)
	h.sendWithKeyboard(chatID,
		fmt.Sprintf("💰 Bet: %d | Balance: %d\n\n%s",
			bet, p.Balance, formatStatus(rd.Snapshot())),
		GameKeyboard())
}

func (h *Handler) HandleCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	data := callback.Data

	p, err := h.getPlayer(chatID)
	if err != nil {
		h.answerCallback(callback.ID, "Something went wrong")
		return
	}

	switch data {
	case CallbackPlayAgain:
		h.answerCallback(callback.ID, "")
		h.HandlePlay(chatID, []string{strconv.Itoa(p.LastBet)})
		return

	case CallbackBalance:
		h.answerCallback(callback.ID, fmt.Sprintf("💵 %d", p.Balance))
		return
	}

	rd := h.rounds.Get(chatID)
	if rd == nil || rd.Phase() == game.PhaseDone {
		h.answerCallback(callback.ID, "No active round")
		return
	}

	switch data {
	case CallbackHit:
		h.handleAction(chatID, rd, p, game.ActionHit)
	case CallbackStand:
		h.handleAction(chatID, rd, p, game.ActionStand)
	}

	h.answerCallback(callback.ID, "")
}

func (h *Handler) handleAction(chatID int64, rd *game.Round, p *player.Player, a game.Action) {
	bet := p.LastBet

	if err := rd.Submit(a); err != nil {
		if errors.Is(err, cards.ErrEmptyDeck) {
			// Round is unfinishable; give the stake back.
			h.rounds.Delete(chatID)
			p.Balance += bet
			h.savePlayer(p)
			h.send(chatID, "❌ The deck ran out, round cancelled. Bet returned.")
			logrus.WithError(err).WithField("round", rd.ID).Error("round aborted")
			return
		}
		if errors.Is(err, game.ErrInvalidAction) || errors.Is(err, game.ErrRoundDone) {
			return
		}
		logrus.WithError(err).WithField("round", rd.ID).Error("action failed")
		return
	}

	if outcome, ok := rd.Outcome(); ok {
		h.finishRound(chatID, rd, p, outcome, bet)
		return
	}

	h.sendWithKeyboard(chatID, formatStatus(rd.Snapshot()), GameKeyboard())
}

func (h *Handler) finishRound(chatID int64, rd *game.Round, p *player.Player, outcome game.Outcome, bet int) {
	h.rounds.Delete(chatID)

	payout := outcome.Payout(bet, h.cfg.BlackjackPays)
	switch {
	case outcome.PlayerWon():
		p.AddWin(payout)
	case outcome == game.OutcomePush:
		p.AddDraw(payout)
	default:
		p.AddLoss()
	}
	h.savePlayer(p)

	logrus.WithFields(logrus.Fields{
		"round":   rd.ID,
		"chat":    chatID,
		"outcome": outcome,
		"payout":  payout,
	}).Info("round finished")

	msg := fmt.Sprintf("%s\n\n%s", formatStatus(rd.Snapshot()), resultText(outcome))
	if outcome.PlayerWon() {
		msg += fmt.Sprintf("\n💰 Payout: +%d", payout)
	}
	msg += fmt.Sprintf("\n💵 Balance: %d", p.Balance)

	h.sendWithKeyboard(chatID, msg, EndGameKeyboard(p.LastBet))
}

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	parts := strings.Fields(msg.Text)

	if len(parts) == 0 {
		return
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "/start":
		h.HandleStart(chatID)
	case "/help":
		h.HandleHelp(chatID)
	case "/play":
		h.HandlePlay(chatID, args)
	case "/balance":
		h.HandleBalance(chatID)
	case "/top":
		h.HandleTop(chatID)
	}
}
