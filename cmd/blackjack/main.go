package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"github.com/blabel3/praeses-blackjack/internal/config"
	"github.com/blabel3/praeses-blackjack/internal/database"
	"github.com/blabel3/praeses-blackjack/internal/game"
	"github.com/blabel3/praeses-blackjack/internal/player"
)

func main() {
	auto := flag.Bool("auto", false, "let the basic-strategy bot play instead of prompting")
	seed := flag.Int64("seed", 0, "shuffle seed, 0 means time-based")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logrus.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	repo := player.NewRepository(db.DB)
	profile, err := repo.GetOrCreate(player.LocalProfileID, cfg.StartBalance, cfg.DefaultBet)
	if err != nil {
		logrus.Fatalf("failed to load profile: %v", err)
	}

	renderTitle()

	name := "Player"
	if !*auto {
		input, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText("Enter your name (or leave blank to be Player)").
			Show()
		if input = strings.TrimSpace(input); input != "" {
			name = input
		}
	} else {
		name = "Bot"
	}

	rules := game.Rules{
		DealerHitsSoft17: cfg.DealerHitsSoft17,
		BlackjackPays:    cfg.BlackjackPays,
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	for {
		if profile.Balance < cfg.MinBet {
			pterm.Warning.Printfln("Balance %d is below the minimum bet %d. Topping back up to %d.",
				profile.Balance, cfg.MinBet, cfg.StartBalance)
			profile.Balance = cfg.StartBalance
		}

		bet := promptBet(cfg, profile)
		profile.PlaceBet(bet)

		round, err := game.NewRound(rng, rules)
		if err != nil {
			profile.Balance += bet
			logrus.Fatalf("failed to deal: %v", err)
		}

		outcome, err := playRound(round, name, *auto)
		if err != nil {
			profile.Balance += bet
			saveProfile(repo, profile)
			pterm.Error.Printfln("Round cancelled, bet returned: %v", err)
			break
		}

		payout := outcome.Payout(bet, cfg.BlackjackPays)
		switch {
		case outcome.PlayerWon():
			profile.AddWin(payout)
		case outcome == game.OutcomePush:
			profile.AddDraw(payout)
		default:
			profile.AddLoss()
		}
		saveProfile(repo, profile)

		renderOutcome(round.Snapshot(), name, outcome, payout, profile.Balance)

		again, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultValue(true).
			Show("Play another round?")
		if !again {
			break
		}
		pterm.Println()
	}

	renderStats(profile)
}

// playRound drives one round to completion, prompting until the engine
// accepts each action. A nil error means the round settled.
func playRound(round *game.Round, name string, auto bool) (game.Outcome, error) {
	for round.Phase() == game.PhasePlayerTurn {
		snap := round.Snapshot()
		renderTable(snap, name)

		action := chooseAction(snap, name, auto)
		if err := round.Submit(action); err != nil {
			if errors.Is(err, game.ErrInvalidAction) {
				pterm.Warning.Println("That move is not available right now.")
				continue
			}
			return game.OutcomeNone, err
		}
	}

	outcome, ok := round.Outcome()
	if !ok {
		return game.OutcomeNone, errors.New("round ended without an outcome")
	}
	return outcome, nil
}

func chooseAction(snap game.Snapshot, name string, auto bool) game.Action {
	if auto {
		action := game.Suggest(snap.Player, snap.Upcard())
		pterm.Info.Printfln("%s plays: %s", name, action)
		return action
	}

	for {
		input, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText("Hit (h) or Stand (s)? Type hint for advice").
			Show()

		if strings.EqualFold(strings.TrimSpace(input), "hint") {
			pterm.Info.Printfln("Basic strategy says: %s", game.Suggest(snap.Player, snap.Upcard()))
			continue
		}

		action, err := game.ParseAction(input)
		if err != nil {
			pterm.Warning.Println("Invalid action input, try again.")
			continue
		}
		return action
	}
}

func promptBet(cfg *config.Config, p *player.Player) int {
	maxBet := min(cfg.MaxBet, p.Balance)

	for {
		input, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(fmt.Sprintf("Your bet (%d-%d, balance %d)", cfg.MinBet, maxBet, p.Balance)).
			WithDefaultValue(strconv.Itoa(min(p.LastBet, maxBet))).
			Show()

		bet, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil || bet < cfg.MinBet || bet > maxBet {
			pterm.Warning.Printfln("Bet must be a number between %d and %d.", cfg.MinBet, maxBet)
			continue
		}
		return bet
	}
}

func saveProfile(repo player.Repository, p *player.Player) {
	if err := repo.Save(p); err != nil {
		logrus.WithError(err).Error("failed to save profile")
	}
}
