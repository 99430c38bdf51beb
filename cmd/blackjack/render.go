package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/blabel3/praeses-blackjack/internal/cards"
	"github.com/blabel3/praeses-blackjack/internal/game"
	"github.com/blabel3/praeses-blackjack/internal/player"
)

func renderTitle() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgRed.ToStyle()),
	).Render()
}

func handLine(hand []cards.Card) string {
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

func totalLine(total int, soft bool) string {
	if soft {
		return fmt.Sprintf("soft %d", total)
	}
	return fmt.Sprintf("%d", total)
}

func renderTable(snap game.Snapshot, name string) {
	box := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	dealerLine := fmt.Sprintf("%s, ??", snap.Upcard())
	if !snap.HoleHidden {
		dealerLine = fmt.Sprintf("%s   (%d)", handLine(snap.Dealer), snap.DealerTotal)
	}

	dealerPanel := pterm.Panel{Data: box.WithTitle("Dealer").WithTitleTopLeft().Sprint(dealerLine)}
	playerPanel := pterm.Panel{Data: box.WithTitle(pterm.LightCyan(name)).WithTitleTopLeft().Sprintf(
		"%s   (%s)", handLine(snap.Player), totalLine(snap.PlayerTotal, snap.PlayerSoft))}

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{dealerPanel},
		{playerPanel},
	}).Render()
}

func outcomeText(o game.Outcome, name string) string {
	switch o {
	case game.OutcomePlayerBlackjack:
		return pterm.LightGreen("Blackjack! " + name + " wins!")
	case game.OutcomePlayerWin:
		return pterm.LightGreen(name + " wins!")
	case game.OutcomeDealerBust:
		return pterm.LightGreen("Dealer goes bust! " + name + " wins!")
	case game.OutcomePlayerBust:
		return pterm.LightRed("Bust! The house wins.")
	case game.OutcomeDealerWin:
		return pterm.LightRed("Dealer wins.")
	case game.OutcomePush:
		return pterm.LightYellow("Stand-off. Bet returned.")
	}
	return ""
}

func renderOutcome(snap game.Snapshot, name string, o game.Outcome, payout, balance int) {
	renderTable(snap, name)

	box := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	lines := outcomeText(o, name)
	if o.PlayerWon() {
		lines += pterm.Sprintf("\nPayout: +%d", payout)
	}
	lines += pterm.Sprintf("\nBalance: %d", balance)

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{{Data: box.WithTitle("|RESULT|").WithTitleTopCenter().Sprint(lines)}},
	}).Render()
}

func renderStats(p *player.Player) {
	pterm.Println()
	pterm.Info.Printfln("Thanks for playing! Balance: %d | Games: %d | Wins: %d (%.1f%%) | Losses: %d | Pushes: %d",
		p.Balance, p.Games, p.Wins, p.WinRate(), p.Losses, p.Draws)
}
