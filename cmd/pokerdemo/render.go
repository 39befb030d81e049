package main

import (
	"strings"

	"github.com/pterm/pterm"

	"pokerdemo/pkg/deck"
	"pokerdemo/pkg/demo"
)

const helpText = "→ next   ← reset   h evaluations   w winners   n new hand   q quit"

func cardString(c *deck.Card) string {
	if c == nil {
		return "  "
	}

	if c.IsBlank() {
		return "░░"
	}

	return c.String()
}

func cardsString(cards []*deck.Card) string {
	s := make([]string, len(cards))
	for i, c := range cards {
		s[i] = cardString(c)
	}

	return strings.Join(s, " ")
}

func boardPanel(v *demo.View) pterm.Panel {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	title := pterm.LightYellow("|" + strings.ToUpper(v.Stage.String()) + "|")
	return pterm.Panel{Data: pbox.WithTitle(title).WithTitleTopCenter().Sprint(cardsString(v.Board))}
}

func playerPanel(v *demo.View, p demo.PlayerView) pterm.Panel {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	info := cardsString(p.Cards)
	if v.ShowEvaluations {
		if p.Evaluation == nil {
			info += "\n" + pterm.Gray("no hand")
		} else {
			info += "\n" + p.Evaluation.Description
		}
	}

	title := p.Name
	if v.IsWinner(p.Index) {
		title = pterm.LightGreen(p.Name + " ★")
	}

	return pterm.Panel{Data: pbox.WithTitle(title).WithTitleTopLeft().Sprint(info)}
}

// render draws a view as a single string
func render(v *demo.View) (string, error) {
	players := make([]pterm.Panel, len(v.Players))
	for i, p := range v.Players {
		players[i] = playerPanel(v, p)
	}

	panels := pterm.Panels{
		{boardPanel(v)},
		players,
	}

	s, err := pterm.DefaultPanel.WithPanels(panels).Srender()
	if err != nil {
		return "", err
	}

	return s + "\n" + pterm.Gray(helpText) + "\n", nil
}
