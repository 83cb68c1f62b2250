package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/sanity-io/litter"

	"github.com/lox/showdown/poker"
)

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
)

func formatPayload(payload []poker.Rank) string {
	parts := make([]string, len(payload))
	for i, r := range payload {
		parts[i] = fmt.Sprint(int(r))
	}
	return strings.Join(parts, ",")
}

// renderTable writes one row per hand. Rows whose index is in winners are
// marked.
func renderTable(w io.Writer, hands []poker.Hand, scores []poker.Score, winners []int) error {
	isWinner := make(map[int]bool, len(winners))
	for _, i := range winners {
		isWinner[i] = true
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("#"),
		headerStyle.Render("hand"),
		headerStyle.Render("category"),
		headerStyle.Render("payload"),
		headerStyle.Render(""))

	for i, h := range hands {
		mark := ""
		if isWinner[i] {
			mark = winStyle.Render("best")
			if len(winners) > 1 {
				mark = tieStyle.Render("tie")
			}
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			i+1,
			handStyle.Render(h.String()),
			categoryStyle.Render(scores[i].Category.String()),
			formatPayload(scores[i].Payload()),
			mark)
	}
	return tw.Flush()
}

// renderBest writes the selected hand and any hands tied with it
func renderBest(w io.Writer, hands []poker.Hand, best int, winners []int, score poker.Score) {
	fmt.Fprintf(w, "%s %s  %s\n",
		headerStyle.Render("best:"),
		handStyle.Render(hands[best].String()),
		categoryStyle.Render(score.String()))

	if len(winners) > 1 {
		tied := make([]string, 0, len(winners)-1)
		for _, i := range winners {
			if i != best {
				tied = append(tied, fmt.Sprintf("#%d %s", i+1, hands[i]))
			}
		}
		fmt.Fprintf(w, "%s %s\n", tieStyle.Render("tied:"), strings.Join(tied, ", "))
	}
}

func renderDump(w io.Writer, scores []poker.Score) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, litter.Sdump(scores))
}
