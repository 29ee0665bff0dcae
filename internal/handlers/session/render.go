package session

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/KirkDiggler/tft-notebook/internal/entities/tft"
	"github.com/KirkDiggler/tft-notebook/internal/orchestrators/notebook"
	"github.com/KirkDiggler/tft-notebook/internal/ranking"
)

type renderer struct {
	out io.Writer
}

func (r *renderer) table(header []string, rows [][]string) {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()
}

// screen draws the active screen: the focused build on the builder, the
// component counts and ranking on the determiner
func (r *renderer) screen(svc notebook.Service) {
	fmt.Fprintf(r.out, "[%s] %s\n", svc.Screen(), svc.SetName())

	switch svc.Screen() {
	case notebook.ScreenBuilder:
		if state, ok := svc.Focused(); ok {
			fmt.Fprintf(r.out, "focused: %s\n", state)
		} else {
			fmt.Fprintln(r.out, "focused: none (use select <champion>)")
		}
		r.champions(svc.Champions())
	default:
		r.components(svc.Components())
		r.ranking(svc.Ranked())
	}
}

func (r *renderer) champions(results []ranking.Result) {
	rows := make([][]string, len(results))
	for i, res := range results {
		champ := res.State.Champion
		rows[i] = []string{
			champ.Name,
			strconv.Itoa(champ.Cost),
			strings.Join(champ.Traits, ", "),
			tft.JoinNames(res.State.Items),
			strconv.Itoa(res.Score),
		}
	}
	r.table([]string{"Champion", "Cost", "Traits", "Items", "Score"}, rows)
}

func (r *renderer) items(items []tft.Item) {
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = []string{item.Name, item.APIName, strings.Join(item.Composition, " + ")}
	}
	r.table([]string{"Item", "ID", "Components"}, rows)
}

func (r *renderer) components(states []tft.ComponentState) {
	rows := make([][]string, len(states))
	for i, state := range states {
		rows[i] = []string{state.Component.Name, strconv.Itoa(state.Count)}
	}
	r.table([]string{"Component", "Count"}, rows)
}

func (r *renderer) ranking(results []ranking.Result) {
	rows := make([][]string, len(results))
	for i, res := range results {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			res.State.Champion.Name,
			strconv.Itoa(res.Score),
			tft.JoinNames(res.State.Items),
		}
	}
	r.table([]string{"#", "Champion", "Score", "Items"}, rows)
}
