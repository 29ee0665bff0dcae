package session

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/tft-notebook/internal/orchestrators/notebook"
)

type command struct {
	usage   string
	help    string
	minArgs int
	// maxArgs of -1 means unbounded
	maxArgs int
	run     func(ctx context.Context, h *Handler, args []string) (bool, error)
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"select": {
			usage: "select <champion>", help: "focus a champion",
			minArgs: 1, maxArgs: 1, run: runSelect,
		},
		"assign": {
			usage: "assign <item>", help: "add an item to the focused champion",
			minArgs: 1, maxArgs: 1, run: runAssign,
		},
		"remove": {
			usage: "remove [champion] <item>", help: "take the first matching item off a champion",
			minArgs: 1, maxArgs: 2, run: runRemove,
		},
		"clear": {
			usage: "clear [champion]", help: "remove every item from a champion",
			minArgs: 0, maxArgs: 1, run: runClear,
		},
		"add": {
			usage: "add <component>", help: "count one more of a component",
			minArgs: 1, maxArgs: 1, run: adjust(1),
		},
		"sub": {
			usage: "sub <component>", help: "count one less of a component",
			minArgs: 1, maxArgs: 1, run: adjust(-1),
		},
		"save": {
			usage: "save", help: "write the builds to storage",
			run: runSave,
		},
		"screen": {
			usage: "screen <builder|determiner>", help: "switch screen",
			minArgs: 1, maxArgs: 1, run: runScreen,
		},
		"sort": {
			usage: "sort <roster|name|cost|score>", help: "change the champion order",
			minArgs: 1, maxArgs: 1, run: runSort,
		},
		"show": {
			usage: "show", help: "redraw the current screen",
			run: func(_ context.Context, h *Handler, _ []string) (bool, error) {
				h.render.screen(h.service)
				return false, nil
			},
		},
		"champions": {
			usage: "champions", help: "list champions in the current order",
			run: func(_ context.Context, h *Handler, _ []string) (bool, error) {
				h.render.champions(h.service.Champions())
				return false, nil
			},
		},
		"items": {
			usage: "items", help: "list completed items",
			run: func(_ context.Context, h *Handler, _ []string) (bool, error) {
				h.render.items(h.service.Items())
				return false, nil
			},
		},
		"components": {
			usage: "components", help: "list component counts",
			run: func(_ context.Context, h *Handler, _ []string) (bool, error) {
				h.render.components(h.service.Components())
				return false, nil
			},
		},
		"rank": {
			usage: "rank", help: "rank champions against the component counts",
			run: func(_ context.Context, h *Handler, _ []string) (bool, error) {
				h.render.ranking(h.service.Ranked())
				return false, nil
			},
		},
		"help": {
			usage: "help", help: "show this list",
			run: runHelp,
		},
		"quit": {
			usage: "quit", help: "leave without saving",
			run: func(context.Context, *Handler, []string) (bool, error) { return true, nil },
		},
	}
	commands["exit"] = commands["quit"]
}

func runSelect(ctx context.Context, h *Handler, args []string) (bool, error) {
	out, err := h.service.SelectChampion(ctx, &notebook.SelectChampionInput{Champion: args[0]})
	if err != nil {
		return false, err
	}
	fmt.Fprintf(h.out, "selected %s\n", out.State)
	return false, nil
}

func runAssign(ctx context.Context, h *Handler, args []string) (bool, error) {
	out, err := h.service.AssignItem(ctx, &notebook.AssignItemInput{Item: args[0]})
	if err != nil {
		return false, err
	}
	fmt.Fprintln(h.out, out.State)
	return false, nil
}

func runRemove(ctx context.Context, h *Handler, args []string) (bool, error) {
	input := &notebook.RemoveItemInput{Item: args[len(args)-1]}
	if len(args) == 2 {
		input.Champion = args[0]
	}

	out, err := h.service.RemoveItem(ctx, input)
	if err != nil {
		return false, err
	}
	if !out.Removed {
		fmt.Fprintf(h.out, "%s has no %s\n", out.State.Champion.Name, input.Item)
		return false, nil
	}
	fmt.Fprintln(h.out, out.State)
	return false, nil
}

func runClear(ctx context.Context, h *Handler, args []string) (bool, error) {
	input := &notebook.ClearItemsInput{}
	if len(args) == 1 {
		input.Champion = args[0]
	}

	out, err := h.service.ClearItems(ctx, input)
	if err != nil {
		return false, err
	}
	fmt.Fprintln(h.out, out.State)
	return false, nil
}

func adjust(delta int) func(context.Context, *Handler, []string) (bool, error) {
	return func(ctx context.Context, h *Handler, args []string) (bool, error) {
		out, err := h.service.AdjustComponent(ctx, &notebook.AdjustComponentInput{Component: args[0], Delta: delta})
		if err != nil {
			return false, err
		}
		fmt.Fprintf(h.out, "%s: %d\n", out.State.Component.Name, out.State.Count)
		return false, nil
	}
}

func runSave(ctx context.Context, h *Handler, _ []string) (bool, error) {
	out, err := h.service.Save(ctx, &notebook.SaveInput{})
	if err != nil {
		return false, err
	}
	fmt.Fprintf(h.out, "saved %d champions to %s\n", out.Champions, out.Location)
	return false, nil
}

func runScreen(ctx context.Context, h *Handler, args []string) (bool, error) {
	if _, err := h.service.SwitchScreen(ctx, &notebook.SwitchScreenInput{Screen: notebook.Screen(args[0])}); err != nil {
		return false, err
	}
	h.render.screen(h.service)
	return false, nil
}

func runSort(ctx context.Context, h *Handler, args []string) (bool, error) {
	if _, err := h.service.SetSortOrder(ctx, &notebook.SetSortOrderInput{Order: notebook.SortOrder(args[0])}); err != nil {
		return false, err
	}
	h.render.champions(h.service.Champions())
	return false, nil
}

func runHelp(_ context.Context, h *Handler, _ []string) (bool, error) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		if name == "exit" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	width := 0
	for _, name := range names {
		width = max(width, len(commands[name].usage))
	}
	for _, name := range names {
		cmd := commands[name]
		fmt.Fprintf(h.out, "  %s%s  %s\n", cmd.usage, strings.Repeat(" ", width-len(cmd.usage)), cmd.help)
	}
	return false, nil
}
