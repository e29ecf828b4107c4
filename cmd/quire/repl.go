package main

import (
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/quire/core"
	"github.com/npillmayer/quire/core/locate/resources"
	"github.com/npillmayer/quire/engine/dom/xpathadapter"
	"github.com/npillmayer/quire/engine/frame/layout"
	"github.com/pterm/pterm"
)

const replHelp = `Enter an XPath expression to list the boxes of matching nodes, e.g.

    //p[@class="note"]

or one of the commands
    :width <px>   lay out the page for a new viewport width
    :boxes        print all boxes
    :help         print this message
    :quit         leave interactive mode`

// REPL starts interactive mode.
func (r *rendering) REPL() error {
	config := &readline.Config{Prompt: "quire > "}
	if hist, err := resources.CacheFile("history", "repl"); err == nil {
		config.HistoryFile = hist
	} else {
		tracer().Infof("no REPL history: %v", err)
	}
	repl, err := readline.NewEx(config)
	if err != nil {
		return core.WrapError(err, core.EIO, "cannot start interactive mode")
	}
	defer repl.Close()
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := r.execute(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
	return nil
}

func (r *rendering) execute(line string) bool {
	if !strings.HasPrefix(line, ":") {
		r.query(line)
		return false
	}
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q":
		return true
	case ":help", ":h":
		pterm.Info.Println(replHelp)
	case ":boxes":
		r.summary()
	case ":width":
		if len(fields) < 2 {
			pterm.Error.Println("usage: :width <px>")
			break
		}
		w, err := strconv.Atoi(fields[1])
		if err != nil || w < 0 {
			pterm.Error.Printf("not a valid width: %s\n", fields[1])
			break
		}
		r.relayout(w)
		pterm.Success.Printf("page height is now %s\n", r.height())
	default:
		pterm.Error.Printf("unknown command %s, try :help\n", fields[0])
	}
	return false
}

func (r *rendering) query(expr string) {
	nodes, err := xpathadapter.Select(r.page.Document, expr)
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		return
	}
	ids := layout.Query(r.tree, layout.ForNodes(r.tree, nodes...)).All()
	if len(ids) == 0 {
		pterm.Info.Printf("%d nodes, no boxes\n", len(nodes))
		return
	}
	data := [][]string{{"Box", "Kind", "x", "y", "w", "h"}}
	for _, id := range ids {
		data = append(data, geometryRow(r.tree, id))
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf("cannot print box table: %v", err)
	}
}
