package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# burrow

## Panels

| key | action |
|-----|--------|
| 1 / 2 / 3 | workspaces / archived / tasks panel |
| enter | open workspace (workspace panel) |
| esc, backspace | back |

## Lists

| key | action |
|-----|--------|
| j / k | move down / up |
| g / G | jump to top / bottom |
| a | add item |
| i | add child of selection |
| r | rename selection |
| d | delete selection (asks first) |

## Workspaces

| key | action |
|-----|--------|
| x | archive |
| u | recover (archived panel) |

## Tasks

| key | action |
|-----|--------|
| space, enter | cycle status |
| t | set due date (` + "`YYYY-MM-DD`" + ` or ` + "`3 days`" + `, ` + "`2 weeks`" + `, ` + "`1 month`" + `) |
| T | clear due date |

## Other

| key | action |
|-----|--------|
| / | search |
| w, ctrl+s | save |
| ? | this help |
| q | save and quit |

Press any key to close.
`

var (
	helpMu sync.Mutex
	// Cache renderers by wrap width + style. Creating a renderer with
	// WithAutoStyle can trigger terminal capability queries that may block
	// on some terminals, so we pick the style ourselves and reuse.
	helpRenderers = map[string]*glamour.TermRenderer{}
)

func renderHelp(width int) string {
	if width < 20 {
		width = 20
	}
	wrap := width - 2
	if wrap > 78 {
		wrap = 78
	}

	style := markdownStyle()
	key := fmt.Sprintf("%s:%d", style, wrap)

	helpMu.Lock()
	r := helpRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			helpMu.Unlock()
			return helpMarkdown
		}
		helpRenderers[key] = rr
		r = rr
	}
	helpMu.Unlock()

	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimRight(out, "\n")
}
