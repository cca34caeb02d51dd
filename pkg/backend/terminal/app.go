package terminal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/samtupy/toga/pkg/logging"
)

// App composes every widget the factory has created into one Bubble Tea
// model. Widgets stack vertically in creation order; tab moves keyboard
// focus between the interactive ones.
type App struct {
	title   string
	factory *Factory
	focus   int
}

// NewApp builds an app over the factory's widgets. Create all widgets
// before calling Run.
func NewApp(title string, factory *Factory) *App {
	a := &App{title: title, factory: factory, focus: -1}
	a.focusNext()
	return a
}

// Run starts the Bubble Tea program and blocks until the user quits.
func (a *App) Run() error {
	logging.Debug("starting terminal app", "title", a.title, "widgets", len(a.factory.widgets))
	_, err := tea.NewProgram(a, tea.WithAltScreen()).Run()
	return err
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "tab":
			a.focusNext()
		default:
			if w := a.focused(); w != nil {
				w.handleKey(msg)
			}
		}
	}
	return a, nil
}

func (a *App) View() string {
	var b strings.Builder
	if a.title != "" {
		b.WriteString(a.factory.sheet.heading.Render(a.title))
		b.WriteString("\n\n")
	}
	for i, w := range a.factory.widgets {
		b.WriteString(w.render(i == a.focus))
		b.WriteString("\n\n")
	}
	b.WriteString(a.factory.sheet.label.Render("tab: focus  ↑/↓: select  space: toggle  q: quit"))
	return b.String()
}

func (a *App) focused() interactive {
	if a.focus < 0 || a.focus >= len(a.factory.widgets) {
		return nil
	}
	w, ok := a.factory.widgets[a.focus].(interactive)
	if !ok {
		return nil
	}
	return w
}

// focusNext advances focus to the next widget that accepts it, wrapping
// around. Focus clears when nothing does.
func (a *App) focusNext() {
	n := len(a.factory.widgets)
	if n == 0 {
		a.focus = -1
		return
	}
	for step := 1; step <= n; step++ {
		i := (a.focus + step) % n
		if i < 0 {
			i += n
		}
		if w, ok := a.factory.widgets[i].(interactive); ok && w.acceptsFocus() {
			a.focus = i
			return
		}
	}
	a.focus = -1
}
