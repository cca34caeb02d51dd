package terminal

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/samtupy/toga/pkg/backend"
)

// toggle renders a boolean switch as "[x] label".
type toggle struct {
	sheet   *styles
	text    string
	value   bool
	enabled bool
	client  backend.SwitchClient
}

func (t *toggle) SetEnabled(enabled bool) { t.enabled = enabled }

func (t *toggle) SetLabel(label string) { t.text = label }

func (t *toggle) SetValue(value bool) { t.value = value }

func (t *toggle) Value() bool { return t.value }

func (t *toggle) SetClient(client backend.SwitchClient) { t.client = client }

func (t *toggle) acceptsFocus() bool { return t.enabled }

func (t *toggle) handleKey(msg tea.KeyMsg) {
	switch msg.String() {
	case " ", "enter":
		t.value = !t.value
		if t.client != nil {
			t.client.UserToggled(t.value)
		}
	}
}

func (t *toggle) render(focused bool) string {
	box := "[ ]"
	if t.value {
		box = "[x]"
	}
	return t.sheet.toggle.Render(cursorFor(focused) + box + " " + t.text)
}

// label renders static text.
type label struct {
	sheet *styles
	text  string
}

func (l *label) SetEnabled(bool) {}

func (l *label) SetText(text string) { l.text = text }

func (l *label) render(bool) string {
	return l.sheet.label.Render(l.text)
}
