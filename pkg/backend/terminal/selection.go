package terminal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/samtupy/toga/pkg/backend"
)

// selection renders an ordered list of titles with one highlighted row.
type selection struct {
	sheet    *styles
	titles   []string
	selected int
	enabled  bool
	client   backend.SelectionClient
}

func (s *selection) SetEnabled(enabled bool) { s.enabled = enabled }

func (s *selection) Rebuild(titles []string) {
	s.titles = append([]string(nil), titles...)
}

func (s *selection) InsertAt(index int, title string) {
	s.titles = append(s.titles, "")
	copy(s.titles[index+1:], s.titles[index:])
	s.titles[index] = title
	if s.selected >= index {
		s.selected++
	}
}

func (s *selection) RemoveAt(index int) {
	s.titles = append(s.titles[:index], s.titles[index+1:]...)
	if s.selected == index {
		s.selected = -1
	} else if s.selected > index {
		s.selected--
	}
}

func (s *selection) UpdateTitleAt(index int, title string) {
	s.titles[index] = title
}

func (s *selection) SelectedIndex() int { return s.selected }

func (s *selection) SelectIndex(index int) { s.selected = index }

func (s *selection) SetClient(client backend.SelectionClient) { s.client = client }

func (s *selection) acceptsFocus() bool { return s.enabled && len(s.titles) > 0 }

func (s *selection) handleKey(msg tea.KeyMsg) {
	next := s.selected
	switch msg.String() {
	case "up", "k":
		if next > 0 {
			next--
		}
	case "down", "j":
		if next < len(s.titles)-1 {
			next++
		}
	}
	if next != s.selected && s.client != nil {
		s.selected = next
		s.client.UserSelected(next)
	}
}

func (s *selection) render(focused bool) string {
	var b strings.Builder
	for i, title := range s.titles {
		line := title
		if i == s.selected {
			line = s.sheet.highlight.Render(cursorFor(focused) + line)
		} else {
			line = s.sheet.row.Render("  " + line)
		}
		b.WriteString(line)
		if i < len(s.titles)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func cursorFor(focused bool) string {
	if focused {
		return "> "
	}
	return "  "
}
