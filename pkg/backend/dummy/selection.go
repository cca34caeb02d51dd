package dummy

import "github.com/samtupy/toga/pkg/backend"

// Selection is the recording SelectionImpl.
type Selection struct {
	widgetImpl
	titles   []string
	selected int
	client   backend.SelectionClient
}

func newSelection() *Selection {
	return &Selection{selected: -1, widgetImpl: widgetImpl{enabled: true}}
}

func (s *Selection) Rebuild(titles []string) {
	s.titles = append([]string(nil), titles...)
	s.selected = -1
	s.record("Rebuild", "%v", titles)
}

func (s *Selection) InsertAt(index int, title string) {
	s.titles = append(s.titles, "")
	copy(s.titles[index+1:], s.titles[index:])
	s.titles[index] = title
	if s.selected >= index {
		s.selected++
	}
	s.record("InsertAt", "%d %q", index, title)
}

func (s *Selection) RemoveAt(index int) {
	s.titles = append(s.titles[:index], s.titles[index+1:]...)
	if s.selected == index {
		s.selected = -1
	} else if s.selected > index {
		s.selected--
	}
	s.record("RemoveAt", "%d", index)
}

func (s *Selection) UpdateTitleAt(index int, title string) {
	s.titles[index] = title
	s.record("UpdateTitleAt", "%d %q", index, title)
}

func (s *Selection) SelectedIndex() int {
	return s.selected
}

func (s *Selection) SelectIndex(index int) {
	s.selected = index
	s.record("SelectIndex", "%d", index)
}

func (s *Selection) SetClient(client backend.SelectionClient) {
	s.client = client
}

// Titles returns the currently displayed titles.
func (s *Selection) Titles() []string {
	return append([]string(nil), s.titles...)
}

// SelectedTitle returns the highlighted title, or "" when nothing is
// highlighted.
func (s *Selection) SelectedTitle() string {
	if s.selected < 0 || s.selected >= len(s.titles) {
		return ""
	}
	return s.titles[s.selected]
}

// SimulateSelect drives the inbound path as if the user picked the entry at
// index.
func (s *Selection) SimulateSelect(index int) {
	s.selected = index
	if s.client != nil {
		s.client.UserSelected(index)
	}
}
