package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/user/hip/internal/api"
	"github.com/user/hip/internal/bookmarks"
	"github.com/user/hip/internal/quiz"
)

// LoadFailedNotice replaces the quiz view when the fetch fails.
const LoadFailedNotice = "Could not load quiz."

type screen int

const (
	screenQuiz screen = iota
	screenBookmarks
)

type quizState int

const (
	stateLoading quizState = iota
	stateFailed
	stateReady
)

type model struct {
	fetcher api.QuizFetcher
	bmStore *bookmarks.Store
	dayKey  string
	count   int
	timeout time.Duration

	screen  screen
	state   quizState
	spinner spinner.Model

	questions  []quiz.Question
	selections quiz.Selections
	results    []quiz.Result

	// Cursor position within the quiz: question index and option index.
	qIdx, oIdx int

	list   list.Model
	width  int
	height int
}

type recordItem struct {
	record bookmarks.Record
}

func (r recordItem) Title() string       { return r.record.Title }
func (r recordItem) Description() string { return r.record.Date }
func (r recordItem) FilterValue() string { return r.record.Title + " " + r.record.Date }

func initialModel(fetcher api.QuizFetcher, bmStore *bookmarks.Store, dayKey string, count int, timeout time.Duration) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	delegate := list.NewDefaultDelegate()
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Bookmarks"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return model{
		fetcher:    fetcher,
		bmStore:    bmStore,
		dayKey:     dayKey,
		count:      count,
		timeout:    timeout,
		state:      stateLoading,
		spinner:    sp,
		selections: quiz.Selections{},
		list:       l,
	}
}

type quizMsg struct {
	resp *quiz.Response
	err  error
}

type bookmarksMsg struct {
	records []bookmarks.Record
}

type exportMsg struct {
	path string
	err  error
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadQuiz)
}

func (m model) loadQuiz() tea.Msg {
	ctx := context.Background()
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}
	resp, err := m.fetcher.FetchQuiz(ctx, api.QuizParams{DayKey: m.dayKey, Count: m.count})
	return quizMsg{resp: resp, err: err}
}

func (m model) loadBookmarks() tea.Msg {
	return bookmarksMsg{records: m.bmStore.List()}
}

func (m model) exportBookmarks() tea.Msg {
	path, err := m.bmStore.ExportToFile(".", time.Now())
	return exportMsg{path: path, err: err}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)

	case spinner.TickMsg:
		if m.state == stateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case quizMsg:
		if msg.err != nil {
			m.state = stateFailed
			return m, nil
		}
		m.state = stateReady
		m.questions = msg.resp.Questions
		m.selections = quiz.Selections{}
		m.results = nil
		m.qIdx, m.oIdx = 0, 0

	case bookmarksMsg:
		items := make([]list.Item, 0, len(msg.records))
		for _, r := range msg.records {
			items = append(items, recordItem{record: r})
		}
		m.list.SetItems(items)

	case exportMsg:
		// Export feedback shows up in the list title bar.
		if msg.err != nil {
			m.list.Title = "Bookmarks (export failed)"
		} else {
			m.list.Title = fmt.Sprintf("Bookmarks (exported to %s)", msg.path)
		}
	}

	if m.screen == screenBookmarks {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab", "b":
		if m.screen == screenQuiz {
			m.screen = screenBookmarks
			return m, m.loadBookmarks
		}
		m.screen = screenQuiz
		return m, nil
	case "r":
		if m.screen == screenQuiz {
			m.state = stateLoading
			return m, tea.Batch(m.spinner.Tick, m.loadQuiz)
		}
	}

	if m.screen == screenBookmarks {
		switch msg.String() {
		case "e":
			return m, m.exportBookmarks
		case "C":
			if err := m.bmStore.Clear(); err != nil {
				m.list.Title = "Bookmarks (clear failed)"
				return m, nil
			}
			m.list.Title = "Bookmarks"
			return m, m.loadBookmarks
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if m.state != stateReady || len(m.questions) == 0 {
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		m.advanceCursor(1)
	case "k", "up":
		m.advanceCursor(-1)
	case "n":
		m.qIdx = (m.qIdx + 1) % len(m.questions)
		m.oIdx = 0
	case "p":
		m.qIdx = (m.qIdx + len(m.questions) - 1) % len(m.questions)
		m.oIdx = 0
	case " ", "x":
		q := m.questions[m.qIdx]
		m.selections[q.ID] = m.oIdx
	case "enter", "s":
		m.results = append(m.results, quiz.Grade(m.questions, m.selections))
	}
	return m, nil
}

// advanceCursor moves the option cursor by delta, flowing across
// question boundaries in either direction. Questions with no options
// are skipped; the API does not guarantee every question has any, and
// the wrap loops below only terminate when at least one does.
func (m *model) advanceCursor(delta int) {
	total := 0
	for _, q := range m.questions {
		total += len(q.Options)
	}
	if total == 0 {
		return
	}
	m.oIdx += delta
	for m.oIdx < 0 {
		m.qIdx = (m.qIdx + len(m.questions) - 1) % len(m.questions)
		m.oIdx += len(m.questions[m.qIdx].Options)
	}
	for m.oIdx >= len(m.questions[m.qIdx].Options) {
		m.oIdx -= len(m.questions[m.qIdx].Options)
		m.qIdx = (m.qIdx + 1) % len(m.questions)
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	descStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorOn   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	resultBox  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)

func (m model) View() string {
	if m.screen == screenBookmarks {
		var b strings.Builder
		b.WriteString(m.list.View())
		b.WriteString(helpStyle.Render("[j/k]nav [e]xport [C]lear [tab]quiz [q]uit"))
		return b.String()
	}

	switch m.state {
	case stateLoading:
		return m.spinner.View() + " Loading quiz..."
	case stateFailed:
		return LoadFailedNotice + "\n\n" + helpStyle.Render("[r]etry [tab]bookmarks [q]uit")
	}

	view := quiz.BuildView(m.questions, m.selections, m.results)

	var b strings.Builder
	if view.Notice != "" {
		b.WriteString(view.Notice)
		b.WriteString("\n")
	}

	for qi, qv := range view.Questions {
		b.WriteString(titleStyle.Render(qv.Title))
		b.WriteString("\n")
		if qv.Description != "" {
			b.WriteString(descStyle.Render(qv.Description))
			b.WriteString("\n")
		}
		for oi, opt := range qv.Options {
			marker := "( )"
			if opt.Selected {
				marker = "(•)"
			}
			line := fmt.Sprintf("  %s %s", marker, opt.Label)
			if qi == m.qIdx && oi == m.oIdx {
				line = cursorOn.Render("▸" + line[1:])
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	for _, res := range view.Results {
		card := fmt.Sprintf("Score: %d / %d\nChange answers and submit again, or press r for a new quiz.", res.Score, res.Total)
		b.WriteString(resultBox.Render(card))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("[j/k]move [n/p]question [space]select [enter]submit [r]eload [tab]bookmarks [q]uit"))
	return b.String()
}

// Run starts the interactive quiz for the given day key.
func Run(fetcher api.QuizFetcher, bmStore *bookmarks.Store, dayKey string, count int, timeout time.Duration) error {
	p := tea.NewProgram(initialModel(fetcher, bmStore, dayKey, count, timeout), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
