package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/user/hip/internal/api"
	"github.com/user/hip/internal/bookmarks"
	"github.com/user/hip/internal/quiz"
	"github.com/user/hip/internal/storage"
)

type fakeFetcher struct {
	resp *quiz.Response
	err  error
}

func (f fakeFetcher) FetchQuiz(ctx context.Context, params api.QuizParams) (*quiz.Response, error) {
	return f.resp, f.err
}

func testQuestions() []quiz.Question {
	return []quiz.Question{
		{ID: "q1", Question: "In which year?", Options: []quiz.Option{"1965", "1969"}, Correct: 1969},
		{ID: "q2", Question: "In which year?", Options: []quiz.Option{"1989", "1991"}, Correct: 1989},
	}
}

func newTestModel(f api.QuizFetcher) model {
	bm := bookmarks.NewStore(storage.NewMemory(), nil)
	return initialModel(f, bm, "03-07", 5, 0)
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestInitialStateIsLoading(t *testing.T) {
	m := newTestModel(fakeFetcher{})
	if m.state != stateLoading {
		t.Error("expected loading state on init")
	}
	if !strings.Contains(m.View(), "Loading quiz...") {
		t.Error("loading view missing loading text")
	}
}

func TestFetchFailureShowsFixedMessage(t *testing.T) {
	m := newTestModel(fakeFetcher{err: errors.New("connection refused")})

	newModel, _ := m.Update(m.loadQuiz())
	m = newModel.(model)

	if m.state != stateFailed {
		t.Fatal("expected failed state after fetch error")
	}
	if !strings.Contains(m.View(), LoadFailedNotice) {
		t.Errorf("failed view missing %q", LoadFailedNotice)
	}
}

func TestFetchSuccessRendersQuestions(t *testing.T) {
	m := newTestModel(fakeFetcher{resp: &quiz.Response{Questions: testQuestions()}})

	newModel, _ := m.Update(m.loadQuiz())
	m = newModel.(model)

	if m.state != stateReady {
		t.Fatal("expected ready state after fetch")
	}
	view := m.View()
	if !strings.Contains(view, "1. In which year?") {
		t.Error("view missing first question title")
	}
	if !strings.Contains(view, "1969") {
		t.Error("view missing option label")
	}
}

func TestEmptyQuizShowsNotice(t *testing.T) {
	m := newTestModel(fakeFetcher{resp: &quiz.Response{Questions: []quiz.Question{}}})

	newModel, _ := m.Update(m.loadQuiz())
	m = newModel.(model)

	if !strings.Contains(m.View(), quiz.NoQuestionsNotice) {
		t.Errorf("view missing %q", quiz.NoQuestionsNotice)
	}
}

func TestSelectAndSubmitScores(t *testing.T) {
	m := newTestModel(fakeFetcher{resp: &quiz.Response{Questions: testQuestions()}})
	newModel, _ := m.Update(m.loadQuiz())
	m = newModel.(model)

	// Select the correct option for each question: move to option two of
	// question one, select, then move into question two and select its
	// first option.
	steps := []tea.KeyMsg{key('j'), key('x'), key('j'), key('x')}
	for _, msg := range steps {
		newModel, _ = m.Update(msg)
		m = newModel.(model)
	}

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(model)

	if len(m.results) != 1 {
		t.Fatalf("got %d results after submit, want 1", len(m.results))
	}
	if m.results[0].Score != 2 {
		t.Errorf("score = %d, want 2", m.results[0].Score)
	}
	if !strings.Contains(m.View(), "Score: 2 / 2") {
		t.Error("view missing result card")
	}
}

func TestResubmitAppendsAnotherResult(t *testing.T) {
	m := newTestModel(fakeFetcher{resp: &quiz.Response{Questions: testQuestions()}})
	newModel, _ := m.Update(m.loadQuiz())
	m = newModel.(model)

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(model)
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(model)

	if len(m.results) != 2 {
		t.Errorf("got %d results after two submits, want 2", len(m.results))
	}
}

func TestReloadReturnsToLoading(t *testing.T) {
	m := newTestModel(fakeFetcher{resp: &quiz.Response{Questions: testQuestions()}})
	newModel, _ := m.Update(m.loadQuiz())
	m = newModel.(model)

	newModel, cmd := m.Update(key('r'))
	m = newModel.(model)

	if m.state != stateLoading {
		t.Error("expected loading state after reload")
	}
	if cmd == nil {
		t.Error("expected a reload command")
	}
}

func TestTabSwitchesToBookmarks(t *testing.T) {
	m := newTestModel(fakeFetcher{resp: &quiz.Response{Questions: testQuestions()}})

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = newModel.(model)

	if m.screen != screenBookmarks {
		t.Error("expected bookmarks screen after tab")
	}
	if cmd == nil {
		t.Error("expected a bookmarks load command")
	}
}

func TestCursorMoveWithZeroOptionQuestions(t *testing.T) {
	// The API shape permits questions with an empty options list; the
	// cursor must degrade instead of spinning on them.
	questions := []quiz.Question{
		{ID: "q1", Question: "In which year?", Options: []quiz.Option{}, Correct: 1969},
		{ID: "q2", Question: "In which year?", Options: []quiz.Option{}, Correct: 1989},
	}
	m := newTestModel(fakeFetcher{resp: &quiz.Response{Questions: questions}})
	newModel, _ := m.Update(m.loadQuiz())
	m = newModel.(model)

	done := make(chan model, 1)
	go func() {
		for _, msg := range []tea.KeyMsg{key('j'), key('k')} {
			nm, _ := m.Update(msg)
			m = nm.(model)
		}
		done <- m
	}()

	select {
	case m = <-done:
	case <-time.After(time.Second):
		t.Fatal("cursor move did not return with zero-option questions")
	}
	if m.qIdx != 0 || m.oIdx != 0 {
		t.Errorf("cursor = (%d, %d), want (0, 0)", m.qIdx, m.oIdx)
	}
}

func TestCursorSkipsZeroOptionQuestion(t *testing.T) {
	questions := []quiz.Question{
		{ID: "q1", Question: "In which year?", Options: []quiz.Option{"1965", "1969"}, Correct: 1969},
		{ID: "q2", Question: "In which year?", Options: []quiz.Option{}, Correct: 1989},
		{ID: "q3", Question: "In which year?", Options: []quiz.Option{"1903", "1910"}, Correct: 1903},
	}
	m := newTestModel(fakeFetcher{resp: &quiz.Response{Questions: questions}})
	newModel, _ := m.Update(m.loadQuiz())
	m = newModel.(model)

	// Two moves from the top of question one land on question three,
	// flowing over the optionless question two.
	for _, msg := range []tea.KeyMsg{key('j'), key('j')} {
		newModel, _ = m.Update(msg)
		m = newModel.(model)
	}
	if m.qIdx != 2 || m.oIdx != 0 {
		t.Errorf("cursor = (%d, %d), want (2, 0)", m.qIdx, m.oIdx)
	}

	// And one move back returns to the last option of question one.
	newModel, _ = m.Update(key('k'))
	m = newModel.(model)
	if m.qIdx != 0 || m.oIdx != 1 {
		t.Errorf("cursor = (%d, %d), want (0, 1)", m.qIdx, m.oIdx)
	}
}

type failingDeleteKV struct {
	*storage.Memory
}

func (f failingDeleteKV) Delete(key string) error {
	return errors.New("disk I/O error")
}

func TestClearFailureSurfacedInListTitle(t *testing.T) {
	bm := bookmarks.NewStore(failingDeleteKV{storage.NewMemory()}, nil)
	m := initialModel(fakeFetcher{}, bm, "03-07", 5, 0)
	m.screen = screenBookmarks

	newModel, _ := m.Update(key('C'))
	m = newModel.(model)

	if !strings.Contains(m.list.Title, "clear failed") {
		t.Errorf("list title = %q, want clear failure feedback", m.list.Title)
	}
}

func TestQuitFromQuizScreen(t *testing.T) {
	m := newTestModel(fakeFetcher{})
	_, cmd := m.Update(key('q'))
	if cmd == nil {
		t.Error("expected quit command when pressing q")
	}
}
