package summary

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/jbarrault/lexiq/internal/card"
	engine "github.com/jbarrault/lexiq/internal/quiz"
)

func finishedSession(t *testing.T) *engine.Session {
	t.Helper()

	cards := []card.Card{
		{ID: "c1", Source: "chien", Translations: map[string]string{"en": "dog"}},
		{ID: "c2", Source: "chat", Translations: map[string]string{"en": "cat"}},
	}
	settings := engine.DefaultSettings()
	settings.QuestionCount = 2
	settings.ShuffleQuestions = false

	rng := rand.New(rand.NewPCG(1, 2))
	s := engine.NewWithRand(cards, card.StatMap{}, settings, rng, time.Now)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.Submit(s.Current().CorrectAnswer)
	s.Submit("wrong")
	return s
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(finishedSession(t))
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(finishedSession(t))
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	if !strings.Contains(view, "Correct: 1/2") {
		t.Errorf("expected correct count in view, got:\n%s", view)
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(finishedSession(t))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(finishedSession(t))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(finishedSession(t))
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
