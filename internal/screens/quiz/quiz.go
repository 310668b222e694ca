// Package quiz is the active-quiz screen: it drives the session state
// machine from terminal input and the 1-second timer tick.
package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	engine "github.com/jbarrault/lexiq/internal/quiz"
	"github.com/jbarrault/lexiq/internal/router"
	"github.com/jbarrault/lexiq/internal/screen"
	"github.com/jbarrault/lexiq/internal/screens/summary"
	"github.com/jbarrault/lexiq/internal/store"
	"github.com/jbarrault/lexiq/internal/ui/components"
	"github.com/jbarrault/lexiq/internal/ui/layout"
)

// feedbackDelay is how long the correct/incorrect overlay stays before
// the next question. Any key skips it.
const feedbackDelay = 1500 * time.Millisecond

// QuizScreen implements screen.Screen for a running session.
type QuizScreen struct {
	session *engine.Session
	st      *store.Store

	input    components.TextInput
	mc       components.MultiChoice
	mcActive bool

	showingFeedback    bool
	showingQuitConfirm bool
	lastRecord         engine.AnswerRecord
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New wraps an already-started session. Answer and completion events are
// persisted through the store as they happen, so quitting mid-quiz loses
// nothing already answered.
func New(session *engine.Session, st *store.Store) *QuizScreen {
	s := &QuizScreen{session: session, st: st}

	if st != nil {
		ctx := context.Background()
		session.OnAnswer = func(ev engine.AnswerEvent) {
			_ = st.RecordAnswer(ctx, session.ID, ev)
		}
		session.OnComplete = func(sum engine.Summary) {
			_ = st.RecordSession(ctx, session.ID, sum)
		}
	}

	s.prepareQuestion()
	return s
}

// HandlesEsc marks that Esc opens the quit confirm instead of popping.
func (s *QuizScreen) HandlesEsc() {}

func (s *QuizScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.input.Init()}
	if s.session.Settings().Timed() {
		cmds = append(cmds, tickCmd())
	}
	return tea.Batch(cmds...)
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Tab", Description: "Hint"},
		{Key: "Esc", Description: "Quit"},
	}
	if s.mcActive {
		hints[0] = layout.KeyHint{Key: "1-4", Description: "Answer"}
	}
	return hints
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick()

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.answering() && !s.mcActive {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// answering reports whether keystrokes currently edit an answer.
func (s *QuizScreen) answering() bool {
	return s.session.State() == engine.StateRunning &&
		!s.showingFeedback && !s.showingQuitConfirm
}

func (s *QuizScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.session.State() != engine.StateRunning {
		return s, nil
	}

	// The countdown pauses while feedback or the quit confirm is up.
	if s.showingFeedback || s.showingQuitConfirm {
		return s, tickCmd()
	}

	if s.session.Tick() {
		// Time up: whatever is typed or selected is the answer.
		return s.submit()
	}
	return s, tickCmd()
}

func (s *QuizScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if !s.showingFeedback {
		return s, nil
	}
	s.showingFeedback = false

	if s.session.State() == engine.StateResults {
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(s.session)}
		}
	}

	s.prepareQuestion()
	return s, s.input.Init()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			s.session.Finish()
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: summary.New(s.session)}
			}
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.showingFeedback {
		return s.handleFeedbackDone()
	}

	if s.session.State() != engine.StateRunning {
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "tab":
		s.session.RevealHint()
		return s, nil
	case "enter":
		return s.submit()
	}

	if s.mcActive {
		switch key {
		case "1", "2", "3", "4":
			idx := int(key[0] - '1')
			if idx < len(s.mc.Choices) {
				s.mc.Selected = idx
				return s.submit()
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit feeds the pending answer into the session and shows feedback.
func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	var answer string
	if s.mcActive {
		answer = s.mc.Value()
	} else {
		answer = s.input.Value()
	}

	rec, ok := s.session.Submit(answer)
	if !ok {
		return s, nil
	}

	s.lastRecord = rec
	s.showingFeedback = true
	return s, tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}

// prepareQuestion resets the input widgets for the active question.
func (s *QuizScreen) prepareQuestion() {
	q := s.session.Current()
	if q == nil {
		return
	}
	if q.Type == engine.TypeMultipleChoice {
		s.mcActive = true
		s.mc = components.NewMultiChoice(q.Options)
	} else {
		s.mcActive = false
		s.input = components.NewTextInput("Type your answer...", 60)
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
