package quiz

import (
	"errors"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jbarrault/lexiq/internal/card"
)

// ErrNoQuestions is returned by Start when the filtered card pool yields no
// usable questions. The session stays in setup; nothing is corrupted.
var ErrNoQuestions = errors.New("no questions available with these settings")

// State is the session lifecycle phase.
type State int

const (
	// StateSetup is the initial phase: settings editable, no questions.
	StateSetup State = iota

	// StateRunning is the active quiz.
	StateRunning

	// StateResults is terminal until an explicit Reset.
	StateResults
)

// AnswerRecord captures one submission. Records are append-only; nothing
// mutates them after creation.
type AnswerRecord struct {
	QuestionID    string
	Input         string
	CorrectAnswer string
	Correct       bool
	ResponseTime  time.Duration
	HintUsed      bool

	// TimeLeft is the countdown value (seconds) at submission.
	TimeLeft int
}

// AnswerEvent is the analytics payload emitted once per submission.
type AnswerEvent struct {
	CardID         string
	Correct        bool
	ResponseTimeMs int
	Mode           Mode
}

// Session owns one run of the quiz state machine. It is not safe for
// concurrent use: the caller must serialize timer ticks and input events
// onto a single goroutine (the Bubble Tea update loop does this for the
// TUI), which is what guarantees a tick-driven auto-submit and a manual
// submit can never both fire for the same question.
type Session struct {
	// ID identifies this session in emitted events.
	ID string

	// OnAnswer, when set, fires once per submission.
	OnAnswer func(AnswerEvent)

	// OnComplete, when set, fires once on the transition to results.
	OnComplete func(Summary)

	settings Settings
	cards    []card.Card
	stats    card.StatMap
	gen      *Generator
	rng      *rand.Rand
	now      func() time.Time

	state     State
	questions []*Question
	answers   []AnswerRecord
	current   int
	score     int
	streak    int
	maxStreak int
	hintsUsed int
	hintShown bool
	timeLeft  int

	startTime     time.Time
	questionStart time.Time
	summary       *Summary
}

// New creates a session in the setup state over a read-only snapshot of the
// card pool and performance stats. Stat changes made externally after this
// point do not affect the session.
func New(cards []card.Card, stats card.StatMap, settings Settings) *Session {
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	return NewWithRand(cards, stats, settings, rng, time.Now)
}

// NewWithRand is New with an injected random source and clock, for
// deterministic tests.
func NewWithRand(cards []card.Card, stats card.StatMap, settings Settings, rng *rand.Rand, now func() time.Time) *Session {
	return &Session{
		ID:       uuid.New().String(),
		settings: settings,
		cards:    cards,
		stats:    stats,
		gen:      NewGenerator(cards, stats, settings.Adaptive, rng),
		rng:      rng,
		now:      now,
		state:    StateSetup,
	}
}

// State returns the current lifecycle phase.
func (s *Session) State() State { return s.state }

// Settings returns the settings the session was started with.
func (s *Session) Settings() Settings { return s.settings }

// Start materializes the question list and enters the running state.
// Cards that cannot produce a question are dropped, so the realized count
// may be below the requested one. Returns ErrNoQuestions (and stays in
// setup) when nothing survives the filters.
func (s *Session) Start() error {
	if s.state == StateRunning {
		return errors.New("session already running")
	}

	pool := s.filterCards()
	if len(pool) > s.settings.QuestionCount && s.settings.QuestionCount > 0 {
		pool = pool[:s.settings.QuestionCount]
	}
	s.orderCards(pool)

	var questions []*Question
	for i, c := range pool {
		if q := s.gen.Generate(c, i, s.settings.QuestionType); q != nil {
			questions = append(questions, q)
		}
	}
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	s.questions = questions
	s.answers = nil
	s.current = 0
	s.score = 0
	s.streak = 0
	s.maxStreak = 0
	s.hintsUsed = 0
	s.hintShown = false
	s.timeLeft = s.settings.TimeLimit
	s.startTime = s.now()
	s.questionStart = s.startTime
	s.summary = nil
	s.state = StateRunning
	return nil
}

// filterCards applies the difficulty and tag filters to the card snapshot.
func (s *Session) filterCards() []card.Card {
	var pool []card.Card
	for _, c := range s.cards {
		if s.settings.Difficulty != DifficultyMixed && s.settings.Difficulty != "" {
			d := c.Difficulty
			if d == "" {
				d = card.DifficultyMedium
			}
			if string(d) != s.settings.Difficulty {
				continue
			}
		}
		if len(s.settings.IncludeTags) > 0 && !hasAnyTag(c, s.settings.IncludeTags) {
			continue
		}
		pool = append(pool, c)
	}
	return pool
}

func hasAnyTag(c card.Card, tags []string) bool {
	for _, t := range tags {
		if c.HasTag(t) {
			return true
		}
	}
	return false
}

// orderCards arranges the realized pool: progressive mode sorts easy to
// hard (shuffling within each band when enabled), other modes shuffle the
// whole pool when enabled.
func (s *Session) orderCards(pool []card.Card) {
	if s.settings.ShuffleQuestions {
		s.rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
	}
	if s.settings.Mode == ModeProgressive {
		sort.SliceStable(pool, func(i, j int) bool {
			return difficultyRank(pool[i].Difficulty) < difficultyRank(pool[j].Difficulty)
		})
	}
}

func difficultyRank(d card.Difficulty) int {
	switch d {
	case card.DifficultyEasy:
		return 0
	case card.DifficultyHard:
		return 2
	default:
		// Untagged cards count as medium.
		return 1
	}
}

// Current returns the active question, or nil outside the running state.
func (s *Session) Current() *Question {
	if s.state != StateRunning || s.current >= len(s.questions) {
		return nil
	}
	return s.questions[s.current]
}

// Index returns the zero-based position of the active question.
func (s *Session) Index() int { return s.current }

// Questions returns the realized question list.
func (s *Session) Questions() []*Question { return s.questions }

// Answers returns the submissions recorded so far.
func (s *Session) Answers() []AnswerRecord { return s.answers }

// Score returns the running score.
func (s *Session) Score() int { return s.score }

// Streak returns the current consecutive-correct count.
func (s *Session) Streak() int { return s.streak }

// MaxStreak returns the longest streak observed this session.
func (s *Session) MaxStreak() int { return s.maxStreak }

// HintsUsed returns the session-wide hint count.
func (s *Session) HintsUsed() int { return s.hintsUsed }

// HintShown reports whether the active question's hint is revealed.
func (s *Session) HintShown() bool { return s.hintShown }

// TimeLeft returns the countdown value for the active question, in seconds.
func (s *Session) TimeLeft() int { return s.timeLeft }

// RevealHint shows the active question's hint. Only the first reveal per
// question counts toward the hint total and the scoring malus.
func (s *Session) RevealHint() {
	if s.state != StateRunning || s.hintShown {
		return
	}
	s.hintShown = true
	s.hintsUsed++
}

// Tick advances the per-question countdown by one second and reports
// whether it reached zero. The caller submits the pending input when it
// does; the countdown itself resets on question advance. Ticks are ignored
// outside the running state and in untimed mode.
func (s *Session) Tick() (expired bool) {
	if s.state != StateRunning || !s.settings.Timed() {
		return false
	}
	if s.timeLeft > 0 {
		s.timeLeft--
	}
	return s.timeLeft == 0
}

// Submit evaluates the learner's input for the active question, records the
// answer, emits the analytics event, and advances — to the next question,
// or to results when this was the last one (or a survival miss).
func (s *Session) Submit(input string) (AnswerRecord, bool) {
	q := s.Current()
	if q == nil {
		return AnswerRecord{}, false
	}

	correct := s.checkAnswer(input, q)
	rec := AnswerRecord{
		QuestionID:    q.ID,
		Input:         input,
		CorrectAnswer: q.CorrectAnswer,
		Correct:       correct,
		ResponseTime:  s.now().Sub(s.questionStart),
		HintUsed:      s.hintShown,
		TimeLeft:      s.timeLeft,
	}
	s.answers = append(s.answers, rec)

	if correct {
		s.streak++
		if s.streak > s.maxStreak {
			s.maxStreak = s.streak
		}
		s.score += Score(rec, s.streak, s.settings.TimeLimit)
	} else {
		s.streak = 0
	}

	if s.OnAnswer != nil {
		s.OnAnswer(AnswerEvent{
			CardID:         q.CardID,
			Correct:        correct,
			ResponseTimeMs: int(rec.ResponseTime.Milliseconds()),
			Mode:           s.settings.Mode,
		})
	}

	if s.settings.Mode == ModeSurvival && !correct {
		s.finish()
		return rec, true
	}
	if s.current+1 >= len(s.questions) {
		s.finish()
		return rec, true
	}

	s.current++
	s.hintShown = false
	s.timeLeft = s.settings.TimeLimit
	s.questionStart = s.now()
	return rec, true
}

// checkAnswer applies the per-type correctness rule: exact equality for
// multiple-choice, the fuzzy rule for everything else.
func (s *Session) checkAnswer(input string, q *Question) bool {
	if q.Type == TypeMultipleChoice {
		return input == q.CorrectAnswer
	}
	return AcceptAnswer(input, q.CorrectAnswer)
}

// Finish ends the session early from the running state, aggregating
// whatever has been answered so far.
func (s *Session) Finish() {
	if s.state != StateRunning {
		return
	}
	s.finish()
}

func (s *Session) finish() {
	s.state = StateResults
	sum := s.buildSummary()
	s.summary = &sum
	if s.OnComplete != nil {
		s.OnComplete(sum)
	}
}

// Summary returns the aggregated results, or nil before the session has
// finished.
func (s *Session) Summary() *Summary { return s.summary }

// Reset discards all run state and returns to setup so the session can be
// restarted, optionally with new settings applied via ApplySettings.
func (s *Session) Reset() {
	s.questions = nil
	s.answers = nil
	s.current = 0
	s.score = 0
	s.streak = 0
	s.maxStreak = 0
	s.hintsUsed = 0
	s.hintShown = false
	s.timeLeft = 0
	s.summary = nil
	s.state = StateSetup
}

// ApplySettings replaces the settings while in setup. Ignored mid-run.
func (s *Session) ApplySettings(settings Settings) {
	if s.state != StateSetup {
		return
	}
	s.settings = settings
	s.gen = NewGenerator(s.cards, s.stats, settings.Adaptive, s.rng)
}
