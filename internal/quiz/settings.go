package quiz

// Mode selects the overall session flavor.
type Mode string

const (
	// ModeClassic is the standard timed flow.
	ModeClassic Mode = "classic"

	// ModeTimed emphasizes the per-question countdown; mechanically it
	// shares the classic flow.
	ModeTimed Mode = "timed"

	// ModeSurvival ends the session on the first incorrect answer.
	ModeSurvival Mode = "survival"

	// ModeProgressive orders questions easy to hard.
	ModeProgressive Mode = "progressive"

	// ModeUntimed disables the countdown. No setup surface selects it
	// today, but the engine honors it.
	ModeUntimed Mode = "untimed"
)

// QuestionType selects how a card is turned into a question.
type QuestionType string

const (
	TypeTranslation    QuestionType = "translation"
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeFillBlanks     QuestionType = "fill-blanks"

	// TypeAdaptive routes each card through the threshold selector.
	TypeAdaptive QuestionType = "adaptive"

	// TypeOpenOnly forces free recall regardless of stats.
	TypeOpenOnly QuestionType = "open-only"
)

// DifficultyMixed disables the difficulty filter.
const DifficultyMixed = "mixed"

// AdaptiveThresholds holds the two threshold groups driving the adaptive
// type selector. Values are user-editable; out-of-range values are not
// rejected, they just skew the routing.
type AdaptiveThresholds struct {
	// Multiple-choice group: a card falling below any of these gets the
	// most scaffolded format.
	MinAttemptsForMCQ  int     `json:"minAttemptsForMCQ"`
	MCQSuccessRate     float64 `json:"mcqSuccessRate"`
	MCQEase            float64 `json:"mcqEase"`
	MCQMinIntervalDays float64 `json:"mcqMinIntervalDays"`

	// Fill-blank group: below any of these (but above the MCQ bars) gets
	// partial scaffolding.
	FBSuccessRate     float64 `json:"fbSuccessRate"`
	FBEase            float64 `json:"fbEase"`
	FBMinIntervalDays float64 `json:"fbMinIntervalDays"`
}

// Settings configures one quiz session. Persisted between runs by the
// store; the engine only reads it.
type Settings struct {
	Mode             Mode               `json:"mode"`
	QuestionCount    int                `json:"questionCount"`
	TimeLimit        int                `json:"timeLimit"` // seconds per question
	Difficulty       string             `json:"difficulty"`
	QuestionType     QuestionType       `json:"questionType"`
	IncludeTags      []string           `json:"includeTags"`
	ShuffleQuestions bool               `json:"shuffleQuestions"`
	Adaptive         AdaptiveThresholds `json:"adaptive"`
}

// DefaultSettings returns the out-of-the-box configuration.
func DefaultSettings() Settings {
	return Settings{
		Mode:             ModeClassic,
		QuestionCount:    10,
		TimeLimit:        30,
		Difficulty:       DifficultyMixed,
		QuestionType:     TypeTranslation,
		ShuffleQuestions: true,
		Adaptive:         DefaultAdaptiveThresholds(),
	}
}

// DefaultAdaptiveThresholds returns the stock routing thresholds.
func DefaultAdaptiveThresholds() AdaptiveThresholds {
	return AdaptiveThresholds{
		MinAttemptsForMCQ:  3,
		MCQSuccessRate:     0.5,
		MCQEase:            2.2,
		MCQMinIntervalDays: 1,
		FBSuccessRate:      0.75,
		FBEase:             2.3,
		FBMinIntervalDays:  5,
	}
}

// Timed reports whether the per-question countdown runs for this mode.
func (s Settings) Timed() bool {
	return s.Mode != ModeUntimed
}
