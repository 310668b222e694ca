package quiz

import "time"

// Summary aggregates a completed session for the results screen and the
// OnComplete callback. Built once at the running→results transition;
// answer records are frozen from then on.
type Summary struct {
	Score int

	// Accuracy is the fraction of answered questions that were correct,
	// in [0,1]. Zero when nothing was answered.
	Accuracy float64

	CorrectCount int

	// TotalTime is the elapsed wall time from Start to finish.
	TotalTime time.Duration

	// AvgResponseTime is the mean per-question response time. Zero when
	// nothing was answered.
	AvgResponseTime time.Duration

	MaxStreak int
	HintsUsed int

	// QuestionCount is the realized question-list length, which survival
	// sessions may not have fully answered.
	QuestionCount int

	Mode Mode
}

func (s *Session) buildSummary() Summary {
	correct := 0
	var totalResponse time.Duration
	for _, rec := range s.answers {
		if rec.Correct {
			correct++
		}
		totalResponse += rec.ResponseTime
	}

	var accuracy float64
	var avgResponse time.Duration
	if len(s.answers) > 0 {
		accuracy = float64(correct) / float64(len(s.answers))
		avgResponse = totalResponse / time.Duration(len(s.answers))
	}

	return Summary{
		Score:           s.score,
		Accuracy:        accuracy,
		CorrectCount:    correct,
		TotalTime:       s.now().Sub(s.startTime),
		AvgResponseTime: avgResponse,
		MaxStreak:       s.maxStreak,
		HintsUsed:       s.hintsUsed,
		QuestionCount:   len(s.questions),
		Mode:            s.settings.Mode,
	}
}
