package quiz

import (
	"testing"

	"github.com/jbarrault/lexiq/internal/card"
)

func TestSelectType_NoAttemptsAlwaysMultipleChoice(t *testing.T) {
	// The attempts clause trips on its own, even with otherwise perfect stats.
	stat := card.PerformanceStat{Attempts: 0, Correct: 0, Ease: 3.0, IntervalDays: 30}
	if got := SelectType(stat, DefaultAdaptiveThresholds()); got != TypeMultipleChoice {
		t.Errorf("SelectType = %s, want %s", got, TypeMultipleChoice)
	}
}

func TestSelectType_MasteredCardGetsTranslation(t *testing.T) {
	stat := card.PerformanceStat{Attempts: 10, Correct: 10, Ease: 2.8, IntervalDays: 10}
	if got := SelectType(stat, DefaultAdaptiveThresholds()); got != TypeTranslation {
		t.Errorf("SelectType = %s, want %s", got, TypeTranslation)
	}
}

func TestSelectType_MiddleBandGetsFillBlanks(t *testing.T) {
	// Clears every MCQ bar but sits below the fill-blank success rate.
	stat := card.PerformanceStat{Attempts: 10, Correct: 6, Ease: 2.4, IntervalDays: 6}
	if got := SelectType(stat, DefaultAdaptiveThresholds()); got != TypeFillBlanks {
		t.Errorf("SelectType = %s, want %s", got, TypeFillBlanks)
	}
}

func TestSelectType_RuleOrder(t *testing.T) {
	defaults := DefaultAdaptiveThresholds()

	tests := []struct {
		name string
		stat card.PerformanceStat
		want QuestionType
	}{
		{"low success rate", card.PerformanceStat{Attempts: 10, Correct: 3, Ease: 2.8, IntervalDays: 10}, TypeMultipleChoice},
		{"low ease", card.PerformanceStat{Attempts: 10, Correct: 9, Ease: 2.0, IntervalDays: 10}, TypeMultipleChoice},
		{"short interval", card.PerformanceStat{Attempts: 10, Correct: 9, Ease: 2.8, IntervalDays: 0.5}, TypeMultipleChoice},
		{"fb ease bar", card.PerformanceStat{Attempts: 10, Correct: 9, Ease: 2.25, IntervalDays: 10}, TypeFillBlanks},
		{"fb interval bar", card.PerformanceStat{Attempts: 10, Correct: 9, Ease: 2.8, IntervalDays: 3}, TypeFillBlanks},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectType(tt.stat, defaults); got != tt.want {
				t.Errorf("SelectType = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSelectType_UnsetEaseDefaultsToSM2(t *testing.T) {
	// Ease 0 means "no scheduler rating yet" and reads as 2.5, which clears
	// both ease bars.
	stat := card.PerformanceStat{Attempts: 10, Correct: 9, Ease: 0, IntervalDays: 10}
	if got := SelectType(stat, DefaultAdaptiveThresholds()); got != TypeTranslation {
		t.Errorf("SelectType = %s, want %s", got, TypeTranslation)
	}
}

func TestSelectType_DegenerateThresholdsDoNotPanic(t *testing.T) {
	// Out-of-range thresholds flow through the arithmetic and only skew
	// routing; they must never crash.
	weird := AdaptiveThresholds{
		MinAttemptsForMCQ:  -5,
		MCQSuccessRate:     -1,
		MCQEase:            0,
		MCQMinIntervalDays: -10,
		FBSuccessRate:      42,
		FBEase:             99,
		FBMinIntervalDays:  -1,
	}
	stat := card.PerformanceStat{Attempts: 1, Correct: 1, Ease: 2.5, IntervalDays: 1}
	// Everything clears the (negative) MCQ bars, then trips the absurd FB bars.
	if got := SelectType(stat, weird); got != TypeFillBlanks {
		t.Errorf("SelectType = %s, want %s", got, TypeFillBlanks)
	}
}
