package quiz

import "github.com/jbarrault/lexiq/internal/card"

// SelectType maps a card's performance history to a question format.
//
// The rules form a strict escalation from most to least scaffolding and the
// first match wins:
//
//  1. Too little history or weak retention → multiple-choice.
//  2. Decent but not solid → fill-blanks.
//  3. Otherwise → free translation.
//
// A card with no history at all (zero-value stat) always lands on
// multiple-choice via the attempts clause.
func SelectType(stat card.PerformanceStat, t AdaptiveThresholds) QuestionType {
	rate := stat.SuccessRate()
	ease := stat.EaseOrDefault()

	if stat.Attempts < t.MinAttemptsForMCQ ||
		rate < t.MCQSuccessRate ||
		ease < t.MCQEase ||
		stat.IntervalDays < t.MCQMinIntervalDays {
		return TypeMultipleChoice
	}
	if rate < t.FBSuccessRate ||
		ease < t.FBEase ||
		stat.IntervalDays < t.FBMinIntervalDays {
		return TypeFillBlanks
	}
	return TypeTranslation
}
