package quiz

import "testing"

func TestScore_InstantCorrectNoHint(t *testing.T) {
	// Submitted instantly: timeLeft == timeLimit, so no speed bonus, and
	// streak 0 earns nothing.
	rec := AnswerRecord{Correct: true, TimeLeft: 30}
	if got := Score(rec, 0, 30); got != 100 {
		t.Errorf("Score = %d, want 100", got)
	}
}

func TestScore_HintAndSpeedAndStreak(t *testing.T) {
	// 100 - 20 (hint) + 6 (3 elapsed seconds) + 30 (streak of 3) = 116.
	rec := AnswerRecord{Correct: true, HintUsed: true, TimeLeft: 27}
	if got := Score(rec, 3, 30); got != 116 {
		t.Errorf("Score = %d, want 116", got)
	}
}

func TestScore_Incorrect(t *testing.T) {
	rec := AnswerRecord{Correct: false, TimeLeft: 10}
	if got := Score(rec, 0, 30); got != 0 {
		t.Errorf("Score = %d, want 0 for incorrect answer", got)
	}
}

func TestScore_StreakBonusCapped(t *testing.T) {
	rec := AnswerRecord{Correct: true, TimeLeft: 30}
	// Streak of 12 would be 120 points uncapped; the cap holds it at 50.
	if got := Score(rec, 12, 30); got != 150 {
		t.Errorf("Score = %d, want 150", got)
	}
}

func TestScore_TimeLeftAboveLimitClamps(t *testing.T) {
	// Untimed sessions leave timeLeft at the limit; a timeLeft beyond the
	// limit must not produce a negative bonus.
	rec := AnswerRecord{Correct: true, TimeLeft: 45}
	if got := Score(rec, 0, 30); got != 100 {
		t.Errorf("Score = %d, want 100", got)
	}
}

func TestScore_FullElapsed(t *testing.T) {
	// Countdown expired: full time limit elapsed.
	rec := AnswerRecord{Correct: true, TimeLeft: 0}
	if got := Score(rec, 1, 30); got != 170 {
		t.Errorf("Score = %d, want 170", got)
	}
}
