package quiz

import "math"

const (
	baseScore      = 100
	hintPenalty    = 20
	streakBonusCap = 50
)

// Score converts an answer record into points. Incorrect answers always
// score zero. For correct answers: 100 base, minus 20 if the hint was
// revealed, plus 2 points per elapsed second within the limit, plus
// 10 points per consecutive correct answer (including this one) capped
// at 50.
func Score(rec AnswerRecord, newStreak, timeLimit int) int {
	if !rec.Correct {
		return 0
	}

	score := float64(baseScore)
	if rec.HintUsed {
		score -= hintPenalty
	}

	elapsed := timeLimit - rec.TimeLeft
	if elapsed > 0 {
		score += float64(elapsed * 2)
	}

	score += math.Min(float64(newStreak*10), streakBonusCap)

	return int(math.Round(score))
}
