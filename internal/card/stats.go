package card

// DefaultEase is the ease factor assumed for cards the scheduler has not
// rated yet (SM-2 default).
const DefaultEase = 2.5

// PerformanceStat is the per-card learner history supplied by the external
// review scheduler. The engine reads it to route adaptive question types and
// never writes it back.
type PerformanceStat struct {
	// Attempts is the number of recorded quiz attempts for the card.
	Attempts int

	// Correct is the number of correct attempts.
	Correct int

	// Ease is the scheduler's retention-difficulty factor. Higher means the
	// card is easier for this learner. Zero means "unknown" and is replaced
	// by DefaultEase.
	Ease float64

	// IntervalDays is the current spacing between scheduled reviews.
	IntervalDays float64
}

// SuccessRate returns Correct/Attempts, or 0 when there are no attempts.
func (s PerformanceStat) SuccessRate() float64 {
	if s.Attempts <= 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// EaseOrDefault returns the ease factor, substituting DefaultEase when the
// stored value is unset.
func (s PerformanceStat) EaseOrDefault() float64 {
	if s.Ease == 0 {
		return DefaultEase
	}
	return s.Ease
}

// StatMap indexes performance stats by card ID. A missing entry means the
// card has no history; the zero value routes it like a brand-new card.
type StatMap map[string]PerformanceStat
