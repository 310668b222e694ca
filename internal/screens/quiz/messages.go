package quiz

import "time"

// timerTickMsg is sent every second to drive the answer countdown.
type timerTickMsg time.Time

// feedbackDoneMsg ends the post-answer feedback display and advances.
type feedbackDoneMsg struct{}
