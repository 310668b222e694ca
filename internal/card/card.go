package card

// Difficulty is the author-assigned difficulty tag on a card.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Card is a single flashcard. The engine treats cards as a read-only
// snapshot; the store owns their lifecycle.
type Card struct {
	// ID uniquely identifies the card within the deck store.
	ID string `json:"id"`

	// Source is the prompt-side text the learner translates from.
	Source string `json:"source"`

	// Translations maps a language code to the translated text.
	// Keys are unique; a card with no translations cannot be quizzed.
	Translations map[string]string `json:"translations"`

	// Difficulty is optional. Empty is treated as medium when filtering.
	Difficulty Difficulty `json:"difficulty,omitempty"`

	// Tags are optional topic labels used for filtering and hints.
	Tags []string `json:"tags,omitempty"`
}

// Languages returns the language codes the card has translations for,
// excluding empty translation texts.
func (c Card) Languages() []string {
	langs := make([]string, 0, len(c.Translations))
	for lang, text := range c.Translations {
		if text != "" {
			langs = append(langs, lang)
		}
	}
	return langs
}

// HasTag reports whether the card carries the given topic tag.
func (c Card) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
