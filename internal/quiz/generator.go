package quiz

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jbarrault/lexiq/internal/card"
)

// BlankPlaceholder replaces the hidden word in fill-blank sentences.
const BlankPlaceholder = "____"

// maxChoiceOptions is the multiple-choice option count when enough
// distractors exist (correct answer + 3 distractors).
const maxChoiceOptions = 4

// Question is one generated quiz item. Questions live for a single session
// and are never persisted.
type Question struct {
	// ID is cardID plus ordinal position, unique within the session.
	ID     string
	CardID string

	// Prompt is the source-side text shown to the learner.
	Prompt string

	// CorrectAnswer is the expected translation.
	CorrectAnswer string

	// TargetLanguage is the language code the learner must answer in.
	TargetLanguage string

	Difficulty card.Difficulty
	Tags       []string

	// Hint is the single hint available for this question.
	Hint string

	// Type is the effective question format after adaptive resolution.
	Type QuestionType

	// Options is populated for multiple-choice: the correct answer plus
	// distractors, shuffled.
	Options []string

	// Sentence is populated for fill-blanks: the answer with one word
	// replaced by BlankPlaceholder. Degenerates to the full answer for
	// single-word translations.
	Sentence string
}

// Generator turns cards into questions. The card pool supplies distractor
// translations and the stat map feeds adaptive routing. The rand source is
// injected so tests can pin outcomes.
type Generator struct {
	pool       []card.Card
	stats      card.StatMap
	thresholds AdaptiveThresholds
	rng        *rand.Rand
}

// NewGenerator creates a Generator over the given card pool.
func NewGenerator(pool []card.Card, stats card.StatMap, thresholds AdaptiveThresholds, rng *rand.Rand) *Generator {
	return &Generator{pool: pool, stats: stats, thresholds: thresholds, rng: rng}
}

// Generate builds one question for the card, or nil when the card has no
// usable translations. A nil result is not an error; the session simply
// drops the card.
func (g *Generator) Generate(c card.Card, index int, requested QuestionType) *Question {
	langs := c.Languages()
	if len(langs) == 0 {
		return nil
	}
	sort.Strings(langs)

	targetLang := langs[g.rng.IntN(len(langs))]
	answer := c.Translations[targetLang]

	difficulty := c.Difficulty
	if difficulty == "" {
		difficulty = card.DifficultyMedium
	}

	q := &Question{
		ID:             fmt.Sprintf("%s-%d", c.ID, index),
		CardID:         c.ID,
		Prompt:         c.Source,
		CorrectAnswer:  answer,
		TargetLanguage: targetLang,
		Difficulty:     difficulty,
		Tags:           c.Tags,
		Hint:           g.pickHint(c, answer),
		Type:           g.resolveType(c, requested),
	}

	switch q.Type {
	case TypeMultipleChoice:
		q.Options = g.choiceOptions(answer, targetLang)
	case TypeFillBlanks:
		q.Sentence = g.blankSentence(answer)
	}

	return q
}

// resolveType maps the requested type to the effective one: adaptive goes
// through the threshold selector, open-only forces free recall, anything
// else passes through.
func (g *Generator) resolveType(c card.Card, requested QuestionType) QuestionType {
	switch requested {
	case TypeAdaptive:
		return SelectType(g.stats[c.ID], g.thresholds)
	case TypeOpenOnly:
		return TypeTranslation
	default:
		return requested
	}
}

// choiceOptions returns the correct answer plus up to 3 distinct distractor
// translations in the same target language, shuffled. The option list is
// shorter when the pool runs out of usable distractors.
func (g *Generator) choiceOptions(answer, targetLang string) []string {
	var candidates []string
	seen := map[string]bool{answer: true}
	for _, other := range g.pool {
		text := other.Translations[targetLang]
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true
		candidates = append(candidates, text)
	}

	options := []string{answer}
	for len(options) < maxChoiceOptions && len(candidates) > 0 {
		i := g.rng.IntN(len(candidates))
		options = append(options, candidates[i])
		candidates = append(candidates[:i], candidates[i+1:]...)
	}

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// blankSentence hides one randomly chosen word behind the placeholder.
// Single-word answers are returned unchanged.
func (g *Generator) blankSentence(answer string) string {
	words := strings.Fields(answer)
	if len(words) < 2 {
		return answer
	}
	words[g.rng.IntN(len(words))] = BlankPlaceholder
	return strings.Join(words, " ")
}

// pickHint chooses one of up to three hint candidates: answer length, first
// letter, or the card's first topic tag.
func (g *Generator) pickHint(c card.Card, answer string) string {
	hints := []string{
		fmt.Sprintf("%d letters", utf8.RuneCountInString(answer)),
	}
	if first, _ := utf8.DecodeRuneInString(answer); first != utf8.RuneError {
		hints = append(hints, fmt.Sprintf("Starts with %q", strings.ToUpper(string(first))))
	}
	if len(c.Tags) > 0 {
		hints = append(hints, "Topic: "+c.Tags[0])
	}
	return hints[g.rng.IntN(len(hints))]
}
