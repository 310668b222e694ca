package quiz

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/jbarrault/lexiq/internal/card"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func testPool() []card.Card {
	return []card.Card{
		{ID: "c1", Source: "le chat", Translations: map[string]string{"en": "the cat"}, Tags: []string{"animals"}},
		{ID: "c2", Source: "le chien", Translations: map[string]string{"en": "the dog"}},
		{ID: "c3", Source: "la maison", Translations: map[string]string{"en": "the house"}},
		{ID: "c4", Source: "l'oiseau", Translations: map[string]string{"en": "the bird"}},
		{ID: "c5", Source: "le livre", Translations: map[string]string{"en": "the book"}},
	}
}

func TestGenerate_NoTranslationsReturnsNil(t *testing.T) {
	g := NewGenerator(testPool(), nil, DefaultAdaptiveThresholds(), testRand())
	c := card.Card{ID: "empty", Source: "vide"}
	if q := g.Generate(c, 0, TypeTranslation); q != nil {
		t.Errorf("Generate = %+v, want nil for card without translations", q)
	}
}

func TestGenerate_Translation(t *testing.T) {
	pool := testPool()
	g := NewGenerator(pool, nil, DefaultAdaptiveThresholds(), testRand())
	q := g.Generate(pool[0], 2, TypeTranslation)
	if q == nil {
		t.Fatal("Generate returned nil")
	}
	if q.ID != "c1-2" {
		t.Errorf("ID = %q, want c1-2", q.ID)
	}
	if q.Type != TypeTranslation {
		t.Errorf("Type = %s, want %s", q.Type, TypeTranslation)
	}
	if q.TargetLanguage != "en" || q.CorrectAnswer != "the cat" {
		t.Errorf("target/answer = %s/%q, want en/\"the cat\"", q.TargetLanguage, q.CorrectAnswer)
	}
	if q.Prompt != "le chat" {
		t.Errorf("Prompt = %q, want the card source", q.Prompt)
	}
	if q.Hint == "" {
		t.Error("expected a hint")
	}
}

func TestGenerate_MultipleChoiceOptions(t *testing.T) {
	pool := testPool()
	g := NewGenerator(pool, nil, DefaultAdaptiveThresholds(), testRand())
	q := g.Generate(pool[0], 0, TypeMultipleChoice)
	if q == nil {
		t.Fatal("Generate returned nil")
	}

	if len(q.Options) != 4 {
		t.Fatalf("len(Options) = %d, want 4", len(q.Options))
	}
	seen := map[string]bool{}
	foundCorrect := false
	for _, opt := range q.Options {
		if seen[opt] {
			t.Errorf("duplicate option %q", opt)
		}
		seen[opt] = true
		if opt == q.CorrectAnswer {
			foundCorrect = true
		}
	}
	if !foundCorrect {
		t.Error("options do not contain the correct answer")
	}
}

func TestGenerate_MultipleChoiceSmallPool(t *testing.T) {
	// Only one other card can supply a distractor.
	pool := testPool()[:2]
	g := NewGenerator(pool, nil, DefaultAdaptiveThresholds(), testRand())
	q := g.Generate(pool[0], 0, TypeMultipleChoice)
	if q == nil {
		t.Fatal("Generate returned nil")
	}
	if len(q.Options) != 2 {
		t.Errorf("len(Options) = %d, want 2 when the distractor pool is exhausted", len(q.Options))
	}
}

func TestGenerate_FillBlanksOneBlank(t *testing.T) {
	pool := []card.Card{
		{ID: "c1", Source: "je voudrais un café", Translations: map[string]string{"en": "i would like a coffee"}},
	}
	g := NewGenerator(pool, nil, DefaultAdaptiveThresholds(), testRand())

	for i := 0; i < 20; i++ {
		q := g.Generate(pool[0], i, TypeFillBlanks)
		if q == nil {
			t.Fatal("Generate returned nil")
		}
		words := strings.Fields(q.Sentence)
		if len(words) != 5 {
			t.Fatalf("sentence %q has %d words, want 5", q.Sentence, len(words))
		}
		blanks := 0
		for _, w := range words {
			if w == BlankPlaceholder {
				blanks++
			}
		}
		if blanks != 1 {
			t.Errorf("sentence %q has %d blanks, want exactly 1", q.Sentence, blanks)
		}
	}
}

func TestGenerate_FillBlanksSingleWordDegenerates(t *testing.T) {
	pool := []card.Card{
		{ID: "c1", Source: "chat", Translations: map[string]string{"en": "cat"}},
	}
	g := NewGenerator(pool, nil, DefaultAdaptiveThresholds(), testRand())
	q := g.Generate(pool[0], 0, TypeFillBlanks)
	if q == nil {
		t.Fatal("Generate returned nil")
	}
	if q.Sentence != "cat" {
		t.Errorf("Sentence = %q, want the unchanged answer for single-word translations", q.Sentence)
	}
}

func TestGenerate_OpenOnlyForcesTranslation(t *testing.T) {
	pool := testPool()
	// Stats that would route to multiple-choice under adaptive.
	stats := card.StatMap{"c1": {Attempts: 0}}
	g := NewGenerator(pool, stats, DefaultAdaptiveThresholds(), testRand())
	q := g.Generate(pool[0], 0, TypeOpenOnly)
	if q == nil {
		t.Fatal("Generate returned nil")
	}
	if q.Type != TypeTranslation {
		t.Errorf("Type = %s, want %s regardless of stats", q.Type, TypeTranslation)
	}
}

func TestGenerate_AdaptiveRoutesPerCard(t *testing.T) {
	pool := testPool()
	stats := card.StatMap{
		"c1": {Attempts: 0},
		"c2": {Attempts: 10, Correct: 10, Ease: 2.8, IntervalDays: 10},
	}
	g := NewGenerator(pool, stats, DefaultAdaptiveThresholds(), testRand())

	if q := g.Generate(pool[0], 0, TypeAdaptive); q.Type != TypeMultipleChoice {
		t.Errorf("new card routed to %s, want %s", q.Type, TypeMultipleChoice)
	}
	if q := g.Generate(pool[1], 1, TypeAdaptive); q.Type != TypeTranslation {
		t.Errorf("mastered card routed to %s, want %s", q.Type, TypeTranslation)
	}
}

func TestGenerate_HintIsOneOfTheCandidates(t *testing.T) {
	pool := testPool()
	g := NewGenerator(pool, nil, DefaultAdaptiveThresholds(), testRand())

	want := map[string]bool{
		"7 letters":       true, // "the cat"
		`Starts with "T"`: true,
		"Topic: animals":  true,
	}
	for i := 0; i < 30; i++ {
		q := g.Generate(pool[0], i, TypeTranslation)
		if !want[q.Hint] {
			t.Fatalf("unexpected hint %q", q.Hint)
		}
	}
}
