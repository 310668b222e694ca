package quiz

import "strings"

// matchTolerance is the minimum similarity for a free-text answer to be
// accepted when it is not an exact match. Forgives typos and missing
// accents without accepting materially wrong answers.
const matchTolerance = 0.8

// Similarity returns a [0,1] score for how close two strings are, based on
// Levenshtein edit distance over runes: (maxLen - distance) / maxLen. Two
// empty strings are identical (1.0).
func Similarity(a, b string) float64 {
	longer, shorter := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		longer, shorter = shorter, longer
	}
	if len(longer) == 0 {
		return 1.0
	}
	distance := levenshtein(longer, shorter)
	return float64(len(longer)-distance) / float64(len(longer))
}

// AcceptAnswer reports whether a free-text answer matches the expected one.
// Both sides are lowercased and trimmed; exact equality wins, otherwise the
// similarity must exceed the tolerance. Multiple-choice answers never go
// through here.
func AcceptAnswer(input, correct string) bool {
	normInput := strings.ToLower(strings.TrimSpace(input))
	normCorrect := strings.ToLower(strings.TrimSpace(correct))
	if normInput == normCorrect {
		return true
	}
	return Similarity(normInput, normCorrect) > matchTolerance
}

// levenshtein computes the edit distance between two rune slices with a
// dense DP matrix. Runes rather than bytes, so an accented letter counts
// as one edit, not two.
func levenshtein(a, b []rune) int {
	matrix := make([][]int, len(b)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(a)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(a); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(b); i++ {
		for j := 1; j <= len(a); j++ {
			if b[i-1] == a[j-1] {
				matrix[i][j] = matrix[i-1][j-1]
			} else {
				matrix[i][j] = min(
					matrix[i-1][j-1]+1, // substitution
					matrix[i][j-1]+1,   // insertion
					matrix[i-1][j]+1,   // deletion
				)
			}
		}
	}

	return matrix[len(b)][len(a)]
}
