package strength

import (
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/nao1215/pwstrength/internal/model"
)

// TestScoreInvalid tests the sentinel result for blank input.
func TestScoreInvalid(t *testing.T) {
	t.Parallel()

	for _, candidate := range []string{"", " ", "\t\n", "   "} {
		t.Run("blank "+strings.ReplaceAll(candidate, "\n", `\n`), func(t *testing.T) {
			t.Parallel()
			got := Score(candidate)
			if got.Score != 0 {
				t.Errorf("expected score 0, got %d", got.Score)
			}
			if got.Verdict != model.VerdictInvalid {
				t.Errorf("expected VerdictInvalid, got %v", got.Verdict)
			}
			if !reflect.DeepEqual(got.Suggestions, []string{SuggestEnterPassword}) {
				t.Errorf("unexpected suggestions: %v", got.Suggestions)
			}
		})
	}
}

// TestScoreBounds tests that every score stays in [0,100].
func TestScoreBounds(t *testing.T) {
	t.Parallel()

	candidates := []string{
		"a", "aaa", "abc", "1", "!", "password", "PASSWORD",
		"пароль", "日本語のパスワード", "\x00\x01\x02",
		"Xk9#mP2$vL7!qR4&tW8@", strings.Repeat("Zq7!", 64),
		strings.Repeat("a", 500), " a ",
	}

	for _, c := range candidates {
		got := Score(c)
		if got.Score < model.MinScore || got.Score > model.MaxScore {
			t.Errorf("Score(%q) = %d, out of bounds", c, got.Score)
		}
		if got.Valid() && got.Verdict != model.VerdictForScore(got.Score) {
			t.Errorf("Score(%q) verdict %v does not match score %d", c, got.Verdict, got.Score)
		}
	}
}

// TestScoreWeights tests exact totals for hand-computed candidates.
func TestScoreWeights(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		candidate string
		expected  int
	}{
		// 8*3 + 8 - 20 (common), 37.6 bits: no entropy adjustment
		{name: "common password", candidate: "password", expected: 12},
		// 24 + 8, same shape as "password" but not on the list
		{name: "non-common equivalent", candidate: "passwork", expected: 32},
		// 18 + 16 - 6 (sequence), 34.2 bits
		{name: "sequence", candidate: "abcXYZ", expected: 28},
		{name: "permuted sequence", candidate: "aXbYcZ", expected: 34},
		// 21 + 32 + 8 (45.9 bits)
		{name: "two repeats", candidate: "Qzaab9!", expected: 61},
		{name: "three repeats", candidate: "Qzaaa9!", expected: 55},
		// 3 + 8 - 6 (low entropy)
		{name: "single rune", candidate: "a", expected: 5},
		// 60 + 32 + 15 = 107, clamped
		{name: "maxed", candidate: "Xk9#mP2$vL7!qR4&tW8@", expected: 100},
		// 36 + 32 + 15
		{name: "twelve mixed", candidate: "Qz8!mK3#pW5$", expected: 83},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Score(tc.candidate)
			if got.Score != tc.expected {
				t.Errorf("Score(%q) = %d, expected %d (breakdown %+v)",
					tc.candidate, got.Score, tc.expected, got.Breakdown)
			}
		})
	}
}

// TestScorePenalties tests the relative effect of each penalty.
func TestScorePenalties(t *testing.T) {
	t.Parallel()

	t.Run("common password costs 20 points", func(t *testing.T) {
		t.Parallel()
		common := Score("password")
		other := Score("passwork")
		if other.Score-common.Score != commonPenalty {
			t.Errorf("expected difference %d, got %d", commonPenalty, other.Score-common.Score)
		}
	})

	t.Run("common match is case-insensitive", func(t *testing.T) {
		t.Parallel()
		got := Score("PassWord")
		if !hasRule(got, RuleCommon) {
			t.Error("expected common rule to fire for PassWord")
		}
	})

	t.Run("permutation removes sequence penalty", func(t *testing.T) {
		t.Parallel()
		seq := Score("abcXYZ")
		perm := Score("aXbYcZ")
		if !hasRule(seq, RuleSequence) {
			t.Error("expected sequence rule for abcXYZ")
		}
		if hasRule(perm, RuleSequence) {
			t.Error("did not expect sequence rule for aXbYcZ")
		}
		if perm.Score-seq.Score != sequencePenalty {
			t.Errorf("expected difference %d, got %d", sequencePenalty, perm.Score-seq.Score)
		}
	})

	t.Run("three repeats penalised, two not", func(t *testing.T) {
		t.Parallel()
		three := Score("Qzaaa9!")
		two := Score("Qzaab9!")
		if !hasRule(three, RuleRepetition) {
			t.Error("expected repetition rule for Qzaaa9!")
		}
		if hasRule(two, RuleRepetition) {
			t.Error("did not expect repetition rule for Qzaab9!")
		}
		if two.Score-three.Score != repetitionPenalty {
			t.Errorf("expected difference %d, got %d", repetitionPenalty, two.Score-three.Score)
		}
	})

	t.Run("clamp is recorded in breakdown", func(t *testing.T) {
		t.Parallel()
		got := Score("Xk9#mP2$vL7!qR4&tW8@")
		if !hasRule(got, RuleClamp) {
			t.Error("expected clamp entry")
		}
		sum := 0
		for _, adj := range got.Breakdown {
			sum += adj.Points
		}
		if sum != got.Score {
			t.Errorf("breakdown sums to %d, score is %d", sum, got.Score)
		}
	})
}

// TestScoreSuggestions tests suggestion order and the closing notes.
func TestScoreSuggestions(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		candidate string
		expected  []string
	}{
		{"password", []string{SuggestCommon, SuggestLength, SuggestUpper, SuggestDigit, SuggestSpecial}},
		{"aaa", []string{SuggestLength, SuggestUpper, SuggestDigit, SuggestSpecial, SuggestRepetition}},
		{"abc", []string{SuggestLength, SuggestUpper, SuggestDigit, SuggestSpecial, SuggestSequence}},
		{"ABC", []string{SuggestLength, SuggestLower, SuggestDigit, SuggestSpecial, SuggestSequence}},
		{"Qz8!mK3#pW5$", []string{SuggestLooksGood}},
		{"Xk9#mP2$vL7!qR4&tW8@", []string{SuggestMaxed}},
	}

	for _, tc := range testCases {
		t.Run(tc.candidate, func(t *testing.T) {
			t.Parallel()
			got := Score(tc.candidate)
			if !slices.Equal(got.Suggestions, tc.expected) {
				t.Errorf("Score(%q).Suggestions = %v, expected %v", tc.candidate, got.Suggestions, tc.expected)
			}
		})
	}
}

// TestScoreMaxedNote tests that a maxed, issue-free candidate gets only
// the maxed note and never the "consider lengthening" note.
func TestScoreMaxedNote(t *testing.T) {
	t.Parallel()

	for _, candidate := range []string{
		"Xk9#mP2$vL7!qR4&tW8@",
		"Zq7!Wm3$Rt8&Hy2@Lp5%Nc",
		strings.Repeat("Zq7!", 10),
	} {
		got := Score(candidate)
		if got.Score != model.MaxScore {
			t.Fatalf("Score(%q) = %d, expected a maxed candidate", candidate, got.Score)
		}
		if !slices.Equal(got.Suggestions, []string{SuggestMaxed}) {
			t.Errorf("Score(%q).Suggestions = %v, expected only the maxed note", candidate, got.Suggestions)
		}
	}
}

// TestScoreInvalidUTF8 tests that distinct invalid bytes are not treated
// as a repeated character.
func TestScoreInvalidUTF8(t *testing.T) {
	t.Parallel()

	got := Score("\xff\xfe\xfd")
	if slices.Contains(got.Suggestions, SuggestRepetition) {
		t.Errorf("unexpected repetition suggestion: %v", got.Suggestions)
	}
	if !slices.Contains(Score("\xff\xff\xff").Suggestions, SuggestRepetition) {
		t.Error("expected identical invalid bytes to count as a repeat")
	}
}

// TestScoreIdempotent tests that scoring is pure.
func TestScoreIdempotent(t *testing.T) {
	t.Parallel()

	for _, c := range []string{"", "password", "abcXYZ", "Xk9#mP2$vL7!qR4&tW8@", "пароль"} {
		first := Score(c)
		second := Score(c)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Score(%q) not idempotent: %+v vs %+v", c, first, second)
		}
	}
}

// TestScorer tests the Scorer type delegates to Score.
func TestScorer(t *testing.T) {
	t.Parallel()

	s := NewScorer()
	if !reflect.DeepEqual(s.Score("abcXYZ"), Score("abcXYZ")) {
		t.Error("Scorer.Score differs from Score")
	}
}

func hasRule(r model.ScoreResult, rule string) bool {
	for _, adj := range r.Breakdown {
		if adj.Rule == rule {
			return true
		}
	}
	return false
}
