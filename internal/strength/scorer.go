package strength

import (
	"fmt"
	"strings"

	"github.com/nao1215/pwstrength/internal/model"
)

// Scoring weights.
const (
	pointsPerRune      = 3
	maxLengthPoints    = 60
	pointsPerClass     = 8
	repetitionPenalty  = 6
	sequencePenalty    = 6
	commonPenalty      = 20
	highEntropyBits    = 60
	highEntropyBonus   = 15
	mediumEntropyBits  = 45
	mediumEntropyBonus = 8
	lowEntropyBits     = 28
	lowEntropyPenalty  = 6

	// RecommendedLength is the length below which a suggestion is made.
	RecommendedLength = 12
)

// Rule identifiers used in the score breakdown.
const (
	RuleLength     = "length"
	RuleDiversity  = "diversity"
	RuleRepetition = "repetition"
	RuleSequence   = "sequence"
	RuleCommon     = "common"
	RuleEntropy    = "entropy"
	RuleClamp      = "clamp"
)

// Advisory strings, in the order they can appear.
const (
	SuggestEnterPassword = "Enter a password."
	SuggestCommon        = "This is a commonly used password; pick something unique."
	SuggestLength        = "Use at least 12 characters."
	SuggestLower         = "Add lowercase letters."
	SuggestUpper         = "Add uppercase letters."
	SuggestDigit         = "Add digits."
	SuggestSpecial       = "Add special characters such as !@#$%."
	SuggestRepetition    = "Avoid repeating the same character three or more times in a row."
	SuggestSequence      = "Avoid sequences like \"abc\", \"cba\" or \"123\"."
	SuggestMaxed         = "Maximum score reached."
	SuggestLooksGood     = "Looks good; consider making it even longer."
)

// missingClassSuggestion maps a class to its advisory string.
var missingClassSuggestion = map[CharClass]string{
	ClassLower:   SuggestLower,
	ClassUpper:   SuggestUpper,
	ClassDigit:   SuggestDigit,
	ClassSpecial: SuggestSpecial,
}

// Scorer scores candidates. The zero value is ready to use and is safe
// for concurrent use.
type Scorer struct{}

// NewScorer returns a Scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score scores candidate. See the package Score function.
func (*Scorer) Score(candidate string) model.ScoreResult {
	return Score(candidate)
}

// IsBlank reports whether candidate is empty or whitespace-only.
func IsBlank(candidate string) bool {
	return strings.TrimSpace(candidate) == ""
}

// Invalid returns the sentinel result for an empty candidate.
func Invalid() model.ScoreResult {
	return model.ScoreResult{
		Score:       0,
		Verdict:     model.VerdictInvalid,
		Suggestions: []string{SuggestEnterPassword},
	}
}

// Score computes the heuristic strength of candidate.
// An empty or whitespace-only candidate yields the Invalid sentinel.
func Score(candidate string) model.ScoreResult {
	if IsBlank(candidate) {
		return Invalid()
	}

	length := Length(candidate)
	classes := ClassesOf(candidate)
	entropy := Entropy(candidate)
	repeated := HasRepetition(candidate)
	sequential := HasSequence(candidate)
	common := IsCommon(candidate)

	var breakdown []model.Adjustment
	total := 0
	add := func(rule string, points int, reason string) {
		total += points
		breakdown = append(breakdown, model.Adjustment{Rule: rule, Points: points, Reason: reason})
	}

	add(RuleLength, min(length*pointsPerRune, maxLengthPoints),
		fmt.Sprintf("%d characters", length))
	add(RuleDiversity, classes.Count()*pointsPerClass,
		fmt.Sprintf("%d of 4 character classes", classes.Count()))

	if repeated {
		add(RuleRepetition, -repetitionPenalty, "same character 3+ times in a row")
	}
	if sequential {
		add(RuleSequence, -sequencePenalty, "3 consecutive characters in sequence")
	}
	if common {
		add(RuleCommon, -commonPenalty, "matches a common password")
	}

	switch {
	case entropy > highEntropyBits:
		add(RuleEntropy, highEntropyBonus, fmt.Sprintf("%.1f bits", entropy))
	case entropy > mediumEntropyBits:
		add(RuleEntropy, mediumEntropyBonus, fmt.Sprintf("%.1f bits", entropy))
	case entropy < lowEntropyBits:
		add(RuleEntropy, -lowEntropyPenalty, fmt.Sprintf("%.1f bits", entropy))
	}

	score := model.ClampScore(total)
	if score != total {
		breakdown = append(breakdown, model.Adjustment{
			Rule:   RuleClamp,
			Points: score - total,
			Reason: fmt.Sprintf("clamped from %d", total),
		})
	}

	return model.ScoreResult{
		Score:       score,
		Verdict:     model.VerdictForScore(score),
		Suggestions: suggestions(score, length, classes, repeated, sequential, common),
		Length:      length,
		Entropy:     entropy,
		Breakdown:   breakdown,
	}
}

// suggestions builds the advisory list in its fixed order.
func suggestions(score, length int, classes CharClasses, repeated, sequential, common bool) []string {
	var out []string
	if common {
		out = append(out, SuggestCommon)
	}
	if length < RecommendedLength {
		out = append(out, SuggestLength)
	}
	for _, c := range classes.Missing() {
		out = append(out, missingClassSuggestion[c])
	}
	if repeated {
		out = append(out, SuggestRepetition)
	}
	if sequential {
		out = append(out, SuggestSequence)
	}

	issues := len(out)
	if score >= model.MaxScore {
		out = append(out, SuggestMaxed)
	} else if issues == 0 {
		out = append(out, SuggestLooksGood)
	}
	return out
}
