package model

import "strconv"

// Score bounds.
const (
	// MinScore is the lowest score a candidate can receive.
	MinScore = 0

	// MaxScore is the highest score a candidate can receive.
	// The generator targets this value.
	MaxScore = 100
)

// ClampScore limits score to [MinScore, MaxScore].
func ClampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// Adjustment records a single scoring rule that contributed points.
// Negative Points are penalties.
type Adjustment struct {
	// Rule is the stable identifier of the rule (e.g. "length", "sequence").
	Rule string `json:"rule"`

	// Points is the signed contribution to the running total.
	Points int `json:"points"`

	// Reason explains why the rule fired.
	Reason string `json:"reason"`
}

// ScoreResult is the outcome of scoring one candidate.
// It is recomputed on every change and never cached.
type ScoreResult struct {
	// Score is the clamped total in [0,100].
	Score int `json:"score"`

	// Verdict is derived from Score, except for the invalid sentinel.
	Verdict Verdict `json:"verdict"`

	// Suggestions are advisory strings in a fixed order.
	Suggestions []string `json:"suggestions"`

	// Length is the candidate length in runes.
	Length int `json:"length"`

	// Entropy is length * log2(charSpace) in bits.
	Entropy float64 `json:"entropy"`

	// Breakdown lists every rule contribution in evaluation order.
	Breakdown []Adjustment `json:"breakdown,omitempty"`
}

// Valid reports whether the result rates a real candidate rather than
// the empty-input sentinel.
func (r ScoreResult) Valid() bool {
	return r.Verdict != VerdictInvalid
}

// Maxed reports whether the candidate reached MaxScore.
func (r ScoreResult) Maxed() bool {
	return r.Score >= MaxScore
}

// NumberedSuggestions renders the suggestions numbered from 1.
func (r ScoreResult) NumberedSuggestions() []string {
	out := make([]string, len(r.Suggestions))
	for i, s := range r.Suggestions {
		out[i] = strconv.Itoa(i+1) + ". " + s
	}
	return out
}

// Label renders the verdict and score the way the strength label shows it,
// e.g. "Strong — 72/100". The invalid sentinel renders as its verdict only.
func (r ScoreResult) Label() string {
	if !r.Valid() {
		return r.Verdict.String()
	}
	return r.Verdict.String() + " — " + strconv.Itoa(r.Score) + "/" + strconv.Itoa(MaxScore)
}
