package model

import (
	"fmt"
	"strings"
)

// Verdict is the qualitative strength label derived from a score.
// The zero value is VerdictInvalid so that an unscored result never
// reads as a real rating.
type Verdict int

const (
	// VerdictInvalid marks the sentinel result for an empty or
	// whitespace-only candidate.
	VerdictInvalid Verdict = iota

	// VerdictVeryWeak covers scores in [0,25).
	VerdictVeryWeak

	// VerdictWeak covers scores in [25,40).
	VerdictWeak

	// VerdictModerate covers scores in [40,60).
	VerdictModerate

	// VerdictStrong covers scores in [60,80).
	VerdictStrong

	// VerdictVeryStrong covers scores in [80,100].
	VerdictVeryStrong
)

// Verdict thresholds. A score below a threshold falls into the lower band.
const (
	weakThreshold       = 25
	moderateThreshold   = 40
	strongThreshold     = 60
	veryStrongThreshold = 80
)

// VerdictForScore maps a score to its verdict.
// Scores outside [0,100] are clamped first.
func VerdictForScore(score int) Verdict {
	score = ClampScore(score)
	switch {
	case score < weakThreshold:
		return VerdictVeryWeak
	case score < moderateThreshold:
		return VerdictWeak
	case score < strongThreshold:
		return VerdictModerate
	case score < veryStrongThreshold:
		return VerdictStrong
	default:
		return VerdictVeryStrong
	}
}

// String returns the human-readable label.
func (v Verdict) String() string {
	switch v {
	case VerdictInvalid:
		return "Invalid (Empty Password)"
	case VerdictVeryWeak:
		return "Very Weak"
	case VerdictWeak:
		return "Weak"
	case VerdictModerate:
		return "Moderate"
	case VerdictStrong:
		return "Strong"
	case VerdictVeryStrong:
		return "Very Strong"
	default:
		return "Unknown"
	}
}

// Slug returns the stable machine-readable name used in exports.
func (v Verdict) Slug() string {
	switch v {
	case VerdictInvalid:
		return "invalid"
	case VerdictVeryWeak:
		return "very_weak"
	case VerdictWeak:
		return "weak"
	case VerdictModerate:
		return "moderate"
	case VerdictStrong:
		return "strong"
	case VerdictVeryStrong:
		return "very_strong"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.Slug()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Verdict) UnmarshalText(text []byte) error {
	for c := VerdictInvalid; c <= VerdictVeryStrong; c++ {
		if c.Slug() == string(text) {
			*v = c
			return nil
		}
	}
	return fmt.Errorf("unknown verdict %q", string(text))
}

// ParseVerdict parses a verdict slug such as "strong" or "very_weak".
// Case and surrounding whitespace are ignored.
func ParseVerdict(s string) (Verdict, error) {
	var v Verdict
	if err := v.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return VerdictInvalid, err
	}
	return v, nil
}

// AllVerdicts returns every rated verdict from weakest to strongest.
// VerdictInvalid is not included.
func AllVerdicts() []Verdict {
	return []Verdict{
		VerdictVeryWeak,
		VerdictWeak,
		VerdictModerate,
		VerdictStrong,
		VerdictVeryStrong,
	}
}
