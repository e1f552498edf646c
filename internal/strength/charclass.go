package strength

import (
	"math"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// CharClass is one of the four character classes the scorer tracks.
type CharClass uint8

const (
	// ClassLower is ASCII a-z.
	ClassLower CharClass = 1 << iota
	// ClassUpper is ASCII A-Z.
	ClassUpper
	// ClassDigit is ASCII 0-9.
	ClassDigit
	// ClassSpecial is any rune outside [A-Za-z0-9].
	ClassSpecial
)

// AllClasses lists the classes in suggestion and repair order.
var AllClasses = []CharClass{ClassLower, ClassUpper, ClassDigit, ClassSpecial}

// Alphabet sizes used for the entropy estimate.
const (
	lowerSpace   = 26
	upperSpace   = 26
	digitSpace   = 10
	specialSpace = 32
)

// String returns the class name.
func (c CharClass) String() string {
	switch c {
	case ClassLower:
		return "lowercase"
	case ClassUpper:
		return "uppercase"
	case ClassDigit:
		return "digit"
	case ClassSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// IsLower reports whether r is an ASCII lowercase letter.
func IsLower(r rune) bool { return r >= 'a' && r <= 'z' }

// IsUpper reports whether r is an ASCII uppercase letter.
func IsUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

// IsDigit reports whether r is an ASCII digit.
func IsDigit(r rune) bool { return r >= '0' && r <= '9' }

// IsSpecial reports whether r is outside [A-Za-z0-9].
// Whitespace and non-ASCII runes count as special.
func IsSpecial(r rune) bool { return !IsLower(r) && !IsUpper(r) && !IsDigit(r) }

// ClassOf returns the class a single rune belongs to.
func ClassOf(r rune) CharClass {
	switch {
	case IsLower(r):
		return ClassLower
	case IsUpper(r):
		return ClassUpper
	case IsDigit(r):
		return ClassDigit
	default:
		return ClassSpecial
	}
}

// CharClasses is the set of classes present in a candidate.
type CharClasses uint8

// ClassesOf returns the classes present in s.
func ClassesOf(s string) CharClasses {
	var set CharClasses
	for _, r := range s {
		set |= CharClasses(ClassOf(r))
	}
	return set
}

// Has reports whether c is present.
func (set CharClasses) Has(c CharClass) bool {
	return set&CharClasses(c) != 0
}

// Count returns the number of classes present.
func (set CharClasses) Count() int {
	n := 0
	for _, c := range AllClasses {
		if set.Has(c) {
			n++
		}
	}
	return n
}

// Missing returns the absent classes in AllClasses order.
func (set CharClasses) Missing() []CharClass {
	var missing []CharClass
	for _, c := range AllClasses {
		if !set.Has(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

// CharSpace returns the effective alphabet size for the present classes.
func CharSpace(set CharClasses) int {
	space := 0
	if set.Has(ClassLower) {
		space += lowerSpace
	}
	if set.Has(ClassUpper) {
		space += upperSpace
	}
	if set.Has(ClassDigit) {
		space += digitSpace
	}
	if set.Has(ClassSpecial) {
		space += specialSpace
	}
	return space
}

// Length returns the candidate length in runes.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Entropy returns length * log2(charSpace), or 0 for an empty string.
func Entropy(s string) float64 {
	space := CharSpace(ClassesOf(s))
	if space == 0 {
		return 0
	}
	return float64(Length(s)) * math.Log2(float64(space))
}

// Fold returns the case-folded form of s.
// A Caser is stateful, so each call gets its own.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// HasRepetition reports whether any character occurs three or more times
// in a row. The comparison is case-sensitive. Characters are compared by
// their encoded bytes, so distinct invalid UTF-8 bytes never count as a
// repeat even though each decodes to utf8.RuneError.
func HasRepetition(s string) bool {
	prev := ""
	run := 0
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		cur := s[i : i+size]
		if run > 0 && cur == prev {
			run++
		} else {
			run = 1
		}
		if run >= 3 {
			return true
		}
		prev = cur
		i += size
	}
	return false
}

// HasSequence reports whether any three consecutive runes of the
// case-folded string form a strictly ascending or descending run of
// consecutive code points, such as "abc", "CBA", or "123".
func HasSequence(s string) bool {
	runes := []rune(Fold(s))
	for i := 0; i+2 < len(runes); i++ {
		if IsSequenceRun(runes[i], runes[i+1], runes[i+2]) {
			return true
		}
	}
	return false
}

// IsSequenceRun reports whether a, b, c are consecutive code points in
// either direction. Callers fold case first when that matters.
func IsSequenceRun(a, b, c rune) bool {
	ascending := b == a+1 && c == b+1
	descending := b == a-1 && c == b-1
	return ascending || descending
}
