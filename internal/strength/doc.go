// Package strength scores password candidates.
//
// Scoring is a pure, deterministic function of the candidate and a static
// common-password set. Character classes, repetition runs, and sequence
// runs are detected by named predicates over runes rather than a text
// matching engine:
//
//	result := strength.Score("Tr0ub4dor&3")
//	fmt.Println(result.Label()) // e.g. "Strong — 70/100"
//
// The score is built from fixed weights so that 100 is attainable:
//
//   - length: 3 points per rune, capped at 60
//   - diversity: 8 points per character class present (max 32)
//   - repetition: -6 for the same rune three or more times in a row
//   - sequence: -6 for three consecutive ascending or descending code points
//   - common: -20 for a case-folded denylist match
//   - entropy: +15 above 60 bits, +8 above 45 bits, -6 below 28 bits
//
// The total is clamped to [0,100].
package strength
