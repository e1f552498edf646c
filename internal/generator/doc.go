// Package generator produces passwords that reach the maximum strength score.
//
// Generation is a bounded generate-and-test search, not a constraint solver.
// It runs these phases in order and stops at the first candidate scoring 100:
//
//  1. Constructive seed: one character from each class, the rest sampled with
//     local anti-repetition and anti-sequence checks, then shuffled and repaired.
//  2. Mutation: up to 2000 swap-and-overwrite mutations of the best candidate.
//  3. Fallback: up to 5000 fresh candidates without the local checks.
//  4. Last resort: the original seed, unmodified.
//
// A Generator is not safe for concurrent use. The Worker type runs one
// generation at a time on its own goroutine so interactive callers stay
// responsive.
package generator
