// Package model defines the data structures shared by the scorer, the
// generator, the session history, and the report writers.
//
// This package contains the following main types:
//   - Verdict: The qualitative rating derived from a score
//   - ScoreResult: A score with its verdict, suggestions, and breakdown
//   - Generation: A generated password and the phase that produced it
//   - HistoryRecord and HistoryExport: Committed passwords for export
//
// The types live in their own package so that strength, generator,
// session, and report can share them without import cycles. They carry
// JSON tags for report output.
package model
