package model

import "time"

// HistoryRecord is the export projection of one committed candidate.
// Unlike the on-screen projection it carries the raw candidate, so it
// should only exist for the duration of an export.
type HistoryRecord struct {
	// Index is the 1-based commit sequence number.
	Index int `json:"index"`

	// Candidate is the raw password as committed.
	Candidate string `json:"password"`

	// Score is the score at commit time.
	Score int `json:"score"`

	// Verdict is the verdict at commit time.
	Verdict Verdict `json:"verdict"`

	// Timestamp is when the candidate was committed.
	Timestamp time.Time `json:"timestamp"`
}

// HistoryExport is the full session history handed to a report writer.
type HistoryExport struct {
	// SessionID identifies the process-lifetime session.
	SessionID string `json:"session_id"`

	// ExportedAt is when the export was taken.
	ExportedAt time.Time `json:"exported_at"`

	// Records are ordered by Index.
	Records []HistoryRecord `json:"records"`
}

// VerdictCounts tallies records per verdict.
func (h *HistoryExport) VerdictCounts() map[Verdict]int {
	counts := make(map[Verdict]int, len(AllVerdicts()))
	for _, r := range h.Records {
		counts[r.Verdict]++
	}
	return counts
}
