package session

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/awnumar/memguard"
	"github.com/google/uuid"

	"github.com/nao1215/pwstrength/internal/model"
	"github.com/nao1215/pwstrength/internal/strength"
)

// DefaultMaskRune replaces every candidate rune in the masked projection.
const DefaultMaskRune = '•'

// Entry is the read-only projection of a committed candidate.
type Entry struct {
	Sequence    int
	Masked      string
	Score       int
	Verdict     model.Verdict
	Suggestions []string
	Timestamp   time.Time
}

// entry is the stored form. raw is sealed and only opened for export.
type entry struct {
	Entry
	raw *memguard.Enclave
}

// History is an ordered, in-memory list of committed candidates.
// It is safe for concurrent use.
type History struct {
	id     string
	clock  func() time.Time
	mask   rune
	logger *slog.Logger

	mu      sync.RWMutex
	entries []entry
	nextSeq int
}

// Option configures a History.
type Option func(*History)

// WithClock sets the time source used for timestamps.
func WithClock(clock func() time.Time) Option {
	return func(h *History) {
		h.clock = clock
	}
}

// WithMaskRune sets the rune used in the masked projection.
func WithMaskRune(r rune) Option {
	return func(h *History) {
		h.mask = r
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *History) {
		h.logger = logger
	}
}

// New creates an empty History with a fresh session ID.
func New(opts ...Option) *History {
	h := &History{
		id:      uuid.New().String(),
		clock:   time.Now,
		mask:    DefaultMaskRune,
		nextSeq: 1,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	return h
}

// ID returns the session ID.
func (h *History) ID() string {
	return h.id
}

// Commit scores candidate and appends it to the history.
func (h *History) Commit(candidate string) (Entry, error) {
	if strength.IsBlank(candidate) {
		return Entry{}, ErrEmptyCandidate
	}

	result := strength.Score(candidate)
	sealed := memguard.NewEnclave([]byte(candidate))
	if sealed == nil {
		return Entry{}, ErrSealFailed
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	e := entry{
		Entry: Entry{
			Sequence:    h.nextSeq,
			Masked:      h.maskOf(candidate),
			Score:       result.Score,
			Verdict:     result.Verdict,
			Suggestions: result.Suggestions,
			Timestamp:   h.clock(),
		},
		raw: sealed,
	}
	h.entries = append(h.entries, e)
	h.nextSeq++

	h.logger.Debug("committed candidate",
		"session_id", h.id,
		"sequence", e.Sequence,
		"score", e.Score,
		"verdict", e.Verdict.Slug(),
	)
	return e.Entry, nil
}

// Entries returns the projection of every entry in commit order.
func (h *History) Entries() []Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Entry, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.Entry
		out[i].Suggestions = append([]string(nil), e.Suggestions...)
	}
	return out
}

// Records opens each sealed candidate and returns export records in
// commit order.
func (h *History) Records() ([]model.HistoryRecord, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	records := make([]model.HistoryRecord, 0, len(h.entries))
	for _, e := range h.entries {
		buf, err := e.raw.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open entry %d: %w", e.Sequence, err)
		}
		records = append(records, model.HistoryRecord{
			Index:     e.Sequence,
			Candidate: string(buf.Bytes()),
			Score:     e.Score,
			Verdict:   e.Verdict,
			Timestamp: e.Timestamp,
		})
		buf.Destroy()
	}
	return records, nil
}

// Export returns the full history ready for a report writer.
func (h *History) Export() (*model.HistoryExport, error) {
	records, err := h.Records()
	if err != nil {
		return nil, err
	}
	h.logger.Debug("exported history", "session_id", h.id, "records", len(records))
	return &model.HistoryExport{
		SessionID:  h.id,
		ExportedAt: h.clock(),
		Records:    records,
	}, nil
}

// Len returns the number of committed entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Clear drops every entry. Sequence numbers keep increasing afterwards.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
}

func (h *History) maskOf(candidate string) string {
	return strings.Repeat(string(h.mask), strength.Length(candidate))
}

// PurgeSecureMemory wipes every sealed candidate in the process. Existing
// Histories cannot be exported afterwards.
func PurgeSecureMemory() {
	memguard.Purge()
}
