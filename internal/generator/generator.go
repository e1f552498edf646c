package generator

import (
	crand "crypto/rand"
	"log/slog"
	"math/rand/v2"

	"github.com/nao1215/pwstrength/internal/model"
	"github.com/nao1215/pwstrength/internal/strength"
)

// Retry ceilings. These bound the worst-case latency of a generation.
const (
	// SeedSampleRetries is how many times the seed builder resamples a
	// position that would repeat or extend a sequence before accepting it.
	SeedSampleRetries = 25

	// MutationAttempts is the size of the mutation phase.
	MutationAttempts = 2000

	// FallbackAttempts is the size of the fresh-candidate phase.
	FallbackAttempts = 5000

	// MaxAttempts is the total number of scorings a generation can spend.
	MaxAttempts = 1 + MutationAttempts + FallbackAttempts
)

// Alphabets. specials is the 32 printable ASCII punctuation characters,
// matching the special charspace the scorer assumes.
var (
	lowercase = []byte("abcdefghijklmnopqrstuvwxyz")
	uppercase = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	digits    = []byte("0123456789")
	specials  = []byte("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~")

	alphabet = concat(lowercase, uppercase, digits, specials)

	classAlphabets = map[strength.CharClass][]byte{
		strength.ClassLower:   lowercase,
		strength.ClassUpper:   uppercase,
		strength.ClassDigit:   digits,
		strength.ClassSpecial: specials,
	}
)

// Scorer is the scoring dependency of a Generator.
type Scorer interface {
	Score(candidate string) model.ScoreResult
}

// Generator builds and tests candidate passwords.
type Generator struct {
	rng    *rand.Rand
	scorer Scorer
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes the generator deterministic. Intended for tests.
func WithSeed(seed [32]byte) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewChaCha8(seed)) //nolint:gosec // ChaCha8 is a CSPRNG
	}
}

// WithScorer replaces the strength scorer used to test candidates.
func WithScorer(s Scorer) Option {
	return func(g *Generator) {
		g.scorer = s
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New creates a Generator seeded from crypto/rand unless WithSeed is given.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewChaCha8(randomSeed())) //nolint:gosec // ChaCha8 is a CSPRNG
	}
	if g.scorer == nil {
		g.scorer = strength.NewScorer()
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

// Generate returns a password of exactly length characters.
// See GenerateDetailed.
func (g *Generator) Generate(length int) (string, error) {
	gen, err := g.GenerateDetailed(length)
	if err != nil {
		return "", err
	}
	return gen.Password, nil
}

// GenerateDetailed returns a password of exactly length characters that
// scores 100 with high probability, along with the phase that found it.
// Failing to reach 100 is not an error: the constructive seed is returned
// with PhaseLastResort. Lengths below 18 can never reach 100.
func (g *Generator) GenerateDetailed(length int) (model.Generation, error) {
	if length <= 0 {
		return model.Generation{}, ErrInvalidLength
	}

	seed := g.build(length, true)
	seedResult := g.scorer.Score(string(seed))
	attempts := 1
	if seedResult.Maxed() {
		return generation(seed, model.PhaseSeed, attempts, seedResult), nil
	}

	best, bestScore := seed, seedResult.Score
	for range MutationAttempts {
		candidate := g.mutate(best)
		result := g.scorer.Score(string(candidate))
		attempts++
		if result.Maxed() {
			return generation(candidate, model.PhaseMutation, attempts, result), nil
		}
		if result.Score > bestScore {
			best, bestScore = candidate, result.Score
		}
	}

	for range FallbackAttempts {
		candidate := g.build(length, false)
		result := g.scorer.Score(string(candidate))
		attempts++
		if result.Maxed() {
			return generation(candidate, model.PhaseFallback, attempts, result), nil
		}
	}

	g.logger.Debug("generation fell back to seed",
		"length", length,
		"attempts", attempts,
		"score", seedResult.Score,
	)
	return generation(seed, model.PhaseLastResort, attempts, seedResult), nil
}

// Seed returns a constructive seed of the given length without testing it.
func (g *Generator) Seed(length int) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}
	return string(g.build(length, true)), nil
}

// build creates a candidate with one character per class up front, fills
// the rest from the full alphabet, shuffles, and repairs missing classes.
// When guarded, each fill position avoids repeating the previous character
// or completing a 3-run sequence.
func (g *Generator) build(length int, guarded bool) []byte {
	buf := make([]byte, length)
	for i, class := range strength.AllClasses {
		if i >= length {
			break
		}
		buf[i] = g.pick(classAlphabets[class])
	}
	for i := len(strength.AllClasses); i < length; i++ {
		if guarded {
			buf[i] = g.pickGuarded(buf[:i])
		} else {
			buf[i] = g.pick(alphabet)
		}
	}

	g.rng.Shuffle(length, func(i, j int) {
		buf[i], buf[j] = buf[j], buf[i]
	})
	g.repair(buf)
	return buf
}

// pickGuarded samples up to SeedSampleRetries times and returns the first
// character that does not extend a run at the end of prefix, or the last
// sample if none qualifies.
func (g *Generator) pickGuarded(prefix []byte) byte {
	var c byte
	for range SeedSampleRetries {
		c = g.pick(alphabet)
		if !extendsRun(prefix, c) {
			return c
		}
	}
	return c
}

// repair overwrites positions 0,1,2,3 in turn with a character from each
// class missing from buf. The result is not re-validated, so it can
// reintroduce an adjacent repeat or sequence.
func (g *Generator) repair(buf []byte) {
	missing := strength.ClassesOf(string(buf)).Missing()
	for i, class := range missing {
		if i >= len(buf) {
			return
		}
		buf[i] = g.pick(classAlphabets[class])
	}
}

// mutate returns a copy of src with two random positions swapped and one
// random position overwritten.
func (g *Generator) mutate(src []byte) []byte {
	out := make([]byte, len(src))
	copy(out, src)
	i, j := g.rng.IntN(len(out)), g.rng.IntN(len(out))
	out[i], out[j] = out[j], out[i]
	out[g.rng.IntN(len(out))] = g.pick(alphabet)
	return out
}

func (g *Generator) pick(set []byte) byte {
	return set[g.rng.IntN(len(set))]
}

// extendsRun reports whether appending c to prefix repeats the last
// character or completes an ascending or descending 3-run (case-folded).
func extendsRun(prefix []byte, c byte) bool {
	n := len(prefix)
	if n >= 1 && prefix[n-1] == c {
		return true
	}
	if n >= 2 {
		return strength.IsSequenceRun(foldASCII(prefix[n-2]), foldASCII(prefix[n-1]), foldASCII(c))
	}
	return false
}

func foldASCII(b byte) rune {
	if b >= 'A' && b <= 'Z' {
		return rune(b + ('a' - 'A'))
	}
	return rune(b)
}

func generation(pw []byte, phase model.GenerationPhase, attempts int, result model.ScoreResult) model.Generation {
	return model.Generation{
		Password: string(pw),
		Length:   len(pw),
		Phase:    phase,
		Attempts: attempts,
		Result:   result,
	}
}

func randomSeed() [32]byte {
	var seed [32]byte
	_, _ = crand.Read(seed[:]) //nolint:errcheck // crypto/rand.Read does not fail on supported platforms
	return seed
}

func concat(sets ...[]byte) []byte {
	var out []byte
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}
