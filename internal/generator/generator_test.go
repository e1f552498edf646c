package generator

import (
	"errors"
	"testing"

	"github.com/nao1215/pwstrength/internal/model"
	"github.com/nao1215/pwstrength/internal/strength"
)

func testSeed(b byte) [32]byte {
	var s [32]byte
	for i := range s {
		s[i] = b + byte(i)
	}
	return s
}

// countingScorer reports MaxScore from the Nth call on.
type countingScorer struct {
	calls   int
	maxedAt int
}

func (c *countingScorer) Score(candidate string) model.ScoreResult {
	c.calls++
	if c.maxedAt > 0 && c.calls >= c.maxedAt {
		return model.ScoreResult{Score: model.MaxScore, Verdict: model.VerdictVeryStrong}
	}
	return model.ScoreResult{Score: 50, Verdict: model.VerdictModerate}
}

// TestGenerateLengthAndClasses tests the core generation guarantee.
func TestGenerateLengthAndClasses(t *testing.T) {
	t.Parallel()

	for i := range 20 {
		g := New(WithSeed(testSeed(byte(i))))
		pw, err := g.Generate(26)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pw) != 26 {
			t.Errorf("expected length 26, got %d (%q)", len(pw), pw)
		}
		if got := strength.ClassesOf(pw).Count(); got != 4 {
			t.Errorf("expected all 4 classes in %q, got %d", pw, got)
		}
	}
}

// TestGenerateReachesMax tests that reachable lengths hit 100.
func TestGenerateReachesMax(t *testing.T) {
	t.Parallel()

	for _, length := range []int{18, 20, 26, 64} {
		g := New(WithSeed(testSeed(byte(length))))
		gen, err := g.GenerateDetailed(length)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gen.Phase == model.PhaseLastResort {
			t.Errorf("length %d: expected a maxed password, got last resort", length)
		}
		if got := strength.Score(gen.Password).Score; got != model.MaxScore {
			t.Errorf("length %d: expected score 100, got %d", length, got)
		}
		if gen.Result.Score != model.MaxScore {
			t.Errorf("length %d: reported score %d", length, gen.Result.Score)
		}
	}
}

// TestGenerateInvalidLength tests rejection of non-positive lengths.
func TestGenerateInvalidLength(t *testing.T) {
	t.Parallel()

	g := New(WithSeed(testSeed(1)))
	for _, length := range []int{0, -1} {
		if _, err := g.Generate(length); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("Generate(%d): expected ErrInvalidLength, got %v", length, err)
		}
		if _, err := g.Seed(length); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("Seed(%d): expected ErrInvalidLength, got %v", length, err)
		}
	}
}

// TestGenerateLastResort tests that an unreachable target returns the seed.
func TestGenerateLastResort(t *testing.T) {
	t.Parallel()

	// 17 runes cap out at 51 + 32 + 15 = 98.
	gen, err := New(WithSeed(testSeed(7))).GenerateDetailed(17)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.Phase != model.PhaseLastResort {
		t.Fatalf("expected last resort, got %v", gen.Phase)
	}
	if gen.Attempts != MaxAttempts {
		t.Errorf("expected %d attempts, got %d", MaxAttempts, gen.Attempts)
	}

	seed, err := New(WithSeed(testSeed(7))).Seed(17)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.Password != seed {
		t.Errorf("expected original seed %q, got %q", seed, gen.Password)
	}
	if len(gen.Password) != 17 {
		t.Errorf("expected length 17, got %d", len(gen.Password))
	}
}

// TestGeneratePhases drives each phase with a stub scorer.
func TestGeneratePhases(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		maxedAt  int
		phase    model.GenerationPhase
		attempts int
	}{
		{name: "seed", maxedAt: 1, phase: model.PhaseSeed, attempts: 1},
		{name: "first mutation", maxedAt: 2, phase: model.PhaseMutation, attempts: 2},
		{name: "last mutation", maxedAt: 1 + MutationAttempts, phase: model.PhaseMutation, attempts: 1 + MutationAttempts},
		{name: "first fallback", maxedAt: 2 + MutationAttempts, phase: model.PhaseFallback, attempts: 2 + MutationAttempts},
		{name: "never", maxedAt: 0, phase: model.PhaseLastResort, attempts: MaxAttempts},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			scorer := &countingScorer{maxedAt: tc.maxedAt}
			gen, err := New(WithSeed(testSeed(3)), WithScorer(scorer)).GenerateDetailed(12)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gen.Phase != tc.phase {
				t.Errorf("expected phase %v, got %v", tc.phase, gen.Phase)
			}
			if gen.Attempts != tc.attempts {
				t.Errorf("expected %d attempts, got %d", tc.attempts, gen.Attempts)
			}
			if len(gen.Password) != 12 {
				t.Errorf("expected length 12, got %d", len(gen.Password))
			}
		})
	}
}

// TestSeedLocalChecks tests the anti-repetition and anti-sequence checks
// applied to fill positions.
func TestSeedLocalChecks(t *testing.T) {
	t.Parallel()

	t.Run("repeat is rejected", func(t *testing.T) {
		t.Parallel()
		if !extendsRun([]byte("xa"), 'a') {
			t.Error("expected repeat to be detected")
		}
	})

	t.Run("ascending sequence is rejected", func(t *testing.T) {
		t.Parallel()
		if !extendsRun([]byte("aB"), 'c') {
			t.Error("expected case-folded sequence to be detected")
		}
	})

	t.Run("descending sequence is rejected", func(t *testing.T) {
		t.Parallel()
		if !extendsRun([]byte("32"), '1') {
			t.Error("expected descending sequence to be detected")
		}
	})

	t.Run("unrelated character is accepted", func(t *testing.T) {
		t.Parallel()
		if extendsRun([]byte("a!"), 'Q') {
			t.Error("did not expect a run")
		}
		if extendsRun(nil, 'a') {
			t.Error("did not expect a run on empty prefix")
		}
	})

	t.Run("guarded pick avoids runs", func(t *testing.T) {
		t.Parallel()
		g := New(WithSeed(testSeed(9)))
		prefix := []byte("ab")
		for range 200 {
			c := g.pickGuarded(prefix)
			if c == 'b' || c == 'c' || c == 'C' {
				t.Fatalf("pickGuarded returned %q after %q", c, prefix)
			}
		}
	})
}

// TestSeedRepair tests the repair pass on lengths too short for all classes.
func TestSeedRepair(t *testing.T) {
	t.Parallel()

	for i := range 10 {
		g := New(WithSeed(testSeed(byte(40 + i))))

		one, err := g.Seed(1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// lowercase is seeded, upper is the first missing class
		if !strength.IsUpper(rune(one[0])) {
			t.Errorf("Seed(1) = %q, expected uppercase", one)
		}

		two, err := g.Seed(2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strength.IsDigit(rune(two[0])) || !strength.IsSpecial(rune(two[1])) {
			t.Errorf("Seed(2) = %q, expected digit then special", two)
		}

		three, err := g.Seed(3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strength.IsSpecial(rune(three[0])) {
			t.Errorf("Seed(3) = %q, expected special first", three)
		}
		if len(three) != 3 {
			t.Errorf("expected length 3, got %d", len(three))
		}

		four, err := g.Seed(4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strength.ClassesOf(four).Count() != 4 {
			t.Errorf("Seed(4) = %q, expected all classes", four)
		}
	}
}

// TestGenerateDeterministic tests that a fixed seed reproduces output.
func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	a, err := New(WithSeed(testSeed(5))).Generate(30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := New(WithSeed(testSeed(5))).Generate(30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("expected identical output, got %q and %q", a, b)
	}
}

// TestMutatePreservesLength tests the mutation operator.
func TestMutatePreservesLength(t *testing.T) {
	t.Parallel()

	g := New(WithSeed(testSeed(11)))
	src := []byte("Abcdef1!")
	orig := string(src)
	for range 100 {
		out := g.mutate(src)
		if len(out) != len(src) {
			t.Fatalf("mutate changed length to %d", len(out))
		}
	}
	if string(src) != orig {
		t.Error("mutate modified its input")
	}
}

// TestAlphabet tests the generator alphabet matches the scorer charspace.
func TestAlphabet(t *testing.T) {
	t.Parallel()

	if len(specials) != 32 {
		t.Errorf("expected 32 specials, got %d", len(specials))
	}
	if len(alphabet) != 94 {
		t.Errorf("expected 94 characters, got %d", len(alphabet))
	}
	for _, c := range specials {
		if !strength.IsSpecial(rune(c)) {
			t.Errorf("%q is not special", c)
		}
	}
}
