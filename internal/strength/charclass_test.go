package strength

import (
	"math"
	"slices"
	"testing"
)

func TestClassPredicates(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		r        rune
		expected CharClass
	}{
		{'a', ClassLower},
		{'z', ClassLower},
		{'A', ClassUpper},
		{'Z', ClassUpper},
		{'0', ClassDigit},
		{'9', ClassDigit},
		{'!', ClassSpecial},
		{' ', ClassSpecial},
		{'é', ClassSpecial},
		{'Ж', ClassSpecial},
	}

	for _, tc := range testCases {
		t.Run(string(tc.r), func(t *testing.T) {
			t.Parallel()
			if got := ClassOf(tc.r); got != tc.expected {
				t.Errorf("ClassOf(%q) = %v, expected %v", tc.r, got, tc.expected)
			}
		})
	}
}

func TestClassesOf(t *testing.T) {
	t.Parallel()

	t.Run("all four", func(t *testing.T) {
		t.Parallel()
		set := ClassesOf("aB3$")
		if set.Count() != 4 {
			t.Errorf("expected 4 classes, got %d", set.Count())
		}
		if len(set.Missing()) != 0 {
			t.Errorf("expected none missing, got %v", set.Missing())
		}
		if CharSpace(set) != 94 {
			t.Errorf("expected charspace 94, got %d", CharSpace(set))
		}
	})

	t.Run("missing keeps order", func(t *testing.T) {
		t.Parallel()
		got := ClassesOf("B").Missing()
		want := []CharClass{ClassLower, ClassDigit, ClassSpecial}
		if !slices.Equal(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		set := ClassesOf("")
		if set.Count() != 0 || CharSpace(set) != 0 {
			t.Error("expected empty set")
		}
	})
}

func TestEntropy(t *testing.T) {
	t.Parallel()

	if Entropy("") != 0 {
		t.Error("expected zero entropy for empty string")
	}
	want := 8 * math.Log2(26)
	if got := Entropy("password"); math.Abs(got-want) > 1e-9 {
		t.Errorf("Entropy(password) = %f, want %f", got, want)
	}
	if Length("пароль") != 6 {
		t.Errorf("expected rune length 6, got %d", Length("пароль"))
	}
}

func TestHasRepetition(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		s        string
		expected bool
	}{
		{"", false},
		{"aa", false},
		{"aab", false},
		{"aaa", true},
		{"xaaaab", true},
		{"aAa", false},
		{"AAa", false},
		{"!!!", true},
		{"ababab", false},
		{"жжж", true},
		{"\xff\xfe\xfd", false},
		{"\xff\xff\xff", true},
		{"a\xffb\xffc\xff", false},
	}

	for _, tc := range testCases {
		t.Run(tc.s, func(t *testing.T) {
			t.Parallel()
			if got := HasRepetition(tc.s); got != tc.expected {
				t.Errorf("HasRepetition(%q) = %v, expected %v", tc.s, got, tc.expected)
			}
		})
	}
}

func TestHasSequence(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		s        string
		expected bool
	}{
		{"", false},
		{"ab", false},
		{"abc", true},
		{"cba", true},
		{"123", true},
		{"987", true},
		{"xyZ", true},
		{"CbA", true},
		{"135", false},
		{"aXbYcZ", false},
		{"aab", false},
		{"Qz8!mK3#pW5$", false},
	}

	for _, tc := range testCases {
		t.Run(tc.s, func(t *testing.T) {
			t.Parallel()
			if got := HasSequence(tc.s); got != tc.expected {
				t.Errorf("HasSequence(%q) = %v, expected %v", tc.s, got, tc.expected)
			}
		})
	}
}

func TestIsCommon(t *testing.T) {
	t.Parallel()

	for _, pw := range []string{"password", "PASSWORD", "PaSsWoRd", "letmein", "abc123", "Admin"} {
		if !IsCommon(pw) {
			t.Errorf("expected %q to be common", pw)
		}
	}
	for _, pw := range []string{"password2", " password", "passw0rd", ""} {
		if IsCommon(pw) {
			t.Errorf("did not expect %q to be common", pw)
		}
	}

	list := CommonPasswords()
	if len(list) != 12 {
		t.Errorf("expected 12 common passwords, got %d", len(list))
	}
	if !slices.IsSorted(list) {
		t.Error("expected sorted list")
	}
	list[0] = "mutated"
	if IsCommon("mutated") {
		t.Error("CommonPasswords must return a copy")
	}
}

func TestEntropyValidator(t *testing.T) {
	t.Parallel()

	t.Run("disabled when min is zero", func(t *testing.T) {
		t.Parallel()
		if err := CheckMinEntropy("a", 0); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("weak password fails high bar", func(t *testing.T) {
		t.Parallel()
		if err := CheckMinEntropy("password", 60); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("strong password passes", func(t *testing.T) {
		t.Parallel()
		if err := CheckMinEntropy("Xk9#mP2$vL7!qR4&tW8@", 60); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("longer means more entropy", func(t *testing.T) {
		t.Parallel()
		if ValidatorEntropy("Xk9#mP2$vL7!qR4&tW8@") <= ValidatorEntropy("Xk9#") {
			t.Error("expected longer candidate to have more entropy")
		}
	})
}
