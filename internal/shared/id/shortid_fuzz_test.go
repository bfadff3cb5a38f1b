package id

import (
	"strings"
	"testing"
)

func FuzzParsePrefixedID(f *testing.F) {
	f.Add("qt_xK9mP2vL3nQ")
	f.Add("dc_")
	f.Add("")
	f.Add("no-separator")
	f.Add("qt_a_b_c")

	f.Fuzz(func(t *testing.T, input string) {
		prefix, shortID, err := ParsePrefixedID(input)
		if err != nil {
			return
		}
		// Round trip must reproduce the input.
		if got := FormatWithPrefix(prefix, shortID); shortID != "" && got != input {
			t.Errorf("round trip mismatch: input %q, got %q", input, got)
		}
		if strings.Contains(prefix, "_") {
			t.Errorf("prefix %q contains separator", prefix)
		}
	})
}

func FuzzGenerate(f *testing.F) {
	f.Add(1)
	f.Add(12)
	f.Add(64)

	f.Fuzz(func(t *testing.T, length int) {
		if length > 1024 {
			t.Skip()
		}
		id, err := Generate(length)
		if err != nil {
			t.Fatalf("Generate(%d): %v", length, err)
		}
		want := length
		if length <= 0 {
			want = DefaultLength
		}
		if len(id) != want {
			t.Errorf("Generate(%d) length = %d, want %d", length, len(id), want)
		}
		for _, r := range id {
			if !strings.ContainsRune(alphabet, r) {
				t.Errorf("Generate(%d) produced out-of-alphabet rune %q", length, r)
			}
		}
	})
}
