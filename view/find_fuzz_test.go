package view

import (
	"strings"
	"testing"
)

// asciiOnly keeps the strings package's rune-based set searches byte-exact.
func asciiOnly(s string) string {
	b := []byte(s)
	for i := range b {
		b[i] &= 0x7f
	}
	return string(b)
}

func wantIndex(i, offset int) int {
	if i < 0 {
		return NPos
	}
	return i + offset
}

func FuzzSearch_MatchesStringsPackage(f *testing.F) {
	f.Add("abcabcabc", "abc", 1)
	f.Add("hexyz", "xyz", 0)
	f.Add("", "", 0)
	f.Add("hello world", "lo", 7)
	f.Add("aaaa", "aa", -3)

	f.Fuzz(func(t *testing.T, hay, needle string, rawPos int) {
		hay, needle = asciiOnly(hay), asciiOnly(needle)
		v, n := FromString(hay), FromString(needle)
		pos := int(uint(rawPos) % uint(len(hay)+2))

		want := NPos
		if pos < len(hay) {
			want = wantIndex(strings.Index(hay[pos:], needle), pos)
		}
		if got := v.Find(n, pos); got != want {
			t.Fatalf("Find(%q in %q, %d): got %d, want %d", needle, hay, pos, got, want)
		}

		end := min(pos+len(needle), len(hay))
		if got, want := v.RFind(n, pos), wantIndex(strings.LastIndex(hay[:end], needle), 0); got != want {
			t.Fatalf("RFind(%q in %q, %d): got %d, want %d", needle, hay, pos, got, want)
		}

		want = NPos
		if pos < len(hay) {
			want = wantIndex(strings.IndexAny(hay[pos:], needle), pos)
		}
		if got := v.FindFirstOf(n, pos); got != want {
			t.Fatalf("FindFirstOf(%q in %q, %d): got %d, want %d", needle, hay, pos, got, want)
		}

		notIn := func(r rune) bool { return !strings.ContainsRune(needle, r) }
		want = NPos
		if pos < len(hay) {
			want = wantIndex(strings.IndexFunc(hay[pos:], notIn), pos)
		}
		if got := v.FindFirstNotOf(n, pos); got != want {
			t.Fatalf("FindFirstNotOf(%q in %q, %d): got %d, want %d", needle, hay, pos, got, want)
		}

		last := min(pos, len(hay)-1)
		wantLast, wantLastNot := NPos, NPos
		if last >= 0 {
			wantLast = wantIndex(strings.LastIndexAny(hay[:last+1], needle), 0)
			wantLastNot = wantIndex(strings.LastIndexFunc(hay[:last+1], notIn), 0)
		}
		if got := v.FindLastOf(n, pos); got != wantLast {
			t.Fatalf("FindLastOf(%q in %q, %d): got %d, want %d", needle, hay, pos, got, wantLast)
		}
		if got := v.FindLastNotOf(n, pos); got != wantLastNot {
			t.Fatalf("FindLastNotOf(%q in %q, %d): got %d, want %d", needle, hay, pos, got, wantLastNot)
		}
	})
}
