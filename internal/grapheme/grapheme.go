package grapheme

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Bounds returns the byte offsets at which the grapheme clusters of text
// start, followed by len(text). Cluster i is text[b[i]:b[i+1]].
func Bounds(text string) []int {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]int, 0, utf8.RuneCountInString(text)+1)
	for g.Next() {
		from, _ := g.Positions()
		out = append(out, from)
	}
	return append(out, len(text))
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Width returns the monospace cell width of text, summed per cluster.
func Width(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	total := 0
	for g.Next() {
		total += clusterWidth(g.Str())
	}
	return total
}

func clusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(cluster)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
