package view

import "github.com/iw2rmb/textview/internal/grapheme"

// Graphemes splits a UTF-8 byte view into one sub-view per grapheme cluster.
// The sub-views share v's storage.
func Graphemes(v Bytes) []Bytes {
	bounds := grapheme.Bounds(bytesString(v.s))
	if len(bounds) == 0 {
		return nil
	}
	out := make([]Bytes, 0, len(bounds)-1)
	for i := 0; i+1 < len(bounds); i++ {
		out = append(out, v.sub(bounds[i], bounds[i+1]-bounds[i]))
	}
	return out
}

// GraphemeCount returns the number of grapheme clusters in v.
func GraphemeCount(v Bytes) int {
	return grapheme.Count(bytesString(v.s))
}

// GraphemeSlice returns the sub-view covering clusters [start, end). Out of
// range arguments are clamped, so the result is empty rather than an error.
func GraphemeSlice(v Bytes, start, end int) Bytes {
	bounds := grapheme.Bounds(bytesString(v.s))
	clusters := max(len(bounds)-1, 0)
	start = min(max(start, 0), clusters)
	end = min(max(end, start), clusters)
	if start == end {
		return Bytes{}
	}
	return v.sub(bounds[start], bounds[end]-bounds[start])
}

// Width returns the monospace cell width of v.
func Width(v Bytes) int {
	return grapheme.Width(bytesString(v.s))
}

// TrimSpace drops leading and trailing whitespace clusters.
func TrimSpace(v Bytes) Bytes {
	text := bytesString(v.s)
	bounds := grapheme.Bounds(text)
	if len(bounds) == 0 {
		return v
	}
	lo, hi := 0, len(bounds)-1
	for lo < hi && grapheme.IsSpace(text[bounds[lo]:bounds[lo+1]]) {
		lo++
	}
	for hi > lo && grapheme.IsSpace(text[bounds[hi-1]:bounds[hi]]) {
		hi--
	}
	return v.sub(bounds[lo], bounds[hi]-bounds[lo])
}
