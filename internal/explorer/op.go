package explorer

import "github.com/iw2rmb/textview/view"

// Op is one of the view search families.
type Op int

const (
	OpFind Op = iota
	OpRFind
	OpFindFirstOf
	OpFindLastOf
	OpFindFirstNotOf
	OpFindLastNotOf
	opCount
)

var opNames = [...]string{
	OpFind:           "find",
	OpRFind:          "rfind",
	OpFindFirstOf:    "find_first_of",
	OpFindLastOf:     "find_last_of",
	OpFindFirstNotOf: "find_first_not_of",
	OpFindLastNotOf:  "find_last_not_of",
}

func (o Op) String() string {
	if o < 0 || o >= opCount {
		return "unknown"
	}
	return opNames[o]
}

// Reverse reports whether the operation scans right to left.
func (o Op) Reverse() bool {
	return o == OpRFind || o == OpFindLastOf || o == OpFindLastNotOf
}

// DefaultPos is the position argument used while the position is on auto.
func (o Op) DefaultPos() int {
	if o.Reverse() {
		return view.NPos
	}
	return 0
}

// Apply runs the operation over text with pattern as needle or set.
func (o Op) Apply(text, pattern view.Runes, pos int) int {
	switch o {
	case OpFind:
		return text.Find(pattern, pos)
	case OpRFind:
		return text.RFind(pattern, pos)
	case OpFindFirstOf:
		return text.FindFirstOf(pattern, pos)
	case OpFindLastOf:
		return text.FindLastOf(pattern, pos)
	case OpFindFirstNotOf:
		return text.FindFirstNotOf(pattern, pos)
	case OpFindLastNotOf:
		return text.FindLastNotOf(pattern, pos)
	default:
		return view.NPos
	}
}

// MatchLen returns how many characters a hit covers: the needle for
// substring searches, a single character for set searches.
func (o Op) MatchLen(pattern view.Runes) int {
	if o == OpFind || o == OpRFind {
		return pattern.Len()
	}
	return 1
}
