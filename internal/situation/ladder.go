package situation

import "strings"

// Ladder is an ordered list of actor ranks, lowest first. Ranks from the
// high-rank index upward satisfy the high_rank flag.
type Ladder struct {
	ranks    []string
	index    map[string]int
	highFrom int
}

// NewLadder creates a ladder from ranks (lowest first). highRank names the first
// rank that counts as high; an empty or unknown highRank disables the flag.
func NewLadder(ranks []string, highRank string) Ladder {
	l := Ladder{
		ranks:    make([]string, len(ranks)),
		index:    make(map[string]int, len(ranks)),
		highFrom: -1,
	}
	for i, r := range ranks {
		key := strings.ToLower(r)
		l.ranks[i] = key
		l.index[key] = i
	}
	if i, ok := l.index[strings.ToLower(highRank)]; ok {
		l.highFrom = i
	}
	return l
}

// Index returns the position of rank in the ladder.
func (l Ladder) Index(rank string) (int, bool) {
	i, ok := l.index[strings.ToLower(rank)]
	return i, ok
}

// AtLeast returns true if rank is at or above floor. Unknown ranks never qualify.
func (l Ladder) AtLeast(rank, floor string) bool {
	ri, ok := l.Index(rank)
	if !ok {
		return false
	}
	fi, ok := l.Index(floor)
	if !ok {
		return false
	}
	return ri >= fi
}

// IsHigh returns true if rank is at or above the ladder's high-rank threshold.
func (l Ladder) IsHigh(rank string) bool {
	if l.highFrom < 0 {
		return false
	}
	i, ok := l.Index(rank)
	return ok && i >= l.highFrom
}

// Ranks returns the ladder ranks, lowest first.
func (l Ladder) Ranks() []string {
	out := make([]string, len(l.ranks))
	copy(out, l.ranks)
	return out
}
