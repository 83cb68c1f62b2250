package poker

// features are the detector results a hand is classified from
type features struct {
	seq      RankSequence
	flush    bool
	straight bool
	twoPair  bool

	// kind[n] is Kind(n, seq); hasKind[n] reports whether it exists.
	kind    [HandSize]Rank
	hasKind [HandSize]bool
}

func analyze(h Hand) *features {
	f := &features{seq: Ranks(h)}
	f.flush = IsFlush(h)
	f.straight = IsStraight(f.seq)
	for n := 1; n < HandSize; n++ {
		f.kind[n], f.hasKind[n] = Kind(n, f.seq)
	}
	_, _, f.twoPair = TwoPairRanks(f.seq)
	return f
}

// rule is one rung of the category ladder
type rule struct {
	category Category
	matches  func(f *features) bool
	payload  func(f *features) []Rank
}

// rules are checked in order and the first match wins. A hand can satisfy
// several predicates (a straight flush is also a flush), so the order
// decides the category.
var rules = [...]rule{
	{
		category: StraightFlush,
		matches:  func(f *features) bool { return f.straight && f.flush },
		payload:  func(f *features) []Rank { return []Rank{f.seq.Max()} },
	},
	{
		category: FourOfAKind,
		matches:  func(f *features) bool { return f.hasKind[4] },
		payload:  func(f *features) []Rank { return []Rank{f.kind[4], f.kind[1]} },
	},
	{
		category: FullHouse,
		matches:  func(f *features) bool { return f.hasKind[3] && f.hasKind[2] },
		payload:  func(f *features) []Rank { return []Rank{f.kind[3], f.kind[2]} },
	},
	{
		category: Flush,
		matches:  func(f *features) bool { return f.flush },
		payload:  func(f *features) []Rank { return f.seq[:] },
	},
	{
		category: Straight,
		matches:  func(f *features) bool { return f.straight },
		payload:  func(f *features) []Rank { return []Rank{f.seq.Max()} },
	},
	{
		category: ThreeOfAKind,
		matches:  func(f *features) bool { return f.hasKind[3] },
		payload:  func(f *features) []Rank { return append([]Rank{f.seq.Max()}, f.seq[:]...) },
	},
	{
		// The trips slot is never populated for two pair; it stays so every
		// two-pair score has the same shape.
		category: TwoPair,
		matches:  func(f *features) bool { return f.twoPair },
		payload:  func(f *features) []Rank { return append([]Rank{f.kind[3], f.kind[2]}, f.seq[:]...) },
	},
	{
		category: OnePair,
		matches:  func(f *features) bool { return f.hasKind[2] },
		payload:  func(f *features) []Rank { return f.seq[:] },
	},
	{
		category: HighCard,
		matches:  func(*features) bool { return true },
		payload:  func(f *features) []Rank { return f.seq[:] },
	},
}

// Classify scores a hand. It never fails for a well-formed Hand.
func Classify(h Hand) Score {
	f := analyze(h)
	for _, r := range rules {
		if !r.matches(f) {
			continue
		}
		score := Score{Category: r.category}
		copy(score.Tiebreak[:], r.payload(f))
		return score
	}

	// unreachable: the high card rule always matches
	return Score{}
}
