package hands

import (
	"sort"

	"github.com/feltkit/holdem/cards"
)

// analysis indexes a card pool by rank and suit. It lives for a single
// NewCombination call and backs all the detectors.
type analysis struct {
	pool   []cards.Card
	byRank map[cards.Rank][]cards.Card
	bySuit map[cards.Suit][]cards.Card
}

func analyze(pool []cards.Card) *analysis {
	a := &analysis{
		pool:   pool,
		byRank: make(map[cards.Rank][]cards.Card),
		bySuit: make(map[cards.Suit][]cards.Card),
	}
	for _, card := range pool {
		a.byRank[card.Rank] = append(a.byRank[card.Rank], card)
		a.bySuit[card.Suit] = append(a.bySuit[card.Suit], card)
	}
	return a
}

// ranksWith lists the ranks occurring at least n times, highest first.
func (a *analysis) ranksWith(n int) []cards.Rank {
	var ranks []cards.Rank
	for rank, cs := range a.byRank {
		if len(cs) >= n {
			ranks = append(ranks, rank)
		}
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })
	return ranks
}

// cardsOfRank returns up to n cards of the rank.
func (a *analysis) cardsOfRank(rank cards.Rank, n int) []cards.Card {
	cs := a.byRank[rank]
	if len(cs) > n {
		cs = cs[:n]
	}
	out := make([]cards.Card, len(cs))
	copy(out, cs)
	return out
}

// distinctRanksDesc lists every rank present in the pool, highest first.
func (a *analysis) distinctRanksDesc() []cards.Rank {
	return a.ranksWith(1)
}

// mostCommonSuit picks the suit with the most cards in the pool. Ties are
// broken by the fixed suit order so evaluation stays deterministic.
func (a *analysis) mostCommonSuit() cards.Suit {
	best := cards.Suits[0]
	for _, suit := range cards.Suits {
		if len(a.bySuit[suit]) > len(a.bySuit[best]) {
			best = suit
		}
	}
	return best
}

// cardOfRank picks a card of the rank, preferring the given suit when the
// rank occurs more than once.
func (a *analysis) cardOfRank(rank cards.Rank, preferred cards.Suit) cards.Card {
	cs := a.byRank[rank]
	for _, card := range cs {
		if card.Suit == preferred {
			return card
		}
	}
	return cs[0]
}

// kickersFor pads a partial combination to five cards with the strongest
// remaining cards of the pool.
func (a *analysis) kickersFor(used []cards.Card) []cards.Card {
	missing := 5 - len(used)
	if missing <= 0 {
		return nil
	}
	taken := make(map[cards.Card]bool, len(used))
	for _, card := range used {
		taken[card] = true
	}
	var rest []cards.Card
	for _, card := range a.pool {
		if !taken[card] {
			rest = append(rest, card)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].Rank > rest[j].Rank })
	if len(rest) > missing {
		rest = rest[:missing]
	}
	return rest
}
