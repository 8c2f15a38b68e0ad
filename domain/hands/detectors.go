package hands

import (
	"sort"

	"github.com/feltkit/holdem/cards"
)

// A detector recognizes one label in an analyzed pool. find returns the
// cards making up the combination, most significant first, or nil when the
// pool does not contain the label.
type detector struct {
	label Label
	find  func(a *analysis) []cards.Card
}

// detectors run strongest label first. findHighCard always matches, so the
// chain never falls through.
var detectors = []detector{
	{StraightFlush, findStraightFlush},
	{Quads, findQuads},
	{FullHouse, findFullHouse},
	{Flush, findFlush},
	{Straight, findStraight},
	{Trips, findTrips},
	{TwoPair, findTwoPair},
	{Pair, findPair},
	{HighCard, findHighCard},
}

func findStraightFlush(a *analysis) []cards.Card {
	for _, suit := range cards.Suits {
		suited := a.bySuit[suit]
		if len(suited) < 5 {
			continue
		}
		if run := findStraight(analyze(suited)); run != nil {
			return run
		}
	}
	return nil
}

func findQuads(a *analysis) []cards.Card {
	ranks := a.ranksWith(4)
	if len(ranks) == 0 {
		return nil
	}
	return a.cardsOfRank(ranks[0], 4)
}

func findFullHouse(a *analysis) []cards.Card {
	trips := a.ranksWith(3)
	if len(trips) == 0 {
		return nil
	}
	// The pair may come from a second set of trips, in which case only its
	// two highest cards are used.
	for _, rank := range a.ranksWith(2) {
		if rank == trips[0] {
			continue
		}
		return append(a.cardsOfRank(trips[0], 3), a.cardsOfRank(rank, 2)...)
	}
	return nil
}

func findFlush(a *analysis) []cards.Card {
	suited := a.bySuit[a.mostCommonSuit()]
	if len(suited) < 5 {
		return nil
	}
	out := make([]cards.Card, len(suited))
	copy(out, suited)
	sort.Slice(out, func(i, j int) bool { return out[i].Rank > out[j].Rank })
	return out[:5]
}

// findStraight slides a five rank window over the distinct ranks of the
// pool, highest first, and takes the first run of consecutive ranks. An
// ace plays high only: A-2-3-4-5 is not a straight here. When a rank
// occurs in several suits the card of the pool's most common suit is
// preferred.
func findStraight(a *analysis) []cards.Card {
	ranks := a.distinctRanksDesc()
	preferred := a.mostCommonSuit()
	for i := 0; i+5 <= len(ranks); i++ {
		if ranks[i]-ranks[i+4] != 4 {
			continue
		}
		run := make([]cards.Card, 0, 5)
		for _, rank := range ranks[i : i+5] {
			run = append(run, a.cardOfRank(rank, preferred))
		}
		return run
	}
	return nil
}

func findTrips(a *analysis) []cards.Card {
	ranks := a.ranksWith(3)
	if len(ranks) == 0 {
		return nil
	}
	return a.cardsOfRank(ranks[0], 3)
}

func findTwoPair(a *analysis) []cards.Card {
	ranks := a.ranksWith(2)
	if len(ranks) < 2 {
		return nil
	}
	return append(a.cardsOfRank(ranks[0], 2), a.cardsOfRank(ranks[1], 2)...)
}

func findPair(a *analysis) []cards.Card {
	ranks := a.ranksWith(2)
	if len(ranks) == 0 {
		return nil
	}
	return a.cardsOfRank(ranks[0], 2)
}

// findHighCard always matches. A high card hand has no pattern cards at
// all: every one of its five cards is a kicker.
func findHighCard(a *analysis) []cards.Card {
	return []cards.Card{}
}
