// Package market runs downstream analysis over normalized auction
// listings: lowest-bin searches and pet flip scans.
package market

import (
	"sort"
	"strings"

	"skyblock-backend/lib/textutil"
	"skyblock-backend/services/skyblock"
)

// LowestBin filters listings down to live buy-it-now offers whose
// normalized name contains `name`, cheapest first.
func LowestBin(name string, auctions []skyblock.AuctionItem) []skyblock.AuctionItem {
	matchers := []string{textutil.NormalizeName(name)}
	var out []skyblock.AuctionItem
	for i := range auctions {
		a := &auctions[i]
		if a.IsBin && a.IsAlive() && textutil.MatchName(a.Name, matchers) {
			out = append(out, *a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartingBid < out[j].StartingBid
	})
	return out
}

// maxedPetExp is the cumulative experience of a level 100 legendary
// pet; anything above it carries surplus exp into an upgrade.
const maxedPetExp = 25_450_000

// PetFlip is one upgrade opportunity: the cheapest maxed legendary pet
// of a kind against its upgrade cost.
type PetFlip struct {
	Pet         string
	UpgradeCost int64
	// Cheapest is nil when no live maxed listing of this pet exists.
	Cheapest *skyblock.AuctionItem
	// Margin is Cheapest.StartingBid - UpgradeCost, only meaningful
	// when Cheapest is set.
	Margin int64
}

// MaxedPets filters listings down to live buy-it-now level 100 pets of
// the given rarity whose surplus experience exceeds minExp, cheapest
// first.
func MaxedPets(rarity skyblock.Rarity, minExp float64, auctions []skyblock.AuctionItem) []skyblock.AuctionItem {
	var out []skyblock.AuctionItem
	for i := range auctions {
		a := &auctions[i]
		if !a.IsBin || !a.IsAlive() || a.Rarity != rarity {
			continue
		}
		if !strings.Contains(a.Name, "[Lvl 100]") {
			continue
		}
		exp, err := a.PetExp()
		if err != nil || exp <= minExp {
			continue
		}
		out = append(out, *a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartingBid < out[j].StartingBid
	})
	return out
}

// PetFlips prices every pet in `upgradeCosts` against the cheapest
// live maxed legendary listing. Pets with no live listing come back
// with a nil Cheapest so callers can report the gap.
func PetFlips(upgradeCosts map[string]int64, auctions []skyblock.AuctionItem) []PetFlip {
	maxed := MaxedPets(skyblock.RarityLegendary, maxedPetExp, auctions)

	names := make([]string, 0, len(upgradeCosts))
	for name := range upgradeCosts {
		names = append(names, name)
	}
	sort.Strings(names)

	flips := make([]PetFlip, 0, len(names))
	for _, name := range names {
		flip := PetFlip{Pet: name, UpgradeCost: upgradeCosts[name]}
		if cheapest := LowestBin(name, maxed); len(cheapest) > 0 {
			flip.Cheapest = &cheapest[0]
			flip.Margin = cheapest[0].StartingBid - flip.UpgradeCost
		}
		flips = append(flips, flip)
	}
	return flips
}
