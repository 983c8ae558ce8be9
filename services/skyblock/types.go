// Package skyblock holds the normalized item/auction model decoded out
// of the game economy API: typed items, auction listings, gemstone
// slots, enchantments and the lore grammar that backs them.
package skyblock

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnrecognizedFooter is returned when the lore footer line does
	// not match the rarity/type grammar at all.
	ErrUnrecognizedFooter = errors.New("skyblock: unrecognized lore footer line")
	// ErrMissingDisplay is returned when a decoded item tag has no
	// tag.display compound (or no Name/Lore inside it).
	ErrMissingDisplay = errors.New("skyblock: item tag has no display data")
	// ErrMissingPayload is returned when an auction record carries no
	// item payload under any known field name.
	ErrMissingPayload = errors.New("skyblock: auction record has no item payload")
	// ErrNotAPet is the expected outcome of pet attribute lookups on
	// non-pet items.
	ErrNotAPet = errors.New("skyblock: item is not a pet")
)

// PlayerRef is an opaque player identifier (a Mojang UUID). Name
// resolution lives in lib/scrapers/mcuuid, outside the model.
type PlayerRef struct {
	UUID string
}

func (p PlayerRef) String() string {
	return p.UUID
}

// AuctionBid is one bid on a listing, in chronological order within
// AuctionItem.Bids.
type AuctionBid struct {
	AuctionID string
	Bidder    PlayerRef
	Amount    int64
	BidAt     time.Time
}

// GemstoneSlotState distinguishes the three mutually exclusive slot
// states on gear.
type GemstoneSlotState int

const (
	// SlotEmpty is a declared, usable slot holding no gem.
	SlotEmpty GemstoneSlotState = iota
	// SlotClosed is a locked slot, unusable until unlocked.
	SlotClosed
	// SlotFilled holds a gem.
	SlotFilled
)

type Gemstone struct {
	Quality GemstoneQuality
	Type    GemstoneType
}

type GemstoneSlot struct {
	State GemstoneSlotState
	// Gem is only meaningful when State == SlotFilled.
	Gem Gemstone
}

func (s GemstoneSlot) String() string {
	switch s.State {
	case SlotEmpty:
		return "<GemstoneSlot Empty>"
	case SlotClosed:
		return "<GemstoneSlot Closed>"
	default:
		return fmt.Sprintf("<GemstoneSlot %s %s>", s.Gem.Quality, s.Gem.Type)
	}
}

// Mayor is one election candidate with its vote count and perk list.
type Mayor struct {
	Votes int
	Key   string
	Name  string
	Perks []MayorPerk
}

type MayorPerk struct {
	Name        string
	Description string
}

// ElectionResult is the current election snapshot.
type ElectionResult struct {
	LastUpdated time.Time
	Current     Mayor
	Previous    []Mayor
	Next        []Mayor
}

// NewsItem is one entry of the news feed.
type NewsItem struct {
	Material string
	Link     string
	Text     string
	Title    string
}

// BazaarProduct is the quick status of one bazaar product.
type BazaarProduct struct {
	ProductID    string  `json:"productId"`
	SellPrice    float64 `json:"sellPrice"`
	BuyPrice     float64 `json:"buyPrice"`
	SellVolume   int64   `json:"sellVolume"`
	BuyVolume    int64   `json:"buyVolume"`
	SellMovingWk int64   `json:"sellMovingWeek"`
	BuyMovingWk  int64   `json:"buyMovingWeek"`
	SellOrders   int64   `json:"sellOrders"`
	BuyOrders    int64   `json:"buyOrders"`
}
