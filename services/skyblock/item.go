package skyblock

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"skyblock-backend/lib/nbt"
	"skyblock-backend/lib/textutil"
)

var petLevelRegex = regexp.MustCompile(`\[Lvl (\d+)\] .+`)

// Item is one normalized item. Name and Lore are stripped of color
// codes; the unstripped lore is retained internally because gemstone
// and enchantment extraction depend on the codes. Items must be built
// through ItemFromTag/NewItem/EmptyItem.
type Item struct {
	Name          string
	Lore          string
	Rarity        Rarity
	Type          ItemType
	GemstoneSlots []GemstoneSlot
	// RawTag is the decoded item compound, retained for derived
	// attribute lookups.
	RawTag nbt.Tag

	rawName string
	rawLore string

	// derived attributes are memoized once per item; the cache sits
	// behind a pointer so listing structs can embed Item by value.
	derived *derivedCache
}

type derivedCache struct {
	petLevelOnce sync.Once
	petLevel     int
	petLevelErr  error

	petExpOnce sync.Once
	petExp     float64
	petExpErr  error

	enchantsOnce sync.Once
	enchants     []Enchantment
}

// EmptyItem is the sentinel for an empty inventory slot (the API
// serializes those as an empty compound).
func EmptyItem() Item {
	return Item{
		RawTag:  nbt.CompoundTag(nbt.NewCompound()),
		derived: &derivedCache{},
	}
}

func (it *Item) IsEmpty() bool {
	return it.Name == "" && it.RawTag.Kind == nbt.KindCompound && it.RawTag.Compound.Len() == 0
}

func (it *Item) String() string {
	if it.IsEmpty() {
		return "<Item Empty>"
	}
	return fmt.Sprintf("<Item %s x%d>", it.Name, it.Count())
}

// ItemFromTag normalizes a decoded item compound. It requires
// tag.display.Name and tag.display.Lore to exist and fails with
// ErrMissingDisplay otherwise; the only exception is the empty-slot
// sentinel (an empty compound), which yields an empty item.
func ItemFromTag(tag nbt.Tag) (Item, error) {
	if tag.Kind == nbt.KindCompound && tag.Compound.Len() == 0 {
		return EmptyItem(), nil
	}

	name, lore, err := DisplayOf(tag)
	if err != nil {
		return Item{}, err
	}
	return NewItem(tag, name, lore)
}

// DisplayOf pulls the raw (unstripped) name and newline-joined lore
// out of an item compound.
func DisplayOf(tag nbt.Tag) (name string, lore string, err error) {
	nameTag, ok := tag.At("tag", "display", "Name")
	if !ok || nameTag.Kind != nbt.KindString {
		return "", "", ErrMissingDisplay
	}
	loreTag, ok := tag.At("tag", "display", "Lore")
	if !ok || loreTag.Kind != nbt.KindList {
		return "", "", ErrMissingDisplay
	}
	lines := make([]string, 0, len(loreTag.List))
	for _, line := range loreTag.List {
		lines = append(lines, line.Str)
	}
	return nameTag.Str, strings.Join(lines, "\n"), nil
}

// NewItem builds an item from its decoded compound plus the raw name
// and lore text to parse. Callers normalizing auction records pass
// dialect-resolved name/lore here; ItemFromTag passes the display
// fields.
func NewItem(tag nbt.Tag, rawName, rawLore string) (Item, error) {
	line, err := ParseItemLine(lastLoreLine(rawLore))
	if err != nil {
		return Item{}, err
	}
	return Item{
		Name:          textutil.StripColor(rawName),
		Lore:          textutil.StripColor(rawLore),
		Rarity:        line.Rarity,
		Type:          line.Type,
		GemstoneSlots: ParseGemstones(rawLore),
		RawTag:        tag,
		rawName:       rawName,
		rawLore:       rawLore,
		derived:       &derivedCache{},
	}, nil
}

// LoreWithName returns the unstripped name and lore joined by a
// newline, the form the rendering collaborator consumes.
func (it *Item) LoreWithName() string {
	return it.rawName + "\n" + it.rawLore
}

// cache returns the memoization block, allocating it for items built
// by struct literal rather than through a constructor.
func (it *Item) cache() *derivedCache {
	if it.derived == nil {
		it.derived = &derivedCache{}
	}
	return it.derived
}

func (it *Item) extraAttribute(name string) (nbt.Tag, bool) {
	return it.RawTag.At("tag", "ExtraAttributes", name)
}

// ID is the game's internal item identifier ("MIDAS_SWORD").
func (it *Item) ID() string {
	id, _ := it.extraAttribute("id")
	return id.Str
}

// Count is the stack size.
func (it *Item) Count() int {
	count, ok := it.RawTag.At("Count")
	if !ok {
		return 0
	}
	return int(count.Byte)
}

func (it *Item) IsPet() bool {
	_, ok := it.extraAttribute("petInfo")
	return ok
}

func (it *Item) IsRecombobulated() bool {
	return it.flag("rarity_upgrades")
}

func (it *Item) IsShiny() bool {
	return it.flag("shiny")
}

func (it *Item) IsDungeonItem() bool {
	return it.flag("dungeon_item")
}

// flag reads a presence/truthiness extra attribute, defaulting false.
func (it *Item) flag(name string) bool {
	tag, ok := it.extraAttribute(name)
	if !ok {
		return false
	}
	switch tag.Kind {
	case nbt.KindByte:
		return tag.Byte != 0
	case nbt.KindInt:
		return tag.Int != 0
	case nbt.KindLong:
		return tag.Long != 0
	}
	return true
}

// PetLevel parses the "[Lvl N]" prefix out of the display name. It is
// only valid for pets; everything else gets ErrNotAPet, which is an
// expected outcome for most items. Memoized on first access.
func (it *Item) PetLevel() (int, error) {
	cache := it.cache()
	cache.petLevelOnce.Do(func() {
		if !it.IsPet() {
			cache.petLevelErr = ErrNotAPet
			return
		}
		match := petLevelRegex.FindStringSubmatch(it.Name)
		if match == nil {
			cache.petLevel = -1
			return
		}
		level, err := strconv.Atoi(match[1])
		if err != nil {
			cache.petLevel = -1
			return
		}
		cache.petLevel = level
	})
	return cache.petLevel, cache.petLevelErr
}

// PetExp reads the cumulative experience out of the JSON-encoded
// petInfo attribute, rounded to 3 decimal places. Memoized on first
// access.
func (it *Item) PetExp() (float64, error) {
	cache := it.cache()
	cache.petExpOnce.Do(func() {
		info, ok := it.extraAttribute("petInfo")
		if !ok {
			cache.petExpErr = ErrNotAPet
			return
		}
		var payload struct {
			Exp float64 `json:"exp"`
		}
		if err := json.Unmarshal([]byte(info.Str), &payload); err != nil {
			cache.petExpErr = fmt.Errorf("skyblock: malformed petInfo: %w", err)
			return
		}
		cache.petExp = math.Round(payload.Exp*1000) / 1000
	})
	return cache.petExp, cache.petExpErr
}

// Enchantments reads the enchant-name -> tier attribute map, in its
// stored order. Names that no longer match the known set resolve to
// EnchantUnknown rather than failing. Memoized on first access.
func (it *Item) Enchantments() []Enchantment {
	cache := it.cache()
	cache.enchantsOnce.Do(func() {
		enchants, ok := it.extraAttribute("enchantments")
		if !ok || enchants.Kind != nbt.KindCompound {
			return
		}
		for _, name := range enchants.Compound.Names() {
			tier, _ := enchants.Compound.Get(name)
			cache.enchants = append(cache.enchants, Enchantment{
				Type: ParseEnchantment(name),
				Tier: int(tierValue(tier)),
			})
		}
	})
	return cache.enchants
}

func tierValue(tag nbt.Tag) int64 {
	switch tag.Kind {
	case nbt.KindByte:
		return int64(tag.Byte)
	case nbt.KindShort:
		return int64(tag.Short)
	case nbt.KindInt:
		return int64(tag.Int)
	case nbt.KindLong:
		return tag.Long
	}
	return 0
}

// OpenedGemstoneSlots counts the slots that are not locked.
func (it *Item) OpenedGemstoneSlots() int {
	n := 0
	for _, slot := range it.GemstoneSlots {
		if slot.State != SlotClosed {
			n++
		}
	}
	return n
}

// AuctionItem is one auction listing: the normalized item plus the
// listing fields. Sold and Expired are a snapshot computed at
// normalization time from the record's end timestamp and bid list;
// they are not re-derived afterwards.
type AuctionItem struct {
	Item

	AuctionID   string
	Seller      PlayerRef
	ProfileID   string
	Coop        []PlayerRef
	StartedAt   time.Time
	ExpiresAt   time.Time
	StartingBid int64
	HighestBid  int64
	Bids        []AuctionBid
	IsBin       bool
	Expired     bool
	Sold        bool
}

// IsAlive reports whether the listing can still be interacted with.
// By construction IsAlive == !Sold && !Expired.
func (a *AuctionItem) IsAlive() bool {
	return !a.Sold && !a.Expired
}

func (a *AuctionItem) String() string {
	return fmt.Sprintf(
		"<AuctionItem name=%s price=%d alive=%t rarity=%s>",
		a.Name, a.StartingBid, a.IsAlive(), a.Rarity,
	)
}
