package skyblock

import (
	"regexp"
	"strings"

	"skyblock-backend/lib/textutil"
)

// The footer line of a lore block carries, in fixed order: an optional
// recombobulated marker (an obfuscated "a " left over after stripping
// format codes), an optional "SHINY " marker, the rarity token, an
// optional " DUNGEON" marker and a free-form type token. The type may
// be multi-word or absent entirely.
var itemLineRegex = regexp.MustCompile(
	`(?P<is_recombed>a )?(?P<is_shiny>SHINY )?(?P<rarity>\S+)?(?P<is_dungeon> DUNGEON)?(?P<type>.+[^ a-])?`,
)

// Gemstone slot groups look like §Q[§T⸕§Q]: brackets colored by gem
// quality, symbol colored by gem type.
var gemstoneRegex = regexp.MustCompile(`§[a-z0-9]+\[§[a-z0-9]+.§[a-z0-9]\]+`)

const (
	// symbol color of a declared empty slot
	emptySlotCode = '7'
	// symbol color of a locked slot
	closedSlotCode = '8'
)

// ItemLine is the parsed footer of a lore block.
type ItemLine struct {
	Rarity           Rarity
	Type             ItemType
	IsRecombobulated bool
	IsShiny          bool
	IsDungeon        bool
}

// ParseItemLine extracts rarity and type facts from the last non-empty
// lore line. The line may still carry color codes; they are stripped
// first. A footer with a rarity but no type token is valid and yields
// ItemTypeUnknown.
func ParseItemLine(line string) (ItemLine, error) {
	line = textutil.StripColor(line)
	match := itemLineRegex.FindStringSubmatch(line)
	if match == nil {
		return ItemLine{}, ErrUnrecognizedFooter
	}

	groups := map[string]string{}
	for i, name := range itemLineRegex.SubexpNames() {
		if name != "" {
			groups[name] = match[i]
		}
	}

	return ItemLine{
		Rarity:           ParseRarity(strings.TrimSpace(groups["rarity"])),
		Type:             ParseItemType(strings.TrimSpace(groups["type"])),
		IsRecombobulated: groups["is_recombed"] != "",
		IsShiny:          groups["is_shiny"] != "",
		IsDungeon:        groups["is_dungeon"] != "",
	}, nil
}

// lastLoreLine returns the last non-empty line of a lore block, or ""
// when there is none.
func lastLoreLine(lore string) string {
	lines := strings.Split(lore, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(textutil.StripColor(lines[i])) != "" {
			return lines[i]
		}
	}
	return ""
}

// ParseGemstones scans raw (unstripped) lore text for gemstone slot
// groups and returns them in source order; that order is the slot
// order and consumers index into it positionally. When every group in
// the lore is locked the item effectively has no usable slots and nil
// is returned, matching how the game presents such gear.
func ParseGemstones(rawLore string) []GemstoneSlot {
	groups := gemstoneRegex.FindAllString(rawLore, -1)
	if len(groups) == 0 {
		return nil
	}

	open := 0
	slots := make([]GemstoneSlot, 0, len(groups))
	for _, group := range groups {
		parts := strings.Split(group, "§")
		// parts[0] is the leading empty segment, parts[1] the bracket
		// code, parts[2] the symbol code plus gem glyph
		if len(parts) < 3 || parts[1] == "" || parts[2] == "" {
			continue
		}
		bracketCode := parts[1]
		symbolCode := parts[2]

		if symbolCode[0] != closedSlotCode {
			open++
		}

		switch {
		case symbolCode[0] == emptySlotCode:
			slots = append(slots, GemstoneSlot{State: SlotEmpty})
		default:
			gem := Gemstone{
				Quality: ParseGemstoneQuality(bracketCode),
				Type:    ParseGemstoneType(symbolCode),
			}
			if gem.Quality == GemstoneQualityUnknown && gem.Type == GemstoneTypeUnknown {
				slots = append(slots, GemstoneSlot{State: SlotClosed})
			} else {
				slots = append(slots, GemstoneSlot{State: SlotFilled, Gem: gem})
			}
		}
	}

	if open == 0 {
		return nil
	}
	return slots
}
