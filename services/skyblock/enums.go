package skyblock

// Rarity is the item tier printed on the lore footer line.
type Rarity int

const (
	RarityUnknown Rarity = iota
	RarityCommon
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
	RarityMythic
	RarityDivine
	RaritySpecial
	RarityVerySpecial
)

var rarityNames = map[Rarity]string{
	RarityUnknown:     "UNKNOWN",
	RarityCommon:      "COMMON",
	RarityUncommon:    "UNCOMMON",
	RarityRare:        "RARE",
	RarityEpic:        "EPIC",
	RarityLegendary:   "LEGENDARY",
	RarityMythic:      "MYTHIC",
	RarityDivine:      "DIVINE",
	RaritySpecial:     "SPECIAL",
	RarityVerySpecial: "VERY_SPECIAL",
}

var rarityByToken = reverse(rarityNames)

func (r Rarity) String() string {
	return rarityNames[r]
}

// ParseRarity maps a footer token to its rarity, RarityUnknown for
// anything it does not recognize.
func ParseRarity(token string) Rarity {
	return rarityByToken[token]
}

// ItemType is the item category printed after the rarity on the lore
// footer line. It may be multi-word ("FISHING ROD") or absent entirely.
type ItemType int

const (
	ItemTypeUnknown ItemType = iota
	ItemTypeHelmet
	ItemTypeChestplate
	ItemTypeLeggings
	ItemTypeBoots
	ItemTypeItem
	ItemTypeAccessory
	ItemTypeDeployable
	ItemTypeWand
	ItemTypeGloves
	ItemTypeNecklace
	ItemTypeCloak
	ItemTypeBelt
	ItemTypeBracelet
	ItemTypeSword
	ItemTypePickaxe
	ItemTypeLongsword
	ItemTypeBow
	ItemTypeAxe
	ItemTypeHoe
	ItemTypeShears
	ItemTypeFishingRod
	ItemTypeFishingWeapon
	ItemTypeCosmetic
	ItemTypeDrill
	ItemTypePetItem
	ItemTypeHatccessory
	ItemTypeVacuum
)

var itemTypeNames = map[ItemType]string{
	ItemTypeUnknown:       "UNKNOWN",
	ItemTypeHelmet:        "HELMET",
	ItemTypeChestplate:    "CHESTPLATE",
	ItemTypeLeggings:      "LEGGINGS",
	ItemTypeBoots:         "BOOTS",
	ItemTypeItem:          "ITEM",
	ItemTypeAccessory:     "ACCESSORY",
	ItemTypeDeployable:    "DEPLOYABLE",
	ItemTypeWand:          "WAND",
	ItemTypeGloves:        "GLOVES",
	ItemTypeNecklace:      "NECKLACE",
	ItemTypeCloak:         "CLOAK",
	ItemTypeBelt:          "BELT",
	ItemTypeBracelet:      "BRACELET",
	ItemTypeSword:         "SWORD",
	ItemTypePickaxe:       "PICKAXE",
	ItemTypeLongsword:     "LONGSWORD",
	ItemTypeBow:           "BOW",
	ItemTypeAxe:           "AXE",
	ItemTypeHoe:           "HOE",
	ItemTypeShears:        "SHEARS",
	ItemTypeFishingRod:    "FISHING ROD",
	ItemTypeFishingWeapon: "FISHING WEAPON",
	ItemTypeCosmetic:      "COSMETIC",
	ItemTypeDrill:         "DRILL",
	ItemTypePetItem:       "PET ITEM",
	ItemTypeHatccessory:   "HATCCESSORY",
	ItemTypeVacuum:        "VACUUM",
}

var itemTypeByToken = reverse(itemTypeNames)

func (i ItemType) String() string {
	return itemTypeNames[i]
}

// ParseItemType maps a footer token to its item type. The empty token
// (plain cosmetic items with a rarity-only footer) and unrecognized
// tokens both map to ItemTypeUnknown.
func ParseItemType(token string) ItemType {
	if token == "" {
		return ItemTypeUnknown
	}
	return itemTypeByToken[token]
}

// GemstoneQuality is keyed by the color code of the slot brackets in
// the lore text.
type GemstoneQuality int

const (
	GemstoneQualityUnknown GemstoneQuality = iota
	GemstoneQualityRough
	GemstoneQualityFlawed
	GemstoneQualityFine
	GemstoneQualityFlawless
	GemstoneQualityPerfect
)

var gemstoneQualityNames = map[GemstoneQuality]string{
	GemstoneQualityUnknown:  "Unknown",
	GemstoneQualityRough:    "Rough",
	GemstoneQualityFlawed:   "Flawed",
	GemstoneQualityFine:     "Fine",
	GemstoneQualityFlawless: "Flawless",
	GemstoneQualityPerfect:  "Perfect",
}

var gemstoneQualityByCode = map[byte]GemstoneQuality{
	'f': GemstoneQualityRough,
	'a': GemstoneQualityFlawed,
	'9': GemstoneQualityFine,
	'5': GemstoneQualityFlawless,
	'6': GemstoneQualityPerfect,
}

func (q GemstoneQuality) String() string {
	return gemstoneQualityNames[q]
}

// ParseGemstoneQuality decodes the first byte of a color code token.
func ParseGemstoneQuality(code string) GemstoneQuality {
	if code == "" {
		return GemstoneQualityUnknown
	}
	return gemstoneQualityByCode[code[0]]
}

// GemstoneType is keyed by the color code of the gem symbol in the
// lore text.
type GemstoneType int

const (
	GemstoneTypeUnknown GemstoneType = iota
	GemstoneTypeJade
	GemstoneTypeAmber
	GemstoneTypeTopaz
	GemstoneTypeSapphire
	GemstoneTypeAmethyst
	GemstoneTypeJasper
	GemstoneTypeRuby
	GemstoneTypeOpal
)

var gemstoneTypeNames = map[GemstoneType]string{
	GemstoneTypeUnknown:  "Unknown",
	GemstoneTypeJade:     "Jade",
	GemstoneTypeAmber:    "Amber",
	GemstoneTypeTopaz:    "Topaz",
	GemstoneTypeSapphire: "Sapphire",
	GemstoneTypeAmethyst: "Amethyst",
	GemstoneTypeJasper:   "Jasper",
	GemstoneTypeRuby:     "Ruby",
	GemstoneTypeOpal:     "Opal",
}

var gemstoneTypeByCode = map[byte]GemstoneType{
	'a': GemstoneTypeJade,
	'6': GemstoneTypeAmber,
	'e': GemstoneTypeTopaz,
	'b': GemstoneTypeSapphire,
	'5': GemstoneTypeAmethyst,
	'd': GemstoneTypeJasper,
	'c': GemstoneTypeRuby,
	'f': GemstoneTypeOpal,
}

func (g GemstoneType) String() string {
	return gemstoneTypeNames[g]
}

func ParseGemstoneType(code string) GemstoneType {
	if code == "" {
		return GemstoneTypeUnknown
	}
	return gemstoneTypeByCode[code[0]]
}

func reverse[K comparable, V comparable](in map[V]K) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[v] = k
	}
	return out
}
