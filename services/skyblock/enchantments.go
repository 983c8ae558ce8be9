package skyblock

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// EnchantmentType is the closed set of known enchantments. The remote
// item data names them in snake_case ("bane_of_arthropods",
// "ultimate_wise"); parsing is tolerant of near-miss names since the
// set evolves server-side independently of this client.
type EnchantmentType int

const (
	EnchantUnknown EnchantmentType = iota
	EnchantBaneOfArthropods
	EnchantChampion
	EnchantCleave
	EnchantCritical
	EnchantCubism
	EnchantDivineGift
	EnchantDragonHunter
	EnchantEnderSlayer
	EnchantExecute
	EnchantExperience
	EnchantFireAspect
	EnchantFirstStrike
	EnchantGiantKiller
	EnchantImpaling
	EnchantKnockback
	EnchantLethality
	EnchantLifeSteal
	EnchantLooting
	EnchantLuck
	EnchantManaSteal
	EnchantProsecute
	EnchantScavenger
	EnchantSharpness
	EnchantSmite
	EnchantSmoldering
	EnchantSyphon
	EnchantTabasco
	EnchantThunderbolt
	EnchantThunderlord
	EnchantTitanKiller
	EnchantTripleStrike
	EnchantVampirism
	EnchantVenomous
	EnchantVicious
	EnchantChance
	EnchantDragonTracer
	EnchantFlame
	EnchantInfiniteQuiver
	EnchantPiercing
	EnchantOverload
	EnchantPower
	EnchantPunch
	EnchantSnipe
	EnchantHecatomb
	EnchantAquaAffinity
	EnchantBigBrain
	EnchantBlastProtection
	EnchantCounterStrike
	EnchantDepthStrider
	EnchantFeatherFalling
	EnchantFerociousMana
	EnchantFireProtection
	EnchantFrostWalker
	EnchantGreatSpook
	EnchantGrowth
	EnchantHardenedMana
	EnchantManaVampire
	EnchantProjectileProtection
	EnchantProtection
	EnchantReflection
	EnchantRejuvenate
	EnchantRespiration
	EnchantStrongMana
	EnchantRespite
	EnchantThorns
	EnchantTransylvanian
	EnchantTrueProtection
	EnchantSmartyPants
	EnchantSugarRush
	EnchantCayenne
	EnchantGreenThumb
	EnchantProsperity
	EnchantQuantum
	EnchantCultivating
	EnchantCompact
	EnchantDedication
	EnchantDelicate
	EnchantEfficiency
	EnchantFortune
	EnchantHarvesting
	EnchantPristine
	EnchantRainbow
	EnchantReplenish
	EnchantSilkTouch
	EnchantSmeltingTouch
	EnchantSunder
	EnchantTurboCacti
	EnchantTurboCane
	EnchantTurboCocoa
	EnchantTurboCarrot
	EnchantTurboMelon
	EnchantTurboMushrooms
	EnchantTurboPotato
	EnchantTurboPumpkin
	EnchantTurboWarts
	EnchantTurboWheat
	EnchantAngler
	EnchantBlessing
	EnchantCaster
	EnchantCharm
	EnchantCorruption
	EnchantExpertise
	EnchantFrail
	EnchantLuckOfTheSea
	EnchantLure
	EnchantMagnet
	EnchantPiscary
	EnchantSpikedHook
	EnchantBank
	EnchantBobbinTime
	EnchantChimera
	EnchantCombo
	EnchantDuplex
	EnchantFatalTempo
	EnchantFlash
	EnchantHabaneroTactics
	EnchantInferno
	EnchantLastStand
	EnchantLegion
	EnchantNoPainNoGain
	EnchantOneForAll
	EnchantRend
	EnchantSoulEater
	EnchantSwarm
	EnchantTheOne
	EnchantUltimateJerry
	EnchantUltimateWise
	EnchantWisdom
)

// EnchantReiterate is the renamed form of Duplex, kept as an alias.
const EnchantReiterate = EnchantDuplex

var enchantmentNames = map[EnchantmentType]string{
	EnchantUnknown:              "Unknown",
	EnchantBaneOfArthropods:     "BaneOfArthropods",
	EnchantChampion:             "Champion",
	EnchantCleave:               "Cleave",
	EnchantCritical:             "Critical",
	EnchantCubism:               "Cubism",
	EnchantDivineGift:           "DivineGift",
	EnchantDragonHunter:         "DragonHunter",
	EnchantEnderSlayer:          "EnderSlayer",
	EnchantExecute:              "Execute",
	EnchantExperience:           "Experience",
	EnchantFireAspect:           "FireAspect",
	EnchantFirstStrike:          "FirstStrike",
	EnchantGiantKiller:          "GiantKiller",
	EnchantImpaling:             "Impaling",
	EnchantKnockback:            "Knockback",
	EnchantLethality:            "Lethality",
	EnchantLifeSteal:            "LifeSteal",
	EnchantLooting:              "Looting",
	EnchantLuck:                 "Luck",
	EnchantManaSteal:            "ManaSteal",
	EnchantProsecute:            "Prosecute",
	EnchantScavenger:            "Scavenger",
	EnchantSharpness:            "Sharpness",
	EnchantSmite:                "Smite",
	EnchantSmoldering:           "Smoldering",
	EnchantSyphon:               "Syphon",
	EnchantTabasco:              "Tabasco",
	EnchantThunderbolt:          "Thunderbolt",
	EnchantThunderlord:          "Thunderlord",
	EnchantTitanKiller:          "TitanKiller",
	EnchantTripleStrike:         "TripleStrike",
	EnchantVampirism:            "Vampirism",
	EnchantVenomous:             "Venomous",
	EnchantVicious:              "Vicious",
	EnchantChance:               "Chance",
	EnchantDragonTracer:         "DragonTracer",
	EnchantFlame:                "Flame",
	EnchantInfiniteQuiver:       "InfiniteQuiver",
	EnchantPiercing:             "Piercing",
	EnchantOverload:             "Overload",
	EnchantPower:                "Power",
	EnchantPunch:                "Punch",
	EnchantSnipe:                "Snipe",
	EnchantHecatomb:             "Hecatomb",
	EnchantAquaAffinity:         "AquaAffinity",
	EnchantBigBrain:             "BigBrain",
	EnchantBlastProtection:      "BlastProtection",
	EnchantCounterStrike:        "CounterStrike",
	EnchantDepthStrider:         "DepthStrider",
	EnchantFeatherFalling:       "FeatherFalling",
	EnchantFerociousMana:        "FerociousMana",
	EnchantFireProtection:       "FireProtection",
	EnchantFrostWalker:          "FrostWalker",
	EnchantGreatSpook:           "GreatSpook",
	EnchantGrowth:               "Growth",
	EnchantHardenedMana:         "HardenedMana",
	EnchantManaVampire:          "ManaVampire",
	EnchantProjectileProtection: "ProjectileProtection",
	EnchantProtection:           "Protection",
	EnchantReflection:           "Reflection",
	EnchantRejuvenate:           "Rejuvenate",
	EnchantRespiration:          "Respiration",
	EnchantStrongMana:           "StrongMana",
	EnchantRespite:              "Respite",
	EnchantThorns:               "Thorns",
	EnchantTransylvanian:        "Transylvanian",
	EnchantTrueProtection:       "TrueProtection",
	EnchantSmartyPants:          "SmartyPants",
	EnchantSugarRush:            "SugarRush",
	EnchantCayenne:              "Cayenne",
	EnchantGreenThumb:           "GreenThumb",
	EnchantProsperity:           "Prosperity",
	EnchantQuantum:              "Quantum",
	EnchantCultivating:          "Cultivating",
	EnchantCompact:              "Compact",
	EnchantDedication:           "Dedication",
	EnchantDelicate:             "Delicate",
	EnchantEfficiency:           "Efficiency",
	EnchantFortune:              "Fortune",
	EnchantHarvesting:           "Harvesting",
	EnchantPristine:             "Pristine",
	EnchantRainbow:              "Rainbow",
	EnchantReplenish:            "Replenish",
	EnchantSilkTouch:            "SilkTouch",
	EnchantSmeltingTouch:        "SmeltingTouch",
	EnchantSunder:               "Sunder",
	EnchantTurboCacti:           "TurboCacti",
	EnchantTurboCane:            "TurboCane",
	EnchantTurboCocoa:           "TurboCocoa",
	EnchantTurboCarrot:          "TurboCarrot",
	EnchantTurboMelon:           "TurboMelon",
	EnchantTurboMushrooms:       "TurboMushrooms",
	EnchantTurboPotato:          "TurboPotato",
	EnchantTurboPumpkin:         "TurboPumpkin",
	EnchantTurboWarts:           "TurboWarts",
	EnchantTurboWheat:           "TurboWheat",
	EnchantAngler:               "Angler",
	EnchantBlessing:             "Blessing",
	EnchantCaster:               "Caster",
	EnchantCharm:                "Charm",
	EnchantCorruption:           "Corruption",
	EnchantExpertise:            "Expertise",
	EnchantFrail:                "Frail",
	EnchantLuckOfTheSea:         "LuckOfTheSea",
	EnchantLure:                 "Lure",
	EnchantMagnet:               "Magnet",
	EnchantPiscary:              "Piscary",
	EnchantSpikedHook:           "SpikedHook",
	EnchantBank:                 "Bank",
	EnchantBobbinTime:           "BobbinTime",
	EnchantChimera:              "Chimera",
	EnchantCombo:                "Combo",
	EnchantDuplex:               "Duplex",
	EnchantFatalTempo:           "FatalTempo",
	EnchantFlash:                "Flash",
	EnchantHabaneroTactics:      "HabaneroTactics",
	EnchantInferno:              "Inferno",
	EnchantLastStand:            "LastStand",
	EnchantLegion:               "Legion",
	EnchantNoPainNoGain:         "NoPainNoGain",
	EnchantOneForAll:            "OneForAll",
	EnchantRend:                 "Rend",
	EnchantSoulEater:            "SoulEater",
	EnchantSwarm:                "Swarm",
	EnchantTheOne:               "TheOne",
	EnchantUltimateJerry:        "UltimateJerry",
	EnchantUltimateWise:         "UltimateWise",
	EnchantWisdom:               "Wisdom",
}

// explicit overrides for remote names that must never go through the
// fuzzy path
var enchantmentOverrides = map[string]EnchantmentType{
	"luck_of_the_sea": EnchantLuckOfTheSea,
	"ultimate_wise":   EnchantUltimateWise,
}

// normalized ("baneofarthropods") name -> variant, built once
var enchantmentByNormalized = func() map[string]EnchantmentType {
	out := make(map[string]EnchantmentType, len(enchantmentNames))
	for typ, name := range enchantmentNames {
		if typ == EnchantUnknown {
			continue
		}
		out[strings.ToLower(name)] = typ
	}
	return out
}()

func (e EnchantmentType) String() string {
	return enchantmentNames[e]
}

func normalizeEnchantName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", "")
}

// enchantmentFuzzyCutoff is the minimum JaroWinkler similarity for a
// near-miss name to resolve to a known variant.
const enchantmentFuzzyCutoff = 0.88

// ParseEnchantment resolves a remote enchantment name: the explicit
// override table first, then an exact lookup on the normalized name
// (with and without the remote "ultimate_" prefix), then the nearest
// fuzzy match. Unmatched names resolve to EnchantUnknown, never an
// error.
func ParseEnchantment(name string) EnchantmentType {
	if typ, ok := enchantmentOverrides[name]; ok {
		return typ
	}
	if typ, ok := enchantmentByNormalized[normalizeEnchantName(name)]; ok {
		return typ
	}
	trimmed := strings.TrimPrefix(name, "ultimate_")
	if typ, ok := enchantmentByNormalized[normalizeEnchantName(trimmed)]; ok {
		return typ
	}

	normalized := normalizeEnchantName(trimmed)
	best := EnchantUnknown
	var bestSimilarity float64
	for candidate, typ := range enchantmentByNormalized {
		similarity := matchr.JaroWinkler(normalized, candidate, false)
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			best = typ
		}
	}
	if bestSimilarity < enchantmentFuzzyCutoff {
		return EnchantUnknown
	}
	return best
}

// Enchantment is one applied enchant with its tier.
type Enchantment struct {
	Type EnchantmentType
	Tier int
}
