package skyblock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEnchantment(t *testing.T) {
	testCases := []struct {
		name     string
		expected EnchantmentType
	}{
		// override table hits
		{"ultimate_wise", EnchantUltimateWise},
		{"luck_of_the_sea", EnchantLuckOfTheSea},
		// exact matches on the normalized name
		{"sharpness", EnchantSharpness},
		{"bane_of_arthropods", EnchantBaneOfArthropods},
		{"turbo_cacti", EnchantTurboCacti},
		{"one_for_all", EnchantOneForAll},
		// remote "ultimate_" prefix
		{"ultimate_jerry", EnchantUltimateJerry},
		{"ultimate_one_for_all", EnchantOneForAll},
		{"ultimate_chimera", EnchantChimera},
		{"ultimate_fatal_tempo", EnchantFatalTempo},
		// near-miss names go through the fuzzy path
		{"sharpnes", EnchantSharpness},
		{"protectionn", EnchantProtection},
		// garbage resolves to Unknown, never an error
		{"definitely_not_real_xyz", EnchantUnknown},
		{"", EnchantUnknown},
	}
	for _, test := range testCases {
		require.Equal(
			t, test.expected, ParseEnchantment(test.name),
			"name: %q", test.name,
		)
	}
}

func TestEnchantmentAlias(t *testing.T) {
	require.Equal(t, EnchantDuplex, EnchantReiterate)
	require.Equal(t, "Duplex", EnchantReiterate.String())
}

func TestParseRarity(t *testing.T) {
	require.Equal(t, RarityLegendary, ParseRarity("LEGENDARY"))
	require.Equal(t, RarityVerySpecial, ParseRarity("VERY_SPECIAL"))
	require.Equal(t, RarityUnknown, ParseRarity("legendary"))
	require.Equal(t, RarityUnknown, ParseRarity(""))
}

func TestParseItemType(t *testing.T) {
	require.Equal(t, ItemTypeFishingRod, ParseItemType("FISHING ROD"))
	require.Equal(t, ItemTypeHatccessory, ParseItemType("HATCCESSORY"))
	require.Equal(t, ItemTypeUnknown, ParseItemType(""))
	require.Equal(t, ItemTypeUnknown, ParseItemType("NOT A TYPE"))
}

func TestParseGemstoneCodes(t *testing.T) {
	require.Equal(t, GemstoneQualityPerfect, ParseGemstoneQuality("6["))
	require.Equal(t, GemstoneQualityUnknown, ParseGemstoneQuality("8["))
	require.Equal(t, GemstoneQualityUnknown, ParseGemstoneQuality(""))
	require.Equal(t, GemstoneTypeAmber, ParseGemstoneType("6⸕"))
	require.Equal(t, GemstoneTypeUnknown, ParseGemstoneType("8⸕"))
	require.Equal(t, GemstoneTypeUnknown, ParseGemstoneType(""))
}
