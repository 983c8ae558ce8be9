package skyblock

import (
	"testing"

	"skyblock-backend/lib/nbt"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func swordTag(t *testing.T) nbt.Tag {
	t.Helper()

	display := nbt.NewCompound()
	display.Set("Name", nbt.StringTag("§6Midas' Sword"))
	display.Set("Lore", nbt.ListTag(
		nbt.KindString,
		nbt.StringTag("§7Damage: §c+270"),
		nbt.StringTag("§7Gemstones: "+filledPerfectAmber+" "+emptySlot),
		nbt.StringTag(""),
		nbt.StringTag("§6§lLEGENDARY SWORD"),
	))

	enchants := nbt.NewCompound()
	enchants.Set("sharpness", nbt.IntTag(5))
	enchants.Set("ultimate_wise", nbt.IntTag(5))
	enchants.Set("brand_new_enchant", nbt.IntTag(2))

	extra := nbt.NewCompound()
	extra.Set("id", nbt.StringTag("MIDAS_SWORD"))
	extra.Set("rarity_upgrades", nbt.IntTag(1))
	extra.Set("enchantments", nbt.CompoundTag(enchants))

	inner := nbt.NewCompound()
	inner.Set("display", nbt.CompoundTag(display))
	inner.Set("ExtraAttributes", nbt.CompoundTag(extra))

	item := nbt.NewCompound()
	item.Set("id", nbt.ShortTag(283))
	item.Set("Count", nbt.ByteTag(1))
	item.Set("tag", nbt.CompoundTag(inner))
	return nbt.CompoundTag(item)
}

func petTag(t *testing.T) nbt.Tag {
	t.Helper()

	display := nbt.NewCompound()
	display.Set("Name", nbt.StringTag("§7[Lvl 100] §6Ender Dragon"))
	display.Set("Lore", nbt.ListTag(
		nbt.KindString,
		nbt.StringTag("§7Pets boost your stats!"),
		nbt.StringTag("§6§lLEGENDARY"),
	))

	extra := nbt.NewCompound()
	extra.Set("id", nbt.StringTag("PET"))
	extra.Set("petInfo", nbt.StringTag(`{"type":"ENDER_DRAGON","exp":25450000.1234567,"tier":"LEGENDARY"}`))

	inner := nbt.NewCompound()
	inner.Set("display", nbt.CompoundTag(display))
	inner.Set("ExtraAttributes", nbt.CompoundTag(extra))

	item := nbt.NewCompound()
	item.Set("Count", nbt.ByteTag(1))
	item.Set("tag", nbt.CompoundTag(inner))
	return nbt.CompoundTag(item)
}

func TestItemFromTag(t *testing.T) {
	it, err := ItemFromTag(swordTag(t))
	require.NoError(t, err)

	require.Equal(t, "Midas' Sword", it.Name)
	require.Equal(t, RarityLegendary, it.Rarity)
	require.Equal(t, ItemTypeSword, it.Type)
	require.Equal(t, "MIDAS_SWORD", it.ID())
	require.Equal(t, 1, it.Count())
	require.True(t, it.IsRecombobulated())
	require.False(t, it.IsShiny())
	require.False(t, it.IsDungeonItem())
	require.Contains(t, it.Lore, "Damage: +270")
	require.NotContains(t, it.Lore, "§")

	expectedSlots := []GemstoneSlot{
		{State: SlotFilled, Gem: Gemstone{Quality: GemstoneQualityPerfect, Type: GemstoneTypeAmber}},
		{State: SlotEmpty},
	}
	diff := cmp.Diff(expectedSlots, it.GemstoneSlots)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestItemFromTagMissingDisplay(t *testing.T) {
	inner := nbt.NewCompound()
	item := nbt.NewCompound()
	item.Set("Count", nbt.ByteTag(1))
	item.Set("tag", nbt.CompoundTag(inner))

	_, err := ItemFromTag(nbt.CompoundTag(item))
	require.ErrorIs(t, err, ErrMissingDisplay)
}

func TestItemFromTagMissingLore(t *testing.T) {
	display := nbt.NewCompound()
	display.Set("Name", nbt.StringTag("§7Named but loreless"))
	inner := nbt.NewCompound()
	inner.Set("display", nbt.CompoundTag(display))
	item := nbt.NewCompound()
	item.Set("tag", nbt.CompoundTag(inner))

	_, err := ItemFromTag(nbt.CompoundTag(item))
	require.ErrorIs(t, err, ErrMissingDisplay)
}

func TestItemFromTagEmptySlot(t *testing.T) {
	it, err := ItemFromTag(nbt.CompoundTag(nbt.NewCompound()))
	require.NoError(t, err)
	require.True(t, it.IsEmpty())
	require.Equal(t, RarityUnknown, it.Rarity)
}

func TestEnchantmentsExtraction(t *testing.T) {
	it, err := ItemFromTag(swordTag(t))
	require.NoError(t, err)

	expected := []Enchantment{
		{Type: EnchantSharpness, Tier: 5},
		{Type: EnchantUltimateWise, Tier: 5},
		{Type: EnchantUnknown, Tier: 2},
	}
	diff := cmp.Diff(expected, it.Enchantments())
	if diff != "" {
		t.Fatal(diff)
	}

	// memoized: same backing array on subsequent calls
	first := it.Enchantments()
	second := it.Enchantments()
	require.Same(t, &first[0], &second[0])
}

func TestPetAttributes(t *testing.T) {
	it, err := ItemFromTag(petTag(t))
	require.NoError(t, err)
	require.True(t, it.IsPet())

	level, err := it.PetLevel()
	require.NoError(t, err)
	require.Equal(t, 100, level)

	exp, err := it.PetExp()
	require.NoError(t, err)
	require.Equal(t, 25450000.123, exp)
}

func TestPetAttributesOnNonPet(t *testing.T) {
	it, err := ItemFromTag(swordTag(t))
	require.NoError(t, err)
	require.False(t, it.IsPet())

	_, err = it.PetLevel()
	require.ErrorIs(t, err, ErrNotAPet)
	_, err = it.PetExp()
	require.ErrorIs(t, err, ErrNotAPet)
}

func TestLoreWithName(t *testing.T) {
	it, err := ItemFromTag(swordTag(t))
	require.NoError(t, err)

	text := it.LoreWithName()
	require.Contains(t, text, "§6Midas' Sword\n")
	require.Contains(t, text, "§6§lLEGENDARY SWORD")
}
