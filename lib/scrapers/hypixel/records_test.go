package hypixel

import (
	"testing"
	"time"

	"skyblock-backend/lib/nbt"
	"skyblock-backend/lib/testutil"
	"skyblock-backend/services/skyblock"

	"github.com/stretchr/testify/require"
)

// auctionPayload builds the base64 blob of a single-item auction the
// way the API serializes it: a root compound holding an "i" list.
func auctionPayload(t *testing.T) string {
	t.Helper()

	display := nbt.NewCompound()
	display.Set("Name", nbt.StringTag("§6Midas' Sword"))
	display.Set("Lore", nbt.ListTag(
		nbt.KindString,
		nbt.StringTag("§7Deals damage."),
		nbt.StringTag("§6§lLEGENDARY SWORD"),
	))

	extra := nbt.NewCompound()
	extra.Set("id", nbt.StringTag("MIDAS_SWORD"))

	tag := nbt.NewCompound()
	tag.Set("display", nbt.CompoundTag(display))
	tag.Set("ExtraAttributes", nbt.CompoundTag(extra))

	item := nbt.NewCompound()
	item.Set("Count", nbt.ByteTag(1))
	item.Set("tag", nbt.CompoundTag(tag))

	root := nbt.NewCompound()
	root.Set("i", nbt.ListTag(nbt.KindCompound, nbt.CompoundTag(item)))

	payload, err := nbt.Encode(nbt.CompoundTag(root))
	require.NoError(t, err)
	return payload
}

func TestAuctionFromRecordPlayerDialect(t *testing.T) {
	cleanup := testutil.SetupService(t, "hypixel")
	defer cleanup()

	now := time.Unix(1_700_000_000, 0)

	rec := map[string]any{
		"uuid":               "listing-1",
		"auctioneer":         "seller-uuid",
		"profile_id":         "profile-uuid",
		"coop":               []any{"coop-uuid"},
		"start":              float64(1_699_990_000_000),
		"end":                float64(1_700_100_000_000),
		"item_name":          "Midas' Sword",
		"item_lore":          "§7Deals damage.\n§6§lLEGENDARY SWORD",
		"starting_bid":       float64(50_000_000),
		"highest_bid_amount": float64(0),
		"bin":                true,
		"bids":               []any{},
		"item_bytes":         auctionPayload(t),
	}

	auction, err := AuctionFromRecord(rec, now)
	require.NoError(t, err)

	require.Equal(t, "listing-1", auction.AuctionID)
	require.Equal(t, "seller-uuid", auction.Seller.UUID)
	require.Equal(t, "profile-uuid", auction.ProfileID)
	require.Equal(t, []skyblock.PlayerRef{{UUID: "coop-uuid"}}, auction.Coop)
	require.Equal(t, int64(1_699_990_000), auction.StartedAt.Unix())
	require.Equal(t, int64(1_700_100_000), auction.ExpiresAt.Unix())
	require.Equal(t, int64(50_000_000), auction.StartingBid)
	require.True(t, auction.IsBin)

	require.Equal(t, "Midas' Sword", auction.Name)
	require.Equal(t, skyblock.RarityLegendary, auction.Rarity)
	require.Equal(t, skyblock.ItemTypeSword, auction.Type)
	require.Equal(t, "MIDAS_SWORD", auction.ID())

	// bin listing before its end with no bids: still purchasable
	require.False(t, auction.Expired)
	require.False(t, auction.Sold)
	require.True(t, auction.IsAlive())
}

func TestAuctionFromRecordEndedDialect(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	rec := map[string]any{
		"auction_id":     "listing-2",
		"seller":         "seller-uuid",
		"seller_profile": "profile-uuid",
		"timestamp":      float64(1_699_000_000_000),
		"price":          float64(1_234_567),
		"bin":            true,
		"item_bytes":     map[string]any{"type": float64(0), "data": auctionPayload(t)},
	}

	auction, err := AuctionFromRecord(rec, now)
	require.NoError(t, err)

	require.Equal(t, "listing-2", auction.AuctionID)
	require.Equal(t, "seller-uuid", auction.Seller.UUID)
	require.Equal(t, "profile-uuid", auction.ProfileID)
	require.Equal(t, int64(1_699_000_000), auction.ExpiresAt.Unix())
	require.Equal(t, int64(1_234_567), auction.StartingBid)
	require.Equal(t, int64(1_234_567), auction.HighestBid)

	// name and lore fall back to the decoded display data
	require.Equal(t, "Midas' Sword", auction.Name)
	require.Equal(t, skyblock.RarityLegendary, auction.Rarity)

	// no "end" key: the record is treated as dead
	require.True(t, auction.Expired)
	require.True(t, auction.Sold)
	require.False(t, auction.IsAlive())
}

func TestAuctionFromRecordBinWithBidIsSold(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	rec := map[string]any{
		"uuid":         "listing-3",
		"auctioneer":   "seller-uuid",
		"profile_id":   "profile-uuid",
		"start":        float64(1_699_990_000_000),
		"end":          float64(1_700_100_000_000),
		"item_name":    "Midas' Sword",
		"item_lore":    "§6§lLEGENDARY SWORD",
		"starting_bid": float64(50_000_000),
		"bin":          true,
		"bids": []any{
			map[string]any{
				"auction_id": "listing-3",
				"bidder":     "buyer-uuid",
				"amount":     float64(50_000_000),
				"timestamp":  float64(1_699_995_000_000),
			},
		},
		"item_bytes": auctionPayload(t),
	}

	auction, err := AuctionFromRecord(rec, now)
	require.NoError(t, err)

	require.Len(t, auction.Bids, 1)
	require.Equal(t, "buyer-uuid", auction.Bids[0].Bidder.UUID)
	require.Equal(t, int64(50_000_000), auction.Bids[0].Amount)
	require.Equal(t, int64(1_699_995_000), auction.Bids[0].BidAt.Unix())

	require.False(t, auction.Expired)
	require.True(t, auction.Sold)
	require.False(t, auction.IsAlive())
}

func TestAuctionFromRecordPastEndIsExpired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	rec := map[string]any{
		"uuid":         "listing-4",
		"auctioneer":   "seller-uuid",
		"profile_id":   "profile-uuid",
		"start":        float64(1_699_000_000_000),
		"end":          float64(1_699_500_000_000),
		"item_name":    "Midas' Sword",
		"item_lore":    "§6§lLEGENDARY SWORD",
		"starting_bid": float64(1_000),
		"bin":          false,
		"item_bytes":   auctionPayload(t),
	}

	auction, err := AuctionFromRecord(rec, now)
	require.NoError(t, err)

	require.True(t, auction.Expired)
	require.True(t, auction.Sold)
}

func TestAuctionFromRecordHighestBidDefaultsToStartingBid(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	rec := map[string]any{
		"uuid":         "listing-7",
		"auctioneer":   "seller-uuid",
		"profile_id":   "profile-uuid",
		"start":        float64(1_699_990_000_000),
		"end":          float64(1_700_100_000_000),
		"item_name":    "Midas' Sword",
		"item_lore":    "§6§lLEGENDARY SWORD",
		"starting_bid": float64(50_000_000),
		"bin":          false,
		"item_bytes":   auctionPayload(t),
	}

	auction, err := AuctionFromRecord(rec, now)
	require.NoError(t, err)
	require.Equal(t, int64(50_000_000), auction.StartingBid)
	require.Equal(t, int64(50_000_000), auction.HighestBid)
}

func TestAuctionFromRecordMissingPayload(t *testing.T) {
	rec := map[string]any{
		"uuid":       "listing-5",
		"auctioneer": "seller-uuid",
		"end":        float64(1_700_100_000_000),
	}

	_, err := AuctionFromRecord(rec, time.Unix(1_700_000_000, 0))
	require.ErrorIs(t, err, skyblock.ErrMissingPayload)
}

func TestAuctionFromRecordWrapperAndRawPayloadAgree(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	payload := auctionPayload(t)

	base := map[string]any{
		"uuid":         "listing-6",
		"auctioneer":   "seller-uuid",
		"profile_id":   "profile-uuid",
		"start":        float64(1_699_990_000_000),
		"end":          float64(1_700_100_000_000),
		"item_name":    "Midas' Sword",
		"item_lore":    "§6§lLEGENDARY SWORD",
		"starting_bid": float64(1_000),
		"bin":          true,
	}

	raw := map[string]any{"item_bytes": payload}
	wrapped := map[string]any{"item_bytes": map[string]any{"type": float64(0), "data": payload}}
	for k, v := range base {
		raw[k] = v
		wrapped[k] = v
	}

	fromRaw, err := AuctionFromRecord(raw, now)
	require.NoError(t, err)
	fromWrapped, err := AuctionFromRecord(wrapped, now)
	require.NoError(t, err)

	require.Equal(t, fromRaw.AuctionID, fromWrapped.AuctionID)
	require.Equal(t, fromRaw.Name, fromWrapped.Name)
	require.Equal(t, fromRaw.ID(), fromWrapped.ID())
	require.Equal(t, fromRaw.Sold, fromWrapped.Sold)
	require.Equal(t, fromRaw.Expired, fromWrapped.Expired)
}

func TestUnixSeconds(t *testing.T) {
	for _, tt := range []struct {
		in   int64
		want int64
	}{
		{1_700_000_000_000, 1_700_000_000},
		{1_700_000_000, 1_700_000_000},
		{0, 0},
	} {
		require.Equal(t, tt.want, unixSeconds(tt.in))
	}
}
