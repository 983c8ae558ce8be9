package hypixel

import (
	"fmt"
	"time"

	"skyblock-backend/lib/nbt"
	"skyblock-backend/services/skyblock"
)

// The auction endpoints answer in two dialects depending on which
// surface the record came from. Each logical field resolves through an
// ordered key list: the first key present wins.
var (
	uuidKeys        = []string{"uuid", "auction_id"}
	sellerKeys      = []string{"auctioneer", "seller"}
	profileKeys     = []string{"profile_id", "seller_profile"}
	endKeys         = []string{"end", "timestamp"}
	startingBidKeys = []string{"starting_bid", "price"}
	highestBidKeys  = []string{"highest_bid_amount", "price"}
)

func strField(rec map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := rec[key].(string); ok {
			return v, true
		}
	}
	return "", false
}

func intField(rec map[string]any, keys ...string) (int64, bool) {
	for _, key := range keys {
		switch v := rec[key].(type) {
		case float64:
			return int64(v), true
		case int64:
			return v, true
		}
	}
	return 0, false
}

// unixSeconds truncates the API's millisecond timestamps down to
// seconds. Some fields already arrive in seconds and pass through.
func unixSeconds(v int64) int64 {
	if v > 9_999_999_999 {
		return v / 1000
	}
	return v
}

// itemPayload resolves the base64 blob of an auction record. Newer
// records carry a bare string, older ones wrap it in {"type": 0,
// "data": "..."}.
func itemPayload(rec map[string]any) (string, bool) {
	if raw, ok := rec["item_bytes"].(string); ok {
		return raw, true
	}
	if wrapper, ok := rec["item_bytes"].(map[string]any); ok {
		if raw, ok := wrapper["data"].(string); ok {
			return raw, true
		}
	}
	return "", false
}

func recordBids(rec map[string]any) []skyblock.AuctionBid {
	raw, ok := rec["bids"].([]any)
	if !ok {
		return nil
	}
	var bids []skyblock.AuctionBid
	for _, entry := range raw {
		bid, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		auctionId, _ := strField(bid, "auction_id")
		bidder, _ := strField(bid, "bidder")
		amount, _ := intField(bid, "amount")
		bidAt, _ := intField(bid, "timestamp")
		bids = append(bids, skyblock.AuctionBid{
			AuctionID: auctionId,
			Bidder:    skyblock.PlayerRef{UUID: bidder},
			Amount:    amount,
			BidAt:     time.Unix(unixSeconds(bidAt), 0),
		})
	}
	return bids
}

// AuctionFromRecord normalizes one raw auction record into the typed
// listing model, whichever dialect it arrived in. Sold and Expired are
// computed against `now` and frozen into the result.
func AuctionFromRecord(rec map[string]any, now time.Time) (skyblock.AuctionItem, error) {
	payload, ok := itemPayload(rec)
	if !ok {
		return skyblock.AuctionItem{}, skyblock.ErrMissingPayload
	}
	root, err := nbt.Decode(payload)
	if err != nil {
		return skyblock.AuctionItem{}, fmt.Errorf("decode item payload: %w", err)
	}
	itemTag, ok := root.At("i")
	if !ok || itemTag.Kind != nbt.KindList || len(itemTag.List) == 0 {
		return skyblock.AuctionItem{}, skyblock.ErrMissingPayload
	}
	tag := itemTag.List[0]

	// item_name/item_lore are only present on the player-auction
	// surface; everywhere else the decoded display is authoritative.
	displayName, displayLore, displayErr := skyblock.DisplayOf(tag)
	name, ok := strField(rec, "item_name")
	if !ok {
		if displayErr != nil {
			return skyblock.AuctionItem{}, displayErr
		}
		name = displayName
	}
	lore, ok := strField(rec, "item_lore")
	if !ok {
		if displayErr != nil {
			return skyblock.AuctionItem{}, displayErr
		}
		lore = displayLore
	}

	item, err := skyblock.NewItem(tag, name, lore)
	if err != nil {
		return skyblock.AuctionItem{}, err
	}

	auctionId, _ := strField(rec, uuidKeys...)
	seller, _ := strField(rec, sellerKeys...)
	profile, _ := strField(rec, profileKeys...)
	startingBid, _ := intField(rec, startingBidKeys...)
	highestBid, ok := intField(rec, highestBidKeys...)
	if !ok {
		// nothing has outbid the listing yet
		highestBid = startingBid
	}
	isBin, _ := rec["bin"].(bool)
	bids := recordBids(rec)

	var coop []skyblock.PlayerRef
	if raw, ok := rec["coop"].([]any); ok {
		for _, entry := range raw {
			if uuid, ok := entry.(string); ok {
				coop = append(coop, skyblock.PlayerRef{UUID: uuid})
			}
		}
	}

	var startedAt time.Time
	if start, ok := intField(rec, "start"); ok {
		startedAt = time.Unix(unixSeconds(start), 0)
	} else {
		startedAt = time.Unix(0, 0)
	}

	// Records with no end timestamp at all are treated as dead: there
	// is no way to tell how long they have been around.
	expired := true
	sold := true
	var expiresAt time.Time
	if end, ok := intField(rec, endKeys...); ok {
		expiresAt = time.Unix(unixSeconds(end), 0)
	}
	if end, ok := intField(rec, "end"); ok {
		endSec := unixSeconds(end)
		expired = now.Unix() > endSec
		sold = (isBin && len(bids) > 0) || (!isBin && expired)
	}

	return skyblock.AuctionItem{
		Item: item,

		AuctionID:   auctionId,
		Seller:      skyblock.PlayerRef{UUID: seller},
		ProfileID:   profile,
		Coop:        coop,
		StartedAt:   startedAt,
		ExpiresAt:   expiresAt,
		StartingBid: startingBid,
		HighestBid:  highestBid,
		Bids:        bids,
		IsBin:       isBin,
		Expired:     expired,
		Sold:        sold,
	}, nil
}
