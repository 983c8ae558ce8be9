package hypixel

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"skyblock-backend/services/skyblock"

	"golang.org/x/sync/errgroup"
)

type auctionsResponse struct {
	Success    bool             `json:"success"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
	Auctions   []map[string]any `json:"auctions"`
}

// collectAuctions normalizes a page of raw records. A record that fails
// to normalize is logged and skipped; one bad blob never loses a page.
func collectAuctions(ctx context.Context, records []map[string]any, now time.Time) []skyblock.AuctionItem {
	out := make([]skyblock.AuctionItem, 0, len(records))
	for _, rec := range records {
		auction, err := AuctionFromRecord(rec, now)
		if err != nil {
			uuid, _ := strField(rec, uuidKeys...)
			slog.WarnContext(
				ctx, "skipping malformed auction record",
				"uuid", uuid,
				"err", err,
			)
			continue
		}
		out = append(out, auction)
	}
	return out
}

// FetchAuctions lists a player's own auctions, claimed ones excluded.
// The profile id is optional.
func (c *Client) FetchAuctions(ctx context.Context, name string, profile string) ([]skyblock.AuctionItem, error) {
	ctx, span := tracer.Start(ctx, "FetchAuctions")
	defer span.End()

	player, err := c.resolver.UUIDFromName(ctx, name)
	if err != nil {
		return nil, err
	}

	var res auctionsResponse
	err = c.get(ctx, "/skyblock/auction", map[string]string{
		"player":  player,
		"profile": profile,
	}, &res)
	if err != nil {
		return nil, err
	}

	unclaimed := res.Auctions[:0]
	for _, rec := range res.Auctions {
		if claimed, _ := rec["claimed"].(bool); !claimed {
			unclaimed = append(unclaimed, rec)
		}
	}
	return collectAuctions(ctx, unclaimed, time.Now()), nil
}

// fetchAuctionPages limits how many auction-house pages are in flight
// at once.
const fetchAuctionPages = 8

// FetchAllAuctions walks the global auction house: page 0 first to
// learn the page count, then pages 1..TotalPages-1 concurrently. A
// page that fails outright is logged and dropped, the same way
// individual bad records are; only the initial request can fail the
// fetch.
func (c *Client) FetchAllAuctions(ctx context.Context) ([]skyblock.AuctionItem, error) {
	ctx, span := tracer.Start(ctx, "FetchAllAuctions")
	defer span.End()

	now := time.Now()

	var first auctionsResponse
	err := c.get(ctx, "/skyblock/auctions", map[string]string{"page": "0"}, &first)
	if err != nil {
		return nil, err
	}

	pages := make([][]skyblock.AuctionItem, max(first.TotalPages, 1))
	pages[0] = collectAuctions(ctx, first.Auctions, now)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(fetchAuctionPages)
	for page := 1; page < first.TotalPages; page++ {
		page := page
		eg.Go(func() error {
			var res auctionsResponse
			err := c.get(ctx, "/skyblock/auctions", map[string]string{
				"page": strconv.Itoa(page),
			}, &res)
			if err != nil {
				slog.WarnContext(ctx, "dropping failed auction page", "page", page, "err", err)
				return nil
			}
			pages[page] = collectAuctions(ctx, res.Auctions, now)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var out []skyblock.AuctionItem
	for _, page := range pages {
		out = append(out, page...)
	}
	return out, nil
}

// AuctionByUUID looks up a single listing. A missing listing is nil,
// not an error.
func (c *Client) AuctionByUUID(ctx context.Context, uuid string) (*skyblock.AuctionItem, error) {
	ctx, span := tracer.Start(ctx, "AuctionByUUID")
	defer span.End()

	var res auctionsResponse
	err := c.get(ctx, "/skyblock/auction", map[string]string{"uuid": uuid}, &res)
	if err != nil {
		return nil, err
	}
	if len(res.Auctions) == 0 {
		return nil, nil
	}
	auction, err := AuctionFromRecord(res.Auctions[0], time.Now())
	if err != nil {
		return nil, err
	}
	return &auction, nil
}

// EndedAuctions lists the recently closed listings. These arrive in
// the alternate record dialect.
func (c *Client) EndedAuctions(ctx context.Context) ([]skyblock.AuctionItem, error) {
	ctx, span := tracer.Start(ctx, "EndedAuctions")
	defer span.End()

	var res auctionsResponse
	err := c.get(ctx, "/skyblock/auctions_ended", nil, &res)
	if err != nil {
		return nil, err
	}
	return collectAuctions(ctx, res.Auctions, time.Now()), nil
}
