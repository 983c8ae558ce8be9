package hypixel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, baseUrl string) *Client {
	t.Helper()
	client := resty.New()
	client.SetBaseURL(baseUrl)
	return &Client{http: client}
}

func auctionRecord(t *testing.T, id string) map[string]any {
	t.Helper()
	return map[string]any{
		"uuid":         id,
		"auctioneer":   "seller-uuid",
		"profile_id":   "profile-uuid",
		"start":        float64(1_699_990_000_000),
		"end":          float64(9_999_999_999_000),
		"item_name":    "Midas' Sword",
		"item_lore":    "§6§lLEGENDARY SWORD",
		"starting_bid": float64(1_000),
		"bin":          true,
		"item_bytes":   auctionPayload(t),
	}
}

func TestFetchAllAuctionsPageWalk(t *testing.T) {
	var mu sync.Mutex
	var requested []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/skyblock/auctions", r.URL.Path)
		page := r.URL.Query().Get("page")

		mu.Lock()
		requested = append(requested, page)
		mu.Unlock()

		// three pages, indexed 0..2; page 1 falls over
		if page == "1" {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"success": false, "cause": "internal error"}`)
			return
		}
		err := json.NewEncoder(w).Encode(map[string]any{
			"success":    true,
			"totalPages": 3,
			"auctions":   []any{auctionRecord(t, "listing-page-"+page)},
		})
		require.NoError(t, err)
	}))
	defer srv.Close()

	client := testClient(t, srv.URL)
	auctions, err := client.FetchAllAuctions(context.Background())
	require.NoError(t, err)

	// the failed page is dropped, the rest survive in page order
	ids := make([]string, len(auctions))
	for i := range auctions {
		ids[i] = auctions[i].AuctionID
	}
	require.Equal(t, []string{"listing-page-0", "listing-page-2"}, ids)

	// only pages 0..TotalPages-1 are ever requested
	mu.Lock()
	defer mu.Unlock()
	sort.Strings(requested)
	require.Equal(t, []string{"0", "1", "2"}, requested)
}

func TestFetchAllAuctionsFirstPageError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"success": false, "cause": "Invalid API key"}`)
	}))
	defer srv.Close()

	client := testClient(t, srv.URL)
	_, err := client.FetchAllAuctions(context.Background())
	require.Error(t, err)

	var apiErr *ApiError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.Code)
	require.Equal(t, "Invalid API key", apiErr.Cause)
}

func TestFetchAllAuctionsSinglePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "0", r.URL.Query().Get("page"))
		err := json.NewEncoder(w).Encode(map[string]any{
			"success":    true,
			"totalPages": 1,
			"auctions":   []any{auctionRecord(t, "only-listing")},
		})
		require.NoError(t, err)
	}))
	defer srv.Close()

	client := testClient(t, srv.URL)
	auctions, err := client.FetchAllAuctions(context.Background())
	require.NoError(t, err)
	require.Len(t, auctions, 1)
	require.Equal(t, "only-listing", auctions[0].AuctionID)
}
