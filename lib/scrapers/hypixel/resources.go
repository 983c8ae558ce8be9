package hypixel

import (
	"context"
	"sort"
	"time"

	"skyblock-backend/lib/textutil"
	"skyblock-backend/services/skyblock"
)

type electionCandidate struct {
	Votes int    `json:"votes"`
	Key   string `json:"key"`
	Name  string `json:"name"`
	Perks []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"perks"`
}

func (c electionCandidate) toMayor() skyblock.Mayor {
	perks := make([]skyblock.MayorPerk, len(c.Perks))
	for i, p := range c.Perks {
		perks[i] = skyblock.MayorPerk{
			Name:        p.Name,
			Description: textutil.StripColor(p.Description),
		}
	}
	return skyblock.Mayor{
		Votes: c.Votes,
		Key:   c.Key,
		Name:  c.Name,
		Perks: perks,
	}
}

type electionResponse struct {
	LastUpdated int64 `json:"lastUpdated"`
	Mayor       struct {
		Name     string `json:"name"`
		Election struct {
			Candidates []electionCandidate `json:"candidates"`
		} `json:"election"`
	} `json:"mayor"`
	Current *struct {
		Candidates []electionCandidate `json:"candidates"`
	} `json:"current"`
}

// FetchElection returns the sitting mayor, the losing candidates of
// the last election and the candidates of the running one, if any.
// Perk descriptions come back color stripped.
func (c *Client) FetchElection(ctx context.Context) (skyblock.ElectionResult, error) {
	ctx, span := tracer.Start(ctx, "FetchElection")
	defer span.End()

	var res electionResponse
	err := c.get(ctx, "/resources/skyblock/election", nil, &res)
	if err != nil {
		return skyblock.ElectionResult{}, err
	}

	out := skyblock.ElectionResult{
		LastUpdated: time.Unix(unixSeconds(res.LastUpdated), 0),
	}
	for _, cand := range res.Mayor.Election.Candidates {
		if cand.Name == res.Mayor.Name {
			out.Current = cand.toMayor()
			continue
		}
		out.Previous = append(out.Previous, cand.toMayor())
	}
	sort.Slice(out.Previous, func(i, j int) bool {
		return out.Previous[i].Votes < out.Previous[j].Votes
	})

	if res.Current != nil {
		for _, cand := range res.Current.Candidates {
			out.Next = append(out.Next, cand.toMayor())
		}
		sort.Slice(out.Next, func(i, j int) bool {
			return out.Next[i].Votes < out.Next[j].Votes
		})
	}
	return out, nil
}

// FetchNews lists the news feed entries.
func (c *Client) FetchNews(ctx context.Context) ([]skyblock.NewsItem, error) {
	ctx, span := tracer.Start(ctx, "FetchNews")
	defer span.End()

	var res struct {
		Items []struct {
			Item struct {
				Material string `json:"material"`
			} `json:"item"`
			Link  string `json:"link"`
			Text  string `json:"text"`
			Title string `json:"title"`
		} `json:"items"`
	}
	err := c.get(ctx, "/skyblock/news", nil, &res)
	if err != nil {
		return nil, err
	}

	items := make([]skyblock.NewsItem, len(res.Items))
	for i, entry := range res.Items {
		items[i] = skyblock.NewsItem{
			Material: entry.Item.Material,
			Link:     entry.Link,
			Text:     entry.Text,
			Title:    entry.Title,
		}
	}
	return items, nil
}

// FetchBazaar returns the instant-trade quick status of every bazaar
// product, keyed by product id.
func (c *Client) FetchBazaar(ctx context.Context) (map[string]skyblock.BazaarProduct, error) {
	ctx, span := tracer.Start(ctx, "FetchBazaar")
	defer span.End()

	var res struct {
		Products map[string]struct {
			QuickStatus skyblock.BazaarProduct `json:"quick_status"`
		} `json:"products"`
	}
	err := c.get(ctx, "/skyblock/bazaar", nil, &res)
	if err != nil {
		return nil, err
	}

	out := make(map[string]skyblock.BazaarProduct, len(res.Products))
	for id, product := range res.Products {
		out[id] = product.QuickStatus
	}
	return out, nil
}
