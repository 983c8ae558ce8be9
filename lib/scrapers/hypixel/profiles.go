package hypixel

import (
	"context"
	"errors"
	"log/slog"

	"skyblock-backend/lib/nbt"
	"skyblock-backend/services/skyblock"

	"golang.org/x/sync/errgroup"
)

// ErrNoSelectedProfile is returned when a player has no profile
// currently marked as selected.
var ErrNoSelectedProfile = errors.New("hypixel: player has no selected profile")

type profilesResponse struct {
	Profiles []struct {
		Selected bool                     `json:"selected"`
		Members  map[string]profileMember `json:"members"`
	} `json:"profiles"`
}

type profileMember struct {
	Inventory struct {
		InvContents struct {
			Data string `json:"data"`
		} `json:"inv_contents"`
	} `json:"inventory"`
	Dungeons struct {
		DungeonTypes map[string]struct {
			Experience      float64            `json:"experience"`
			TierCompletions map[string]float64 `json:"tier_completions"`
			FastestTimes    map[string]float64 `json:"fastest_time_s_plus"`
		} `json:"dungeon_types"`
		PlayerClasses map[string]struct {
			Experience float64 `json:"experience"`
		} `json:"player_classes"`
		SelectedClass string `json:"selected_dungeon_class"`
	} `json:"dungeons"`
}

func (c *Client) selectedMember(ctx context.Context, uuid string, profile string) (profileMember, error) {
	var res profilesResponse
	err := c.get(ctx, "/skyblock/profiles", map[string]string{
		"uuid":    uuid,
		"profile": profile,
	}, &res)
	if err != nil {
		return profileMember{}, err
	}
	for _, p := range res.Profiles {
		if p.Selected {
			return p.Members[uuid], nil
		}
	}
	return profileMember{}, ErrNoSelectedProfile
}

// inventoryRows lays the decoded item list out the way the game draws
// it: rows of nine, with the hotbar row moved from the front to the
// end.
func inventoryRows(items []skyblock.Item) [][]skyblock.Item {
	var rows [][]skyblock.Item
	for start := 0; start < len(items); start += 9 {
		end := start + 9
		if end > len(items) {
			end = len(items)
		}
		rows = append(rows, items[start:end])
	}
	if len(rows) > 1 {
		rows = append(rows[1:], rows[0])
	}
	return rows
}

// FetchInventory decodes the selected profile's main inventory into
// rows of items. Empty slots come back as empty items, keeping the
// grid positions intact.
func (c *Client) FetchInventory(ctx context.Context, name string, profile string) ([][]skyblock.Item, error) {
	ctx, span := tracer.Start(ctx, "FetchInventory")
	defer span.End()

	uuid, err := c.resolver.UUIDFromName(ctx, name)
	if err != nil {
		return nil, err
	}
	member, err := c.selectedMember(ctx, uuid, profile)
	if err != nil {
		return nil, err
	}

	root, err := nbt.Decode(member.Inventory.InvContents.Data)
	if err != nil {
		return nil, err
	}
	listTag, ok := root.At("i")
	if !ok || listTag.Kind != nbt.KindList {
		return nil, skyblock.ErrMissingPayload
	}

	var items []skyblock.Item
	for i, tag := range listTag.List {
		item, err := skyblock.ItemFromTag(tag)
		if err != nil {
			slog.WarnContext(
				ctx, "skipping malformed inventory slot",
				"slot", i,
				"err", err,
			)
			item = skyblock.EmptyItem()
		}
		items = append(items, item)
	}
	return inventoryRows(items), nil
}

// DungeonStats is the completion/speed record of one dungeon variant,
// keyed by floor number ("0" is the entrance).
type DungeonStats struct {
	TierCompletions map[string]float64
	FastestTimes    map[string]float64
}

// CataStats is the dungeon progression summary of one player.
type CataStats struct {
	Rank        string
	DisplayName string

	Experience      float64
	Level           skyblock.CatacombsLevelInfo
	Catacombs       DungeonStats
	MasterCatacombs DungeonStats
	ClassExperience map[string]float64
	SelectedClass   string
	Secrets         int
}

// FetchCataStats gathers a player's catacombs progression out of the
// profile and player endpoints, fetched concurrently.
func (c *Client) FetchCataStats(ctx context.Context, name string, profile string) (CataStats, error) {
	ctx, span := tracer.Start(ctx, "FetchCataStats")
	defer span.End()

	uuid, err := c.resolver.UUIDFromName(ctx, name)
	if err != nil {
		return CataStats{}, err
	}

	var member profileMember
	var player playerResponse
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		member, err = c.selectedMember(ctx, uuid, profile)
		return err
	})
	eg.Go(func() error {
		return c.get(ctx, "/player", map[string]string{"uuid": uuid}, &player)
	})
	if err := eg.Wait(); err != nil {
		return CataStats{}, err
	}

	out := CataStats{
		Rank:          rankFromPlayer(player.Player),
		DisplayName:   player.displayName(),
		SelectedClass: member.Dungeons.SelectedClass,
		Secrets:       player.secrets(),
	}
	if cata, ok := member.Dungeons.DungeonTypes["catacombs"]; ok {
		out.Experience = cata.Experience
		out.Level = skyblock.CatacombsLevel(cata.Experience)
		out.Catacombs = DungeonStats{
			TierCompletions: cata.TierCompletions,
			FastestTimes:    cata.FastestTimes,
		}
	}
	if master, ok := member.Dungeons.DungeonTypes["master_catacombs"]; ok {
		out.MasterCatacombs = DungeonStats{
			TierCompletions: master.TierCompletions,
			FastestTimes:    master.FastestTimes,
		}
	}
	if len(member.Dungeons.PlayerClasses) > 0 {
		out.ClassExperience = make(map[string]float64, len(member.Dungeons.PlayerClasses))
		for class, stats := range member.Dungeons.PlayerClasses {
			out.ClassExperience[class] = stats.Experience
		}
	}
	return out, nil
}
