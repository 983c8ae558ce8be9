package hypixel

import (
	"testing"

	"skyblock-backend/services/skyblock"

	"github.com/stretchr/testify/require"
)

func TestRankFromPlayer(t *testing.T) {
	for _, tt := range []struct {
		name   string
		player map[string]any
		want   string
	}{
		{
			name:   "no rank",
			player: map[string]any{},
			want:   "",
		},
		{
			name:   "purchased plus rank",
			player: map[string]any{"newPackageRank": "MVP_PLUS"},
			want:   "[MVP+]",
		},
		{
			name:   "legacy package rank",
			player: map[string]any{"packageRank": "VIP_PLUS"},
			want:   "[VIP+]",
		},
		{
			name: "monthly rank wins over purchased",
			player: map[string]any{
				"monthlyPackageRank": "SUPERSTAR",
				"newPackageRank":     "MVP_PLUS",
			},
			want: "[MVP++]",
		},
		{
			name: "monthly rank of NONE is ignored",
			player: map[string]any{
				"monthlyPackageRank": "NONE",
				"newPackageRank":     "MVP_PLUS",
			},
			want: "[MVP+]",
		},
		{
			name: "owner prefix",
			player: map[string]any{
				"newPackageRank": "MVP_PLUS",
				"prefix":         "§c[OWNER]",
			},
			want: "[OWNER]",
		},
		{
			name: "pig prefix",
			player: map[string]any{
				"prefix": "§d[PIG§b+++§d]",
			},
			want: "[PIG+++]",
		},
		{
			name: "staff rank wins over everything",
			player: map[string]any{
				"newPackageRank": "MVP_PLUS",
				"rank":           "GAME_MASTER",
			},
			want: "[GM]",
		},
		{
			name: "admin rank",
			player: map[string]any{
				"rank": "ADMIN",
			},
			want: "[ADMIN]",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, rankFromPlayer(tt.player))
		})
	}
}

func TestInventoryRows(t *testing.T) {
	items := make([]skyblock.Item, 36)
	for i := range items {
		items[i] = skyblock.EmptyItem()
	}

	rows := inventoryRows(items)
	require.Len(t, rows, 4)
	for _, row := range rows {
		require.Len(t, row, 9)
	}
}

func TestInventoryRowsRotation(t *testing.T) {
	// 18 items: two rows; the hotbar row (first chunk) moves to the end
	items := make([]skyblock.Item, 18)
	for i := range items {
		items[i] = skyblock.EmptyItem()
	}
	items[0].Name = "hotbar"
	items[9].Name = "storage"

	rows := inventoryRows(items)
	require.Len(t, rows, 2)
	require.Equal(t, "storage", rows[0][0].Name)
	require.Equal(t, "hotbar", rows[1][0].Name)
}
