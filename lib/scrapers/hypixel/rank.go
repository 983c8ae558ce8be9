package hypixel

import "strings"

type playerResponse struct {
	Player map[string]any `json:"player"`
}

func (r playerResponse) displayName() string {
	name, _ := r.Player["displayname"].(string)
	return name
}

func (r playerResponse) secrets() int {
	achievements, ok := r.Player["achievements"].(map[string]any)
	if !ok {
		return 0
	}
	secrets, _ := achievements["skyblock_treasure_hunter"].(float64)
	return int(secrets)
}

// rankFromPlayer reconstructs the "[MVP+]" style rank tag out of the
// player record. The package rank fields layer on top of each other:
// staff ranks beat prefixes, prefixes beat purchased ranks.
func rankFromPlayer(player map[string]any) string {
	rank := ""
	if monthly, ok := player["monthlyPackageRank"].(string); ok && monthly != "NONE" {
		rank = "MVP++"
	} else if pkg, ok := player["newPackageRank"].(string); ok {
		rank = pkg
	} else if pkg, ok := player["packageRank"].(string); ok {
		rank = pkg
	}

	if prefix, ok := player["prefix"].(string); ok {
		prefix = strings.ReplaceAll(prefix, "§", "&")
		switch prefix {
		case "&c[OWNER]":
			rank = "OWNER"
		case "&d[PIG&b+++&d]":
			rank = "PIG+++"
		}
	} else {
		rank = strings.ReplaceAll(rank, "_", "")
		rank = strings.ReplaceAll(rank, "PLUS", "+")
	}

	if staff, ok := player["rank"].(string); ok {
		rank = staff
		if rank == "GAME_MASTER" {
			rank = "GM"
		}
	}

	if rank != "" {
		rank = "[" + rank + "]"
	}
	return rank
}
