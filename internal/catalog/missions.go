package catalog

// Mission is a one-time achievement definition. The predicate itself lives in
// the engine (it needs profile and ledger access); the catalog carries the
// reward side: a coin credit, an optional badge, and an optional permanent
// unlock (an avatar entitlement or a guardian-item purchase gate).
type Mission struct {
	ID          string
	Tier        int
	Name        string
	Description string
	CoinReward  int
	BadgeID     string
	// UnlockAvatarID grants direct ownership of an avatar.
	UnlockAvatarID string
}

var missions = []Mission{
	{ID: "weekly_10", Tier: 1, Name: "Full Week", Description: "Complete 10 tasks in the current week", CoinReward: 120, BadgeID: "badge_dedicated"},
	{ID: "streak_7", Tier: 1, Name: "Unbroken", Description: "Complete at least one task on 7 consecutive days", CoinReward: 150, BadgeID: "badge_streak"},
	{ID: "linked_5", Tier: 1, Name: "Well Planned", Description: "Credit 5 task-linked completions", CoinReward: 80},
	{ID: "active_3", Tier: 1, Name: "Getting Going", Description: "Be active on 3 distinct days", CoinReward: 60},
	{ID: "zen", Tier: 1, Name: "Zen", Description: "After 3 active days, bring stress below 20", CoinReward: 90, BadgeID: "badge_zen"},
	{ID: "rich", Tier: 1, Name: "Nest Egg", Description: "Hold 500 coins or more", BadgeID: "badge_tycoon"},
	{ID: "level_5", Tier: 1, Name: "Adept", Description: "Reach level 5", CoinReward: 100, BadgeID: "badge_adept"},
	{ID: "balanced", Tier: 1, Name: "Balanced", Description: "After 3 active days, health at 70+ with stress at 30 or less", CoinReward: 90},
	{ID: "completionist", Tier: 2, Name: "Completionist", Description: "Complete every tier-1 mission", CoinReward: 400, BadgeID: "badge_legend", UnlockAvatarID: "avatar_guardian"},
}

var missionIndex = map[string]Mission{}

func init() {
	for _, m := range missions {
		missionIndex[m.ID] = m
	}
}

func MissionByID(id string) (Mission, bool) {
	m, ok := missionIndex[id]
	return m, ok
}

func Missions() []Mission { return missions }

// TierOneMissionIDs lists the missions the tier-2 completionist mission
// requires.
func TierOneMissionIDs() []string {
	var ids []string
	for _, m := range missions {
		if m.Tier == 1 {
			ids = append(ids, m.ID)
		}
	}
	return ids
}
