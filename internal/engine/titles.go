package engine

// TitleTier is a purely cosmetic rank covering a contiguous range of levels.
type TitleTier struct {
	MinLevel int    `json:"minLevel"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Icon     string `json:"icon"`
}

// titleTiers is ordered ascending by MinLevel and covers every level >= 1;
// the last tier's range is open-ended upward.
var titleTiers = []TitleTier{
	{MinLevel: 1, Name: "Rookie Hero", Color: "#10b981", Icon: "🟢"},
	{MinLevel: 3, Name: "Novice Adventurer", Color: "#10b981", Icon: "🟢"},
	{MinLevel: 5, Name: "Elite Champion", Color: "#3b82f6", Icon: "🔵"},
	{MinLevel: 10, Name: "Veteran Warrior", Color: "#3b82f6", Icon: "🔵"},
	{MinLevel: 51, Name: "Master of Combat", Color: "#eab308", Icon: "🟡"},
	{MinLevel: 101, Name: "Hardened Fighter", Color: "#f97316", Icon: "🟠"},
	{MinLevel: 201, Name: "True Epic", Color: "#dc2626", Icon: "🔴"},
	{MinLevel: 351, Name: "Living Legend", Color: "#a855f7", Icon: "🟣"},
	{MinLevel: 501, Name: "Myth Incarnate", Color: "#1f2937", Icon: "⚫"},
	{MinLevel: 651, Name: "Transcendent Being", Color: "#ef4444", Icon: "🔥"},
	{MinLevel: 801, Name: "Pseudo God", Color: "#9333ea", Icon: "🌌"},
	{MinLevel: 951, Name: "Supreme Existence", Color: "#FFD700", Icon: "👑"},
}

// TitleForLevel returns the tier with the largest MinLevel that is <= level
// (highest matching floor, not nearest match).
func TitleForLevel(level int) TitleTier {
	tier := titleTiers[0]
	for _, t := range titleTiers {
		if level < t.MinLevel {
			break
		}
		tier = t
	}
	return tier
}
