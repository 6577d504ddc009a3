package models

// XPPerLevel is the amount of XP that advances the athlete one level.
const XPPerLevel = 100

// LevelInfo is the XP progression derived for display: current level,
// the XP bounds of that level, and the percentage progressed inside it.
type LevelInfo struct {
	Level             int
	XPForCurrentLevel int
	XPForNextLevel    int
	Progress          float64
}

// LevelInfoForXP derives the level from XP. Level is floor(xp/100)+1, so
// xp=100 is level 2 at 0% progress, not level 1 at 100%.
func LevelInfoForXP(xp int) LevelInfo {
	level := xp/XPPerLevel + 1
	return LevelInfo{
		Level:             level,
		XPForCurrentLevel: (level - 1) * XPPerLevel,
		XPForNextLevel:    level * XPPerLevel,
		Progress:          float64(xp%XPPerLevel) / XPPerLevel * 100,
	}
}

// Badge is a named achievement unlocked at a fixed XP threshold. Badges
// are cumulative: earning a higher tier implies all lower tiers.
type Badge struct {
	Id        string
	Icon      string
	Color     string
	Threshold int
}

// AllBadges lists every badge tier in ascending threshold order.
func AllBadges() []Badge {
	return []Badge{
		{Id: "rookie", Icon: "medal", Color: "yellow", Threshold: 100},
		{Id: "elite", Icon: "zap", Color: "purple", Threshold: 500},
		{Id: "legend", Icon: "crown", Color: "red", Threshold: 1000},
		{Id: "top-tier", Icon: "star", Color: "green", Threshold: 2000},
	}
}

// BadgesForXP returns the badges earned at the given XP.
func BadgesForXP(xp int) []Badge {
	var earned []Badge
	for _, b := range AllBadges() {
		if xp >= b.Threshold {
			earned = append(earned, b)
		}
	}
	return earned
}

// HasBadge reports whether the badge with the given threshold is earned.
func HasBadge(xp, threshold int) bool {
	return xp >= threshold
}
