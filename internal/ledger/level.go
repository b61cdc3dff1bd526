package ledger

// MaxLevel caps the level curve.
const MaxLevel = 100

// RequirementFor returns the XP needed to reach a level. Level 1 starts at
// zero; beyond that the curve grows quadratically.
func RequirementFor(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * (level - 1) * 50
}

// LevelFor returns the highest level whose requirement the XP meets.
func LevelFor(xp int) int {
	for level := MaxLevel; level > 1; level-- {
		if xp >= RequirementFor(level) {
			return level
		}
	}
	return 1
}

// LevelUpBonus is the one-time coin grant when a new level is reached.
func LevelUpBonus(newLevel int) int {
	return newLevel * 20
}
