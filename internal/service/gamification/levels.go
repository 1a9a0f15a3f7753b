package gamification

import (
	"sort"

	"github.com/echal/gembira-sub001/internal/config"
)

// LevelTable resolves cumulative XP to a level. Thresholds come from
// configuration, sorted ascending by minimum XP; an employee's level is the
// highest threshold their XP has reached.
type LevelTable struct {
	thresholds []config.LevelThreshold
}

func NewLevelTable(thresholds []config.LevelThreshold) *LevelTable {
	sorted := make([]config.LevelThreshold, len(thresholds))
	copy(sorted, thresholds)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinXp < sorted[j].MinXp })
	return &LevelTable{thresholds: sorted}
}

// LevelFor returns the level for a cumulative XP amount. XP below the lowest
// threshold still maps to the lowest level, so every employee has a level.
func (t *LevelTable) LevelFor(xp int64) int {
	level := t.thresholds[0].Level
	for _, th := range t.thresholds {
		if xp < th.MinXp {
			break
		}
		level = th.Level
	}
	return level
}

// NextThresholdXp returns the XP required for the next level, or nil when the
// employee already sits at the top of the table.
func (t *LevelTable) NextThresholdXp(xp int64) *int64 {
	for _, th := range t.thresholds {
		if xp < th.MinXp {
			next := th.MinXp
			return &next
		}
	}
	return nil
}

// Levels returns every level in the table in ascending order.
func (t *LevelTable) Levels() []int {
	levels := make([]int, len(t.thresholds))
	for i, th := range t.thresholds {
		levels[i] = th.Level
	}
	return levels
}

// LowestLevel returns the level assigned to employees with no XP yet.
func (t *LevelTable) LowestLevel() int {
	return t.thresholds[0].Level
}
