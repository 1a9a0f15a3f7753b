package gamification

// MonthlyLeaderboardEntry is one employee's position on a month's XP board
type MonthlyLeaderboardEntry struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Period       string `json:"period"`
	TotalXp      int64  `json:"total_xp"`
	Rank         int    `json:"rank"`
}

type MonthlyLeaderboardResponse struct {
	Period  string                    `json:"period"`
	Limit   int                       `json:"limit"`
	Entries []MonthlyLeaderboardEntry `json:"entries"`
}

// XpSummary is one employee's cumulative XP and derived level
type XpSummary struct {
	EmployeeID   string `json:"employee_id"`
	CumulativeXp int64  `json:"cumulative_xp"`
	Level        int    `json:"level"`
	NextLevelXp  *int64 `json:"next_level_xp,omitempty"`
}

// LevelBucket is one bar of the level histogram
type LevelBucket struct {
	Level         int   `json:"level"`
	EmployeeCount int64 `json:"employee_count"`
}

// LevelDistribution always sums to the total employee count: employees with
// no ledger entries sit in the lowest level's bucket.
type LevelDistribution struct {
	Levels         []LevelBucket `json:"levels"`
	TotalEmployees int64         `json:"total_employees"`
}

// Overview carries scope-wide reductions over the ledger. Totals are
// recomputed, never read from side counters.
type Overview struct {
	TotalXp         int64             `json:"total_xp"`
	ActiveEmployees int64             `json:"active_employees"`
	Distribution    LevelDistribution `json:"distribution"`
}
