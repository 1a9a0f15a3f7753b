package gamification

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/echal/gembira-sub001/internal/config"
	"github.com/echal/gembira-sub001/internal/domain/attendance"
	"github.com/echal/gembira-sub001/internal/domain/employee"
	"github.com/echal/gembira-sub001/internal/domain/gamification"
	"github.com/echal/gembira-sub001/internal/service/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLoc = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Makassar")
	if err != nil {
		panic(err)
	}
	return loc
}()

func testCalculator() *scoring.Calculator {
	return scoring.NewCalculator(testLoc, scoring.Window{
		StartMinutes: 7 * 60,
		EndMinutes:   8*60 + 15,
		MaxScore:     100,
	})
}

func testLevels() *LevelTable {
	return NewLevelTable([]config.LevelThreshold{
		{MinXp: 0, Level: 1},
		{MinXp: 100, Level: 2},
		{MinXp: 300, Level: 3},
	})
}

// fakeXpLogRepo is an in-memory ledger with the same idempotency and
// maintained-total semantics as the real one.
type fakeXpLogRepo struct {
	entries  []gamification.XpLog
	totals   map[string]int64
	names    map[string]string
	repaired []string
}

func newFakeXpLogRepo() *fakeXpLogRepo {
	return &fakeXpLogRepo{totals: make(map[string]int64), names: make(map[string]string)}
}

func (f *fakeXpLogRepo) Append(ctx context.Context, entry gamification.XpLog) (bool, error) {
	for _, existing := range f.entries {
		if existing.Reason == entry.Reason && existing.SourceID == entry.SourceID {
			return false, nil
		}
	}
	f.entries = append(f.entries, entry)
	f.totals[entry.EmployeeID] += entry.XpDelta
	return true, nil
}

func (f *fakeXpLogRepo) GetMaintainedTotal(ctx context.Context, employeeID string) (int64, error) {
	return f.totals[employeeID], nil
}

func (f *fakeXpLogRepo) SumByEmployee(ctx context.Context, employeeID string) (int64, error) {
	var sum int64
	for _, entry := range f.entries {
		if entry.EmployeeID == employeeID {
			sum += entry.XpDelta
		}
	}
	return sum, nil
}

func (f *fakeXpLogRepo) MonthlyTotals(ctx context.Context, year int, month int) ([]gamification.EmployeeXpTotal, error) {
	byEmployee := make(map[string]int64)
	for _, entry := range f.entries {
		local := entry.CreatedAt.In(testLoc)
		if local.Year() == year && int(local.Month()) == month {
			byEmployee[entry.EmployeeID] += entry.XpDelta
		}
	}
	return f.asTotals(byEmployee), nil
}

func (f *fakeXpLogRepo) MaintainedTotals(ctx context.Context) ([]gamification.EmployeeXpTotal, error) {
	return f.asTotals(f.totals), nil
}

func (f *fakeXpLogRepo) LedgerTotals(ctx context.Context) ([]gamification.EmployeeXpTotal, error) {
	byEmployee := make(map[string]int64)
	for _, entry := range f.entries {
		byEmployee[entry.EmployeeID] += entry.XpDelta
	}
	return f.asTotals(byEmployee), nil
}

func (f *fakeXpLogRepo) GlobalTotals(ctx context.Context) (int64, int64, error) {
	var total int64
	seen := make(map[string]bool)
	for _, entry := range f.entries {
		total += entry.XpDelta
		seen[entry.EmployeeID] = true
	}
	return total, int64(len(seen)), nil
}

func (f *fakeXpLogRepo) SetMaintainedTotal(ctx context.Context, employeeID string, total int64) error {
	f.totals[employeeID] = total
	f.repaired = append(f.repaired, employeeID)
	return nil
}

func (f *fakeXpLogRepo) asTotals(byEmployee map[string]int64) []gamification.EmployeeXpTotal {
	totals := make([]gamification.EmployeeXpTotal, 0, len(byEmployee))
	for id, xp := range byEmployee {
		total := gamification.EmployeeXpTotal{EmployeeID: id, TotalXp: xp}
		if name, ok := f.names[id]; ok {
			n := name
			total.EmployeeName = &n
		}
		totals = append(totals, total)
	}
	return totals
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	known map[string]bool
	count int64
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if f.known[id] {
		return employee.Employee{ID: id}, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) CountActive(ctx context.Context) (int64, error) {
	return f.count, nil
}

func newTestService(xpRepo *fakeXpLogRepo, empRepo *fakeEmployeeRepo) gamification.GamificationService {
	return NewGamificationService(xpRepo, empRepo, testCalculator(), testLevels(), 10, 0.5)
}

func checkInAt(date, clock string) time.Time {
	parsed, err := time.ParseInLocation("2006-01-02 15:04:05", date+" "+clock, testLoc)
	if err != nil {
		panic(err)
	}
	return parsed.UTC()
}

func dateOf(date string) time.Time {
	parsed, _ := time.ParseInLocation("2006-01-02", date, testLoc)
	return parsed
}

func TestAwardCheckInXp_OnTimeCheckIn(t *testing.T) {
	xpRepo := newFakeXpLogRepo()
	svc := newTestService(xpRepo, &fakeEmployeeRepo{})

	entry, err := svc.AwardCheckInXp(context.Background(), "emp-a", "att-1", checkInAt("2025-03-03", "07:00:00"), dateOf("2025-03-03"))

	require.NoError(t, err)
	require.NotNil(t, entry)
	// score 100 with base 10 and half a point of XP per score point
	assert.Equal(t, int64(60), entry.XpDelta)
	assert.Equal(t, gamification.XpReasonCheckIn, entry.Reason)
	assert.Equal(t, "att-1", entry.SourceID)

	total, err := xpRepo.GetMaintainedTotal(context.Background(), "emp-a")
	require.NoError(t, err)
	assert.Equal(t, int64(60), total)
}

func TestAwardCheckInXp_LateCheckInEarnsNothing(t *testing.T) {
	xpRepo := newFakeXpLogRepo()
	svc := newTestService(xpRepo, &fakeEmployeeRepo{})

	entry, err := svc.AwardCheckInXp(context.Background(), "emp-a", "att-1", checkInAt("2025-03-03", "09:00:00"), dateOf("2025-03-03"))

	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.Empty(t, xpRepo.entries)
}

func TestAwardCheckInXp_ReplayIsAbsorbed(t *testing.T) {
	xpRepo := newFakeXpLogRepo()
	svc := newTestService(xpRepo, &fakeEmployeeRepo{})
	ctx := context.Background()

	first, err := svc.AwardCheckInXp(ctx, "emp-a", "att-1", checkInAt("2025-03-03", "07:10:00"), dateOf("2025-03-03"))
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := svc.AwardCheckInXp(ctx, "emp-a", "att-1", checkInAt("2025-03-03", "07:10:00"), dateOf("2025-03-03"))
	require.NoError(t, err)
	assert.Nil(t, second)

	maintained, err := xpRepo.GetMaintainedTotal(ctx, "emp-a")
	require.NoError(t, err)
	recomputed, err := xpRepo.SumByEmployee(ctx, "emp-a")
	require.NoError(t, err)
	assert.Equal(t, first.XpDelta, maintained)
	assert.Equal(t, recomputed, maintained)
}

func TestMaintainedTotalAgreesWithLedger(t *testing.T) {
	xpRepo := newFakeXpLogRepo()
	svc := newTestService(xpRepo, &fakeEmployeeRepo{})
	ctx := context.Background()

	employees := []string{"emp-a", "emp-b", "emp-c"}
	clocks := []string{"07:00:00", "07:12:00", "07:38:00", "08:15:00", "09:00:00"}
	day := 1
	for _, emp := range employees {
		for i, clock := range clocks {
			date := dateOf("2025-03-01").AddDate(0, 0, day)
			_, err := svc.AwardCheckInXp(ctx, emp, fmt.Sprintf("%s-%d", emp, i), checkInAt(date.Format("2006-01-02"), clock), date)
			require.NoError(t, err)
			day++
		}
	}

	for _, emp := range employees {
		maintained, err := xpRepo.GetMaintainedTotal(ctx, emp)
		require.NoError(t, err)
		recomputed, err := xpRepo.SumByEmployee(ctx, emp)
		require.NoError(t, err)
		assert.Equal(t, recomputed, maintained, "employee %s", emp)
	}
}

func TestXpForScore_MonotoneAndNonNegative(t *testing.T) {
	svc := &GamificationServiceImpl{xpBase: 10, xpPerPoint: 0.5}

	previous := int64(-1)
	for score := 0; score <= 100; score++ {
		xp := svc.xpForScore(score)
		assert.GreaterOrEqual(t, xp, int64(0))
		assert.GreaterOrEqual(t, xp, previous, "score %d", score)
		previous = xp
	}
}

func TestGetMonthlyLeaderboard_InvalidPeriod(t *testing.T) {
	svc := newTestService(newFakeXpLogRepo(), &fakeEmployeeRepo{})

	_, err := svc.GetMonthlyLeaderboard(context.Background(), "2025-13", 10)

	assert.ErrorIs(t, err, attendance.ErrInvalidPeriod)
}

func TestGetMonthlyLeaderboard_RanksAndTruncates(t *testing.T) {
	xpRepo := newFakeXpLogRepo()
	xpRepo.names = map[string]string{"emp-a": "Andi", "emp-b": "Budi", "emp-c": "Citra", "emp-d": "Dewi"}
	svc := newTestService(xpRepo, &fakeEmployeeRepo{})
	ctx := context.Background()

	award := func(emp, att, clock string, day string) {
		_, err := svc.AwardCheckInXp(ctx, emp, att, checkInAt(day, clock), dateOf(day))
		require.NoError(t, err)
	}
	// emp-a and emp-b tie at 120 XP, emp-c trails, emp-d is out of the month
	award("emp-a", "a1", "07:00:00", "2025-03-03")
	award("emp-a", "a2", "07:00:00", "2025-03-04")
	award("emp-b", "b1", "07:00:00", "2025-03-03")
	award("emp-b", "b2", "07:00:00", "2025-03-04")
	award("emp-c", "c1", "07:38:00", "2025-03-03")
	award("emp-d", "d1", "07:00:00", "2025-04-01")

	resp, err := svc.GetMonthlyLeaderboard(ctx, "2025-03", 2)

	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "emp-a", resp.Entries[0].EmployeeID)
	assert.Equal(t, "Andi", resp.Entries[0].EmployeeName)
	assert.Equal(t, 1, resp.Entries[0].Rank)
	assert.Equal(t, int64(120), resp.Entries[0].TotalXp)
	assert.Equal(t, "emp-b", resp.Entries[1].EmployeeID)
	assert.Equal(t, 1, resp.Entries[1].Rank)
}

func TestGetMonthlyLeaderboard_MonthBoundaryIsCivil(t *testing.T) {
	xpRepo := newFakeXpLogRepo()
	svc := newTestService(xpRepo, &fakeEmployeeRepo{})
	ctx := context.Background()

	// 07:00 local on April 1st is still March 31st in UTC; the entry must
	// land in April's board regardless of how the instant is stored
	clockIn := checkInAt("2025-04-01", "07:00:00")
	require.Equal(t, time.March, clockIn.UTC().Month())

	_, err := svc.AwardCheckInXp(ctx, "emp-a", "a1", clockIn, dateOf("2025-04-01"))
	require.NoError(t, err)

	april, err := svc.GetMonthlyLeaderboard(ctx, "2025-04", 10)
	require.NoError(t, err)
	require.Len(t, april.Entries, 1)
	assert.Equal(t, "emp-a", april.Entries[0].EmployeeID)

	march, err := svc.GetMonthlyLeaderboard(ctx, "2025-03", 10)
	require.NoError(t, err)
	assert.Empty(t, march.Entries)
}

func TestGetMonthlyLeaderboard_TieSkipsNextRank(t *testing.T) {
	name := "x"
	totals := []gamification.EmployeeXpTotal{
		{EmployeeID: "emp-a", EmployeeName: &name, TotalXp: 120},
		{EmployeeID: "emp-b", EmployeeName: &name, TotalXp: 120},
		{EmployeeID: "emp-c", EmployeeName: &name, TotalXp: 35},
	}

	entries := buildLeaderboard(totals, "2025-03", 10)

	require.Len(t, entries, 3)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 1, entries[1].Rank)
	assert.Equal(t, 3, entries[2].Rank)
}

func TestGetCumulativeXp_LevelAndNextThreshold(t *testing.T) {
	xpRepo := newFakeXpLogRepo()
	xpRepo.totals["emp-a"] = 150
	svc := newTestService(xpRepo, &fakeEmployeeRepo{known: map[string]bool{"emp-a": true}})

	summary, err := svc.GetCumulativeXp(context.Background(), "emp-a")

	require.NoError(t, err)
	assert.Equal(t, int64(150), summary.CumulativeXp)
	assert.Equal(t, 2, summary.Level)
	require.NotNil(t, summary.NextLevelXp)
	assert.Equal(t, int64(300), *summary.NextLevelXp)
}

func TestGetCumulativeXp_UnknownEmployee(t *testing.T) {
	svc := newTestService(newFakeXpLogRepo(), &fakeEmployeeRepo{})

	_, err := svc.GetCumulativeXp(context.Background(), "ghost")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetLevelDistribution_SumsToEmployeeCount(t *testing.T) {
	xpRepo := newFakeXpLogRepo()
	xpRepo.totals["emp-a"] = 150
	xpRepo.totals["emp-b"] = 400
	svc := newTestService(xpRepo, &fakeEmployeeRepo{count: 5})

	dist, err := svc.GetLevelDistribution(context.Background())

	require.NoError(t, err)
	require.Len(t, dist.Levels, 3)
	assert.Equal(t, int64(5), dist.TotalEmployees)
	// three employees without ledger entries sit at the lowest level
	assert.Equal(t, int64(3), dist.Levels[0].EmployeeCount)
	assert.Equal(t, int64(1), dist.Levels[1].EmployeeCount)
	assert.Equal(t, int64(1), dist.Levels[2].EmployeeCount)

	var sum int64
	for _, bucket := range dist.Levels {
		sum += bucket.EmployeeCount
	}
	assert.Equal(t, dist.TotalEmployees, sum)
}

func TestGetOverview(t *testing.T) {
	xpRepo := newFakeXpLogRepo()
	svc := newTestService(xpRepo, &fakeEmployeeRepo{count: 3})
	ctx := context.Background()

	_, err := svc.AwardCheckInXp(ctx, "emp-a", "a1", checkInAt("2025-03-03", "07:00:00"), dateOf("2025-03-03"))
	require.NoError(t, err)
	_, err = svc.AwardCheckInXp(ctx, "emp-b", "b1", checkInAt("2025-03-03", "07:38:00"), dateOf("2025-03-03"))
	require.NoError(t, err)

	overview, err := svc.GetOverview(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(95), overview.TotalXp)
	assert.Equal(t, int64(2), overview.ActiveEmployees)
	assert.Equal(t, int64(3), overview.Distribution.TotalEmployees)
}

func TestReconcileTotals_RepairsDrift(t *testing.T) {
	xpRepo := newFakeXpLogRepo()
	svc := newTestService(xpRepo, &fakeEmployeeRepo{})
	ctx := context.Background()

	_, err := svc.AwardCheckInXp(ctx, "emp-a", "a1", checkInAt("2025-03-03", "07:00:00"), dateOf("2025-03-03"))
	require.NoError(t, err)
	_, err = svc.AwardCheckInXp(ctx, "emp-b", "b1", checkInAt("2025-03-03", "07:00:00"), dateOf("2025-03-03"))
	require.NoError(t, err)

	// simulate a drifted counter for emp-a
	xpRepo.totals["emp-a"] = 7

	repaired, err := svc.ReconcileTotals(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, repaired)
	assert.Equal(t, []string{"emp-a"}, xpRepo.repaired)

	maintained, _ := xpRepo.GetMaintainedTotal(ctx, "emp-a")
	recomputed, _ := xpRepo.SumByEmployee(ctx, "emp-a")
	assert.Equal(t, recomputed, maintained)
}

func TestLevelTable_Boundaries(t *testing.T) {
	table := testLevels()

	assert.Equal(t, 1, table.LevelFor(0))
	assert.Equal(t, 1, table.LevelFor(99))
	assert.Equal(t, 2, table.LevelFor(100))
	assert.Equal(t, 3, table.LevelFor(1000))
	assert.Nil(t, table.NextThresholdXp(1000))
	assert.Equal(t, 1, table.LowestLevel())
}
