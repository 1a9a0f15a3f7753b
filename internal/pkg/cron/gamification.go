package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/echal/gembira-sub001/internal/domain/gamification"
)

type GamificationJobs struct {
	gamificationSvc gamification.GamificationService
	loc             *time.Location
}

func NewGamificationJobs(gamificationSvc gamification.GamificationService, loc *time.Location) *GamificationJobs {
	return &GamificationJobs{
		gamificationSvc: gamificationSvc,
		loc:             loc,
	}
}

func (j *GamificationJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("reconcile_xp_totals", 1*time.Hour, j.ReconcileXpTotals)
}

// ReconcileXpTotals repairs any maintained XP total that has drifted from its
// ledger sum. Drift should never happen; a nonzero repair count is a bug
// signal worth alerting on.
func (j *GamificationJobs) ReconcileXpTotals(ctx context.Context) error {
	// Only run in the quiet early hours (02:00-02:59 local)
	if time.Now().In(j.loc).Hour() != 2 {
		return nil
	}

	slog.Info("Cron: Starting XP total reconciliation job")

	repaired, err := j.gamificationSvc.ReconcileTotals(ctx)
	if err != nil {
		return err
	}

	if repaired > 0 {
		slog.Warn("Cron: Repaired drifted XP totals", "repaired", repaired)
	} else {
		slog.Info("Cron: XP totals consistent with ledger")
	}
	return nil
}
