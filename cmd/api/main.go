package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/echal/gembira-sub001/internal/config"
	appHTTP "github.com/echal/gembira-sub001/internal/handler/http"
	"github.com/echal/gembira-sub001/internal/pkg/calendar"
	"github.com/echal/gembira-sub001/internal/pkg/cron"
	"github.com/echal/gembira-sub001/internal/pkg/database"
	"github.com/echal/gembira-sub001/internal/pkg/jwt"
	"github.com/echal/gembira-sub001/internal/repository/postgresql"
	attendanceService "github.com/echal/gembira-sub001/internal/service/attendance"
	directoryService "github.com/echal/gembira-sub001/internal/service/directory"
	gamificationService "github.com/echal/gembira-sub001/internal/service/gamification"
	rankingService "github.com/echal/gembira-sub001/internal/service/ranking"
	"github.com/echal/gembira-sub001/internal/service/scoring"
	statisticsService "github.com/echal/gembira-sub001/internal/service/statistics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	// Validate guarantees the timezone loads
	loc, _ := time.LoadLocation(cfg.App.Timezone)

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	unitRepo := postgresql.NewUnitRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	xpLogRepo := postgresql.NewXpLogRepository(db, loc)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	calculator := scoring.NewCalculator(loc, scoring.Window{
		StartMinutes: cfg.Attendance.WindowStartMinutes(),
		EndMinutes:   cfg.Attendance.WindowEndMinutes(),
		MaxScore:     cfg.Attendance.MaxScore,
	})
	calendarProvider := calendar.NewProvider(loc, holidayRepo)
	levelTable := gamificationService.NewLevelTable(cfg.Gamification.LevelThresholds)

	gamificationSvc := gamificationService.NewGamificationService(
		xpLogRepo,
		employeeRepo,
		calculator,
		levelTable,
		cfg.Gamification.XpBase,
		cfg.Gamification.XpPerPoint,
	)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, calculator, gamificationSvc)
	rankingSvc := rankingService.NewRankingService(attendanceRepo, calculator)
	statisticsSvc := statisticsService.NewStatisticsService(attendanceRepo, employeeRepo, calendarProvider, calculator)
	directorySvc := directoryService.NewDirectoryService(employeeRepo, unitRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	rankingHandler := appHTTP.NewRankingHandler(rankingSvc)
	statisticsHandler := appHTTP.NewStatisticsHandler(statisticsSvc)
	gamificationHandler := appHTTP.NewGamificationHandler(gamificationSvc)
	directoryHandler := appHTTP.NewDirectoryHandler(directorySvc)

	scheduler := cron.NewScheduler()
	cron.NewGamificationJobs(gamificationSvc, loc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		rankingHandler,
		statisticsHandler,
		gamificationHandler,
		directoryHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)

	server := &http.Server{Addr: port, Handler: router}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println("Shutting down...")
	_ = server.Close()
}
