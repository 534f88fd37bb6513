package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/realsteps/presence-backend-go/internal/config"
	appHTTP "github.com/realsteps/presence-backend-go/internal/handler/http"
	"github.com/realsteps/presence-backend-go/internal/pkg/cron"
	"github.com/realsteps/presence-backend-go/internal/pkg/database"
	"github.com/realsteps/presence-backend-go/internal/pkg/facematch"
	"github.com/realsteps/presence-backend-go/internal/pkg/metrics"
	"github.com/realsteps/presence-backend-go/internal/pkg/notifier"
	"github.com/realsteps/presence-backend-go/internal/repository/postgresql"
	attendanceService "github.com/realsteps/presence-backend-go/internal/service/attendance"
	biometricService "github.com/realsteps/presence-backend-go/internal/service/biometric"
	complianceService "github.com/realsteps/presence-backend-go/internal/service/compliance"
	employeeService "github.com/realsteps/presence-backend-go/internal/service/employee"
	reportService "github.com/realsteps/presence-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	appMetrics := metrics.New()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	enrollmentRepo := postgresql.NewEnrollmentRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	matcherClient := facematch.NewClient(cfg.Matcher, appMetrics)

	registrySvc := biometricService.NewRegistryService(enrollmentRepo, employeeRepo, matcherClient)
	ledgerSvc := attendanceService.NewLedgerService(sessionRepo, registrySvc, appMetrics)
	logSvc := reportService.NewLogService(reportRepo, sessionRepo, postgresql.NewTxRunner(db), appMetrics)
	profileSvc := employeeService.NewProfileService(employeeRepo, registrySvc, ledgerSvc)
	monitor := complianceService.NewMonitor(sessionRepo, cfg.Compliance.ReportDeadline)

	emailNotifier, err := notifier.NewEmailNotifier(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email notifier:", err)
	}

	scheduler := cron.NewScheduler()
	complianceJobs := cron.NewComplianceJobs(monitor, emailNotifier, appMetrics, cfg.Compliance.SweepInterval)
	complianceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	ja := jwtauth.New("HS256", []byte(cfg.JWT.Secret), nil, jwt.WithAcceptableSkew(30*time.Second))

	employeeHandler := appHTTP.NewEmployeeHandler(profileSvc)
	biometricHandler := appHTTP.NewBiometricHandler(registrySvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(ledgerSvc)
	reportHandler := appHTTP.NewReportHandler(logSvc, ledgerSvc)

	router := appHTTP.NewRouter(
		ja,
		cfg.App.Env,
		employeeHandler,
		biometricHandler,
		attendanceHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	if err := server.Close(); err != nil {
		fmt.Println("Server close error:", err)
	}
}
