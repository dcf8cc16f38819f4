package http

import (
	"github.com/gofiber/fiber/v2"

	appattendance "github.com/jhoicas/smarthr-api/internal/application/attendance"
	"github.com/jhoicas/smarthr-api/internal/application/auth"
	"github.com/jhoicas/smarthr-api/internal/application/nlp"
	"github.com/jhoicas/smarthr-api/internal/application/scoring"
	"github.com/jhoicas/smarthr-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ScanUC           *appattendance.ScanUseCase
	EnrollUC         *appattendance.EnrollUseCase
	LatenessUC       *appattendance.LatenessUseCase
	ReportUC         *appattendance.ReportUseCase
	NLPExecutor      *nlp.Executor
	PrehireUC        *scoring.PrehireUseCase
	RankUC           *scoring.RankUseCase
	NotificationRepo repository.NotificationRepository
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Kiosco de asistencia (público: el dispositivo no porta sesión de usuario)
	attendanceHandler := NewAttendanceHandler(deps.ScanUC, deps.EnrollUC, deps.LatenessUC, deps.ReportUC)
	api.Post("/attendance/scan", attendanceHandler.Scan)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)
	protected.Get("/attendance/report", attendanceHandler.MonthlyReport)

	// Asistente NLP (cualquier cuenta autenticada)
	nlpHandler := NewNLPHandler(deps.NLPExecutor)
	protected.Get("/nlp/query", nlpHandler.Query)
	protected.Post("/nlp/query", nlpHandler.Query)

	// Notificaciones (HR ve todas, empleado las suyas)
	notificationHandler := NewNotificationHandler(deps.NotificationRepo)
	protected.Get("/notifications", notificationHandler.List)

	// Rutas solo HR
	hr := protected.Group("/", RequireRole("hr"))
	hr.Post("/attendance/enroll/:code", attendanceHandler.Enroll)
	hr.Post("/attendance/lateness-scan", attendanceHandler.LatenessScan)

	scoringHandler := NewScoringHandler(deps.PrehireUC, deps.RankUC)
	hr.Post("/prehire/predict", scoringHandler.Prehire)
	hr.Get("/turnover/rank", scoringHandler.TurnoverRank)
	hr.Get("/performance/rank", scoringHandler.PerformanceRank)
}
