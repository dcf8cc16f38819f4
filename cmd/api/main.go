package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appattendance "github.com/jhoicas/smarthr-api/internal/application/attendance"
	"github.com/jhoicas/smarthr-api/internal/application/auth"
	"github.com/jhoicas/smarthr-api/internal/application/nlp"
	"github.com/jhoicas/smarthr-api/internal/application/scoring"
	infragenai "github.com/jhoicas/smarthr-api/internal/infrastructure/genai"
	"github.com/jhoicas/smarthr-api/internal/infrastructure/mlserve"
	"github.com/jhoicas/smarthr-api/internal/infrastructure/mongodb"
	infrapdf "github.com/jhoicas/smarthr-api/internal/infrastructure/pdf"
	"github.com/jhoicas/smarthr-api/internal/infrastructure/vision"
	httpRouter "github.com/jhoicas/smarthr-api/internal/interfaces/http"
	attrules "github.com/jhoicas/smarthr-api/internal/domain/attendance"
	"github.com/jhoicas/smarthr-api/pkg/config"
	"github.com/jhoicas/smarthr-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	db, err := mongodb.Connect(cfg.Mongo.URI, cfg.Mongo.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		if err := mongodb.Disconnect(db); err != nil {
			log.Error().Err(err).Msg("desconexión de MongoDB")
		}
	}()

	employeeRepo := mongodb.NewEmployeeRepository(db)
	attendanceRepo := mongodb.NewAttendanceRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)
	accountRepo := mongodb.NewAccountRepository(db)
	policyRepo := mongodb.NewPolicyRepository(db)
	leaveRepo := mongodb.NewLeaveRepository(db)
	insightRepo := mongodb.NewInsightRepository(db)
	scoreRepo := mongodb.NewScoreRepository(db)

	// Reglas de tiempo del negocio
	location, err := cfg.Attendance.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria")
	}
	cutoff, err := attrules.ParseClockTime(cfg.Attendance.CutoffTime)
	if err != nil {
		log.Fatal().Err(err).Msg("hora de corte IN/OUT")
	}
	lateStart, err := attrules.ParseClockTime(cfg.Attendance.LateStart)
	if err != nil {
		log.Fatal().Err(err).Msg("inicio de ventana de tardanza")
	}
	lateCutoff, err := attrules.ParseClockTime(cfg.Attendance.LateCutoff)
	if err != nil {
		log.Fatal().Err(err).Msg("fin de ventana de tardanza")
	}

	// Modelos ONNX de visión: si faltan en disco el proceso no arranca.
	models, err := vision.LoadModels(cfg.Attendance.YuNetModel, cfg.Attendance.SFaceModel)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar modelos de visión")
	}
	defer models.Close()
	extractor := vision.NewExtractor(models)

	knownCache := appattendance.NewKnownCache(employeeRepo, log.Zerolog())
	scanUC := appattendance.NewScanUseCase(
		extractor, knownCache, attendanceRepo,
		cfg.Attendance.SimThreshold, cutoff, location, log.Zerolog(),
	)
	enrollUC := appattendance.NewEnrollUseCase(extractor, employeeRepo, knownCache, log.Zerolog())
	latenessUC := appattendance.NewLatenessUseCase(
		attendanceRepo, notificationRepo, lateStart, lateCutoff, location, log.Zerolog(),
	)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := appattendance.NewReportUseCase(
		employeeRepo, attendanceRepo, pdfGenerator, location, log.Zerolog(),
	)

	// Router NLP: con Gemini si hay API key, si no solo reglas.
	var generator nlp.ContentGenerator
	if cfg.NLP.UseLLMRouter && cfg.NLP.GeminiAPIKey != "" {
		g, err := infragenai.NewGenerator(context.Background(), cfg.NLP.GeminiAPIKey, cfg.NLP.RouterModel)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente Gemini")
		}
		generator = g
	} else {
		log.Warn().Msg("router NLP sin LLM: solo enrutamiento por reglas")
	}
	nlpRouter := nlp.NewRouter(generator, log.Zerolog())
	var summarizer nlp.ContentGenerator
	if cfg.NLP.UseSummarizer {
		summarizer = generator
	}
	nlpExecutor := nlp.NewExecutor(
		nlpRouter, employeeRepo, leaveRepo, policyRepo, summarizer, log.Zerolog(),
	)

	scorer := mlserve.NewClient(cfg.Scoring.ScorerURL, time.Duration(cfg.Scoring.TimeoutSeconds)*time.Second)
	prehireUC := scoring.NewPrehireUseCase(scorer, scoreRepo, cfg.Scoring.PrehireThreshold, log.Zerolog())
	rankUC := scoring.NewRankUseCase(
		scorer, insightRepo, employeeRepo,
		cfg.Scoring.PrehireThreshold, cfg.Scoring.PerformanceThreshold, log.Zerolog(),
	)

	authUC := auth.NewAuthUseCase(accountRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    16 * 1024 * 1024, // fotos del kiosco en base64
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SmartHR API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ScanUC:           scanUC,
		EnrollUC:         enrollUC,
		LatenessUC:       latenessUC,
		ReportUC:         reportUC,
		NLPExecutor:      nlpExecutor,
		PrehireUC:        prehireUC,
		RankUC:           rankUC,
		NotificationRepo: notificationRepo,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
