// latenessscan ejecuta una pasada del batch de tardanzas contra la base de
// asistencia: marca isLate/lateStreakToday en los registros del día evaluado
// y genera las notificaciones de hito de racha (3 días al empleado, 5 a HR).
//
// Uso: go run ./cmd/latenessscan [-date YYYY-MM-DD]
// Sin -date evalúa el día de ayer en la zona horaria del negocio. Pensado
// para correr desde cron después de la medianoche local.
package main

import (
	"flag"
	"fmt"
	"os"

	appattendance "github.com/jhoicas/smarthr-api/internal/application/attendance"
	attrules "github.com/jhoicas/smarthr-api/internal/domain/attendance"
	"github.com/jhoicas/smarthr-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/smarthr-api/pkg/config"
	"github.com/jhoicas/smarthr-api/pkg/logger"
)

func main() {
	date := flag.String("date", "", "fecha local a evaluar (YYYY-MM-DD); vacío = ayer")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: "latenessscan"})

	db, err := mongodb.Connect(cfg.Mongo.URI, cfg.Mongo.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		if err := mongodb.Disconnect(db); err != nil {
			log.Error().Err(err).Msg("desconexión de MongoDB")
		}
	}()

	location, err := cfg.Attendance.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria")
	}
	lateStart, err := attrules.ParseClockTime(cfg.Attendance.LateStart)
	if err != nil {
		log.Fatal().Err(err).Msg("inicio de ventana de tardanza")
	}
	lateCutoff, err := attrules.ParseClockTime(cfg.Attendance.LateCutoff)
	if err != nil {
		log.Fatal().Err(err).Msg("fin de ventana de tardanza")
	}

	uc := appattendance.NewLatenessUseCase(
		mongodb.NewAttendanceRepository(db),
		mongodb.NewNotificationRepository(db),
		lateStart, lateCutoff, location, log.Zerolog(),
	)

	result, err := uc.ScanDate(*date)
	if err != nil {
		log.Fatal().Err(err).Msg("batch de tardanzas")
	}

	if result.Skipped {
		fmt.Printf("Fecha %s no laborable, sin cambios.\n", result.Date)
		return
	}
	fmt.Printf("Fecha evaluada:              %s\n", result.Date)
	fmt.Printf("Empleados con registro:      %d\n", result.EmployeesScanned)
	fmt.Printf("Notificaciones a empleados:  %d\n", result.EmployeeNotifications)
	fmt.Printf("Notificaciones a HR:         %d\n", result.HRNotifications)
}
