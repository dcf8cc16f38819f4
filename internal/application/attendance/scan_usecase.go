package attendance

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/smarthr-api/internal/application/dto"
	"github.com/jhoicas/smarthr-api/internal/domain"
	attrules "github.com/jhoicas/smarthr-api/internal/domain/attendance"
	"github.com/jhoicas/smarthr-api/internal/domain/entity"
	"github.com/jhoicas/smarthr-api/internal/domain/face"
	"github.com/jhoicas/smarthr-api/internal/domain/repository"
)

// ScanUseCase pipeline completo de un scan de asistencia: extracción del
// embedding, match contra la caché de enrolados y la transición IN/OUT
// sobre el registro del día.
type ScanUseCase struct {
	extractor      Extractor
	cache          *KnownCache
	attendanceRepo repository.AttendanceRepository
	threshold      float64
	cutoff         attrules.ClockTime
	location       *time.Location
	now            func() time.Time
	logger         zerolog.Logger
}

// NewScanUseCase construye el caso de uso de scan.
func NewScanUseCase(
	extractor Extractor,
	cache *KnownCache,
	attendanceRepo repository.AttendanceRepository,
	threshold float64,
	cutoff attrules.ClockTime,
	location *time.Location,
	logger zerolog.Logger,
) *ScanUseCase {
	return &ScanUseCase{
		extractor:      extractor,
		cache:          cache,
		attendanceRepo: attendanceRepo,
		threshold:      threshold,
		cutoff:         cutoff,
		location:       location,
		now:            time.Now,
		logger:         logger.With().Str("component", "attendance_scan").Logger(),
	}
}

// WithClock reemplaza la fuente de tiempo. Pensado para tests.
func (uc *ScanUseCase) WithClock(now func() time.Time) *ScanUseCase {
	uc.now = now
	return uc
}

// Scan procesa la imagen del kiosco y devuelve el evento resultante.
//
// Los fallos de reconocimiento (imagen mala, sin cara, sin enrolados,
// similitud baja) se devuelven como ScanResponse con OK=false, no como
// error: solo los fallos de infraestructura llegan al segundo retorno.
func (uc *ScanUseCase) Scan(image []byte) (*dto.ScanResponse, error) {
	if len(image) == 0 {
		return softFailure("no_image"), nil
	}

	probe, err := uc.extractor.Extract(image)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBadImage):
			return softFailure("bad_image"), nil
		case errors.Is(err, domain.ErrNoFace):
			return softFailure("no_face"), nil
		}
		return nil, err
	}

	codes, known, err := uc.cache.Snapshot()
	if err != nil {
		return nil, err
	}

	match, err := face.BestMatch(face.Normalize(probe), codes, known, uc.threshold)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoEnrolledFaces):
			return softFailure("no_enrolled_faces"), nil
		case errors.Is(err, domain.ErrLowConfidence):
			uc.logger.Debug().
				Str("best", match.EmployeeCode).
				Float64("confidence", match.Confidence).
				Msg("Scan por debajo del umbral")
			resp := softFailure("low_confidence")
			resp.Confidence = match.Confidence
			return resp, nil
		}
		return nil, err
	}

	eventType, err := uc.record(match.EmployeeCode, match.Confidence)
	if err != nil {
		return nil, err
	}

	uc.logger.Info().
		Str("emp_id", match.EmployeeCode).
		Str("type", eventType).
		Float64("confidence", match.Confidence).
		Msg("Scan de asistencia registrado")

	return &dto.ScanResponse{
		OK:           true,
		Type:         eventType,
		EmployeeCode: match.EmployeeCode,
		Confidence:   match.Confidence,
	}, nil
}

// record aplica la máquina de estados sobre el registro del día. El tipo de
// evento final lo decide el resultado de la escritura condicional: si otro
// scan concurrente ganó el campo, este scan degrada a duplicado.
func (uc *ScanUseCase) record(code string, confidence float64) (string, error) {
	now := uc.now().In(uc.location)
	date := now.Format(attrules.DateLayout)
	isOut := attrules.IsOutWindow(now, uc.cutoff)

	existing, err := uc.attendanceRepo.Get(code, date)
	if err != nil {
		return "", err
	}

	eventType := attrules.Decide(existing, isOut)

	switch eventType {
	case entity.EventIn:
		if existing == nil {
			rec := &entity.AttendanceRecord{
				EmployeeCode:   code,
				Date:           date,
				InTime:         &now,
				Method:         "face",
				LastConfidence: confidence,
			}
			inserted, err := uc.attendanceRepo.CreateFirstScan(rec)
			if err != nil {
				return "", err
			}
			if inserted {
				return entity.EventIn, nil
			}
			// Otro scan insertó primero; este cae al camino condicional.
		}
		won, err := uc.attendanceRepo.SetCheckIn(code, date, now, confidence)
		if err != nil {
			return "", err
		}
		if !won {
			return entity.EventInDuplicate, nil
		}
		return entity.EventIn, nil

	case entity.EventOut:
		if existing == nil {
			out := now
			rec := &entity.AttendanceRecord{
				EmployeeCode:   code,
				Date:           date,
				OutTime:        &out,
				Method:         "face",
				LastConfidence: confidence,
			}
			inserted, err := uc.attendanceRepo.CreateFirstScan(rec)
			if err != nil {
				return "", err
			}
			if inserted {
				return entity.EventOut, nil
			}
		}
		won, err := uc.attendanceRepo.SetCheckOut(code, date, now, confidence)
		if err != nil {
			return "", err
		}
		if !won {
			return entity.EventOutDuplicate, nil
		}
		return entity.EventOut, nil

	default:
		if err := uc.attendanceRepo.TouchConfidence(code, date, confidence); err != nil {
			return "", err
		}
		return eventType, nil
	}
}

func softFailure(reason string) *dto.ScanResponse {
	return &dto.ScanResponse{
		OK:      false,
		Message: "Invalid Entry",
		Reason:  reason,
	}
}
