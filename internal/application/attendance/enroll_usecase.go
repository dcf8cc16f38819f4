package attendance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/smarthr-api/internal/application/dto"
	"github.com/jhoicas/smarthr-api/internal/domain"
	"github.com/jhoicas/smarthr-api/internal/domain/face"
	"github.com/jhoicas/smarthr-api/internal/domain/repository"
)

// EnrollUseCase registra (o reemplaza) el embedding facial de un empleado a
// partir de una foto. Reemplazar es la operación normal: una foto nueva
// pisa la anterior.
type EnrollUseCase struct {
	extractor    Extractor
	employeeRepo repository.EmployeeRepository
	cache        *KnownCache
	logger       zerolog.Logger
}

// NewEnrollUseCase construye el caso de uso de enrolamiento.
func NewEnrollUseCase(
	extractor Extractor,
	employeeRepo repository.EmployeeRepository,
	cache *KnownCache,
	logger zerolog.Logger,
) *EnrollUseCase {
	return &EnrollUseCase{
		extractor:    extractor,
		employeeRepo: employeeRepo,
		cache:        cache,
		logger:       logger.With().Str("component", "attendance_enroll").Logger(),
	}
}

// Enroll extrae el embedding de la foto y lo persiste bajo el código de
// empleado, invalidando la caché de enrolados. Los fallos de la foto
// (indecodificable, sin cara) van como respuesta ok:false, igual que en el
// scan.
func (uc *EnrollUseCase) Enroll(code string, image []byte) (*dto.EnrollResponse, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: código de empleado vacío", domain.ErrInvalidInput)
	}
	if len(image) == 0 {
		return &dto.EnrollResponse{OK: false, Message: "Invalid Entry", Reason: "no_image"}, nil
	}

	embedding, err := uc.extractor.Extract(image)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBadImage):
			return &dto.EnrollResponse{OK: false, Message: "Invalid Entry", Reason: "bad_image"}, nil
		case errors.Is(err, domain.ErrNoFace):
			return &dto.EnrollResponse{OK: false, Message: "Invalid Entry", Reason: "no_face"}, nil
		}
		return nil, err
	}

	if err := uc.employeeRepo.UpsertEmbedding(code, face.Normalize(embedding)); err != nil {
		return nil, err
	}
	uc.cache.Invalidate()

	uc.logger.Info().Str("emp_id", code).Msg("Empleado enrolado")
	return &dto.EnrollResponse{OK: true, EmployeeCode: code}, nil
}
