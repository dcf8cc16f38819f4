package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Los cuatro primeros son fallos "suaves" de reconocimiento: el handler los
// traduce a una respuesta ok:false con HTTP 200, nunca a un status de error.
var (
	ErrNoFace          = errors.New("no se detectó una cara en la imagen")
	ErrBadImage        = errors.New("imagen no decodificable")
	ErrNoEnrolledFaces = errors.New("no hay caras enroladas")
	ErrLowConfidence   = errors.New("similitud por debajo del umbral")

	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrAmbiguousPerson = errors.New("múltiples empleados coinciden")
)
