package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrUnknownDocumentType = errors.New("tipo de documento desconocido")
	ErrUnknownDomain       = errors.New("dominio de agenda desconocido")
	ErrStatusOutOfRange    = errors.New("estado de agenda fuera de rango")
	ErrRefOutsideDomain    = errors.New("referencia de documento fuera del dominio activo")
	ErrSessionClosed       = errors.New("sesión de edición cerrada")
)
