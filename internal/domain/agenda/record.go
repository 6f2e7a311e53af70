// Package agenda modela el registro de live tracking: vínculo con una única cadena
// de documentos (venta o compra), estado ordenado y reinicio al cambiar de dominio.
package agenda

import (
	"fmt"
	"time"

	"github.com/Jinzyy/project-eza-sub000/internal/domain"
)

// Status estado ordenado del envío (índice 0–3).
type Status int

const (
	StatusCreated Status = iota
	StatusInTransit
	StatusUnloading
	StatusArrived
)

var statusLabels = [...]string{"Created", "In Transit", "Unloading", "Arrived"}

// Label etiqueta que viaja en el payload de create/update.
func (s Status) Label() string {
	if !s.Valid() {
		return ""
	}
	return statusLabels[s]
}

func (s Status) String() string { return s.Label() }

// Valid indica si el índice está dentro de 0–3.
func (s Status) Valid() bool {
	return s >= StatusCreated && int(s) < len(statusLabels)
}

// StatusLabels devuelve las etiquetas en orden.
func StatusLabels() []string {
	out := make([]string, len(statusLabels))
	copy(out, statusLabels[:])
	return out
}

// ParseStatusLabel convierte una etiqueta en Status.
func ParseStatusLabel(label string) (Status, error) {
	for i, l := range statusLabels {
		if l == label {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrStatusOutOfRange, label)
}

// Record registro de agenda. El dominio se deriva siempre de Refs.
type Record struct {
	ID            int64
	Timestamp     time.Time
	VehicleNumber string
	DriverName    string
	CustomerID    *int64
	Note          string
	Status        Status
	Refs          DocumentRefs
}

// NewRecord crea un registro en estado Created con referencias vacías del dominio d.
func NewRecord(d Domain) (*Record, error) {
	refs, err := EmptyRefs(d)
	if err != nil {
		return nil, err
	}
	return &Record{Status: StatusCreated, Refs: refs}, nil
}

// Domain devuelve el dominio activo del registro.
func (r *Record) Domain() Domain {
	if r.Refs == nil {
		return ""
	}
	return r.Refs.Domain()
}

// SetStatus salta a cualquier índice válido; no se exige orden hacia adelante.
func (r *Record) SetStatus(s Status) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrStatusOutOfRange, int(s))
	}
	r.Status = s
	return nil
}

// SwitchDomain reinicio duro: limpia todas las referencias y vuelve a Created,
// incluso si d coincide con el dominio actual.
func (r *Record) SwitchDomain(d Domain) error {
	refs, err := EmptyRefs(d)
	if err != nil {
		return err
	}
	r.Refs = refs
	r.Status = StatusCreated
	return nil
}

// Validate comprueba los invariantes mínimos antes de persistir.
func (r *Record) Validate() error {
	if r.Refs == nil {
		return fmt.Errorf("%w: dominio requerido", domain.ErrInvalidInput)
	}
	if !r.Status.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrStatusOutOfRange, int(r.Status))
	}
	if r.VehicleNumber == "" {
		return fmt.Errorf("%w: vehicle_number requerido", domain.ErrInvalidInput)
	}
	return nil
}
