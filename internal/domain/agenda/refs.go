package agenda

import (
	"fmt"

	"github.com/Jinzyy/project-eza-sub000/internal/domain"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
)

// Domain lado de la cadena de documentos que sigue un registro de agenda.
type Domain string

const (
	DomainSale     Domain = "sale"
	DomainPurchase Domain = "purchase"
)

// ParseDomain valida el texto recibido del formulario o de la BD.
func ParseDomain(s string) (Domain, error) {
	switch Domain(s) {
	case DomainSale, DomainPurchase:
		return Domain(s), nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownDomain, s)
}

// DocumentRefs variante etiquetada de referencias a documentos.
// Solo existen SaleRefs y PurchaseRefs; cada una tiene su propio conjunto de campos,
// de modo que una combinación dominio/campo inválida no se puede construir.
type DocumentRefs interface {
	Domain() Domain
	// Referenced devuelve los ids no nulos indexados por tipo de documento.
	Referenced() map[entity.DocumentType]int64
	isDocumentRefs()
}

// SaleRefs cadena de venta: orden de venta → orden de entrega → factura.
type SaleRefs struct {
	SalesOrderID    *int64
	DeliveryOrderID *int64
	InvoiceID       *int64
}

func (SaleRefs) Domain() Domain { return DomainSale }
func (SaleRefs) isDocumentRefs() {}

func (r SaleRefs) Referenced() map[entity.DocumentType]int64 {
	out := make(map[entity.DocumentType]int64, 3)
	put(out, entity.DocSalesOrder, r.SalesOrderID)
	put(out, entity.DocDeliveryOrder, r.DeliveryOrderID)
	put(out, entity.DocInvoice, r.InvoiceID)
	return out
}

// PurchaseRefs cadena de compra: recepción de mercancía → nota de compra.
type PurchaseRefs struct {
	GoodsReceiptID *int64
	PurchaseNoteID *int64
}

func (PurchaseRefs) Domain() Domain { return DomainPurchase }
func (PurchaseRefs) isDocumentRefs() {}

func (r PurchaseRefs) Referenced() map[entity.DocumentType]int64 {
	out := make(map[entity.DocumentType]int64, 2)
	put(out, entity.DocGoodsReceipt, r.GoodsReceiptID)
	put(out, entity.DocPurchaseNote, r.PurchaseNoteID)
	return out
}

func put(m map[entity.DocumentType]int64, t entity.DocumentType, id *int64) {
	if id != nil {
		m[t] = *id
	}
}

// EmptyRefs devuelve la variante vacía del dominio indicado.
func EmptyRefs(d Domain) (DocumentRefs, error) {
	switch d {
	case DomainSale:
		return SaleRefs{}, nil
	case DomainPurchase:
		return PurchaseRefs{}, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDomain, d)
}

// FlatRefs representación plana (cinco columnas anulables) usada en la BD y en el wire.
type FlatRefs struct {
	SalesOrderID    *int64
	DeliveryOrderID *int64
	InvoiceID       *int64
	GoodsReceiptID  *int64
	PurchaseNoteID  *int64
}

// Flatten convierte la variante en columnas; los campos fuera del dominio quedan nil.
func Flatten(refs DocumentRefs) FlatRefs {
	switch r := refs.(type) {
	case SaleRefs:
		return FlatRefs{SalesOrderID: r.SalesOrderID, DeliveryOrderID: r.DeliveryOrderID, InvoiceID: r.InvoiceID}
	case PurchaseRefs:
		return FlatRefs{GoodsReceiptID: r.GoodsReceiptID, PurchaseNoteID: r.PurchaseNoteID}
	}
	return FlatRefs{}
}

// RefsFromFlat reconstruye la variante del dominio d. Un campo no nulo fuera del
// dominio es un error (ErrRefOutsideDomain), nunca se descarta en silencio.
func RefsFromFlat(d Domain, f FlatRefs) (DocumentRefs, error) {
	switch d {
	case DomainSale:
		if f.GoodsReceiptID != nil || f.PurchaseNoteID != nil {
			return nil, fmt.Errorf("%w: venta con referencias de compra", domain.ErrRefOutsideDomain)
		}
		return SaleRefs{SalesOrderID: f.SalesOrderID, DeliveryOrderID: f.DeliveryOrderID, InvoiceID: f.InvoiceID}, nil
	case DomainPurchase:
		if f.SalesOrderID != nil || f.DeliveryOrderID != nil || f.InvoiceID != nil {
			return nil, fmt.Errorf("%w: compra con referencias de venta", domain.ErrRefOutsideDomain)
		}
		return PurchaseRefs{GoodsReceiptID: f.GoodsReceiptID, PurchaseNoteID: f.PurchaseNoteID}, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDomain, d)
}

// WithRef devuelve una copia de refs con el documento t apuntando a id.
// t debe pertenecer al dominio de refs.
func WithRef(refs DocumentRefs, t entity.DocumentType, id int64) (DocumentRefs, error) {
	v := id
	switch r := refs.(type) {
	case SaleRefs:
		switch t {
		case entity.DocSalesOrder:
			r.SalesOrderID = &v
		case entity.DocDeliveryOrder:
			r.DeliveryOrderID = &v
		case entity.DocInvoice:
			r.InvoiceID = &v
		default:
			return nil, fmt.Errorf("%w: %s en venta", domain.ErrRefOutsideDomain, t)
		}
		return r, nil
	case PurchaseRefs:
		switch t {
		case entity.DocGoodsReceipt:
			r.GoodsReceiptID = &v
		case entity.DocPurchaseNote:
			r.PurchaseNoteID = &v
		default:
			return nil, fmt.Errorf("%w: %s en compra", domain.ErrRefOutsideDomain, t)
		}
		return r, nil
	}
	return nil, fmt.Errorf("%w: sin dominio", domain.ErrInvalidInput)
}
