package entity

import (
	"github.com/Jinzyy/project-eza-sub000/internal/domain"
)

// DocumentType identifica una de las cinco colecciones LOV de documentos.
type DocumentType int

const (
	DocSalesOrder DocumentType = iota
	DocDeliveryOrder
	DocInvoice
	DocGoodsReceipt
	DocPurchaseNote
)

// DocumentTypes lista los tipos en orden estable.
var DocumentTypes = []DocumentType{
	DocSalesOrder, DocDeliveryOrder, DocInvoice, DocGoodsReceipt, DocPurchaseNote,
}

var documentResources = map[DocumentType]string{
	DocSalesOrder:    "sales_order",
	DocDeliveryOrder: "delivery_order",
	DocInvoice:       "invoice",
	DocGoodsReceipt:  "penerimaan_barang",
	DocPurchaseNote:  "nota_pembelian",
}

// Resource devuelve el nombre del recurso REST (y de la tabla) del tipo.
func (t DocumentType) Resource() string {
	return documentResources[t]
}

func (t DocumentType) String() string {
	if r, ok := documentResources[t]; ok {
		return r
	}
	return "unknown"
}

// Valid indica si t es uno de los cinco tipos conocidos.
func (t DocumentType) Valid() bool {
	_, ok := documentResources[t]
	return ok
}

// ParseDocumentType convierte el nombre de recurso en DocumentType.
func ParseDocumentType(resource string) (DocumentType, error) {
	for t, r := range documentResources {
		if r == resource {
			return t, nil
		}
	}
	return 0, domain.ErrUnknownDocumentType
}

// DocumentSummary elemento de una colección LOV: número visible y contraparte.
type DocumentSummary struct {
	ID               int64
	Number           string
	CounterpartyName string
}

// DocumentFilter filtro de "registro activo" que aplica cada tipo de documento.
// Path es la ruta del flag en el recurso; Value el valor que debe tener.
type DocumentFilter struct {
	Path  string
	Value bool
}

// ActiveFilter devuelve el filtro de registros activos del tipo:
// factura y nota de compra excluyen las canceladas; la recepción usa su propio
// flag de borrado lógico; el resto usa el borrado lógico genérico.
func ActiveFilter(t DocumentType) DocumentFilter {
	switch t {
	case DocInvoice, DocPurchaseNote:
		return DocumentFilter{Path: "is_cancel", Value: false}
	case DocGoodsReceipt:
		return DocumentFilter{Path: "penerimaan_barang.is_deleted", Value: false}
	default:
		return DocumentFilter{Path: "is_deleted", Value: false}
	}
}
