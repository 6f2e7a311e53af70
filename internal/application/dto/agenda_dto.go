package dto

import "time"

// AgendaRequest payload completo de create/update de live tracking.
// Status viaja como etiqueta ("Created", "In Transit", "Unloading", "Arrived").
// Los ids de documento fuera del dominio deben ir en null.
type AgendaRequest struct {
	Domain          string    `json:"domain"`
	Timestamp       time.Time `json:"timestamp"`
	VehicleNumber   string    `json:"vehicle_number"`
	DriverName      string    `json:"driver_name"`
	CustomerID      *int64    `json:"customer_id"`
	Note            string    `json:"note"`
	Status          string    `json:"status"`
	SalesOrderID    *int64    `json:"sales_order_id"`
	DeliveryOrderID *int64    `json:"delivery_order_id"`
	InvoiceID       *int64    `json:"invoice_id"`
	GoodsReceiptID  *int64    `json:"goods_receipt_id"`
	PurchaseNoteID  *int64    `json:"purchase_note_id"`
}

// AgendaResponse registro de live tracking.
type AgendaResponse struct {
	ID              int64     `json:"id"`
	Domain          string    `json:"domain"`
	Timestamp       time.Time `json:"timestamp"`
	VehicleNumber   string    `json:"vehicle_number"`
	DriverName      string    `json:"driver_name"`
	CustomerID      *int64    `json:"customer_id"`
	Note            string    `json:"note"`
	Status          string    `json:"status"`
	StatusIndex     int       `json:"status_index"`
	SalesOrderID    *int64    `json:"sales_order_id"`
	DeliveryOrderID *int64    `json:"delivery_order_id"`
	InvoiceID       *int64    `json:"invoice_id"`
	GoodsReceiptID  *int64    `json:"goods_receipt_id"`
	PurchaseNoteID  *int64    `json:"purchase_note_id"`
}

// AgendaListResponse lista paginada de agenda.
type AgendaListResponse struct {
	Items []AgendaResponse `json:"items"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
	Total int              `json:"total"`
}

// EditFormResponse estado del formulario de edición.
// Los campos *_number quedan vacíos mientras la conciliación está pendiente.
type EditFormResponse struct {
	AgendaResponse
	SessionID           string `json:"session_id"`
	State               string `json:"state"` // pending | resolved | dropped
	SalesOrderNumber    string `json:"sales_order_number"`
	DeliveryOrderNumber string `json:"delivery_order_number"`
	InvoiceNumber       string `json:"invoice_number"`
	GoodsReceiptNumber  string `json:"goods_receipt_number"`
	PurchaseNoteNumber  string `json:"purchase_note_number"`
}

// SwitchDomainRequest body de PUT /live_tracking/edit/:session/domain.
type SwitchDomainRequest struct {
	Domain string `json:"domain"`
}

// SelectDocumentRequest body de PUT /live_tracking/edit/:session/document.
type SelectDocumentRequest struct {
	Type string `json:"type"` // sales_order, delivery_order, invoice, penerimaan_barang, nota_pembelian
	ID   int64  `json:"id"`
}

// EditFieldsRequest campos libres editables en la sesión; nil = sin cambio.
type EditFieldsRequest struct {
	Timestamp     *time.Time `json:"timestamp"`
	VehicleNumber *string    `json:"vehicle_number"`
	DriverName    *string    `json:"driver_name"`
	CustomerID    *int64     `json:"customer_id"`
	Note          *string    `json:"note"`
	Status        *string    `json:"status"`
}
