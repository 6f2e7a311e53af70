package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Jinzyy/project-eza-sub000/internal/domain"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// documentTable describe cómo leer una colección LOV: tabla, join de la contraparte
// y columna del filtro de activos.
type documentTable struct {
	from         string
	counterparty string
	filterColumn string
}

var documentTables = map[entity.DocumentType]documentTable{
	entity.DocSalesOrder: {
		from:         "sales_order LEFT JOIN customer ON customer.id = sales_order.customer_id",
		counterparty: "customer.name",
		filterColumn: "sales_order.is_deleted",
	},
	entity.DocDeliveryOrder: {
		from:         "delivery_order LEFT JOIN customer ON customer.id = delivery_order.customer_id",
		counterparty: "customer.name",
		filterColumn: "delivery_order.is_deleted",
	},
	entity.DocInvoice: {
		from:         "invoice LEFT JOIN customer ON customer.id = invoice.customer_id",
		counterparty: "customer.name",
		filterColumn: "invoice.is_cancel",
	},
	entity.DocGoodsReceipt: {
		from:         "penerimaan_barang LEFT JOIN kapal ON kapal.id = penerimaan_barang.kapal_id",
		counterparty: "kapal.name",
		filterColumn: "penerimaan_barang.is_deleted",
	},
	entity.DocPurchaseNote: {
		from:         "nota_pembelian",
		counterparty: "nota_pembelian.supplier_name",
		filterColumn: "nota_pembelian.is_cancel",
	},
}

// filterColumnFor resuelve la ruta del filtro a una columna calificada. Solo se acepta
// la columna declarada para el tipo; el SQL nunca recibe texto arbitrario.
func filterColumnFor(t entity.DocumentType, f entity.DocumentFilter) (string, error) {
	table, ok := documentTables[t]
	if !ok {
		return "", domain.ErrUnknownDocumentType
	}
	qualified := f.Path
	if qualified == "" {
		return table.filterColumn, nil
	}
	if qualified != table.filterColumn {
		qualified = t.Resource() + "." + f.Path
	}
	if qualified != table.filterColumn {
		return "", fmt.Errorf("%w: filtro %q no admitido para %s", domain.ErrInvalidInput, f.Path, t)
	}
	return qualified, nil
}

// DocumentRepo colecciones LOV de documentos sobre PostgreSQL.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador.
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// ListDocuments devuelve una página de la colección q.Type (más recientes primero) y el total filtrado.
func (r *DocumentRepo) ListDocuments(ctx context.Context, q repository.DocumentQuery) (*repository.DocumentPage, error) {
	table, ok := documentTables[q.Type]
	if !ok {
		return nil, domain.ErrUnknownDocumentType
	}
	column, err := filterColumnFor(q.Type, q.Filter)
	if err != nil {
		return nil, err
	}
	size := q.PageSize
	if size <= 0 {
		size = 10
	}
	resource := q.Type.Resource()

	var total int
	countSQL := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, table.from, column)
	if err := r.q.QueryRow(ctx, countSQL, q.Filter.Value).Scan(&total); err != nil {
		return nil, fmt.Errorf("count %s: %w", resource, err)
	}

	listSQL := fmt.Sprintf(`
		SELECT %[1]s.id, %[1]s.number, COALESCE(%[2]s, '')
		FROM %[3]s
		WHERE %[4]s = $1
		ORDER BY %[1]s.id DESC
		LIMIT $2 OFFSET $3`, resource, table.counterparty, table.from, column)
	rows, err := r.q.Query(ctx, listSQL, q.Filter.Value, size, pageOffset(q.Page, size))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", resource, err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.DocumentSummary, error) {
		var d entity.DocumentSummary
		err := row.Scan(&d.ID, &d.Number, &d.CounterpartyName)
		return d, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", resource, err)
	}
	return &repository.DocumentPage{Items: items, Total: total}, nil
}
