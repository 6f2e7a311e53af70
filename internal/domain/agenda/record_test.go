package agenda_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jinzyy/project-eza-sub000/internal/domain"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/agenda"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
)

func id(v int64) *int64 { return &v }

func TestNewRecord_EmpiezaEnCreatedSinReferencias(t *testing.T) {
	r, err := agenda.NewRecord(agenda.DomainPurchase)
	require.NoError(t, err)

	assert.Equal(t, agenda.StatusCreated, r.Status)
	assert.Equal(t, agenda.DomainPurchase, r.Domain())
	assert.Empty(t, r.Refs.Referenced())
}

func TestNewRecord_DominioDesconocido(t *testing.T) {
	_, err := agenda.NewRecord("rental")
	assert.ErrorIs(t, err, domain.ErrUnknownDomain)
}

func TestSetStatus_SaltoNoMonotono(t *testing.T) {
	r, _ := agenda.NewRecord(agenda.DomainSale)

	require.NoError(t, r.SetStatus(agenda.StatusArrived))
	require.NoError(t, r.SetStatus(agenda.StatusInTransit))
	assert.Equal(t, agenda.StatusInTransit, r.Status)

	assert.ErrorIs(t, r.SetStatus(agenda.Status(4)), domain.ErrStatusOutOfRange)
	assert.ErrorIs(t, r.SetStatus(agenda.Status(-1)), domain.ErrStatusOutOfRange)
	assert.Equal(t, agenda.StatusInTransit, r.Status, "un estado inválido no modifica el registro")
}

func TestSwitchDomain_LimpiaReferenciasYReiniciaEstado(t *testing.T) {
	cases := []struct {
		name   string
		refs   agenda.DocumentRefs
		status agenda.Status
		target agenda.Domain
	}{
		{"venta a compra", agenda.SaleRefs{SalesOrderID: id(42), DeliveryOrderID: id(7), InvoiceID: id(9)}, agenda.StatusArrived, agenda.DomainPurchase},
		{"compra a venta", agenda.PurchaseRefs{GoodsReceiptID: id(3), PurchaseNoteID: id(5)}, agenda.StatusUnloading, agenda.DomainSale},
		{"mismo dominio", agenda.SaleRefs{InvoiceID: id(1)}, agenda.StatusInTransit, agenda.DomainSale},
		{"ya vacío", agenda.PurchaseRefs{}, agenda.StatusCreated, agenda.DomainPurchase},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &agenda.Record{VehicleNumber: "B 1234 XY", Status: tc.status, Refs: tc.refs}

			require.NoError(t, r.SwitchDomain(tc.target))

			assert.Equal(t, tc.target, r.Domain())
			assert.Empty(t, r.Refs.Referenced())
			assert.Equal(t, agenda.StatusCreated, r.Status)
			assert.Equal(t, agenda.FlatRefs{}, agenda.Flatten(r.Refs))
			assert.Equal(t, "B 1234 XY", r.VehicleNumber)
		})
	}
}

func TestRefsFromFlat_RechazaCamposFueraDelDominio(t *testing.T) {
	_, err := agenda.RefsFromFlat(agenda.DomainSale, agenda.FlatRefs{SalesOrderID: id(1), PurchaseNoteID: id(2)})
	assert.ErrorIs(t, err, domain.ErrRefOutsideDomain)

	_, err = agenda.RefsFromFlat(agenda.DomainPurchase, agenda.FlatRefs{InvoiceID: id(2)})
	assert.ErrorIs(t, err, domain.ErrRefOutsideDomain)

	refs, err := agenda.RefsFromFlat(agenda.DomainPurchase, agenda.FlatRefs{GoodsReceiptID: id(8)})
	require.NoError(t, err)
	assert.Equal(t, map[entity.DocumentType]int64{entity.DocGoodsReceipt: 8}, refs.Referenced())
}

func TestFlatten_IdaYVuelta(t *testing.T) {
	refs := agenda.SaleRefs{SalesOrderID: id(42), InvoiceID: id(11)}
	back, err := agenda.RefsFromFlat(agenda.DomainSale, agenda.Flatten(refs))
	require.NoError(t, err)
	assert.Equal(t, refs, back)
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, []string{"Created", "In Transit", "Unloading", "Arrived"}, agenda.StatusLabels())

	s, err := agenda.ParseStatusLabel("Unloading")
	require.NoError(t, err)
	assert.Equal(t, agenda.StatusUnloading, s)

	_, err = agenda.ParseStatusLabel("Lost")
	assert.ErrorIs(t, err, domain.ErrStatusOutOfRange)
}

func TestValidate(t *testing.T) {
	r, _ := agenda.NewRecord(agenda.DomainSale)
	assert.ErrorIs(t, r.Validate(), domain.ErrInvalidInput)

	r.VehicleNumber = "L 9 AB"
	assert.NoError(t, r.Validate())

	assert.ErrorIs(t, (&agenda.Record{VehicleNumber: "x"}).Validate(), domain.ErrInvalidInput)
}

func TestWithRef(t *testing.T) {
	refs, err := agenda.WithRef(agenda.SaleRefs{}, entity.DocDeliveryOrder, 12)
	require.NoError(t, err)
	assert.Equal(t, map[entity.DocumentType]int64{entity.DocDeliveryOrder: 12}, refs.Referenced())

	_, err = agenda.WithRef(agenda.SaleRefs{}, entity.DocGoodsReceipt, 1)
	assert.ErrorIs(t, err, domain.ErrRefOutsideDomain)

	original := agenda.PurchaseRefs{}
	_, err = agenda.WithRef(original, entity.DocPurchaseNote, 4)
	require.NoError(t, err)
	assert.Nil(t, original.PurchaseNoteID, "WithRef no modifica la variante original")
}
