package receiving_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jinzyy/project-eza-sub000/internal/application/dto"
	"github.com/Jinzyy/project-eza-sub000/internal/application/receiving"
	"github.com/Jinzyy/project-eza-sub000/internal/domain"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type memReceipts struct {
	mu       sync.Mutex
	receipts map[int64]entity.GoodsReceipt
	seq      map[string]int
	nextID   int64
}

func newMemReceipts() *memReceipts {
	return &memReceipts{receipts: make(map[int64]entity.GoodsReceipt), seq: make(map[string]int)}
}

func (m *memReceipts) Create(_ context.Context, r *entity.GoodsReceipt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	r.ID = m.nextID
	m.receipts[r.ID] = *r
	return nil
}

func (m *memReceipts) GetByID(_ context.Context, id int64) (*entity.GoodsReceipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.receipts[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (m *memReceipts) NextSequence(_ context.Context, day time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := day.Format("20060102")
	m.seq[key]++
	return m.seq[key], nil
}

func (m *memReceipts) MarkDone(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.receipts[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.Done = true
	m.receipts[id] = r
	return nil
}

// txRunner ejecuta fn sobre el repositorio en memoria; si fail != nil, descarta lo escrito.
type txRunner struct {
	repo *memReceipts
	fail error
}

func (t *txRunner) RunReceiving(ctx context.Context, fn func(repository.GoodsReceiptRepository) error) error {
	scratch := newMemReceipts()
	scratch.nextID = t.repo.nextID
	for k, v := range t.repo.seq {
		scratch.seq[k] = v
	}
	if err := fn(scratch); err != nil {
		return err
	}
	if t.fail != nil {
		return t.fail
	}
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	for id, r := range scratch.receipts {
		t.repo.receipts[id] = r
	}
	t.repo.seq = scratch.seq
	t.repo.nextID = scratch.nextID
	return nil
}

type refs struct{}

func (refs) ListPallets(context.Context) ([]entity.Pallet, error) {
	return []entity.Pallet{
		{ID: 1, Code: "PL-01", Tare: decimal.RequireFromString("2.5")},
		{ID: 2, Code: "PL-02", Tare: decimal.NewFromInt(3)},
	}, nil
}
func (refs) ListFreezers(context.Context) ([]entity.Freezer, error) { return nil, nil }
func (refs) ListVessels(context.Context) ([]entity.Vessel, error) { return nil, nil }
func (refs) ListWarehouses(context.Context) ([]entity.Warehouse, error) {
	return nil, nil
}
func (refs) ListFish(context.Context) ([]entity.Fish, error) {
	return []entity.Fish{{ID: 10, Name: "Tuna"}, {ID: 11, Name: "Salmon"}}, nil
}
func (refs) ListCustomers(context.Context) ([]entity.Customer, error) { return nil, nil }
func (refs) GetVessel(_ context.Context, id int64) (*entity.Vessel, error) {
	if id == 5 {
		return &entity.Vessel{ID: 5, Name: "KM Sinar Laut"}, nil
	}
	return nil, nil
}
func (refs) GetWarehouse(_ context.Context, id int64) (*entity.Warehouse, error) {
	if id == 7 {
		return &entity.Warehouse{ID: 7, Name: "Gudang Muara"}, nil
	}
	return nil, nil
}

var (
	_ repository.GoodsReceiptRepository = (*memReceipts)(nil)
	_ repository.ReferenceRepository    = refs{}
	_ receiving.TxRunner                = (*txRunner)(nil)
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newUseCase() (*receiving.ReceivingUseCase, *memReceipts, *txRunner) {
	repo := newMemReceipts()
	tx := &txRunner{repo: repo}
	return receiving.NewReceivingUseCase(tx, repo, refs{}, zerolog.Nop()), repo, tx
}

var day = time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

func palletRequest() dto.SubmitUnloadingRequest {
	return dto.SubmitUnloadingRequest{
		Mode:            dto.UnloadingModePallet,
		Date:            day,
		VesselID:        5,
		WarehouseID:     7,
		TransportMethod: entity.TransportBoat,
		Pallets: []dto.PalletLineRequest{
			{FishID: 10, PalletID: 1, FreezerID: 3, Gross: "102.5"},
			{FishID: 11, PalletID: 2, FreezerID: 3, Gross: "33"},
			{FishID: 10, PalletID: 99, FreezerID: 4, Gross: "50"},
		},
		Shrinkage: map[int64]string{10: "5", 11: ""},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "PB-20240309-0007", receiving.FormatNumber(day, 7))
}

func TestSubmitUnloading_ModoPalet(t *testing.T) {
	uc, repo, _ := newUseCase()

	resp, err := uc.SubmitUnloading(context.Background(), palletRequest())
	require.NoError(t, err)

	assert.Equal(t, "PB-20240309-0001", resp.Number)
	assert.Equal(t, []int64{99}, resp.UnknownPallets)

	tuna := resp.Payload.Items[10]
	assert.True(t, tuna[0].Equal(dec("150")), "100 + 50 con tara 0 para el palet desconocido")
	assert.True(t, tuna[1].Equal(dec("5")))
	salmon := resp.Payload.Items[11]
	assert.True(t, salmon[0].Equal(dec("30")))
	assert.True(t, salmon[1].IsZero())

	require.Len(t, resp.Payload.PalletAssignments[10], 2)
	assert.Equal(t, int64(99), resp.Payload.PalletAssignments[10][1].PalletID)
	assert.True(t, resp.Payload.PalletAssignments[10][1].Net.Equal(dec("50")))

	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	require.Len(t, stored.Lines, 2)
	assert.Equal(t, "Tuna", stored.Lines[0].FishName)
	assert.Len(t, stored.PalletLines, 3)
}

func TestSubmitUnloading_PayloadJSON(t *testing.T) {
	uc, _, _ := newUseCase()
	req := palletRequest()
	req.Pallets = req.Pallets[:1]
	req.Shrinkage = nil

	resp, err := uc.SubmitUnloading(context.Background(), req)
	require.NoError(t, err)

	raw, err := json.Marshal(resp.Payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"vesselId": 5,
		"warehouseId": 7,
		"transportMethod": "boat",
		"isGRP": false,
		"items": {"10": ["100", "0"]},
		"palletAssignments": {"10": [[1, "100", 3]]}
	}`, string(raw))
}

func TestSubmitUnloading_ModoBlong(t *testing.T) {
	uc, _, _ := newUseCase()
	resp, err := uc.SubmitUnloading(context.Background(), dto.SubmitUnloadingRequest{
		Mode:            dto.UnloadingModeBlong,
		Date:            day,
		VesselID:        5,
		WarehouseID:     7,
		TransportMethod: entity.TransportTruck,
		Blong: []dto.BlongLineRequest{
			{FishID: 11, Gross: "12,5"},
			{FishID: 11, Gross: "7.5"},
		},
		Shrinkage: map[int64]string{11: "1.25"},
	})
	require.NoError(t, err)
	assert.True(t, resp.Payload.Items[11][0].Equal(dec("20")))
	assert.True(t, resp.Payload.Items[11][1].Equal(dec("1.25")))
	assert.Empty(t, resp.Payload.PalletAssignments)
	assert.Empty(t, resp.UnknownPallets)
}

func TestSubmitUnloading_Rechazos(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.SubmitUnloadingRequest)
	}{
		{"línea sin bruto", func(r *dto.SubmitUnloadingRequest) { r.Pallets[1].Gross = "" }},
		{"bruto mal formado", func(r *dto.SubmitUnloadingRequest) { r.Pallets[0].Gross = "abc" }},
		{"pescado desconocido", func(r *dto.SubmitUnloadingRequest) { r.Pallets[0].FishID = 77 }},
		{"sin kapal", func(r *dto.SubmitUnloadingRequest) { r.VesselID = 0 }},
		{"transporte desconocido", func(r *dto.SubmitUnloadingRequest) { r.TransportMethod = "plane" }},
		{"modo desconocido", func(r *dto.SubmitUnloadingRequest) { r.Mode = "crate" }},
		{"sin líneas", func(r *dto.SubmitUnloadingRequest) { r.Pallets = nil; r.Shrinkage = nil }},
		{"susut mal formado", func(r *dto.SubmitUnloadingRequest) { r.Shrinkage[10] = "x" }},
		{"susut de pescado ausente", func(r *dto.SubmitUnloadingRequest) { r.Shrinkage[12] = "1" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, repo, _ := newUseCase()
			req := palletRequest()
			tc.mutate(&req)

			_, err := uc.SubmitUnloading(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, repo.receipts)
		})
	}
}

func TestSubmitUnloading_FalloDeTransaccionNoPersiste(t *testing.T) {
	uc, repo, tx := newUseCase()
	tx.fail = errors.New("commit fallido")

	_, err := uc.SubmitUnloading(context.Background(), palletRequest())
	require.Error(t, err)
	assert.Empty(t, repo.receipts)

	tx.fail = nil
	resp, err := uc.SubmitUnloading(context.Background(), palletRequest())
	require.NoError(t, err)
	assert.Equal(t, "PB-20240309-0001", resp.Number, "el correlativo no avanza con un rollback")
}

func TestSubmitUnloading_CorrelativoPorDia(t *testing.T) {
	uc, _, _ := newUseCase()
	ctx := context.Background()

	first, err := uc.SubmitUnloading(ctx, palletRequest())
	require.NoError(t, err)
	second, err := uc.SubmitUnloading(ctx, palletRequest())
	require.NoError(t, err)
	next := palletRequest()
	next.Date = day.AddDate(0, 0, 1)
	third, err := uc.SubmitUnloading(ctx, next)
	require.NoError(t, err)

	assert.Equal(t, "PB-20240309-0001", first.Number)
	assert.Equal(t, "PB-20240309-0002", second.Number)
	assert.Equal(t, "PB-20240310-0001", third.Number)
}

func TestPreviewNetto(t *testing.T) {
	uc, _, _ := newUseCase()

	lines, err := uc.PreviewNetto(context.Background(), []dto.PalletLineRequest{
		{FishID: 10, PalletID: 1, Gross: "12.5"},
		{FishID: 10, PalletID: 2, Gross: ""},
		{FishID: 10, PalletID: 8, Gross: "4"},
		{FishID: 10, PalletID: 2, Gross: "1"},
	})
	require.NoError(t, err)
	require.Len(t, lines, 4)

	assert.True(t, lines[0].Net.Valid)
	assert.True(t, lines[0].Net.Decimal.Equal(dec("10")))
	assert.False(t, lines[1].Net.Valid, "sin bruto el netto queda sin valor, no en cero")
	assert.True(t, lines[2].UnknownPallet)
	assert.True(t, lines[2].Net.Decimal.Equal(dec("4")))
	assert.True(t, lines[3].Net.Decimal.Equal(dec("-2")), "un netto negativo no se recorta")
}

func TestMarkDone(t *testing.T) {
	uc, _, _ := newUseCase()
	ctx := context.Background()
	resp, err := uc.SubmitUnloading(ctx, palletRequest())
	require.NoError(t, err)

	require.NoError(t, uc.MarkDone(ctx, resp.ID))
	got, err := uc.GetReceipt(ctx, resp.ID)
	require.NoError(t, err)
	assert.True(t, got.Done)

	assert.ErrorIs(t, uc.MarkDone(ctx, resp.ID), domain.ErrConflict)
	assert.ErrorIs(t, uc.MarkDone(ctx, 404), domain.ErrNotFound)
}

func TestPrintPayloads(t *testing.T) {
	uc, repo, _ := newUseCase()
	ctx := context.Background()
	receipt := &entity.GoodsReceipt{
		Number:          "PB-20240309-0001",
		Date:            day,
		VesselID:        5,
		WarehouseID:     7,
		TransportMethod: entity.TransportBoat,
		Lines: []entity.FishReceiptLine{
			{FishName: "Tuna", Gross: decimal.NewNullDecimal(dec("100")), Shrinkage: decimal.NewNullDecimal(dec("5"))},
			{FishName: "Tuna", Gross: decimal.NewNullDecimal(dec("50")), Shrinkage: decimal.NewNullDecimal(dec("0"))},
			{FishName: "Salmon", Gross: decimal.NewNullDecimal(dec("30")), Shrinkage: decimal.NewNullDecimal(dec("2"))},
		},
	}
	require.NoError(t, repo.Create(ctx, receipt))

	receiptPrint, err := uc.ReceiptPrintPayload(ctx, receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, "KM Sinar Laut", receiptPrint.VesselName)
	assert.Equal(t, "Gudang Muara", receiptPrint.WarehouseName)
	assert.True(t, receiptPrint.TotalWeight.Equal(dec("173")))
	require.Len(t, receiptPrint.GroupedFish, 2)
	assert.Equal(t, "Tuna", receiptPrint.GroupedFish[0].FishName)
	assert.True(t, receiptPrint.GroupedFish[0].TotalNet.Equal(dec("145")))
	assert.True(t, receiptPrint.GroupedFish[1].TotalNet.Equal(dec("28")))

	ledger, err := uc.StockLedgerPrintPayload(ctx, receipt.ID)
	require.NoError(t, err)
	assert.True(t, ledger.TotalStock.Equal(dec("173")))
	assert.True(t, ledger.TotalShrinkageA.Equal(dec("7")))
	assert.True(t, ledger.TotalShrinkageA.Equal(ledger.TotalShrinkageB))
	require.Len(t, ledger.DetailStock, 2)
	assert.True(t, ledger.DetailStock[0].ShrinkageA.Equal(dec("5")))

	_, err = uc.ReceiptPrintPayload(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPrintPayloads_ReferenciasFaltantes(t *testing.T) {
	uc, repo, _ := newUseCase()
	receipt := &entity.GoodsReceipt{Number: "PB-1", VesselID: 1, WarehouseID: 1}
	require.NoError(t, repo.Create(context.Background(), receipt))

	receiptPrint, err := uc.ReceiptPrintPayload(context.Background(), receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, "-", receiptPrint.VesselName)
	assert.Equal(t, "-", receiptPrint.WarehouseName)
	assert.True(t, receiptPrint.TotalWeight.IsZero())
	assert.NotNil(t, receiptPrint.GroupedFish)
}
