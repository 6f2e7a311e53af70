// Package receiving orquesta la descarga de pescado: netto por palet, susut por
// pescado, numeración de la recepción y payloads de impresión.
package receiving

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Jinzyy/project-eza-sub000/internal/application/dto"
	"github.com/Jinzyy/project-eza-sub000/internal/domain"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
	domreceiving "github.com/Jinzyy/project-eza-sub000/internal/domain/receiving"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/repository"
)

// NumberPrefix prefijo de los números de recepción (PB-YYYYMMDD-NNNN).
const NumberPrefix = "PB"

// ReceivingUseCase casos de uso de penerimaan barang.
type ReceivingUseCase struct {
	txRunner TxRunner
	receipts repository.GoodsReceiptRepository
	refs     repository.ReferenceRepository
	log      zerolog.Logger
	now      func() time.Time
}

// NewReceivingUseCase construye el caso de uso.
func NewReceivingUseCase(
	txRunner TxRunner,
	receipts repository.GoodsReceiptRepository,
	refs repository.ReferenceRepository,
	log zerolog.Logger,
) *ReceivingUseCase {
	return &ReceivingUseCase{
		txRunner: txRunner,
		receipts: receipts,
		refs:     refs,
		log:      log,
		now:      time.Now,
	}
}

// FormatNumber arma el número de recepción del día con su correlativo.
func FormatNumber(day time.Time, seq int) string {
	return fmt.Sprintf("%s-%s-%04d", NumberPrefix, day.Format("20060102"), seq)
}

// fishTotals acumulado por pescado en orden de primera aparición.
type fishTotals struct {
	order       []int64
	net         map[int64]decimal.Decimal
	assignments map[int64][]dto.PalletAssignment
}

func newFishTotals() *fishTotals {
	return &fishTotals{
		net:         make(map[int64]decimal.Decimal),
		assignments: make(map[int64][]dto.PalletAssignment),
	}
}

func (f *fishTotals) add(fishID int64, net decimal.Decimal) {
	cur, ok := f.net[fishID]
	if !ok {
		f.order = append(f.order, fishID)
		cur = decimal.Zero
	}
	f.net[fishID] = cur.Add(net)
}

// SubmitUnloading valida la descarga, calcula netto y susut por pescado y persiste la
// recepción con su número en una sola transacción. Una línea sin netto se rechaza.
func (uc *ReceivingUseCase) SubmitUnloading(ctx context.Context, in dto.SubmitUnloadingRequest) (*dto.SubmitUnloadingResponse, error) {
	if in.VesselID <= 0 || in.WarehouseID <= 0 {
		return nil, fmt.Errorf("%w: kapal y gudang requeridos", domain.ErrInvalidInput)
	}
	switch in.TransportMethod {
	case entity.TransportTruck, entity.TransportBoat:
	default:
		return nil, fmt.Errorf("%w: método de transporte %q", domain.ErrInvalidInput, in.TransportMethod)
	}

	fishList, err := uc.refs.ListFish(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar ikan: %w", err)
	}
	fishNames := make(map[int64]string, len(fishList))
	for _, f := range fishList {
		fishNames[f.ID] = f.Name
	}

	var (
		totals  *fishTotals
		unknown []int64
	)
	switch in.Mode {
	case dto.UnloadingModePallet:
		totals, unknown, err = uc.palletTotals(ctx, in.Pallets, fishNames)
	case dto.UnloadingModeBlong:
		totals, err = blongTotals(in.Blong, fishNames)
	default:
		return nil, fmt.Errorf("%w: modo de descarga %q", domain.ErrInvalidInput, in.Mode)
	}
	if err != nil {
		return nil, err
	}
	if len(totals.order) == 0 {
		return nil, fmt.Errorf("%w: descarga sin líneas", domain.ErrInvalidInput)
	}

	shrinkage, err := parseShrinkage(in.Shrinkage, totals)
	if err != nil {
		return nil, err
	}

	payload := dto.SubmissionPayload{
		VesselID:          in.VesselID,
		WarehouseID:       in.WarehouseID,
		TransportMethod:   in.TransportMethod,
		IsGRP:             in.IsGRP,
		Items:             make(map[int64][2]decimal.Decimal, len(totals.order)),
		PalletAssignments: make(map[int64][]dto.PalletAssignment, len(totals.assignments)),
	}
	date := in.Date
	if date.IsZero() {
		date = uc.now()
	}
	receipt := &entity.GoodsReceipt{
		Date:            date,
		WarehouseID:     in.WarehouseID,
		VesselID:        in.VesselID,
		TransportMethod: in.TransportMethod,
		IsGRP:           in.IsGRP,
	}
	for _, fishID := range totals.order {
		net, shrink := totals.net[fishID], shrinkage[fishID]
		payload.Items[fishID] = [2]decimal.Decimal{net, shrink}
		receipt.Lines = append(receipt.Lines, entity.FishReceiptLine{
			FishID:    fishID,
			FishName:  fishNames[fishID],
			Gross:     decimal.NewNullDecimal(net),
			Shrinkage: decimal.NewNullDecimal(shrink),
		})
		if assigned := totals.assignments[fishID]; len(assigned) > 0 {
			payload.PalletAssignments[fishID] = assigned
			for _, a := range assigned {
				receipt.PalletLines = append(receipt.PalletLines, entity.ReceiptPallet{
					FishID:    fishID,
					PalletID:  a.PalletID,
					Net:       a.Net,
					FreezerID: a.FreezerID,
				})
			}
		}
	}

	err = uc.txRunner.RunReceiving(ctx, func(receipts repository.GoodsReceiptRepository) error {
		seq, err := receipts.NextSequence(ctx, date)
		if err != nil {
			return fmt.Errorf("correlativo de recepción: %w", err)
		}
		receipt.Number = FormatNumber(date, seq)
		return receipts.Create(ctx, receipt)
	})
	if err != nil {
		return nil, fmt.Errorf("registrar recepción: %w", err)
	}

	if len(unknown) > 0 {
		uc.log.Warn().
			Int64("receipt_id", receipt.ID).
			Ints64("pallet_ids", unknown).
			Msg("palets sin tara conocida, se usó tara 0")
	}
	uc.log.Info().
		Int64("receipt_id", receipt.ID).
		Str("number", receipt.Number).
		Str("mode", in.Mode).
		Msg("recepción registrada")

	return &dto.SubmitUnloadingResponse{
		ID:             receipt.ID,
		Number:         receipt.Number,
		Payload:        payload,
		UnknownPallets: unknown,
	}, nil
}

func (uc *ReceivingUseCase) tareTable(ctx context.Context) (domreceiving.TareTable, error) {
	pallets, err := uc.refs.ListPallets(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar palet: %w", err)
	}
	return domreceiving.NewTareTable(pallets), nil
}

func (uc *ReceivingUseCase) palletTotals(ctx context.Context, lines []dto.PalletLineRequest, fishNames map[int64]string) (*fishTotals, []int64, error) {
	tares, err := uc.tareTable(ctx)
	if err != nil {
		return nil, nil, err
	}
	totals := newFishTotals()
	seen := make(map[int64]bool)
	var unknown []int64
	for i, req := range lines {
		if _, ok := fishNames[req.FishID]; !ok {
			return nil, nil, fmt.Errorf("%w: línea %d, ikan %d desconocido", domain.ErrInvalidInput, i+1, req.FishID)
		}
		line := domreceiving.PalletLine{FishID: req.FishID, FreezerID: req.FreezerID}
		if !line.SetPallet(req.PalletID, tares) && !seen[req.PalletID] {
			seen[req.PalletID] = true
			unknown = append(unknown, req.PalletID)
		}
		line.SetGross(req.Gross)
		if !line.Net.Valid {
			return nil, nil, fmt.Errorf("%w: línea %d sin netto", domain.ErrInvalidInput, i+1)
		}
		totals.add(req.FishID, line.Net.Decimal)
		totals.assignments[req.FishID] = append(totals.assignments[req.FishID], dto.PalletAssignment{
			PalletID:  req.PalletID,
			Net:       line.Net.Decimal,
			FreezerID: req.FreezerID,
		})
	}
	sort.Slice(unknown, func(a, b int) bool { return unknown[a] < unknown[b] })
	return totals, unknown, nil
}

func blongTotals(lines []dto.BlongLineRequest, fishNames map[int64]string) (*fishTotals, error) {
	totals := newFishTotals()
	for i, req := range lines {
		if _, ok := fishNames[req.FishID]; !ok {
			return nil, fmt.Errorf("%w: línea %d, ikan %d desconocido", domain.ErrInvalidInput, i+1, req.FishID)
		}
		gross := domreceiving.ParseWeight(req.Gross)
		if !gross.Valid {
			return nil, fmt.Errorf("%w: línea %d sin peso", domain.ErrInvalidInput, i+1)
		}
		totals.add(req.FishID, gross.Decimal)
	}
	return totals, nil
}

// parseShrinkage susut por pescado; vacío cuenta 0, texto mal formado o pescado
// ausente de la descarga es inválido.
func parseShrinkage(raw map[int64]string, totals *fishTotals) (map[int64]decimal.Decimal, error) {
	out := make(map[int64]decimal.Decimal, len(totals.order))
	for _, fishID := range totals.order {
		out[fishID] = decimal.Zero
	}
	for fishID, text := range raw {
		if _, ok := out[fishID]; !ok {
			return nil, fmt.Errorf("%w: susut para ikan %d fuera de la descarga", domain.ErrInvalidInput, fishID)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		v := domreceiving.ParseWeight(text)
		if !v.Valid {
			return nil, fmt.Errorf("%w: susut de ikan %d: %q", domain.ErrInvalidInput, fishID, text)
		}
		out[fishID] = v.Decimal
	}
	return out, nil
}

// PreviewNetto recalcula tara y netto de las líneas del formulario sin persistir.
func (uc *ReceivingUseCase) PreviewNetto(ctx context.Context, lines []dto.PalletLineRequest) ([]dto.NettoPreviewLine, error) {
	tares, err := uc.tareTable(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NettoPreviewLine, 0, len(lines))
	for _, req := range lines {
		line := domreceiving.PalletLine{FishID: req.FishID, FreezerID: req.FreezerID}
		known := line.SetPallet(req.PalletID, tares)
		line.SetGross(req.Gross)
		out = append(out, dto.NettoPreviewLine{
			PalletLineRequest: req,
			Tare:              line.Tare,
			Net:               line.Net,
			UnknownPallet:     !known,
		})
	}
	return out, nil
}

// GetReceipt obtiene la recepción completa.
func (uc *ReceivingUseCase) GetReceipt(ctx context.Context, id int64) (*dto.GoodsReceiptResponse, error) {
	receipt, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toReceiptResponse(receipt), nil
}

// MarkDone cierra la recepción; una recepción ya cerrada es ErrConflict.
func (uc *ReceivingUseCase) MarkDone(ctx context.Context, id int64) error {
	receipt, err := uc.get(ctx, id)
	if err != nil {
		return err
	}
	if receipt.Done {
		return fmt.Errorf("%w: recepción %s ya cerrada", domain.ErrConflict, receipt.Number)
	}
	if err := uc.receipts.MarkDone(ctx, id); err != nil {
		return fmt.Errorf("cerrar recepción: %w", err)
	}
	uc.log.Info().Int64("receipt_id", id).Msg("recepción cerrada")
	return nil
}

// ReceiptPrintPayload contrato de impresión del resumen de recepción.
func (uc *ReceivingUseCase) ReceiptPrintPayload(ctx context.Context, id int64) (*dto.ReceiptPrintPayload, error) {
	receipt, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	header, err := uc.printHeader(ctx, receipt)
	if err != nil {
		return nil, err
	}
	rows := domreceiving.AggregateReceipt(receipt.Lines)
	grouped := make([]dto.FishSummaryRow, 0, len(rows))
	for _, r := range rows {
		grouped = append(grouped, dto.FishSummaryRow{FishName: r.FishName, TotalNet: r.TotalNet})
	}
	return &dto.ReceiptPrintPayload{
		PrintHeader: header,
		TotalWeight: domreceiving.TotalWeight(receipt.Lines),
		GroupedFish: grouped,
	}, nil
}

// StockLedgerPrintPayload contrato de impresión del libro de stock.
func (uc *ReceivingUseCase) StockLedgerPrintPayload(ctx context.Context, id int64) (*dto.StockLedgerPrintPayload, error) {
	receipt, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	header, err := uc.printHeader(ctx, receipt)
	if err != nil {
		return nil, err
	}
	rows := domreceiving.AggregateStockLedger(receipt.Lines)
	totals := domreceiving.SumStockLedger(rows)
	detail := make([]dto.StockSummaryRow, 0, len(rows))
	for _, r := range rows {
		detail = append(detail, dto.StockSummaryRow{
			FishName:   r.FishName,
			TotalStock: r.TotalStock,
			ShrinkageA: r.ShrinkageA,
			ShrinkageB: r.ShrinkageB,
		})
	}
	return &dto.StockLedgerPrintPayload{
		PrintHeader:     header,
		TotalStock:      totals.TotalStock,
		TotalShrinkageA: totals.TotalShrinkageA,
		TotalShrinkageB: totals.TotalShrinkageB,
		DetailStock:     detail,
	}, nil
}

func (uc *ReceivingUseCase) get(ctx context.Context, id int64) (*entity.GoodsReceipt, error) {
	receipt, err := uc.receipts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener recepción: %w", err)
	}
	if receipt == nil {
		return nil, domain.ErrNotFound
	}
	return receipt, nil
}

func (uc *ReceivingUseCase) printHeader(ctx context.Context, r *entity.GoodsReceipt) (dto.PrintHeader, error) {
	header := dto.PrintHeader{
		Number:          r.Number,
		VesselName:      "-",
		Date:            r.Date,
		WarehouseName:   "-",
		TransportMethod: r.TransportMethod,
	}
	vessel, err := uc.refs.GetVessel(ctx, r.VesselID)
	if err != nil {
		return header, fmt.Errorf("obtener kapal: %w", err)
	}
	if vessel != nil {
		header.VesselName = vessel.Name
	}
	wh, err := uc.refs.GetWarehouse(ctx, r.WarehouseID)
	if err != nil {
		return header, fmt.Errorf("obtener gudang: %w", err)
	}
	if wh != nil {
		header.WarehouseName = wh.Name
	}
	return header, nil
}

func toReceiptResponse(r *entity.GoodsReceipt) *dto.GoodsReceiptResponse {
	lines := make([]dto.FishLineResponse, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, dto.FishLineResponse{
			FishID:    l.FishID,
			FishName:  l.FishName,
			Gross:     l.Gross,
			Shrinkage: l.Shrinkage,
			Net:       domreceiving.LineNet(l),
		})
	}
	pallets := make(map[int64][]dto.PalletAssignment)
	for _, p := range r.PalletLines {
		pallets[p.FishID] = append(pallets[p.FishID], dto.PalletAssignment{
			PalletID:  p.PalletID,
			Net:       p.Net,
			FreezerID: p.FreezerID,
		})
	}
	return &dto.GoodsReceiptResponse{
		ID:              r.ID,
		Number:          r.Number,
		Date:            r.Date,
		WarehouseID:     r.WarehouseID,
		VesselID:        r.VesselID,
		TransportMethod: r.TransportMethod,
		IsGRP:           r.IsGRP,
		Done:            r.Done,
		Lines:           lines,
		Pallets:         pallets,
	}
}
