package movements_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/distribution-pos/internal/application/movements"
	"github.com/tu-usuario/distribution-pos/internal/domain"
	"github.com/tu-usuario/distribution-pos/internal/domain/entity"
	"github.com/tu-usuario/distribution-pos/internal/domain/ledger"
	"github.com/tu-usuario/distribution-pos/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: repos + TxRunner que ejecuta el callback directamente.
// ──────────────────────────────────────────────────────────────────────────────

type fakeRecordRepo struct {
	records map[string]entity.StockMovementRecord
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: map[string]entity.StockMovementRecord{}}
}

func recKey(outlet, barcode, period string) string { return outlet + "|" + barcode + "|" + period }

func (f *fakeRecordRepo) Get(outlet, barcode, period string) (*entity.StockMovementRecord, error) {
	return f.GetForUpdate(outlet, barcode, period)
}

func (f *fakeRecordRepo) GetForUpdate(outlet, barcode, period string) (*entity.StockMovementRecord, error) {
	if rec, ok := f.records[recKey(outlet, barcode, period)]; ok {
		cp := rec
		return &cp, nil
	}
	return &entity.StockMovementRecord{OutletCode: outlet, Barcode: barcode, Period: period}, nil
}

func (f *fakeRecordRepo) Upsert(rec *entity.StockMovementRecord) error {
	f.records[recKey(rec.OutletCode, rec.Barcode, rec.Period)] = *rec
	return nil
}

func (f *fakeRecordRepo) ListByFilter(repository.StockRecordFilter) ([]*entity.StockMovementRecord, error) {
	return nil, nil
}

type fakeAccountRepo struct {
	accounts map[string]entity.OutletAccount
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]entity.OutletAccount{}}
}

func (f *fakeAccountRepo) Get(code string) (*entity.OutletAccount, error) {
	return f.GetForUpdate(code)
}

func (f *fakeAccountRepo) GetForUpdate(code string) (*entity.OutletAccount, error) {
	if acc, ok := f.accounts[code]; ok {
		cp := acc
		return &cp, nil
	}
	return &entity.OutletAccount{OutletCode: code, CurrentDue: decimal.Zero}, nil
}

func (f *fakeAccountRepo) Upsert(acc *entity.OutletAccount) error {
	f.accounts[acc.OutletCode] = *acc
	return nil
}

type fakeTxLog struct{ entries []entity.TransactionEntry }

func (f *fakeTxLog) Create(e *entity.TransactionEntry) error {
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeTxLog) ListByOutlet(string, *time.Time, *time.Time, int, int) ([]*entity.TransactionEntry, error) {
	return nil, nil
}

func (f *fakeTxLog) ListByType(string, time.Time, time.Time) ([]*entity.TransactionEntry, error) {
	return nil, nil
}

type fakeTransferLog struct{ transfers []entity.MoneyTransfer }

func (f *fakeTransferLog) Create(mt *entity.MoneyTransfer) error {
	f.transfers = append(f.transfers, *mt)
	return nil
}

func (f *fakeTransferLog) ListByOutlet(string, *time.Time, *time.Time, int, int) ([]*entity.MoneyTransfer, error) {
	return nil, nil
}

type fakeTxRunner struct {
	records   *fakeRecordRepo
	accounts  *fakeAccountRepo
	txLog     *fakeTxLog
	transfers *fakeTransferLog
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	recordRepo repository.StockRecordRepository,
	accountRepo repository.OutletAccountRepository,
	txRepo repository.TransactionRepository,
	transferRepo repository.MoneyTransferRepository,
) error) error {
	return fn(f.records, f.accounts, f.txLog, f.transfers)
}

type fakeProductRepo struct{ products map[string]entity.Product }

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.Barcode] = *p; return nil }
func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.Barcode] = *p; return nil }
func (f *fakeProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	if p, ok := f.products[barcode]; ok {
		cp := p
		return &cp, nil
	}
	return nil, nil
}
func (f *fakeProductRepo) List(string, int, int) ([]*entity.Product, error) { return nil, nil }

type fakeOutletRepo struct{ outlets map[string]entity.Outlet }

func (f *fakeOutletRepo) Create(o *entity.Outlet) error { f.outlets[o.Code] = *o; return nil }
func (f *fakeOutletRepo) GetByCode(code string) (*entity.Outlet, error) {
	if o, ok := f.outlets[code]; ok {
		cp := o
		return &cp, nil
	}
	return nil, nil
}
func (f *fakeOutletRepo) List(int, int) ([]*entity.Outlet, error) { return nil, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc        *movements.RegisterMovementUseCase
	records   *fakeRecordRepo
	accounts  *fakeAccountRepo
	txLog     *fakeTxLog
	transfers *fakeTransferLog
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	records := newFakeRecordRepo()
	accounts := newFakeAccountRepo()
	txLog := &fakeTxLog{}
	transfers := &fakeTransferLog{}
	runner := &fakeTxRunner{records: records, accounts: accounts, txLog: txLog, transfers: transfers}

	products := &fakeProductRepo{products: map[string]entity.Product{
		"750100": {Barcode: "750100", Name: "Cigarrillo Rojo 20", Category: "cigarrillos", DP: dec("105.50"), TP: dec("118")},
	}}
	outlets := &fakeOutletRepo{outlets: map[string]entity.Outlet{
		"OUT-01": {Code: "OUT-01", Name: "Tienda Central"},
	}}

	return &fixture{
		uc:        movements.NewRegisterMovementUseCase(runner, products, outlets),
		records:   records,
		accounts:  accounts,
		txLog:     txLog,
		transfers: transfers,
	}
}

func movementDate(t *testing.T) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", "2024-03-15")
	require.NoError(t, err)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// PRIMARY a crédito: stock + auditoría + deuda + MoneyTransfer, todo emparejado.
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_PrimaryCredito_SubeStockYDeuda(t *testing.T) {
	f := newFixture(t)

	err := f.uc.RegisterMovement(context.Background(), movements.MovementInput{
		OutletCode: "OUT-01", Barcode: "750100",
		Type: entity.MovementTypePrimary, Quantity: 12,
		Date: movementDate(t), Credit: true, UserID: "user-1",
	})
	require.NoError(t, err)

	rec, ok := f.records.records["OUT-01|750100|2024-03"]
	require.True(t, ok, "debe existir el record del período 2024-03")
	assert.Equal(t, int64(12), rec.Primary)
	assert.True(t, dec("1266").Equal(rec.PrimaryValueDP), "12 × 105.50 = 1266, got %s", rec.PrimaryValueDP)

	require.Len(t, f.txLog.entries, 1, "exactamente una entrada de auditoría")
	entry := f.txLog.entries[0]
	assert.Equal(t, entity.MovementTypePrimary, entry.Type)
	assert.Equal(t, "user-1", entry.CreatedBy)
	assert.True(t, dec("105.50").Equal(entry.DP))

	acc := f.accounts.accounts["OUT-01"]
	assert.True(t, dec("1266").Equal(acc.CurrentDue), "la deuda debe subir qty × DP")

	require.Len(t, f.transfers.transfers, 1, "el cambio de deuda debe tener su MoneyTransfer emparejado")
	mt := f.transfers.transfers[0]
	assert.Equal(t, entity.TransferTypePrimaryCredit, mt.Type)
	assert.True(t, dec("1266").Equal(mt.Amount))
	assert.Equal(t, "user-1", mt.CreatedBy)
}

func TestRegisterMovement_PrimarySinCredito_NoTocaDeuda(t *testing.T) {
	f := newFixture(t)

	// Entrada de apertura cargada por admin: Credit=false.
	err := f.uc.RegisterMovement(context.Background(), movements.MovementInput{
		OutletCode: "OUT-01", Barcode: "750100",
		Type: entity.MovementTypePrimary, Quantity: 20,
		Date: movementDate(t), UserID: "admin-1",
	})
	require.NoError(t, err)

	assert.Empty(t, f.accounts.accounts, "sin crédito, la deuda no se toca")
	assert.Empty(t, f.transfers.transfers, "sin crédito no hay MoneyTransfer")
	assert.Len(t, f.txLog.entries, 1, "la auditoría de stock sí queda")
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas: verificación de disponible y variante sin verificar.
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_SecondarySinStock_Rechaza(t *testing.T) {
	f := newFixture(t)
	f.records.records["OUT-01|750100|2024-03"] = entity.StockMovementRecord{
		OutletCode: "OUT-01", Barcode: "750100", Period: "2024-03",
		OpeningStock: 10, OpeningValueDP: dec("1055"), OpeningValueTP: dec("1180"),
	}

	err := f.uc.RegisterMovement(context.Background(), movements.MovementInput{
		OutletCode: "OUT-01", Barcode: "750100",
		Type: entity.MovementTypeSecondary, Quantity: 11,
		Date: movementDate(t), UserID: "user-1",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	rec := f.records.records["OUT-01|750100|2024-03"]
	assert.Equal(t, int64(0), rec.Secondary, "el record no debe cambiar cuando se rechaza")
	assert.Empty(t, f.txLog.entries, "sin movimiento aplicado no hay auditoría")
}

func TestRegisterMovement_SecondaryConAllowNegative_Aplica(t *testing.T) {
	f := newFixture(t)

	err := f.uc.RegisterMovement(context.Background(), movements.MovementInput{
		OutletCode: "OUT-01", Barcode: "750100",
		Type: entity.MovementTypeSecondary, Quantity: 5,
		Date: movementDate(t), AllowNegative: true, UserID: "user-1",
	})
	require.NoError(t, err)

	rec := f.records.records["OUT-01|750100|2024-03"]
	assert.Equal(t, int64(5), rec.Secondary)
	closing := ledger.ComputeClosing(rec)
	assert.Equal(t, int64(-5), closing.Qty, "con allow_negative el cierre puede quedar negativo")
}

func TestRegisterMovement_VentaExacta_DejaCierreCero(t *testing.T) {
	f := newFixture(t)
	f.records.records["OUT-01|750100|2024-03"] = entity.StockMovementRecord{
		OutletCode: "OUT-01", Barcode: "750100", Period: "2024-03",
		OpeningStock: 10, OpeningValueDP: dec("1055"), OpeningValueTP: dec("1180"),
	}

	err := f.uc.RegisterMovement(context.Background(), movements.MovementInput{
		OutletCode: "OUT-01", Barcode: "750100",
		Type: entity.MovementTypeSecondary, Quantity: 10,
		Date: movementDate(t), UserID: "user-1",
	})
	require.NoError(t, err)

	closing := ledger.ComputeClosing(f.records.records["OUT-01|750100|2024-03"])
	assert.Equal(t, int64(0), closing.Qty)
}

// ──────────────────────────────────────────────────────────────────────────────
// Precios: override del operador vs resolución del motor.
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_OverrideDePrecios(t *testing.T) {
	f := newFixture(t)
	dp, tp := dec("99.99"), dec("111.11")

	err := f.uc.RegisterMovement(context.Background(), movements.MovementInput{
		OutletCode: "OUT-01", Barcode: "750100",
		Type: entity.MovementTypeMarketReturn, Quantity: 3,
		Date: movementDate(t), UnitDP: &dp, UnitTP: &tp, UserID: "user-1",
	})
	require.NoError(t, err)

	rec := f.records.records["OUT-01|750100|2024-03"]
	assert.True(t, dec("299.97").Equal(rec.MarketReturnValueDP), "3 × 99.99")
	assert.True(t, dec("333.33").Equal(rec.MarketReturnValueTP), "3 × 111.11")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones de entrada.
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_Validaciones(t *testing.T) {
	f := newFixture(t)
	base := movements.MovementInput{
		OutletCode: "OUT-01", Barcode: "750100",
		Type: entity.MovementTypePrimary, Quantity: 1,
		Date: movementDate(t), UserID: "user-1",
	}

	tipoRaro := base
	tipoRaro.Type = "TRANSFER"
	assert.ErrorIs(t, f.uc.RegisterMovement(context.Background(), tipoRaro), domain.ErrInvalidInput,
		"tipo desconocido debe rechazarse")

	qtyCero := base
	qtyCero.Quantity = 0
	assert.ErrorIs(t, f.uc.RegisterMovement(context.Background(), qtyCero), domain.ErrInvalidInput)

	creditoEnVenta := base
	creditoEnVenta.Type = entity.MovementTypeSecondary
	creditoEnVenta.Credit = true
	assert.ErrorIs(t, f.uc.RegisterMovement(context.Background(), creditoEnVenta), domain.ErrInvalidInput,
		"credit solo aplica a PRIMARY")

	productoInexistente := base
	productoInexistente.Barcode = "000000"
	assert.ErrorIs(t, f.uc.RegisterMovement(context.Background(), productoInexistente), domain.ErrNotFound)

	outletInexistente := base
	outletInexistente.OutletCode = "OUT-99"
	assert.ErrorIs(t, f.uc.RegisterMovement(context.Background(), outletInexistente), domain.ErrNotFound)
}
