package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/autolanka/vsms-api/internal/domain/entity"
	"github.com/autolanka/vsms-api/internal/domain/repository"
	infraRepo "github.com/autolanka/vsms-api/internal/infrastructure/repository"
)

// In-memory fakes for the repository interfaces. They keep just enough state
// for the orchestrator tests to assert on what was written and which side
// effects fired.

func tenantCtx() context.Context {
	return infraRepo.WithTenant(context.Background(), 1)
}

// restorable lets a fake repo participate in the fake transaction: snapshot
// returns a closure that puts the repo back to its pre-transaction state.
type restorable interface {
	snapshot() func()
}

type fakeTxManager struct {
	calls int
	state []restorable
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	var restores []func()
	for _, s := range m.state {
		restores = append(restores, s.snapshot())
	}
	if err := fn(ctx); err != nil {
		for _, restore := range restores {
			restore()
		}
		return err
	}
	return nil
}

type fieldUpdate struct {
	id     uint
	fields map[string]interface{}
}

type fakeVehicleRepo struct {
	vehicles     map[uint]*entity.Vehicle
	nextID       uint
	updates      []fieldUpdate
	updateErr    error
	regs         map[uint]*entity.VehicleRegistration
	imports      map[uint]*entity.VehicleImport
	images       []entity.VehicleImage
	searchCalled bool
}

func newFakeVehicleRepo(vehicles ...*entity.Vehicle) *fakeVehicleRepo {
	r := &fakeVehicleRepo{
		vehicles: make(map[uint]*entity.Vehicle),
		nextID:   1,
		regs:     make(map[uint]*entity.VehicleRegistration),
		imports:  make(map[uint]*entity.VehicleImport),
	}
	for _, v := range vehicles {
		r.vehicles[v.ID] = v
		if v.ID >= r.nextID {
			r.nextID = v.ID + 1
		}
	}
	return r
}

func (r *fakeVehicleRepo) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	vehicle.ID = r.nextID
	r.nextID++
	r.vehicles[vehicle.ID] = vehicle
	return nil
}

func (r *fakeVehicleRepo) GetByID(ctx context.Context, id uint) (*entity.Vehicle, error) {
	return r.vehicles[id], nil
}

func (r *fakeVehicleRepo) GetWithRelations(ctx context.Context, id uint) (*entity.Vehicle, error) {
	return r.vehicles[id], nil
}

func (r *fakeVehicleRepo) GetPublicByID(ctx context.Context, id uint) (*entity.Vehicle, error) {
	return r.vehicles[id], nil
}

func (r *fakeVehicleRepo) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	r.vehicles[vehicle.ID] = vehicle
	return nil
}

func (r *fakeVehicleRepo) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updates = append(r.updates, fieldUpdate{id: id, fields: fields})
	return nil
}

func (r *fakeVehicleRepo) snapshot() func() {
	vehicles := make(map[uint]*entity.Vehicle, len(r.vehicles))
	for id, v := range r.vehicles {
		cp := *v
		vehicles[id] = &cp
	}
	updates := append([]fieldUpdate(nil), r.updates...)
	nextID := r.nextID
	return func() {
		r.vehicles = vehicles
		r.updates = updates
		r.nextID = nextID
	}
}

func (r *fakeVehicleRepo) Delete(ctx context.Context, id uint) error {
	delete(r.vehicles, id)
	return nil
}

func (r *fakeVehicleRepo) List(ctx context.Context, params *repository.VehicleFilterParams) ([]entity.Vehicle, int64, error) {
	return nil, 0, nil
}

func (r *fakeVehicleRepo) ListForLanding(ctx context.Context, params *repository.LandingFilterParams) ([]entity.Vehicle, int64, error) {
	return nil, 0, nil
}

func (r *fakeVehicleRepo) Search(ctx context.Context, term string, limit int) ([]repository.VehicleSearchRow, error) {
	r.searchCalled = true
	return []repository.VehicleSearchRow{}, nil
}

func (r *fakeVehicleRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	return false, nil
}

func (r *fakeVehicleRepo) StockNumberExists(ctx context.Context, stockNumber string) (bool, error) {
	return false, nil
}

func (r *fakeVehicleRepo) ReplaceRegistration(ctx context.Context, vehicleID uint, reg *entity.VehicleRegistration) error {
	delete(r.imports, vehicleID)
	r.regs[vehicleID] = reg
	return nil
}

func (r *fakeVehicleRepo) ReplaceImport(ctx context.Context, vehicleID uint, imp *entity.VehicleImport) error {
	delete(r.regs, vehicleID)
	r.imports[vehicleID] = imp
	return nil
}

func (r *fakeVehicleRepo) AddImage(ctx context.Context, image *entity.VehicleImage) error {
	r.images = append(r.images, *image)
	return nil
}

type fakeDealerRepo struct {
	dealers map[uint]*entity.Dealer
}

func newFakeDealerRepo(dealers ...*entity.Dealer) *fakeDealerRepo {
	r := &fakeDealerRepo{dealers: make(map[uint]*entity.Dealer)}
	for _, d := range dealers {
		r.dealers[d.ID] = d
	}
	return r
}

func (r *fakeDealerRepo) GetByID(ctx context.Context, id uint) (*entity.Dealer, error) {
	return r.dealers[id], nil
}

func (r *fakeDealerRepo) ListActive(ctx context.Context) ([]entity.Dealer, error) {
	var out []entity.Dealer
	for _, d := range r.dealers {
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeDealerRepo) ListAll(ctx context.Context) ([]entity.Dealer, error) {
	return r.ListActive(ctx)
}

type fakeSellerRepo struct {
	sellers   map[uint]*entity.Seller
	nextID    uint
	upsertErr error
}

func newFakeSellerRepo(sellers ...*entity.Seller) *fakeSellerRepo {
	r := &fakeSellerRepo{sellers: make(map[uint]*entity.Seller), nextID: 1}
	for _, s := range sellers {
		r.sellers[s.ID] = s
		if s.ID >= r.nextID {
			r.nextID = s.ID + 1
		}
	}
	return r
}

func (r *fakeSellerRepo) GetByID(ctx context.Context, id uint) (*entity.Seller, error) {
	return r.sellers[id], nil
}

func (r *fakeSellerRepo) GetByName(ctx context.Context, name string) (*entity.Seller, error) {
	for _, s := range r.sellers {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSellerRepo) Upsert(ctx context.Context, seller *entity.Seller) (*entity.Seller, error) {
	if r.upsertErr != nil {
		return nil, r.upsertErr
	}
	for _, existing := range r.sellers {
		if existing.Phone == seller.Phone {
			existing.Name = seller.Name
			existing.NICOrReg = seller.NICOrReg
			existing.Address = seller.Address
			existing.Email = seller.Email
			existing.SellerType = seller.SellerType
			return existing, nil
		}
	}
	seller.ID = r.nextID
	r.nextID++
	r.sellers[seller.ID] = seller
	return seller, nil
}

func (r *fakeSellerRepo) snapshot() func() {
	sellers := make(map[uint]*entity.Seller, len(r.sellers))
	for id, s := range r.sellers {
		cp := *s
		sellers[id] = &cp
	}
	nextID := r.nextID
	return func() {
		r.sellers = sellers
		r.nextID = nextID
	}
}

type fakeBuyerRepo struct {
	buyers []*entity.Buyer
	nextID uint
}

func (r *fakeBuyerRepo) Create(ctx context.Context, buyer *entity.Buyer) error {
	r.nextID++
	buyer.ID = r.nextID
	r.buyers = append(r.buyers, buyer)
	return nil
}

func (r *fakeBuyerRepo) GetByID(ctx context.Context, id uint) (*entity.Buyer, error) {
	for _, b := range r.buyers {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

type fakePurchaseRepo struct {
	purchases map[uint]*entity.CarPurchase
	nextID    uint
	linked    map[uint][]uint
	detached  []uint
	createErr error
}

func newFakePurchaseRepo(purchases ...*entity.CarPurchase) *fakePurchaseRepo {
	r := &fakePurchaseRepo{
		purchases: make(map[uint]*entity.CarPurchase),
		nextID:    1,
		linked:    make(map[uint][]uint),
	}
	for _, p := range purchases {
		r.purchases[p.ID] = p
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *fakePurchaseRepo) Create(ctx context.Context, purchase *entity.CarPurchase) error {
	if r.createErr != nil {
		return r.createErr
	}
	purchase.ID = r.nextID
	r.nextID++
	r.purchases[purchase.ID] = purchase
	return nil
}

func (r *fakePurchaseRepo) GetByID(ctx context.Context, id uint) (*entity.CarPurchase, error) {
	return r.purchases[id], nil
}

func (r *fakePurchaseRepo) GetWithRelations(ctx context.Context, id uint) (*entity.CarPurchase, error) {
	return r.purchases[id], nil
}

func (r *fakePurchaseRepo) Update(ctx context.Context, purchase *entity.CarPurchase) error {
	r.purchases[purchase.ID] = purchase
	return nil
}

func (r *fakePurchaseRepo) Delete(ctx context.Context, id uint) error {
	delete(r.purchases, id)
	return nil
}

func (r *fakePurchaseRepo) List(ctx context.Context, params *repository.TransactionFilterParams) ([]entity.CarPurchase, error) {
	var out []entity.CarPurchase
	for _, p := range r.purchases {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePurchaseRepo) ReplaceSellers(ctx context.Context, purchase *entity.CarPurchase, sellerIDs []uint) error {
	r.linked[purchase.ID] = sellerIDs
	return nil
}

func (r *fakePurchaseRepo) DetachSellers(ctx context.Context, purchase *entity.CarPurchase) error {
	r.detached = append(r.detached, purchase.ID)
	delete(r.linked, purchase.ID)
	return nil
}

func (r *fakePurchaseRepo) snapshot() func() {
	purchases := make(map[uint]*entity.CarPurchase, len(r.purchases))
	for id, p := range r.purchases {
		cp := *p
		purchases[id] = &cp
	}
	linked := make(map[uint][]uint, len(r.linked))
	for id, sellers := range r.linked {
		linked[id] = append([]uint(nil), sellers...)
	}
	detached := append([]uint(nil), r.detached...)
	nextID := r.nextID
	return func() {
		r.purchases = purchases
		r.linked = linked
		r.detached = detached
		r.nextID = nextID
	}
}

type fakeSaleRepo struct {
	sales  map[uint]*entity.Sale
	nextID uint
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[uint]*entity.Sale), nextID: 1}
}

func (r *fakeSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	sale.ID = r.nextID
	r.nextID++
	r.sales[sale.ID] = sale
	return nil
}

func (r *fakeSaleRepo) GetByID(ctx context.Context, id uint) (*entity.Sale, error) {
	return r.sales[id], nil
}

func (r *fakeSaleRepo) GetWithRelations(ctx context.Context, id uint) (*entity.Sale, error) {
	return r.sales[id], nil
}

func (r *fakeSaleRepo) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	var out []entity.Sale
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSaleRepo) Statistics(ctx context.Context, params *repository.TransactionFilterParams) (*repository.SaleStatistics, error) {
	stats := &repository.SaleStatistics{}
	for _, s := range r.sales {
		stats.TotalSales++
		stats.TotalRevenue += s.FinalAmount
		stats.TotalDiscount += s.Discount
		stats.TotalCommission += s.Commission
	}
	return stats, nil
}

type fakeTransferRepo struct {
	transfers map[uint]*entity.Transfer
	nextID    uint
}

func newFakeTransferRepo(transfers ...*entity.Transfer) *fakeTransferRepo {
	r := &fakeTransferRepo{transfers: make(map[uint]*entity.Transfer), nextID: 1}
	for _, t := range transfers {
		r.transfers[t.ID] = t
		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
	}
	return r
}

func (r *fakeTransferRepo) Create(ctx context.Context, transfer *entity.Transfer) error {
	transfer.ID = r.nextID
	r.nextID++
	r.transfers[transfer.ID] = transfer
	return nil
}

func (r *fakeTransferRepo) GetByID(ctx context.Context, id uint) (*entity.Transfer, error) {
	return r.transfers[id], nil
}

func (r *fakeTransferRepo) GetWithRelations(ctx context.Context, id uint) (*entity.Transfer, error) {
	return r.transfers[id], nil
}

func (r *fakeTransferRepo) Update(ctx context.Context, transfer *entity.Transfer) error {
	r.transfers[transfer.ID] = transfer
	return nil
}

func (r *fakeTransferRepo) Delete(ctx context.Context, id uint) error {
	delete(r.transfers, id)
	return nil
}

func (r *fakeTransferRepo) List(ctx context.Context, params *repository.TransferFilterParams) ([]entity.Transfer, error) {
	var out []entity.Transfer
	for _, t := range r.transfers {
		out = append(out, *t)
	}
	return out, nil
}

type fakePaymentMethodRepo struct {
	methods map[uint]*entity.PaymentMethod
}

func newFakePaymentMethodRepo(methods ...*entity.PaymentMethod) *fakePaymentMethodRepo {
	r := &fakePaymentMethodRepo{methods: make(map[uint]*entity.PaymentMethod)}
	for _, m := range methods {
		r.methods[m.ID] = m
	}
	return r
}

func (r *fakePaymentMethodRepo) GetByID(ctx context.Context, id uint) (*entity.PaymentMethod, error) {
	return r.methods[id], nil
}

func (r *fakePaymentMethodRepo) ListAll(ctx context.Context) ([]entity.PaymentMethod, error) {
	var out []entity.PaymentMethod
	for _, m := range r.methods {
		out = append(out, *m)
	}
	return out, nil
}

type fakeStore struct {
	saved    []string
	deleted  []string
	failSave bool
	nextID   int
}

func (s *fakeStore) Save(file *multipart.FileHeader, dir string) (string, error) {
	if s.failSave {
		return "", fmt.Errorf("disk full")
	}
	s.nextID++
	path := fmt.Sprintf("/storage/%s/file%d.jpg", dir, s.nextID)
	s.saved = append(s.saved, path)
	return path, nil
}

func (s *fakeStore) SaveReader(r io.Reader, dir, originalName string) (string, error) {
	return s.Save(nil, dir)
}

func (s *fakeStore) Delete(relPath string) error {
	s.deleted = append(s.deleted, relPath)
	return nil
}
