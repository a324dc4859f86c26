package order_test

import (
	"context"
	"errors"
	"time"

	"github.com/abastece/abastece-api/internal/domain/entity"
	"github.com/abastece/abastece-api/internal/domain/repository"
	"github.com/abastece/abastece-api/pkg/logger"
)

// Fakes em memória para os casos de uso de pedido. Só os métodos exercitados
// pelos fluxos têm comportamento real; o resto devolve zero values.

var errFakeTx = errors.New("falha simulada na transação")

type fakeStoreRepo struct {
	stores map[string]*entity.Store
}

func (f *fakeStoreRepo) Create(s *entity.Store) error { f.stores[s.ID] = s; return nil }
func (f *fakeStoreRepo) GetByID(id string) (*entity.Store, error) {
	return f.stores[id], nil
}
func (f *fakeStoreRepo) GetByCNPJ(string) (*entity.Store, error)    { return nil, nil }
func (f *fakeStoreRepo) List(int, int) ([]*entity.Store, error)     { return nil, nil }
func (f *fakeStoreRepo) ListByUser(string) ([]*entity.Store, error) { return nil, nil }
func (f *fakeStoreRepo) Update(*entity.Store) error                 { return nil }
func (f *fakeStoreRepo) SoftDelete(string) error                    { return nil }

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (f *fakeSupplierRepo) Create(s *entity.Supplier) error { f.suppliers[s.ID] = s; return nil }
func (f *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return f.suppliers[id], nil
}
func (f *fakeSupplierRepo) GetByCNPJ(string) (*entity.Supplier, error)    { return nil, nil }
func (f *fakeSupplierRepo) List(int, int) ([]*entity.Supplier, error)     { return nil, nil }
func (f *fakeSupplierRepo) ListByUser(string) ([]*entity.Supplier, error) { return nil, nil }
func (f *fakeSupplierRepo) Update(*entity.Supplier) error                 { return nil }
func (f *fakeSupplierRepo) SoftDelete(string) error                       { return nil }

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) ListBySupplier(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(*entity.Product) error { return nil }
func (f *fakeProductRepo) SoftDelete(string) error      { return nil }

type fakeCampaignRepo struct {
	active []*entity.Campaign
}

func (f *fakeCampaignRepo) Create(*entity.Campaign) error              { return nil }
func (f *fakeCampaignRepo) GetByID(string) (*entity.Campaign, error)   { return nil, nil }
func (f *fakeCampaignRepo) GetByName(string) (*entity.Campaign, error) { return nil, nil }
func (f *fakeCampaignRepo) ListBySupplier(string) ([]*entity.Campaign, error) {
	return f.active, nil
}
func (f *fakeCampaignRepo) ListActiveBySupplier(string) ([]*entity.Campaign, error) {
	return f.active, nil
}
func (f *fakeCampaignRepo) Update(*entity.Campaign) error { return nil }
func (f *fakeCampaignRepo) SoftDelete(string) error       { return nil }

type fakeConditionRepo struct {
	condition *entity.CommercialCondition // devolvida para qualquer par consultado
}

func (f *fakeConditionRepo) Create(*entity.CommercialCondition) error { return nil }
func (f *fakeConditionRepo) GetByID(string) (*entity.CommercialCondition, error) {
	return nil, nil
}
func (f *fakeConditionRepo) GetBySupplierAndUF(string, string) (*entity.CommercialCondition, error) {
	return f.condition, nil
}
func (f *fakeConditionRepo) ListBySupplier(string) ([]*entity.CommercialCondition, error) {
	return nil, nil
}
func (f *fakeConditionRepo) Update(*entity.CommercialCondition) error { return nil }
func (f *fakeConditionRepo) SoftDelete(string) error                  { return nil }

type fakeAddressRepo struct {
	addresses map[string]*entity.Address
}

func (f *fakeAddressRepo) Create(a *entity.Address) error { f.addresses[a.ID] = a; return nil }
func (f *fakeAddressRepo) GetByID(id string) (*entity.Address, error) {
	return f.addresses[id], nil
}
func (f *fakeAddressRepo) ListByUser(string) ([]*entity.Address, error) { return nil, nil }
func (f *fakeAddressRepo) Update(*entity.Address) error                 { return nil }
func (f *fakeAddressRepo) SoftDelete(string) error                      { return nil }

type fakeLinkRepo struct {
	links map[string]*entity.StoreSupplier // chave storeID+"/"+supplierID
}

func (f *fakeLinkRepo) Create(l *entity.StoreSupplier) error {
	f.links[l.StoreID+"/"+l.SupplierID] = l
	return nil
}
func (f *fakeLinkRepo) GetActive(storeID, supplierID string) (*entity.StoreSupplier, error) {
	return f.links[storeID+"/"+supplierID], nil
}
func (f *fakeLinkRepo) ListByStore(string) ([]*entity.StoreSupplier, error) { return nil, nil }
func (f *fakeLinkRepo) SoftDelete(string) error                             { return nil }

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	items  map[string][]*entity.OrderItem
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[string]*entity.Order),
		items:  make(map[string][]*entity.OrderItem),
	}
}

func (f *fakeOrderRepo) Create(o *entity.Order) error { f.orders[o.ID] = o; return nil }
func (f *fakeOrderRepo) CreateItem(it *entity.OrderItem) error {
	f.items[it.OrderID] = append(f.items[it.OrderID], it)
	return nil
}
func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o := f.orders[id]
	if o == nil || o.DeletedAt != nil {
		return nil, nil
	}
	return o, nil
}
func (f *fakeOrderRepo) GetItemsByOrder(orderID string) ([]*entity.OrderItem, error) {
	return f.items[orderID], nil
}
func (f *fakeOrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(f.orders))
	for _, o := range f.orders {
		if o.DeletedAt == nil {
			out = append(out, o)
		}
	}
	return out, nil
}
func (f *fakeOrderRepo) ListByBuyer(userID string, limit, offset int) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0)
	for _, o := range f.orders {
		if o.DeletedAt == nil && o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}
func (f *fakeOrderRepo) ListBySupplierOwner(userID string, limit, offset int) ([]*entity.Order, error) {
	// O fake não conhece donos de fornecedores; os testes gravam o ID do dono
	// como SupplierID quando precisam exercitar esta visão.
	out := make([]*entity.Order, 0)
	for _, o := range f.orders {
		if o.DeletedAt == nil && o.SupplierID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}
func (f *fakeOrderRepo) Update(o *entity.Order) error { f.orders[o.ID] = o; return nil }
func (f *fakeOrderRepo) SoftDelete(id string) error {
	if o := f.orders[id]; o != nil {
		now := time.Now()
		o.DeletedAt = &now
	}
	return nil
}

// fakeTxRunner entrega o repositório de pedidos direto, sem transação real.
type fakeTxRunner struct {
	repo *fakeOrderRepo
	fail bool
}

func (f *fakeTxRunner) RunOrder(_ context.Context, fn func(repository.OrderRepository) error) error {
	if f.fail {
		return errFakeTx
	}
	return fn(f.repo)
}

type fakePublisher struct {
	created       int
	statusChanged int
	lastPrevious  string
}

func (f *fakePublisher) PublishOrderCreated(_ context.Context, _ *entity.Order) error {
	f.created++
	return nil
}

func (f *fakePublisher) PublishOrderStatusChanged(_ context.Context, _ *entity.Order, previous string) error {
	f.statusChanged++
	f.lastPrevious = previous
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}
