package usecase_test

import (
	"sort"
	"time"

	"github.com/abastece/abastece-api/internal/domain/entity"
)

// Fakes em memória das portas de persistência usadas pelos casos de uso CRUD.

func nowRef() time.Time { return time.Now() }

type fakeSupplierRepo struct {
	items map[string]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{items: map[string]*entity.Supplier{}}
}

func (f *fakeSupplierRepo) Create(s *entity.Supplier) error {
	f.items[s.ID] = s
	return nil
}

func (f *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s := f.items[id]
	if s == nil || s.DeletedAt != nil {
		return nil, nil
	}
	return s, nil
}

func (f *fakeSupplierRepo) GetByCNPJ(cnpj string) (*entity.Supplier, error) {
	for _, s := range f.items {
		if s.CNPJ == cnpj && s.DeletedAt == nil {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range f.items {
		if s.DeletedAt == nil {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeSupplierRepo) ListByUser(userID string) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range f.items {
		if s.UserID == userID && s.DeletedAt == nil {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSupplierRepo) Update(s *entity.Supplier) error {
	f.items[s.ID] = s
	return nil
}

func (f *fakeSupplierRepo) SoftDelete(id string) error {
	if s, ok := f.items[id]; ok {
		now := nowRef()
		s.DeletedAt = &now
	}
	return nil
}

type fakeConditionRepo struct {
	items map[string]*entity.CommercialCondition
}

func newFakeConditionRepo() *fakeConditionRepo {
	return &fakeConditionRepo{items: map[string]*entity.CommercialCondition{}}
}

func (f *fakeConditionRepo) Create(c *entity.CommercialCondition) error {
	f.items[c.ID] = c
	return nil
}

func (f *fakeConditionRepo) GetByID(id string) (*entity.CommercialCondition, error) {
	c := f.items[id]
	if c == nil || c.DeletedAt != nil {
		return nil, nil
	}
	return c, nil
}

func (f *fakeConditionRepo) GetBySupplierAndUF(supplierID, uf string) (*entity.CommercialCondition, error) {
	for _, c := range f.items {
		if c.SupplierID == supplierID && c.UF == uf && c.DeletedAt == nil {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeConditionRepo) ListBySupplier(supplierID string) ([]*entity.CommercialCondition, error) {
	var out []*entity.CommercialCondition
	for _, c := range f.items {
		if c.SupplierID == supplierID && c.DeletedAt == nil {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UF < out[j].UF })
	return out, nil
}

func (f *fakeConditionRepo) Update(c *entity.CommercialCondition) error {
	f.items[c.ID] = c
	return nil
}

func (f *fakeConditionRepo) SoftDelete(id string) error {
	if c, ok := f.items[id]; ok {
		now := nowRef()
		c.DeletedAt = &now
	}
	return nil
}

type fakeCampaignRepo struct {
	items map[string]*entity.Campaign
}

func newFakeCampaignRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{items: map[string]*entity.Campaign{}}
}

func (f *fakeCampaignRepo) Create(c *entity.Campaign) error {
	f.items[c.ID] = c
	return nil
}

func (f *fakeCampaignRepo) GetByID(id string) (*entity.Campaign, error) {
	c := f.items[id]
	if c == nil || c.DeletedAt != nil {
		return nil, nil
	}
	return c, nil
}

func (f *fakeCampaignRepo) GetByName(name string) (*entity.Campaign, error) {
	for _, c := range f.items {
		if c.Name == name && c.DeletedAt == nil {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCampaignRepo) ListBySupplier(supplierID string) ([]*entity.Campaign, error) {
	var out []*entity.Campaign
	for _, c := range f.items {
		if c.SupplierID == supplierID && c.DeletedAt == nil {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeCampaignRepo) ListActiveBySupplier(supplierID string) ([]*entity.Campaign, error) {
	all, _ := f.ListBySupplier(supplierID)
	var out []*entity.Campaign
	for _, c := range all {
		if c.Status == entity.CampaignStatusActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCampaignRepo) Update(c *entity.Campaign) error {
	f.items[c.ID] = c
	return nil
}

func (f *fakeCampaignRepo) SoftDelete(id string) error {
	if c, ok := f.items[id]; ok {
		now := nowRef()
		c.DeletedAt = &now
	}
	return nil
}

type fakeStoreRepo struct {
	items map[string]*entity.Store
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{items: map[string]*entity.Store{}}
}

func (f *fakeStoreRepo) Create(s *entity.Store) error {
	f.items[s.ID] = s
	return nil
}

func (f *fakeStoreRepo) GetByID(id string) (*entity.Store, error) {
	s := f.items[id]
	if s == nil || s.DeletedAt != nil {
		return nil, nil
	}
	return s, nil
}

func (f *fakeStoreRepo) GetByCNPJ(cnpj string) (*entity.Store, error) {
	for _, s := range f.items {
		if s.CNPJ == cnpj && s.DeletedAt == nil {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStoreRepo) List(limit, offset int) ([]*entity.Store, error) {
	var out []*entity.Store
	for _, s := range f.items {
		if s.DeletedAt == nil {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStoreRepo) ListByUser(userID string) ([]*entity.Store, error) {
	var out []*entity.Store
	for _, s := range f.items {
		if s.UserID == userID && s.DeletedAt == nil {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStoreRepo) Update(s *entity.Store) error {
	f.items[s.ID] = s
	return nil
}

func (f *fakeStoreRepo) SoftDelete(id string) error {
	if s, ok := f.items[id]; ok {
		now := nowRef()
		s.DeletedAt = &now
	}
	return nil
}

type fakeLinkRepo struct {
	items map[string]*entity.StoreSupplier
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{items: map[string]*entity.StoreSupplier{}}
}

func (f *fakeLinkRepo) Create(l *entity.StoreSupplier) error {
	f.items[l.ID] = l
	return nil
}

func (f *fakeLinkRepo) GetActive(storeID, supplierID string) (*entity.StoreSupplier, error) {
	for _, l := range f.items {
		if l.StoreID == storeID && l.SupplierID == supplierID && l.DeletedAt == nil {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLinkRepo) ListByStore(storeID string) ([]*entity.StoreSupplier, error) {
	var out []*entity.StoreSupplier
	for _, l := range f.items {
		if l.StoreID == storeID && l.DeletedAt == nil {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLinkRepo) SoftDelete(id string) error {
	if l, ok := f.items[id]; ok {
		now := nowRef()
		l.DeletedAt = &now
	}
	return nil
}

type fakeAddressCheck struct {
	existing map[string]bool
}

func (f *fakeAddressCheck) Exists(id string) (bool, error) {
	return f.existing[id], nil
}
