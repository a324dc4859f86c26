package repository

import "github.com/abastece/abastece-api/internal/domain/entity"

// CampaignRepository define a porta de persistência para Campaign.
type CampaignRepository interface {
	Create(campaign *entity.Campaign) error
	GetByID(id string) (*entity.Campaign, error)
	GetByName(name string) (*entity.Campaign, error)
	ListBySupplier(supplierID string) ([]*entity.Campaign, error)
	ListActiveBySupplier(supplierID string) ([]*entity.Campaign, error)
	Update(campaign *entity.Campaign) error
	SoftDelete(id string) error
}
