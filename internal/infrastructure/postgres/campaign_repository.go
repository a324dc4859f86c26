package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/abastece/abastece-api/internal/domain"
	"github.com/abastece/abastece-api/internal/domain/entity"
	"github.com/abastece/abastece-api/internal/domain/repository"
)

var _ repository.CampaignRepository = (*CampaignRepo)(nil)

// CampaignRepo implementação do porto CampaignRepository sobre PostgreSQL.
type CampaignRepo struct {
	q Querier
}

// NewCampaignRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCampaignRepository(q Querier) *CampaignRepo {
	return &CampaignRepo{q: q}
}

const campaignSelect = `
	SELECT id, supplier_id, name, description, min_value, min_quantity, discount_percent, status, created_at, updated_at, deleted_at
	FROM campaigns`

// Create persiste uma nova campanha. Nome já usado -> ErrDuplicate
// (índice parcial único em name WHERE deleted_at IS NULL).
func (r *CampaignRepo) Create(campaign *entity.Campaign) error {
	query := `
		INSERT INTO campaigns (id, supplier_id, name, description, min_value, min_quantity, discount_percent, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		campaign.ID, campaign.SupplierID, campaign.Name, campaign.Description,
		campaign.MinValue, campaign.MinQuantity, campaign.DiscountPercent, campaign.Status,
		campaign.CreatedAt, campaign.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// GetByID obtém uma campanha por ID. Removida = não encontrada.
func (r *CampaignRepo) GetByID(id string) (*entity.Campaign, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		campaignSelect+` WHERE id = $1 AND deleted_at IS NULL`, id))
}

// GetByName obtém uma campanha ativa (não removida) por nome.
func (r *CampaignRepo) GetByName(name string) (*entity.Campaign, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		campaignSelect+` WHERE name = $1 AND deleted_at IS NULL`, name))
}

// ListBySupplier lista todas as campanhas não removidas de um fornecedor.
func (r *CampaignRepo) ListBySupplier(supplierID string) ([]*entity.Campaign, error) {
	rows, err := r.q.Query(context.Background(),
		campaignSelect+` WHERE supplier_id = $1 AND deleted_at IS NULL ORDER BY created_at`, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return r.scanMany(rows)
}

// ListActiveBySupplier lista as campanhas com status ativo de um fornecedor,
// da mais antiga para a mais nova (ordem usada no desempate de seleção).
func (r *CampaignRepo) ListActiveBySupplier(supplierID string) ([]*entity.Campaign, error) {
	rows, err := r.q.Query(context.Background(),
		campaignSelect+` WHERE supplier_id = $1 AND status = $2 AND deleted_at IS NULL ORDER BY created_at`,
		supplierID, entity.CampaignStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list active campaigns: %w", err)
	}
	return r.scanMany(rows)
}

// Update atualiza os campos mutáveis da campanha.
func (r *CampaignRepo) Update(campaign *entity.Campaign) error {
	query := `
		UPDATE campaigns SET name = $2, description = $3, min_value = $4, min_quantity = $5, discount_percent = $6, status = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		campaign.ID, campaign.Name, campaign.Description, campaign.MinValue, campaign.MinQuantity,
		campaign.DiscountPercent, campaign.Status, campaign.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update campaign: %w", err)
	}
	return nil
}

// SoftDelete marca a campanha como removida. Pedidos que já referenciam a
// campanha permanecem válidos.
func (r *CampaignRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE campaigns SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete campaign: %w", err)
	}
	return nil
}

func (r *CampaignRepo) scanOne(row pgx.Row) (*entity.Campaign, error) {
	var c entity.Campaign
	err := row.Scan(&c.ID, &c.SupplierID, &c.Name, &c.Description, &c.MinValue, &c.MinQuantity,
		&c.DiscountPercent, &c.Status, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return &c, nil
}

func (r *CampaignRepo) scanMany(rows pgx.Rows) ([]*entity.Campaign, error) {
	defer rows.Close()
	var list []*entity.Campaign
	for rows.Next() {
		var c entity.Campaign
		if err := rows.Scan(&c.ID, &c.SupplierID, &c.Name, &c.Description, &c.MinValue, &c.MinQuantity,
			&c.DiscountPercent, &c.Status, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
