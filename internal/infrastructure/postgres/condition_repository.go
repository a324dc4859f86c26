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

var _ repository.ConditionRepository = (*ConditionRepo)(nil)

// ConditionRepo implementação do porto ConditionRepository sobre PostgreSQL.
type ConditionRepo struct {
	q Querier
}

// NewConditionRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewConditionRepository(q Querier) *ConditionRepo {
	return &ConditionRepo{q: q}
}

const conditionSelect = `
	SELECT id, supplier_id, uf, cashback_percent, extra_term_days, price_variance, created_at, updated_at, deleted_at
	FROM commercial_conditions`

// Create persiste uma nova condição comercial. Par (fornecedor, UF) já ativo ->
// ErrDuplicate (índice parcial único fecha a corrida que o caso de uso não cobre).
func (r *ConditionRepo) Create(condition *entity.CommercialCondition) error {
	query := `
		INSERT INTO commercial_conditions (id, supplier_id, uf, cashback_percent, extra_term_days, price_variance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		condition.ID, condition.SupplierID, condition.UF, condition.CashbackPercent,
		condition.ExtraTermDays, condition.PriceVariance, condition.CreatedAt, condition.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert commercial condition: %w", err)
	}
	return nil
}

// GetByID obtém uma condição por ID. Removida = não encontrada.
func (r *ConditionRepo) GetByID(id string) (*entity.CommercialCondition, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		conditionSelect+` WHERE id = $1 AND deleted_at IS NULL`, id))
}

// GetBySupplierAndUF devolve a condição ativa do par, ou (nil, nil) quando não
// há — ausência significa "usar os padrões".
func (r *ConditionRepo) GetBySupplierAndUF(supplierID, uf string) (*entity.CommercialCondition, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		conditionSelect+` WHERE supplier_id = $1 AND uf = $2 AND deleted_at IS NULL`,
		supplierID, uf))
}

// ListBySupplier lista as condições ativas de um fornecedor.
func (r *ConditionRepo) ListBySupplier(supplierID string) ([]*entity.CommercialCondition, error) {
	rows, err := r.q.Query(context.Background(),
		conditionSelect+` WHERE supplier_id = $1 AND deleted_at IS NULL ORDER BY uf`, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list commercial conditions: %w", err)
	}
	defer rows.Close()
	var list []*entity.CommercialCondition
	for rows.Next() {
		var c entity.CommercialCondition
		if err := rows.Scan(&c.ID, &c.SupplierID, &c.UF, &c.CashbackPercent, &c.ExtraTermDays,
			&c.PriceVariance, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan commercial condition: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update atualiza os termos da condição (fornecedor e UF são imutáveis).
func (r *ConditionRepo) Update(condition *entity.CommercialCondition) error {
	query := `
		UPDATE commercial_conditions SET cashback_percent = $2, extra_term_days = $3, price_variance = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		condition.ID, condition.CashbackPercent, condition.ExtraTermDays,
		condition.PriceVariance, condition.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update commercial condition: %w", err)
	}
	return nil
}

// SoftDelete marca a condição como removida; o par volta a usar os padrões.
func (r *ConditionRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE commercial_conditions SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete commercial condition: %w", err)
	}
	return nil
}

func (r *ConditionRepo) scanOne(row pgx.Row) (*entity.CommercialCondition, error) {
	var c entity.CommercialCondition
	err := row.Scan(&c.ID, &c.SupplierID, &c.UF, &c.CashbackPercent, &c.ExtraTermDays,
		&c.PriceVariance, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get commercial condition: %w", err)
	}
	return &c, nil
}
