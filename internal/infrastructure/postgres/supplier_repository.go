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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementação do porto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierSelect = `
	SELECT id, user_id, cnpj, legal_name, trade_name, description, created_at, updated_at, deleted_at
	FROM suppliers`

// Create persiste um novo fornecedor. CNPJ duplicado -> ErrDuplicate
// (índice parcial único em cnpj WHERE deleted_at IS NULL).
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, user_id, cnpj, legal_name, trade_name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.UserID, supplier.CNPJ, supplier.LegalName, supplier.TradeName,
		supplier.Description, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtém um fornecedor por ID. Removido = não encontrado.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		supplierSelect+` WHERE id = $1 AND deleted_at IS NULL`, id))
}

// GetByCNPJ obtém um fornecedor ativo por CNPJ.
func (r *SupplierRepo) GetByCNPJ(cnpj string) (*entity.Supplier, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		supplierSelect+` WHERE cnpj = $1 AND deleted_at IS NULL`, cnpj))
}

// List lista fornecedores ativos com paginação.
func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(context.Background(),
		supplierSelect+` WHERE deleted_at IS NULL ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return r.scanMany(rows)
}

// ListByUser lista os fornecedores de um dono.
func (r *SupplierRepo) ListByUser(userID string) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(context.Background(),
		supplierSelect+` WHERE user_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list suppliers by user: %w", err)
	}
	return r.scanMany(rows)
}

// Update atualiza os dados cadastrais (CNPJ é imutável).
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET legal_name = $2, trade_name = $3, description = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.LegalName, supplier.TradeName, supplier.Description, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// SoftDelete marca o fornecedor como removido.
func (r *SupplierRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE suppliers SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) scanOne(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(&s.ID, &s.UserID, &s.CNPJ, &s.LegalName, &s.TradeName, &s.Description,
		&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

func (r *SupplierRepo) scanMany(rows pgx.Rows) ([]*entity.Supplier, error) {
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.UserID, &s.CNPJ, &s.LegalName, &s.TradeName, &s.Description,
			&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
