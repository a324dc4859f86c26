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

var _ repository.StoreRepository = (*StoreRepo)(nil)
var _ repository.StoreSupplierRepository = (*StoreSupplierRepo)(nil)

// StoreRepo implementação do porto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

const storeSelect = `
	SELECT id, user_id, name, cnpj, address_id, created_at, updated_at, deleted_at
	FROM stores`

// Create persiste uma nova loja. CNPJ duplicado -> ErrDuplicate.
func (r *StoreRepo) Create(store *entity.Store) error {
	query := `
		INSERT INTO stores (id, user_id, name, cnpj, address_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		store.ID, store.UserID, store.Name, store.CNPJ, store.AddressID,
		store.CreatedAt, store.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtém uma loja por ID. Removida = não encontrada.
func (r *StoreRepo) GetByID(id string) (*entity.Store, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		storeSelect+` WHERE id = $1 AND deleted_at IS NULL`, id))
}

// GetByCNPJ obtém uma loja ativa por CNPJ.
func (r *StoreRepo) GetByCNPJ(cnpj string) (*entity.Store, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		storeSelect+` WHERE cnpj = $1 AND deleted_at IS NULL`, cnpj))
}

// List lista lojas ativas com paginação.
func (r *StoreRepo) List(limit, offset int) ([]*entity.Store, error) {
	rows, err := r.q.Query(context.Background(),
		storeSelect+` WHERE deleted_at IS NULL ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return r.scanMany(rows)
}

// ListByUser lista as lojas de um dono.
func (r *StoreRepo) ListByUser(userID string) ([]*entity.Store, error) {
	rows, err := r.q.Query(context.Background(),
		storeSelect+` WHERE user_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list stores by user: %w", err)
	}
	return r.scanMany(rows)
}

// Update atualiza os dados cadastrais da loja (CNPJ é imutável).
func (r *StoreRepo) Update(store *entity.Store) error {
	query := `
		UPDATE stores SET name = $2, address_id = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		store.ID, store.Name, store.AddressID, store.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	return nil
}

// SoftDelete marca a loja como removida.
func (r *StoreRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE stores SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete store: %w", err)
	}
	return nil
}

func (r *StoreRepo) scanOne(row pgx.Row) (*entity.Store, error) {
	var s entity.Store
	err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.CNPJ, &s.AddressID,
		&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

func (r *StoreRepo) scanMany(rows pgx.Rows) ([]*entity.Store, error) {
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.CNPJ, &s.AddressID,
			&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// StoreSupplierRepo implementação do porto do vínculo loja↔fornecedor.
type StoreSupplierRepo struct {
	q Querier
}

// NewStoreSupplierRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewStoreSupplierRepository(q Querier) *StoreSupplierRepo {
	return &StoreSupplierRepo{q: q}
}

const linkSelect = `
	SELECT id, store_id, supplier_id, created_at, updated_at, deleted_at
	FROM store_suppliers`

// Create persiste um novo vínculo. Par já vinculado -> ErrDuplicate
// (índice parcial único em (store_id, supplier_id) WHERE deleted_at IS NULL).
func (r *StoreSupplierRepo) Create(link *entity.StoreSupplier) error {
	query := `
		INSERT INTO store_suppliers (id, store_id, supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		link.ID, link.StoreID, link.SupplierID, link.CreatedAt, link.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store supplier link: %w", err)
	}
	return nil
}

// GetActive devolve o vínculo ativo do par, ou (nil, nil) quando não há.
func (r *StoreSupplierRepo) GetActive(storeID, supplierID string) (*entity.StoreSupplier, error) {
	var l entity.StoreSupplier
	err := r.q.QueryRow(context.Background(),
		linkSelect+` WHERE store_id = $1 AND supplier_id = $2 AND deleted_at IS NULL`,
		storeID, supplierID,
	).Scan(&l.ID, &l.StoreID, &l.SupplierID, &l.CreatedAt, &l.UpdatedAt, &l.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store supplier link: %w", err)
	}
	return &l, nil
}

// ListByStore lista os vínculos ativos de uma loja.
func (r *StoreSupplierRepo) ListByStore(storeID string) ([]*entity.StoreSupplier, error) {
	rows, err := r.q.Query(context.Background(),
		linkSelect+` WHERE store_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`, storeID)
	if err != nil {
		return nil, fmt.Errorf("list store supplier links: %w", err)
	}
	defer rows.Close()
	var list []*entity.StoreSupplier
	for rows.Next() {
		var l entity.StoreSupplier
		if err := rows.Scan(&l.ID, &l.StoreID, &l.SupplierID, &l.CreatedAt, &l.UpdatedAt, &l.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan store supplier link: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// SoftDelete desfaz o vínculo (remoção lógica).
func (r *StoreSupplierRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE store_suppliers SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete store supplier link: %w", err)
	}
	return nil
}
