package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/abastece/abastece-api/internal/domain/entity"
	"github.com/abastece/abastece-api/internal/domain/repository"
)

var _ repository.AddressRepository = (*AddressRepo)(nil)
var _ repository.AddressExistenceChecker = (*AddressRepo)(nil)

// AddressRepo implementação do porto AddressRepository sobre PostgreSQL.
type AddressRepo struct {
	q Querier
}

// NewAddressRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAddressRepository(q Querier) *AddressRepo {
	return &AddressRepo{q: q}
}

const addressSelect = `
	SELECT id, user_id, street, number, complement, district, city, uf, zip_code, created_at, updated_at, deleted_at
	FROM addresses`

// Create persiste um novo endereço.
func (r *AddressRepo) Create(address *entity.Address) error {
	query := `
		INSERT INTO addresses (id, user_id, street, number, complement, district, city, uf, zip_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		address.ID, address.UserID, address.Street, address.Number, address.Complement,
		address.District, address.City, address.UF, address.ZipCode,
		address.CreatedAt, address.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert address: %w", err)
	}
	return nil
}

// GetByID obtém um endereço por ID. Removido = não encontrado.
func (r *AddressRepo) GetByID(id string) (*entity.Address, error) {
	var a entity.Address
	err := r.q.QueryRow(context.Background(),
		addressSelect+` WHERE id = $1 AND deleted_at IS NULL`, id,
	).Scan(&a.ID, &a.UserID, &a.Street, &a.Number, &a.Complement, &a.District, &a.City,
		&a.UF, &a.ZipCode, &a.CreatedAt, &a.UpdatedAt, &a.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get address: %w", err)
	}
	return &a, nil
}

// Exists indica se um endereço ativo com o ID existe.
func (r *AddressRepo) Exists(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM addresses WHERE id = $1 AND deleted_at IS NULL)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check address exists: %w", err)
	}
	return exists, nil
}

// ListByUser lista os endereços ativos de um usuário.
func (r *AddressRepo) ListByUser(userID string) ([]*entity.Address, error) {
	rows, err := r.q.Query(context.Background(),
		addressSelect+` WHERE user_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Address
	for rows.Next() {
		var a entity.Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.Street, &a.Number, &a.Complement, &a.District,
			&a.City, &a.UF, &a.ZipCode, &a.CreatedAt, &a.UpdatedAt, &a.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update atualiza um endereço existente.
func (r *AddressRepo) Update(address *entity.Address) error {
	query := `
		UPDATE addresses SET street = $2, number = $3, complement = $4, district = $5, city = $6, uf = $7, zip_code = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		address.ID, address.Street, address.Number, address.Complement, address.District,
		address.City, address.UF, address.ZipCode, address.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	return nil
}

// SoftDelete marca o endereço como removido.
func (r *AddressRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE addresses SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete address: %w", err)
	}
	return nil
}
