package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/abastece/abastece-api/internal/domain/entity"
	"github.com/abastece/abastece-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementação do porto OrderRepository sobre PostgreSQL.
// Usado com pool nas leituras e com tx dentro do TxRunner na criação.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderSelect = `
	SELECT id, store_id, user_id, supplier_id, total, description, status, payment_method,
	       delivery_term_days, campaign_id, shipped_at, delivered_at, created_at, updated_at, deleted_at
	FROM orders`

// Create persiste a cabeça do pedido. Os itens vão por CreateItem na mesma transação.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, store_id, user_id, supplier_id, total, description, status, payment_method, delivery_term_days, campaign_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.StoreID, order.UserID, order.SupplierID, order.Total, order.Description,
		order.Status, order.PaymentMethod, order.DeliveryTermDays, order.CampaignID,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem persiste uma linha do pedido.
func (r *OrderRepo) CreateItem(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, subtotal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal,
		item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtém um pedido por ID. Removido = não encontrado.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	var o entity.Order
	err := r.q.QueryRow(context.Background(),
		orderSelect+` WHERE id = $1 AND deleted_at IS NULL`, id,
	).Scan(&o.ID, &o.StoreID, &o.UserID, &o.SupplierID, &o.Total, &o.Description, &o.Status,
		&o.PaymentMethod, &o.DeliveryTermDays, &o.CampaignID, &o.ShippedAt, &o.DeliveredAt,
		&o.CreatedAt, &o.UpdatedAt, &o.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// GetItemsByOrder lista as linhas de um pedido na ordem de inserção.
func (r *OrderRepo) GetItemsByOrder(orderID string) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price, subtotal, created_at
		FROM order_items WHERE order_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice,
			&it.Subtotal, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// List lista todos os pedidos ativos com paginação (visão administrativa).
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(),
		orderSelect+` WHERE deleted_at IS NULL ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return r.scanMany(rows)
}

// ListByBuyer lista os pedidos feitos por um comprador.
func (r *OrderRepo) ListByBuyer(userID string, limit, offset int) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(),
		orderSelect+` WHERE user_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders by buyer: %w", err)
	}
	return r.scanMany(rows)
}

// ListBySupplierOwner lista os pedidos recebidos pelos fornecedores de um dono.
func (r *OrderRepo) ListBySupplierOwner(userID string, limit, offset int) ([]*entity.Order, error) {
	query := orderSelect + `
		WHERE supplier_id IN (SELECT id FROM suppliers WHERE user_id = $1 AND deleted_at IS NULL)
		  AND deleted_at IS NULL
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders by supplier owner: %w", err)
	}
	return r.scanMany(rows)
}

// Update atualiza status, timestamps do ciclo de vida e updated_at.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders SET status = $2, shipped_at = $3, delivered_at = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Status, order.ShippedAt, order.DeliveredAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// SoftDelete marca o pedido como removido sem tocar no status.
func (r *OrderRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete order: %w", err)
	}
	return nil
}

func (r *OrderRepo) scanMany(rows pgx.Rows) ([]*entity.Order, error) {
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.StoreID, &o.UserID, &o.SupplierID, &o.Total, &o.Description,
			&o.Status, &o.PaymentMethod, &o.DeliveryTermDays, &o.CampaignID, &o.ShippedAt,
			&o.DeliveredAt, &o.CreatedAt, &o.UpdatedAt, &o.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
