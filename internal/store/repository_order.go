package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/sofyone/go-gig-desk/internal/logger"
	"github.com/sofyone/go-gig-desk/models"
)

// orderRepository is the PostgreSQL-backed implementation of
// [OrderRepository]: CRUD over the "orders" table plus the read-side
// aggregations behind the dashboard and the earnings chart.
type orderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOrderRepository constructs an [OrderRepository] backed by the provided
// database connection and logger.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

// CreateOrder persists a new order and returns it with server-assigned
// fields (OrderID, CreatedAt).
//
// Error handling:
//   - unique_violation on transaction_number → [ErrTransactionNumberExists].
//   - foreign_key_violation on service_id → [ErrCatalogServiceNotFound].
func (r *orderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createOrder,
		order.TransactionNumber, order.CustomerName, order.WhatsappNumber, order.ServiceID,
		order.Brief, order.UploadedFile, order.Deadline, order.Price, order.Status)

	created, err := scanOrder(row)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error: inserting order")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Order{}, ErrTransactionNumberExists
		case pgerrcode.ForeignKeyViolation:
			return models.Order{}, ErrCatalogServiceNotFound
		default:
			return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetOrder retrieves a single order by its identifier.
func (r *orderRepository) GetOrder(ctx context.Context, orderID int64) (models.Order, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getOrder, orderID)
	found, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, ErrOrderNotFound
		}

		log.Err(err).Str("func", "*orderRepository.GetOrder").Msg("error: scanning order")
		return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListOrders returns all orders matching the filter, ordered by id.
func (r *orderRepository) ListOrders(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListOrdersQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.ListOrders").Msg("error: building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.ListOrders").Msg("error: executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			log.Err(err).Str("func", "*orderRepository.ListOrders").Msg("error: scanning order row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		orders = append(orders, order)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return orders, nil
}

// UpdateOrder replaces the mutable fields of an existing order and returns
// the canonical post-update record. The transaction number is immutable.
func (r *orderRepository) UpdateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateOrder,
		order.OrderID, order.CustomerName, order.WhatsappNumber, order.ServiceID,
		order.Brief, order.UploadedFile, order.Deadline, order.Price, order.Status)

	updated, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, ErrOrderNotFound
		}

		log.Err(err).Str("func", "*orderRepository.UpdateOrder").Msg("error: updating order")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Order{}, ErrCatalogServiceNotFound
		default:
			return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// DeleteOrder removes an order by id. Returns [ErrOrderNotFound] when no
// row was affected.
func (r *orderRepository) DeleteOrder(ctx context.Context, orderID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecWithRetry(ctx, deleteOrder, orderID)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.DeleteOrder").Msg("error: deleting order")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// CountOrdersByStatus returns the number of orders in the given status.
func (r *orderRepository) CountOrdersByStatus(ctx context.Context, status string) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	if err := r.db.QueryRowContext(ctx, countOrdersByStatus, status).Scan(&count); err != nil {
		log.Err(err).Str("func", "*orderRepository.CountOrdersByStatus").Msg("error: counting orders")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// SumPricesByStatusWithin sums prices of orders in the given status whose
// deadline falls in the half-open window [from, to).
func (r *orderRepository) SumPricesByStatusWithin(ctx context.Context, status string, from, to time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	var total int64
	if err := r.db.QueryRowContext(ctx, sumPricesByStatusWithin, status, from, to).Scan(&total); err != nil {
		log.Err(err).Str("func", "*orderRepository.SumPricesByStatusWithin").Msg("error: summing order prices")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// EarningsByMonth returns per-calendar-month price sums of orders in the
// given status, ascending by year then month. Grouping is year-aware:
// January 2025 and January 2026 are distinct buckets.
func (r *orderRepository) EarningsByMonth(ctx context.Context, status string) ([]models.MonthBucket, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, earningsByMonth, status)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.EarningsByMonth").Msg("error: executing earnings query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	buckets := make([]models.MonthBucket, 0)
	for rows.Next() {
		var bucket models.MonthBucket
		var month int
		if err = rows.Scan(&bucket.Year, &month, &bucket.Total); err != nil {
			log.Err(err).Str("func", "*orderRepository.EarningsByMonth").Msg("error: scanning earnings row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		bucket.Month = time.Month(month)
		buckets = append(buckets, bucket)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return buckets, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan logic.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (models.Order, error) {
	var order models.Order
	var uploadedFile sql.NullString

	err := row.Scan(&order.OrderID, &order.TransactionNumber, &order.CustomerName, &order.WhatsappNumber,
		&order.ServiceID, &order.Brief, &uploadedFile, &order.Deadline, &order.Price, &order.Status, &order.CreatedAt)
	if err != nil {
		return models.Order{}, err
	}

	order.UploadedFile = uploadedFile.String
	return order, nil
}
