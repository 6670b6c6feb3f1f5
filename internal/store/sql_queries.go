package store

import (
	"github.com/Masterminds/squirrel"
	"github.com/sofyone/go-gig-desk/models"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash, profile_image)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, name, email, password_hash, profile_image, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, profile_image, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password_hash, profile_image, created_at
    FROM users
    WHERE user_id = $1;`

	createOrder = `INSERT INTO orders (transaction_number, customer_name, whatsapp_number, service_id, brief, uploaded_file, deadline, price, status)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING order_id, transaction_number, customer_name, whatsapp_number, service_id, brief, uploaded_file, deadline, price, status, created_at;`

	getOrder = `SELECT order_id, transaction_number, customer_name, whatsapp_number, service_id, brief, uploaded_file, deadline, price, status, created_at
    FROM orders
    WHERE order_id = $1;`

	updateOrder = `UPDATE orders
    SET customer_name = $2, whatsapp_number = $3, service_id = $4, brief = $5, uploaded_file = $6, deadline = $7, price = $8, status = $9
    WHERE order_id = $1
    RETURNING order_id, transaction_number, customer_name, whatsapp_number, service_id, brief, uploaded_file, deadline, price, status, created_at;`

	deleteOrder = `DELETE FROM orders WHERE order_id = $1;`

	countOrdersByStatus = `SELECT COUNT(*) FROM orders WHERE status = $1;`

	sumPricesByStatusWithin = `SELECT COALESCE(SUM(price), 0)
    FROM orders
    WHERE status = $1 AND deadline >= $2 AND deadline < $3;`

	earningsByMonth = `SELECT EXTRACT(YEAR FROM deadline)::int AS year, EXTRACT(MONTH FROM deadline)::int AS month, COALESCE(SUM(price), 0) AS total
    FROM orders
    WHERE status = $1
    GROUP BY year, month
    ORDER BY year, month;`

	createCatalogService = `INSERT INTO services (name, image, price, description, revision, working_time, availability)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING service_id, name, image, price, description, revision, working_time, availability;`

	getCatalogService = `SELECT service_id, name, image, price, description, revision, working_time, availability
    FROM services
    WHERE service_id = $1;`

	listCatalogServices = `SELECT service_id, name, image, price, description, revision, working_time, availability
    FROM services
    ORDER BY service_id;`

	updateCatalogService = `UPDATE services
    SET name = $2, image = $3, price = $4, description = $5, revision = $6, working_time = $7, availability = $8
    WHERE service_id = $1
    RETURNING service_id, name, image, price, description, revision, working_time, availability;`

	deleteCatalogService = `DELETE FROM services WHERE service_id = $1;`

	countCatalogServices = `SELECT COUNT(*) FROM services;`
)

// psql is the shared squirrel statement builder configured for
// PostgreSQL-style $N placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// buildListOrdersQuery builds the order list SELECT, narrowing by the
// optional status and service filters.
func buildListOrdersQuery(filter OrderFilter) (string, []any, error) {
	q := psql.
		Select("order_id", "transaction_number", "customer_name", "whatsapp_number", "service_id", "brief", "uploaded_file", "deadline", "price", "status", "created_at").
		From("orders").
		OrderBy("order_id")

	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.ServiceID != 0 {
		q = q.Where(squirrel.Eq{"service_id": filter.ServiceID})
	}

	return q.ToSql()
}

// buildUpdateUserQuery builds a partial UPDATE over the users table from
// the non-nil fields of update. Returns ErrBuildingSQLQuery when the
// update carries no fields at all.
func buildUpdateUserQuery(update models.UserUpdate) (string, []any, error) {
	q := psql.Update("users").Where(squirrel.Eq{"user_id": update.UserID})

	changed := false
	if update.Name != nil {
		q = q.Set("name", *update.Name)
		changed = true
	}
	if update.Email != nil {
		q = q.Set("email", *update.Email)
		changed = true
	}
	if update.ProfileImage != nil {
		q = q.Set("profile_image", *update.ProfileImage)
		changed = true
	}
	if update.PasswordHash != nil {
		q = q.Set("password_hash", *update.PasswordHash)
		changed = true
	}

	if !changed {
		return "", nil, ErrBuildingSQLQuery
	}

	q = q.Suffix("RETURNING user_id, name, email, password_hash, profile_image, created_at")

	return q.ToSql()
}
