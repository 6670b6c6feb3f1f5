// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"github.com/sofyone/go-gig-desk/internal/logger"
	"github.com/sofyone/go-gig-desk/models"
)

func newTestOrderRepo(t *testing.T) (*orderRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &orderRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func orderColumns() []string {
	return []string{
		"order_id", "transaction_number", "customer_name", "whatsapp_number",
		"service_id", "brief", "uploaded_file", "deadline", "price", "status", "created_at",
	}
}

func TestCreateOrder_Success(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	deadline := time.Date(2026, time.April, 20, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(orderColumns()).
		AddRow(1, "TXN-100", "Acme GmbH", "+491701234567", 3, "Landing page redesign", "",
			deadline, int64(150000), models.OrderStatusInQueue, time.Now())

	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("TXN-100", "Acme GmbH", "+491701234567", int64(3), "Landing page redesign", "",
			deadline, int64(150000), models.OrderStatusInQueue).
		WillReturnRows(rows)

	created, err := repo.CreateOrder(context.Background(), models.Order{
		TransactionNumber: "TXN-100",
		CustomerName:      "Acme GmbH",
		WhatsappNumber:    "+491701234567",
		ServiceID:         3,
		Brief:             "Landing page redesign",
		Deadline:          deadline,
		Price:             150000,
		Status:            models.OrderStatusInQueue,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.OrderID != 1 {
		t.Errorf("expected OrderID=1, got %d", created.OrderID)
	}
}

func TestCreateOrder_DuplicateTransactionNumber(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO orders").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateOrder(context.Background(), models.Order{TransactionNumber: "TXN-100"})
	if !errors.Is(err, ErrTransactionNumberExists) {
		t.Fatalf("expected ErrTransactionNumberExists, got %v", err)
	}
}

func TestCreateOrder_UnknownServiceReference(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO orders").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateOrder(context.Background(), models.Order{ServiceID: 999})
	if !errors.Is(err, ErrCatalogServiceNotFound) {
		t.Fatalf("expected ErrCatalogServiceNotFound, got %v", err)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM orders").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetOrder(context.Background(), 99)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestListOrders_StatusFilter(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(orderColumns()).
		AddRow(1, "TXN-100", "Acme GmbH", "+491701234567", 3, "Brief", "",
			time.Now(), int64(150000), models.OrderStatusDone, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM orders WHERE status").
		WithArgs(models.OrderStatusDone).
		WillReturnRows(rows)

	orders, err := repo.ListOrders(context.Background(), OrderFilter{Status: models.OrderStatusDone})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if orders[0].Status != models.OrderStatusDone {
		t.Errorf("expected status %q, got %q", models.OrderStatusDone, orders[0].Status)
	}
}

func TestDeleteOrder_NotFound(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM orders").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteOrder(context.Background(), 99)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestCountOrdersByStatus(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(models.OrderStatusDone).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(12)))

	count, err := repo.CountOrdersByStatus(context.Background(), models.OrderStatusDone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 12 {
		t.Errorf("expected 12, got %d", count)
	}
}

func TestSumPricesByStatusWithin(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(models.OrderStatusDone, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(int64(150000)))

	total, err := repo.SumPricesByStatusWithin(context.Background(), models.OrderStatusDone, from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 150000 {
		t.Errorf("expected 150000, got %d", total)
	}
}

func TestEarningsByMonth_YearAwareBuckets(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"year", "month", "total"}).
		AddRow(2025, 12, int64(42000)).
		AddRow(2026, 1, int64(31000))

	mock.ExpectQuery("SELECT EXTRACT").
		WithArgs(models.OrderStatusDone).
		WillReturnRows(rows)

	buckets, err := repo.EarningsByMonth(context.Background(), models.OrderStatusDone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Year != 2025 || buckets[0].Month != time.December {
		t.Errorf("unexpected first bucket: %+v", buckets[0])
	}
	if buckets[1].Year != 2026 || buckets[1].Month != time.January {
		t.Errorf("unexpected second bucket: %+v", buckets[1])
	}
}
