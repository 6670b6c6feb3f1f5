// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofyone/go-gig-desk/internal/logger"
	"github.com/sofyone/go-gig-desk/internal/store"
	"github.com/sofyone/go-gig-desk/internal/validators"
	"github.com/sofyone/go-gig-desk/models"
)

func validOrder() models.Order {
	return models.Order{
		CustomerName:   "Acme GmbH",
		WhatsappNumber: "+491701234567",
		ServiceID:      3,
		Brief:          "Landing page redesign",
		Deadline:       time.Date(2026, time.April, 20, 0, 0, 0, 0, time.UTC),
		Price:          150000,
	}
}

// ─────────────────────────────────────────────
// CreateOrder
// ─────────────────────────────────────────────

func TestOrderService_CreateOrder_DefaultsStatusAndTransactionNumber(t *testing.T) {
	var stored models.Order
	repo := &mockOrderRepository{
		createFn: func(_ context.Context, order models.Order) (models.Order, error) {
			stored = order
			order.OrderID = 1
			return order, nil
		},
	}
	svc := NewOrderService(repo, validators.NewOrderValidator(), logger.Nop())

	created, err := svc.CreateOrder(context.Background(), validOrder())

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.OrderID)
	assert.Equal(t, models.OrderStatusInQueue, stored.Status)
	assert.NotEmpty(t, stored.TransactionNumber)
}

func TestOrderService_CreateOrder_KeepsExplicitStatus(t *testing.T) {
	var stored models.Order
	repo := &mockOrderRepository{
		createFn: func(_ context.Context, order models.Order) (models.Order, error) {
			stored = order
			return order, nil
		},
	}
	svc := NewOrderService(repo, validators.NewOrderValidator(), logger.Nop())

	order := validOrder()
	order.Status = models.OrderStatusInProgress
	order.TransactionNumber = "TXN-100"

	_, err := svc.CreateOrder(context.Background(), order)

	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusInProgress, stored.Status)
	assert.Equal(t, "TXN-100", stored.TransactionNumber)
}

func TestOrderService_CreateOrder_InvalidData(t *testing.T) {
	svc := NewOrderService(&mockOrderRepository{}, validators.NewOrderValidator(), logger.Nop())

	order := validOrder()
	order.CustomerName = "  "

	_, err := svc.CreateOrder(context.Background(), order)

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyCustomer)
}

// ─────────────────────────────────────────────
// ListOrders
// ─────────────────────────────────────────────

func TestOrderService_ListOrders_PassesFilter(t *testing.T) {
	repo := &mockOrderRepository{
		listFn: func(_ context.Context, filter store.OrderFilter) ([]models.Order, error) {
			assert.Equal(t, models.OrderStatusDone, filter.Status)
			assert.Equal(t, int64(3), filter.ServiceID)
			return []models.Order{{OrderID: 1}}, nil
		},
	}
	svc := NewOrderService(repo, validators.NewOrderValidator(), logger.Nop())

	orders, err := svc.ListOrders(context.Background(), store.OrderFilter{
		Status:    models.OrderStatusDone,
		ServiceID: 3,
	})

	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderService_ListOrders_UnknownStatusRejected(t *testing.T) {
	svc := NewOrderService(&mockOrderRepository{}, validators.NewOrderValidator(), logger.Nop())

	_, err := svc.ListOrders(context.Background(), store.OrderFilter{Status: "shipped"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// UpdateOrder / DeleteOrder
// ─────────────────────────────────────────────

func TestOrderService_UpdateOrder_NotFoundPassthrough(t *testing.T) {
	repo := &mockOrderRepository{
		updateFn: func(_ context.Context, _ models.Order) (models.Order, error) {
			return models.Order{}, store.ErrOrderNotFound
		},
	}
	svc := NewOrderService(repo, validators.NewOrderValidator(), logger.Nop())

	order := validOrder()
	order.OrderID = 99
	order.Status = models.OrderStatusDone

	_, err := svc.UpdateOrder(context.Background(), order)

	assert.ErrorIs(t, err, store.ErrOrderNotFound)
}

func TestOrderService_DeleteOrder_Success(t *testing.T) {
	var deleted int64
	repo := &mockOrderRepository{
		deleteFn: func(_ context.Context, orderID int64) error {
			deleted = orderID
			return nil
		},
	}
	svc := NewOrderService(repo, validators.NewOrderValidator(), logger.Nop())

	err := svc.DeleteOrder(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)
}
