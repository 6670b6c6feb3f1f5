package service

import (
	"context"
	"fmt"

	"github.com/sofyone/go-gig-desk/internal/logger"
	"github.com/sofyone/go-gig-desk/internal/store"
	"github.com/sofyone/go-gig-desk/internal/utils"
	"github.com/sofyone/go-gig-desk/internal/validators"
	"github.com/sofyone/go-gig-desk/models"
)

// orderService implements OrderService. It owns order input validation
// and transaction number generation; persistence is delegated to the
// order repository.
type orderService struct {
	orderRepository store.OrderRepository

	orderValidator validators.Validator

	// txnGenerator produces transaction numbers for orders submitted
	// without one.
	txnGenerator *utils.TransactionNumberGenerator

	logger *logger.Logger
}

func NewOrderService(orderRepository store.OrderRepository, orderValidator validators.Validator, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		orderValidator:  orderValidator,
		txnGenerator:    utils.NewTransactionNumberGenerator(),
		logger:          logger,
	}
}

// CreateOrder validates and persists a new order. Orders submitted
// without a status start in the queue; orders submitted without a
// transaction number get a generated one.
func (o *orderService) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	if order.Status == "" {
		order.Status = models.OrderStatusInQueue
	}
	if order.TransactionNumber == "" {
		order.TransactionNumber = o.txnGenerator.Generate()
	}

	if err := o.orderValidator.Validate(ctx, order); err != nil {
		log.Err(err).Str("transactionNumber", order.TransactionNumber).Msg("invalid order data provided")
		return models.Order{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	createdOrder, err := o.orderRepository.CreateOrder(ctx, order)
	if err != nil {
		log.Err(err).Str("transactionNumber", order.TransactionNumber).Msg("order creation ended with error")
		return models.Order{}, fmt.Errorf("order creation ended with error: %w", err)
	}

	return createdOrder, nil
}

func (o *orderService) GetOrder(ctx context.Context, orderID int64) (models.Order, error) {
	log := logger.FromContext(ctx)

	order, err := o.orderRepository.GetOrder(ctx, orderID)
	if err != nil {
		log.Err(err).Int64("orderID", orderID).Msg("order lookup failed")
		return models.Order{}, fmt.Errorf("order lookup failed: %w", err)
	}

	return order, nil
}

// ListOrders returns orders matching the filter, newest deadline first.
// An unknown status value in the filter is rejected before the query.
func (o *orderService) ListOrders(ctx context.Context, filter store.OrderFilter) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	if filter.Status != "" && !models.KnownOrderStatus(filter.Status) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidOrderStatus)
	}

	orders, err := o.orderRepository.ListOrders(ctx, filter)
	if err != nil {
		log.Err(err).Msg("order listing failed")
		return nil, fmt.Errorf("order listing failed: %w", err)
	}

	return orders, nil
}

func (o *orderService) UpdateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	if err := o.orderValidator.Validate(ctx, order); err != nil {
		log.Err(err).Int64("orderID", order.OrderID).Msg("invalid order data provided")
		return models.Order{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updatedOrder, err := o.orderRepository.UpdateOrder(ctx, order)
	if err != nil {
		log.Err(err).Int64("orderID", order.OrderID).Msg("order update failed")
		return models.Order{}, fmt.Errorf("order update failed: %w", err)
	}

	return updatedOrder, nil
}

func (o *orderService) DeleteOrder(ctx context.Context, orderID int64) error {
	log := logger.FromContext(ctx)

	if err := o.orderRepository.DeleteOrder(ctx, orderID); err != nil {
		log.Err(err).Int64("orderID", orderID).Msg("order deletion failed")
		return fmt.Errorf("order deletion failed: %w", err)
	}

	return nil
}
