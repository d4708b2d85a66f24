package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/model"
	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// Checkout persists a checkout submission as a new order. The submitted
// prices and total are advisory; unit prices are copied from the catalogue
// at this moment and the total recomputed, so the stored order never depends
// on client-side arithmetic. Once written, item prices are immutable.
func (s *orderService) Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.OrderResponse, error) {
	if err := s.validateCheckoutRequest(req); err != nil {
		return nil, err
	}

	productIDs := make([]string, len(req.Items))
	for i, item := range req.Items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to retrieve products for checkout")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	total := 0
	for _, item := range req.Items {
		p, ok := byID[item.ProductID]
		if !ok {
			s.logger.Warn().
				Str("product_id", item.ProductID).
				Msg("checkout references unknown product")
			return nil, model.ErrProductNotFound
		}
		if !p.IsAvailable {
			s.logger.Warn().
				Str("product_id", item.ProductID).
				Msg("checkout references unavailable product")
			return nil, model.ErrProductUnavailable
		}
		total += p.Price * item.Quantity
	}

	if req.Total != 0 && req.Total != total {
		s.logger.Warn().
			Int("client_total", req.Total).
			Int("server_total", total).
			Msg("client total disagrees with catalogue prices, using server total")
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	now := time.Now()
	order := &model.Order{
		ID:            uuid.New(),
		CustomerName:  req.CustomerName,
		Status:        model.StatusPending,
		Total:         total,
		Address:       req.Address,
		Phone:         req.Phone,
		DeliveryTime:  req.DeliveryTime,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	orderItems := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		orderItems[i] = model.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     byID[item.ProductID].Price,
		}
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(orderItems)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int("item_count", len(orderItems)).
		Int("total", total).
		Msg("order created successfully")

	return &model.OrderResponse{
		ID:            order.ID,
		Status:        order.Status,
		Total:         order.Total,
		Address:       order.Address,
		Phone:         order.Phone,
		DeliveryTime:  order.DeliveryTime,
		PaymentMethod: order.PaymentMethod,
		Notes:         order.Notes,
		CreatedAt:     order.CreatedAt,
		Items:         orderItems,
		Products:      products,
	}, nil
}

// GetByID retrieves an order by its ID with all items and product details.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return nil, nil
	}

	productIDs := make([]string, len(items))
	for i, item := range items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to retrieve product details")
		return nil, fmt.Errorf("failed to retrieve product details: %w", err)
	}

	return &model.OrderResponse{
		ID:            order.ID,
		Status:        order.Status,
		Total:         order.Total,
		Address:       order.Address,
		Phone:         order.Phone,
		DeliveryTime:  order.DeliveryTime,
		PaymentMethod: order.PaymentMethod,
		Notes:         order.Notes,
		CreatedAt:     order.CreatedAt,
		Items:         items,
		Products:      products,
	}, nil
}

// List retrieves orders, newest first, optionally filtered by status.
func (s *orderService) List(ctx context.Context, status model.OrderStatus, limit, offset int) ([]model.Order, error) {
	if status != "" && !model.ValidStatus(status) {
		return nil, model.ErrInvalidStatus
	}

	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	orders, err := s.orderRepo.List(ctx, status, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Str("status", string(status)).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// UpdateStatus moves an order to a new status.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error {
	if !model.ValidStatus(status) {
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("status", string(status)).
			Msg("invalid order status")
		return model.ErrInvalidStatus
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		if err == model.ErrOrderNotFound {
			return err
		}
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return fmt.Errorf("failed to update order status: %w", err)
	}

	return nil
}

// validateCheckoutRequest validates the checkout submission.
func (s *orderService) validateCheckoutRequest(req *model.CheckoutRequest) error {
	if req == nil {
		return fmt.Errorf("checkout request is nil")
	}

	if len(req.Items) == 0 {
		return model.ErrEmptyOrder
	}

	for i, item := range req.Items {
		if item.ProductID == "" {
			return fmt.Errorf("item %d: product ID is required", i)
		}

		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("product_id", item.ProductID).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}
	}

	if strings.TrimSpace(req.Address) == "" {
		return fmt.Errorf("delivery address is required")
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("contact phone is required")
	}

	switch req.PaymentMethod {
	case model.PaymentCash, model.PaymentCard:
	default:
		return fmt.Errorf("unsupported payment method: %s", req.PaymentMethod)
	}

	return nil
}
