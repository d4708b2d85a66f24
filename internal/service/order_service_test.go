package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if tx, ok := args.Get(0).(pgx.Tx); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	args := m.Called(ctx, tx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error {
	args := m.Called(ctx, tx, items)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.Order), args.Get(1).([]model.OrderItem), args.Error(2)
}

func (m *MockOrderRepository) List(ctx context.Context, status model.OrderStatus, limit, offset int) ([]model.Order, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockTx is a minimal mock implementation of pgx.Tx for testing.
type MockTx struct {
	mock.Mock
	committed  bool
	rolledBack bool
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	m.committed = true
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	m.rolledBack = true
	return args.Error(0)
}

// Stub methods to satisfy pgx.Tx interface - these are not used in our tests
func (m *MockTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *MockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (m *MockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (m *MockTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (m *MockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (m *MockTx) Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error) {
	return
}
func (m *MockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (m *MockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (m *MockTx) Conn() *pgx.Conn                                               { return nil }

func validCheckoutRequest() *model.CheckoutRequest {
	return &model.CheckoutRequest{
		Items: []model.CheckoutItem{
			{ProductID: "pideh-classic", Quantity: 2},
			{ProductID: "drink-cola", Quantity: 1},
		},
		CustomerName:  "Anna",
		Address:       "12 Abovyan St, Yerevan",
		Phone:         "+37491234567",
		PaymentMethod: model.PaymentCash,
	}
}

func TestOrderService_Checkout_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := validCheckoutRequest()
	products := testCatalogue()

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

	mockProductRepo.On("GetByIDs", ctx, []string{"pideh-classic", "drink-cola"}).
		Return(products, nil)
	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderItems", ctx, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)

	resp, err := service.Checkout(ctx, req)

	require.NoError(t, err)
	require.NotNil(t, resp)

	// 2 x 1950 + 1 x 500, recomputed from the catalogue
	assert.Equal(t, 4400, resp.Total)
	assert.Equal(t, model.StatusPending, resp.Status)
	assert.Equal(t, req.Address, resp.Address)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 1950, resp.Items[0].Price)
	assert.Equal(t, 500, resp.Items[1].Price)
	assert.Equal(t, products, resp.Products)

	assert.True(t, mockTx.committed)
	assert.False(t, mockTx.rolledBack)

	mockOrderRepo.AssertExpectations(t)
	mockProductRepo.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}

func TestOrderService_Checkout_ClientTotalIgnored(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	// The client claims a total that disagrees with catalogue prices. The
	// stored order must carry the recomputed total.
	req := validCheckoutRequest()
	req.Total = 1
	req.Items[0].Price = 1

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

	mockProductRepo.On("GetByIDs", ctx, mock.Anything).Return(testCatalogue(), nil)
	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).
		Run(func(args mock.Arguments) {
			order := args.Get(2).(*model.Order)
			assert.Equal(t, 4400, order.Total)
		}).
		Return(nil)
	mockOrderRepo.On("CreateOrderItems", ctx, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)

	resp, err := service.Checkout(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, 4400, resp.Total)
	mockOrderRepo.AssertExpectations(t)
}

func TestOrderService_Checkout_UnknownProduct(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := validCheckoutRequest()
	req.Items = append(req.Items, model.CheckoutItem{ProductID: "pideh-unknown", Quantity: 1})

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)

	service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

	mockProductRepo.On("GetByIDs", ctx, mock.Anything).Return(testCatalogue(), nil)

	resp, err := service.Checkout(ctx, req)

	assert.ErrorIs(t, err, model.ErrProductNotFound)
	assert.Nil(t, resp)
	mockOrderRepo.AssertNotCalled(t, "BeginTx")
}

func TestOrderService_Checkout_UnavailableProduct(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	products := testCatalogue()
	products[1].IsAvailable = false

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)

	service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

	mockProductRepo.On("GetByIDs", ctx, mock.Anything).Return(products, nil)

	resp, err := service.Checkout(ctx, validCheckoutRequest())

	assert.ErrorIs(t, err, model.ErrProductUnavailable)
	assert.Nil(t, resp)
	mockOrderRepo.AssertNotCalled(t, "BeginTx")
}

func TestOrderService_Checkout_Validation(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(req *model.CheckoutRequest) *model.CheckoutRequest
		wantErr error
		wantMsg string
	}{
		{
			name:    "Nil request",
			mutate:  func(req *model.CheckoutRequest) *model.CheckoutRequest { return nil },
			wantMsg: "nil",
		},
		{
			name: "Empty order",
			mutate: func(req *model.CheckoutRequest) *model.CheckoutRequest {
				req.Items = nil
				return req
			},
			wantErr: model.ErrEmptyOrder,
		},
		{
			name: "Missing product ID",
			mutate: func(req *model.CheckoutRequest) *model.CheckoutRequest {
				req.Items[0].ProductID = ""
				return req
			},
			wantMsg: "product ID is required",
		},
		{
			name: "Zero quantity",
			mutate: func(req *model.CheckoutRequest) *model.CheckoutRequest {
				req.Items[0].Quantity = 0
				return req
			},
			wantErr: model.ErrInvalidQuantity,
		},
		{
			name: "Negative quantity",
			mutate: func(req *model.CheckoutRequest) *model.CheckoutRequest {
				req.Items[1].Quantity = -2
				return req
			},
			wantErr: model.ErrInvalidQuantity,
		},
		{
			name: "Missing address",
			mutate: func(req *model.CheckoutRequest) *model.CheckoutRequest {
				req.Address = "   "
				return req
			},
			wantMsg: "delivery address is required",
		},
		{
			name: "Missing phone",
			mutate: func(req *model.CheckoutRequest) *model.CheckoutRequest {
				req.Phone = ""
				return req
			},
			wantMsg: "contact phone is required",
		},
		{
			name: "Unsupported payment method",
			mutate: func(req *model.CheckoutRequest) *model.CheckoutRequest {
				req.PaymentMethod = "crypto"
				return req
			},
			wantMsg: "unsupported payment method",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrderRepo := new(MockOrderRepository)
			mockProductRepo := new(MockProductRepository)

			service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

			resp, err := service.Checkout(ctx, tt.mutate(validCheckoutRequest()))

			require.Error(t, err)
			assert.Nil(t, resp)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			mockProductRepo.AssertNotCalled(t, "GetByIDs")
			mockOrderRepo.AssertNotCalled(t, "BeginTx")
		})
	}
}

func TestOrderService_Checkout_RollbackOnItemFailure(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

	mockProductRepo.On("GetByIDs", ctx, mock.Anything).Return(testCatalogue(), nil)
	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderItems", ctx, mockTx, mock.AnythingOfType("[]model.OrderItem")).
		Return(errors.New("insert failed"))
	mockTx.On("Rollback", ctx).Return(nil)

	resp, err := service.Checkout(ctx, validCheckoutRequest())

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, mockTx.rolledBack)
	assert.False(t, mockTx.committed)
	mockTx.AssertExpectations(t)
}

func TestOrderService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	orderID := uuid.New()
	order := &model.Order{
		ID:        orderID,
		Status:    model.StatusPending,
		Total:     4400,
		Address:   "12 Abovyan St, Yerevan",
		Phone:     "+37491234567",
		CreatedAt: time.Now(),
	}
	items := []model.OrderItem{
		{ID: uuid.New(), OrderID: orderID, ProductID: "pideh-classic", Quantity: 2, Price: 1950},
		{ID: uuid.New(), OrderID: orderID, ProductID: "drink-cola", Quantity: 1, Price: 500},
	}

	t.Run("Order found", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		mockProductRepo := new(MockProductRepository)

		service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

		mockOrderRepo.On("GetByID", ctx, orderID).Return(order, items, nil)
		mockProductRepo.On("GetByIDs", ctx, []string{"pideh-classic", "drink-cola"}).
			Return(testCatalogue(), nil)

		resp, err := service.GetByID(ctx, orderID)

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, orderID, resp.ID)
		assert.Equal(t, 4400, resp.Total)
		assert.Len(t, resp.Items, 2)
		assert.Len(t, resp.Products, 2)
		mockOrderRepo.AssertExpectations(t)
		mockProductRepo.AssertExpectations(t)
	})

	t.Run("Order not found", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		mockProductRepo := new(MockProductRepository)

		service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

		mockOrderRepo.On("GetByID", ctx, orderID).Return(nil, nil, nil)

		resp, err := service.GetByID(ctx, orderID)

		require.NoError(t, err)
		assert.Nil(t, resp)
		mockProductRepo.AssertNotCalled(t, "GetByIDs")
	})
}

func TestOrderService_List(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	orders := []model.Order{
		{ID: uuid.New(), Status: model.StatusPending, Total: 4400, CreatedAt: time.Now()},
		{ID: uuid.New(), Status: model.StatusDelivered, Total: 950, CreatedAt: time.Now().Add(-time.Hour)},
	}

	t.Run("Defaults applied", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		mockProductRepo := new(MockProductRepository)

		service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

		mockOrderRepo.On("List", ctx, model.OrderStatus(""), 20, 0).Return(orders, nil)

		got, err := service.List(ctx, "", 0, -1)

		require.NoError(t, err)
		assert.Len(t, got, 2)
		mockOrderRepo.AssertExpectations(t)
	})

	t.Run("Status filter passed through", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		mockProductRepo := new(MockProductRepository)

		service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

		mockOrderRepo.On("List", ctx, model.StatusPending, 100, 0).Return(orders[:1], nil)

		got, err := service.List(ctx, model.StatusPending, 500, 0)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		mockOrderRepo.AssertExpectations(t)
	})

	t.Run("Unknown status rejected", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		mockProductRepo := new(MockProductRepository)

		service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

		got, err := service.List(ctx, "SHIPPED", 20, 0)

		assert.ErrorIs(t, err, model.ErrInvalidStatus)
		assert.Nil(t, got)
		mockOrderRepo.AssertNotCalled(t, "List")
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	orderID := uuid.New()

	tests := []struct {
		name      string
		status    model.OrderStatus
		mockError error
		wantErr   error
		repoCall  bool
	}{
		{
			name:     "Valid transition",
			status:   model.StatusConfirmed,
			repoCall: true,
		},
		{
			name:    "Unknown status",
			status:  "SHIPPED",
			wantErr: model.ErrInvalidStatus,
		},
		{
			name:      "Order not found",
			status:    model.StatusConfirmed,
			mockError: model.ErrOrderNotFound,
			wantErr:   model.ErrOrderNotFound,
			repoCall:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrderRepo := new(MockOrderRepository)
			mockProductRepo := new(MockProductRepository)

			service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

			if tt.repoCall {
				mockOrderRepo.On("UpdateStatus", ctx, orderID, tt.status).Return(tt.mockError)
			}

			err := service.UpdateStatus(ctx, orderID, tt.status)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			mockOrderRepo.AssertExpectations(t)
		})
	}
}
