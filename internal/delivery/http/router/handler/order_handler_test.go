package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shoply/internal/delivery/http/middleware"
	"shoply/internal/delivery/http/validator"
	"shoply/internal/domain/entity"
	domainerrors "shoply/internal/domain/errors"
	mockUsecase "shoply/internal/mocks/usecase"
	"shoply/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderTestServer(uc usecase.OrderUsecase) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewOrderHandler(uc, logger)
	e.POST("/orders", h.Create)
	e.GET("/orders/:id", h.Get)
	e.PUT("/orders/:id", h.Update)
	e.DELETE("/orders/:id", h.Delete)

	return e
}

func TestOrderHandler_Create_IgnoresClientPricingFields(t *testing.T) {
	uc := &mockUsecase.MockOrderUsecase{}
	e := newOrderTestServer(uc)

	userID := uuid.New()
	productID := uuid.New()

	// The client claims its own title, unitPrice and total; none of them
	// are bound, so the usecase input carries references only.
	body := `{
		"userId": "` + userID.String() + `",
		"total": 0.01,
		"items": [
			{"productId": "` + productID.String() + `", "quantity": 2, "title": "Fake", "unitPrice": 0.01}
		]
	}`

	var captured *usecase.CreateOrderInput
	uc.On("CreateOrder", mock.Anything, mock.AnythingOfType("*usecase.CreateOrderInput")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*usecase.CreateOrderInput)
		}).
		Return(&entity.Order{
			ID:     uuid.New(),
			UserID: userID,
			Items: []entity.OrderLineItem{
				{ProductID: productID, Title: "Widget", UnitPrice: 10.50, Quantity: 2},
			},
			Status: entity.OrderStatusPending,
			Total:  21.00,
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, userID, captured.UserID)
	require.Len(t, captured.Items, 1)
	assert.Equal(t, productID, captured.Items[0].ProductID)
	assert.Equal(t, 2, captured.Items[0].Quantity)

	assert.Contains(t, rec.Body.String(), `"total":21`)
	assert.Contains(t, rec.Body.String(), `"unitPrice":10.5`)
}

func TestOrderHandler_Create_RejectsZeroQuantity(t *testing.T) {
	uc := &mockUsecase.MockOrderUsecase{}
	e := newOrderTestServer(uc)

	body := `{
		"userId": "` + uuid.New().String() + `",
		"items": [{"productId": "` + uuid.New().String() + `", "quantity": 0}]
	}`

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	uc.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestOrderHandler_Create_RejectsEmptyItems(t *testing.T) {
	uc := &mockUsecase.MockOrderUsecase{}
	e := newOrderTestServer(uc)

	body := `{"userId": "` + uuid.New().String() + `", "items": []}`

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestOrderHandler_Create_DuplicateReferenceRendersAs400(t *testing.T) {
	uc := &mockUsecase.MockOrderUsecase{}
	e := newOrderTestServer(uc)

	productID := uuid.New()
	body := `{
		"userId": "` + uuid.New().String() + `",
		"items": [
			{"productId": "` + productID.String() + `", "quantity": 1},
			{"productId": "` + productID.String() + `", "quantity": 2}
		]
	}`

	uc.On("CreateOrder", mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewDuplicateReferenceError(1, productID))

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "DUPLICATE_REFERENCE")
	assert.Contains(t, rec.Body.String(), "index 1")
}

func TestOrderHandler_Get_MalformedID(t *testing.T) {
	uc := &mockUsecase.MockOrderUsecase{}
	e := newOrderTestServer(uc)

	req := httptest.NewRequest(http.MethodGet, "/orders/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything)
}

func TestOrderHandler_Get_NotFoundRendersAs404(t *testing.T) {
	uc := &mockUsecase.MockOrderUsecase{}
	e := newOrderTestServer(uc)

	orderID := uuid.New()
	uc.On("GetOrder", mock.Anything, orderID).
		Return(nil, domainerrors.NewNotFoundError(domainerrors.ErrOrderNotFound, orderID))

	req := httptest.NewRequest(http.MethodGet, "/orders/"+orderID.String(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ORDER_NOT_FOUND")
}

func TestOrderHandler_Update_InvalidStatusRejected(t *testing.T) {
	uc := &mockUsecase.MockOrderUsecase{}
	e := newOrderTestServer(uc)

	body := `{
		"userId": "` + uuid.New().String() + `",
		"items": [{"productId": "` + uuid.New().String() + `", "quantity": 1}],
		"status": "teleported"
	}`

	req := httptest.NewRequest(http.MethodPut, "/orders/"+uuid.New().String(), strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "UpdateOrder", mock.Anything, mock.Anything, mock.Anything)
}
