package router

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"waterdrops/config"
	"waterdrops/internal/delivery/api/middleware"
	"waterdrops/internal/delivery/api/response"
	"waterdrops/internal/delivery/api/router/handler"
	"waterdrops/internal/delivery/api/validator"
	deliverycontext "waterdrops/internal/delivery/context"
	"waterdrops/internal/domain/entity"
	domainerrors "waterdrops/internal/domain/errors"
	mockUsecase "waterdrops/internal/mocks/usecase"
	"waterdrops/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testID = "64b7f0c2a1b2c3d4e5f60718"

type routerFixtures struct {
	e         *echo.Echo
	healthUC  *mockUsecase.MockHealthUsecase
	productUC *mockUsecase.MockProductUsecase
	reviewUC  *mockUsecase.MockReviewUsecase
	orderUC   *mockUsecase.MockOrderUsecase
	userUC    *mockUsecase.MockUserUsecase
}

func newEcho(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}

func createTestRouter(t *testing.T, adminGuard bool) routerFixtures {
	logger := slog.Default()
	cfg := &config.Config{Auth: &config.AuthConfig{}}
	cfg.Auth.AdminGuard.Enabled = adminGuard

	fx := routerFixtures{
		e:         newEcho(logger),
		healthUC:  mockUsecase.NewMockHealthUsecase(t),
		productUC: mockUsecase.NewMockProductUsecase(t),
		reviewUC:  mockUsecase.NewMockReviewUsecase(t),
		orderUC:   mockUsecase.NewMockOrderUsecase(t),
		userUC:    mockUsecase.NewMockUserUsecase(t),
	}

	adminMW := middleware.NewAdminMiddleware(middleware.AdminMiddlewareParams{
		UserUC: fx.userUC,
		Config: cfg,
		Logger: logger,
	})

	NewRouter(RouterParams{
		HealthHandler:   handler.NewHealthHandler(handler.HealthHandlerParams{HealthUC: fx.healthUC}),
		ProductHandler:  handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: fx.productUC, Logger: logger}),
		ReviewHandler:   handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: fx.reviewUC}),
		OrderHandler:    handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: fx.orderUC, Logger: logger}),
		UserHandler:     handler.NewUserHandler(handler.UserHandlerParams{UserUC: fx.userUC, AdminGuard: adminMW}),
		AdminMiddleware: adminMW,
	}).RegisterRoutes(fx.e)

	return fx
}

func serve(e *echo.Echo, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func TestRouter_Root(t *testing.T) {
	fx := createTestRouter(t, false)

	rec := serve(fx.e, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Water Drops Server", rec.Body.String())
}

func TestRouter_Health(t *testing.T) {
	fx := createTestRouter(t, false)

	fx.healthUC.EXPECT().Check(mock.Anything).Return(nil).Once()
	rec := serve(fx.e, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	fx.healthUC.EXPECT().Check(mock.Anything).Return(domainerrors.ErrStoreUnavailable).Once()
	rec = serve(fx.e, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_ListProducts_Size(t *testing.T) {
	tests := []struct {
		query string
		limit int64
	}{
		{query: "", limit: 0},
		{query: "?size=3", limit: 3},
		{query: "?size=3abc", limit: 3},
		{query: "?size=abc", limit: 0},
		{query: "?size=0", limit: 0},
		{query: "?size=-2", limit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			fx := createTestRouter(t, false)
			fx.productUC.EXPECT().ListProducts(mock.Anything, tt.limit).Return([]*entity.Product{}, nil)

			rec := serve(fx.e, http.MethodGet, "/products"+tt.query, "", nil)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `[]`, rec.Body.String())
		})
	}
}

func TestRouter_GetProduct(t *testing.T) {
	fx := createTestRouter(t, false)

	fx.productUC.EXPECT().GetProduct(mock.Anything, testID).
		Return(&entity.Product{ID: testID, Name: "Bottle", Price: 12.5, Image: "bottle.png"}, nil)

	rec := serve(fx.e, http.MethodGet, "/products/"+testID, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"_id":"`+testID+`","name":"Bottle","price":12.5,"img":"bottle.png"}`, rec.Body.String())
}

func TestRouter_GetProduct_UnknownIsNull(t *testing.T) {
	fx := createTestRouter(t, false)

	fx.productUC.EXPECT().GetProduct(mock.Anything, testID).Return(nil, nil)

	rec := serve(fx.e, http.MethodGet, "/products/"+testID, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `null`, rec.Body.String())
}

func TestRouter_GetProduct_InvalidID(t *testing.T) {
	fx := createTestRouter(t, false)

	fx.productUC.EXPECT().GetProduct(mock.Anything, "xyz").
		Return(nil, domainerrors.ErrInvalidID.WithDetails("xyz"))

	rec := serve(fx.e, http.MethodGet, "/products/xyz", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", errorCode(t, rec))
}

func TestRouter_CreateProduct(t *testing.T) {
	fx := createTestRouter(t, false)

	fx.productUC.EXPECT().
		CreateProduct(mock.Anything, &entity.Product{Name: "Bottle", Price: 12.5}).
		Return(&entity.InsertResult{Acknowledged: true, InsertedID: testID}, nil)

	rec := serve(fx.e, http.MethodPost, "/products", `{"name":"Bottle","price":12.5,"extra":"dropped"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"insertedId":"`+testID+`"}`, rec.Body.String())
}

func TestRouter_CreateProduct_Invalid(t *testing.T) {
	fx := createTestRouter(t, false)

	rec := serve(fx.e, http.MethodPost, "/products", `{"price":-1}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))

	rec = serve(fx.e, http.MethodPost, "/products", `{"name":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", errorCode(t, rec))
}

func TestRouter_DeleteProduct(t *testing.T) {
	fx := createTestRouter(t, false)

	fx.productUC.EXPECT().DeleteProduct(mock.Anything, testID).
		Return(&entity.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil)

	rec := serve(fx.e, http.MethodDelete, "/products/"+testID, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, rec.Body.String())
}

func TestRouter_Reviews(t *testing.T) {
	fx := createTestRouter(t, false)

	fx.reviewUC.EXPECT().
		CreateReview(mock.Anything, &entity.Review{Name: "Ana", Rating: 5, Comment: "Great"}).
		Return(&entity.InsertResult{Acknowledged: true, InsertedID: testID}, nil)
	fx.reviewUC.EXPECT().ListReviews(mock.Anything).
		Return([]*entity.Review{{ID: testID, Name: "Ana", Rating: 5, Comment: "Great"}}, nil)

	rec := serve(fx.e, http.MethodPost, "/reviews", `{"name":"Ana","rating":5,"comment":"Great"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(fx.e, http.MethodGet, "/reviews", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"_id":"`+testID+`","name":"Ana","rating":5,"comment":"Great"}]`, rec.Body.String())

	rec = serve(fx.e, http.MethodPost, "/reviews", `{"name":"Ana","rating":9,"comment":"Great"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}

func TestRouter_Orders(t *testing.T) {
	fx := createTestRouter(t, false)

	fx.orderUC.EXPECT().
		PlaceOrder(mock.Anything, &entity.Order{Email: "a@x.com", ProductID: testID}).
		Return(&entity.InsertResult{Acknowledged: true, InsertedID: testID}, nil)
	fx.orderUC.EXPECT().ListOrders(mock.Anything).Return([]*entity.Order{}, nil)
	fx.orderUC.EXPECT().ListOrdersByEmail(mock.Anything, "a@x.com").Return([]*entity.Order{}, nil)
	fx.orderUC.EXPECT().CancelOrder(mock.Anything, testID).
		Return(&entity.DeleteResult{Acknowledged: true}, nil)

	rec := serve(fx.e, http.MethodPost, "/orders", `{"email":"a@x.com","productId":"`+testID+`"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(fx.e, http.MethodGet, "/orders", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(fx.e, http.MethodGet, "/orders/by-email/a%40x.com", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(fx.e, http.MethodDelete, "/orders/"+testID, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":0}`, rec.Body.String())
}

func TestRouter_PlaceOrder_RequiresEmail(t *testing.T) {
	fx := createTestRouter(t, false)

	rec := serve(fx.e, http.MethodPost, "/orders", `{"productId":"`+testID+`"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}

func TestRouter_UpdateOrderStatus_Upsert(t *testing.T) {
	fx := createTestRouter(t, false)

	upserted := testID
	fx.orderUC.EXPECT().UpdateOrderStatus(mock.Anything, testID, entity.OrderStatus("shipped")).
		Return(&entity.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &upserted}, nil)

	rec := serve(fx.e, http.MethodPut, "/orders/"+testID, `{"orderStatus":"shipped"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"matchedCount":0,"modifiedCount":0,"upsertedCount":1,"upsertedId":"`+testID+`"}`, rec.Body.String())
}

func TestRouter_StoreTimeout(t *testing.T) {
	fx := createTestRouter(t, false)

	fx.orderUC.EXPECT().ListOrders(mock.Anything).Return(nil, domainerrors.ErrStoreTimeout.WrapMessage("find orders"))

	rec := serve(fx.e, http.MethodGet, "/orders", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "STORE_TIMEOUT", errorCode(t, rec))
}

func TestRouter_Users(t *testing.T) {
	fx := createTestRouter(t, false)

	fx.userUC.EXPECT().
		RegisterUser(mock.Anything, &entity.User{Email: "a@x.com", DisplayName: "Ana"}).
		Return(&entity.InsertResult{Acknowledged: true, InsertedID: testID}, nil)
	fx.userUC.EXPECT().CheckAdmin(mock.Anything, "a@x.com").Return(&usecase.AdminStatus{Admin: false}, nil)
	fx.userUC.EXPECT().PromoteToAdmin(mock.Anything, "a@x.com").
		Return(&entity.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)

	rec := serve(fx.e, http.MethodPost, "/users", `{"email":"a@x.com","displayName":"Ana"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(fx.e, http.MethodGet, "/users/a@x.com", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"admin":false}`, rec.Body.String())

	rec = serve(fx.e, http.MethodPut, "/users/admin", `{"email":"a@x.com"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"matchedCount":1,"modifiedCount":1,"upsertedCount":0,"upsertedId":null}`, rec.Body.String())
}

func TestRouter_AdminGuard(t *testing.T) {
	fx := createTestRouter(t, true)

	rec := serve(fx.e, http.MethodDelete, "/products/"+testID, "", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, rec))

	fx.userUC.EXPECT().CheckAdmin(mock.Anything, "boss@x.com").Return(&usecase.AdminStatus{Admin: true}, nil)
	fx.productUC.EXPECT().DeleteProduct(mock.Anything, testID).
		Return(&entity.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil)

	rec = serve(fx.e, http.MethodDelete, "/products/"+testID, "", map[string]string{
		deliverycontext.HeaderXUserEmail: "boss@x.com",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	// Reads stay public.
	fx.productUC.EXPECT().ListProducts(mock.Anything, int64(0)).Return([]*entity.Product{}, nil)
	rec = serve(fx.e, http.MethodGet, "/products", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_AdminGuard_RegisterAdminRequiresAdmin(t *testing.T) {
	fx := createTestRouter(t, true)

	fx.userUC.EXPECT().CheckAdmin(mock.Anything, "mallory@x.com").Return(&usecase.AdminStatus{}, nil)
	rec := serve(fx.e, http.MethodPost, "/users", `{"email":"mallory@x.com","role":"admin"}`, map[string]string{
		deliverycontext.HeaderXUserEmail: "mallory@x.com",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, rec))

	rec = serve(fx.e, http.MethodPost, "/users", `{"email":"mallory@x.com","role":"admin"}`, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Plain accounts need no caller.
	fx.userUC.EXPECT().
		RegisterUser(mock.Anything, &entity.User{Email: "mallory@x.com", Role: entity.RoleUser}).
		Return(&entity.InsertResult{Acknowledged: true, InsertedID: testID}, nil)
	rec = serve(fx.e, http.MethodPost, "/users", `{"email":"mallory@x.com","role":"user"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	fx.userUC.EXPECT().CheckAdmin(mock.Anything, "boss@x.com").Return(&usecase.AdminStatus{Admin: true}, nil)
	fx.userUC.EXPECT().
		RegisterUser(mock.Anything, &entity.User{Email: "ops@x.com", Role: entity.RoleAdmin}).
		Return(&entity.InsertResult{Acknowledged: true, InsertedID: testID}, nil)
	rec = serve(fx.e, http.MethodPost, "/users", `{"email":"ops@x.com","role":"admin"}`, map[string]string{
		deliverycontext.HeaderXUserEmail: "boss@x.com",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_EmailParamDecodedOnce(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{name: "plain", target: "/users/a@x.com", want: "a@x.com"},
		{name: "escaped at sign", target: "/users/a%40x.com", want: "a@x.com"},
		{name: "escaped percent", target: "/users/x%2541@y.com", want: "x%41@y.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRouter(t, false)
			fx.userUC.EXPECT().CheckAdmin(mock.Anything, tt.want).Return(&usecase.AdminStatus{}, nil)

			rec := serve(fx.e, http.MethodGet, tt.target, "", nil)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"admin":false}`, rec.Body.String())
		})
	}
}

func TestRouter_EmailParamValidated(t *testing.T) {
	fx := createTestRouter(t, false)

	for _, target := range []string{"/orders/by-email/", "/users/", "/users/admin", "/orders/by-email/not-an-email"} {
		rec := serve(fx.e, http.MethodGet, target, "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec), target)
	}
}
