package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"carbooking/internal/models"
	"carbooking/internal/services"
	"carbooking/internal/themes"
	"carbooking/pkg/email"
	"carbooking/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router   *gin.Engine
	cars     *memCarRepo
	bookings *memBookingRepo
}

func newTestEnv(sender email.Sender, captureStatus string) *testEnv {
	log := logger.NewNop()
	env := &testEnv{cars: newMemCarRepo(), bookings: &memBookingRepo{}}

	notifier := services.NewNotificationService(sender, nil, nil, services.NotificationConfig{AdminEmail: "admin@example.com"}, log)
	bookingService := services.NewBookingService(env.bookings, notifier, log)

	carHandler := NewCarHandler(services.NewCarService(env.cars, nil, nil, services.ImageConfig{}, log), log)
	bookingHandler := NewBookingHandler(bookingService, log)
	paypalHandler := NewPayPalHandler(services.NewPaymentService(stubOrders{status: captureStatus}, bookingService, "EUR", log), log)
	themeHandler := NewThemeHandler(services.NewThemeService(&memThemeStore{}, log), log)

	r := gin.New()
	r.GET("/api/cars", carHandler.ListCars)
	r.POST("/api/cars", carHandler.CreateCar)
	r.GET("/api/cars/:id", carHandler.GetCar)
	r.PUT("/api/cars/:id", carHandler.UpdateCar)
	r.POST("/api/bookings", bookingHandler.CreateBooking)
	r.GET("/api/bookings", bookingHandler.ListBookings)
	r.GET("/api/bookings/:reference", bookingHandler.GetBooking)
	r.PATCH("/api/bookings/:reference", bookingHandler.CancelBooking)
	r.POST("/api/paypal/create-order", paypalHandler.CreateOrder)
	r.POST("/api/paypal/capture-order", paypalHandler.CaptureOrder)
	r.GET("/api/themes/active", themeHandler.GetActiveTheme)
	r.GET("/api/themes/:id", themeHandler.GetTheme)
	r.PUT("/api/themes/:id", themeHandler.SetActiveTheme)
	env.router = r
	return env
}

type envelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Error   string                 `json:"error"`
	Data    map[string]interface{} `json:"data"`
	Booking map[string]interface{} `json:"booking"`
	Details map[string]string      `json:"details"`
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestCreateCar_TransferDefaults(t *testing.T) {
	env := newTestEnv(okSender{}, "COMPLETED")

	w, resp := env.do(t, http.MethodPost, "/api/cars", map[string]interface{}{
		"carType": "transfer",
		"name":    "Sedan",
		"type":    "Standard",
		"price":   100,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "transfer", resp.Data["carType"])
	assert.Equal(t, float64(0), resp.Data["passengers"])
	assert.Equal(t, "EUR", resp.Data["currency"])
	assert.Equal(t, true, resp.Data["isActive"])
	assert.NotEmpty(t, resp.Data["_id"])
}

func TestCreateCar_MissingFields(t *testing.T) {
	env := newTestEnv(okSender{}, "COMPLETED")

	w, resp := env.do(t, http.MethodPost, "/api/cars", map[string]interface{}{"name": "Sedan"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Missing required fields: type, carType, price", resp.Message)
	assert.Empty(t, env.cars.cars)
}

func TestCreateCar_MultipartForm(t *testing.T) {
	env := newTestEnv(okSender{}, "COMPLETED")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("carType", "rental"))
	require.NoError(t, mw.WriteField("name", "Polo"))
	require.NoError(t, mw.WriteField("type", "Economy"))
	require.NoError(t, mw.WriteField("price", "29.5"))
	require.NoError(t, mw.WriteField("seats", "5"))
	require.NoError(t, mw.WriteField("features", "Bluetooth, Air conditioning"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/cars", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 29.5, resp.Data["price"])
	assert.Equal(t, float64(5), resp.Data["seats"])
	assert.Equal(t, []interface{}{"Bluetooth", "Air conditioning"}, resp.Data["features"])
}

func TestUpdateCar_PartialAndCarTypeLocked(t *testing.T) {
	env := newTestEnv(okSender{}, "COMPLETED")
	car := &models.Car{CarType: models.CarTypeTransfer, Name: "Old", Type: "Standard", Price: 50}
	require.NoError(t, env.cars.Create(context.Background(), car))

	w, resp := env.do(t, http.MethodPut, "/api/cars/"+car.ID.Hex(), map[string]interface{}{"price": 65})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Old", resp.Data["name"])
	assert.Equal(t, float64(65), resp.Data["price"])

	w, _ = env.do(t, http.MethodPut, "/api/cars/"+car.ID.Hex(), map[string]interface{}{"carType": "rental"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = env.do(t, http.MethodPut, "/api/cars/not-an-id", map[string]interface{}{"price": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = env.do(t, http.MethodPut, "/api/cars/507f1f77bcf86cd799439011", map[string]interface{}{"price": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBooking_KeepsExtrasAndReturnsReference(t *testing.T) {
	env := newTestEnv(okSender{}, "COMPLETED")

	w, resp := env.do(t, http.MethodPost, "/api/bookings", map[string]interface{}{
		"passengerName": "Ada",
		"email":         "ada@example.com",
		"passengers":    "2",
		"totalPrice":    80,
		"childSeat":     true,
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Regexp(t, `^BK-\d{6}$`, resp.Data["bookingReference"])
	assert.Equal(t, "sent", resp.Data["notificationStatus"])

	stored, err := env.bookings.GetByReference(context.Background(), resp.Data["bookingReference"].(string))
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Passengers)
	assert.Equal(t, true, stored.Extras["childSeat"])
}

func TestCreateBooking_EmailNotConfigured(t *testing.T) {
	env := newTestEnv(nil, "COMPLETED")

	w, resp := env.do(t, http.MethodPost, "/api/bookings", map[string]interface{}{
		"passengerName": "Ada",
		"email":         "ada@example.com",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Email service is not configured", resp.Message)
	assert.Equal(t, 0, env.bookings.len())
}

func TestCreateBooking_EmptyBody(t *testing.T) {
	env := newTestEnv(okSender{}, "COMPLETED")

	w, resp := env.do(t, http.MethodPost, "/api/bookings", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Missing required fields: passengerName, email", resp.Message)
	assert.Contains(t, resp.Details, "passengerName")
	assert.Contains(t, resp.Details, "email")

	w, resp = env.do(t, http.MethodPost, "/api/bookings", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", resp.Message)

	assert.Equal(t, 0, env.bookings.len())
}

func TestCancelBooking_WindowExpired(t *testing.T) {
	env := newTestEnv(okSender{}, "COMPLETED")
	require.NoError(t, env.bookings.Create(context.Background(), &models.Booking{
		BookingReference: "BK-250000",
		Status:           models.BookingStatusConfirmed,
		CreatedAt:        time.Now().Add(-25 * time.Hour),
	}))

	w, resp := env.do(t, http.MethodPatch, "/api/bookings/BK-250000", map[string]string{"status": "cancelled"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Message, "Cancellation window expired")
	stored, _ := env.bookings.GetByReference(context.Background(), "BK-250000")
	assert.Equal(t, models.BookingStatusConfirmed, stored.Status)
}

func TestCancelBooking_Flow(t *testing.T) {
	env := newTestEnv(okSender{}, "COMPLETED")
	require.NoError(t, env.bookings.Create(context.Background(), &models.Booking{
		BookingReference: "BK-100001",
		Email:            "a@b.c",
		Status:           models.BookingStatusConfirmed,
	}))

	w, _ := env.do(t, http.MethodPatch, "/api/bookings/BK-100001", map[string]string{"status": "completed"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp := env.do(t, http.MethodPatch, "/api/bookings/BK-100001", map[string]string{"status": "cancelled"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cancelled", resp.Data["status"])

	w, resp = env.do(t, http.MethodPatch, "/api/bookings/BK-100001", map[string]string{"status": "cancelled"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Booking is already cancelled", resp.Message)

	w, _ = env.do(t, http.MethodPatch, "/api/bookings/BK-999999", map[string]string{"status": "cancelled"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCaptureOrder_DeniedWritesNothing(t *testing.T) {
	env := newTestEnv(okSender{}, "DENIED")

	w, resp := env.do(t, http.MethodPost, "/api/paypal/capture-order", map[string]interface{}{
		"orderID":     "ORDER-9",
		"bookingData": map[string]interface{}{"passengerName": "Ada", "email": "ada@example.com"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, 0, env.bookings.len())
}

func TestCaptureOrder_Completed(t *testing.T) {
	env := newTestEnv(okSender{}, "COMPLETED")

	w, resp := env.do(t, http.MethodPost, "/api/paypal/capture-order", map[string]interface{}{
		"orderID":     "ORDER-9",
		"bookingData": map[string]interface{}{"passengerName": "Ada", "email": "ada@example.com", "totalPrice": 120},
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "paid", resp.Booking["paymentStatus"])
	assert.Equal(t, "paypal", resp.Booking["paymentMethod"])
	assert.Equal(t, "CAP-9", resp.Booking["paypalCaptureId"])
	assert.Equal(t, 1, env.bookings.len())
}

func TestCreateOrder(t *testing.T) {
	env := newTestEnv(okSender{}, "COMPLETED")

	w, resp := env.do(t, http.MethodPost, "/api/paypal/create-order", map[string]interface{}{"amount": 25, "currency": "EUR"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ORDER-9", resp.Data["id"])

	w, _ = env.do(t, http.MethodPost, "/api/paypal/create-order", map[string]interface{}{"amount": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestThemes_UnknownFallsBackToDefault(t *testing.T) {
	env := newTestEnv(okSender{}, "COMPLETED")

	w, resp := env.do(t, http.MethodGet, "/api/themes/not-a-theme", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, themes.DefaultThemeID, resp.Data["id"])

	w, resp = env.do(t, http.MethodGet, "/api/themes/active", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, themes.DefaultThemeID, resp.Data["id"])

	w, _ = env.do(t, http.MethodPut, "/api/themes/luxury-gold", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	_, resp = env.do(t, http.MethodGet, "/api/themes/active", nil)
	assert.Equal(t, "luxury-gold", resp.Data["id"])
}

func TestGetCar(t *testing.T) {
	env := newTestEnv(okSender{}, "COMPLETED")

	w, created := env.do(t, http.MethodPost, "/api/cars", map[string]interface{}{
		"name": "Skoda Superb", "type": "Sedan", "carType": "transfer", "price": 60,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id, _ := created.Data["_id"].(string)
	require.NotEmpty(t, id)

	w, resp := env.do(t, http.MethodGet, "/api/cars/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Skoda Superb", resp.Data["name"])

	w, _ = env.do(t, http.MethodGet, "/api/cars/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = env.do(t, http.MethodGet, "/api/cars/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAndListBookings(t *testing.T) {
	env := newTestEnv(okSender{}, "COMPLETED")
	for _, ref := range []string{"BK-100100", "BK-100200"} {
		require.NoError(t, env.bookings.Create(context.Background(), &models.Booking{
			BookingReference: ref,
			Status:           models.BookingStatusConfirmed,
			CreatedAt:        time.Now(),
		}))
	}

	w, resp := env.do(t, http.MethodGet, "/api/bookings/BK-100200", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "BK-100200", resp.Data["bookingReference"])

	w, _ = env.do(t, http.MethodGet, "/api/bookings/BK-000000", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings?page=1&pageSize=10", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Data []map[string]interface{} `json:"data"`
		Meta struct {
			Count      int `json:"count"`
			Pagination struct {
				Total    int `json:"total"`
				PageSize int `json:"pageSize"`
			} `json:"pagination"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list.Data, 2)
	assert.Equal(t, 2, list.Meta.Count)
	assert.Equal(t, 2, list.Meta.Pagination.Total)
	assert.Equal(t, 10, list.Meta.Pagination.PageSize)
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealth(t *testing.T) {
	ok := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	for name, tc := range map[string]struct {
		checks map[string]Pinger
		code   int
		status string
	}{
		"healthy":   {map[string]Pinger{"mongodb": ok}, http.StatusOK, "healthy"},
		"unhealthy": {map[string]Pinger{"mongodb": ok, "redis": down}, http.StatusServiceUnavailable, "unhealthy"},
	} {
		t.Run(name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health", NewHealthHandler("1.2.3", tc.checks).Health)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.code, w.Code)
			assert.Equal(t, tc.status, body["status"])
			assert.Equal(t, "1.2.3", body["version"])
		})
	}
}
