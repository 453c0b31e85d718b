package handlers

import (
	"context"
	"sync"
	"time"

	"carbooking/internal/models"
	"carbooking/internal/repositories/interfaces"
	"carbooking/internal/utils"
	"carbooking/pkg/email"
	"carbooking/pkg/payment"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memCarRepo struct {
	cars map[primitive.ObjectID]*models.Car
}

func newMemCarRepo() *memCarRepo {
	return &memCarRepo{cars: map[primitive.ObjectID]*models.Car{}}
}

func (r *memCarRepo) Create(_ context.Context, car *models.Car) error {
	car.ID = primitive.NewObjectID()
	r.cars[car.ID] = car
	return nil
}

func (r *memCarRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Car, error) {
	if car, ok := r.cars[id]; ok {
		return car, nil
	}
	return nil, interfaces.ErrNotFound
}

func (r *memCarRepo) List(context.Context, interfaces.CarFilter) ([]*models.Car, error) {
	out := make([]*models.Car, 0, len(r.cars))
	for _, car := range r.cars {
		out = append(out, car)
	}
	return out, nil
}

func (r *memCarRepo) Update(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Car, error) {
	car, ok := r.cars[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	if name, ok := updates["name"].(string); ok {
		car.Name = name
	}
	if price, ok := updates["price"].(float64); ok {
		car.Price = price
	}
	return car, nil
}

func (r *memCarRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.cars[id]; !ok {
		return interfaces.ErrNotFound
	}
	delete(r.cars, id)
	return nil
}

func (r *memCarRepo) ReplaceAll(_ context.Context, cars []*models.Car) (int, error) {
	r.cars = map[primitive.ObjectID]*models.Car{}
	for _, car := range cars {
		car.ID = primitive.NewObjectID()
		r.cars[car.ID] = car
	}
	return len(cars), nil
}

type memBookingRepo struct {
	mu       sync.Mutex
	bookings []*models.Booking
}

func (r *memBookingRepo) Create(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = primitive.NewObjectID()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	copied := *b
	r.bookings = append(r.bookings, &copied)
	return nil
}

func (r *memBookingRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (r *memBookingRepo) GetByReference(_ context.Context, ref string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.BookingReference == ref {
			copied := *b
			return &copied, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (r *memBookingRepo) List(context.Context, interfaces.BookingFilter, *utils.PaginationParams) ([]*models.Booking, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bookings, int64(len(r.bookings)), nil
}

func (r *memBookingRepo) Cancel(_ context.Context, id primitive.ObjectID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id && b.Status != models.BookingStatusCancelled {
			b.Status = models.BookingStatusCancelled
			b.CancelledAt = &at
			return nil
		}
	}
	return interfaces.ErrNotFound
}

func (r *memBookingRepo) UpdateNotificationStatus(_ context.Context, id primitive.ObjectID, status models.NotificationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			b.NotificationStatus = status
		}
	}
	return nil
}

func (r *memBookingRepo) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookings)
}

type memThemeStore struct {
	pref *models.ThemePreference
}

func (s *memThemeStore) Get(_ context.Context, defaultThemeID string) (*models.ThemePreference, error) {
	if s.pref == nil {
		s.pref = &models.ThemePreference{ThemeID: defaultThemeID}
	}
	return s.pref, nil
}

func (s *memThemeStore) Set(_ context.Context, themeID string) (*models.ThemePreference, error) {
	s.pref = &models.ThemePreference{ThemeID: themeID}
	return s.pref, nil
}

type okSender struct{}

func (okSender) Send(context.Context, *email.Message) error { return nil }

type stubOrders struct {
	status string
}

func (s stubOrders) CreateOrder(_ context.Context, req *payment.CreateOrderRequest) (*payment.Order, error) {
	return &payment.Order{ID: "ORDER-9", Status: "CREATED", Raw: map[string]interface{}{"id": "ORDER-9", "status": "CREATED"}}, nil
}

func (s stubOrders) CaptureOrder(_ context.Context, orderID string) (*payment.Capture, error) {
	return &payment.Capture{OrderID: orderID, Status: s.status, CaptureID: "CAP-9"}, nil
}
