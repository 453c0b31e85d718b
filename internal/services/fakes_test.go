package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"carbooking/internal/models"
	"carbooking/internal/repositories/interfaces"
	"carbooking/internal/utils"
	"carbooking/pkg/email"
	"carbooking/pkg/maps"
	"carbooking/pkg/payment"
	"carbooking/pkg/sms"
	"carbooking/pkg/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*models.Booking
}

func (r *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = primitive.NewObjectID()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	b.UpdatedAt = b.CreatedAt
	copied := *b
	r.bookings = append(r.bookings, &copied)
	return nil
}

func (r *fakeBookingRepo) find(match func(*models.Booking) bool) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if match(b) {
			copied := *b
			return &copied, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Booking, error) {
	return r.find(func(b *models.Booking) bool { return b.ID == id })
}

func (r *fakeBookingRepo) GetByReference(_ context.Context, ref string) (*models.Booking, error) {
	return r.find(func(b *models.Booking) bool { return b.BookingReference == ref })
}

func (r *fakeBookingRepo) List(_ context.Context, filter interfaces.BookingFilter, _ *utils.PaginationParams) ([]*models.Booking, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Booking
	for _, b := range r.bookings {
		if filter.Email != "" && b.Email != filter.Email {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id primitive.ObjectID, at time.Time) error {
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

func (r *fakeBookingRepo) UpdateNotificationStatus(_ context.Context, id primitive.ObjectID, status models.NotificationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			b.NotificationStatus = status
			return nil
		}
	}
	return interfaces.ErrNotFound
}

func (r *fakeBookingRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookings)
}

// seed stores a booking as is, keeping its CreatedAt.
func (r *fakeBookingRepo) seed(b *models.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = primitive.NewObjectID()
	r.bookings = append(r.bookings, b)
}

type fakeSender struct {
	mu   sync.Mutex
	sent []*email.Message
	err  error
}

func (s *fakeSender) Send(_ context.Context, m *email.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, m)
	return nil
}

func (s *fakeSender) subjects() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, m := range s.sent {
		out = append(out, m.Subject)
	}
	return out
}

type fakeSMS struct {
	requests []*sms.SMSRequest
}

func (f *fakeSMS) SendSMS(_ context.Context, req *sms.SMSRequest) (*sms.SMSResponse, error) {
	f.requests = append(f.requests, req)
	return &sms.SMSResponse{MessageID: "SM1", Status: "queued"}, nil
}

type fakeEvents struct {
	mu     sync.Mutex
	events []string
}

func (f *fakeEvents) Publish(eventType string, _ interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, eventType)
}

type fakeOrderProvider struct {
	captureStatus string
	captureErr    error
	lastCreate    *payment.CreateOrderRequest
}

func (p *fakeOrderProvider) CreateOrder(_ context.Context, req *payment.CreateOrderRequest) (*payment.Order, error) {
	p.lastCreate = req
	return &payment.Order{ID: "ORDER-1", Status: "CREATED"}, nil
}

func (p *fakeOrderProvider) CaptureOrder(_ context.Context, orderID string) (*payment.Capture, error) {
	if p.captureErr != nil {
		return nil, p.captureErr
	}
	return &payment.Capture{OrderID: orderID, Status: p.captureStatus, CaptureID: "CAP-1", Amount: "50.00", Currency: "EUR"}, nil
}

type fakeCarRepo struct {
	cars []*models.Car
}

func (r *fakeCarRepo) Create(_ context.Context, car *models.Car) error {
	car.ID = primitive.NewObjectID()
	r.cars = append(r.cars, car)
	return nil
}

func (r *fakeCarRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Car, error) {
	for _, c := range r.cars {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (r *fakeCarRepo) List(_ context.Context, filter interfaces.CarFilter) ([]*models.Car, error) {
	var out []*models.Car
	for _, c := range r.cars {
		if filter.CarType != "" && c.CarType != filter.CarType {
			continue
		}
		if filter.IsActive != nil && c.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCarRepo) Update(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Car, error) {
	for _, c := range r.cars {
		if c.ID != id {
			continue
		}
		for k, v := range updates {
			switch k {
			case "name":
				c.Name = v.(string)
			case "price":
				c.Price = v.(float64)
			case "image":
				c.Image = v.(string)
			case "passengers":
				c.Passengers = v.(int)
			}
		}
		copied := *c
		return &copied, nil
	}
	return nil, interfaces.ErrNotFound
}

func (r *fakeCarRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, c := range r.cars {
		if c.ID == id {
			r.cars = append(r.cars[:i], r.cars[i+1:]...)
			return nil
		}
	}
	return interfaces.ErrNotFound
}

func (r *fakeCarRepo) ReplaceAll(_ context.Context, cars []*models.Car) (int, error) {
	r.cars = nil
	for _, c := range cars {
		c.ID = primitive.NewObjectID()
		r.cars = append(r.cars, c)
	}
	return len(cars), nil
}

type fakeDomainRepo struct {
	domains []*models.Domain
}

func (r *fakeDomainRepo) Create(_ context.Context, d *models.Domain) error {
	for _, existing := range r.domains {
		if strings.EqualFold(existing.DomainName, d.DomainName) {
			return interfaces.ErrDuplicate
		}
	}
	d.ID = primitive.NewObjectID()
	r.domains = append(r.domains, d)
	return nil
}

func (r *fakeDomainRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Domain, error) {
	for _, d := range r.domains {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (r *fakeDomainRepo) GetByName(_ context.Context, name string) (*models.Domain, error) {
	for _, d := range r.domains {
		if strings.EqualFold(d.DomainName, name) {
			return d, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (r *fakeDomainRepo) List(context.Context) ([]*models.Domain, error) {
	return r.domains, nil
}

func (r *fakeDomainRepo) Update(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Domain, error) {
	for _, d := range r.domains {
		if d.ID != id {
			continue
		}
		if v, ok := updates["domainName"].(string); ok {
			d.DomainName = v
		}
		if v, ok := updates["themeId"].(string); ok {
			d.ThemeID = v
		}
		if v, ok := updates["isActive"].(bool); ok {
			d.IsActive = v
		}
		return d, nil
	}
	return nil, interfaces.ErrNotFound
}

func (r *fakeDomainRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, d := range r.domains {
		if d.ID == id {
			r.domains = append(r.domains[:i], r.domains[i+1:]...)
			return nil
		}
	}
	return interfaces.ErrNotFound
}

type fakeThemeStore struct {
	pref *models.ThemePreference
}

func (s *fakeThemeStore) Get(_ context.Context, defaultThemeID string) (*models.ThemePreference, error) {
	if s.pref == nil {
		s.pref = &models.ThemePreference{Key: "active", ThemeID: defaultThemeID, UpdatedAt: time.Now()}
	}
	return s.pref, nil
}

func (s *fakeThemeStore) Set(_ context.Context, themeID string) (*models.ThemePreference, error) {
	s.pref = &models.ThemePreference{Key: "active", ThemeID: themeID, UpdatedAt: time.Now()}
	return s.pref, nil
}

type fakeMaps struct {
	places   map[string]*maps.Place
	route    *maps.RouteSummary
	routeErr error
	routed   int
}

func (m *fakeMaps) SearchTop(_ context.Context, query string) (*maps.Place, error) {
	if query == "boom" {
		return nil, errors.New("upstream failure")
	}
	return m.places[query], nil
}

func (m *fakeMaps) CalculateRoute(context.Context, maps.Location, maps.Location) (*maps.RouteSummary, error) {
	m.routed++
	return m.route, m.routeErr
}

type fakeStorage struct {
	uploads []*storage.UploadRequest
	deleted []string
}

func (s *fakeStorage) Upload(_ context.Context, req *storage.UploadRequest) (*storage.UploadResponse, error) {
	s.uploads = append(s.uploads, req)
	return &storage.UploadResponse{Key: req.Key, URL: "https://cdn.test/" + req.Key, Size: req.Size}, nil
}

func (s *fakeStorage) Delete(_ context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	return nil
}


func (s *fakeStorage) KeyFromURL(url string) (string, bool) {
	return strings.CutPrefix(url, "https://cdn.test/")
}
