package booking

import (
	"strings"
	"sync"
	"testing"
	"time"

	"car-service-booking/httpServices/mailer"
	bookingModel "car-service-booking/models/booking"
	paymentModel "car-service-booking/models/payment"
	ratingModel "car-service-booking/models/rating"
	serviceModel "car-service-booking/models/service"
	userModel "car-service-booking/models/user"
	vehicleModel "car-service-booking/models/vehicle"
	bookingTypes "car-service-booking/types/booking"
	paymentTypes "car-service-booking/types/payment"

	"gorm.io/gorm"
)

type fakeBookingStore struct {
	mu       sync.Mutex
	nextID   uint
	bookings map[uint]*bookingModel.Booking
	events   []bookingModel.BookingStatusEvent
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{nextID: 1, bookings: make(map[uint]*bookingModel.Booking)}
}

func (s *fakeBookingStore) Create(b *bookingModel.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = s.nextID
	s.nextID++
	copied := *b
	s.bookings[b.ID] = &copied
	return nil
}

func (s *fakeBookingStore) FindByID(id uint) (*bookingModel.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *b
	return &copied, nil
}

func (s *fakeBookingStore) Update(b *bookingModel.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[b.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *b
	s.bookings[b.ID] = &copied
	return nil
}

func (s *fakeBookingStore) List(status string) ([]bookingModel.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []bookingModel.Booking
	for _, b := range s.bookings {
		if status == "" || b.Status.String() == status {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *fakeBookingStore) HistoryForUser(userID uint) ([]bookingModel.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []bookingModel.Booking
	for _, b := range s.bookings {
		if b.UserID != nil && *b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *fakeBookingStore) HistoryForEmail(email string) ([]bookingModel.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []bookingModel.Booking
	for _, b := range s.bookings {
		if b.CustomerEmail == email {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *fakeBookingStore) RecordStatusEvent(event *bookingModel.BookingStatusEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, *event)
	return nil
}

type fakePaymentStore struct {
	mu       sync.Mutex
	nextID   uint
	payments map[uint]*paymentModel.Payment // keyed by booking id
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{nextID: 1, payments: make(map[uint]*paymentModel.Payment)}
}

func (s *fakePaymentStore) Create(p *paymentModel.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextID
	s.nextID++
	copied := *p
	s.payments[p.BookingID] = &copied
	return nil
}

func (s *fakePaymentStore) FindByBookingID(bookingID uint) (*paymentModel.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[bookingID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	return &copied, nil
}

func (s *fakePaymentStore) Update(p *paymentModel.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *p
	s.payments[p.BookingID] = &copied
	return nil
}

type fakeUserStore struct {
	mu    sync.Mutex
	users map[uint]*userModel.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint]*userModel.User)}
}

func (s *fakeUserStore) Create(u *userModel.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
	return nil
}

func (s *fakeUserStore) FindByID(id uint) (*userModel.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (s *fakeUserStore) FindByEmail(email string) (*userModel.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) AddRewardPoints(userID uint, points int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.RewardPoints += points
	return nil
}

type fakeVehicleStore struct {
	mu       sync.Mutex
	vehicles map[uint]*vehicleModel.Vehicle
}

func newFakeVehicleStore() *fakeVehicleStore {
	return &fakeVehicleStore{vehicles: make(map[uint]*vehicleModel.Vehicle)}
}

func (s *fakeVehicleStore) Create(v *vehicleModel.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles[v.ID] = v
	return nil
}

func (s *fakeVehicleStore) FindByID(id uint) (*vehicleModel.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vehicles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (s *fakeVehicleStore) ListByUser(userID uint) ([]vehicleModel.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []vehicleModel.Vehicle
	for _, v := range s.vehicles {
		if v.UserID == userID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (s *fakeVehicleStore) Update(v *vehicleModel.Vehicle) error { return nil }
func (s *fakeVehicleStore) Delete(id uint) error                 { return nil }

type fakeServiceStore struct {
	mu       sync.Mutex
	nextID   uint
	services map[string]*serviceModel.Service
}

func newFakeServiceStore() *fakeServiceStore {
	return &fakeServiceStore{nextID: 1, services: make(map[string]*serviceModel.Service)}
}

func (s *fakeServiceStore) List() ([]serviceModel.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []serviceModel.Service
	for _, svc := range s.services {
		out = append(out, *svc)
	}
	return out, nil
}

func (s *fakeServiceStore) FindBySlug(slug string) (*serviceModel.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, svc := range s.services {
		if svc.Slug == slug {
			return svc, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeServiceStore) FindOrCreateByName(name string, basePrice float64) (*serviceModel.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if svc, ok := s.services[name]; ok {
		return svc, nil
	}
	svc := &serviceModel.Service{
		ID:    s.nextID,
		Slug:  strings.ToLower(strings.Join(strings.Fields(name), "-")),
		Name:  name,
		Price: basePrice,
	}
	s.nextID++
	s.services[name] = svc
	return svc, nil
}

type fakeRatingStore struct {
	mu      sync.Mutex
	nextID  uint
	ratings map[uint]*ratingModel.Rating // keyed by booking id
}

func newFakeRatingStore() *fakeRatingStore {
	return &fakeRatingStore{nextID: 1, ratings: make(map[uint]*ratingModel.Rating)}
}

func (s *fakeRatingStore) Create(r *ratingModel.Rating) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.nextID
	s.nextID++
	copied := *r
	s.ratings[r.BookingID] = &copied
	return nil
}

func (s *fakeRatingStore) FindByBookingID(bookingID uint) (*ratingModel.Rating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.ratings[bookingID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *r
	return &copied, nil
}

type fakeMailer struct {
	mu            sync.Mutex
	invoices      []mailer.InvoiceData
	cancellations []mailer.CancellationData
	completions   []mailer.CompletionData
}

func (m *fakeMailer) SendInvoice(to string, data mailer.InvoiceData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invoices = append(m.invoices, data)
	return nil
}

func (m *fakeMailer) SendCancellation(to string, data mailer.CancellationData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancellations = append(m.cancellations, data)
	return nil
}

func (m *fakeMailer) SendCompletion(to string, data mailer.CompletionData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completions = append(m.completions, data)
	return nil
}

func (m *fakeMailer) invoiceCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.invoices)
}

func (m *fakeMailer) cancellationCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cancellations)
}

func (m *fakeMailer) completionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.completions)
}

// waitForCount polls an email counter until it reaches want, failing the
// test on timeout. Sends happen on goroutines, so assertions must wait.
func waitForCount(t *testing.T, count func() int, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if count() >= want {
			if got := count(); got != want {
				t.Fatalf("expected %d emails, got %d", want, got)
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d emails, got %d after timeout", want, count())
}

// settleAndCount gives in-flight send goroutines time to land, then returns
// the counter. Used to assert that no email was sent.
func settleAndCount(count func() int) int {
	time.Sleep(50 * time.Millisecond)
	return count()
}

type fixture struct {
	svc      *Service
	bookings *fakeBookingStore
	payments *fakePaymentStore
	users    *fakeUserStore
	vehicles *fakeVehicleStore
	services *fakeServiceStore
	ratings  *fakeRatingStore
	mail     *fakeMailer
}

func newFixture() *fixture {
	f := &fixture{
		bookings: newFakeBookingStore(),
		payments: newFakePaymentStore(),
		users:    newFakeUserStore(),
		vehicles: newFakeVehicleStore(),
		services: newFakeServiceStore(),
		ratings:  newFakeRatingStore(),
		mail:     &fakeMailer{},
	}
	f.svc = NewService(f.bookings, f.payments, f.users, f.vehicles, f.services, f.ratings, f.mail)
	return f
}

func validCreateRequest() bookingTypes.BookingCreateRequest {
	return bookingTypes.BookingCreateRequest{
		CustomerName:    "Asha Verma",
		CustomerEmail:   "Asha@Example.com",
		CustomerPhone:   "+919876543210",
		ServiceName:     "Preventive Maintenance Service",
		CarMake:         "Hyundai",
		CarModel:        "Creta",
		FuelType:        "Petrol",
		AppointmentDate: time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		Address:         "14 MG Road, Bengaluru, Karnataka",
	}
}

func uintPtr(v uint) *uint { return &v }

func TestCreateGuestBooking(t *testing.T) {
	f := newFixture()

	result, err := f.svc.Create(validCreateRequest(), Actor{})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	b := result.Booking
	if !b.IsGuest {
		t.Fatalf("booking without identity should be marked guest")
	}
	if b.UserID != nil {
		t.Fatalf("guest booking should carry no user id")
	}
	if b.Status != bookingModel.BookingStatusPending {
		t.Fatalf("new booking should be PENDING, got %s", b.Status)
	}
	if b.CustomerEmail != "asha@example.com" {
		t.Fatalf("email should be lowercased, got %s", b.CustomerEmail)
	}
	if result.EstimatedPrice <= 0 {
		t.Fatalf("estimated price should be positive, got %f", result.EstimatedPrice)
	}
	if len(f.bookings.events) != 1 || f.bookings.events[0].Status != bookingModel.BookingStatusPending {
		t.Fatalf("creation should record a PENDING status event")
	}
}

func TestCreateRejectsVehicleOwnedByAnotherUser(t *testing.T) {
	f := newFixture()
	f.vehicles.Create(&vehicleModel.Vehicle{ID: 5, UserID: 99, Make: "Tata Motors", Model: "Nexon", FuelType: "Petrol"})

	req := validCreateRequest()
	req.VehicleID = uintPtr(5)

	if _, err := f.svc.Create(req, Actor{UserID: uintPtr(1)}); err != ErrVehicleNotFound {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
	// guests cannot reference saved vehicles at all
	if _, err := f.svc.Create(req, Actor{}); err != ErrVehicleNotFound {
		t.Fatalf("expected ErrVehicleNotFound for guest, got %v", err)
	}
}

func TestCreateRejectsPastAppointment(t *testing.T) {
	f := newFixture()
	req := validCreateRequest()
	req.AppointmentDate = "not-a-date"
	if _, err := f.svc.Create(req, Actor{}); err == nil {
		t.Fatalf("expected error for unparseable appointment date")
	}
}

func createPendingBooking(t *testing.T, f *fixture, actor Actor) *bookingModel.Booking {
	t.Helper()
	result, err := f.svc.Create(validCreateRequest(), actor)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	return result.Booking
}

func TestRecordPaymentNonCashSettlesImmediately(t *testing.T) {
	f := newFixture()
	f.users.Create(&userModel.User{ID: 1, Email: "asha@example.com"})
	b := createPendingBooking(t, f, Actor{UserID: uintPtr(1)})

	result, err := f.svc.RecordPayment(paymentTypes.PaymentCreateRequest{
		BookingID: b.ID,
		Amount:    3850,
		Method:    "UPI",
	}, Actor{UserID: uintPtr(1)})
	if err != nil {
		t.Fatalf("payment failed: %v", err)
	}

	if result.Payment.Status != paymentModel.PaymentStatusCompleted {
		t.Fatalf("non-cash payment should complete immediately, got %s", result.Payment.Status)
	}
	if result.Payment.TransactionID == nil {
		t.Fatalf("non-cash payment should carry a transaction id")
	}
	txn := *result.Payment.TransactionID
	if !strings.HasPrefix(txn, "TXN-") || txn != strings.ToUpper(txn) {
		t.Fatalf("transaction id should be an uppercase TXN- id, got %s", txn)
	}
	if result.Booking.Status != bookingModel.BookingStatusConfirmed {
		t.Fatalf("paid booking should be CONFIRMED, got %s", result.Booking.Status)
	}
	if result.RewardPoints != 100 {
		t.Fatalf("registered non-cash payment should grant 100 points, got %d", result.RewardPoints)
	}

	u, _ := f.users.FindByID(1)
	if u.RewardPoints != 100 {
		t.Fatalf("user reward counter should be 100, got %d", u.RewardPoints)
	}
	stored, _ := f.bookings.FindByID(b.ID)
	if stored.RewardPoints != 100 {
		t.Fatalf("booking reward points should be 100, got %d", stored.RewardPoints)
	}
}

func TestRecordPaymentCashStaysPending(t *testing.T) {
	f := newFixture()
	f.users.Create(&userModel.User{ID: 1, Email: "asha@example.com"})
	b := createPendingBooking(t, f, Actor{UserID: uintPtr(1)})

	result, err := f.svc.RecordPayment(paymentTypes.PaymentCreateRequest{
		BookingID: b.ID,
		Amount:    3850,
		Method:    "CASH",
	}, Actor{UserID: uintPtr(1)})
	if err != nil {
		t.Fatalf("payment failed: %v", err)
	}

	if result.Payment.Status != paymentModel.PaymentStatusPending {
		t.Fatalf("cash payment should stay PENDING, got %s", result.Payment.Status)
	}
	if result.Payment.TransactionID != nil {
		t.Fatalf("cash payment should carry no transaction id")
	}
	if result.Booking.Status != bookingModel.BookingStatusConfirmed {
		t.Fatalf("booking should still confirm on cash payment, got %s", result.Booking.Status)
	}
	if result.RewardPoints != 0 {
		t.Fatalf("cash payment should grant no points, got %d", result.RewardPoints)
	}
}

func TestRecordPaymentNonCashSendsOneInvoice(t *testing.T) {
	f := newFixture()
	f.users.Create(&userModel.User{ID: 1, Email: "asha@example.com"})
	b := createPendingBooking(t, f, Actor{UserID: uintPtr(1)})

	if _, err := f.svc.RecordPayment(paymentTypes.PaymentCreateRequest{
		BookingID: b.ID, Amount: 3850, Method: "UPI",
	}, Actor{UserID: uintPtr(1)}); err != nil {
		t.Fatalf("payment failed: %v", err)
	}

	waitForCount(t, f.mail.invoiceCount, 1)
	f.mail.mu.Lock()
	invoice := f.mail.invoices[0]
	f.mail.mu.Unlock()
	if invoice.BookingID != b.ID || invoice.RewardPoints != 100 {
		t.Fatalf("unexpected invoice data: %+v", invoice)
	}
	if !strings.HasPrefix(invoice.TransactionID, "TXN-") {
		t.Fatalf("invoice should carry the transaction id, got %q", invoice.TransactionID)
	}
}

func TestRecordPaymentCashSendsNoInvoice(t *testing.T) {
	f := newFixture()
	b := createPendingBooking(t, f, Actor{})

	if _, err := f.svc.RecordPayment(paymentTypes.PaymentCreateRequest{
		BookingID: b.ID, Amount: 3850, Method: "CASH",
	}, Actor{}); err != nil {
		t.Fatalf("payment failed: %v", err)
	}

	if got := settleAndCount(f.mail.invoiceCount); got != 0 {
		t.Fatalf("cash payment must not trigger an invoice email, got %d", got)
	}
}

func TestRecordPaymentGuestGetsNoPoints(t *testing.T) {
	f := newFixture()
	b := createPendingBooking(t, f, Actor{})

	result, err := f.svc.RecordPayment(paymentTypes.PaymentCreateRequest{
		BookingID: b.ID,
		Amount:    3850,
		Method:    "CARD",
	}, Actor{})
	if err != nil {
		t.Fatalf("payment failed: %v", err)
	}
	if result.RewardPoints != 0 {
		t.Fatalf("guest booking should grant no points, got %d", result.RewardPoints)
	}
}

func TestRecordPaymentDuplicateRejected(t *testing.T) {
	f := newFixture()
	b := createPendingBooking(t, f, Actor{})

	req := paymentTypes.PaymentCreateRequest{BookingID: b.ID, Amount: 3850, Method: "CARD"}
	if _, err := f.svc.RecordPayment(req, Actor{}); err != nil {
		t.Fatalf("first payment failed: %v", err)
	}
	if _, err := f.svc.RecordPayment(req, Actor{}); err != ErrDuplicatePayment {
		t.Fatalf("expected ErrDuplicatePayment, got %v", err)
	}
}

func TestRecordPaymentUnknownBooking(t *testing.T) {
	f := newFixture()
	req := paymentTypes.PaymentCreateRequest{BookingID: 12345, Amount: 3850, Method: "CARD"}
	if _, err := f.svc.RecordPayment(req, Actor{}); err != ErrBookingNotFound {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestCancelPrepaidMarksRefundPending(t *testing.T) {
	f := newFixture()
	f.users.Create(&userModel.User{ID: 1, Email: "asha@example.com"})
	b := createPendingBooking(t, f, Actor{UserID: uintPtr(1)})
	if _, err := f.svc.RecordPayment(paymentTypes.PaymentCreateRequest{
		BookingID: b.ID, Amount: 3850, Method: "UPI",
	}, Actor{UserID: uintPtr(1)}); err != nil {
		t.Fatalf("payment failed: %v", err)
	}

	result, err := f.svc.Cancel(b.ID, Actor{UserID: uintPtr(1)})
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if result.Booking.Status != bookingModel.BookingStatusCancelled {
		t.Fatalf("booking should be CANCELLED, got %s", result.Booking.Status)
	}
	if result.RefundAmount != 3850 {
		t.Fatalf("prepaid cancel should report refund 3850, got %f", result.RefundAmount)
	}
	payment, _ := f.payments.FindByBookingID(b.ID)
	if payment.Status != paymentModel.PaymentStatusRefundPending {
		t.Fatalf("prepaid payment should be REFUND_PENDING, got %s", payment.Status)
	}
}

func TestCancelCashPaymentNoRefund(t *testing.T) {
	f := newFixture()
	b := createPendingBooking(t, f, Actor{})
	if _, err := f.svc.RecordPayment(paymentTypes.PaymentCreateRequest{
		BookingID: b.ID, Amount: 3850, Method: "CASH",
	}, Actor{}); err != nil {
		t.Fatalf("payment failed: %v", err)
	}

	result, err := f.svc.Cancel(b.ID, Actor{})
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if result.RefundAmount != 0 {
		t.Fatalf("cash booking cancel should report no refund, got %f", result.RefundAmount)
	}
	payment, _ := f.payments.FindByBookingID(b.ID)
	if payment.Status != paymentModel.PaymentStatusPending {
		t.Fatalf("cash payment should stay PENDING after cancel, got %s", payment.Status)
	}
}

func TestCancelOwnershipEnforcement(t *testing.T) {
	f := newFixture()
	b := createPendingBooking(t, f, Actor{UserID: uintPtr(1)})

	if _, err := f.svc.Cancel(b.ID, Actor{UserID: uintPtr(2)}); err != ErrNotOwner {
		t.Fatalf("expected ErrNotOwner for mismatched user, got %v", err)
	}
	// a caller without identity skips the ownership check
	if _, err := f.svc.Cancel(b.ID, Actor{}); err != nil {
		t.Fatalf("guest cancel should pass, got %v", err)
	}
}

func TestCancelRejectedFromTerminalStates(t *testing.T) {
	for _, status := range []bookingModel.BookingStatus{
		bookingModel.BookingStatusInProgress,
		bookingModel.BookingStatusCompleted,
		bookingModel.BookingStatusCancelled,
	} {
		f := newFixture()
		b := createPendingBooking(t, f, Actor{})
		stored, _ := f.bookings.FindByID(b.ID)
		stored.Status = status
		f.bookings.Update(stored)

		if _, err := f.svc.Cancel(b.ID, Actor{}); err != ErrNotCancellable {
			t.Fatalf("cancel from %s: expected ErrNotCancellable, got %v", status, err)
		}
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	f := newFixture()
	b := createPendingBooking(t, f, Actor{})
	admin := Actor{UserID: uintPtr(10), IsAdmin: true}

	// PENDING -> COMPLETED skips CONFIRMED and must be rejected
	completed := bookingModel.BookingStatusCompleted.String()
	if _, err := f.svc.Update(b.ID, bookingTypes.BookingUpdateRequest{Status: &completed}, admin); err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	confirmed := bookingModel.BookingStatusConfirmed.String()
	if _, err := f.svc.Update(b.ID, bookingTypes.BookingUpdateRequest{Status: &confirmed}, admin); err != nil {
		t.Fatalf("PENDING -> CONFIRMED failed: %v", err)
	}

	inProgress := bookingModel.BookingStatusInProgress.String()
	if _, err := f.svc.Update(b.ID, bookingTypes.BookingUpdateRequest{Status: &inProgress}, admin); err != nil {
		t.Fatalf("CONFIRMED -> IN_PROGRESS failed: %v", err)
	}

	// IN_PROGRESS -> CANCELLED is not permitted
	cancelled := bookingModel.BookingStatusCancelled.String()
	if _, err := f.svc.Update(b.ID, bookingTypes.BookingUpdateRequest{Status: &cancelled}, admin); err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition from IN_PROGRESS to CANCELLED, got %v", err)
	}

	updated, err := f.svc.Update(b.ID, bookingTypes.BookingUpdateRequest{Status: &completed}, admin)
	if err != nil {
		t.Fatalf("IN_PROGRESS -> COMPLETED failed: %v", err)
	}
	if updated.Status != bookingModel.BookingStatusCompleted {
		t.Fatalf("booking should be COMPLETED, got %s", updated.Status)
	}

	// every successful transition plus creation leaves an audit row
	if len(f.bookings.events) != 4 {
		t.Fatalf("expected 4 status events, got %d", len(f.bookings.events))
	}
}

func TestUpdateFieldEdit(t *testing.T) {
	f := newFixture()
	b := createPendingBooking(t, f, Actor{})
	admin := Actor{IsAdmin: true}

	name := "Ravi Kumar"
	updated, err := f.svc.Update(b.ID, bookingTypes.BookingUpdateRequest{CustomerName: &name}, admin)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.CustomerName != "Ravi Kumar" {
		t.Fatalf("customer name not updated, got %s", updated.CustomerName)
	}
	if updated.Status != bookingModel.BookingStatusPending {
		t.Fatalf("field edit should not touch status, got %s", updated.Status)
	}
}

func TestUpdateRejectsCancelledBooking(t *testing.T) {
	f := newFixture()
	b := createPendingBooking(t, f, Actor{})
	if _, err := f.svc.Cancel(b.ID, Actor{}); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	name := "Ravi Kumar"
	if _, err := f.svc.Update(b.ID, bookingTypes.BookingUpdateRequest{CustomerName: &name}, Actor{IsAdmin: true}); err != ErrBookingCancelled {
		t.Fatalf("expected ErrBookingCancelled for field edit, got %v", err)
	}
	pending := bookingModel.BookingStatusPending.String()
	if _, err := f.svc.Update(b.ID, bookingTypes.BookingUpdateRequest{Status: &pending}, Actor{IsAdmin: true}); err != ErrBookingCancelled {
		t.Fatalf("expected ErrBookingCancelled for status edit, got %v", err)
	}
}

func TestCompletionEmailSentExactlyOnce(t *testing.T) {
	f := newFixture()
	f.users.Create(&userModel.User{ID: 1, Email: "asha@example.com"})
	actor := Actor{UserID: uintPtr(1)}
	b := createPendingBooking(t, f, actor)
	if _, err := f.svc.RecordPayment(paymentTypes.PaymentCreateRequest{
		BookingID: b.ID, Amount: 3850, Method: "UPI",
	}, actor); err != nil {
		t.Fatalf("payment failed: %v", err)
	}

	admin := Actor{IsAdmin: true}
	completed := bookingModel.BookingStatusCompleted.String()
	if _, err := f.svc.Update(b.ID, bookingTypes.BookingUpdateRequest{Status: &completed}, admin); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	waitForCount(t, f.mail.completionCount, 1)
	f.mail.mu.Lock()
	completion := f.mail.completions[0]
	f.mail.mu.Unlock()
	if completion.BookingID != b.ID {
		t.Fatalf("unexpected completion data: %+v", completion)
	}
	if completion.RewardPoints != 100 {
		t.Fatalf("completion email should carry accrued reward points, got %d", completion.RewardPoints)
	}

	// repeating the transition fails and must not send again
	if _, err := f.svc.Update(b.ID, bookingTypes.BookingUpdateRequest{Status: &completed}, admin); err != nil {
		t.Fatalf("no-op status update failed: %v", err)
	}
	if got := settleAndCount(f.mail.completionCount); got != 1 {
		t.Fatalf("expected exactly one completion email, got %d", got)
	}
}

func TestCancellationEmailCarriesRefund(t *testing.T) {
	f := newFixture()
	f.users.Create(&userModel.User{ID: 1, Email: "asha@example.com"})
	actor := Actor{UserID: uintPtr(1)}
	b := createPendingBooking(t, f, actor)
	if _, err := f.svc.RecordPayment(paymentTypes.PaymentCreateRequest{
		BookingID: b.ID, Amount: 3850, Method: "CARD",
	}, actor); err != nil {
		t.Fatalf("payment failed: %v", err)
	}

	if _, err := f.svc.Cancel(b.ID, actor); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	waitForCount(t, f.mail.cancellationCount, 1)
	f.mail.mu.Lock()
	cancellation := f.mail.cancellations[0]
	f.mail.mu.Unlock()
	if cancellation.BookingID != b.ID || cancellation.RefundAmount != 3850 {
		t.Fatalf("unexpected cancellation data: %+v", cancellation)
	}
}

func TestRateOnlyCompletedBookings(t *testing.T) {
	f := newFixture()
	b := createPendingBooking(t, f, Actor{UserID: uintPtr(1)})

	if _, err := f.svc.Rate(b.ID, bookingTypes.RateRequest{Score: 5}, Actor{UserID: uintPtr(1)}); err != ErrNotRatable {
		t.Fatalf("expected ErrNotRatable for pending booking, got %v", err)
	}

	stored, _ := f.bookings.FindByID(b.ID)
	stored.Status = bookingModel.BookingStatusCompleted
	f.bookings.Update(stored)

	if _, err := f.svc.Rate(b.ID, bookingTypes.RateRequest{Score: 5}, Actor{UserID: uintPtr(2)}); err != ErrNotOwner {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	rating, err := f.svc.Rate(b.ID, bookingTypes.RateRequest{Score: 4, Comment: "good work"}, Actor{UserID: uintPtr(1)})
	if err != nil {
		t.Fatalf("rate failed: %v", err)
	}
	if rating.Score != 4 {
		t.Fatalf("score not stored, got %d", rating.Score)
	}

	if _, err := f.svc.Rate(b.ID, bookingTypes.RateRequest{Score: 3}, Actor{UserID: uintPtr(1)}); err != ErrDuplicateRating {
		t.Fatalf("expected ErrDuplicateRating, got %v", err)
	}
}

func TestHistoryWithoutIdentityIsEmpty(t *testing.T) {
	f := newFixture()
	createPendingBooking(t, f, Actor{})

	result, err := f.svc.History(Actor{})
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(result.Bookings) != 0 || result.Stats.Total != 0 {
		t.Fatalf("history without identity should be empty, got %d bookings", len(result.Bookings))
	}
}

func TestHistoryStatsAndRewards(t *testing.T) {
	f := newFixture()
	f.users.Create(&userModel.User{ID: 1, Email: "asha@example.com"})
	actor := Actor{UserID: uintPtr(1)}

	b1 := createPendingBooking(t, f, actor)
	b2 := createPendingBooking(t, f, actor)
	b3 := createPendingBooking(t, f, actor)

	// b1 paid non-cash: CONFIRMED with 100 points
	if _, err := f.svc.RecordPayment(paymentTypes.PaymentCreateRequest{
		BookingID: b1.ID, Amount: 3850, Method: "UPI",
	}, actor); err != nil {
		t.Fatalf("payment failed: %v", err)
	}

	// b2 completed
	stored, _ := f.bookings.FindByID(b2.ID)
	stored.Status = bookingModel.BookingStatusCompleted
	f.bookings.Update(stored)

	// b3 cancelled
	if _, err := f.svc.Cancel(b3.ID, actor); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	result, err := f.svc.History(actor)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if result.Stats.Total != 3 {
		t.Fatalf("expected 3 bookings, got %d", result.Stats.Total)
	}
	if result.Stats.Pending != 1 {
		t.Fatalf("expected 1 pending (CONFIRMED), got %d", result.Stats.Pending)
	}
	if result.Stats.Completed != 1 {
		t.Fatalf("expected 1 completed, got %d", result.Stats.Completed)
	}
	if result.TotalRewards != 100 {
		t.Fatalf("expected 100 total rewards, got %d", result.TotalRewards)
	}
}

func TestHistoryMergesGuestBookingsByVerifiedEmail(t *testing.T) {
	f := newFixture()
	f.users.Create(&userModel.User{ID: 1, Email: "asha@example.com"})

	// a guest booking made before signup, under the same email
	createPendingBooking(t, f, Actor{})
	createPendingBooking(t, f, Actor{UserID: uintPtr(1)})

	result, err := f.svc.History(Actor{UserID: uintPtr(1), Email: "ASHA@example.com"})
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(result.Bookings) != 2 {
		t.Fatalf("expected own + guest booking, got %d", len(result.Bookings))
	}

	// the email must come from the caller's token, never a query parameter:
	// a different user with a different verified email sees neither booking
	f.users.Create(&userModel.User{ID: 2, Email: "ravi@example.com"})
	other, err := f.svc.History(Actor{UserID: uintPtr(2), Email: "ravi@example.com"})
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(other.Bookings) != 0 {
		t.Fatalf("other user should see no bookings, got %d", len(other.Bookings))
	}
}

func TestListRejectsUnknownStatus(t *testing.T) {
	f := newFixture()
	if _, err := f.svc.List("LOST"); err == nil {
		t.Fatalf("expected error for unknown status filter")
	}
}
