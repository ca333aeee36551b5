package httpapi

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/DARK-V-98/flycargolanka-sub000/config"
	"github.com/DARK-V-98/flycargolanka-sub000/database"
	"github.com/DARK-V-98/flycargolanka-sub000/service"
)

type fakeBookings struct {
	bookings map[string]*database.Booking
	loadErr  error
	paidErr  error
}

func newFakeBookings(ids ...string) *fakeBookings {
	f := &fakeBookings{bookings: map[string]*database.Booking{}}
	for _, id := range ids {
		f.bookings[id] = &database.Booking{ID: id, PaymentStatus: database.PaymentPending}
	}
	return f
}

func (f *fakeBookings) LoadBooking(id string) (database.Booking, error) {
	if f.loadErr != nil {
		return database.Booking{}, f.loadErr
	}
	b, ok := f.bookings[id]
	if !ok {
		return database.Booking{}, database.ErrBookingNotFound
	}
	return *b, nil
}

func (f *fakeBookings) MarkBookingPaid(id string) (bool, error) {
	if f.paidErr != nil {
		return false, f.paidErr
	}
	b, ok := f.bookings[id]
	if !ok || b.PaymentStatus != database.PaymentPending {
		return false, nil
	}
	b.PaymentStatus = database.PaymentPaid
	return true, nil
}

func testClient() *service.PayhereClient {
	return service.NewPayhereClient(config.Config{
		PayhereMerchant: "1211149",
		PayhereSecret:   "test-merchant-secret",
		PayhereSandbox:  true,
		PublicBaseURL:   "https://booking.example.com",
	})
}

func signedForm(c *service.PayhereClient, orderID, amount, statusCode string) url.Values {
	secretSum := md5.Sum([]byte(c.MerchantSecret))
	secretHash := strings.ToUpper(hex.EncodeToString(secretSum[:]))
	sigSum := md5.Sum([]byte(c.MerchantID + orderID + amount + "LKR" + statusCode + secretHash))

	form := url.Values{}
	form.Set("merchant_id", c.MerchantID)
	form.Set("order_id", orderID)
	form.Set("payhere_amount", amount)
	form.Set("payhere_currency", "LKR")
	form.Set("status_code", statusCode)
	form.Set("md5sig", strings.ToUpper(hex.EncodeToString(sigSum[:])))
	return form
}

func TestPaymentNotificationMarksBookingPaid(t *testing.T) {
	client := testClient()
	store := newFakeBookings("bk-001")

	status, msg := applyPaymentNotification(client, store, signedForm(client, "bk-001", "3400.00", "2"), "10.0.0.1")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", status, msg)
	}
	if got := store.bookings["bk-001"].PaymentStatus; got != database.PaymentPaid {
		t.Fatalf("expected booking to be Paid, got %s", got)
	}
}

func TestPaymentNotificationIsIdempotent(t *testing.T) {
	client := testClient()
	store := newFakeBookings("bk-001")
	form := signedForm(client, "bk-001", "3400.00", "2")

	for i := 0; i < 3; i++ {
		status, msg := applyPaymentNotification(client, store, form, "10.0.0.1")
		if status != http.StatusOK {
			t.Fatalf("delivery %d: expected 200, got %d (%s)", i+1, status, msg)
		}
	}
	if got := store.bookings["bk-001"].PaymentStatus; got != database.PaymentPaid {
		t.Fatalf("expected booking to stay Paid, got %s", got)
	}
}

func TestPaymentNotificationNeverLeavesPaid(t *testing.T) {
	client := testClient()
	store := newFakeBookings("bk-001")
	store.bookings["bk-001"].PaymentStatus = database.PaymentPaid

	// Even a validly signed failure notification must not move the
	// booking backward.
	status, _ := applyPaymentNotification(client, store, signedForm(client, "bk-001", "3400.00", "-2"), "10.0.0.1")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if got := store.bookings["bk-001"].PaymentStatus; got != database.PaymentPaid {
		t.Fatalf("booking left Paid: %s", got)
	}
}

func TestPaymentNotificationNonSuccessIsNoOp(t *testing.T) {
	client := testClient()
	for _, code := range []string{"0", "-1", "-2", "-3"} {
		t.Run("status "+code, func(t *testing.T) {
			store := newFakeBookings("bk-001")
			status, _ := applyPaymentNotification(client, store, signedForm(client, "bk-001", "3400.00", code), "10.0.0.1")
			if status != http.StatusOK {
				t.Fatalf("expected 200 for status %s, got %d", code, status)
			}
			if got := store.bookings["bk-001"].PaymentStatus; got != database.PaymentPending {
				t.Fatalf("non-success notification must not mutate the booking, got %s", got)
			}
		})
	}
}

func TestPaymentNotificationRejectsBadSignature(t *testing.T) {
	client := testClient()
	store := newFakeBookings("bk-001")

	form := signedForm(client, "bk-001", "3400.00", "2")
	form.Set("payhere_amount", "1.00")

	status, msg := applyPaymentNotification(client, store, form, "10.0.0.1")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", status, msg)
	}
	if got := store.bookings["bk-001"].PaymentStatus; got != database.PaymentPending {
		t.Fatalf("a rejected notification must not mutate the booking, got %s", got)
	}
}

func TestPaymentNotificationRejectsMalformedBody(t *testing.T) {
	client := testClient()
	store := newFakeBookings("bk-001")

	form := signedForm(client, "bk-001", "3400.00", "2")
	form.Del("md5sig")

	status, _ := applyPaymentNotification(client, store, form, "10.0.0.1")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for a missing signature field, got %d", status)
	}
}

func TestPaymentNotificationUnknownOrder(t *testing.T) {
	client := testClient()
	store := newFakeBookings()

	status, msg := applyPaymentNotification(client, store, signedForm(client, "bk-404", "3400.00", "2"), "10.0.0.1")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for an unknown order, got %d (%s)", status, msg)
	}
}

func TestPaymentNotificationUnconfiguredGateway(t *testing.T) {
	client := service.NewPayhereClient(config.Config{})
	store := newFakeBookings("bk-001")

	status, _ := applyPaymentNotification(client, store, url.Values{}, "10.0.0.1")
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500 when credentials are missing, got %d", status)
	}
}

func TestPaymentNotificationStoreFailure(t *testing.T) {
	client := testClient()
	store := newFakeBookings("bk-001")
	store.loadErr = errors.New("connection refused")

	status, _ := applyPaymentNotification(client, store, signedForm(client, "bk-001", "3400.00", "2"), "10.0.0.1")
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500 on a store failure, got %d", status)
	}
}

func TestPaymentNotificationRacedDuplicate(t *testing.T) {
	client := testClient()
	store := newFakeBookings("bk-001")

	raced := &racedBookings{fakeBookings: store}
	status, _ := applyPaymentNotification(client, raced, signedForm(client, "bk-001", "3400.00", "2"), "10.0.0.1")
	if status != http.StatusOK {
		t.Fatalf("a raced duplicate must still be accepted, got %d", status)
	}
}

// racedBookings makes the booking flip to Paid after the load, so the
// conditional update finds nothing to do.
type racedBookings struct {
	*fakeBookings
}

func (r *racedBookings) LoadBooking(id string) (database.Booking, error) {
	b, err := r.fakeBookings.LoadBooking(id)
	if err == nil {
		r.fakeBookings.bookings[id].PaymentStatus = database.PaymentPaid
	}
	return b, err
}
