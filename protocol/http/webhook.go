package httpapi

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/DARK-V-98/flycargolanka-sub000/database"
	ipresolver "github.com/DARK-V-98/flycargolanka-sub000/middleware/ip_resolver"
	"github.com/DARK-V-98/flycargolanka-sub000/service"
)

// paymentBookings is the slice of the store the webhook needs: read the
// current payment state, apply the one-way Pending->Paid transition.
type paymentBookings interface {
	LoadBooking(id string) (database.Booking, error)
	MarkBookingPaid(id string) (bool, error)
}

// paymentNotify handles the gateway's server-to-server status callback.
// The response body is plain text; the HTTP status carries the outcome.
func (a *App) paymentNotify(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	callerIP := ipresolver.FromContext(r.Context())
	status, message := applyPaymentNotification(a.Payments, a.Store, r.PostForm, callerIP)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprintln(w, message)
}

// applyPaymentNotification authenticates the notification and applies the
// booking mutation at most once. Duplicate deliveries for an already-paid
// booking are accepted and do nothing; nothing ever moves a booking
// backward out of Paid.
func applyPaymentNotification(client *service.PayhereClient, store paymentBookings, form url.Values, callerIP string) (int, string) {
	if !client.Configured() {
		log.Println("payment notification dropped: merchant credentials not configured")
		return http.StatusInternalServerError, "payment gateway not configured"
	}

	notification, err := service.ParseNotification(form)
	if err != nil {
		log.Printf("payment notification malformed (from %s): %v", callerIP, err)
		return http.StatusBadRequest, "malformed notification"
	}

	if err := client.VerifyNotification(notification); err != nil {
		if errors.Is(err, service.ErrPayhereNotConfigured) {
			return http.StatusInternalServerError, "payment gateway not configured"
		}
		// Do not reveal which part of the signature check failed.
		log.Printf("payment notification rejected for order %s (from %s): signature mismatch",
			notification.OrderID, callerIP)
		return http.StatusBadRequest, "invalid signature"
	}

	if notification.StatusCode != service.PayhereStatusSuccess {
		log.Printf("payment notification for order %s carries status %d, no action",
			notification.OrderID, notification.StatusCode)
		return http.StatusOK, "accepted"
	}

	booking, err := store.LoadBooking(notification.OrderID)
	if err != nil {
		if errors.Is(err, database.ErrBookingNotFound) {
			log.Printf("payment notification for unknown order %s (from %s)", notification.OrderID, callerIP)
			return http.StatusBadRequest, "unknown order"
		}
		log.Println("payment notification load failed:", err)
		return http.StatusInternalServerError, "failed to load booking"
	}

	if booking.PaymentStatus != database.PaymentPending {
		// Gateway retry or duplicate delivery; the transition already
		// happened and must not error.
		log.Printf("payment notification for order %s is a no-op (status %s)",
			booking.ID, booking.PaymentStatus)
		return http.StatusOK, "accepted"
	}

	transitioned, err := store.MarkBookingPaid(booking.ID)
	if err != nil {
		log.Println("payment notification update failed:", err)
		return http.StatusInternalServerError, "failed to update booking"
	}
	if !transitioned {
		// A concurrent delivery won the conditional update. Same outcome.
		log.Printf("payment notification for order %s raced a duplicate, no-op", booking.ID)
		return http.StatusOK, "accepted"
	}

	log.Printf("booking %s marked Paid (amount %s %s, from %s)",
		booking.ID, notification.Amount, notification.Currency, callerIP)
	return http.StatusOK, "accepted"
}
