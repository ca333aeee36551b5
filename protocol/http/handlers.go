package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/DARK-V-98/flycargolanka-sub000/database"
	"github.com/DARK-V-98/flycargolanka-sub000/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("failed to encode JSON response:", err)
	}
}

func (a *App) home(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "Fly Cargo Lanka Booking Service")
}

func (a *App) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

type quoteRequest struct {
	Kind     string  `json:"kind"`
	Tier     string  `json:"tier"`
	Country  string  `json:"country"`
	WeightKg float64 `json:"weight_kg"`
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
}

func (q quoteRequest) toQuery() service.RateQuery {
	return service.RateQuery{
		Kind:     service.ShipmentKind(strings.ToLower(strings.TrimSpace(q.Kind))),
		Tier:     service.ServiceTier(strings.ToLower(strings.TrimSpace(q.Tier))),
		Country:  strings.TrimSpace(q.Country),
		WeightKg: q.WeightKg,
		LengthCm: q.LengthCm,
		WidthCm:  q.WidthCm,
		HeightCm: q.HeightCm,
	}
}

type quoteResponse struct {
	Price             float64 `json:"price,omitempty"`
	Currency          string  `json:"currency,omitempty"`
	Band              string  `json:"band,omitempty"`
	WeightKg          float64 `json:"weight_kg"`
	ChargeableKg      float64 `json:"chargeable_kg"`
	VolumetricApplied bool    `json:"volumetric_applied"`
	Overflow          bool    `json:"overflow,omitempty"`
	FailureKind       string  `json:"failure_kind,omitempty"`
	FailureMessage    string  `json:"failure_message,omitempty"`
}

func quoteResponseFromResult(result service.RateResult) quoteResponse {
	resp := quoteResponse{
		WeightKg:          result.WeightKg,
		ChargeableKg:      result.ChargeableKg,
		VolumetricApplied: result.VolumetricApplied(),
	}
	if result.OK() {
		resp.Price = result.Price
		resp.Currency = result.Currency
		resp.Band = result.BandLabel
		resp.Overflow = result.Overflow
	} else {
		resp.FailureKind = string(result.Failure)
		resp.FailureMessage = result.Failure.Message()
	}
	return resp
}

func (a *App) quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := a.Bookings.Quote(r.Context(), req.toQuery())
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		log.Println("quote failed:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to calculate rate"})
		return
	}

	writeJSON(w, http.StatusOK, quoteResponseFromResult(result))
}

type createBookingRequest struct {
	CustomerName    string       `json:"customer_name"`
	CustomerEmail   string       `json:"customer_email"`
	CustomerPhone   string       `json:"customer_phone"`
	CustomerAddress string       `json:"customer_address"`
	CustomerCity    string       `json:"customer_city"`
	NICNumber       string       `json:"nic_number"`
	ReceiverName    string       `json:"receiver_name"`
	ReceiverAddress string       `json:"receiver_address"`
	ReceiverPhone   string       `json:"receiver_phone"`
	Shipment        quoteRequest `json:"shipment"`
}

type bookingResponse struct {
	ID              string   `json:"id"`
	CustomerName    string   `json:"customer_name"`
	CustomerEmail   string   `json:"customer_email"`
	ReceiverCountry string   `json:"receiver_country"`
	ShipmentKind    string   `json:"shipment_kind"`
	ServiceTier     string   `json:"service_tier"`
	WeightKg        float64  `json:"weight_kg"`
	ChargeableKg    float64  `json:"chargeable_kg"`
	BandLabel       string   `json:"band,omitempty"`
	EstimateLKR     *float64 `json:"estimate_lkr"`
	PaymentStatus   string   `json:"payment_status"`
	OrderStatus     string   `json:"order_status"`
	CreatedAt       string   `json:"created_at"`
}

func bookingResponseFromRecord(b database.Booking) bookingResponse {
	return bookingResponse{
		ID:              b.ID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		ReceiverCountry: b.ReceiverCountry,
		ShipmentKind:    b.ShipmentKind,
		ServiceTier:     b.ServiceTier,
		WeightKg:        b.WeightKg,
		ChargeableKg:    b.ChargeableKg,
		BandLabel:       b.BandLabel,
		EstimateLKR:     b.EstimateLKR,
		PaymentStatus:   b.PaymentStatus,
		OrderStatus:     b.OrderStatus,
		CreatedAt:       b.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func (a *App) createBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	booking, result, err := a.Bookings.CreateBooking(r.Context(), service.CreateBookingRequest{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		CustomerCity:    req.CustomerCity,
		NICNumber:       req.NICNumber,
		ReceiverName:    req.ReceiverName,
		ReceiverAddress: req.ReceiverAddress,
		ReceiverPhone:   req.ReceiverPhone,
		Query:           req.Shipment.toQuery(),
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		log.Println("create booking failed:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to create booking"})
		return
	}

	log.Printf("created booking %s for %s (%s/%s to %s)",
		booking.ID, booking.CustomerEmail, booking.ShipmentKind, booking.ServiceTier, booking.ReceiverCountry)

	writeJSON(w, http.StatusCreated, struct {
		Booking bookingResponse `json:"booking"`
		Quote   quoteResponse   `json:"quote"`
	}{
		Booking: bookingResponseFromRecord(booking),
		Quote:   quoteResponseFromResult(result),
	})
}

func (a *App) getBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingID")

	booking, err := a.Store.LoadBooking(bookingID)
	if err != nil {
		if errors.Is(err, database.ErrBookingNotFound) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "booking not found"})
			return
		}
		log.Println("get booking failed:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to load booking"})
		return
	}

	writeJSON(w, http.StatusOK, bookingResponseFromRecord(booking))
}

func (a *App) checkout(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingID")

	booking, err := a.Store.LoadBooking(bookingID)
	if err != nil {
		if errors.Is(err, database.ErrBookingNotFound) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "booking not found"})
			return
		}
		log.Println("checkout load failed:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to load booking"})
		return
	}

	if booking.PaymentStatus != database.PaymentPending {
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "booking is already paid"})
		return
	}
	if booking.EstimateLKR == nil {
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "booking has no price yet"})
		return
	}

	firstName, lastName := splitName(booking.CustomerName)
	payload, err := a.Payments.BuildCheckoutPayload(service.CheckoutRequest{
		OrderID:   booking.ID,
		Amount:    *booking.EstimateLKR,
		Currency:  service.RateCurrency,
		FirstName: firstName,
		LastName:  lastName,
		Email:     booking.CustomerEmail,
		Phone:     booking.CustomerPhone,
		Address:   booking.CustomerAddress,
		City:      booking.CustomerCity,
		Country:   "Sri Lanka",
		Items:     fmt.Sprintf("Courier booking %s (%s, %s)", booking.ID, booking.ShipmentKind, booking.ServiceTier),
	})
	if err != nil {
		log.Println("checkout payload failed:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "payment gateway is not configured"})
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "text/html") {
		renderCheckoutForm(w, payload)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func splitName(full string) (string, string) {
	parts := strings.Fields(strings.TrimSpace(full))
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func renderCheckoutForm(w http.ResponseWriter, payload service.CheckoutPayload) {
	tmpl := template.Must(template.New("checkout").Parse(checkoutFormHTML))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, payload); err != nil {
		log.Println("failed to render checkout form:", err)
	}
}

const checkoutFormHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>Redirecting to payment</title>
</head>
<body>
  <p>Redirecting to the payment gateway&hellip;</p>
  <form method="post" action="{{.CheckoutURL}}">
    {{range $name, $value := .Fields}}<input type="hidden" name="{{$name}}" value="{{$value}}">
    {{end}}<noscript><button type="submit">Continue to payment</button></noscript>
  </form>
  <script>document.forms[0].submit();</script>
</body>
</html>`

func (a *App) uploadNIC(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingID")

	booking, err := a.Store.LoadBooking(bookingID)
	if err != nil {
		if errors.Is(err, database.ErrBookingNotFound) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "booking not found"})
			return
		}
		log.Println("nic upload load failed:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to load booking"})
		return
	}

	if err := r.ParseMultipartForm(2 * service.MaxNICImageBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid multipart form"})
		return
	}

	nicNumber := strings.TrimSpace(r.FormValue("nic_number"))
	if nicNumber == "" {
		nicNumber = booking.NICNumber
	}
	if nicNumber == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "nic_number is required"})
		return
	}

	frontFile, err := saveUploadedImage(r, "front")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	backFile, err := saveUploadedImage(r, "back")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	verification := database.NICVerification{
		ID:        uuid.NewString(),
		BookingID: booking.ID,
		NICNumber: nicNumber,
		FrontFile: frontFile,
		BackFile:  backFile,
		Status:    database.NICPending,
	}
	if err := a.Store.SaveNICVerification(verification); err != nil {
		log.Println("failed to save nic verification:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to save verification"})
		return
	}

	log.Printf("nic verification %s queued for booking %s", verification.ID, booking.ID)
	writeJSON(w, http.StatusCreated, map[string]string{
		"id":     verification.ID,
		"status": verification.Status,
	})
}

func saveUploadedImage(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", fmt.Errorf("%s image is required", field)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, service.MaxNICImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read %s image", field)
	}
	return service.SaveNICImage(header.Filename, data)
}

func (a *App) activeOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := a.Store.LoadOffers(true)
	if err != nil {
		log.Println("failed to load offers:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to load offers"})
		return
	}
	writeJSON(w, http.StatusOK, offersResponse(offers))
}

type offerResponse struct {
	ID          string  `json:"id"`
	Country     string  `json:"country,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	DiscountPct float64 `json:"discount_pct"`
	Active      bool    `json:"active"`
}

func offersResponse(offers []database.SpecialOffer) []offerResponse {
	out := make([]offerResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, offerResponse{
			ID:          o.ID,
			Country:     o.Country,
			Title:       o.Title,
			Description: o.Description,
			DiscountPct: o.DiscountPct,
			Active:      o.Active,
		})
	}
	return out
}

func (a *App) paymentReturn(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "Payment received. You can close this page; your booking will update shortly.")
}

func (a *App) paymentCancel(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "Payment cancelled. Your booking is still reserved and can be paid later.")
}
