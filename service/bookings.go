package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/DARK-V-98/flycargolanka-sub000/database"
)

// BookingService owns booking creation and the quote lookups behind it.
// Every caller goes through the same CalculateRate implementation; the
// banding algorithm is never re-derived per call site.
type BookingService struct {
	Store *database.Store
}

func NewBookingService(store *database.Store) *BookingService {
	return &BookingService{Store: store}
}

type CreateBookingRequest struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	CustomerCity    string
	NICNumber       string
	ReceiverName    string
	ReceiverAddress string
	ReceiverPhone   string
	Query           RateQuery
}

func (r CreateBookingRequest) validate() error {
	if strings.TrimSpace(r.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(r.CustomerEmail) == "" {
		return fmt.Errorf("%w: customer email is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(r.CustomerPhone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidRequest)
	}
	return ValidateQuery(r.Query)
}

// Quote resolves a rate query against the stored rate table for the
// destination. Calculation failures come back inside the result, not as
// errors; the error return is for infrastructure problems only.
func (s *BookingService) Quote(ctx context.Context, q RateQuery) (RateResult, error) {
	if err := ValidateQuery(q); err != nil {
		return RateResult{}, err
	}

	exists, err := s.Store.CountryExists(q.Country)
	if err != nil {
		return RateResult{}, err
	}
	if !exists {
		return CalculateRate(q, nil), nil
	}

	records, err := s.Store.LoadWeightBands(ctx, q.Country)
	if err != nil {
		return RateResult{}, err
	}
	table, err := RateTableFromRecords(q.Country, records)
	if err != nil {
		return RateResult{}, err
	}
	return CalculateRate(q, table), nil
}

// CreateBooking validates the request, prices it with the shared
// calculator and persists the booking. A failed estimate does not block
// the booking: it is stored unpriced and awaits manual handling.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (database.Booking, RateResult, error) {
	if err := req.validate(); err != nil {
		return database.Booking{}, RateResult{}, err
	}

	result, err := s.Quote(ctx, req.Query)
	if err != nil {
		return database.Booking{}, RateResult{}, err
	}

	booking := database.Booking{
		ID:              uuid.NewString(),
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
		CustomerAddress: strings.TrimSpace(req.CustomerAddress),
		CustomerCity:    strings.TrimSpace(req.CustomerCity),
		NICNumber:       strings.TrimSpace(req.NICNumber),
		ReceiverName:    strings.TrimSpace(req.ReceiverName),
		ReceiverAddress: strings.TrimSpace(req.ReceiverAddress),
		ReceiverCountry: strings.TrimSpace(req.Query.Country),
		ReceiverPhone:   strings.TrimSpace(req.ReceiverPhone),
		ShipmentKind:    string(req.Query.Kind),
		ServiceTier:     string(req.Query.Tier),
		WeightKg:        req.Query.WeightKg,
		LengthCm:        req.Query.LengthCm,
		WidthCm:         req.Query.WidthCm,
		HeightCm:        req.Query.HeightCm,
		ChargeableKg:    result.ChargeableKg,
		PaymentStatus:   database.PaymentPending,
		OrderStatus:     database.OrderPending,
	}
	if result.OK() {
		price := result.Price
		booking.EstimateLKR = &price
		booking.BandLabel = result.BandLabel
	} else {
		log.Printf("booking %s created without estimate: %s", booking.ID, result.Failure)
	}

	if err := s.Store.SaveBooking(booking); err != nil {
		return database.Booking{}, RateResult{}, fmt.Errorf("failed to save booking: %w", err)
	}
	return booking, result, nil
}

// allowedOrderTransitions is the admin-facing order lifecycle. Cancelled
// and Delivered are terminal.
var allowedOrderTransitions = map[string]map[string]bool{
	database.OrderPending:    {database.OrderConfirmed: true, database.OrderCancelled: true},
	database.OrderConfirmed:  {database.OrderCollecting: true, database.OrderCancelled: true},
	database.OrderCollecting: {database.OrderShipped: true, database.OrderCancelled: true},
	database.OrderShipped:    {database.OrderDelivered: true},
}

var ErrOrderTransitionNotAllowed = errors.New("order status transition not allowed")

// AdvanceOrderStatus applies an admin order-status change after checking
// the transition map. Payment status is untouched.
func (s *BookingService) AdvanceOrderStatus(bookingID string, target string) error {
	booking, err := s.Store.LoadBooking(bookingID)
	if err != nil {
		return err
	}
	targets, ok := allowedOrderTransitions[booking.OrderStatus]
	if !ok || !targets[target] {
		return fmt.Errorf("%w: %s -> %s", ErrOrderTransitionNotAllowed, booking.OrderStatus, target)
	}
	return s.Store.UpdateOrderStatus(bookingID, target)
}
