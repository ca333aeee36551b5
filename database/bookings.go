package database

import (
	"database/sql"
	"errors"
	"strings"
	"time"
)

// Payment statuses. The webhook only ever moves Pending to Paid; Refunded
// is set manually by an operator.
const (
	PaymentPending  = "Pending"
	PaymentPaid     = "Paid"
	PaymentRefunded = "Refunded"
)

// Order statuses, a lifecycle separate from payment.
const (
	OrderPending    = "Pending"
	OrderConfirmed  = "Confirmed"
	OrderCollecting = "Collecting"
	OrderShipped    = "Shipped"
	OrderDelivered  = "Delivered"
	OrderCancelled  = "Cancelled"
)

var ErrBookingNotFound = errors.New("booking not found")

type Booking struct {
	ID              string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	CustomerCity    string
	NICNumber       string
	ReceiverName    string
	ReceiverAddress string
	ReceiverCountry string
	ReceiverPhone   string
	ShipmentKind    string
	ServiceTier     string
	WeightKg        float64
	LengthCm        float64
	WidthCm         float64
	HeightCm        float64
	ChargeableKg    float64
	BandLabel       string
	EstimateLKR     *float64
	PaymentStatus   string
	OrderStatus     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (s *Store) SaveBooking(b Booking) error {
	var estimate sql.NullFloat64
	if b.EstimateLKR != nil {
		estimate = sql.NullFloat64{Float64: *b.EstimateLKR, Valid: true}
	}
	_, err := s.DB.Exec(`
		INSERT INTO bookings (
			id,
			customer_name,
			customer_email,
			customer_phone,
			customer_address,
			customer_city,
			nic_number,
			receiver_name,
			receiver_address,
			receiver_country,
			receiver_phone,
			shipment_kind,
			service_tier,
			weight_kg,
			length_cm,
			width_cm,
			height_cm,
			chargeable_kg,
			band_label,
			estimate_lkr,
			payment_status,
			order_status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.ID, b.CustomerName, b.CustomerEmail, b.CustomerPhone, b.CustomerAddress, b.CustomerCity,
		b.NICNumber, b.ReceiverName, b.ReceiverAddress, b.ReceiverCountry, b.ReceiverPhone,
		b.ShipmentKind, b.ServiceTier, b.WeightKg, b.LengthCm, b.WidthCm, b.HeightCm,
		b.ChargeableKg, b.BandLabel, estimate, b.PaymentStatus, b.OrderStatus)
	return err
}

const bookingColumns = `
	id, customer_name, customer_email, customer_phone, customer_address, customer_city,
	nic_number, receiver_name, receiver_address, receiver_country, receiver_phone,
	shipment_kind, service_tier, weight_kg, length_cm, width_cm, height_cm,
	chargeable_kg, band_label, estimate_lkr, payment_status, order_status,
	created_at, updated_at
`

func scanBooking(row interface{ Scan(...any) error }) (Booking, error) {
	var b Booking
	var estimate sql.NullFloat64
	err := row.Scan(
		&b.ID, &b.CustomerName, &b.CustomerEmail, &b.CustomerPhone, &b.CustomerAddress, &b.CustomerCity,
		&b.NICNumber, &b.ReceiverName, &b.ReceiverAddress, &b.ReceiverCountry, &b.ReceiverPhone,
		&b.ShipmentKind, &b.ServiceTier, &b.WeightKg, &b.LengthCm, &b.WidthCm, &b.HeightCm,
		&b.ChargeableKg, &b.BandLabel, &estimate, &b.PaymentStatus, &b.OrderStatus,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return Booking{}, err
	}
	if estimate.Valid {
		value := estimate.Float64
		b.EstimateLKR = &value
	}
	return b, nil
}

func (s *Store) LoadBooking(id string) (Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Booking{}, ErrBookingNotFound
	}
	row := s.DB.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return Booking{}, ErrBookingNotFound
	}
	return b, err
}

func (s *Store) LoadBookingsPage(limit int, offset int) ([]Booking, bool, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := s.DB.Query(`
		SELECT `+bookingColumns+`
		FROM bookings
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, limit+1, offset)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	bookings := []Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, false, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	hasNext := false
	if len(bookings) > limit {
		hasNext = true
		bookings = bookings[:limit]
	}
	return bookings, hasNext, nil
}

// MarkBookingPaid moves a booking from Pending to Paid in one conditional
// update. It returns false when no row changed, which means the booking is
// either unknown or already past Pending; the caller decides which by
// reloading the record. Payment status never moves backward here, and the
// statement touches payment_status and updated_at only.
func (s *Store) MarkBookingPaid(id string) (bool, error) {
	result, err := s.DB.Exec(`
		UPDATE bookings
		SET payment_status = ?
		WHERE id = ? AND payment_status = ?
	`, PaymentPaid, id, PaymentPending)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// UpdateOrderStatus records an admin-driven order lifecycle change. The
// payment webhook never calls this. Callers are expected to have loaded
// the booking and validated the transition first.
func (s *Store) UpdateOrderStatus(id string, status string) error {
	_, err := s.DB.Exec(`
		UPDATE bookings
		SET order_status = ?
		WHERE id = ?
	`, status, id)
	return err
}
