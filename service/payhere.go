package service

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/DARK-V-98/flycargolanka-sub000/config"
)

const (
	payhereSandboxCheckoutURL = "https://sandbox.payhere.lk/pay/checkout"
	payhereLiveCheckoutURL    = "https://www.payhere.lk/pay/checkout"
)

// PayHere notification status codes.
const (
	PayhereStatusSuccess    = 2
	PayhereStatusPending    = 0
	PayhereStatusCancelled  = -1
	PayhereStatusFailed     = -2
	PayhereStatusChargeback = -3
)

var (
	ErrPayhereNotConfigured  = errors.New("payhere merchant credentials are not configured")
	ErrSignatureMismatch     = errors.New("payment notification signature mismatch")
	ErrMalformedNotification = errors.New("payment notification is missing required fields")
)

// PayhereClient builds signed checkout payloads and verifies inbound
// notifications. The gateway recomputes both hashes independently, so the
// algorithm and the amount formatting must never drift.
type PayhereClient struct {
	MerchantID     string
	MerchantSecret string
	Sandbox        bool
	PublicBaseURL  string
}

func NewPayhereClient(cfg config.Config) *PayhereClient {
	return &PayhereClient{
		MerchantID:     strings.TrimSpace(cfg.PayhereMerchant),
		MerchantSecret: strings.TrimSpace(cfg.PayhereSecret),
		Sandbox:        cfg.PayhereSandbox,
		PublicBaseURL:  strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/"),
	}
}

func (c *PayhereClient) Configured() bool {
	return c != nil && c.MerchantID != "" && c.MerchantSecret != ""
}

func (c *PayhereClient) CheckoutURL() string {
	if c.Sandbox {
		return payhereSandboxCheckoutURL
	}
	return payhereLiveCheckoutURL
}

// FormatAmount renders an amount exactly as the signature algorithm expects:
// two decimals, no thousands separators.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

func md5Upper(value string) string {
	sum := md5.Sum([]byte(value))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

func (c *PayhereClient) secretHash() string {
	return md5Upper(c.MerchantSecret)
}

// SignCheckout produces the outbound hash field:
// UPPER(MD5(merchant_id + order_id + amount + currency + UPPER(MD5(secret)))).
func (c *PayhereClient) SignCheckout(orderID string, amount float64, currency string) (string, error) {
	if !c.Configured() {
		return "", ErrPayhereNotConfigured
	}
	return md5Upper(c.MerchantID + orderID + FormatAmount(amount) + currency + c.secretHash()), nil
}

// CheckoutRequest carries the booking details needed for the hosted
// checkout redirect.
type CheckoutRequest struct {
	OrderID   string
	Amount    float64
	Currency  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	Country   string
	Items     string
}

// CheckoutPayload is the browser form POSTed to the gateway's hosted page.
type CheckoutPayload struct {
	CheckoutURL string            `json:"checkout_url"`
	Fields      map[string]string `json:"fields"`
}

func (c *PayhereClient) BuildCheckoutPayload(req CheckoutRequest) (CheckoutPayload, error) {
	if !c.Configured() {
		return CheckoutPayload{}, ErrPayhereNotConfigured
	}
	if strings.TrimSpace(req.OrderID) == "" {
		return CheckoutPayload{}, errors.New("order id is required")
	}
	if req.Amount <= 0 {
		return CheckoutPayload{}, errors.New("amount must be positive")
	}
	if c.PublicBaseURL == "" {
		return CheckoutPayload{}, errors.New("public base url is not configured")
	}
	currency := strings.TrimSpace(req.Currency)
	if currency == "" {
		currency = RateCurrency
	}

	hash, err := c.SignCheckout(req.OrderID, req.Amount, currency)
	if err != nil {
		return CheckoutPayload{}, err
	}

	return CheckoutPayload{
		CheckoutURL: c.CheckoutURL(),
		Fields: map[string]string{
			"merchant_id": c.MerchantID,
			"return_url":  c.PublicBaseURL + "/payments/return",
			"cancel_url":  c.PublicBaseURL + "/payments/cancel",
			"notify_url":  c.PublicBaseURL + "/payments/notify",
			"first_name":  req.FirstName,
			"last_name":   req.LastName,
			"email":       req.Email,
			"phone":       req.Phone,
			"address":     req.Address,
			"city":        req.City,
			"country":     req.Country,
			"order_id":    req.OrderID,
			"items":       req.Items,
			"currency":    currency,
			"amount":      FormatAmount(req.Amount),
			"hash":        hash,
		},
	}, nil
}

// PaymentNotification is the untrusted server-to-server callback body.
// Amount stays a string: the signature covers the bytes the gateway sent,
// not a re-rendered number.
type PaymentNotification struct {
	MerchantID string
	OrderID    string
	Amount     string
	Currency   string
	StatusCode int
	Signature  string
}

// ParseNotification validates and converts the form-encoded webhook body.
func ParseNotification(form url.Values) (PaymentNotification, error) {
	n := PaymentNotification{
		MerchantID: strings.TrimSpace(form.Get("merchant_id")),
		OrderID:    strings.TrimSpace(form.Get("order_id")),
		Amount:     strings.TrimSpace(form.Get("payhere_amount")),
		Currency:   strings.TrimSpace(form.Get("payhere_currency")),
		Signature:  strings.TrimSpace(form.Get("md5sig")),
	}
	statusValue := strings.TrimSpace(form.Get("status_code"))
	if n.MerchantID == "" || n.OrderID == "" || n.Amount == "" || n.Currency == "" || n.Signature == "" || statusValue == "" {
		return PaymentNotification{}, ErrMalformedNotification
	}
	status, err := strconv.Atoi(statusValue)
	if err != nil {
		return PaymentNotification{}, fmt.Errorf("%w: bad status code %q", ErrMalformedNotification, statusValue)
	}
	n.StatusCode = status
	return n, nil
}

// VerifyNotification recomputes the md5sig over the supplied fields:
// UPPER(MD5(merchant_id + order_id + amount + currency + status_code +
// UPPER(MD5(secret)))). The comparison reveals nothing about which part
// failed.
func (c *PayhereClient) VerifyNotification(n PaymentNotification) error {
	if !c.Configured() {
		return ErrPayhereNotConfigured
	}
	local := md5Upper(
		n.MerchantID + n.OrderID + n.Amount + n.Currency + strconv.Itoa(n.StatusCode) + c.secretHash(),
	)
	if local != strings.ToUpper(n.Signature) {
		return ErrSignatureMismatch
	}
	return nil
}
