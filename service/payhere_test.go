package service

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/DARK-V-98/flycargolanka-sub000/config"
)

func testPayhereClient() *PayhereClient {
	return NewPayhereClient(config.Config{
		PayhereMerchant: "1211149",
		PayhereSecret:   "test-merchant-secret",
		PayhereSandbox:  true,
		PublicBaseURL:   "https://booking.example.com/",
	})
}

func notificationForm(c *PayhereClient, orderID, amount string, statusCode string) url.Values {
	form := url.Values{}
	form.Set("merchant_id", c.MerchantID)
	form.Set("order_id", orderID)
	form.Set("payhere_amount", amount)
	form.Set("payhere_currency", "LKR")
	form.Set("status_code", statusCode)
	form.Set("md5sig", md5Upper(c.MerchantID+orderID+amount+"LKR"+statusCode+c.secretHash()))
	return form
}

func TestSignCheckoutMatchesVerifier(t *testing.T) {
	c := testPayhereClient()

	hash, err := c.SignCheckout("bk-001", 3400, "LKR")
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if hash != strings.ToUpper(hash) {
		t.Fatal("hash must be uppercase hex")
	}
	if len(hash) != 32 {
		t.Fatalf("expected 32 hex chars, got %d", len(hash))
	}

	// The webhook hash for a successful payment covers the same fields
	// plus the status code. A notification built from the same inputs
	// must verify.
	n, err := ParseNotification(notificationForm(c, "bk-001", "3400.00", "2"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if err := c.VerifyNotification(n); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
}

func TestSignCheckoutDeterministic(t *testing.T) {
	c := testPayhereClient()
	first, _ := c.SignCheckout("bk-001", 1500, "LKR")
	second, _ := c.SignCheckout("bk-001", 1500, "LKR")
	if first != second {
		t.Fatalf("same inputs produced different hashes: %s vs %s", first, second)
	}

	other, _ := c.SignCheckout("bk-002", 1500, "LKR")
	if other == first {
		t.Fatal("different order ids must produce different hashes")
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		1500:    "1500.00",
		1500.5:  "1500.50",
		0.1:     "0.10",
		12345.6: "12345.60",
	}
	for amount, want := range cases {
		if got := FormatAmount(amount); got != want {
			t.Fatalf("FormatAmount(%v) = %q, want %q", amount, got, want)
		}
	}
}

func TestVerifyNotificationRejectsTampering(t *testing.T) {
	c := testPayhereClient()

	tamper := []struct {
		name  string
		field string
		value string
	}{
		{"amount changed", "payhere_amount", "1.00"},
		{"order swapped", "order_id", "bk-999"},
		{"status flipped", "status_code", "2"},
		{"merchant swapped", "merchant_id", "9999999"},
		{"currency changed", "payhere_currency", "USD"},
	}
	for _, tc := range tamper {
		t.Run(tc.name, func(t *testing.T) {
			form := notificationForm(c, "bk-001", "3400.00", "-2")
			form.Set(tc.field, tc.value)
			n, err := ParseNotification(form)
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if err := c.VerifyNotification(n); !errors.Is(err, ErrSignatureMismatch) {
				t.Fatalf("expected signature mismatch, got %v", err)
			}
		})
	}
}

func TestVerifyNotificationAcceptsLowercaseSignature(t *testing.T) {
	c := testPayhereClient()
	form := notificationForm(c, "bk-001", "3400.00", "2")
	form.Set("md5sig", strings.ToLower(form.Get("md5sig")))

	n, err := ParseNotification(form)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if err := c.VerifyNotification(n); err != nil {
		t.Fatalf("case of the supplied signature must not matter: %v", err)
	}
}

func TestParseNotificationMissingFields(t *testing.T) {
	c := testPayhereClient()
	required := []string{"merchant_id", "order_id", "payhere_amount", "payhere_currency", "status_code", "md5sig"}
	for _, field := range required {
		t.Run(field, func(t *testing.T) {
			form := notificationForm(c, "bk-001", "3400.00", "2")
			form.Del(field)
			if _, err := ParseNotification(form); !errors.Is(err, ErrMalformedNotification) {
				t.Fatalf("expected malformed notification without %s, got %v", field, err)
			}
		})
	}

	form := notificationForm(c, "bk-001", "3400.00", "2")
	form.Set("status_code", "paid")
	if _, err := ParseNotification(form); !errors.Is(err, ErrMalformedNotification) {
		t.Fatalf("expected malformed notification for non-numeric status, got %v", err)
	}
}

func TestUnconfiguredClient(t *testing.T) {
	c := NewPayhereClient(config.Config{})
	if c.Configured() {
		t.Fatal("client without credentials must not report configured")
	}
	if _, err := c.SignCheckout("bk-001", 100, "LKR"); !errors.Is(err, ErrPayhereNotConfigured) {
		t.Fatalf("expected ErrPayhereNotConfigured, got %v", err)
	}
	if err := c.VerifyNotification(PaymentNotification{}); !errors.Is(err, ErrPayhereNotConfigured) {
		t.Fatalf("expected ErrPayhereNotConfigured, got %v", err)
	}
}

func TestBuildCheckoutPayload(t *testing.T) {
	c := testPayhereClient()
	payload, err := c.BuildCheckoutPayload(CheckoutRequest{
		OrderID:   "bk-001",
		Amount:    3400,
		FirstName: "Nimal",
		LastName:  "Perera",
		Email:     "nimal@example.com",
		Phone:     "0771234567",
		Address:   "12 Galle Road",
		City:      "Colombo",
		Country:   "Sri Lanka",
		Items:     "Courier booking bk-001",
	})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if payload.CheckoutURL != "https://sandbox.payhere.lk/pay/checkout" {
		t.Fatalf("sandbox client must target the sandbox gateway, got %s", payload.CheckoutURL)
	}
	if got := payload.Fields["amount"]; got != "3400.00" {
		t.Fatalf("expected amount 3400.00, got %q", got)
	}
	if got := payload.Fields["currency"]; got != "LKR" {
		t.Fatalf("expected default currency LKR, got %q", got)
	}
	if got := payload.Fields["notify_url"]; got != "https://booking.example.com/payments/notify" {
		t.Fatalf("unexpected notify url %q", got)
	}

	want, _ := c.SignCheckout("bk-001", 3400, "LKR")
	if payload.Fields["hash"] != want {
		t.Fatalf("payload hash %q does not match the signer", payload.Fields["hash"])
	}
}
