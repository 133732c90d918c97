package gateway

import (
	"crypto/md5" // #nosec G501 -- md5 is mandated by the PayHere signing protocol
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"
)

// PayHere signs checkout forms and verifies server-to-server notifications
// of the PayHere hosted payment page.
type PayHere struct {
	merchantID   string
	hashedSecret string
	checkoutURL  string
	returnURL    string
	cancelURL    string
	notifyURL    string
}

var _ shared.PaymentGateway = (*PayHere)(nil)

func NewPayHere(cfg config.PayHereConfig) *PayHere {
	return &PayHere{
		merchantID:   cfg.MerchantID,
		hashedSecret: upperMD5(cfg.MerchantSecret),
		checkoutURL:  cfg.CheckoutURL,
		returnURL:    cfg.ReturnURL,
		cancelURL:    cfg.CancelURL,
		notifyURL:    cfg.NotifyURL,
	}
}

func (p *PayHere) Checkout(req shared.CheckoutRequest) shared.CheckoutPayload {
	amount := req.Amount.Decimal()
	return shared.CheckoutPayload{
		MerchantID: p.merchantID,
		ReturnURL:  p.returnURL,
		CancelURL:  p.cancelURL,
		NotifyURL:  p.notifyURL,
		OrderID:    req.OrderID,
		Items:      req.Items,
		Currency:   req.Currency,
		Amount:     amount,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Hash:       upperMD5(p.merchantID + req.OrderID + amount + req.Currency + p.hashedSecret),
		ActionURL:  p.checkoutURL,
	}
}

// VerifyNotification recomputes md5sig from the notified fields. There is no
// bypass value: an empty or mismatching signature is always rejected.
func (p *PayHere) VerifyNotification(n shared.GatewayNotification) error {
	if n.Signature == "" || n.MerchantID != p.merchantID {
		return errs.ErrInvalidSignature
	}

	expected := upperMD5(n.MerchantID + n.OrderID + n.Amount + n.Currency + n.StatusCode + p.hashedSecret)
	got := strings.ToUpper(strings.TrimSpace(n.Signature))
	if subtle.ConstantTimeCompare([]byte(expected), []byte(got)) != 1 {
		return errs.ErrInvalidSignature
	}
	return nil
}

// Sign produces the md5sig PayHere would send for n. Used by sandbox tooling and tests.
func (p *PayHere) Sign(n shared.GatewayNotification) string {
	return upperMD5(n.MerchantID + n.OrderID + n.Amount + n.Currency + n.StatusCode + p.hashedSecret)
}

func upperMD5(s string) string {
	sum := md5.Sum([]byte(s)) // #nosec G401
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
