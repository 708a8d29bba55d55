package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var (
	// ErrMissingField is returned before any hashing when one of the callback
	// fields is absent.
	ErrMissingField = errors.New("missing payment details")

	// ErrMismatch means the callback was not signed with our key secret.
	ErrMismatch = errors.New("payment verification failed")
)

// Verifier authenticates Razorpay payment callbacks. The provider signs
// "<order_id>|<payment_id>" with the merchant key secret (HMAC-SHA256, hex).
type Verifier struct {
	secret []byte
}

func NewVerifier(keySecret string) *Verifier {
	return &Verifier{secret: []byte(keySecret)}
}

// Sign computes the expected hex signature for an (orderID, paymentID) pair.
func (v *Verifier) Sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a provided signature against the computed one. Comparison is
// constant-time.
func (v *Verifier) Verify(orderID, paymentID, providedSignature string) error {
	if orderID == "" || paymentID == "" || providedSignature == "" {
		return ErrMissingField
	}

	expected := v.Sign(orderID, paymentID)
	if !hmac.Equal([]byte(expected), []byte(providedSignature)) {
		return ErrMismatch
	}

	return nil
}
