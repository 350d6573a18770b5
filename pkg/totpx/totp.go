// Package totpx wraps pquerna/otp with the parameters the dashboard uses for
// authenticator-app second factors: SHA1, six digits, thirty second steps.
package totpx

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	Period        = 30
	Digits        = 6
	SecretSize    = 32
	DefaultWindow = 2

	qrSize = 256
)

var ErrMalformedCode = errors.New("totpx: code must be six digits")

// Enrollment is a freshly generated secret plus its otpauth:// provisioning URL.
type Enrollment struct {
	Secret string
	URL    string

	key *otp.Key
}

// Generate creates a new base32 secret for label under issuer. Authenticator
// apps display the issuer above the label.
func Generate(issuer, label string) (Enrollment, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: label,
		Period:      Period,
		SecretSize:  SecretSize,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return Enrollment{}, fmt.Errorf("totpx: generate key: %w", err)
	}
	return Enrollment{Secret: key.Secret(), URL: key.URL(), key: key}, nil
}

// QRCode renders the provisioning URL as a PNG data URL suitable for an <img> src.
func (e Enrollment) QRCode() (string, error) {
	key := e.key
	if key == nil {
		var err error
		if key, err = otp.NewKeyFromURL(e.URL); err != nil {
			return "", fmt.Errorf("totpx: parse url: %w", err)
		}
	}

	img, err := key.Image(qrSize, qrSize)
	if err != nil {
		return "", fmt.Errorf("totpx: render qr: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("totpx: encode png: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Verify reports whether code matches secret at any step within ±window of at.
// Input that is not exactly six ASCII digits is rejected before any hashing.
func Verify(secret, code string, at time.Time, window uint) bool {
	if !wellFormed(code) || secret == "" {
		return false
	}
	ok, err := totp.ValidateCustom(code, secret, at, totp.ValidateOpts{
		Period:    Period,
		Skew:      window,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}

// Code returns the code for secret at t. Used by tests and the operator CLI.
func Code(secret string, t time.Time) (string, error) {
	code, err := totp.GenerateCodeCustom(secret, t, totp.ValidateOpts{
		Period:    Period,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", fmt.Errorf("totpx: generate code: %w", err)
	}
	return code, nil
}

// CheckFormat returns ErrMalformedCode unless code is six ASCII digits.
func CheckFormat(code string) error {
	if !wellFormed(code) {
		return ErrMalformedCode
	}
	return nil
}

func wellFormed(code string) bool {
	if len(code) != Digits {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
