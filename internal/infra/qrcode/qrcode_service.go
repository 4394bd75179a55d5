package qrcode

import (
	"net/url"
	"strings"

	"funnel/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// ReferralParam is the query parameter landing pages read the marketer code from.
const ReferralParam = "ref"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              *url.URL
}

// NewQRCodeService creates a new QR code service instance. baseURL is the landing page
// the referral code is appended to.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) (service.QRCodeService, error) {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid landing base url %q", baseURL)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Errorf("landing base url must be absolute: %q", baseURL)
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              parsed,
	}, nil
}

// GenerateReferralQR generates a PNG QR code of the landing URL carrying code.
func (s *qrcodeService) GenerateReferralQR(code string) ([]byte, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, errors.New("referral code is required")
	}

	qrCode, err := qrcode.New(s.ReferralURL(code), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ReferralURL returns the landing URL with the referral code set, keeping any other
// query parameters of the base URL.
func (s *qrcodeService) ReferralURL(code string) string {
	u := *s.baseURL
	query := u.Query()
	query.Set(ReferralParam, code)
	u.RawQuery = query.Encode()

	return u.String()
}
