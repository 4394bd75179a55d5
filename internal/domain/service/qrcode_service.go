package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateReferralQR returns a PNG QR code of the landing URL carrying the referral code
	GenerateReferralQR(code string) ([]byte, error)
}
