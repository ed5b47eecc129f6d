package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateProfileQR renders a PNG QR code pointing at the profile's public page.
	GenerateProfileQR(profileID int64) ([]byte, error)
}
