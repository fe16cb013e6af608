package service

// QRCodeService renders payment authorization URLs as QR codes so a customer
// at the counter can scan and complete a non-cash payment on their own device.
type QRCodeService interface {
	// GeneratePaymentQR encodes the provider's authorization URL as a PNG.
	GeneratePaymentQR(authorizationURL string) ([]byte, error)
}
