package service

import "github.com/google/uuid"

// QRCodeService defines the interface for generating share QR codes.
type QRCodeService interface {
	// GenerateSkuShareQR renders a PNG QR code encoding the share link of a SKU.
	GenerateSkuShareQR(skuID uuid.UUID) ([]byte, error)
}
