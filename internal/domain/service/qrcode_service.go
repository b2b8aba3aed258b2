package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders storefront QR codes.
type QRCodeService interface {
	// StorefrontURL is the public link a storefront QR code encodes.
	StorefrontURL(vendorID uuid.UUID) string

	// GenerateStorefrontQR renders StorefrontURL as a PNG.
	GenerateStorefrontQR(vendorID uuid.UUID) ([]byte, error)

	// ParseStorefrontURL extracts the vendor id from a scanned storefront link.
	ParseStorefrontURL(data string) (uuid.UUID, error)
}
