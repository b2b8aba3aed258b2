// Package qrcode renders vendor storefront links as QR codes.
package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize        = 256
	defaultBaseURL     = "http://localhost:8080"
	storefrontPathRoot = "/stores/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
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
		size = defaultSize
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// New builds the service from the qrcode config section.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func (s *qrcodeService) StorefrontURL(vendorID uuid.UUID) string {
	return s.baseURL + storefrontPathRoot + vendorID.String()
}

// GenerateStorefrontQR renders the storefront link as a PNG
func (s *qrcodeService) GenerateStorefrontQR(vendorID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.StorefrontURL(vendorID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseStorefrontURL extracts the vendor id from a scanned storefront link
func (s *qrcodeService) ParseStorefrontURL(data string) (uuid.UUID, error) {
	parsed, err := url.Parse(strings.TrimSpace(data))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse storefront URL: %w", err)
	}

	rest, ok := strings.CutPrefix(parsed.Path, storefrontPathRoot)
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return uuid.Nil, fmt.Errorf("not a storefront URL: %s", data)
	}

	vendorID, err := uuid.Parse(rest)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse vendor ID: %w", err)
	}

	return vendorID, nil
}
