// Package validation holds the pure field checks shared by usecases and request validators.
package validation

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/errors"

	"github.com/shopspring/decimal"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
	otpPattern    = regexp.MustCompile(`^\d{6}$`)
	skuPattern    = regexp.MustCompile(`^[A-Za-z0-9_-]{3,50}$`)
	slugStrip     = regexp.MustCompile(`[^a-z0-9]+`)
)

const (
	nameMinLength = 2
	nameMaxLength = 100

	// MaxCount is the largest stock or threshold an integer column holds.
	MaxCount = math.MaxInt32

	PriceScale  int32 = 2
	WeightScale int32 = 3
)

// Column bounds for numeric(12,2) prices and numeric(10,3) weights.
var (
	MaxPrice  = decimal.RequireFromString("9999999999.99")
	MaxWeight = decimal.RequireFromString("9999999.999")
)

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsMobile reports whether s is a 10 digit mobile number starting with 6-9.
func IsMobile(s string) bool {
	return mobilePattern.MatchString(s)
}

// IsOTP reports whether s is a 6 digit code.
func IsOTP(s string) bool {
	return otpPattern.MatchString(s)
}

// IsSlug reports whether s is already in canonical slug form.
func IsSlug(s string) bool {
	return s != "" && Slugify(s) == s
}

// Email validates an email address.
func Email(s string) error {
	if !IsEmail(s) {
		return domainerrors.ErrInvalidEmail
	}

	return nil
}

// Mobile validates a mobile number.
func Mobile(s string) error {
	if !IsMobile(s) {
		return domainerrors.ErrInvalidMobile
	}

	return nil
}

// OTP validates the shape of a one-time code.
func OTP(s string) error {
	if !IsOTP(s) {
		return domainerrors.ErrOTPInvalid
	}

	return nil
}

// DeviceID validates an anonymous device identifier.
func DeviceID(s string) error {
	if strings.TrimSpace(s) == "" {
		return domainerrors.ErrInvalidDeviceID
	}

	return nil
}

// Required fails when any named value is blank. Names are reported in the error details.
func Required(fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)

	return domainerrors.ErrRequiredFields.WithDetails(strings.Join(missing, ", "))
}

// Name checks the length bounds of category and product names.
func Name(s string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	if n < nameMinLength || n > nameMaxLength {
		return domainerrors.ErrValidationFailed.WithMessage("Name must be between 2 and 100 characters")
	}

	return nil
}

// Price parses a non-negative decimal price with at most two decimal places.
func Price(s string) (decimal.Decimal, error) {
	price, ok := Amount(s, PriceScale, MaxPrice)
	if !ok {
		return decimal.Zero, domainerrors.ErrValidationFailed.WithMessage("Invalid price format")
	}

	return price, nil
}

// Amount parses a non-negative decimal no larger than limit and with at most scale decimal places.
// Trailing zeros beyond scale are accepted.
func Amount(s string, scale int32, limit decimal.Decimal) (decimal.Decimal, bool) {
	value, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || value.IsNegative() || value.GreaterThan(limit) {
		return decimal.Zero, false
	}
	if !value.Equal(value.Truncate(scale)) {
		return decimal.Zero, false
	}

	return value, true
}

// Stock parses a non-negative integer stock count.
func Stock(s string) (int, error) {
	stock, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !IsCount(stock) {
		return 0, domainerrors.ErrValidationFailed.WithMessage("Stock must be a non-negative integer")
	}

	return stock, nil
}

// IsCount reports whether n fits a non-negative integer column.
func IsCount(n int) bool {
	return n >= 0 && n <= MaxCount
}

// SKU validates the raw SKU before normalisation.
func SKU(s string) error {
	if !skuPattern.MatchString(strings.TrimSpace(s)) {
		return domainerrors.ErrValidationFailed.WithMessage("SKU must be 3-50 letters, digits, dashes or underscores")
	}

	return nil
}

// NormalizeSKU trims and upper-cases a SKU.
func NormalizeSKU(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Slugify lower-cases s and collapses every run of non-alphanumerics into a single dash.
func Slugify(s string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "item"
	}

	return slug
}

// NextSlug returns base, base-1, base-2, ... choosing the first candidate for which taken reports false.
func NextSlug(base string, taken func(candidate string) (bool, error)) (string, error) {
	candidate := base
	for counter := 1; ; counter++ {
		exists, err := taken(candidate)
		if err != nil {
			return "", errors.Wrap(err, "failed to check slug")
		}
		if !exists {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(counter)
	}
}

// SplitDisplayName splits "Ada King Lovelace" into ("Ada", "King Lovelace").
func SplitDisplayName(name string) (first, last string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
