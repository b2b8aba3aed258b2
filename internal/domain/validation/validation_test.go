package validation

import (
	"testing"

	domainerrors "marketplace/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatChecks(t *testing.T) {
	tests := []struct {
		name  string
		check func(string) bool
		input string
		want  bool
	}{
		{name: "email ok", check: IsEmail, input: "a@b.co", want: true},
		{name: "email without tld", check: IsEmail, input: "a@b", want: false},
		{name: "email with space", check: IsEmail, input: "a b@c.io", want: false},
		{name: "mobile ok", check: IsMobile, input: "9876543210", want: true},
		{name: "mobile leading five", check: IsMobile, input: "5876543210", want: false},
		{name: "mobile short", check: IsMobile, input: "987654321", want: false},
		{name: "otp ok", check: IsOTP, input: "123456", want: true},
		{name: "otp letters", check: IsOTP, input: "12a456", want: false},
		{name: "otp long", check: IsOTP, input: "1234567", want: false},
		{name: "slug ok", check: IsSlug, input: "home-garden", want: true},
		{name: "slug upper", check: IsSlug, input: "Home", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.input))
		})
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "home-garden", Slugify("Home & Garden"))
	assert.Equal(t, "men-s-clothing", Slugify("  Men's Clothing "))
	assert.Equal(t, "item", Slugify("***"))
}

func TestNextSlug_AppendsCounterUntilFree(t *testing.T) {
	taken := map[string]bool{"shoes": true, "shoes-1": true}

	slug, err := NextSlug("shoes", func(candidate string) (bool, error) {
		return taken[candidate], nil
	})

	require.NoError(t, err)
	assert.Equal(t, "shoes-2", slug)
}

func TestNextSlug_PropagatesLookupError(t *testing.T) {
	_, err := NextSlug("shoes", func(string) (bool, error) {
		return false, errors.New("db down")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestRequired_ReportsMissingFieldsSorted(t *testing.T) {
	err := Required(map[string]string{"mobile": "", "email": " ", "city": "Pune"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRequiredFields))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "email, mobile", appErr.Details())
}

func TestPriceAndStock(t *testing.T) {
	price, err := Price("19.90")
	require.NoError(t, err)
	assert.Equal(t, "19.9", price.String())

	_, err = Price("-1")
	assert.Error(t, err)

	_, err = Price("abc")
	assert.Error(t, err)

	stock, err := Stock("7")
	require.NoError(t, err)
	assert.Equal(t, 7, stock)

	_, err = Stock("-2")
	assert.Error(t, err)
}

func TestNumericColumnBounds(t *testing.T) {
	tests := []struct {
		name    string
		parse   func() error
		wantErr bool
	}{
		{name: "price at column max", parse: func() error { _, err := Price("9999999999.99"); return err }},
		{name: "price trailing zeros", parse: func() error { _, err := Price("1.500"); return err }},
		{name: "price over column max", parse: func() error { _, err := Price("123456789012.999"); return err }, wantErr: true},
		{name: "price three decimals", parse: func() error { _, err := Price("1.999"); return err }, wantErr: true},
		{name: "stock at int32 max", parse: func() error { _, err := Stock("2147483647"); return err }},
		{name: "stock over int32", parse: func() error { _, err := Stock("3000000000"); return err }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse()
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAmount(t *testing.T) {
	weight, ok := Amount("2.125", WeightScale, MaxWeight)
	require.True(t, ok)
	assert.Equal(t, "2.125", weight.String())

	_, ok = Amount("2.1255", WeightScale, MaxWeight)
	assert.False(t, ok)

	_, ok = Amount("10000000", WeightScale, MaxWeight)
	assert.False(t, ok)

	assert.True(t, IsCount(0))
	assert.False(t, IsCount(-1))
	assert.False(t, IsCount(MaxCount+1))
}

func TestSKU(t *testing.T) {
	require.NoError(t, SKU("ab-12"))
	assert.Error(t, SKU("a"))
	assert.Error(t, SKU("bad sku"))
	assert.Equal(t, "AB-12", NormalizeSKU("  ab-12 "))
}

func TestSplitDisplayName(t *testing.T) {
	first, last := SplitDisplayName("Ada King Lovelace")
	assert.Equal(t, "Ada", first)
	assert.Equal(t, "King Lovelace", last)

	first, last = SplitDisplayName("Cher")
	assert.Equal(t, "Cher", first)
	assert.Empty(t, last)
}
