package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
)

func TestParseModerationAction(t *testing.T) {
	action, err := ParseModerationAction("approve")
	require.NoError(t, err)
	assert.Equal(t, ActionApprove, action)

	action, err = ParseModerationAction(" reject ")
	require.NoError(t, err)
	assert.Equal(t, ActionReject, action)

	_, err = ParseModerationAction("APPROVE")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAction)

	_, err = ParseModerationAction("")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAction)
}

func TestModerate(t *testing.T) {
	result, err := Moderate(ActionApprove)
	require.NoError(t, err)
	assert.Equal(t, ModerationResult{AdminApproved: true, Status: entity.ProductActive}, result)

	result, err = Moderate(ActionReject)
	require.NoError(t, err)
	assert.Equal(t, ModerationResult{AdminApproved: false, Status: entity.ProductRejected}, result)

	_, err = Moderate("maybe")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAction)
}

func TestVendorTransition(t *testing.T) {
	tr, err := VendorTransition(ActionApprove)
	require.NoError(t, err)
	assert.Equal(t, ApproveVendor, tr)

	tr, err = VendorTransition(ActionReject)
	require.NoError(t, err)
	assert.Equal(t, RejectVendor, tr)
}

func TestVendorSettableStatus(t *testing.T) {
	for _, s := range []string{"DRAFT", "active", "Inactive"} {
		_, err := VendorSettableStatus(s)
		assert.NoError(t, err, s)
	}

	_, err := VendorSettableStatus("REJECTED")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidProductStatus)

	_, err = VendorSettableStatus("archived")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidProductStatus)
}
