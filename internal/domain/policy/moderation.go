package policy

import (
	"strings"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
)

// ModerationAction is an admin decision on a product or vendor application.
type ModerationAction string

const (
	ActionApprove ModerationAction = "approve"
	ActionReject  ModerationAction = "reject"
)

// EventProductModerated is published after a product decision commits.
const EventProductModerated = "product.moderated"

// ParseModerationAction accepts exactly "approve" or "reject".
func ParseModerationAction(s string) (ModerationAction, error) {
	switch ModerationAction(strings.TrimSpace(s)) {
	case ActionApprove:
		return ActionApprove, nil
	case ActionReject:
		return ActionReject, nil
	default:
		return "", domainerrors.ErrInvalidAction
	}
}

// ModerationResult is the pair of fields a product decision writes together.
type ModerationResult struct {
	AdminApproved bool
	Status        entity.ProductStatus
}

// Moderate maps a decision onto the product's approval flag and status.
func Moderate(action ModerationAction) (ModerationResult, error) {
	switch action {
	case ActionApprove:
		return ModerationResult{AdminApproved: true, Status: entity.ProductActive}, nil
	case ActionReject:
		return ModerationResult{AdminApproved: false, Status: entity.ProductRejected}, nil
	default:
		return ModerationResult{}, domainerrors.ErrInvalidAction
	}
}

// VendorTransition maps a vendor application decision onto the lifecycle transition.
func VendorTransition(action ModerationAction) (Transition, error) {
	switch action {
	case ActionApprove:
		return ApproveVendor, nil
	case ActionReject:
		return RejectVendor, nil
	default:
		return "", domainerrors.ErrInvalidAction
	}
}

// VendorSettableStatus validates a status a vendor may set on their own product.
// REJECTED is reserved for moderation.
func VendorSettableStatus(s string) (entity.ProductStatus, error) {
	status := entity.ProductStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case entity.ProductDraft, entity.ProductActive, entity.ProductInactive:
		return status, nil
	default:
		return "", domainerrors.ErrInvalidProductStatus
	}
}
