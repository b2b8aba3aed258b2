// Package policy is the single source of truth for account role/status transitions,
// route capabilities and product moderation.
package policy

import (
	"slices"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
)

// State is a (role, status) pair.
type State struct {
	Role   entity.Role
	Status entity.Status
}

// StateOf extracts the state of an account; nil accounts yield nil.
func StateOf(account *entity.Account) *State {
	if account == nil {
		return nil
	}

	return &State{Role: account.Role, Status: account.Status}
}

var (
	guest         = State{entity.RoleGuest, entity.StatusPending}
	user          = State{entity.RoleUser, entity.StatusApproved}
	customer      = State{entity.RoleCustomer, entity.StatusApproved}
	vendorPending = State{entity.RoleVendorPending, entity.StatusPending}
	vendorLive    = State{entity.RoleVendor, entity.StatusLive}
	admin         = State{entity.RoleAdmin, entity.StatusApproved}
)

// reachable lists every (role, status) pair an account may ever hold.
var reachable = []State{guest, user, customer, vendorPending, vendorLive, admin}

// IsReachable reports whether the pair is one of the legal combinations.
func IsReachable(role entity.Role, status entity.Status) bool {
	return slices.Contains(reachable, State{role, status})
}

// ReachableStates returns a copy of the legal pairs.
func ReachableStates() []State {
	return slices.Clone(reachable)
}

// Transition names an account lifecycle operation.
type Transition string

const (
	Bootstrap               Transition = "bootstrap"
	VerifyIdentity          Transition = "verify_identity"
	RegisterCustomer        Transition = "register_customer"
	SubmitVendorApplication Transition = "submit_vendor_application"
	UpgradeToVendor         Transition = "upgrade_to_vendor"
	ApproveVendor           Transition = "approve_vendor"
	RejectVendor            Transition = "reject_vendor"
	UpdateVendorProfile     Transition = "update_vendor_profile"
)

// OTPSource says which mobile number an out-of-band code must be checked against.
type OTPSource int

const (
	// OTPNone means the transition needs no code.
	OTPNone OTPSource = iota
	// OTPRequestMobile checks the code against the mobile supplied in the request.
	OTPRequestMobile
	// OTPAccountMobile checks the code against the mobile already stored on the account.
	OTPAccountMobile
)

// Event names published after a committed transition.
const (
	EventVendorApproved = "vendor.approved"
	EventVendorRejected = "vendor.rejected"
)

type rule struct {
	fromNothing  bool        // legal when no account exists yet
	from         []State     // legal source states
	to           *State      // nil keeps the current state
	actors       entity.Roles // roles allowed to perform it on someone else's account; empty means self-service
	otp          OTPSource
	storeFields  bool
	stampReview  bool
	event        string
	idempotent   bool  // an existing account is returned unchanged instead of failing
	rejectSource error // returned when the current state is not a legal source
}

func target(s State) *State {
	return &s
}

var rules = map[Transition]rule{
	Bootstrap: {
		fromNothing: true,
		to:          target(guest),
		idempotent:  true,
	},
	VerifyIdentity: {
		fromNothing: true,
		to:          target(user),
		idempotent:  true,
	},
	RegisterCustomer: {
		fromNothing:  true,
		from:         []State{guest},
		to:           target(customer),
		otp:          OTPRequestMobile,
		rejectSource: domainerrors.ErrDeviceTaken,
	},
	SubmitVendorApplication: {
		fromNothing:  true,
		from:         []State{guest, user},
		to:           target(vendorPending),
		otp:          OTPRequestMobile,
		storeFields:  true,
		rejectSource: domainerrors.ErrAccountExists,
	},
	UpgradeToVendor: {
		from:         []State{customer},
		to:           target(vendorPending),
		otp:          OTPAccountMobile,
		storeFields:  true,
		rejectSource: domainerrors.ErrOnlyCustomersUpgrade,
	},
	ApproveVendor: {
		from:         []State{vendorPending},
		to:           target(vendorLive),
		actors:       entity.Roles{entity.RoleAdmin},
		stampReview:  true,
		event:        EventVendorApproved,
		rejectSource: domainerrors.ErrOnlyPendingVendors,
	},
	RejectVendor: {
		from:         []State{vendorPending},
		actors:       entity.Roles{entity.RoleAdmin},
		stampReview:  true,
		event:        EventVendorRejected,
		rejectSource: domainerrors.ErrOnlyPendingVendors.WithMessage("Only pending vendors can be rejected"),
	},
	UpdateVendorProfile: {
		from: []State{vendorLive},
	},
}

// Plan is the outcome of a legal transition: the state to persist and the side effects the caller
// must carry out around the write.
type Plan struct {
	Transition         Transition
	From               *State // nil when the account does not exist yet
	To                 State
	Unchanged          bool // idempotent replay; nothing must be written
	OTP                OTPSource
	RequireStoreFields bool
	StampReview        bool
	Event              string
}

// Decide validates transition t for an account currently in state current (nil if none exists),
// performed by an actor holding actorRole (empty for anonymous or self-service calls).
func Decide(t Transition, current *State, actorRole entity.Role) (*Plan, error) {
	r, ok := rules[t]
	if !ok {
		return nil, domainerrors.ErrIllegalTransition.WithDetails(string(t))
	}

	if len(r.actors) > 0 && !r.actors.Contains(actorRole) {
		return nil, forbidden(r.actors, actorRole)
	}

	plan := &Plan{
		Transition:         t,
		From:               current,
		OTP:                r.otp,
		RequireStoreFields: r.storeFields,
		StampReview:        r.stampReview,
		Event:              r.event,
	}

	if current == nil {
		if !r.fromNothing {
			return nil, domainerrors.ErrAccountNotFound
		}
		plan.To = *r.to

		return plan, nil
	}

	if r.idempotent {
		plan.To = *current
		plan.Unchanged = true
		plan.OTP = OTPNone

		return plan, nil
	}

	if !slices.Contains(r.from, *current) {
		return nil, sourceError(t, r, *current)
	}

	plan.To = *current
	if r.to != nil {
		plan.To = *r.to
	}

	if !IsReachable(plan.To.Role, plan.To.Status) {
		return nil, domainerrors.ErrIllegalTransition.WithDetails(string(t))
	}

	return plan, nil
}

func sourceError(t Transition, r rule, current State) error {
	if t == UpdateVendorProfile {
		if current.Role == entity.RoleVendorPending || current.Role == entity.RoleVendor {
			return ApprovalPending(current)
		}

		return domainerrors.ErrForbidden.WithMessage("Only vendors can update vendor information")
	}

	if r.rejectSource != nil {
		return r.rejectSource
	}

	return domainerrors.ErrIllegalTransition.WithDetails(string(t))
}

// ApprovalPending builds the distinguishable "not live yet" error carrying the caller's state.
func ApprovalPending(current State) error {
	return domainerrors.ErrApprovalPending.WithData(map[string]string{
		"currentRole":   current.Role.String(),
		"currentStatus": current.Status.String(),
	})
}

func forbidden(required entity.Roles, current entity.Role) error {
	return domainerrors.ErrForbidden.WithData(map[string]any{
		"required": required.ToStrings(),
		"current":  current.String(),
	})
}
