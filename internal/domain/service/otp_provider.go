package service

import "context"

// OTPProvider delivers and checks one-time codes keyed by mobile number.
type OTPProvider interface {
	// Send dispatches a fresh code to mobile.
	Send(ctx context.Context, mobile string) error

	// Verify reports whether code is the current code for mobile. A rejected code is (false, nil);
	// errors are reserved for provider failures.
	Verify(ctx context.Context, mobile, code string) (bool, error)
}

// CodeHasher hashes short secrets such as one-time codes before they are stored.
type CodeHasher interface {
	Hash(code string) (string, error)
	Check(code, hash string) bool
}
