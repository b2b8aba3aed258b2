// Package lifecycle holds process-wide start/stop constants shared by fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook that talks to an external system.
const DefaultTimeout = 10 * time.Second

// ProviderTimeout is applied to outbound provider calls (identity, OTP, storage) when the
// configuration leaves the value unset.
const ProviderTimeout = 10 * time.Second
