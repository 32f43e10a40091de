package models

import "time"

// Session is the device's authenticated state against the plant API.
//
// The bearer token authorizes sync submissions; the PIN hash lets an
// operator unlock the app offline, when the token cannot be refreshed.
type Session struct {
	// EmployeeID identifies the signed-in operator.
	EmployeeID string `json:"employee_id"`

	// Token is the bearer token presented to the plant API.
	Token string `json:"-"`

	// ExpiresAt is the token expiry claim.
	ExpiresAt time.Time `json:"expires_at"`

	// PINHash is the bcrypt hash of the operator's offline PIN.
	// Never leaves the device.
	PINHash []byte `json:"-"`

	// UpdatedAt is when the session was last written.
	UpdatedAt time.Time `json:"updated_at"`
}

// Expired reports whether the token expiry has passed at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// ExpiringWithin reports whether the token expires within d of now.
func (s *Session) ExpiringWithin(now time.Time, d time.Duration) bool {
	return !s.ExpiresAt.IsZero() && now.Add(d).After(s.ExpiresAt)
}
