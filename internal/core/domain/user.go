package domain

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Role - access level of a platform account.
type Role string

const (
	RoleClient        Role = "client"
	RoleAgent         Role = "agent"
	RolePropertyOwner Role = "property_owner"
	RoleOffice        Role = "real_estate_office"
	RolePartner       Role = "partner"
	RoleSupport       Role = "support"
	RoleAdmin         Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleAgent, RolePropertyOwner, RoleOffice, RolePartner, RoleSupport, RoleAdmin:
		return true
	}
	return false
}

// CanPublishListings reports whether accounts with this role may create
// property listings. Clients browse only; support and admin moderate.
func (r Role) CanPublishListings() bool {
	switch r {
	case RoleAgent, RolePropertyOwner, RoleOffice, RolePartner:
		return true
	}
	return false
}

// User - a platform account with its suspension and trial state.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Role         Role

	IsSuspended      bool
	SuspendedUntil   *time.Time // nil while suspended means permanent
	SuspensionReason string

	TrialExpiresAt *time.Time // nil means no trial restriction

	CreatedAt time.Time
}

// NewUser creates an account with a bcrypt-hashed password. Publishing
// roles start on a trial of trialDays; zero disables the trial.
func NewUser(email, password, name string, role Role, trialDays int) (*User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashed),
		Name:         name,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if role.CanPublishListings() && trialDays > 0 {
		expires := user.CreatedAt.AddDate(0, 0, trialDays)
		user.TrialExpiresAt = &expires
	}
	return user, nil
}

// CheckPassword compares a candidate password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// SuspensionActive reports whether the account is currently blocked.
// A nil SuspendedUntil on a suspended account means a permanent ban; an
// elapsed timestamp means the suspension has run out on its own.
func (u *User) SuspensionActive(now time.Time) bool {
	if !u.IsSuspended {
		return false
	}
	if u.SuspendedUntil == nil {
		return true
	}
	return u.SuspendedUntil.After(now)
}

// TrialExpired reports whether a trial restriction applies. Accounts
// without a trial never expire.
func (u *User) TrialExpired(now time.Time) bool {
	return u.TrialExpiresAt != nil && !u.TrialExpiresAt.After(now)
}

// CanPublish reports whether the account may create listings right now.
func (u *User) CanPublish(now time.Time) bool {
	return u.Role.CanPublishListings() && !u.SuspensionActive(now) && !u.TrialExpired(now)
}

// Suspend blocks the account until the given time (nil = permanently).
func (u *User) Suspend(until *time.Time, reason string) {
	u.IsSuspended = true
	u.SuspendedUntil = until
	u.SuspensionReason = reason
}

// Unsuspend lifts a suspension and clears its reason.
func (u *User) Unsuspend() {
	u.IsSuspended = false
	u.SuspendedUntil = nil
	u.SuspensionReason = ""
}

// ExtendTrial pushes the trial expiry out by the given number of days,
// counted from the current expiry or from now when the trial has already
// lapsed (so expired accounts do not lose the extension to the past).
func (u *User) ExtendTrial(days int, now time.Time) {
	base := now
	if u.TrialExpiresAt != nil && u.TrialExpiresAt.After(now) {
		base = *u.TrialExpiresAt
	}
	expires := base.AddDate(0, 0, days)
	u.TrialExpiresAt = &expires
}

// Claims - the identity data carried inside a JWT.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

// IsAdmin is a convenience check used by handlers and use cases.
func (c *Claims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}
