// Package policy holds every authorization decision as a pure function over
// the authenticated principal and the resource being acted on. Route handlers
// and usecases consult this table instead of carrying their own role checks.
package policy

import (
	"moment/internal/domain/entity"
)

// Principal is the authenticated caller derived from a verified identity
// token: the subject id plus the admin/provider claim flags.
type Principal struct {
	UID      string
	Admin    bool
	Provider bool
}

// Users

func CanReadUser(p *Principal, targetUID string) bool {
	return p != nil && (p.UID == targetUID || p.Admin)
}

func CanUpdateUser(p *Principal, targetUID string) bool {
	return p != nil && (p.UID == targetUID || p.Admin)
}

func CanDeleteUser(p *Principal) bool {
	return p != nil && p.Admin
}

func CanListUsers(p *Principal) bool {
	return p != nil && p.Admin
}

func CanSetClaims(p *Principal) bool {
	return p != nil && p.Admin
}

// Providers. Reads are public; mutation requires ownership or admin, except
// the publish toggle which is strictly owner-only.

func CanUpdateProvider(p *Principal, provider *entity.Provider) bool {
	return p != nil && (provider.UID == p.UID || p.Admin)
}

func CanDeleteProvider(p *Principal, provider *entity.Provider) bool {
	return p != nil && (provider.UID == p.UID || p.Admin)
}

func CanChangeProviderStatus(p *Principal) bool {
	return p != nil && p.Admin
}

func CanPublishProvider(p *Principal, provider *entity.Provider) bool {
	return p != nil && provider.UID == p.UID
}

// Services. Ownership resolves transitively through the owning provider.
// The provider claim gates the operation, admins bypass the ownership check.

func CanManageService(p *Principal, owner *entity.Provider) bool {
	if p == nil || (!p.Provider && !p.Admin) {
		return false
	}
	return owner.UID == p.UID || p.Admin
}

// Bookings. Reads and updates are granted to any provider-flagged principal,
// not only the provider on the booking; delete is owner-user or admin only.

func CanReadBooking(p *Principal, booking *entity.Booking) bool {
	return p != nil && (booking.UserID == p.UID || p.Provider || p.Admin)
}

func CanUpdateBooking(p *Principal, booking *entity.Booking) bool {
	return p != nil && (booking.UserID == p.UID || p.Provider || p.Admin)
}

func CanDeleteBooking(p *Principal, booking *entity.Booking) bool {
	return p != nil && (booking.UserID == p.UID || p.Admin)
}

func CanListUserBookings(p *Principal, userID string) bool {
	return p != nil && (p.UID == userID || p.Admin)
}

func CanListProviderBookings(p *Principal) bool {
	return p != nil && (p.Provider || p.Admin)
}

func CanListAllBookings(p *Principal) bool {
	return p != nil && p.Admin
}
