package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moment/internal/domain/entity"
)

var (
	user     = &Principal{UID: "user-1"}
	owner    = &Principal{UID: "owner-1", Provider: true}
	provider = &Principal{UID: "provider-2", Provider: true}
	admin    = &Principal{UID: "admin-1", Admin: true}
)

func TestUserPolicy(t *testing.T) {
	assert.True(t, CanReadUser(user, "user-1"))
	assert.False(t, CanReadUser(user, "user-2"))
	assert.True(t, CanReadUser(admin, "user-2"))

	assert.True(t, CanUpdateUser(user, "user-1"))
	assert.False(t, CanUpdateUser(user, "user-2"))
	assert.True(t, CanUpdateUser(admin, "user-2"))

	assert.False(t, CanDeleteUser(user))
	assert.False(t, CanDeleteUser(provider))
	assert.True(t, CanDeleteUser(admin))

	assert.False(t, CanListUsers(user))
	assert.True(t, CanListUsers(admin))

	assert.False(t, CanSetClaims(provider))
	assert.True(t, CanSetClaims(admin))
}

func TestProviderPolicy(t *testing.T) {
	profile := &entity.Provider{ID: "prov-1", UID: "owner-1"}

	assert.True(t, CanUpdateProvider(owner, profile))
	assert.False(t, CanUpdateProvider(provider, profile))
	assert.True(t, CanUpdateProvider(admin, profile))

	assert.True(t, CanDeleteProvider(owner, profile))
	assert.False(t, CanDeleteProvider(provider, profile))
	assert.True(t, CanDeleteProvider(admin, profile))

	assert.False(t, CanChangeProviderStatus(owner))
	assert.True(t, CanChangeProviderStatus(admin))

	// Publishing is the one mutation admins do not inherit.
	assert.True(t, CanPublishProvider(owner, profile))
	assert.False(t, CanPublishProvider(admin, profile))
	assert.False(t, CanPublishProvider(provider, profile))
}

func TestServicePolicy(t *testing.T) {
	profile := &entity.Provider{ID: "prov-1", UID: "owner-1"}

	assert.True(t, CanManageService(owner, profile))
	assert.False(t, CanManageService(provider, profile))
	assert.True(t, CanManageService(admin, profile))

	// The provider claim gates the operation even for the matching uid.
	plainOwner := &Principal{UID: "owner-1"}
	assert.False(t, CanManageService(plainOwner, profile))
}

func TestBookingPolicy(t *testing.T) {
	booking := &entity.Booking{ID: "book-1", UserID: "user-1", ProviderID: "prov-1"}

	assert.True(t, CanReadBooking(user, booking))
	assert.False(t, CanReadBooking(&Principal{UID: "user-2"}, booking))
	// Any provider-flagged principal can read, not only the booked one.
	assert.True(t, CanReadBooking(provider, booking))
	assert.True(t, CanReadBooking(admin, booking))

	assert.True(t, CanUpdateBooking(user, booking))
	assert.True(t, CanUpdateBooking(provider, booking))
	assert.False(t, CanUpdateBooking(&Principal{UID: "user-2"}, booking))

	assert.True(t, CanDeleteBooking(user, booking))
	assert.False(t, CanDeleteBooking(provider, booking))
	assert.True(t, CanDeleteBooking(admin, booking))

	assert.True(t, CanListUserBookings(user, "user-1"))
	assert.False(t, CanListUserBookings(user, "user-2"))
	assert.True(t, CanListUserBookings(admin, "user-2"))

	assert.True(t, CanListProviderBookings(provider))
	assert.True(t, CanListProviderBookings(admin))
	assert.False(t, CanListProviderBookings(user))

	assert.False(t, CanListAllBookings(provider))
	assert.True(t, CanListAllBookings(admin))
}

func TestNilPrincipal(t *testing.T) {
	profile := &entity.Provider{UID: "owner-1"}
	booking := &entity.Booking{UserID: "user-1"}

	assert.False(t, CanReadUser(nil, "user-1"))
	assert.False(t, CanListUsers(nil))
	assert.False(t, CanUpdateProvider(nil, profile))
	assert.False(t, CanPublishProvider(nil, profile))
	assert.False(t, CanManageService(nil, profile))
	assert.False(t, CanReadBooking(nil, booking))
	assert.False(t, CanDeleteBooking(nil, booking))
}
