package policy

// Booking lifecycle: pending -> confirmed -> completed, with cancellation
// possible until completion. Provider approval: pending -> approved/rejected,
// and admins may reverse a decision.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"

	ProviderPending  = "pending"
	ProviderApproved = "approved"
	ProviderRejected = "rejected"
)

var bookingTransitions = map[string][]string{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
	BookingCompleted: {},
	BookingCancelled: {},
}

var providerTransitions = map[string][]string{
	ProviderPending:  {ProviderApproved, ProviderRejected},
	ProviderApproved: {ProviderRejected},
	ProviderRejected: {ProviderApproved},
}

func IsBookingStatus(status string) bool {
	_, ok := bookingTransitions[status]
	return ok
}

func IsProviderStatus(status string) bool {
	_, ok := providerTransitions[status]
	return ok
}

func CanTransitionBooking(from, to string) bool {
	return contains(bookingTransitions[from], to)
}

func CanTransitionProvider(from, to string) bool {
	return contains(providerTransitions[from], to)
}

func contains(allowed []string, status string) bool {
	for _, s := range allowed {
		if s == status {
			return true
		}
	}
	return false
}
