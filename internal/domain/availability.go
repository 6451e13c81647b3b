package domain

import "github.com/google/uuid"

// IsVehicleAvailable decides whether requested can be admitted for vehicleID
// given the candidate bookings already on file. It is a pure function: no
// side effects, no persistence, fully unit-testable.
//
// Candidates may be a superset of what actually matters; the repository is
// allowed to over-fetch (e.g. by vehicle only, or every status). Bookings
// for other vehicles and bookings in a non-active status (cancelled,
// completed, no-show) are skipped here, so status filtering happens in
// exactly one place regardless of how the query was shaped.
//
// This check is an optimisation, not the guarantee: two concurrent requests
// can both pass it. The bookings table's exclusion constraint is the
// authoritative backstop at commit time.
func IsVehicleAvailable(vehicleID uuid.UUID, requested DateRange, candidates []Booking) bool {
	for _, b := range candidates {
		if b.VehicleID != vehicleID || !b.Status.IsActive() {
			continue
		}
		if b.Range.Overlaps(requested) {
			return false
		}
	}
	return true
}
