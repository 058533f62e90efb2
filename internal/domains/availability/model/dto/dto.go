package dto

// SlotResponse is the occupancy of one grid slot. Booking fields are only
// set when the slot is taken.
type SlotResponse struct {
	TimeSlot    string `json:"time_slot"`
	Status      string `json:"status"`
	BookedBy    string `json:"booked_by,omitempty"`
	Reason      string `json:"reason,omitempty"`
	Class       string `json:"class,omitempty"`
	IsRecurring bool   `json:"is_recurring,omitempty"`
}

// GetAvailabilityResponse is the full slot grid for one room and day.
// Degraded marks a response produced while the booking store was
// unreachable: every slot reads vacant but must not be trusted as such.
type GetAvailabilityResponse struct {
	RoomNo   string         `json:"room_no"`
	Date     string         `json:"date"`
	Degraded bool           `json:"degraded"`
	Warning  string         `json:"warning,omitempty"`
	Slots    []SlotResponse `json:"slots"`
}
