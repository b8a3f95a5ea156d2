package models

// GuestBooking represents one guest's hotel booking from the roster sheet.
// Phone is the lookup key; it is stored as the guest typed it, in any format.
type GuestBooking struct {
	Phone     string `json:"phone"`
	Name      string `json:"name"`
	HotelName string `json:"hotel_name"`
	RoomNo    string `json:"room_no"`
	Notes     string `json:"notes,omitempty"`
}

// Hotel represents a hotel from the hotels sheet. Name is the join key
// used to match a GuestBooking's HotelName, compared case-insensitively.
type Hotel struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	MapLink       string `json:"map_link"`
	PriceRange    string `json:"price_range"`
	BookingLink   string `json:"booking_link"`
	ContactPerson string `json:"contact_person"`
	ContactPhone  string `json:"contact_phone"`
	Notes         string `json:"notes,omitempty"`
	Type          string `json:"type,omitempty"`
}

// Event represents one row of the wedding schedule sheet.
type Event struct {
	Name      string `json:"name"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Venue     string `json:"venue"`
	DressCode string `json:"dress_code,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// WeddingData is an immutable snapshot of everything the assistant knows.
// It is rebuilt wholesale when the cache expires and never mutated in place,
// so a single request always sees internally consistent guest and hotel data.
type WeddingData struct {
	CoupleNames      string
	WeddingName      string
	City             string
	Events           []Event
	Hotels           []Hotel
	Guests           []GuestBooking
	Stay             string
	EmergencyContact string
}
