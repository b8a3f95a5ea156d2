package reply

import (
	"fmt"
	"strings"

	"github.com/divanshu1993/babli-bua-wedding-assistant/internal/models"
)

const (
	noBookingNotice = "I looked through the guest list but couldn't find a hotel booking for that number. " +
		"If you think this is a mistake, please reach out to the wedding organizers and they'll sort it out. 💛"

	addressPlaceholder = "Address will be shared soon"
	mapPlaceholder     = "Map link not available yet"
	contactPlaceholder = "Front desk"
	defaultNote        = "If you need anything at all during your stay, just ask!"
)

// NoBookingFound returns the fixed notice for a phone number that matched no guest.
func NoBookingFound() string {
	return noBookingNotice
}

// Booking renders a matched guest's booking details. The hotel row is joined
// by case-insensitive name; when it is missing, the raw stored hotel name and
// placeholder strings are used instead.
func Booking(guest *models.GuestBooking, hotels []models.Hotel) string {
	hotel := findHotel(hotels, guest.HotelName)

	hotelName := guest.HotelName
	address := addressPlaceholder
	mapLink := mapPlaceholder
	contact := contactPlaceholder
	if hotel != nil {
		if hotel.Name != "" {
			hotelName = hotel.Name
		}
		if hotel.Address != "" {
			address = hotel.Address
		}
		if hotel.MapLink != "" {
			mapLink = hotel.MapLink
		}
		if hotel.ContactPerson != "" {
			contact = hotel.ContactPerson
			if hotel.ContactPhone != "" {
				contact = fmt.Sprintf("%s (%s)", hotel.ContactPerson, hotel.ContactPhone)
			}
		} else if hotel.ContactPhone != "" {
			contact = hotel.ContactPhone
		}
	}

	roomNo := guest.RoomNo
	if roomNo == "" {
		roomNo = "N/A"
	}

	note := guest.Notes
	if note == "" && hotel != nil {
		note = hotel.Notes
	}
	if note == "" {
		note = defaultNote
	}

	return fmt.Sprintf(
		"Found your booking! 🎉\n\n"+
			"*Guest:* %s\n"+
			"*Hotel:* %s\n"+
			"*Room:* %s\n"+
			"*Address:* %s\n"+
			"*Map:* %s\n"+
			"*Contact:* %s\n\n"+
			"*Note:* %s",
		guest.Name, hotelName, roomNo, address, mapLink, contact, note,
	)
}

// AssistantPrompt assembles the context document handed to the language
// model: the full schedule and hotel list plus the guest's raw message,
// under the formatting rules the chat UI can render.
func AssistantPrompt(data *models.WeddingData, message string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "WEDDING: %s (%s)\n", data.WeddingName, data.CoupleNames)
	fmt.Fprintf(&b, "CITY: %s\n", data.City)
	if data.Stay != "" {
		fmt.Fprintf(&b, "STAY: %s\n", data.Stay)
	}
	if data.EmergencyContact != "" {
		fmt.Fprintf(&b, "EMERGENCY CONTACT: %s\n", data.EmergencyContact)
	}

	b.WriteString("\nSCHEDULE:\n")
	for _, e := range data.Events {
		fmt.Fprintf(&b, "- %s | %s %s | %s", e.Name, e.Date, e.Time, e.Venue)
		if e.DressCode != "" {
			fmt.Fprintf(&b, " | Dress code: %s", e.DressCode)
		}
		if e.Notes != "" {
			fmt.Fprintf(&b, " | %s", e.Notes)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nHOTELS:\n")
	for _, h := range data.Hotels {
		fmt.Fprintf(&b, "- %s | %s | %s", h.Name, h.Address, h.PriceRange)
		if h.BookingLink != "" {
			fmt.Fprintf(&b, " | Book: %s", h.BookingLink)
		}
		if h.ContactPerson != "" || h.ContactPhone != "" {
			fmt.Fprintf(&b, " | Contact: %s %s", h.ContactPerson, h.ContactPhone)
		}
		if h.Notes != "" {
			fmt.Fprintf(&b, " | %s", h.Notes)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nGUEST MESSAGE:\n%s\n", message)

	b.WriteString(`
Answer the guest using only the information above. Reply in plain text.
You may emphasize a short label with asterisks like *Venue:* or *Time:*,
but use no other markup, no headings, and no bullet syntax beyond "-".
If the answer is not in the information above, say so warmly and point
the guest to the wedding organizers.`)

	return b.String()
}

func findHotel(hotels []models.Hotel, name string) *models.Hotel {
	if name == "" {
		return nil
	}
	for i := range hotels {
		if strings.EqualFold(hotels[i].Name, name) {
			return &hotels[i]
		}
	}
	return nil
}
