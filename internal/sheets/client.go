package sheets

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/divanshu1993/babli-bua-wedding-assistant/internal/models"
)

// Error variants surfaced by the fetch/parse path. The request boundary
// treats them all as a generic failure; the distinction exists for logs.
var (
	ErrSourceNotConfigured = errors.New("sheet source not configured")
	ErrFetch               = errors.New("sheet fetch failed")
	ErrParse               = errors.New("sheet parse failed")
)

// Record is one CSV row keyed by lower-cased header name.
type Record map[string]string

// Get returns the trimmed value for a header name, or "" when absent.
func (r Record) Get(field string) string {
	return strings.TrimSpace(r[strings.ToLower(field)])
}

// Sources holds the locations of the four wedding data sheets.
// Schedule and hotels are required; guests and meta are optional.
type Sources struct {
	ScheduleURL string
	HotelsURL   string
	GuestsURL   string
	MetaURL     string
}

// Defaults supply snapshot metadata when the meta sheet is absent or silent.
type Defaults struct {
	CoupleNames string
	WeddingName string
	City        string
}

type Client struct {
	http     *http.Client
	log      zerolog.Logger
	sources  Sources
	defaults Defaults
}

// NewClient creates a sheets client. Remote fetches are bounded by a fixed
// timeout so a stalled sheet host fails the request instead of hanging it.
func NewClient(sources Sources, defaults Defaults) *Client {
	return &Client{
		http:     &http.Client{Timeout: 15 * time.Second},
		log:      zerolog.New(os.Stdout).With().Timestamp().Str("component", "sheets").Logger(),
		sources:  sources,
		defaults: defaults,
	}
}

// Fetch retrieves a CSV document and parses it into header-keyed records.
// An empty URL yields an empty record set, which lets optional sheets be
// left unconfigured.
func (c *Client) Fetch(ctx context.Context, url string) ([]Record, error) {
	if url == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d from %s", ErrFetch, resp.StatusCode, url)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// BuildWeddingData fetches all four sheets sequentially and assembles a
// fresh snapshot. Missing required sources fail the whole build with a
// configuration error before any network call is made.
func (c *Client) BuildWeddingData(ctx context.Context) (*models.WeddingData, error) {
	if c.sources.ScheduleURL == "" {
		return nil, fmt.Errorf("%w: schedule sheet", ErrSourceNotConfigured)
	}
	if c.sources.HotelsURL == "" {
		return nil, fmt.Errorf("%w: hotels sheet", ErrSourceNotConfigured)
	}

	schedule, err := c.Fetch(ctx, c.sources.ScheduleURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	hotels, err := c.Fetch(ctx, c.sources.HotelsURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hotels: %w", err)
	}
	guests, err := c.Fetch(ctx, c.sources.GuestsURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guests: %w", err)
	}
	meta, err := c.Fetch(ctx, c.sources.MetaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meta: %w", err)
	}

	data := &models.WeddingData{
		CoupleNames: c.defaults.CoupleNames,
		WeddingName: c.defaults.WeddingName,
		City:        c.defaults.City,
		Events:      eventsFromRecords(schedule),
		Hotels:      hotelsFromRecords(hotels),
		Guests:      guestsFromRecords(guests),
	}
	applyMeta(data, meta)

	c.log.Info().
		Int("events", len(data.Events)).
		Int("hotels", len(data.Hotels)).
		Int("guests", len(data.Guests)).
		Msg("Assembled wedding data snapshot")

	return data, nil
}

func eventsFromRecords(records []Record) []models.Event {
	events := make([]models.Event, 0, len(records))
	for _, r := range records {
		events = append(events, models.Event{
			Name:      r.Get("event"),
			Date:      r.Get("date"),
			Time:      r.Get("time"),
			Venue:     r.Get("venue"),
			DressCode: r.Get("dress code"),
			Notes:     r.Get("notes"),
		})
	}
	return events
}

func hotelsFromRecords(records []Record) []models.Hotel {
	hotels := make([]models.Hotel, 0, len(records))
	for _, r := range records {
		hotels = append(hotels, models.Hotel{
			Name:          r.Get("hotel name"),
			Address:       r.Get("address"),
			MapLink:       r.Get("map link"),
			PriceRange:    r.Get("price range"),
			BookingLink:   r.Get("booking link"),
			ContactPerson: r.Get("contact person"),
			ContactPhone:  r.Get("contact phone"),
			Notes:         r.Get("notes"),
			Type:          r.Get("type"),
		})
	}
	return hotels
}

func guestsFromRecords(records []Record) []models.GuestBooking {
	guests := make([]models.GuestBooking, 0, len(records))
	for _, r := range records {
		guests = append(guests, models.GuestBooking{
			Phone:     r.Get("phone"),
			Name:      r.Get("name"),
			HotelName: r.Get("hotel"),
			RoomNo:    r.Get("room no"),
			Notes:     r.Get("notes"),
		})
	}
	return guests
}

// applyMeta overlays key/value rows from the meta sheet onto the snapshot.
func applyMeta(data *models.WeddingData, records []Record) {
	for _, r := range records {
		value := r.Get("value")
		if value == "" {
			continue
		}
		switch strings.ToLower(r.Get("key")) {
		case "couple names":
			data.CoupleNames = value
		case "wedding name":
			data.WeddingName = value
		case "city":
			data.City = value
		case "stay":
			data.Stay = value
		case "emergency contact":
			data.EmergencyContact = value
		}
	}
}
