package sheets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const scheduleCSV = `Event,Date,Time,Venue,Dress Code,Notes
Mehendi,2026-03-06,16:00,Garden Lawn,Florals,Bring sunglasses
Sangeet,2026-03-07,19:00,Grand Ballroom,,
`

const hotelsCSV = `Hotel Name,Address,Map Link,Price Range,Booking Link,Contact Person,Contact Phone,Notes,Type
Taj Palace,1 Palace Rd,https://maps.example/taj,$$$,https://book.example/taj,Ramesh,+91 9000000001,Breakfast included,Luxury
Lemon Tree,9 Lake View,,,,,,Budget pick,Standard
`

const guestsCSV = `Phone,Name,Hotel,Room No,Notes
+91-9876543210,Asha,Taj Palace,204,Late checkout arranged
9123456789,Ravi,Lemon Tree,,
`

const metaCSV = `Key,Value
Couple Names,Babli & Raj
City,Jaipur
Stay,Shuttles run hourly from both hotels
Emergency Contact,Pinky Aunty +91 9000000009
`

func TestFetchParsesHeaderKeyedRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(scheduleCSV))
	}))
	defer srv.Close()

	c := NewClient(Sources{}, Defaults{})
	records, err := c.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Fetch() returned %d records, want 2", len(records))
	}
	if got := records[0].Get("event"); got != "Mehendi" {
		t.Errorf("records[0].Get(event) = %q, want Mehendi", got)
	}
	if got := records[0].Get("Dress Code"); got != "Florals" {
		t.Errorf("field names should be case-insensitive, got %q", got)
	}
	if got := records[1].Get("notes"); got != "" {
		t.Errorf("missing cell should read as empty, got %q", got)
	}
}

func TestFetchEmptyURLYieldsNoRecords(t *testing.T) {
	c := NewClient(Sources{}, Defaults{})
	records, err := c.Fetch(context.Background(), "")
	if err != nil {
		t.Fatalf("Fetch(\"\") error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Fetch(\"\") returned %d records, want 0", len(records))
	}
}

func TestFetchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(Sources{}, Defaults{})
	if _, err := c.Fetch(context.Background(), srv.URL); !errors.Is(err, ErrFetch) {
		t.Errorf("Fetch() error = %v, want ErrFetch", err)
	}
}

func TestBuildWeddingData(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/schedule", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(scheduleCSV)) })
	mux.HandleFunc("/hotels", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(hotelsCSV)) })
	mux.HandleFunc("/guests", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(guestsCSV)) })
	mux.HandleFunc("/meta", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(metaCSV)) })
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(
		Sources{
			ScheduleURL: srv.URL + "/schedule",
			HotelsURL:   srv.URL + "/hotels",
			GuestsURL:   srv.URL + "/guests",
			MetaURL:     srv.URL + "/meta",
		},
		Defaults{CoupleNames: "the happy couple", WeddingName: "the wedding", City: "somewhere"},
	)

	data, err := c.BuildWeddingData(context.Background())
	if err != nil {
		t.Fatalf("BuildWeddingData() error = %v", err)
	}

	if len(data.Events) != 2 || data.Events[0].Name != "Mehendi" {
		t.Errorf("unexpected events: %+v", data.Events)
	}
	if len(data.Hotels) != 2 || data.Hotels[0].ContactPerson != "Ramesh" {
		t.Errorf("unexpected hotels: %+v", data.Hotels)
	}
	if len(data.Guests) != 2 || data.Guests[0].Phone != "+91-9876543210" {
		t.Errorf("unexpected guests: %+v", data.Guests)
	}

	// Meta sheet overrides config defaults; absent keys keep them.
	if data.CoupleNames != "Babli & Raj" {
		t.Errorf("CoupleNames = %q, want meta override", data.CoupleNames)
	}
	if data.WeddingName != "the wedding" {
		t.Errorf("WeddingName = %q, want config default", data.WeddingName)
	}
	if data.City != "Jaipur" {
		t.Errorf("City = %q, want Jaipur", data.City)
	}
	if data.EmergencyContact == "" {
		t.Error("EmergencyContact not populated from meta sheet")
	}
}

func TestBuildWeddingDataOptionalSheetsUnset(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/schedule", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(scheduleCSV)) })
	mux.HandleFunc("/hotels", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(hotelsCSV)) })
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(
		Sources{ScheduleURL: srv.URL + "/schedule", HotelsURL: srv.URL + "/hotels"},
		Defaults{CoupleNames: "Babli & Raj"},
	)

	data, err := c.BuildWeddingData(context.Background())
	if err != nil {
		t.Fatalf("BuildWeddingData() error = %v", err)
	}
	if len(data.Guests) != 0 {
		t.Errorf("Guests = %+v, want empty for unset sheet", data.Guests)
	}
	if data.CoupleNames != "Babli & Raj" {
		t.Errorf("CoupleNames = %q, want config default", data.CoupleNames)
	}
}

func TestBuildWeddingDataRequiredSourceMissing(t *testing.T) {
	tests := []struct {
		name    string
		sources Sources
	}{
		{name: "schedule unset", sources: Sources{HotelsURL: "https://example.com/h"}},
		{name: "hotels unset", sources: Sources{ScheduleURL: "https://example.com/s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.sources, Defaults{})
			if _, err := c.BuildWeddingData(context.Background()); !errors.Is(err, ErrSourceNotConfigured) {
				t.Errorf("BuildWeddingData() error = %v, want ErrSourceNotConfigured", err)
			}
		})
	}
}
