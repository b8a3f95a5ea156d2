package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/divanshu1993/babli-bua-wedding-assistant/internal/booking"
	"github.com/divanshu1993/babli-bua-wedding-assistant/internal/models"
	"github.com/divanshu1993/babli-bua-wedding-assistant/internal/reply"
)

// maxMessageLen caps the guest message before any processing.
const maxMessageLen = 500

// Internal error detail never reaches the guest; every failure collapses
// to one of these two bodies.
const (
	bookingApology = "Oh no, I couldn't check the hotel bookings just now. Please try again in a " +
		"few minutes, or reach out to the wedding organizers directly. 💛"
	genericApology = "Oops, something went wrong on my end. Give me a moment and ask again? 💛"
)

// SnapshotProvider supplies the current wedding data snapshot.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*models.WeddingData, error)
}

// Completer produces an assistant reply for a rendered prompt.
type Completer interface {
	Reply(ctx context.Context, prompt string) (string, error)
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type ChatHandler struct {
	snapshots SnapshotProvider
	assistant Completer
	log       zerolog.Logger
}

// NewChatHandler creates the chat endpoint handler.
func NewChatHandler(snapshots SnapshotProvider, assistant Completer) *ChatHandler {
	return &ChatHandler{
		snapshots: snapshots,
		assistant: assistant,
		log:       zerolog.New(os.Stdout).With().Timestamp().Str("component", "chat").Logger(),
	}
}

// HandleChat serves POST /api/chat. A message that mentions a phone number
// goes down the booking-lookup path; everything else is forwarded to the
// completion API with the full wedding context.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	log := h.log.With().Str("request_id", uuid.NewString()).Logger()

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("Invalid request body")
		writeReply(w, http.StatusBadRequest, genericApology)
		return
	}

	message := truncate(req.Message, maxMessageLen)
	phone := booking.ExtractPhone(message)

	data, err := h.snapshots.Snapshot(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to load wedding data")
		if phone != "" {
			writeReply(w, http.StatusInternalServerError, bookingApology)
		} else {
			writeReply(w, http.StatusInternalServerError, genericApology)
		}
		return
	}

	if phone != "" {
		res := booking.Resolve(message, data.Guests)
		if res.Outcome == booking.Match {
			log.Info().Str("guest", res.Guest.Name).Msg("Booking found")
			writeReply(w, http.StatusOK, reply.Booking(res.Guest, data.Hotels))
		} else {
			log.Info().Msg("No booking for mentioned phone")
			writeReply(w, http.StatusOK, reply.NoBookingFound())
		}
		return
	}

	text, err := h.assistant.Reply(r.Context(), reply.AssistantPrompt(data, message))
	if err != nil {
		log.Error().Err(err).Msg("Completion failed")
		writeReply(w, http.StatusInternalServerError, genericApology)
		return
	}

	writeReply(w, http.StatusOK, text)
}

func writeReply(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ChatResponse{Reply: text})
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
