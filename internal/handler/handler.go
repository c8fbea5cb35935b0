package handler

import (
	"donorbot/internal/domain"
	"donorbot/internal/service"
	"donorbot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot             *tele.Bot
	donorService    *service.DonorService
	locationService *service.LocationService
	matchService    *service.MatchService
	sessions        *session.Store
	logger          *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	donorService *service.DonorService,
	locationService *service.LocationService,
	matchService *service.MatchService,
	sessions *session.Store,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:             bot,
		donorService:    donorService,
		locationService: locationService,
		matchService:    matchService,
		sessions:        sessions,
		logger:          logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages and shared locations
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnLocation, h.handleNativeLocation)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnDonate, h.handleDonate)
	h.bot.Handle(&btnFind, h.handleFind)
	h.bot.Handle(&btnEmergency, h.handleEmergency)
	h.bot.Handle(&btnProfile, h.handleProfile)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Shared user-facing messages
const (
	msgInvalidLocation = "Invalid location. Please send a Google Maps link, your current location, or a specific address."
	msgLocationError   = "An error occurred while processing your location. Please try again."
	msgBloodTypePrompt = "What is your blood type?"
	msgContactPrompt   = "Please provide your contact number."
	msgDatePrompt      = "When was your last blood donation? (YYYY-MM-DD or \"Never\")"
)

// Inline keyboard buttons
var (
	btnDonate = tele.Btn{
		Unique: "donate",
		Text:   "Donate Blood 🩸",
	}
	btnFind = tele.Btn{
		Unique: "find",
		Text:   "Find Blood 🔍",
	}
	btnEmergency = tele.Btn{
		Unique: "emergency",
		Text:   "Emergency Request 🚨",
	}
	btnProfile = tele.Btn{
		Unique: "profile",
		Text:   "My Profile 👤",
	}
)

// mainMenuMarkup returns the main menu keyboard. The profile entry is
// only offered to users who already registered as donors.
func mainMenuMarkup(registered bool) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	rows := []tele.Row{
		menu.Row(btnDonate, btnFind),
		menu.Row(btnEmergency),
	}
	if registered {
		rows = append(rows, menu.Row(btnProfile))
	}
	menu.Inline(rows...)
	return menu
}

// bloodTypeMarkup returns the 8 blood types, two per row
func bloodTypeMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for i := 0; i < len(domain.BloodTypes); i += 2 {
		row := tele.Row{markup.Data(string(domain.BloodTypes[i]), "blood_"+string(domain.BloodTypes[i]))}
		if i+1 < len(domain.BloodTypes) {
			row = append(row, markup.Data(string(domain.BloodTypes[i+1]), "blood_"+string(domain.BloodTypes[i+1])))
		}
		rows = append(rows, row)
	}
	markup.Inline(rows...)
	return markup
}
