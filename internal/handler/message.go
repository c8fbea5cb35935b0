package handler

import (
	"errors"
	"strings"
	"time"

	"donorbot/internal/domain"
	"donorbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on the session state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Commands are handled elsewhere
	if strings.HasPrefix(text, "/") {
		return nil
	}

	sess := h.sessions.Get(userID)

	switch sess.State {
	case domain.StateLocation:
		coords, err := h.locationService.Resolve(text)
		if err != nil {
			// Stay in the same state, the user just retries
			return c.Send(locationFailureMessage(err))
		}
		return h.completeLocationCapture(c, sess, coords)

	case domain.StateLocationFind:
		coords, err := h.locationService.Resolve(text)
		if err != nil {
			return c.Send(locationFailureMessage(err))
		}
		return h.completeFind(c, sess, coords)

	case domain.StateBloodType, domain.StateEmergencyBloodType:
		return c.Send("Please pick a blood type from the buttons above.")

	case domain.StateContact:
		if !domain.ValidContact(text) {
			return c.Send("Invalid contact number. Please enter a valid Bangladesh phone number.")
		}
		sess.Contact = text
		sess.State = domain.StateProfileDate
		h.sessions.Set(userID, sess)
		return c.Send(msgDatePrompt)

	case domain.StateProfileDate:
		lastDonation, ok := parseLastDonation(text)
		if !ok {
			return c.Send("Invalid date format. Please use YYYY-MM-DD or \"Never\".")
		}
		return h.commitRegistration(c, sess, lastDonation)

	default:
		return c.Send("Send /start to begin.")
	}
}

// handleNativeLocation handles a shared Telegram location. Native
// coordinates are trusted and used verbatim.
func (h *Handler) handleNativeLocation(c tele.Context) error {
	userID := c.Sender().ID
	loc := c.Message().Location
	if loc == nil {
		return nil
	}

	coords := domain.Coordinates{
		Latitude:  float64(loc.Lat),
		Longitude: float64(loc.Lng),
	}

	sess := h.sessions.Get(userID)

	switch sess.State {
	case domain.StateLocation:
		return h.completeLocationCapture(c, sess, coords)
	case domain.StateLocationFind:
		return h.completeFind(c, sess, coords)
	default:
		return c.Send("Send /start to begin.")
	}
}

// completeLocationCapture stores the registration location and moves on
// to the blood type question
func (h *Handler) completeLocationCapture(c tele.Context, sess domain.Session, coords domain.Coordinates) error {
	userID := c.Sender().ID

	sess.SetLocation(coords)
	sess.State = domain.StateBloodType
	h.sessions.Set(userID, sess)

	h.logger.Info("Location captured",
		zap.Int64("user_id", userID),
		zap.Float64("latitude", coords.Latitude),
		zap.Float64("longitude", coords.Longitude),
	)

	return c.Send(msgBloodTypePrompt, bloodTypeMarkup())
}

// completeFind runs the nearest-donor query and ends the conversation
func (h *Handler) completeFind(c tele.Context, sess domain.Session, coords domain.Coordinates) error {
	userID := c.Sender().ID

	matches := h.matchService.FindNearest(coords, sess.SeekBloodType, service.DefaultMatchLimit)

	h.sessions.Reset(userID)

	if len(matches) == 0 {
		return c.Send("No donors found nearby. Please try again later or broaden your search.")
	}
	return c.Send(formatMatches(matches))
}

// commitRegistration upserts the donor record assembled in the scratchpad.
// All other fields are guaranteed present: no path reaches the date step
// without location, blood type and contact captured.
func (h *Handler) commitRegistration(c tele.Context, sess domain.Session, lastDonation *time.Time) error {
	userID := c.Sender().ID

	donor := &domain.Donor{
		UserID:       userID,
		Name:         senderName(c.Sender()),
		BloodType:    sess.BloodType,
		Latitude:     sess.Latitude,
		Longitude:    sess.Longitude,
		Contact:      sess.Contact,
		LastDonation: lastDonation,
	}

	// The conversation ends either way
	h.sessions.Reset(userID)

	if err := h.donorService.Register(donor); err != nil {
		h.logger.Error("Failed to save donor record",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send("An error occurred while saving your information. Please try again later.")
	}

	h.logger.Info("Donor registered",
		zap.Int64("user_id", userID),
		zap.String("blood_type", string(donor.BloodType)),
	)

	return c.Send("Thank you for registering as a donor! 🎉\n\nYour information has been saved successfully.")
}

// parseLastDonation parses the last-donation answer. "never" in any
// case means the donor has not donated before.
func parseLastDonation(text string) (*time.Time, bool) {
	if strings.EqualFold(text, "never") {
		return nil, true
	}
	date, err := time.Parse("2006-01-02", text)
	if err != nil {
		return nil, false
	}
	return &date, true
}

// locationFailureMessage maps resolver errors to the user-facing reply
func locationFailureMessage(err error) string {
	if errors.Is(err, service.ErrGeocoderUnavailable) {
		return msgLocationError
	}
	return msgInvalidLocation
}

// formatMatches renders the nearest-donor results, one line per donor
func formatMatches(matches []domain.Match) string {
	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		lines = append(lines, m.DisplayString())
	}
	return "Found the following donors near you:\n\n" + strings.Join(lines, "\n")
}
