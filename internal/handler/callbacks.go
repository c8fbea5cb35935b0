package handler

import (
	"fmt"
	"strings"
	"unicode"

	"donorbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles callback queries that did not match a
// registered button, in particular the dynamic blood type buttons
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Info("Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Buttons whose Unique didn't come through
	switch callback.Unique {
	case btnDonate.Unique:
		return h.handleDonate(c)
	case btnFind.Unique:
		return h.handleFind(c)
	case btnEmergency.Unique:
		return h.handleEmergency(c)
	case btnProfile.Unique:
		return h.handleProfile(c)
	}

	if callback.Unique == "" {
		switch data {
		case btnDonate.Unique:
			return h.handleDonate(c)
		case btnFind.Unique:
			return h.handleFind(c)
		case btnEmergency.Unique:
			return h.handleEmergency(c)
		case btnProfile.Unique:
			return h.handleProfile(c)
		}
	}

	if raw, ok := strings.CutPrefix(data, "blood_"); ok {
		return h.handleBloodSelection(c, raw)
	}
	if raw, ok := strings.CutPrefix(callback.Unique, "blood_"); ok {
		return h.handleBloodSelection(c, raw)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	if h.sessions.Get(c.Sender().ID).State == domain.StateMenu {
		c.Respond()
		return c.Send("Invalid choice. Please select from the options provided.")
	}
	return c.Respond()
}

// handleDonate starts the registration flow
func (h *Handler) handleDonate(c tele.Context) error {
	userID := c.Sender().ID

	sess := h.sessions.Get(userID)
	sess.State = domain.StateLocation
	h.sessions.Set(userID, sess)

	c.Respond()
	return c.Send("Please share your location. You can send your current location, a Google Maps link, or type an address.")
}

// handleFind starts the find flow. No blood type is asked for here, the
// query runs against donors of every type.
func (h *Handler) handleFind(c tele.Context) error {
	userID := c.Sender().ID

	sess := h.sessions.Get(userID)
	sess.State = domain.StateLocationFind
	sess.SeekBloodType = domain.BloodAny
	h.sessions.Set(userID, sess)

	c.Respond()
	return c.Send("Please share your location to find donors nearby.")
}

// handleEmergency starts the emergency flow by asking for the needed blood type
func (h *Handler) handleEmergency(c tele.Context) error {
	userID := c.Sender().ID

	sess := h.sessions.Get(userID)
	sess.State = domain.StateEmergencyBloodType
	h.sessions.Set(userID, sess)

	c.Respond()
	return c.Send("What blood type do you need?", bloodTypeMarkup())
}

// handleProfile shows the sender's own donor record and ends the conversation
func (h *Handler) handleProfile(c tele.Context) error {
	userID := c.Sender().ID

	donor, err := h.donorService.Profile(userID)
	if err != nil {
		h.logger.Error("Failed to fetch profile",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		c.Respond()
		return c.Send("An error occurred while fetching your profile. Please try again later.")
	}

	h.sessions.Reset(userID)

	c.Respond()
	if donor == nil {
		return c.Send("Profile not found.")
	}
	return c.Send(formatProfile(donor), tele.ModeMarkdown)
}

// handleBloodSelection handles a blood type button press. The meaning
// depends on the state: donor's own type during registration, sought
// type during an emergency request.
func (h *Handler) handleBloodSelection(c tele.Context, raw string) error {
	userID := c.Sender().ID

	bloodType, ok := domain.ParseBloodType(raw)
	if !ok {
		h.logger.Warn("Unknown blood type in callback",
			zap.String("raw", raw),
			zap.Int64("user_id", userID),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Unknown blood type"})
	}

	sess := h.sessions.Get(userID)

	switch sess.State {
	case domain.StateBloodType:
		sess.BloodType = bloodType
		sess.State = domain.StateContact
		h.sessions.Set(userID, sess)

		c.Respond()
		return c.Send(msgContactPrompt)

	case domain.StateEmergencyBloodType:
		sess.SeekBloodType = bloodType
		sess.State = domain.StateLocationFind
		h.sessions.Set(userID, sess)

		c.Respond()
		return c.Send("Please share your location for the emergency request.")

	default:
		// Stale button from an earlier conversation
		return c.Respond()
	}
}

// formatProfile renders a donor record for the profile view
func formatProfile(donor *domain.Donor) string {
	lastDonation := "Never"
	if donor.LastDonation != nil {
		lastDonation = donor.LastDonation.Format("2006-01-02")
	}

	return fmt.Sprintf(
		"👤 *Your Profile*\n\n"+
			"Name: %s\n"+
			"Blood Type: %s\n"+
			"Contact: %s\n"+
			"Last Donation: %s\n"+
			"Location: %.6f, %.6f",
		donor.Name, donor.BloodType, donor.Contact, lastDonation,
		donor.Latitude, donor.Longitude,
	)
}
