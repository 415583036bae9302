// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package checkout

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-natours/internal/alert"
	"github.com/MKhiriev/go-natours/internal/app"
	"github.com/MKhiriev/go-natours/internal/logger"
)

// Initiator runs the "book tour" flow: fetch a checkout session from the
// server, then hand its id to the redirector.
type Initiator struct {
	sessions   SessionFetcher
	redirector Redirector
	alerts     Alerter
	logger     *logger.Logger
}

func NewInitiator(sessions SessionFetcher, redirector Redirector, alerts Alerter, logger *logger.Logger) *Initiator {
	return &Initiator{
		sessions:   sessions,
		redirector: redirector,
		alerts:     alerts,
		logger:     logger,
	}
}

// BookTour never returns an error: every failure is logged and shown to the
// user as a single error alert.
func (i *Initiator) BookTour(ctx context.Context, tourID string) {
	tourID = strings.TrimSpace(tourID)
	if tourID == "" {
		i.fail(ErrEmptyTourID, tourID)
		return
	}

	session, err := i.sessions.GetCheckoutSession(ctx, tourID)
	if err != nil {
		i.fail(err, tourID)
		return
	}
	if session.ID == "" {
		i.fail(ErrMissingSessionID, tourID)
		return
	}

	if err = i.redirector.Redirect(ctx, session); err != nil {
		i.fail(err, tourID)
		return
	}

	i.logger.Info().Str("func", "*Initiator.BookTour").
		Str("tour_id", tourID).
		Str("session_id", session.ID).
		Msg("redirected to checkout")
}

func (i *Initiator) fail(err error, tourID string) {
	i.logger.Err(err).Str("func", "*Initiator.BookTour").
		Str("tour_id", tourID).
		Msg("booking a tour failed")

	message := err.Error()
	if errors.Is(err, context.Canceled) {
		message = app.MsgBookingCancelled
	}
	i.alerts.Show(alert.KindError, message)
}
