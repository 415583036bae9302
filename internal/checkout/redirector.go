package checkout

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/models"
	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// hostedCheckoutURL is used when the server returned a session without a URL.
const hostedCheckoutURL = "https://checkout.stripe.com/c/pay/"

// BrowserRedirector opens the hosted checkout page in the system browser and
// puts its address on the clipboard so it can be pasted on headless machines.
type BrowserRedirector struct {
	open   func(url string) error
	copy   func(text string) error
	logger *logger.Logger
}

func NewBrowserRedirector(logger *logger.Logger) *BrowserRedirector {
	return &BrowserRedirector{
		open:   browser.OpenURL,
		copy:   clipboard.WriteAll,
		logger: logger,
	}
}

func (r *BrowserRedirector) Redirect(ctx context.Context, session models.CheckoutSession) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := checkoutURL(session)
	if err != nil {
		return err
	}

	if err = r.copy(target); err != nil {
		r.logger.Warn().Err(err).Str("func", "*BrowserRedirector.Redirect").
			Msg("checkout url was not copied to the clipboard")
	}

	if err = r.open(target); err != nil {
		return fmt.Errorf("%w: %w", ErrRedirect, err)
	}

	return nil
}

func checkoutURL(session models.CheckoutSession) (string, error) {
	if session.URL == "" {
		if session.ID == "" {
			return "", ErrMissingSessionID
		}
		return hostedCheckoutURL + url.PathEscape(session.ID), nil
	}

	u, err := url.Parse(session.URL)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return "", fmt.Errorf("%w: invalid checkout url %q", ErrRedirect, session.URL)
	}
	return u.String(), nil
}
