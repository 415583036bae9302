package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDesktop struct {
	opened  []string
	copied  []string
	openErr error
	copyErr error
}

func (f *fakeDesktop) redirector() *BrowserRedirector {
	return &BrowserRedirector{
		open: func(u string) error {
			f.opened = append(f.opened, u)
			return f.openErr
		},
		copy: func(s string) error {
			f.copied = append(f.copied, s)
			return f.copyErr
		},
		logger: logger.Nop(),
	}
}

func TestBrowserRedirector_Redirect(t *testing.T) {
	tests := []struct {
		name    string
		session models.CheckoutSession
		desktop *fakeDesktop
		wantURL string
		wantErr error
	}{
		{
			name:    "session url is opened",
			session: models.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/pay/cs_test_1#fid"},
			desktop: &fakeDesktop{},
			wantURL: "https://checkout.stripe.com/c/pay/cs_test_1#fid",
		},
		{
			name:    "url is built from the id",
			session: models.CheckoutSession{ID: "cs_test_2"},
			desktop: &fakeDesktop{},
			wantURL: "https://checkout.stripe.com/c/pay/cs_test_2",
		},
		{
			name:    "clipboard failure is not fatal",
			session: models.CheckoutSession{ID: "cs_test_3"},
			desktop: &fakeDesktop{copyErr: errors.New("no xclip")},
			wantURL: "https://checkout.stripe.com/c/pay/cs_test_3",
		},
		{
			name:    "browser failure",
			session: models.CheckoutSession{ID: "cs_test_4"},
			desktop: &fakeDesktop{openErr: errors.New("xdg-open not found")},
			wantURL: "https://checkout.stripe.com/c/pay/cs_test_4",
			wantErr: ErrRedirect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.desktop.redirector().Redirect(context.Background(), tt.session)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, []string{tt.wantURL}, tt.desktop.opened)
			assert.Equal(t, []string{tt.wantURL}, tt.desktop.copied)
		})
	}
}

func TestBrowserRedirector_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		session models.CheckoutSession
		wantErr error
	}{
		{name: "nothing to open", session: models.CheckoutSession{}, wantErr: ErrMissingSessionID},
		{name: "not a web url", session: models.CheckoutSession{ID: "cs", URL: "file:///etc/passwd"}, wantErr: ErrRedirect},
		{name: "relative url", session: models.CheckoutSession{ID: "cs", URL: "/pay/cs"}, wantErr: ErrRedirect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desktop := &fakeDesktop{}
			err := desktop.redirector().Redirect(context.Background(), tt.session)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, desktop.opened)
		})
	}
}

func TestBrowserRedirector_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	desktop := &fakeDesktop{}
	err := desktop.redirector().Redirect(ctx, models.CheckoutSession{ID: "cs"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, desktop.opened)
}
