package web

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"

	"github.com/MKhiriev/go-natours/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertMessage(t *testing.T) {
	assert.Contains(t, AlertMessage(AlertBooking), "Your booking was successful!")
	assert.Empty(t, AlertMessage("nope"))
}

func TestRender_Overview(t *testing.T) {
	views, err := NewViews()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = views.Render(&buf, PageOverview, Page{
		Title: "All Tours",
		Tours: []models.Tour{{Name: "The Forest Hiker", Slug: "the-forest-hiker", Price: decimal.NewFromInt(397)}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<title>Natours | All Tours</title>")
	assert.Contains(t, out, `href="/tour/the-forest-hiker"`)
	assert.Contains(t, out, "$397")
	assert.Contains(t, out, "Log in")
}

func TestRender_EscapesAlertAndUser(t *testing.T) {
	views, err := NewViews()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = views.Render(&buf, PageAccount, Page{
		Title: "Your account",
		User:  &models.User{Name: "<b>Laura</b> Wilson", Photo: "user-1.jpg"},
		Alert: AlertMessage(AlertBooking),
	})
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "<b>Laura</b>")
	assert.Contains(t, out, "data-alert=")
	assert.Contains(t, out, "Log out")
}

func TestRender_UnknownPage(t *testing.T) {
	views, err := NewViews()
	require.NoError(t, err)

	err = views.Render(&bytes.Buffer{}, "missing", Page{})
	assert.ErrorIs(t, err, ErrUnknownPage)
}

func TestStatic(t *testing.T) {
	for _, name := range []string{"css/style.css", "js/bundle.js", "img/logo.svg"} {
		data, err := fs.ReadFile(Static(), name)
		require.NoError(t, err, name)
		assert.False(t, strings.TrimSpace(string(data)) == "", name)
	}
}

func TestStatic_BookingRedirectNeedsSessionID(t *testing.T) {
	data, err := fs.ReadFile(Static(), "js/bundle.js")
	require.NoError(t, err)
	bundle := string(data)

	// a 2xx answer without a session id must end in the error alert, not a redirect
	assert.Contains(t, bundle, "if (!session || !session.id) throw new Error('Checkout session has no id');")
	assert.Contains(t, bundle, "location.assign(checkoutURL(data && data.session))")
	assert.Contains(t, bundle, "btn.textContent = label;")
	assert.NotContains(t, bundle, "location.assign(data.session.url)")
}
