package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twototango/internal/domain"
)

func TestTemplateRenderer_RSVPConfirmation(t *testing.T) {
	renderer := NewTemplateRenderer()
	data := &domain.RSVPConfirmationEmailData{
		Email:         "ben@example.com",
		Name:          "Ben",
		EventTitle:    "Salsa Night",
		EventLocation: "Havana Club",
		EventDate:     "Friday, 12 September 2025 20:00",
	}

	subject, htmlBody, textBody, err := renderer.Render("rsvp_confirmation", data)
	require.NoError(t, err)
	assert.Contains(t, subject, "Salsa Night")
	assert.Contains(t, htmlBody, "Salsa Night")
	assert.Contains(t, textBody, "Havana Club")
	assert.Contains(t, textBody, "Friday, 12 September 2025 20:00")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	renderer := NewTemplateRenderer()
	_, _, _, err := renderer.Render("no_such_template", nil)
	require.Error(t, err)
}
