package domain

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandoffLinkCarriesPlaceAndDraft(t *testing.T) {
	handoff := ReviewHandoff{}

	link, err := handoff.Link("place-123", "Great dinner, friendly staff!")
	require.NoError(t, err)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "https", parsed.Scheme)
	assert.Equal(t, "search.google.com", parsed.Host)
	assert.Equal(t, "/local/writereview", parsed.Path)
	assert.Equal(t, "place-123", parsed.Query().Get("placeid"))
	assert.Equal(t, "Great dinner, friendly staff!", parsed.Query().Get("review"))
}

func TestHandoffLinkRejectsEmptyDraft(t *testing.T) {
	handoff := ReviewHandoff{DefaultPlaceID: "place-123"}

	_, err := handoff.Link("place-123", "   ")
	assert.ErrorIs(t, err, ErrEmptyDraft)
}

func TestHandoffLinkPlaceFallbackChain(t *testing.T) {
	withDefault := ReviewHandoff{DefaultPlaceID: "deploy-place"}

	link, err := withDefault.Link("", "Nice spot")
	require.NoError(t, err)
	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "deploy-place", parsed.Query().Get("placeid"))

	link, err = ReviewHandoff{}.Link("", "Nice spot")
	require.NoError(t, err)
	parsed, err = url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, SamplePlaceID, parsed.Query().Get("placeid"))

	// An explicit place id always wins.
	link, err = withDefault.Link("restaurant-place", "Nice spot")
	require.NoError(t, err)
	parsed, err = url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "restaurant-place", parsed.Query().Get("placeid"))
}

func TestHandoffLinkCustomBaseURL(t *testing.T) {
	handoff := ReviewHandoff{BaseURL: "https://reviews.example.com/write"}

	link, err := handoff.Link("p", "text with spaces & symbols")
	require.NoError(t, err)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "reviews.example.com", parsed.Host)
	assert.Equal(t, "text with spaces & symbols", parsed.Query().Get("review"))
}
