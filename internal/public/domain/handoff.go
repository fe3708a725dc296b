package domain

import (
	"errors"
	"net/url"
	"strings"
)

// ErrEmptyDraft refuses to build a review link around empty text.
var ErrEmptyDraft = errors.New("review draft is empty")

// SamplePlaceID is used when neither the restaurant nor the deployment
// configures a Google place id, so the flow stays demonstrable end to end.
const SamplePlaceID = "ChIJN1t_tDeuEmsRUsoyG83frY4"

// ReviewHandoff builds deep links into the external review-posting page,
// carrying the (possibly customer-edited) draft as a query parameter.
type ReviewHandoff struct {
	BaseURL        string
	DefaultPlaceID string
}

// Link constructs the write-review URL for a place with the draft pre-filled.
// An empty draft is a validation error rather than a blank-review link.
func (h ReviewHandoff) Link(placeID, draft string) (string, error) {
	draft = strings.TrimSpace(draft)
	if draft == "" {
		return "", ErrEmptyDraft
	}

	place := strings.TrimSpace(placeID)
	if place == "" {
		place = strings.TrimSpace(h.DefaultPlaceID)
	}
	if place == "" {
		place = SamplePlaceID
	}

	base := strings.TrimSpace(h.BaseURL)
	if base == "" {
		base = "https://search.google.com/local/writereview"
	}

	target, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	query := target.Query()
	query.Set("placeid", place)
	query.Set("review", draft)
	target.RawQuery = query.Encode()
	return target.String(), nil
}
