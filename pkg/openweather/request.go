package openweather

import "net/url"

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Responses are requested in metric units with Polish condition texts.
// Neither is caller-configurable.
const (
	fixedUnits = "metric"
	fixedLang  = "pl"
)

// BuildRequestURL composes the current-weather request URL for the given
// city and API key. The city may contain spaces, reserved characters or
// non-ASCII letters; it is percent-encoded so the decoded query value
// round-trips to the original string. An empty city is not rejected here,
// the provider answers it with its own error.
func BuildRequestURL(city, apiKey string) (string, error) {
	return buildRequestURL(defaultBaseURL, city, apiKey)
}

func buildRequestURL(base, city, apiKey string) (string, error) {
	parsed, err := url.Parse(base)
	if err != nil {
		return "", &Error{Kind: KindBadURL, Err: err}
	}

	q := parsed.Query()
	q.Set("q", city)
	q.Set("appid", apiKey)
	q.Set("units", fixedUnits)
	q.Set("lang", fixedLang)
	parsed.RawQuery = q.Encode()

	// Re-check the composed string so a malformed base cannot leak downstream.
	built := parsed.String()
	if _, err := url.ParseRequestURI(built); err != nil {
		return "", &Error{Kind: KindBadURL, Err: err}
	}
	return built, nil
}
