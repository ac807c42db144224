// Package openweather is a typed client for the OpenWeatherMap current
// weather endpoint. It turns a city name into one HTTP request and maps
// every outcome, success or failure, onto a closed set of domain results.
package openweather

import (
	"context"
	"errors"
	"time"

	"github.com/pogoda-hq/pogoda-client/pkg/httpclient"
)

const defaultTimeout = 10 * time.Second

// Client fetches current weather for a city. It holds no mutable state and
// is safe for concurrent use when its transport is.
type Client struct {
	apiKey   string
	endpoint string
	http     httpclient.Client
}

// NewClient builds a Client around the given transport. A nil transport
// falls back to a resty client with the default timeout.
func NewClient(apiKey string, client httpclient.Client) *Client {
	if client == nil {
		client = httpclient.NewRestyClient(defaultTimeout)
	}
	return &Client{
		apiKey:   apiKey,
		endpoint: defaultBaseURL,
		http:     client,
	}
}

// FetchWeather issues exactly one GET for the city's current weather and
// returns the decoded record or a classified *Error. Failures before a
// status code exists, context cancellation included, surface as KindNetwork.
func (c *Client) FetchWeather(ctx context.Context, city string) (WeatherRecord, error) {
	if c == nil || c.http == nil {
		return WeatherRecord{}, &Error{Kind: KindUnknown, Err: errors.New("weather client is not initialized")}
	}

	reqURL, err := buildRequestURL(c.endpoint, city, c.apiKey)
	if err != nil {
		return WeatherRecord{}, err
	}

	resp, err := c.http.Get(ctx, reqURL, nil)
	if err != nil {
		return WeatherRecord{}, &Error{Kind: KindNetwork, Err: err}
	}

	return Interpret(resp.StatusCode(), resp.Body())
}
