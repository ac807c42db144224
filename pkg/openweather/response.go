package openweather

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"
)

// weatherPayload mirrors the provider's success schema. Required fields are
// pointers so their absence is detectable after unmarshal.
type weatherPayload struct {
	Name    *string            `json:"name"`
	Main    *mainPayload       `json:"main"`
	Weather []conditionPayload `json:"weather"`
	Wind    *windPayload       `json:"wind"`
}

type mainPayload struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	Pressure  *int     `json:"pressure"`
}

type conditionPayload struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type windPayload struct {
	Speed *float64 `json:"speed"`
}

func (p *weatherPayload) validate() error {
	switch {
	case p.Name == nil:
		return errors.New(`missing required field "name"`)
	case p.Main == nil:
		return errors.New(`missing required object "main"`)
	case p.Main.Temp == nil:
		return errors.New(`missing required field "main.temp"`)
	case p.Main.Pressure == nil:
		return errors.New(`missing required field "main.pressure"`)
	case p.Wind == nil:
		return errors.New(`missing required object "wind"`)
	case p.Wind.Speed == nil:
		return errors.New(`missing required field "wind.speed"`)
	}
	return nil
}

func (p *weatherPayload) record() WeatherRecord {
	rec := WeatherRecord{
		LocationName:             *p.Name,
		TemperatureCelsius:       *p.Main.Temp,
		PressureHpa:              *p.Main.Pressure,
		WindSpeedMetersPerSecond: *p.Wind.Speed,
		Conditions:               make([]ConditionEntry, 0, len(p.Weather)),
	}
	if p.Main.FeelsLike != nil {
		v := *p.Main.FeelsLike
		rec.FeelsLikeCelsius = &v
	}
	for _, c := range p.Weather {
		rec.Conditions = append(rec.Conditions, ConditionEntry{
			Category:    c.Main,
			Description: c.Description,
			IconID:      c.Icon,
		})
	}
	return rec
}

// codeValue holds the provider's "cod" field, which arrives as a JSON number
// on some errors and as a string on others. Both forms normalize to the
// decimal string.
type codeValue string

func (c *codeValue) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*c = codeValue(strconv.FormatInt(n, 10))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cod is neither number nor string: %w", err)
	}
	*c = codeValue(s)
	return nil
}

// errorEnvelope is the provider's generic error payload. Both fields are
// optional on the wire.
type errorEnvelope struct {
	Code    codeValue `json:"cod"`
	Message string    `json:"message"`
}

// recoverProviderMessage pulls display text out of a non-200 body on a best
// effort basis. The provider normally sends its error envelope, but proxies
// in front of it can answer with plain text. Recovery failure is absorbed,
// the caller falls back to fixed per-kind text.
func recoverProviderMessage(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	var env errorEnvelope
	if err := json.Unmarshal(trimmed, &env); err == nil {
		return strings.TrimSpace(env.Message)
	}

	if !utf8.Valid(trimmed) {
		return ""
	}
	return string(trimmed)
}

// Interpret translates one provider response into a WeatherRecord or a
// classified *Error. It is a pure function of the status code and body.
//
// Statuses 401, 404 and 429 map to KindInvalidAPIKey, KindCityNotFound and
// KindRateLimited regardless of body content; every other non-200 status
// maps to KindServer. A 200 body that cannot be decoded, or that lacks a
// required field, yields KindDecoding with the cause attached.
func Interpret(status int, body []byte) (WeatherRecord, error) {
	if status != http.StatusOK {
		return WeatherRecord{}, statusError(status, body)
	}
	return decodeRecord(body)
}

func statusError(status int, body []byte) *Error {
	msg := recoverProviderMessage(body)
	switch status {
	case http.StatusUnauthorized:
		return &Error{Kind: KindInvalidAPIKey, Message: msg}
	case http.StatusNotFound:
		return &Error{Kind: KindCityNotFound, Message: msg}
	case http.StatusTooManyRequests:
		return &Error{Kind: KindRateLimited, Message: msg}
	default:
		return &Error{Kind: KindServer, Status: status, Message: msg}
	}
}

func decodeRecord(body []byte) (WeatherRecord, error) {
	var payload weatherPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return WeatherRecord{}, &Error{Kind: KindDecoding, Err: err}
	}
	if err := payload.validate(); err != nil {
		return WeatherRecord{}, &Error{Kind: KindDecoding, Err: err}
	}
	return payload.record(), nil
}
