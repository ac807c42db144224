package openweather

import (
	"errors"
	"fmt"
)

// Kind identifies the failure class of an Error. The set is closed so
// callers can switch on it exhaustively.
type Kind int

const (
	KindUnknown Kind = iota
	KindBadURL
	KindInvalidAPIKey
	KindCityNotFound
	KindRateLimited
	KindServer
	KindDecoding
	KindNetwork
)

// String returns a stable label for logs.
func (k Kind) String() string {
	switch k {
	case KindBadURL:
		return "bad_url"
	case KindInvalidAPIKey:
		return "invalid_api_key"
	case KindCityNotFound:
		return "city_not_found"
	case KindRateLimited:
		return "rate_limited"
	case KindServer:
		return "server_error"
	case KindDecoding:
		return "decoding_error"
	case KindNetwork:
		return "network_error"
	default:
		return "unknown_error"
	}
}

// Error is the only error type this package returns.
//
// Status is populated for KindServer. Message carries text recovered from
// the provider's error payload, when there was any. Err carries the
// underlying cause for KindDecoding and KindNetwork.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

// Error renders a technical description for logs. Text meant for direct
// display comes from UserMessage.
func (e *Error) Error() string {
	detail := e.Message
	if e.Err != nil {
		detail = e.Err.Error()
	}
	switch {
	case e.Kind == KindServer && detail != "":
		return fmt.Sprintf("%s: status %d: %s", e.Kind, e.Status, detail)
	case e.Kind == KindServer:
		return fmt.Sprintf("%s: status %d", e.Kind, e.Status)
	case detail != "":
		return fmt.Sprintf("%s: %s", e.Kind, detail)
	default:
		return e.Kind.String()
	}
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.Err }

// UserMessage returns non-empty text suitable for direct display. The
// provider's own message wins when one was recovered, otherwise a fixed
// Polish default for the kind.
func (e *Error) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	switch e.Kind {
	case KindBadURL:
		return "Nie udało się zbudować adresu zapytania."
	case KindInvalidAPIKey:
		return "Nieprawidłowy klucz API serwisu pogodowego."
	case KindCityNotFound:
		return "Nie znaleziono podanej miejscowości."
	case KindRateLimited:
		return "Przekroczono limit zapytań do serwisu pogodowego."
	case KindServer:
		return fmt.Sprintf("Serwis pogodowy zwrócił błąd (HTTP %d).", e.Status)
	case KindDecoding:
		return "Nie udało się odczytać danych pogodowych."
	case KindNetwork:
		return "Błąd połączenia z serwisem pogodowym."
	default:
		return "Wystąpił nieoczekiwany błąd."
	}
}

// Classify coerces err into this package's Error type. Errors produced here
// pass through unchanged; anything foreign is wrapped as KindUnknown.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	var werr *Error
	if errors.As(err, &werr) {
		return werr
	}
	return &Error{Kind: KindUnknown, Err: err}
}
