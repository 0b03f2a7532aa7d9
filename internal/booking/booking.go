// Package booking implements the ride request form model: client-side
// validation and a SQLite-backed store of submitted requests.
package booking

import (
	"strings"
	"time"
)

// Date and time formats accepted by the form.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Request is one ride request as entered in the form.
type Request struct {
	Pickup      string
	Destination string
	Date        string
	Time        string
}

// Validate checks the request against the form rules and returns
// field-keyed messages; an empty map means the request is acceptable.
// now anchors the not-in-the-past rule.
func (r Request) Validate(now time.Time) map[string]string {
	errs := make(map[string]string)

	pickup := strings.TrimSpace(r.Pickup)
	dest := strings.TrimSpace(r.Destination)

	if pickup == "" {
		errs["pickup"] = "Pickup location is required"
	}
	if dest == "" {
		errs["destination"] = "Destination is required"
	}
	if pickup != "" && dest != "" && strings.EqualFold(pickup, dest) {
		errs["destination"] = "Destination must differ from pickup"
	}

	if strings.TrimSpace(r.Date) == "" {
		errs["date"] = "Date is required"
	} else if day, err := time.Parse(DateLayout, strings.TrimSpace(r.Date)); err != nil {
		errs["date"] = "Date must look like " + DateLayout
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if day.Before(today) {
			errs["date"] = "Date must not be in the past"
		}
	}

	if strings.TrimSpace(r.Time) == "" {
		errs["time"] = "Time is required"
	} else if _, err := time.Parse(TimeLayout, strings.TrimSpace(r.Time)); err != nil {
		errs["time"] = "Time must look like " + TimeLayout
	}

	return errs
}

// Normalize returns the request with surrounding whitespace stripped.
func (r Request) Normalize() Request {
	return Request{
		Pickup:      strings.TrimSpace(r.Pickup),
		Destination: strings.TrimSpace(r.Destination),
		Date:        strings.TrimSpace(r.Date),
		Time:        strings.TrimSpace(r.Time),
	}
}
