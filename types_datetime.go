package expenses

import (
	"encoding/json"
	"strings"
	"time"
)

// DatetimeFormat is the canonical second-precision form used in the store file.
const DatetimeFormat = "2006-01-02 15:04:05"

// readDatetimeFormats lists the accepted input forms, tried in order.
// Date-only input is accepted and normalized to midnight.
var readDatetimeFormats = []string{
	DatetimeFormat,
	"2006-01-02",
	"2006-1-2 15:04:05",
	"2006-1-2",
	time.RFC3339,
}

// Datetime represents a transaction timestamp with second-level granularity.
//
// The zero value means "missing" and is persisted as an empty string, never
// as a not-a-number sentinel. A genuine timestamp is never the zero value.
type Datetime struct {
	y  int
	mo time.Month
	d  int
	h  int
	mi int
	s  int
}

// NewDatetime returns a normalized Datetime for the given instant.
func NewDatetime(year int, month time.Month, day, hour, min, sec int) Datetime {
	t := time.Date(year, month, day, hour, min, sec, 0, time.UTC)
	d := Datetime{}
	d.y, d.mo, d.d = t.Date()
	d.h, d.mi, d.s = t.Clock()
	return d
}

// Now returns the current instant truncated to the second.
func Now() Datetime {
	t := time.Now()
	return NewDatetime(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
}

// time returns the canonical time.Time representation (UTC).
func (d Datetime) time() time.Time {
	return time.Date(d.y, d.mo, d.d, d.h, d.mi, d.s, 0, time.UTC)
}

// IsZero returns true if the datetime is the missing value.
func (d Datetime) IsZero() bool { return d == Datetime{} }

// String formats the datetime in the canonical store form, or "" when missing.
func (d Datetime) String() string {
	if d.IsZero() {
		return ""
	}
	return d.time().Format(DatetimeFormat)
}

// Before reports whether d is strictly before x.
func (d Datetime) Before(x Datetime) bool { return d.time().Before(x.time()) }

// After reports whether d is strictly after x.
func (d Datetime) After(x Datetime) bool { return d.time().After(x.time()) }

// ParseDatetime parses a Datetime from a string. It is lenient and also
// accepts date-only forms like "2024-01-02". An empty string is the missing
// value, not an error.
func ParseDatetime(str string) (Datetime, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return Datetime{}, nil
	}
	var err error
	for _, format := range readDatetimeFormats {
		var t time.Time
		t, err = time.Parse(format, str)
		if err == nil {
			return NewDatetime(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second()), nil
		}
	}
	return Datetime{}, err
}

// MustParseDatetime is like ParseDatetime but panics on error.
func MustParseDatetime(str string) Datetime {
	d, err := ParseDatetime(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// MarshalJSON writes the canonical string form, or "" for the missing value.
func (d Datetime) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// UnmarshalJSON reads a datetime from a JSON string. An unparseable value is
// coerced to the missing value rather than rejected, so a damaged record does
// not block loading the rest of the store.
func (d *Datetime) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseDatetime(str)
	if err != nil {
		*d = Datetime{}
		return nil
	}
	*d = parsed
	return nil
}

// check that a Datetime pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Datetime)(nil)
var _ json.Unmarshaler = (*Datetime)(nil)
