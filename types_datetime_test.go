package expenses

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDatetime(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Datetime
		wantErr bool
	}{
		{
			name: "canonical form",
			in:   "2024-01-02 15:04:05",
			want: NewDatetime(2024, time.January, 2, 15, 4, 5),
		},
		{
			name: "date only is midnight",
			in:   "2024-01-02",
			want: NewDatetime(2024, time.January, 2, 0, 0, 0),
		},
		{
			name: "single digit month and day",
			in:   "2024-1-2",
			want: NewDatetime(2024, time.January, 2, 0, 0, 0),
		},
		{
			name: "rfc3339",
			in:   "2024-01-02T15:04:05Z",
			want: NewDatetime(2024, time.January, 2, 15, 4, 5),
		},
		{
			name: "surrounding spaces",
			in:   "  2024-01-02 15:04:05 ",
			want: NewDatetime(2024, time.January, 2, 15, 4, 5),
		},
		{
			name: "empty is the missing value",
			in:   "",
			want: Datetime{},
		},
		{
			name:    "garbage",
			in:      "not a date",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDatetime(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDatetime(%q) expected an error, got %v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDatetime(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseDatetime(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDatetime_String(t *testing.T) {
	if got := MustParseDatetime("2024-01-02 15:04:05").String(); got != "2024-01-02 15:04:05" {
		t.Errorf("String() = %q, want %q", got, "2024-01-02 15:04:05")
	}
	if got := (Datetime{}).String(); got != "" {
		t.Errorf("zero String() = %q, want empty", got)
	}
}

func TestDatetime_JSON(t *testing.T) {
	data, err := json.Marshal(MustParseDatetime("2024-01-02"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2024-01-02 00:00:00"` {
		t.Errorf("marshal = %s, want %q", data, `"2024-01-02 00:00:00"`)
	}

	data, err = json.Marshal(Datetime{})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `""` {
		t.Errorf("marshal of missing = %s, want %q", data, `""`)
	}

	// An unparseable date is coerced to the missing value, never dropped.
	var d Datetime
	if err := json.Unmarshal([]byte(`"yesterday-ish"`), &d); err != nil {
		t.Fatalf("unmarshal of a bad date should coerce, got error: %v", err)
	}
	if !d.IsZero() {
		t.Errorf("unmarshal of a bad date = %v, want the missing value", d)
	}

	if err := json.Unmarshal([]byte(`42`), &d); err == nil {
		t.Error("unmarshal of a non-string should fail")
	}
}

func TestDatetime_Ordering(t *testing.T) {
	early := MustParseDatetime("2024-01-01 08:00:00")
	late := MustParseDatetime("2024-01-01 08:00:01")
	if !early.Before(late) || late.Before(early) {
		t.Errorf("Before is wrong for %v and %v", early, late)
	}
	if !late.After(early) || early.After(late) {
		t.Errorf("After is wrong for %v and %v", early, late)
	}
}
