package logformat

import (
	"testing"
	"time"
)

func TestParseTimestampFormats(t *testing.T) {
	p := NewTimestampParser()

	cases := []struct {
		name string
		line string
		want string // HH:MM:SS
	}{
		{"rfc3339", "2024-01-15T10:30:45Z INFO start", "10:30:45"},
		{"common_ms", "2024-01-15 10:30:45.123 worker up", "10:30:45"},
		{"common", "2024-01-15 10:30:45 worker up", "10:30:45"},
		{"syslog", "Jan 15 10:30:45 host daemon: msg", "10:30:45"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts, ok := p.Parse([]byte(tc.line))
			if !ok {
				t.Fatalf("Parse(%q) found nothing", tc.line)
			}
			if got := ts.Format("15:04:05"); got != tc.want {
				t.Fatalf("Parse(%q) = %s, want %s", tc.line, got, tc.want)
			}
		})
	}

	if _, ok := p.Parse([]byte("no timestamp here")); ok {
		t.Fatalf("Parse found a timestamp in plain text")
	}
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"14:00", 14 * 3600, false},
		{"14:30:05", 14*3600 + 30*60 + 5, false},
		{"00:00", 0, false},
		{"23:59:59", 23*3600 + 59*60 + 59, false},
		{"25:00", 0, true},
		{"12:61", 0, true},
		{"noon", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseTimeOfDay(%q) accepted invalid input", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseTimeOfDay(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestSecondsOfDay(t *testing.T) {
	ts := time.Date(2024, 1, 15, 14, 30, 5, 0, time.UTC)
	if got := SecondsOfDay(ts); got != 14*3600+30*60+5 {
		t.Fatalf("SecondsOfDay = %d", got)
	}
}
