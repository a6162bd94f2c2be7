package domain

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"08:00", 8 * HourMillis, true},
		{"08:00:30", 8*HourMillis + 30*1000, true},
		{"9:05", 9*HourMillis + 5*MinuteMillis, true},
		{" 23:59 ", 23*HourMillis + 59*MinuteMillis, true},
		{"", 0, false},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"12:5", 0, false},
		{"ab:cd", 0, false},
		{"+1:00", 0, false},
		{"10:00-11:00", 0, false},
		{"1:2:3:4", 0, false},
	}

	for _, tc := range tests {
		got, ok := ParseClock(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseClock(%q) = %d, %v, want %d, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFormatClockWrapsPastMidnight(t *testing.T) {
	if got := FormatClock(8*HourMillis + 45*MinuteMillis); got != "08:45" {
		t.Fatalf("FormatClock = %q, want 08:45", got)
	}
	if got := FormatClockSeconds(DayMillis + 30*MinuteMillis + 5000); got != "00:30:05" {
		t.Fatalf("FormatClockSeconds = %q, want 00:30:05", got)
	}
	if got := FormatClock(-MinuteMillis); got != "23:59" {
		t.Fatalf("FormatClock(-1m) = %q, want 23:59", got)
	}
}

func TestParseRange(t *testing.T) {
	start, end, ok := ParseRange("09:00-11:30")
	if !ok {
		t.Fatal("expected range to parse")
	}
	if start != 9*HourMillis || end != 11*HourMillis+30*MinuteMillis {
		t.Fatalf("ParseRange = %d, %d", start, end)
	}

	if _, _, ok := ParseRange("09:00 – 10:00"); !ok {
		t.Fatal("expected spaced en dash range to parse")
	}
	for _, bad := range []string{"", "09:00", "09:00-", "nine-ten", "25:00-26:00"} {
		if _, _, ok := ParseRange(bad); ok {
			t.Errorf("ParseRange(%q) should fail", bad)
		}
	}
}

func TestEffectiveStart(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want int
		ok   bool
	}{
		{"range", Item{TimeSlot: "10:00-11:00"}, 10 * HourMillis, true},
		{"instant", Item{TimeSlot: "14:30:00"}, 14*HourMillis + 30*MinuteMillis, true},
		{"start hint", Item{StartTime: "07:15"}, 7*HourMillis + 15*MinuteMillis, true},
		{"slot wins over hint", Item{TimeSlot: "12:00", StartTime: "07:15"}, 12 * HourMillis, true},
		{"garbage", Item{TimeSlot: "soon"}, 0, false},
		{"empty", Item{}, 0, false},
	}

	for _, tc := range tests {
		got, ok := EffectiveStart(tc.item)
		if ok != tc.ok || got != tc.want {
			t.Errorf("%s: EffectiveStart = %d, %v, want %d, %v", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}
