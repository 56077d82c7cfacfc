package lazylog

import "testing"

func TestLevelOrdering(t *testing.T) {
	ordered := []Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, OffLevel}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Fatalf("%v should sort below %v", ordered[i-1], ordered[i])
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"trace", TraceLevel, true},
		{"TRC", TraceLevel, true},
		{"0", TraceLevel, true},
		{"debug", DebugLevel, true},
		{"DBG", DebugLevel, true},
		{"info", InfoLevel, true},
		{" INF ", InfoLevel, true},
		{"2", InfoLevel, true},
		{"warning", WarnLevel, true},
		{"WRN", WarnLevel, true},
		{"error", ErrorLevel, true},
		{"ERR", ErrorLevel, true},
		{"4", ErrorLevel, true},
		{"off", OffLevel, true},
		{"OFF", OffLevel, true},
		{"disabled", OffLevel, true},
		{"5", OffLevel, true},
		{"bogus", InfoLevel, false},
		{"", InfoLevel, false},
	}
	for _, tc := range tests {
		got, ok := ParseLevel(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseLevel(%q): got (%v, %v) want (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLevelShortNames(t *testing.T) {
	want := map[Level]string{
		TraceLevel: "TRC",
		DebugLevel: "DBG",
		InfoLevel:  "INF",
		WarnLevel:  "WRN",
		ErrorLevel: "ERR",
		OffLevel:   "OFF",
	}
	for level, short := range want {
		if got := level.Short(); got != short {
			t.Errorf("%s.Short(): got %q", LevelString(level), got)
		}
	}
}
