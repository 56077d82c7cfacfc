package lazylog

import (
	"strings"
	"testing"
	"time"
)

var formatterTestTime = time.Date(2023, time.May, 6, 7, 8, 9, 42, time.UTC)

func formatterTestCallsite(t *testing.T) *Callsite {
	t.Helper()
	return NewCallsite(WarnLevel, "payments", "charge.go", 88, "charge failed")
}

func TestTextFormatterDefault(t *testing.T) {
	cs := formatterTestCallsite(t)
	f := NewTextFormatter(TextFormatterOptions{})
	got := f.Format(formatterTestTime, cs, "charge failed")
	want := "[2023-05-06T07:08:09.000000042Z] charge failed\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestTextFormatterSegments(t *testing.T) {
	cs := formatterTestCallsite(t)
	f := NewTextFormatter(TextFormatterOptions{
		IncludeLevel:  true,
		IncludeTarget: true,
		IncludeSource: true,
	})
	got := f.Format(formatterTestTime, cs, "charge failed")
	want := "[2023-05-06T07:08:09.000000042Z][WRN][payments][charge.go:88] charge failed\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestJSONFormatterStructured(t *testing.T) {
	cs := formatterTestCallsite(t)
	f := NewJSONFormatter()
	got := f.FormatStructured(formatterTestTime, cs, "msg 3", []NamedField{
		{Name: "a", Token: "1"},
		{Name: "b", Token: "x"},
	})
	want := `{"timestamp":"2023-05-06T07:08:09.000000042Z","level":"WRN","fields":{"message":"msg 3","a":"1","b":"x"}}` + "\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestJSONFormatterEscapes(t *testing.T) {
	cs := formatterTestCallsite(t)
	f := NewJSONFormatter()
	got := f.FormatStructured(formatterTestTime, cs, "say \"hi\"\n", []NamedField{{Name: "tab", Token: "a\tb"}})
	if !strings.Contains(got, `\"hi\"\n`) {
		t.Errorf("message escapes missing: %q", got)
	}
	if !strings.Contains(got, `"tab":"a\tb"`) {
		t.Errorf("field escapes missing: %q", got)
	}
}

func TestJSONFormatterEmptyRecord(t *testing.T) {
	cs := formatterTestCallsite(t)
	f := NewJSONFormatter()
	got := f.FormatStructured(formatterTestTime, cs, "", nil)
	want := `{"timestamp":"2023-05-06T07:08:09.000000042Z","level":"WRN"}` + "\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestColorTextFormatter(t *testing.T) {
	cs := formatterTestCallsite(t)
	f := NewColorTextFormatter()
	got := f.Format(formatterTestTime, cs, "charge failed")
	if !strings.Contains(got, ansiBrightYellow+"[WRN]"+ansiReset) {
		t.Errorf("warn level not tinted: %q", got)
	}
	if !strings.HasSuffix(got, " charge failed\n") {
		t.Errorf("message tail wrong: %q", got)
	}
}
