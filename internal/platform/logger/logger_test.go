package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func newBufLogger(lvl Level, format Format) (*bytes.Buffer, *StdLogger) {
	buf := &bytes.Buffer{}
	l := New(Options{Level: lvl, Format: format, App: "vetclinic", Out: buf}).(*StdLogger)
	l.now = func() time.Time { return time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC) }
	return buf, l
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		"INFO":    Info,
		"warning": Warn,
		"error":   Error,
		"":        Info,
		"bogus":   Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestStdLogger_TextFormatSortsKeys(t *testing.T) {
	buf, l := newBufLogger(Debug, FormatText)

	l.Info("cliente agregado", map[string]any{"id": 7, "dni": "12345678"})

	got := strings.TrimSpace(buf.String())
	want := "app=vetclinic dni=12345678 id=7 level=info msg=cliente agregado ts=2024-12-01T09:00:00Z"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStdLogger_JSONFormat(t *testing.T) {
	buf, l := newBufLogger(Debug, FormatJSON)

	l.Error("mascota no encontrada", map[string]any{"id": 99})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["level"] != "error" || entry["msg"] != "mascota no encontrada" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry["id"] != float64(99) {
		t.Fatalf("unexpected id %v", entry["id"])
	}
}

func TestStdLogger_LevelFilter(t *testing.T) {
	buf, l := newBufLogger(Warn, FormatText)

	l.Debug("oculto", nil)
	l.Info("oculto", nil)
	l.Warn("visible", nil)

	out := buf.String()
	if strings.Contains(out, "oculto") {
		t.Fatalf("low levels must be filtered: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn must pass: %q", out)
	}
}

func TestStdLogger_WithAddsBaseFields(t *testing.T) {
	buf, l := newBufLogger(Debug, FormatText)

	child := l.With(map[string]any{"view": "clients"})
	child.Info("listado", nil)

	if !strings.Contains(buf.String(), "view=clients") {
		t.Fatalf("base field missing: %q", buf.String())
	}
}
