package config

import (
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := New()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.App.Name != "vetclinic-reception" {
		t.Fatalf("unexpected app name %q", cfg.App.Name)
	}
	if cfg.UI.ToastDurationMS != 3000 || cfg.UI.RowHeightPX != 69 || cfg.UI.DragThresholdPX != 40 || cfg.UI.DragHintPX != 20 {
		t.Fatalf("unexpected UI defaults %+v", cfg.UI)
	}
	if cfg.Undo.MaxHistory != 50 {
		t.Fatalf("unexpected undo default %d", cfg.Undo.MaxHistory)
	}
	if cfg.ToastDuration() != 3*time.Second {
		t.Fatalf("unexpected toast duration %v", cfg.ToastDuration())
	}
}

func TestNew_EnvOverride(t *testing.T) {
	t.Setenv("UI_TOAST_DURATION_MS", "1500")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := New()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.UI.ToastDurationMS != 1500 {
		t.Fatalf("override not applied: %d", cfg.UI.ToastDurationMS)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("override not applied: %q", cfg.Log.Level)
	}
	if cfg.ToastDuration() != 1500*time.Millisecond {
		t.Fatalf("unexpected toast duration %v", cfg.ToastDuration())
	}
}
