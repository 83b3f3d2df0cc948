package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

// Config agrupa toda la configuración de la aplicación, leída del entorno.
// Los valores por defecto reproducen el comportamiento de escritorio:
// toasts de 3 segundos, filas de ~69px y umbral de arrastre de 40px.
type Config struct {
	App struct {
		Name string `env:"APP_NAME" envDefault:"vetclinic-reception"`
		Env  string `env:"APP_ENV" envDefault:"local"`
	}

	Log struct {
		Level  string `env:"LOG_LEVEL" envDefault:"info"`
		Format string `env:"LOG_FORMAT" envDefault:"text"`
	}

	UI struct {
		ToastDurationMS int `env:"UI_TOAST_DURATION_MS" envDefault:"3000"`
		RowHeightPX     int `env:"UI_ROW_HEIGHT_PX" envDefault:"69"`
		DragThresholdPX int `env:"UI_DRAG_THRESHOLD_PX" envDefault:"40"`
		DragHintPX      int `env:"UI_DRAG_HINT_PX" envDefault:"20"`
	}

	Undo struct {
		MaxHistory int `env:"UNDO_MAX_HISTORY" envDefault:"50"`
	}

	Cache struct {
		Size int `env:"CACHE_SIZE" envDefault:"128"`
	}
}

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ToastDuration expone la duración de los toasts como time.Duration.
func (c *Config) ToastDuration() time.Duration {
	return time.Duration(c.UI.ToastDurationMS) * time.Millisecond
}
