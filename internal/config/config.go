package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

const DefaultBaseURL = "https://api.domaci.hoi5.com/api"

type Config struct {
	BaseURL     string        `env:"BRIO_BASE_URL" envDefault:"https://api.domaci.hoi5.com/api"`
	HTTPTimeout time.Duration `env:"BRIO_HTTP_TIMEOUT" envDefault:"10s"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}
