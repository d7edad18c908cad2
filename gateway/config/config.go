package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/shareit/pkg/logger"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `envconfig:"GATEWAY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `envconfig:"GATEWAY_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `envconfig:"HTTP_WRITE"`
}

type ShareitHTTPServer struct {
	Host    string        `envconfig:"SHAREIT_HTTP_HOST" default:"localhost"`
	Port    string        `envconfig:"SHAREIT_HTTP_PORT" default:"9090"`
	Timeout time.Duration `envconfig:"SHAREIT_HTTP_TIMEOUT" default:"30s"`
}

type CircuitBreaker struct {
	RecordLength     int           `envconfig:"CB_RECORD_LENGTH" default:"100"`
	Timeout          time.Duration `envconfig:"CB_TIMEOUT" default:"1s"`
	Percentile       float64       `envconfig:"CB_PERCENTILE" default:"0.2"`
	RecoveryRequests int           `envconfig:"CB_RECOVERY_REQUESTS" default:"2"`
}

type Config struct {
	Server            HTTPServer
	ShareitHTTPServer ShareitHTTPServer
	CircuitBreaker    CircuitBreaker
	Log               logger.Log
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
