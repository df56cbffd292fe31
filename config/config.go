package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

type HTTP struct {
	Addr string `yaml:"addr"`
}

type Logging struct {
	Env       string `yaml:"env"`       // dev|prod
	Service   string `yaml:"service"`   // chat-service
	Version   string `yaml:"version"`   // v0.1.0
	Backend   string `yaml:"backend"`   // std|zap
	AddSource bool   `yaml:"addSource"` // false|true
	Debug     bool   `yaml:"debug"`     // false|true
}

type Chat struct {
	HistoryCap  int      `yaml:"historyCap"`  // stored broadcast messages
	JoinHistory int      `yaml:"joinHistory"` // history replayed on join
	PreviewLen  int      `yaml:"previewLen"`  // notification preview chars
	Rooms       []string `yaml:"rooms"`       // suggested room list
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

type Config struct {
	HTTP    HTTP    `yaml:"http"`
	Logging Logging `yaml:"logging"`
	Chat    Chat    `yaml:"chat"`
	CORS    CORS    `yaml:"cors"`
}

func LoadConfig() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config/config.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.HTTP.Addr == "" {
		return errors.New("http.addr is required")
	}
	if c.Logging.Service == "" {
		c.Logging.Service = "chat-service"
	}
	if c.Logging.Env == "" {
		c.Logging.Env = "dev"
	}
	if c.Logging.Version == "" {
		c.Logging.Version = "v0.1.0"
	}
	if c.Logging.Backend == "" {
		c.Logging.Backend = "std"
	}
	if c.Chat.HistoryCap <= 0 {
		c.Chat.HistoryCap = 1000
	}
	if c.Chat.JoinHistory <= 0 {
		c.Chat.JoinHistory = 100
	}
	if c.Chat.PreviewLen <= 0 {
		c.Chat.PreviewLen = 50
	}
	if len(c.Chat.Rooms) == 0 {
		c.Chat.Rooms = []string{"general", "random", "tech", "gaming"}
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
	return nil
}
