package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Env  string `yaml:"env"`
}

type DatabaseConfig struct {
	DSN string `yaml:"url"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	TTL    int    `yaml:"ttl"` // minutes
}

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUsername string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromEmail    string `yaml:"from_email"`
	FromName     string `yaml:"from_name"`
}

type PushConfig struct {
	SendBufferSize int `yaml:"send_buffer_size"`
}

type NotificationsConfig struct {
	FanoutWorkers     int `yaml:"fanout_workers"`
	EmailTimeoutSec   int `yaml:"email_timeout_sec"`
	ReminderWindowMin int `yaml:"reminder_window_min"`
	ReminderTickMin   int `yaml:"reminder_tick_min"`
}

type FrontendConfig struct {
	BaseURL string `yaml:"base_url"`
}

type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	JWT           JWTConfig           `yaml:"jwt"`
	Email         EmailConfig         `yaml:"email"`
	Push          PushConfig          `yaml:"push"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Frontend      FrontendConfig      `yaml:"frontend"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or falls back to environment variables
// when DATABASE_URL is set (test / container mode). A .env file is
// loaded first if present.
func LoadConfig() {
	_ = godotenv.Load()

	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60

	cfg.Email.SMTPHost = "smtp.test.com"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromEmail = "noreply@freelancehub.test"
	cfg.Email.FromName = "FreelanceHub"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Push.SendBufferSize == 0 {
		cfg.Push.SendBufferSize = 256
	}
	if cfg.Notifications.FanoutWorkers == 0 {
		cfg.Notifications.FanoutWorkers = 8
	}
	if cfg.Notifications.EmailTimeoutSec == 0 {
		cfg.Notifications.EmailTimeoutSec = 10
	}
	if cfg.Notifications.ReminderWindowMin == 0 {
		cfg.Notifications.ReminderWindowMin = 30
	}
	if cfg.Notifications.ReminderTickMin == 0 {
		cfg.Notifications.ReminderTickMin = 5
	}
	if cfg.Frontend.BaseURL == "" {
		cfg.Frontend.BaseURL = "http://localhost:3000"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
