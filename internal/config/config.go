package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig возвращается, когда значения в config.toml противоречат друг другу
var ErrInvalidConfig = errors.New("config: invalid configuration")

const (
	ModeSim  = "sim"
	ModeLive = "live"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	IVR      IVRConfig      `toml:"ivr"`
	Salon    SalonConfig    `toml:"salon"`
}

// ServerConfig таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто - только stdout
}

type MetricsConfig struct {
	Enabled             bool   `toml:"enabled"`
	Path                string `toml:"path"`
	ServiceName         string `toml:"service_name"`
	PoolCollectInterval int    `toml:"pool_collect_interval"` // секунды
}

// SalonConfig данные салона для админки
// owner_email - владелец, которого создаем, пока администраторов нет совсем
type SalonConfig struct {
	Name       string `toml:"name"`
	OwnerEmail string `toml:"owner_email"`
}

// IVRConfig параметры движка звонков
// mode = "sim" - услуги, время и брони в памяти; "live" - Postgres и Redis
type IVRConfig struct {
	Mode               string `toml:"mode"`
	Timezone           string `toml:"timezone"`
	HoldTTL            int    `toml:"hold_ttl"`             // секунды
	SessionIdleTimeout int    `toml:"session_idle_timeout"` // секунды
	TerminalRetention  int    `toml:"terminal_retention"`   // секунды
	JanitorInterval    int    `toml:"janitor_interval"`     // секунды
	HorizonDays        int    `toml:"horizon_days"`
	SlotCount          int    `toml:"slot_count"`
	SlotStepMinutes    int    `toml:"slot_step_minutes"`
	MinNoticeMinutes   int    `toml:"min_notice_minutes"`
	SimSeed            int64  `toml:"sim_seed"` // 0 - случайный
}

// Load читает config.toml, подставляет значения по умолчанию и проверяет результат
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Parse то же, что Load, но из строки
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	setInt(&c.Server.HTTPPort, 8080)
	setInt(&c.Server.ReadTimeout, 10)
	setInt(&c.Server.WriteTimeout, 10)
	setInt(&c.Server.IdleTimeout, 60)
	setInt(&c.Server.ShutdownTimeout, 10)

	setString(&c.Database.Host, "localhost")
	setInt(&c.Database.Port, 5432)
	setString(&c.Database.SSLMode, "disable")
	setInt(&c.Database.MaxOpenConns, 25)
	setInt(&c.Database.MaxIdleConns, 5)
	setInt(&c.Database.ConnMaxLifetime, 300)

	setString(&c.Redis.Addr, "localhost:6379")

	setString(&c.Logs.Level, "info")

	setString(&c.Metrics.Path, "/metrics")
	setString(&c.Metrics.ServiceName, "salon_service")
	setInt(&c.Metrics.PoolCollectInterval, 15)

	setString(&c.IVR.Mode, ModeSim)
	setString(&c.IVR.Timezone, "Europe/Stockholm")
	setInt(&c.IVR.HoldTTL, 300)
	setInt(&c.IVR.SessionIdleTimeout, 600)
	setInt(&c.IVR.TerminalRetention, 3600)
	setInt(&c.IVR.JanitorInterval, 30)
	setInt(&c.IVR.HorizonDays, 7)
	setInt(&c.IVR.SlotCount, 3)
	setInt(&c.IVR.SlotStepMinutes, 30)

	setString(&c.Salon.Name, "Salong")
}

// Validate проверяет значения после подстановки значений по умолчанию
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port out of range: %d", c.Server.HTTPPort))
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		problems = append(problems, "database.max_idle_conns exceeds max_open_conns")
	}
	if c.IVR.Mode != ModeSim && c.IVR.Mode != ModeLive {
		problems = append(problems, fmt.Sprintf("ivr.mode must be %q or %q, got %q", ModeSim, ModeLive, c.IVR.Mode))
	}
	if c.IVR.Mode == ModeLive && c.Database.DBName == "" {
		problems = append(problems, "database.dbname is required in live mode")
	}
	if _, err := time.LoadLocation(c.IVR.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("ivr.timezone: %v", err))
	}
	if c.IVR.HorizonDays > 7 {
		problems = append(problems, fmt.Sprintf("ivr.horizon_days must be at most 7, got %d", c.IVR.HorizonDays))
	}
	if c.IVR.SlotCount > 9 {
		problems = append(problems, fmt.Sprintf("ivr.slot_count must be at most 9, got %d", c.IVR.SlotCount))
	}
	if c.IVR.MinNoticeMinutes < 0 {
		problems = append(problems, "ivr.min_notice_minutes must not be negative")
	}
	if e := c.Salon.OwnerEmail; e != "" && (strings.Count(e, "@") != 1 || strings.ContainsAny(e, " \t")) {
		problems = append(problems, fmt.Sprintf("salon.owner_email is not an email: %q", e))
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, fmt.Sprintf("metrics.path must start with '/', got %q", c.Metrics.Path))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Location часовой пояс салона, Validate уже проверил, что он загружается
func (c IVRConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func (c IVRConfig) HoldTTLDuration() time.Duration         { return seconds(c.HoldTTL) }
func (c IVRConfig) IdleTimeoutDuration() time.Duration     { return seconds(c.SessionIdleTimeout) }
func (c IVRConfig) RetentionDuration() time.Duration       { return seconds(c.TerminalRetention) }
func (c IVRConfig) JanitorIntervalDuration() time.Duration { return seconds(c.JanitorInterval) }

func setInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func setString(v *string, def string) {
	if *v == "" {
		*v = def
	}
}
