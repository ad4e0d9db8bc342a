package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/servicebox-app/booking-service/internal/domain"
	"github.com/servicebox-app/booking-service/pkg/types"
)

// Config конфигурация сервиса, загружается из TOML файла
type Config struct {
	Server   Server   `toml:"server"`
	Database Database `toml:"database"`
	Logs     Logs     `toml:"logs"`
	Metrics  Metrics  `toml:"metrics"`
	Notifier Notifier `toml:"notifier"`
	Booking  Booking  `toml:"booking"`
}

// Server настройки HTTP сервера (таймауты в секундах)
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Database настройки подключения к PostgreSQL
type Database struct {
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

// DSN возвращает строку подключения к PostgreSQL
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки prometheus-метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Notifier настройки клиента сервиса уведомлений
type Notifier struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Booking настройки рабочего окна и шага слотов
// Окно одно на весь магазин; расписания отдельных мастеров не поддерживаются
type Booking struct {
	WorkStart       string `toml:"work_start"`        // "09:00"
	WorkEnd         string `toml:"work_end"`          // "20:00"
	SlotStepMinutes int    `toml:"slot_step_minutes"` // 30
	Timezone        string `toml:"timezone"`          // "Europe/Moscow"
}

// Schedule парсит настройки рабочего окна в доменную модель
func (b Booking) Schedule() (domain.ScheduleConfig, error) {
	workStart := b.WorkStart
	if workStart == "" {
		workStart = domain.DefaultWorkStart
	}
	workEnd := b.WorkEnd
	if workEnd == "" {
		workEnd = domain.DefaultWorkEnd
	}
	step := b.SlotStepMinutes
	if step == 0 {
		step = domain.DefaultSlotStepMinutes
	}

	start, err := types.NewTimeStringFromString(workStart)
	if err != nil {
		return domain.ScheduleConfig{}, fmt.Errorf("config: invalid booking.work_start: %w", err)
	}
	end, err := types.NewTimeStringFromString(workEnd)
	if err != nil {
		return domain.ScheduleConfig{}, fmt.Errorf("config: invalid booking.work_end: %w", err)
	}
	if !start.IsBefore(end) {
		return domain.ScheduleConfig{}, errors.New("config: booking.work_start must be before booking.work_end")
	}
	if step <= 0 {
		return domain.ScheduleConfig{}, errors.New("config: booking.slot_step_minutes must be positive")
	}

	loc := time.Local
	if b.Timezone != "" {
		loc, err = time.LoadLocation(b.Timezone)
		if err != nil {
			return domain.ScheduleConfig{}, fmt.Errorf("config: invalid booking.timezone: %w", err)
		}
	}

	return domain.ScheduleConfig{
		WorkStart:   start,
		WorkEnd:     end,
		StepMinutes: step,
		Location:    loc,
	}, nil
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: Server{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: Database{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: Logs{
			Level: "info",
		},
		Metrics: Metrics{
			Path: "/metrics",
		},
		Booking: Booking{
			WorkStart:       domain.DefaultWorkStart,
			WorkEnd:         domain.DefaultWorkEnd,
			SlotStepMinutes: domain.DefaultSlotStepMinutes,
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	return cfg, nil
}
