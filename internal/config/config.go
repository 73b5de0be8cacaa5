package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/attendance-reminder-bot/internal/domain/worktime"
)

type Config struct {
	SlackBotToken         string
	SlackSigningSecret    string
	SlackBroadcastChannel string
	DatabasePath          string
	Port                  string
	CronSecret            string
	LogLevel              string
	HolidayFile           string

	Reminder  Reminder
	Scheduler Scheduler
}

// Reminder holds the parameters of the reminder engine.
type Reminder struct {
	UTCOffset          time.Duration
	CheckInWindow      worktime.Window
	CompletionDuration time.Duration
	PreOffset          time.Duration
	Tolerance          time.Duration
	SinkTimeout        time.Duration
	Workers            int
	BroadcastHour      int
}

// Location is the fixed local zone all business rules are expressed in.
func (r Reminder) Location() *time.Location {
	return worktime.FixedZone(r.UTCOffset)
}

// Scheduler configures the optional in-process cron trigger.
type Scheduler struct {
	Enabled bool
	Spec    string
}

// Load reads the configuration from the environment. Any error here is a
// configuration error and should stop the process.
func Load() (*Config, error) {
	cfg := &Config{
		SlackBotToken:         getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret:    getEnv("SLACK_SIGNING_SECRET", ""),
		SlackBroadcastChannel: getEnv("SLACK_BROADCAST_CHANNEL", ""),
		DatabasePath:          getEnv("DATABASE_PATH", "./attendance.db"),
		Port:                  getEnv("PORT", "3000"),
		CronSecret:            getEnv("CRON_SECRET", ""),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		HolidayFile:           getEnv("HOLIDAY_FILE", ""),
		Scheduler: Scheduler{
			Spec: getEnv("SCHEDULER_SPEC", "*/2 * * * *"),
		},
	}

	var err error
	r := &cfg.Reminder

	if r.UTCOffset, err = getDuration("LOCAL_UTC_OFFSET", worktime.DefaultOffset); err != nil {
		return nil, err
	}
	if r.CompletionDuration, err = getDuration("COMPLETION_DURATION", 9*time.Hour); err != nil {
		return nil, err
	}
	if r.PreOffset, err = getDuration("REMINDER_PRE_OFFSET", 10*time.Minute); err != nil {
		return nil, err
	}
	if r.Tolerance, err = getDuration("TICK_TOLERANCE", 2*time.Minute); err != nil {
		return nil, err
	}
	if r.SinkTimeout, err = getDuration("SINK_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if r.Workers, err = getInt("DISPATCH_WORKERS", 8); err != nil {
		return nil, err
	}
	if r.BroadcastHour, err = getInt("CHECKIN_BROADCAST_HOUR", 8); err != nil {
		return nil, err
	}
	if cfg.Scheduler.Enabled, err = getBool("INTERNAL_SCHEDULER", false); err != nil {
		return nil, err
	}

	r.CheckInWindow, err = worktime.NewWindow(
		getEnv("CHECKIN_EARLIEST", "08:00"),
		getEnv("CHECKIN_LATEST", "11:00"),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid check-in window: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the invariants the reminder engine relies on.
func (c *Config) Validate() error {
	r := c.Reminder
	if r.UTCOffset < -14*time.Hour || r.UTCOffset > 14*time.Hour {
		return fmt.Errorf("LOCAL_UTC_OFFSET must be within ±14h, got %s", r.UTCOffset)
	}
	if r.CompletionDuration <= 0 {
		return fmt.Errorf("COMPLETION_DURATION must be positive, got %s", r.CompletionDuration)
	}
	if r.PreOffset <= 0 {
		return fmt.Errorf("REMINDER_PRE_OFFSET must be positive, got %s", r.PreOffset)
	}
	if r.PreOffset >= r.CompletionDuration {
		return fmt.Errorf("REMINDER_PRE_OFFSET (%s) must be shorter than COMPLETION_DURATION (%s)", r.PreOffset, r.CompletionDuration)
	}
	if r.Tolerance <= 0 {
		return fmt.Errorf("TICK_TOLERANCE must be positive, got %s", r.Tolerance)
	}
	if r.SinkTimeout <= 0 {
		return fmt.Errorf("SINK_TIMEOUT must be positive, got %s", r.SinkTimeout)
	}
	if r.Workers < 1 {
		return fmt.Errorf("DISPATCH_WORKERS must be at least 1, got %d", r.Workers)
	}
	if r.BroadcastHour < 0 || r.BroadcastHour > 23 {
		return fmt.Errorf("CHECKIN_BROADCAST_HOUR must be between 0 and 23, got %d", r.BroadcastHour)
	}
	if !r.CheckInWindow.OverlapsHour(r.BroadcastHour) {
		return fmt.Errorf("CHECKIN_BROADCAST_HOUR %02d:00 never falls inside the check-in window %s", r.BroadcastHour, r.CheckInWindow)
	}
	if c.Scheduler.Enabled && strings.TrimSpace(c.Scheduler.Spec) == "" {
		return fmt.Errorf("SCHEDULER_SPEC is required when INTERNAL_SCHEDULER is enabled")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getInt(key string, defaultValue int) (int, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
