package constants

import "time"

const (
	AppName            = "cadence"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/cadence/cadence.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Storage keys for the four persisted aggregates
	HabitsKey      = "habits"
	CompletionsKey = "completions"
	ProfileKey     = "user_profile"
	PrefsKey       = "app_preferences"

	// XP awards
	XPPerCompletion   = 10
	XPStreak7Bonus    = 50
	XPStreak30Bonus   = 200
	XPPerLevel        = 100
	Streak7Milestone  = 7
	Streak30Milestone = 30

	// Reminder polling interval
	ReminderPollInterval = time.Minute

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "cadence-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.cadence.tracker"
)
