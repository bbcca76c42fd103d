package config

const (
	defaultOutputDirName       = "Organized"
	defaultHistoryDB           = "~/.local/share/sorter/history.db"
	defaultHistoryEnabled      = true
	defaultRestoreArchiveTimes = true
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDirName: defaultOutputDirName,
			HistoryDB:     defaultHistoryDB,
		},
		Sorting: Sorting{
			RestoreArchiveTimes: defaultRestoreArchiveTimes,
		},
		History: History{
			Enabled: defaultHistoryEnabled,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
