package config

const (
	// ActionMove and ActionCopy are the two operations a run can perform.
	ActionMove = "move"
	ActionCopy = "copy"

	defaultAction    = ActionMove
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults. The category
// table starts empty; normalize fills it with the built-in table when the
// file provides none.
func Default() Config {
	return Config{
		Organize: Organize{
			Action: defaultAction,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
