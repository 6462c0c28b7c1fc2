package database

// Config selects the snapshot history database. The mysql fields are ignored
// for sqlite, where Name is a file path or ":memory:".
type Config struct {
	Driver   string `mapstructure:"driver" default:"mysql"`
	Host     string `mapstructure:"host" default:"localhost"`
	Port     int    `mapstructure:"port" default:"3306"`
	User     string `mapstructure:"user" default:"root"`
	Password string `mapstructure:"password" default:""`
	Name     string `mapstructure:"name" default:"token_bridge"`
	// TimeoutSeconds bounds the startup ping and mysql socket I/O.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}
