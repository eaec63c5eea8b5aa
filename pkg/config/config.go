package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// App holds application configuration.
type App struct {
	Name    string `mapstructure:"name"`
	Env     string `mapstructure:"env"`
	Version string `mapstructure:"version"`
}

// Logger holds logger configuration.
type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// Database holds database configuration.
type Database struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"name"`
	SSLMode         string `mapstructure:"ssl_mode"`
	TimeZone        string `mapstructure:"time_zone"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
	LogLevel        string `mapstructure:"log_level"`
}

// API holds API server configuration.
type API struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Load loads configuration from a file into the given config struct.
// Values from a local .env file and the process environment override the file,
// e.g. DATABASE_PASSWORD overrides database.password.
func Load(path string, config interface{}, defaults map[string]interface{}) error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Println("Failed to read config file, trying environment variables only")
	}

	return v.Unmarshal(config)
}
