package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTP struct {
	Host              string
	Port              int
	ReadHeaderTimeout time.Duration
}

type CORS struct {
	Origins []string
}

type DB struct {
	Driver string // mysql or sqlite
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	Path   string // sqlite file, ":memory:" allowed
}

type Log struct {
	Level  string
	Format string // console or json
}

type Session struct {
	Header string
}

type Pool struct {
	Core            int
	Max             int
	Queue           int
	KeepAlive       time.Duration
	ShutdownTimeout time.Duration
}

type Mail struct {
	Enabled  bool
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Pool     Pool
}

type Seed struct {
	Path    string
	OnStart bool
}

// Admin is the bootstrap account created when the store has no such user.
type Admin struct {
	User     string
	Password string
	Email    string
}

type Config struct {
	HTTP    HTTP
	CORS    CORS
	DB      DB
	Log     Log
	Session Session
	Mail    Mail
	Seed    Seed
	Admin   Admin
}

// EnvPrefix namespaces environment overrides: db.pass becomes RECIPES_DB_PASS.
const EnvPrefix = "RECIPES"

func Load(path string) (*Config, error) {
	v, err := open(path)
	if err != nil {
		return nil, err
	}
	return decode(v), nil
}

// Watch loads the config like Load and calls onChange with the new values
// every time the file is written.
func Watch(path string, onChange func(*Config)) (*Config, error) {
	v, err := open(path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		v.OnConfigChange(func(fsnotify.Event) {
			onChange(decode(v))
		})
		v.WatchConfig()
	}
	return decode(v), nil
}

func open(path string) (*viper.Viper, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("http.host", "127.0.0.1")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.read_header_timeout", 5*time.Second)
	v.SetDefault("cors.origins", []string{"*"})
	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "recipes")
	v.SetDefault("db.path", "recipes.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("session.header", "sessionid")
	v.SetDefault("mail.enabled", false)
	v.SetDefault("mail.host", "localhost")
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.from", "no-reply@recipes.local")
	v.SetDefault("mail.pool.core", 10)
	v.SetDefault("mail.pool.max", 15)
	v.SetDefault("mail.pool.queue", 200)
	v.SetDefault("mail.pool.keep_alive", 60*time.Second)
	v.SetDefault("mail.pool.shutdown_timeout", 600*time.Second)
	v.SetDefault("seed.path", "")
	v.SetDefault("seed.on_start", false)
	v.SetDefault("admin.user", "admin")
	v.SetDefault("admin.password", "password")
	v.SetDefault("admin.email", "admin@recipes.local")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

func decode(v *viper.Viper) *Config {
	return &Config{
		HTTP: HTTP{
			Host:              v.GetString("http.host"),
			Port:              v.GetInt("http.port"),
			ReadHeaderTimeout: v.GetDuration("http.read_header_timeout"),
		},
		CORS: CORS{Origins: v.GetStringSlice("cors.origins")},
		DB: DB{
			Driver: strings.ToLower(v.GetString("db.driver")),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
			Path:   v.GetString("db.path"),
		},
		Log:     Log{Level: v.GetString("log.level"), Format: v.GetString("log.format")},
		Session: Session{Header: v.GetString("session.header")},
		Mail: Mail{
			Enabled:  v.GetBool("mail.enabled"),
			Host:     v.GetString("mail.host"),
			Port:     v.GetInt("mail.port"),
			Username: v.GetString("mail.username"),
			Password: v.GetString("mail.password"),
			From:     v.GetString("mail.from"),
			Pool: Pool{
				Core:            v.GetInt("mail.pool.core"),
				Max:             v.GetInt("mail.pool.max"),
				Queue:           v.GetInt("mail.pool.queue"),
				KeepAlive:       v.GetDuration("mail.pool.keep_alive"),
				ShutdownTimeout: v.GetDuration("mail.pool.shutdown_timeout"),
			},
		},
		Seed:  Seed{Path: v.GetString("seed.path"), OnStart: v.GetBool("seed.on_start")},
		Admin: Admin{User: v.GetString("admin.user"), Password: v.GetString("admin.password"), Email: v.GetString("admin.email")},
	}
}
