package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config describes where and how the widget keeps its state.
type Config interface {
	BasePath() string
}

// Settings extends Config with the tunables read from the config file.
type Settings interface {
	Config
	Reminder() string
	Period() string
	Window() int
	Listen() string
}

// DefaultListen is where the widget server listens unless configured.
const DefaultListen = "127.0.0.1:8080"

// LoadConfig reads .moods.yaml (if any) layered over MOODS_* env vars and defaults.
func LoadConfig() (Settings, error) {
	v := viper.New()
	v.SetDefault("path", "~/.moods.db")
	v.SetDefault("reminder", "19:00")
	v.SetDefault("period", "1d")
	v.SetDefault("window", 7)
	v.SetDefault("listen", DefaultListen)
	v.SetConfigName(".moods") // .yaml is implicit
	v.SetEnvPrefix("MOODS")
	v.AutomaticEnv()

	if override := os.Getenv("MOODS_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expanding path: %w", err)
	}

	return &fileConfig{
		Path:         path,
		ReminderAt:   v.GetString("reminder"),
		RepeatPeriod: v.GetString("period"),
		ChartWindow:  v.GetInt("window"),
		ListenAddr:   v.GetString("listen"),
		source:       v.ConfigFileUsed(),
	}, nil
}

// StaticConfig is a Config rooted at a fixed path, mostly for tests.
type StaticConfig string

func (s StaticConfig) BasePath() string {
	return string(s)
}

type fileConfig struct {
	Path         string `json:"path"`
	ReminderAt   string `json:"reminder"`
	RepeatPeriod string `json:"period"`
	ChartWindow  int    `json:"window"`
	ListenAddr   string `json:"listen"`

	source string
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Reminder() string {
	return f.ReminderAt
}

func (f *fileConfig) Period() string {
	return f.RepeatPeriod
}

func (f *fileConfig) Window() int {
	if f.ChartWindow <= 0 {
		return 7
	}
	return f.ChartWindow
}

func (f *fileConfig) Listen() string {
	return f.ListenAddr
}

// Source is the config file that was read, or "" when only defaults applied.
func (f *fileConfig) Source() string {
	return f.source
}
