package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/rocks-and-bullets/parameter"
)

// EnvPrefix prefixes environment overrides, engine.tick_rate is read from ROCKS_ENGINE_TICK_RATE
const EnvPrefix = "ROCKS"

const configName = "rocks"

// Config holds every tunable of a run
type Config struct {
	Engine  EngineConfig  `mapstructure:"engine"`
	Arena   ArenaConfig   `mapstructure:"arena"`
	Ship    ShipConfig    `mapstructure:"ship"`
	Weapon  WeaponConfig  `mapstructure:"weapon"`
	Bullet  BulletConfig  `mapstructure:"bullet"`
	Input   InputConfig   `mapstructure:"input"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Render  RenderConfig  `mapstructure:"render"`

	// Source is the config file that was read, empty when running on defaults
	Source string `mapstructure:"-"`
	// ShowVersion is set by --version
	ShowVersion bool `mapstructure:"-"`
}

type EngineConfig struct {
	TickRate     int  `mapstructure:"tick_rate"`
	BulletExpiry bool `mapstructure:"bullet_expiry"`
	MaxBullets   int  `mapstructure:"max_bullets"`
	FullWrap     bool `mapstructure:"full_wrap"`
}

type ArenaConfig struct {
	FOV            float64 `mapstructure:"fov"`
	Aspect         float64 `mapstructure:"aspect"`
	CameraDistance float64 `mapstructure:"camera_distance"`
}

type ShipConfig struct {
	Acceleration float64       `mapstructure:"acceleration"`
	RotationRate float64       `mapstructure:"rotation_rate"`
	Cooldown     time.Duration `mapstructure:"cooldown"`
	GunOffset    []float64     `mapstructure:"gun_offset"`
}

type WeaponConfig struct {
	MuzzleVelocity float64 `mapstructure:"muzzle_velocity"`
}

type BulletConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// InputConfig maps action names to key names per player
type InputConfig struct {
	Hold    time.Duration     `mapstructure:"hold"`
	Player1 map[string]string `mapstructure:"player1"`
	Player2 map[string]string `mapstructure:"player2"`
	Quit    []string          `mapstructure:"quit"`
}

type LogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Level   string `mapstructure:"level"`
	Dir     string `mapstructure:"dir"`
}

type MetricsConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
}

type RenderConfig struct {
	Color string `mapstructure:"color"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("engine.tick_rate", parameter.TickRate)
	v.SetDefault("engine.bullet_expiry", parameter.BulletExpiry)
	v.SetDefault("engine.max_bullets", parameter.MaxBullets)
	v.SetDefault("engine.full_wrap", parameter.FullWrap)

	v.SetDefault("arena.fov", parameter.CameraFOV)
	v.SetDefault("arena.aspect", parameter.CameraAspect)
	v.SetDefault("arena.camera_distance", parameter.CameraDistance)

	v.SetDefault("ship.acceleration", parameter.ShipAcceleration)
	v.SetDefault("ship.rotation_rate", parameter.ShipRotationRate)
	v.SetDefault("ship.cooldown", parameter.ShipCooldown)
	v.SetDefault("ship.gun_offset", parameter.ShipGunOffset[:])

	v.SetDefault("weapon.muzzle_velocity", parameter.MuzzleVelocity)
	v.SetDefault("bullet.ttl", parameter.BulletTTL)

	v.SetDefault("input.hold", parameter.KeyHold)
	v.SetDefault("input.player1", anyMap(parameter.Player1Keys))
	v.SetDefault("input.player2", anyMap(parameter.Player2Keys))
	v.SetDefault("input.quit", parameter.QuitKeys)

	v.SetDefault("log.enabled", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "logs")

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.interval", 10*time.Second)

	v.SetDefault("render.color", "auto")
}

// anyMap widens a binding table so viper merges it key by key with file values
func anyMap(m map[string]string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// flagKeys binds command-line flags to config keys
var flagKeys = map[string]string{
	"tick-rate":     "engine.tick_rate",
	"bullet-expiry": "engine.bullet_expiry",
	"max-bullets":   "engine.max_bullets",
	"full-wrap":     "engine.full_wrap",
	"log":           "log.enabled",
	"log-level":     "log.level",
	"log-dir":       "log.dir",
	"metrics":       "metrics.enabled",
	"color":         "render.color",
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", "", "Config file, or directory holding "+configName+".toml")
	fs.Bool("version", false, "Print version and exit")

	fs.Int("tick-rate", parameter.TickRate, "Simulation ticks per second")
	fs.Bool("bullet-expiry", parameter.BulletExpiry, "Remove bullets when their lifetime runs out")
	fs.Int("max-bullets", parameter.MaxBullets, "Live bullet cap, 0 disables")
	fs.Bool("full-wrap", parameter.FullWrap, "Fold ships into the arena however far they travel")
	fs.Bool("log", true, "Write a log file")
	fs.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	fs.String("log-dir", "logs", "Log directory")
	fs.Bool("metrics", false, "Export metrics into the log directory")
	fs.String("color", "auto", "Color mode: auto, truecolor, 256")
	return fs
}

// Load resolves the configuration from defaults, an optional TOML file, ROCKS_ environment
// variables and command-line flags, later sources winning
// args excludes the program name, pflag.ErrHelp is returned for -h
func Load(args []string) (*Config, error) {
	fs := newFlagSet(configName)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	source, err := readConfigFile(v, fs.Lookup("config").Value.String())
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Source = source
	cfg.ShowVersion, _ = fs.GetBool("version")

	return &cfg, nil
}

// readConfigFile reads an explicit path, or searches the default locations
// A missing file is only an error when the path was given explicitly
func readConfigFile(v *viper.Viper, path string) (string, error) {
	explicit := path != ""
	if explicit {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			v.AddConfigPath(path)
			v.SetConfigName(configName)
			v.SetConfigType("toml")
		} else {
			v.SetConfigFile(path)
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/rocks-and-bullets")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !explicit && errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("error reading config file: %w", err)
	}
	return v.ConfigFileUsed(), nil
}
