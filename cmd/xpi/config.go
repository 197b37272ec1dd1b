package main

import (
	"io"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xtpool/pkg/config/xconf"
	"github.com/omeyang/xtpool/pkg/observability/xlog"
)

const (
	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagLogFile   = "log-file"
	flagTerms     = "terms"
	flagWorkers   = "workers"
	flagLockOS    = "lock-os-thread"
	flagMetrics   = "metrics"

	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	defaultPoolName  = "xpi"
	defaultTerms     = 1_000_000
)

// Config 是 xpi 的完整配置，对应配置文件结构：
//
//	pool:
//	  workers: 0
//	  name: xpi
//	  lock_os_thread: false
//	log:
//	  level: info
//	  format: text
//	  file: ""
//	pi:
//	  terms: 1000000
type Config struct {
	Pool PoolConfig `koanf:"pool"`
	Log  LogConfig  `koanf:"log"`
	Pi   PiConfig   `koanf:"pi"`
}

// PoolConfig 对应 xpool 的构造参数；Workers 为 0 表示使用全部硬件线程。
type PoolConfig struct {
	Workers      int    `koanf:"workers"`
	Name         string `koanf:"name"`
	LockOSThread bool   `koanf:"lock_os_thread"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	File   string `koanf:"file"`
}

type PiConfig struct {
	Terms int `koanf:"terms"`
}

func defaultConfig() Config {
	return Config{
		Pool: PoolConfig{Name: defaultPoolName},
		Log:  LogConfig{Level: defaultLogLevel, Format: defaultLogFormat},
		Pi:   PiConfig{Terms: defaultTerms},
	}
}

// loadConfig 依次应用默认值、配置文件、显式设置的命令行参数。
func loadConfig(cmd *cli.Command) (Config, error) {
	cfg := defaultConfig()

	if path := cmd.String(flagConfig); path != "" {
		file, err := xconf.New(path)
		if err != nil {
			return cfg, err
		}
		if err := file.Unmarshal("", &cfg); err != nil {
			return cfg, err
		}
	}

	if cmd.IsSet(flagLogLevel) {
		cfg.Log.Level = cmd.String(flagLogLevel)
	}
	if cmd.IsSet(flagLogFormat) {
		cfg.Log.Format = cmd.String(flagLogFormat)
	}
	if cmd.IsSet(flagLogFile) {
		cfg.Log.File = cmd.String(flagLogFile)
	}
	if cmd.IsSet(flagTerms) {
		cfg.Pi.Terms = cmd.Int(flagTerms)
	}
	if cmd.IsSet(flagWorkers) {
		cfg.Pool.Workers = cmd.Int(flagWorkers)
	}
	if cmd.IsSet(flagLockOS) {
		cfg.Pool.LockOSThread = cmd.Bool(flagLockOS)
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Pi.Terms < 0 {
		return usageErrorf("terms must not be negative, got %d", c.Pi.Terms)
	}
	if c.Pool.Workers < 0 {
		return usageErrorf("workers must not be negative, got %d", c.Pool.Workers)
	}
	if _, err := xlog.ParseLevel(c.Log.Level); err != nil {
		return usageErrorf("%v", err)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return usageErrorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// newLogger 按配置构建日志记录器，未指定文件时写到 stderr。
func newLogger(c LogConfig, stderr io.Writer) (xlog.LoggerWithLevel, func() error, error) {
	b := xlog.New().SetLevelString(c.Level).SetFormat(c.Format).SetOutput(stderr)
	if c.File != "" {
		b = b.SetRotation(c.File)
	}
	return b.Build()
}
