package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/run-mailcap/pkg/errors"
	"github.com/arthur-debert/run-mailcap/pkg/logging"
	"github.com/arthur-debert/run-mailcap/pkg/paths"
)

// Conventional environment variables honoured besides RUN_MAILCAP_*
const (
	EnvPager    = "PAGER"
	EnvXTermCmd = "XTERMCMD"
	EnvDisplay  = "DISPLAY"

	// EnvPrefix prefixes the environment form of every configuration key
	EnvPrefix = "RUN_MAILCAP_"
)

// Options controls where Load looks for configuration
type Options struct {
	// ConfigFile is an explicit configuration file. When empty the XDG
	// location is used if it exists.
	ConfigFile string

	// Overrides are applied last, keyed like the configuration file.
	// Command-line flags end up here.
	Overrides map[string]interface{}
}

// Load merges, lowest precedence first, the embedded defaults, the user
// configuration file, the conventional environment (PAGER, XTERMCMD,
// MAILCAPS, DISPLAY), RUN_MAILCAP_* variables and opts.Overrides.
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config.loader")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User configuration file
	configFile, explicit := opts.ConfigFile, opts.ConfigFile != ""
	if !explicit {
		configFile = paths.New().ConfigFilePath()
	}
	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configFile).
				WithDetail("path", configFile)
		}
		logger.Debug().Str("path", configFile).Msg("Loaded configuration file")
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", configFile).
			WithDetail("path", configFile)
	}

	// 3. Conventional environment
	if err := k.Load(confmap.Provider(conventionalEnv(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. RUN_MAILCAP_* environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		// directory overrides are read by pkg/paths
		if s == paths.EnvConfigDir || s == paths.EnvStateDir {
			return ""
		}
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 6. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(":"),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// 7. Post-process
	postProcessConfig(&cfg)

	return &cfg, nil
}

// conventionalEnv maps the environment variables other mailcap tools
// understand onto configuration keys
func conventionalEnv() map[string]interface{} {
	m := map[string]interface{}{
		"running_in_x": os.Getenv(EnvDisplay) != "",
	}
	if pager := os.Getenv(EnvPager); pager != "" {
		m["pager"] = pager
	}
	if xterm := os.Getenv(EnvXTermCmd); xterm != "" {
		m["xterm_cmd"] = xterm
	}
	if mailcaps := paths.MailcapSearchPath(nil); len(mailcaps) > 0 {
		m["mailcap_paths"] = mailcaps
	}
	return m
}

func postProcessConfig(cfg *Config) {
	cfg.MailcapPaths = paths.ExpandAll(cfg.MailcapPaths)
	cfg.MimeTypesPaths = paths.ExpandAll(cfg.MimeTypesPaths)

	if len(cfg.SharedMIMEPaths) == 0 {
		cfg.SharedMIMEPaths = paths.New().SharedMIMEPackageDirs()
	} else {
		cfg.SharedMIMEPaths = paths.ExpandAll(cfg.SharedMIMEPaths)
	}

	if cfg.TestTimeout < 0 {
		cfg.TestTimeout = 0
	}
	if cfg.Format == "" {
		cfg.Format = "auto"
	}
}
