package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/sicko7947/claimflow"
)

// EnvPrefix is the prefix of environment overrides, e.g. CLAIMD_STORE_BACKEND
const EnvPrefix = "CLAIMD"

// flagKeys maps command flags onto config keys
var flagKeys = map[string]string{
	"addr":    "server.address",
	"backend": "store.backend",
}

// loadConfig resolves configuration with the precedence
// flags > environment > config file > defaults, then validates it.
func loadConfig(file string, flags *pflag.FlagSet) (claimflow.Config, error) {
	v := viper.New()
	setDefaults(v, claimflow.DefaultConfig)

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return claimflow.Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return claimflow.Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg claimflow.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return claimflow.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return claimflow.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it
func setDefaults(v *viper.Viper, cfg claimflow.Config) {
	v.SetDefault("server.address", cfg.Server.Address)
	v.SetDefault("server.shutdown_timeout", cfg.Server.ShutdownTimeout)
	v.SetDefault("server.metrics_enabled", cfg.Server.MetricsEnabled)

	v.SetDefault("store.backend", string(cfg.Store.Backend))
	v.SetDefault("store.table_name", cfg.Store.TableName)
	v.SetDefault("store.region", cfg.Store.Region)
	v.SetDefault("store.endpoint", cfg.Store.Endpoint)
	v.SetDefault("store.sqlite_path", cfg.Store.SQLitePath)
	v.SetDefault("store.redis_addr", cfg.Store.RedisAddr)
	v.SetDefault("store.redis_db", cfg.Store.RedisDB)
	v.SetDefault("store.redis_prefix", cfg.Store.RedisPrefix)

	v.SetDefault("identity.format", string(cfg.Identity.Format))
	v.SetDefault("identity.prefix", cfg.Identity.Prefix)
	v.SetDefault("identity.payload_size", cfg.Identity.PayloadSize)
	v.SetDefault("identity.cache_ttl", cfg.Identity.CacheTTL)

	v.SetDefault("rate_limit.rps", cfg.RateLimit.RPS)
	v.SetDefault("rate_limit.burst", cfg.RateLimit.Burst)
	v.SetDefault("rate_limit.idle_ttl", cfg.RateLimit.IdleTTL)

	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.pretty", cfg.Log.Pretty)
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect claimd configuration",
	Long: `Inspect claimd configuration.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (CLAIMD_*)
3. Config file (--config)
4. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cfgFile, nil)
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}
