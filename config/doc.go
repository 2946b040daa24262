// Package config loads client configuration from a YAML file, an optional
// .env file and the environment, using viper and godotenv.
//
//	type Config struct {
//	    Base config.BaseConfig `mapstructure:"base"`
//	    HTTP httpclient.Config `mapstructure:"http"`
//	}
//
//	var cfg Config
//	err := config.LoadConfig("bandsintown", &cfg, config.WithEnvPrefix("BANDSINTOWN"))
//
// With a prefix, BANDSINTOWN_HTTP_TIMEOUT=10s overrides http.timeout.
package config
