package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"moviebook/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "MOVIEBOOK_LOG_LEVEL")
	viper.BindEnv("persistence.filePath", "MOVIEBOOK_DB_PATH")
	viper.BindEnv("cache.enabled", "MOVIEBOOK_CACHE_ENABLED")
	viper.BindEnv("cache.size", "MOVIEBOOK_CACHE_SIZE")
	viper.BindEnv("oracle.baseURL", "MOVIEBOOK_ORACLE_URL")
	viper.BindEnv("peers.bookingURL", "MOVIEBOOK_BOOKING_URL")
	viper.BindEnv("peers.movieURL", "MOVIEBOOK_MOVIE_URL")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
