package cmd

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configBaseName   = "boggle"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	envPrefix = "BOGGLE"

	dictionaryKey = "dictionary"

	serverAddrKey   = "server.addr"
	clientOriginKey = "server.client_origin"
	ticketSecretKey = "ticket.secret"
	ticketTTLKey    = "ticket.ttl"
	dailySaltKey    = "daily.salt"

	freqDBKey   = "freq.db"
	freqLangKey = "freq.lang"
	bandsKey    = "bands.file"

	hintBeamWidthKey = "hint.beam_width"
	hintMaxLengthKey = "hint.max_length"
	hintThresholdKey = "hint.threshold"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultServerAddr   = ":5175"
	defaultClientOrigin = "http://localhost:5173"
	defaultTicketTTL    = 24 * time.Hour
	defaultDailySalt    = "local_dev_salt"
	defaultFreqLang     = "en"
	defaultBeamWidth    = 2
	defaultMaxLength    = 8
	defaultThreshold    = 4.0

	defaultLogLevel      = "info"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(dictionaryKey, "")
	viper.SetDefault(serverAddrKey, defaultServerAddr)
	viper.SetDefault(clientOriginKey, defaultClientOrigin)
	viper.SetDefault(ticketSecretKey, "")
	viper.SetDefault(ticketTTLKey, defaultTicketTTL)
	viper.SetDefault(dailySaltKey, defaultDailySalt)
	viper.SetDefault(freqDBKey, "")
	viper.SetDefault(freqLangKey, defaultFreqLang)
	viper.SetDefault(bandsKey, "")
	viper.SetDefault(hintBeamWidthKey, defaultBeamWidth)
	viper.SetDefault(hintMaxLengthKey, defaultMaxLength)
	viper.SetDefault(hintThresholdKey, defaultThreshold)

	viper.SetDefault(logFilenameKey, "")
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, false)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// loadConfig reads .env into the process environment, then boggle.yaml.
// Both files are optional.
func loadConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

// parseLogLevel maps a config value to a zerolog level, falling back to def.
func parseLogLevel(value string, def zerolog.Level) zerolog.Level {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return def
	}
	if value == "warning" {
		value = "warn"
	}
	lvl, err := zerolog.ParseLevel(value)
	if err != nil {
		return def
	}
	return lvl
}

// configureLogger sets the global zerolog logger: a console writer on stderr
// and, when log.filename is set, JSON lines to a rotated file.
func configureLogger(stderr io.Writer) {
	level := parseLogLevel(viper.GetString(logLevelKey), zerolog.InfoLevel)
	if viper.GetBool(logVerboseKey) {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	writers := []io.Writer{zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen}}
	if path := strings.TrimSpace(viper.GetString(logFilenameKey)); path != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   path,
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   viper.GetBool(logCompressKey),
		})
	}
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
}
