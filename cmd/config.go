package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"clinicaio.dev/pkg/clinicaio/internal/adapter"
	"clinicaio.dev/pkg/clinicaio/internal/controller"
	"clinicaio.dev/pkg/clinicaio/internal/domain/preprocessing"
	m "clinicaio.dev/pkg/clinicaio/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "clinicaio"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	envPrefix = "CLINICAIO"

	preprocessingFlagName  = "preprocessing"
	fromBIDSFlagName       = "from-bids"
	uncroppedFlagName      = "uncropped"
	tracerFlagName         = "tracer"
	regionFlagName         = "suvr-reference-region"
	dtiMeasureFlagName     = "dti-measure"
	dtiSpaceFlagName       = "dti-space"
	customSuffixFlagName   = "custom-suffix"
	formatFlagName         = "format"
	verboseFlagName        = "verbose"
	logFileFlagName        = "log-file"
	strictFlagName         = "strict"
	parallelFlagName       = "parallel"
	tsvFlagName            = "tsv"
	bidsFlagName           = "bids"
	reconstructionFlagName = "reconstruction"

	preprocessingNameKey = "preprocessing.name"
	fromBIDSKey          = "preprocessing.from_bids"
	uncroppedKey         = "preprocessing.use_uncropped_image"
	tracerKey            = "preprocessing.tracer"
	regionKey            = "preprocessing.suvr_reference_region"
	dtiMeasureKey        = "preprocessing.dti_measure"
	dtiSpaceKey          = "preprocessing.dti_space"
	customSuffixKey      = "preprocessing.custom_suffix"
	filesStrictKey       = "files.strict"
	filesParallelKey     = "files.parallel"
	outputFormatKey      = "output.format"

	defaultPreprocessing = string(m.T1Linear)
	defaultFilesStrict   = true
	defaultFilesParallel = adapter.DefaultFileReaderParallel
	defaultOutputFormat  = string(controller.FormatTable)

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".clinicaio.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configErr is the error met while reading clinicaio.yaml. A missing file is
// not an error.
var configErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults()

	configErr = readConfig(viper.GetViper())
}

func readConfig(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("%w: read %s: %w", m.ErrInvalidConfig, v.ConfigFileUsed(), err)
}

func setDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)

	viper.SetDefault(preprocessingNameKey, defaultPreprocessing)
	viper.SetDefault(fromBIDSKey, false)
	viper.SetDefault(uncroppedKey, false)
	viper.SetDefault(tracerKey, "")
	viper.SetDefault(regionKey, "")
	viper.SetDefault(dtiMeasureKey, "")
	viper.SetDefault(dtiSpaceKey, "")
	viper.SetDefault(customSuffixKey, "")

	viper.SetDefault(filesStrictKey, defaultFilesStrict)
	viper.SetDefault(filesParallelKey, defaultFilesParallel)
	viper.SetDefault(outputFormatKey, defaultOutputFormat)

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// settings is the decoded view of the configuration after flags, environment,
// config file and defaults are merged.
type settings struct {
	Preprocessing preprocessing.Options `yaml:"preprocessing"`
	Files         fileSettings          `yaml:"files"`
	Output        outputSettings        `yaml:"output"`
}

type fileSettings struct {
	Strict   bool `yaml:"strict"`
	Parallel int  `yaml:"parallel"`
}

type outputSettings struct {
	Format string `yaml:"format"`
}

func loadSettings() (settings, error) {
	if configErr != nil {
		return settings{}, configErr
	}

	var s settings

	err := viper.Unmarshal(&s, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "yaml"
	})
	if err != nil {
		return settings{}, fmt.Errorf("%w: %w", m.ErrInvalidConfig, err)
	}

	return s, nil
}

func outputFormat(s settings) (controller.Format, error) {
	format, err := controller.ParseFormat(s.Output.Format)
	if err != nil {
		return "", fmt.Errorf("%w: %w", m.ErrInvalidConfig, err)
	}

	return format, nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels are accepted too (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
