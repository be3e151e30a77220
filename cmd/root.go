// Package cmd provides the root command and CLI setup for clinicaio.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"clinicaio.dev/pkg/clinicaio/internal/adapter"
	"clinicaio.dev/pkg/clinicaio/internal/controller"
	"clinicaio.dev/pkg/clinicaio/internal/domain/preprocessing"
)

var fsAdapter adapter.FSAdapter
var layoutAdapter adapter.LayoutAdapter
var sessionAdapter adapter.SessionAdapter

func init() {
	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalFSAdapter()
	layoutAdapter = adapter.NewLocalLayoutAdapter(fsAdapter)
	sessionAdapter = adapter.NewLocalSessionAdapter(fsAdapter)
}

const preprocessingHelp = `The preprocessing is selected with --preprocessing (or preprocessing.name in
clinicaio.yaml, or CLINICAIO_PREPROCESSING_NAME) and tuned with the
preprocessing flags:
  --tracer, --suvr-reference-region   pet-linear
  --dti-measure, --dti-space          dwi-dti
  --custom-suffix                     custom
  --uncropped                         t1-linear, t2-linear, flair-linear
  --from-bids                         use the raw BIDS pattern`

const rootLongDescription = `clinicaio maps neuroimaging preprocessing pipelines onto the file patterns of
BIDS and CAPS directories and finds the matching files of every subject and
session.

` + preprocessingHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "clinicaio",
		Short:        "BIDS and CAPS file patterns for preprocessing pipelines",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
			configureColor(os.Stderr)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP(preprocessingFlagName, "p", defaultPreprocessing, "preprocessing pipeline (t1-linear, t2-linear, flair-linear, pet-linear, custom, dwi-dti)")
	bindFlagToConfig(flags.Lookup(preprocessingFlagName), preprocessingNameKey)

	flags.Bool(fromBIDSFlagName, false, "use the raw BIDS pattern of the preprocessing")
	bindFlagToConfig(flags.Lookup(fromBIDSFlagName), fromBIDSKey)

	flags.Bool(uncroppedFlagName, false, "select uncropped linear images")
	bindFlagToConfig(flags.Lookup(uncroppedFlagName), uncroppedKey)

	flags.String(tracerFlagName, "", "PET tracer label (default 18FFDG, \"any\" matches every tracer)")
	bindFlagToConfig(flags.Lookup(tracerFlagName), tracerKey)

	flags.String(regionFlagName, "", "SUVR reference region (pons, cerebellumPons, pons2, cerebellumPons2)")
	bindFlagToConfig(flags.Lookup(regionFlagName), regionKey)

	flags.String(dtiMeasureFlagName, "", "DTI measure (FA, MD, AD, RD)")
	bindFlagToConfig(flags.Lookup(dtiMeasureFlagName), dtiMeasureKey)

	flags.String(dtiSpaceFlagName, "", "DTI space (native, normalized, *)")
	bindFlagToConfig(flags.Lookup(dtiSpaceFlagName), dtiSpaceKey)

	flags.String(customSuffixFlagName, "", "file suffix of the custom preprocessing")
	bindFlagToConfig(flags.Lookup(customSuffixFlagName), customSuffixKey)

	flags.StringP(formatFlagName, "f", defaultOutputFormat, "output format (table, yaml, plain)")
	bindFlagToConfig(flags.Lookup(formatFlagName), outputFormatKey)

	flags.BoolP(verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.String(logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
}

// configureColor turns colors off when diagnostics are not written to a
// terminal. The color package only inspects stdout.
func configureColor(stderr *os.File) {
	fd := stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		color.NoColor = true
	}
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// commandEnv is what a command needs once the configuration is merged.
type commandEnv struct {
	settings settings
	ui       controller.UI
}

func loadCommandEnv(cmd *cobra.Command) (commandEnv, error) {
	s, err := loadSettings()
	if err != nil {
		return commandEnv{}, err
	}

	format, err := outputFormat(s)
	if err != nil {
		return commandEnv{}, err
	}

	return commandEnv{settings: s, ui: controller.NewSimpleUI(cmd, format)}, nil
}

// config builds the selected preprocessing configuration.
func (e commandEnv) config() (preprocessing.Config, error) {
	return preprocessing.Build(e.settings.Preprocessing)
}

func (e commandEnv) fileReader() adapter.FileReaderAdapter {
	return adapter.NewLocalFileReaderAdapter(fsAdapter,
		adapter.WithParallel(e.settings.Files.Parallel),
		adapter.WithStrict(e.settings.Files.Strict))
}
