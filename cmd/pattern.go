package cmd

import (
	"github.com/spf13/cobra"

	"clinicaio.dev/pkg/clinicaio/internal/domain/preprocessing"
	m "clinicaio.dev/pkg/clinicaio/internal/model"
)

// patternCmd represents the pattern command.
var patternCmd = newPatternCmd()

func newPatternCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pattern",
		Short: "Print the file pattern of the selected preprocessing",
		Long: `Print the glob pattern, description and required pipeline of the file selected
by the preprocessing. The CAPS pattern is printed unless --from-bids is set.

` + preprocessingHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadCommandEnv(cmd)
			if err != nil {
				return err
			}

			cfg, err := env.config()
			if err != nil {
				return err
			}

			reconstruction, err := cmd.Flags().GetString(reconstructionFlagName)
			if err != nil {
				return err
			}

			fileType, err := patternFor(cfg, reconstruction)
			if err != nil {
				return err
			}

			return env.ui.DisplayFileType(cmd.Context(), fileType)
		},
	}

	cmd.Flags().String(reconstructionFlagName, "", "PET reconstruction method of the BIDS pattern")

	return cmd
}

func init() {
	rootCmd.AddCommand(patternCmd)
}

func patternFor(cfg preprocessing.Config, reconstruction string) (m.FileType, error) {
	if preprocessing.SettingsOf(cfg).FromBIDS {
		return preprocessing.BIDSFileType(cfg, reconstruction)
	}

	return preprocessing.ResolvedFileType(cfg)
}
