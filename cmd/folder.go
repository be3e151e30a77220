package cmd

import (
	"github.com/spf13/cobra"

	"clinicaio.dev/pkg/clinicaio/internal/domain"
	m "clinicaio.dev/pkg/clinicaio/internal/model"
)

// folderCmd represents the folder command.
var folderCmd = newFolderCmd()

func newFolderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "folder CAPS_DIR SUBJECT SESSION",
		Short: "Print the CAPS folder written by the preprocessing for a session",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadCommandEnv(cmd)
			if err != nil {
				return err
			}

			cfg, err := env.config()
			if err != nil {
				return err
			}

			reader, err := domain.NewCapsReader(cmd.Context(), m.Path(args[0]), layoutAdapter, sessionAdapter, env.fileReader())
			if err != nil {
				return err
			}

			return env.ui.DisplayPath(cmd.Context(), reader.PreprocessingFolder(args[1], args[2], cfg.Preprocessing()))
		},
	}
}

func init() {
	rootCmd.AddCommand(folderCmd)
}
