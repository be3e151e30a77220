package cmd

import (
	"github.com/spf13/cobra"

	"clinicaio.dev/pkg/clinicaio/internal/domain"
	m "clinicaio.dev/pkg/clinicaio/internal/model"
)

// tensorDirCmd represents the tensor-dir command.
var tensorDirCmd = newTensorDirCmd()

func newTensorDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tensor-dir CAPS_DIR FILE",
		Short: "Print the folder holding the tensors extracted from an image",
		Long: `Print CAPS_DIR/subjects/<sub>/<ses>/deeplearning_prepare_data/image_based/<pipeline>
where <sub> and <ses> are read from the name of FILE.`,
		Args: cobra.ExactArgs(2),
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

			dir, err := reader.TensorDirectory(m.Path(args[1]), cfg)
			if err != nil {
				return err
			}

			return env.ui.DisplayPath(cmd.Context(), dir)
		},
	}
}

func init() {
	rootCmd.AddCommand(tensorDirCmd)
}
