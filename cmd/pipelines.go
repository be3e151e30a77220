package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"clinicaio.dev/pkg/clinicaio/internal/controller"
	"clinicaio.dev/pkg/clinicaio/internal/domain/preprocessing"
	m "clinicaio.dev/pkg/clinicaio/internal/model"
)

// pipelinesCmd represents the pipelines command.
var pipelinesCmd = newPipelinesCmd()

func newPipelinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pipelines",
		Short: "List the supported preprocessing pipelines",
		Long: `List every registered preprocessing with the modality it selects, its CAPS
folder and the default BIDS and CAPS patterns.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadCommandEnv(cmd)
			if err != nil {
				return err
			}

			rows, err := pipelineRows()
			if err != nil {
				return err
			}

			return env.ui.DisplayPipelines(cmd.Context(), rows)
		},
	}
}

func init() {
	rootCmd.AddCommand(pipelinesCmd)
}

func pipelineRows() ([]controller.PipelineRow, error) {
	all := m.AllPreprocessings()
	rows := make([]controller.PipelineRow, 0, len(all))

	for _, p := range all {
		factory, err := preprocessing.Lookup(p)
		if err != nil {
			return nil, err
		}

		cfg := factory()

		_, modality, err := preprocessing.CAPSIdentity(cfg)
		if err != nil {
			return nil, err
		}

		caps, err := preprocessing.CAPSFileType(cfg)
		if err != nil {
			return nil, err
		}

		row := controller.PipelineRow{
			Preprocessing:  p,
			Modality:       modality,
			Folder:         preprocessing.OutputSubfolder(cfg, false),
			CAPSPattern:    caps.Pattern(),
			NeededPipeline: caps.NeededPipeline(),
		}

		bids, err := preprocessing.BIDSFileType(cfg, "")
		switch {
		case err == nil:
			row.BIDSPattern = bids.Pattern()
		case !errors.Is(err, m.ErrNotImplemented):
			return nil, err
		}

		rows = append(rows, row)
	}

	return rows, nil
}
