package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"clinicaio.dev/pkg/clinicaio/internal/domain"
	"clinicaio.dev/pkg/clinicaio/internal/domain/preprocessing"
	m "clinicaio.dev/pkg/clinicaio/internal/model"
)

// filesCmd represents the files command.
var filesCmd = newFilesCmd()

// resolver is implemented by both dataset readers.
type resolver interface {
	Resolve(ctx context.Context, cfg preprocessing.Config, options ...domain.InputOption) (m.Resolution, error)
}

func newFilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files DIR",
		Short: "Find the input file of every subject and session",
		Long: `Resolve the file pattern of the preprocessing in every session of DIR, a CAPS
directory unless --bids is set. Sessions come from the directory tree or from
the participant_id and session_id columns of --tsv.

In strict mode (files.strict, the default) a session without exactly one
matching file is an error; otherwise it is reported on stderr.

` + preprocessingHelp,
		Args: cobra.ExactArgs(1),
		RunE: runFiles,
	}

	cmd.Flags().Bool(bidsFlagName, false, "read DIR as a BIDS directory")
	cmd.Flags().String(tsvFlagName, "", "TSV file listing the participant_id/session_id pairs to read")
	cmd.Flags().String(reconstructionFlagName, "", "PET reconstruction method of the BIDS pattern")

	cmd.Flags().Bool(strictFlagName, defaultFilesStrict, "fail when a session has no unique file")
	bindFlagToConfig(cmd.Flags().Lookup(strictFlagName), filesStrictKey)

	cmd.Flags().Int(parallelFlagName, defaultFilesParallel, "number of sessions resolved concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), filesParallelKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(filesCmd)
}

func runFiles(cmd *cobra.Command, args []string) error {
	env, err := loadCommandEnv(cmd)
	if err != nil {
		return err
	}

	cfg, err := env.config()
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	isBIDS, err := flags.GetBool(bidsFlagName)
	if err != nil {
		return err
	}

	tsv, err := flags.GetString(tsvFlagName)
	if err != nil {
		return err
	}

	reconstruction, err := flags.GetString(reconstructionFlagName)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	root := m.Path(args[0])

	var reader resolver
	if isBIDS {
		reader, err = domain.NewBidsReader(ctx, root, layoutAdapter, sessionAdapter, env.fileReader())
	} else {
		reader, err = domain.NewCapsReader(ctx, root, layoutAdapter, sessionAdapter, env.fileReader())
	}

	if err != nil {
		return err
	}

	options := []domain.InputOption{domain.WithReconstruction(reconstruction)}
	if tsv != "" {
		options = append(options, domain.WithSubjectSessionFile(m.Path(tsv)))
	}

	resolution, err := reader.Resolve(ctx, cfg, options...)
	if err != nil {
		return err
	}

	return env.ui.DisplayResolution(ctx, resolution)
}
