package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "srtgen <directory>",
		Short: "Generate .srt subtitles for every video in a directory",
		Long: `srtgen extracts the audio of every .mp4 file in the given directory,
sends it to a speech-to-text service and writes the returned subtitles
next to the video as <name>.srt. Existing subtitles are overwritten.

Environment:
  OPENAI_API_KEY   API key for the openai provider (default)
  OPENAI_BASE_URL  optional override of the OpenAI API base URL
  GEMINI_API_KEYS  comma-separated API keys for the gemini provider
  SRTGEN_CONFIG    path of the YAML config file (default ./srtgen.yaml)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}
