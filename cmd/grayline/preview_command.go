package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"grayline/internal/config"
	"grayline/internal/gelf"
)

func newPreviewCommand(loadConfig func() (*config.Config, error)) *cobra.Command {
	var flags messageFlags
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "preview TEMPLATE [ARG...]",
		Short: "Assemble one record and print it without sending",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ev, err := flags.buildEvent(args)
			if err != nil {
				return err
			}
			ctx, err := flags.buildContext()
			if err != nil {
				return err
			}

			assembler := gelf.NewAssembler(cfg.AssemblerOptions())
			msg, err := assembler.Assemble(ctx, ev)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput || !isatty.IsTerminal(os.Stdout.Fd()) {
				raw, err := json.MarshalIndent(msg, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(raw))
				return nil
			}

			fmt.Fprintln(out, renderMessageTable(msg))
			return nil
		},
	}

	registerMessageFlags(cmd, &flags)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the wire JSON even on a terminal")
	return cmd
}

func renderMessageTable(msg *gelf.Message) string {
	rows := [][]string{
		{"version", msg.Version},
		{"host", msg.Host},
		{"short_message", msg.ShortMessage},
	}
	if msg.FullMessage != "" {
		rows = append(rows, []string{"full_message", msg.FullMessage})
	}
	rows = append(rows,
		[]string{"timestamp", msg.Timestamp.UTC().Format("2006-01-02 15:04:05.000")},
		[]string{"level", fmt.Sprintf("%d", msg.Level)},
	)

	names := make([]string, 0, len(msg.Extra))
	for name := range msg.Extra {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rows = append(rows, []string{"_" + name, msg.Extra[name].String()})
	}

	return renderTable([]string{"Field", "Value"}, rows)
}
