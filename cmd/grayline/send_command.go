package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"grayline/internal/config"
	"grayline/internal/gelf"
	"grayline/internal/transport"
)

func newSendCommand(loadConfig func() (*config.Config, error)) *cobra.Command {
	var flags messageFlags

	cmd := &cobra.Command{
		Use:   "send TEMPLATE [ARG...]",
		Short: "Assemble one record and deliver it to the collector",
		Long: `Assemble one record and deliver it to the configured collector.

The template may contain {name} placeholders bound positionally to the
remaining arguments:

  grayline send --level warning "disk {disk} at {pct}% capacity" sda1 93

Field values equal to "null" request omission of that field.`,
		Args: cobra.MinimumNArgs(1),
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

			sender, err := transport.Dial(cfg.Output.Endpoint, transport.Options{
				Compression:  transport.Compression(cfg.Output.Compression),
				MaxChunkSize: cfg.Output.MaxChunkSize,
			})
			if err != nil {
				return err
			}
			defer sender.Close()

			if err := sender.Send(cmd.Context(), msg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sent %s to %s\n", msg.ID, cfg.Output.Endpoint)
			return nil
		},
	}

	registerMessageFlags(cmd, &flags)
	return cmd
}

func registerMessageFlags(cmd *cobra.Command, flags *messageFlags) {
	cmd.Flags().StringVarP(&flags.level, "level", "l", "information", "Record level (trace, debug, information, warning, error, critical)")
	cmd.Flags().StringVar(&flags.logger, "logger", "", "Logger name recorded on the message")
	cmd.Flags().Int32Var(&flags.eventID, "event-id", 0, "Numeric event identifier")
	cmd.Flags().StringVar(&flags.eventName, "event-name", "", "Event name")
	cmd.Flags().StringVar(&flags.errText, "error", "", "Error text recorded as the exception")
	cmd.Flags().StringArrayVar(&flags.fields, "field", nil, "Additional field as key=value (repeatable)")
	cmd.Flags().StringArrayVar(&flags.scopes, "scope", nil, "Scope field as key=value (repeatable)")
	cmd.Flags().StringVar(&flags.traceparent, "traceparent", "", "W3C traceparent header carrying trace and span identifiers")
	cmd.Flags().StringVar(&flags.traceID, "trace-id", "", "Distributed trace identifier")
	cmd.Flags().StringVar(&flags.spanID, "span-id", "", "Span identifier")
}
