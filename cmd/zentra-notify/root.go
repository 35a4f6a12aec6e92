package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"zentra-notify/internal/config"
	"zentra-notify/internal/di"
)

func newRootCommand() *cobra.Command {
	var opts config.Options

	rootCmd := &cobra.Command{
		Use:           "zentra-notify",
		Short:         "Send a test embed to a Discord webhook",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := di.InitializeApp(opts)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return application.Run(ctx)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "Configuration file path (YAML)")
	flags.StringVar(&opts.WebhookURL, "webhook-url", "", "Discord webhook URL")
	flags.StringVar(&opts.UserAgent, "user-agent", "", "User-Agent header sent with the request")
	flags.DurationVar(&opts.RequestTimeout, "timeout", 0, "HTTP request timeout (default 10s)")
	flags.StringVar(&opts.ScheduleCron, "schedule", "", "Cron expression; keep running and send on this schedule")
	flags.StringVar(&opts.LogFormat, "log-format", "", "Log format: console or json")
	flags.StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.BoolVar(&opts.DryRun, "dry-run", false, "Print the payload instead of sending it")

	return rootCmd
}
