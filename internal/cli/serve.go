package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/techstack/pkg/server"
)

// serveCommand starts the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr, rulesFile string
	var offline bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve analysis and rendering over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Addr
			}
			if rulesFile == "" {
				rulesFile = cfg.Rules
			}
			rules, err := loadRules(rulesFile)
			if err != nil {
				return err
			}
			client, err := c.newClient(ctx, cfg, offline)
			if err != nil {
				return err
			}
			analyzer, renderer := newServices(logger, rules, client, false)

			fmt.Fprintln(cmd.ErrOrStderr(), StyleTitle.Render(appName+" API"))
			printKeyValue(cmd.ErrOrStderr(), "address", addr)
			printKeyValue(cmd.ErrOrStderr(), "provider", providerLabel(cfg.Completion.Provider, client != nil))
			printInfo(cmd.ErrOrStderr(), "Press Ctrl+C to stop")
			return server.New(analyzer, renderer, server.WithLogger(logger)).ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&rulesFile, "rules", "", "categorization rules file (.toml or .yaml)")
	cmd.Flags().BoolVar(&offline, "offline", false, "do not call the completion service")
	return cmd
}

func providerLabel(provider string, online bool) string {
	if !online {
		return "offline"
	}
	return provider
}
