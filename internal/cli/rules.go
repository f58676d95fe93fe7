package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/techstack/pkg/categorize"
	"github.com/matzehuels/techstack/pkg/deps"
	"github.com/matzehuels/techstack/pkg/errors"
)

// rulesCommand prints the effective categorization rules as TOML. The
// output is a valid --rules file.
func (c *CLI) rulesCommand() *cobra.Command {
	var rulesFile, ecosystem string
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the categorization rules as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rulesFile == "" {
				cfg, err := c.loadConfig()
				if err != nil {
					return err
				}
				rulesFile = cfg.Rules
			}
			set, err := loadRules(rulesFile)
			if err != nil {
				return err
			}
			if ecosystem != "" {
				r, ok := set.For(deps.Ecosystem(ecosystem))
				if !ok {
					return errors.New(errors.ErrCodeInvalidInput, "unknown ecosystem %q (want node or python)", ecosystem)
				}
				set = categorize.Set{r}
			}
			return categorize.Encode(cmd.OutOrStdout(), set...)
		},
	}
	cmd.Flags().StringVar(&rulesFile, "rules", "", "rules file to merge over the built-in tables")
	cmd.Flags().StringVar(&ecosystem, "ecosystem", "", "only print one ecosystem: node or python")
	return cmd
}
