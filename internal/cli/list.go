package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pressplate/pressplate/pkg/brief"
)

// briefSummaries maps built-in brief names to one-line descriptions shown
// by the list command.
var briefSummaries = map[string]string{
	"yield":    "Liquidity program overview: stats, earning cards, timeline, scenarios",
	"platform": "Full platform tour: markets, architecture, wallet, earning, roadmap",
}

// listCommand creates the list command showing the built-in briefs.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in briefs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(StyleTitle.Render("Built-in briefs"))
			for _, name := range brief.Names() {
				printKeyValue(name, briefSummaries[name])
			}
			printNewline()
			printNextStep("Render one", fmt.Sprintf("%s render %s", appName, brief.Names()[0]))
			return nil
		},
	}
}
