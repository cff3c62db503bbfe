package cmd

import (
	"strings"

	"github.com/komodorio/kubectl-komodor/internal/domain"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

func newResourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "List supported resource types and their aliases",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeaderAlignment(tw.AlignLeft),
				tablewriter.WithRowAlignment(tw.AlignLeft),
				tablewriter.WithRendition(tw.Rendition{
					Borders: tw.BorderNone,
					Settings: tw.Settings{
						Lines:      tw.LinesNone,
						Separators: tw.SeparatorsNone,
					},
				}),
				tablewriter.WithPadding(tw.Padding{Left: "", Right: "  "}),
			)
			table.Header([]string{"Kind", "Category", "Scope", "Aliases"})

			for _, descriptor := range domain.SupportedResourceTypes() {
				scope := "namespaced"
				if descriptor.IsClusterScoped {
					scope = "cluster"
				}
				if err := table.Append([]string{
					descriptor.CanonicalKind,
					string(descriptor.DisplayCategory),
					scope,
					strings.Join(descriptor.Aliases, ", "),
				}); err != nil {
					return err
				}
			}

			return table.Render()
		},
	}
}
