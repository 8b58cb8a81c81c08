package main

import (
	"fmt"

	"github.com/ZanzyTHEbar/mymemory/mmfs/trees"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

const recentTimeFormat = "2006-01-02 15:04"

func newRecentCmd(a *app) *cobra.Command {
	var (
		limit  int
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List documents, most recently modified first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return fmt.Errorf("invalid limit: %d", limit)
			}

			fs, err := a.fileSystem()
			if err != nil {
				return err
			}
			records, err := fs.RecordsUnder(cmd.Context(), prefix)
			if err != nil {
				return err
			}
			if limit > 0 && len(records) > limit {
				records = records[:limit]
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, MutedStyle.Render("no documents"))
				return nil
			}
			fmt.Fprintln(out, recentTable(records))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of documents, 0 for all")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "only list documents under this path, e.g. content/notes")

	return cmd
}

func recentTable(records []*trees.FileRecord) string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.LastModified.Local().Format(recentTimeFormat),
			rec.Path,
			rec.Title,
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(MutedStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TitleStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("MODIFIED", "PATH", "TITLE").
		Rows(rows...).
		String()
}
