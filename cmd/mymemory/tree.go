package main

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/mymemory/mmfs/trees"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"
)

func newTreeCmd(a *app) *cobra.Command {
	var showPaths bool

	cmd := &cobra.Command{
		Use:   "tree [path]",
		Short: "Print the combined tree, or the subtree at path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := a.fileSystem()
			if err != nil {
				return err
			}

			nodes, err := fs.BuildCombinedTree(cmd.Context())
			if err != nil {
				return err
			}
			if len(args) == 1 {
				node := trees.FindByPath(nodes, args[0])
				if node == nil {
					return fmt.Errorf("path not found: %s", args[0])
				}
				nodes = []*trees.FileNode{node}
			}

			out := cmd.OutOrStdout()
			if len(nodes) == 0 {
				fmt.Fprintln(out, MutedStyle.Render("no documents"))
				return nil
			}
			for _, node := range nodes {
				fmt.Fprintln(out, renderTree(node, showPaths))
			}

			m := trees.ComputeTreeMetrics(nodes)
			fmt.Fprintln(out)
			fmt.Fprintln(out, MutedStyle.Render(fmt.Sprintf("%d documents, %d directories", m.Files, m.Directories)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showPaths, "paths", false, "show logical paths next to file names")

	return cmd
}

// renderTree draws node and its descendants with lipgloss box characters
func renderTree(node *trees.FileNode, showPaths bool) string {
	t := tree.Root(TitleStyle.Render(node.Name)).
		EnumeratorStyle(MutedStyle)
	addChildren(t, node.Children, showPaths)
	return strings.TrimRight(t.String(), "\n")
}

func addChildren(t *tree.Tree, children []*trees.FileNode, showPaths bool) {
	for _, child := range children {
		if child.IsDirectory() {
			sub := tree.Root(child.Name + "/")
			addChildren(sub, child.Children, showPaths)
			t.Child(sub)
			continue
		}
		label := child.Name
		if showPaths {
			label += "  " + MutedStyle.Render(child.Path)
		}
		t.Child(label)
	}
}
