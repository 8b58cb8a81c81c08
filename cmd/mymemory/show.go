package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/mymemory/mmfs/render"
	"github.com/spf13/cobra"
)

// errNotFound is returned when a path resolves to no document
var errNotFound = errors.New("document not found")

func newShowCmd(a *app) *cobra.Command {
	var (
		raw   bool
		width int
		style string
	)

	cmd := &cobra.Command{
		Use:   "show <path>",
		Short: "Resolve a logical path and print the document",
		Example: `  mymemory show overview
  mymemory show agents/skills/config --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := a.fileSystem()
			if err != nil {
				return err
			}

			rec, ok, err := fs.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %s", errNotFound, args[0])
			}

			body, err := render.Render(rec.FileName, rec.Content, render.Options{
				Raw:   raw,
				Width: width,
				Style: style,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !raw {
				fmt.Fprintln(out, TitleStyle.Render(rec.Title)+"  "+MutedStyle.Render(string(rec.Source)+"/"+rec.Slug))
				fmt.Fprintln(out)
			}
			fmt.Fprint(out, body)
			if !strings.HasSuffix(body, "\n") {
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the file content without formatting")
	cmd.Flags().IntVar(&width, "width", 80, "word wrap width for markdown, 0 disables wrapping")
	cmd.Flags().StringVar(&style, "style", "", "glamour style (dark, light, notty, ...), default detects the terminal")

	return cmd
}
