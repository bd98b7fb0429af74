package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"aquarium-catalog/internal/domain/page"
	"aquarium-catalog/internal/domain/pages"
	"aquarium-catalog/internal/render"
)

type renderOptions struct {
	view  string
	ids   []string
	name  string
	query string
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	o := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one page to stdout",
		Long: `Render one catalog page to stdout. The view is given with --view, or
detected from a set of container ids with --ids (priority: fish-list,
fish-detail-card, plant-list, plant-detail-card).`,
		Example: `  catalog-web render --view fish-detail --name "Betta Fish"
  catalog-web render --ids plant-list,search-input --query "java fern"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := o.resolveView()
			if err != nil {
				return err
			}

			a, err := root.newApp(os.Stderr)
			if err != nil {
				return err
			}
			defer a.sync()

			env := pages.NewEnv(a.catalog, render.MustNew(nil), a.log)
			_, data := env.Build(cmd.Context(), pages.Request{
				Route:  page.RouteFor(view),
				Name:   o.name,
				Search: cmd.Flags().Changed("query"),
				Query:  o.query,
			})
			return env.Views.Page(cmd.OutOrStdout(), data)
		},
	}

	cmd.Flags().StringVar(&o.view, "view", "", "view to render: none, fish-list, fish-detail, plant-list, plant-detail")
	cmd.Flags().StringSliceVar(&o.ids, "ids", nil, "container ids present on the page (view detection)")
	cmd.Flags().StringVar(&o.name, "name", "", "species name for detail views")
	cmd.Flags().StringVar(&o.query, "query", "", "search query; opens the overlay")
	cmd.MarkFlagsMutuallyExclusive("view", "ids")
	return cmd
}

func (o *renderOptions) resolveView() (page.View, error) {
	if len(o.ids) > 0 {
		return page.DetectView(o.ids...), nil
	}
	v, ok := page.ParseView(strings.TrimSpace(o.view))
	if !ok {
		return page.ViewNone, fmt.Errorf("unknown view %q", o.view)
	}
	return v, nil
}
