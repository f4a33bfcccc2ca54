package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/polyline/internal/view"
	"github.com/matzehuels/polyline/pkg/interact"
	"github.com/matzehuels/polyline/pkg/pipeline"
)

// viewCommand creates the view command that opens the interactive window.
func (c *CLI) viewCommand() *cobra.Command {
	var hideHUD bool
	flags := pipeline.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Explore smoothing and simplification in a window",
		Long: `Open a window showing the raw, smoothed and simplified paths.

Moving the pointer down increases the smoothing radius (0 to 16); moving it
right increases the simplification tolerance. Clicking generates a new path.
H toggles the status overlay and Escape closes the window.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.resolveOptions(cmd, &flags)
			if err != nil {
				return err
			}
			return c.runView(cmd.Context(), opts, hideHUD)
		},
	}

	cmd.Flags().BoolVar(&hideHUD, "hide-hud", false, "start with the status overlay hidden")
	addPathFlags(cmd, &flags)
	addThemeFlags(cmd, &flags)

	return cmd
}

func (c *CLI) runView(ctx context.Context, opts pipeline.Options, hideHUD bool) error {
	theme, err := opts.Theme()
	if err != nil {
		return err
	}
	opts.Seed = pipeline.ResolveSeed(opts.Seed)
	ctrl := c.newController(opts)

	err = view.Run(ctx, ctrl, view.Config{
		Width:   opts.CanvasWidth,
		Height:  opts.CanvasHeight,
		Title:   fmt.Sprintf("%s (seed %d)", appName, opts.Seed),
		Theme:   theme,
		Logger:  c.Logger,
		HideHUD: hideHUD,
	})
	if err != nil {
		return fmt.Errorf("view: %w", err)
	}
	return nil
}

// newController builds a controller whose bootstrap frame uses the radius and
// tolerance in opts. opts.Seed must already be resolved.
func (c *CLI) newController(opts pipeline.Options) *interact.Controller {
	c.Logger.Info("starting", "seed", opts.Seed, "source", opts.Source, "points", opts.Count)

	return interact.New(pipeline.NewGenerator(opts), interact.Config{
		Path:    opts.PathParams(),
		Initial: interact.Params{Radius: opts.Radius, Tolerance: opts.Tolerance},
	})
}
