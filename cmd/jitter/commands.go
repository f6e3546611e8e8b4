package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/linework/jitter"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
)

func regionFlags(cmd *cobra.Command, r *jitter.Region) {
	*r = jitter.DefaultRegion()
	cmd.Flags().Float64VarP(&r.W, "width", "w", r.W, "width of the bounding region")
	cmd.Flags().Float64VarP(&r.H, "height", "H", r.H, "height of the bounding region")
	cmd.Flags().IntVarP(&r.Count, "count", "n", r.Count, "number of points")
}

func newBoxCommand(opts *rootOptions) *cobra.Command {
	var region jitter.Region
	cmd := &cobra.Command{
		Use:   "box",
		Short: "Points scattered along the inside of a box",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.generator(cmd)
			if err != nil {
				return err
			}
			points, err := g.RandomBox(region)
			if err != nil {
				return err
			}
			return opts.write(cmd, points, points.String())
		},
	}
	regionFlags(cmd, &region)
	return cmd
}

func newPolygonCommand(opts *rootOptions) *cobra.Command {
	var region jitter.Region
	cmd := &cobra.Command{
		Use:   "polygon",
		Short: "Vertices of a regular polygon with jittered angles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.generator(cmd)
			if err != nil {
				return err
			}
			points, err := g.RandomPolygon(region)
			if err != nil {
				return err
			}
			return opts.write(cmd, points, points.String())
		},
	}
	regionFlags(cmd, &region)
	return cmd
}

func newOffsetCommand(opts *rootOptions) *cobra.Command {
	o := jitter.Offset{W: 10, H: 10, X: 50, Y: 50, Min: 0.1, Max: 0.2}
	cmd := &cobra.Command{
		Use:   "offset",
		Short: "A random quadrilateral around an anchor point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.generator(cmd)
			if err != nil {
				return err
			}
			corners, err := g.PolygonWithOffset(o)
			if err != nil {
				return err
			}
			return opts.write(cmd, corners, jitter.JoinCoordinates(corners[:]))
		},
	}
	cmd.Flags().Float64VarP(&o.W, "width", "w", o.W, "width of the region offsets scale with")
	cmd.Flags().Float64VarP(&o.H, "height", "H", o.H, "height of the region offsets scale with")
	cmd.Flags().Float64Var(&o.X, "x", o.X, "anchor x")
	cmd.Flags().Float64Var(&o.Y, "y", o.Y, "anchor y")
	cmd.Flags().Float64Var(&o.Min, "min", o.Min, "smallest offset, as a fraction of the region")
	cmd.Flags().Float64Var(&o.Max, "max", o.Max, "largest offset, as a fraction of the region")
	return cmd
}

// parsePalette reads entries of the form "#rrggbb[:weight]". A missing
// weight counts as 1.
func parsePalette(entries []string) ([]jitter.Color, *jitter.Weights, error) {
	colors := make([]jitter.Color, len(entries))
	weights := make([]uint64, len(entries))
	for i, entry := range entries {
		hex, weight, hasWeight := strings.Cut(entry, ":")
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: palette entry %q: %v", jitter.ErrInvalidArgument, entry, err)
		}
		r, g, b := c.RGB255()
		colors[i] = jitter.Color{R: int(r), G: int(g), B: int(b)}

		weights[i] = 1
		if hasWeight {
			if weights[i], err = strconv.ParseUint(weight, 10, 64); err != nil {
				return nil, nil, fmt.Errorf("%w: palette entry %q: bad weight", jitter.ErrInvalidArgument, entry)
			}
		}
	}
	return colors, jitter.NewWeights(weights...), nil
}

func newColorCommand(opts *rootOptions) *cobra.Command {
	channels := map[string]*[]float64{}
	var palette []string
	cmd := &cobra.Command{
		Use:   "color",
		Short: "A random RGB color, or a weighted pick from a palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(palette) > 0 {
				colors, weights, err := parsePalette(palette)
				if err != nil {
					return err
				}
				g, err := opts.generator(cmd)
				if err != nil {
					return err
				}
				i, err := g.WeightedIndex(weights)
				if err != nil {
					return err
				}
				return opts.write(cmd, colors[i], colors[i].Hex())
			}

			var ranges [3]jitter.Range
			for i, name := range []string{"red", "green", "blue"} {
				bounds := *channels[name]
				if len(bounds) != 2 || bounds[0] > bounds[1] {
					return fmt.Errorf("--%s expects min,max with min <= max, got %v", name, bounds)
				}
				ranges[i] = jitter.Range{Min: bounds[0], Max: bounds[1]}
			}

			g, err := opts.generator(cmd)
			if err != nil {
				return err
			}
			c := g.RGB(ranges[0], ranges[1], ranges[2])
			return opts.write(cmd, c, c.Hex())
		},
	}
	for _, name := range []string{"red", "green", "blue"} {
		channels[name] = cmd.Flags().Float64Slice(name, []float64{jitter.DefaultChannel.Min, jitter.DefaultChannel.Max}, name+" channel range as min,max")
	}
	cmd.Flags().StringSliceVar(&palette, "palette", nil, "pick from #rrggbb[:weight] entries instead of drawing channels")
	return cmd
}

func newHexCommand(opts *rootOptions) *cobra.Command {
	var fromString bool
	cmd := &cobra.Command{
		Use:   "hex",
		Short: "A random hex color",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.generator(cmd)
			if err != nil {
				return err
			}
			h := g.Hex()
			if fromString {
				h = "#" + g.HexFromString()
			}
			return opts.write(cmd, h, h)
		},
	}
	cmd.Flags().BoolVar(&fromString, "digits", false, "draw each hex digit independently")
	return cmd
}
