// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func manifestFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "manifest",
		Aliases: []string{"m"},
		Usage:   "Path to the gallery manifest (defaults to gallery.manifest from config)",
	}
}

// setupCommand handles setup operations.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create a config.toml from the built-in template",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// selectCommand replays click interactions against a gallery's photo order.
func selectCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "select",
		Usage:     "Replay clicks (click:ID, ctrl:ID, shift:ID, clear) and print the resulting selection",
		ArgsUsage: "STEP [STEP...]",
		Flags: []cli.Flag{
			manifestFlag(),
			&cli.StringFlag{
				Name:  "filter",
				Usage: "Only consider photos whose name contains this text",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Export format (text, csv, markdown)",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Write the export to this file instead of stdout",
			},
		},
		Action: r.Select,
	}
}

// overlayCommand prints annotation rectangles for a photo in display space.
func overlayCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "overlay",
		Aliases: []string{"ov"},
		Usage:   "Position a photo's face/pet annotations for its display orientation",
		Flags: []cli.Flag{
			manifestFlag(),
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Photo ID",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "hide",
				Usage: "Annotation IDs to hide (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Include hidden annotations in the output",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Overlay,
	}
}

// gridCommand launches the interactive gallery grid.
func gridCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "grid",
		Usage: "Interactive gallery grid with click, ctrl-click and shift-click selection",
		Flags: []cli.Flag{
			manifestFlag(),
			&cli.IntFlag{
				Name:  "columns",
				Usage: "Tiles per row (defaults to gallery.columns from config)",
			},
		},
		Action: r.Grid,
	}
}
