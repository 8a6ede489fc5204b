// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// buildCommand runs the full merge pipeline
func buildCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Build the combined playlist from both channel sources",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.StringFlag{
				Name:  "playlist",
				Usage: "Path to the M3U playlist source (overrides config)",
			},
			&cli.StringFlag{
				Name:  "channels",
				Usage: "Path to the JSON channel source (overrides config)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Path to the combined playlist output (overrides config)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
		},
		Action: r.Build,
	}
}

// initCommand writes a starter configuration file
func initCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a starter config.toml with the default sources and group order",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Init,
	}
}
