package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/time2shine/m3ugen/internal/shared"
	"github.com/time2shine/m3ugen/internal/sources"
	"github.com/time2shine/m3ugen/internal/tasks"
	"github.com/time2shine/m3ugen/internal/ui"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	logger *log.Logger
	output io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config: opts.Config,
		logger: opts.Logger,
		output: opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		buildCommand, initCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// Build runs the full merge pipeline and prints the run summary.
func (r *Runner) Build(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("verbose") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	}

	config, err := r.resolveConfig(cmd)
	if err != nil {
		return err
	}

	playlistPath := config.Sources.Playlist
	if v := cmd.String("playlist"); v != "" {
		playlistPath = v
	}
	channelsPath := config.Sources.Channels
	if v := cmd.String("channels"); v != "" {
		channelsPath = v
	}
	outputPath := config.Output.Path
	if v := cmd.String("output"); v != "" {
		outputPath = v
	}

	engine := tasks.NewBuilder(tasks.BuilderOpts{
		Playlist: sources.NewM3USource(playlistPath),
		Channels: sources.NewChannelsSource(channelsPath),
		Priority: config.Groups.Order,
		Output:   outputPath,
		GuideURL: config.Output.GuideURL,
		Logger:   r.logger,
	})

	ui.Banner(r.output, "IPTV Playlist Builder")

	// Drain progress updates without coupling the pipeline to the console:
	// the engine never blocks on this channel.
	progressCh := make(chan tasks.ProgressUpdate, 50)
	go func() {
		for update := range progressCh {
			r.logger.Debug("progress", "phase", update.Phase.String(), "count", update.Count)
		}
	}()

	result, err := engine.Run(progressCh)
	close(progressCh)

	if err != nil {
		return err
	}

	ui.KV(r.output, "M3U channels", strconv.Itoa(result.PlaylistCount))
	ui.KV(r.output, "Static channels (online)", strconv.Itoa(result.ChannelCount))
	ui.KV(r.output, "Duplicates removed", strconv.Itoa(result.DuplicatesRemoved))
	ui.KV(r.output, "Output items", strconv.Itoa(result.OutputCount))
	ui.KV(r.output, "Saved as", result.OutputPath)
	ui.KV(r.output, "Elapsed", fmt.Sprintf("%.2fs", result.Elapsed.Seconds()))
	if result.OutputCount == 0 {
		ui.Warn(r.output, "No channels found in either source")
	}
	ui.OK(r.output, "Done!")

	return nil
}

// Init writes the embedded starter configuration to the given path.
func (r *Runner) Init(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	ui.OK(r.output, fmt.Sprintf("Wrote starter config to %s", path))
	return nil
}

// resolveConfig loads the config named by the flag, falling back to the
// runner's config when the default path is simply absent. An explicitly
// requested file that fails to load is an error.
func (r *Runner) resolveConfig(cmd *cli.Command) (*shared.Config, error) {
	path := cmd.String("config")
	if path == "" {
		return r.config, nil
	}

	loaded, err := shared.LoadConfig(path)
	if err != nil {
		if cmd.IsSet("config") {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		return r.config, nil
	}
	return loaded, nil
}
