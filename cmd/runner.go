package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/photox/internal/gallery"
	"github.com/desertthunder/photox/internal/models"
	"github.com/desertthunder/photox/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Logger     *log.Logger
	Output     io.Writer
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
		config:     opts.Config,
		configPath: opts.ConfigPath,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

// SetLogger replaces the runner's logger, e.g. to redirect output to a file while the TUI runs.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, selectCommand, overlayCommand, gridCommand,
	} {
		commands = append(commands, fn(r))
	}
	return commands
}

// manifestPath resolves the --manifest flag, falling back to the configured manifest.
func (r *Runner) manifestPath(cmd *cli.Command) (string, error) {
	if path := cmd.String("manifest"); path != "" {
		return path, nil
	}
	if r.config.Gallery.Manifest != "" {
		return r.config.Gallery.Manifest, nil
	}
	return "", fmt.Errorf("%w: --manifest", shared.ErrMissingArgument)
}

func (r *Runner) loadGallery(cmd *cli.Command) (*models.Gallery, error) {
	path, err := r.manifestPath(cmd)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("loading manifest", "path", path)
	g, err := gallery.Load(path, r.logger)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) error {
	rule := "═══════════════════════════════════════\n"
	return r.writePlain("%s%s\n%s", rule, title, rule)
}
