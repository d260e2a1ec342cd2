package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/desertthunder/festify/internal/catalog"
	"github.com/desertthunder/festify/internal/formatter"
	"github.com/desertthunder/festify/internal/lineup"
	"github.com/desertthunder/festify/internal/metadata"
	"github.com/desertthunder/festify/internal/repositories"
	"github.com/desertthunder/festify/internal/server"
	"github.com/desertthunder/festify/internal/services"
	"github.com/desertthunder/festify/internal/session"
	"github.com/desertthunder/festify/internal/shared"
	"github.com/desertthunder/festify/internal/web"
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
		serveCommand, setupCommand, festivalsCommand, importCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// reloadConfig replaces the runner's config when the command names one.
func (r *Runner) reloadConfig(path string) error {
	if path == "" {
		return nil
	}
	config, err := shared.LoadConfig(path)
	if err != nil {
		return err
	}
	r.config = config
	return nil
}

// openCache opens the sqlite metadata cache from configuration.
func (r *Runner) openCache() (*sql.DB, error) {
	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, err
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)
	return db, nil
}

// Serve runs the HTTP application until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	if err := r.reloadConfig(cmd.String("config")); err != nil {
		return err
	}

	db, err := r.openCache()
	if err != nil {
		return err
	}
	defer db.Close()

	spotify, err := services.NewSpotifyClient(ctx, r.config.Credentials.Spotify, float64(cmd.Int("rate-limit")))
	if err != nil {
		return err
	}

	store := session.NewRedisStore(shared.NewRedis(r.config.Redis))
	fetcher := metadata.NewFetcher(
		repositories.NewArtistRepository(db),
		repositories.NewDayRepository(db),
		repositories.NewEditionRepository(db),
	)
	resolver := lineup.NewResolver(spotify, store, r.logger)

	renderer, err := web.NewRenderer()
	if err != nil {
		return err
	}

	router := server.NewBasicRouter()
	router.Use(server.LoggingMiddleware(r.logger), server.SessionMiddleware())
	server.NewPages(r.config, store, fetcher, resolver, renderer, r.logger).Register(router)
	router.Handler(server.NewStatic())

	addr := net.JoinHostPort(r.config.Server.Host, strconv.Itoa(r.config.Server.Port))
	return server.Run(ctx, addr, router, r.logger)
}

// Setup creates the metadata cache database and runs migrations.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	if err := r.reloadConfig(cmd.String("config")); err != nil {
		return err
	}

	if cmd.Bool("init-config") {
		if err := shared.CreateConfigFile("config.toml"); err != nil {
			return err
		}
		r.logger.Info("wrote config.toml")
	}

	db, err := r.openCache()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := shared.RunMigrations(db); err != nil {
		return err
	}

	r.logger.Info("metadata cache ready", "path", r.config.Database.Path)
	return nil
}

// Festivals prints the supported festival catalog.
func (r *Runner) Festivals(ctx context.Context, cmd *cli.Command) error {
	festivals := catalog.Festivals()

	var out []byte
	var err error
	if cmd.Bool("csv") {
		out, err = formatter.FestivalsToCSV(festivals)
	} else {
		out, err = formatter.FestivalsToText(festivals)
	}
	if err != nil {
		return err
	}

	_, err = r.output.Write(out)
	return err
}

// Import refreshes the metadata cache for one edition from a lineup file.
func (r *Runner) Import(ctx context.Context, cmd *cli.Command) error {
	if err := r.reloadConfig(cmd.String("config")); err != nil {
		return err
	}

	path := cmd.StringArg("file")
	if path == "" {
		return fmt.Errorf("lineup file argument is required")
	}

	lineupFile, err := metadata.ReadLineupFile(path)
	if err != nil {
		return err
	}
	if _, err := catalog.FindEdition(lineupFile.Festival, lineupFile.Year); err != nil {
		return err
	}

	db, err := r.openCache()
	if err != nil {
		return err
	}
	defer db.Close()

	spotify, err := services.NewSpotifyClient(ctx, r.config.Credentials.Spotify, float64(cmd.Int("rate-limit")))
	if err != nil {
		return err
	}

	importer := metadata.NewImporter(
		spotify,
		repositories.NewArtistRepository(db),
		repositories.NewDayRepository(db),
		repositories.NewEditionRepository(db),
		r.logger,
	)
	return importer.Import(ctx, lineupFile)
}
