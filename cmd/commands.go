// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
	}
}

// serveCommand runs the HTTP application
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the festify web application",
		Flags: []cli.Flag{
			configFlag(),
			&cli.IntFlag{
				Name:  "rate-limit",
				Usage: "Maximum Spotify API requests per second",
				Value: 10,
			},
		},
		Action: r.Serve,
	}
}

// setupCommand initializes the metadata cache
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize metadata cache and run migrations",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "init-config",
				Usage: "Also write a starter config.toml",
			},
		},
		Action: r.Setup,
	}
}

// festivalsCommand prints the supported festival catalog
func festivalsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "festivals",
		Usage: "List supported festivals and years",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "csv",
				Usage: "Output CSV instead of a table",
			},
		},
		Action: r.Festivals,
	}
}

// importCommand refreshes an edition's cached lineup metadata
func importCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Import a festival lineup file into the metadata cache",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "file",
			},
		},
		Flags: []cli.Flag{
			configFlag(),
			&cli.IntFlag{
				Name:  "rate-limit",
				Usage: "Maximum Spotify API requests per second",
				Value: 10,
			},
		},
		Action: r.Import,
	}
}
