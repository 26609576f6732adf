package main

import (
	"fmt"
	"os"

	"github.com/dirview/dirview/pkg/config"
	"github.com/dirview/dirview/pkg/filesystem"
	"github.com/dirview/dirview/pkg/models"
	"github.com/dirview/dirview/pkg/pathreq"
	"github.com/dirview/dirview/pkg/sorting"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/segmentio/encoding/json"
	"github.com/urfave/cli/v2"
)

func main() {
	log := logger.New()

	cfg, err := config.New()
	if err != nil {
		log.Err(err).Fatal("config error")
	}

	svc, err := filesystem.NewService(cfg.RootDir)
	if err != nil {
		log.Err(err).Fatal("browsing root error")
	}
	defer svc.Close()

	sorter := sorting.Sorter{LegacyNumericOrder: cfg.LegacyNumericSortOrder}

	app := &cli.App{
		Name:        "browse",
		Usage:       "CLI to browse the configured root directory",
		Description: "Lists and deletes files below the root directory the server browses",
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "list a directory",
				ArgsUsage: "[dir]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "sorting",
						Usage: `sort order, e.g. "name.ascending" or "size.descending"`,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "print entries as JSON",
					},
				},
				Action: func(c *cli.Context) error {
					spec, err := sorting.FromQuery(c.String("sorting"))
					if err != nil {
						return err
					}

					req, err := pathreq.New(pathreq.Query{Path: c.Args().First()})
					if err != nil {
						return err
					}

					entries, err := svc.ReadDirectory(c.Context, req.Directory)
					if err != nil {
						return err
					}
					entries = sorter.Sort(entries, spec)

					if c.Bool("json") {
						enc := json.NewEncoder(os.Stdout)
						enc.SetIndent("", "  ")
						return errors.WithStack(enc.Encode(entries))
					}

					printEntries(entries)
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "delete a single file",
				ArgsUsage: "<dir> <file>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return cli.Exit("usage: browse delete <dir> <file>", 1)
					}

					req, err := pathreq.New(pathreq.Query{Path: c.Args().Get(0), File: c.Args().Get(1)})
					if err != nil {
						return err
					}

					if err := svc.Delete(c.Context, req.FullPath); err != nil {
						return err
					}

					fmt.Printf("Deleted %s\n", req.FullPath)
					return nil
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Err(err).Fatal("app run error")
	}
}

func printEntries(entries models.Entries) {
	for _, e := range entries {
		name := e.Name
		size := humanize.Bytes(e.Size)
		if e.IsDirectory {
			name += "/"
			size = "-"
		}
		fmt.Printf("%-10s %s  %s\n", size, e.ModifiedAt.Format("2006-01-02 15:04:05"), name)
	}
}
