package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dirview/dirview/pkg/filesystem"
	"github.com/dirview/dirview/pkg/sorting"
	"github.com/jessevdk/go-flags"
	"github.com/robinjoseph08/golib/logger"
)

func main() {
	log := logger.New()

	var opts struct {
		Sorting string `short:"s" long:"sorting" description:"Sort order, e.g. name.ascending"`
		Legacy  bool   `short:"l" long:"legacy" description:"Use the legacy size/modified sort direction"`
	}

	args, err := flags.Parse(&opts)
	if err != nil {
		log.Err(err).Fatal("flags parse error")
	}

	if len(args) != 1 {
		fmt.Println("go run ./cmd/scripts/debug/list-dir <path/to/dir>")
		os.Exit(1)
	}

	spec, err := sorting.FromQuery(opts.Sorting)
	if err != nil {
		log.Err(err).Fatal("sorting parse error")
	}

	entries, err := filesystem.ReadDirectory(context.Background(), os.DirFS(args[0]), ".")
	if err != nil {
		log.Err(err).Fatal("read directory error")
	}
	entries = sorting.Sorter{LegacyNumericOrder: opts.Legacy}.Sort(entries, spec)

	fmt.Printf("Sorting: %s\nEntries: %d\n", spec, len(entries))
	for _, e := range entries {
		fmt.Printf("dir=%-5v size=%-10d modified=%d name=%q\n", e.IsDirectory, e.Size, e.Modified, e.Name)
	}
}
