// Command texdump prints the texture descriptors stored in texspec cache
// files.
//
// Usage:
//
//	texdump [-v] file...
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/texspec"
	"github.com/gogpu/texspec/cachefile"
	_ "github.com/gogpu/texspec/vulkan"
)

func main() {
	verbose := flag.Bool("v", false, "log debug output to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: texdump [-v] file...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		texspec.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	failed := false
	for _, path := range flag.Args() {
		if err := dump(os.Stdout, path, flag.NArg() > 1); err != nil {
			log.Printf("texdump: %v", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// dump writes one line per entry of the cache file at path.
func dump(w io.Writer, path string, withName bool) error {
	infos, err := cachefile.Load(path)
	if err != nil {
		return err
	}
	if withName {
		fmt.Fprintf(w, "%s: %d entries\n", path, len(infos))
	}
	for i, info := range infos {
		fmt.Fprintf(w, "%d\t%s\n", i, info)
	}
	return nil
}
