// Command scores prints or extends a Pixel Defender high score file
// without starting the game.
//
//	scores [--file f]...                 print the top entries of all files
//	scores [--file f] --add name --score n
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ogier/pflag"

	"pixeldefender/scores"
)

// fileList collects repeated --file flags
type fileList []string

func (f *fileList) String() string     { return strings.Join(*f, ",") }
func (f *fileList) Set(v string) error { *f = append(*f, v); return nil }

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "scores"})
	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		logger.Error("failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer, logger *log.Logger) error {
	var files fileList
	fs := pflag.NewFlagSet("scores", pflag.ContinueOnError)
	fs.VarP(&files, "file", "f", "score file, repeatable (default "+scores.DefaultPath+")")
	add := fs.String("add", "", "append an entry with this name")
	score := fs.Int("score", 0, "score of the appended entry")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(files) == 0 {
		files = fileList{scores.DefaultPath}
	}

	given := map[string]bool{}
	fs.Visit(func(f *pflag.Flag) { given[f.Name] = true })

	if given["add"] || given["score"] {
		if !given["add"] || !given["score"] {
			return errors.New("--add and --score must be given together")
		}
		if *score < 0 {
			return fmt.Errorf("--score must not be negative, got %d", *score)
		}
		if len(files) > 1 {
			return errors.New("--add takes at most one --file")
		}
		e := scores.Entry{Name: *add, Score: *score}
		if err := scores.Append(files[0], e); err != nil {
			return err
		}
		logger.Info("appended", "entry", e.Label(), "file", files[0])
		return nil
	}

	res, err := scores.Read(files...)
	if err != nil {
		return err
	}
	if res.Skipped > 0 {
		logger.Warn("skipped malformed lines", "count", res.Skipped)
	}
	for i, e := range res.Entries {
		fmt.Fprintf(out, "%d. %s\n", i+1, e.Label())
	}
	return nil
}
