// Command tablefmt formats the plain text tables of files.
//
// Usage:
//
//	tablefmt [flags] [file ...]
//
// Without files the text is read from stdin and written to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-texttable"
	"github.com/domonda/go-texttable/logging"
	"github.com/domonda/go-texttable/textdoc"
)

// errUnformatted is returned in -check mode
// if any table is not formatted.
var errUnformatted = errors.New("unformatted tables found")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	line            int
	write           bool
	check           bool
	keepFrontMatter bool
	config          *texttable.Config
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("tablefmt", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configPath := flags.String("config", "", "YAML or JSON config file")
	line := flags.Int("line", 0, "Format only the table containing this line (1-based), 0 formats all tables")
	write := flags.Bool("w", false, "Write the result to the files instead of stdout")
	check := flags.Bool("check", false, "Report files with unformatted tables and exit with an error")
	verbose := flags.Bool("v", false, "Enable debug logging")
	frontMatter := flags.Bool("front-matter", false, "Also format a leading YAML or TOML front matter block")
	var overrides configFlags
	overrides.register(flags)

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer logging.SetLogger(nil)

	config, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if err := overrides.apply(flags, config); err != nil {
		return err
	}

	opts := options{
		line:            *line,
		write:           *write,
		check:           *check,
		keepFrontMatter: !*frontMatter,
		config:          config,
	}

	if flags.NArg() == 0 {
		if opts.write {
			return errors.New("-w needs file arguments")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		return formatData("<stdin>", data, opts, stdout)
	}

	unformatted := false
	for _, path := range flags.Args() {
		err := formatFile(fs.File(path), opts, stdout)
		switch {
		case errors.Is(err, errUnformatted):
			fmt.Fprintln(stdout, path)
			unformatted = true
		case err != nil:
			return err
		}
	}
	if unformatted {
		return errUnformatted
	}
	return nil
}

func formatFile(file fs.File, opts options, stdout io.Writer) error {
	data, err := file.ReadAll()
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}
	if !opts.write || opts.check {
		return formatData(string(file), data, opts, stdout)
	}

	doc, changed, err := formatDocument(string(file), data, opts)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	if err := file.WriteAll(doc.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	logging.Logger().Info("formatted", "file", string(file))
	return nil
}

// formatData writes the formatted data to stdout,
// or only checks it if opts.check is set.
func formatData(name string, data []byte, opts options, stdout io.Writer) error {
	doc, changed, err := formatDocument(name, data, opts)
	if err != nil {
		return err
	}
	if opts.check {
		if changed {
			return errUnformatted
		}
		return nil
	}
	_, err = stdout.Write(doc.Bytes())
	return err
}

func formatDocument(name string, data []byte, opts options) (doc *textdoc.Document, changed bool, err error) {
	doc, err = textdoc.Decode(data, nil)
	if err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", name, err)
	}

	frontMatter := texttable.EmptyRange(0)
	if opts.keepFrontMatter {
		frontMatter = textdoc.FrontMatterRange(doc.Lines)
	}

	var edits []texttable.Edit
	if opts.line > 0 {
		edit, ok := texttable.FormatCurrent(doc.Lines, opts.line-1, opts.config)
		if !ok || edit.Range.Overlaps(frontMatter) {
			return nil, false, fmt.Errorf("%s: no table at line %d", name, opts.line)
		}
		if edit.Text != texttable.RangeText(doc.Lines, edit.Range) {
			edits = append(edits, edit)
		}
	} else {
		for _, edit := range texttable.FormatAll(doc.Lines, opts.config) {
			if edit.Range.Overlaps(frontMatter) {
				logging.Logger().Debug("skipped front matter", "file", name, "range", edit.Range.String())
				continue
			}
			edits = append(edits, edit)
		}
	}

	logging.Logger().Debug("edits", "file", name, "encoding", doc.Encoding, "count", len(edits))
	if len(edits) == 0 {
		return doc, false, nil
	}
	if err := doc.Apply(edits); err != nil {
		return nil, false, fmt.Errorf("%s: %w", name, err)
	}
	return doc, true, nil
}
