// Command sortkit sorts lines or JSON records read from a file or stdin.
//
// Usage:
//
//	sortkit numbers --desc values.txt
//	sortkit strings --natural --locale sv < names.txt
//	sortkit dates --layout 02/01/2006 dates.txt
//	sortkit records -k "$['address']['city']" -k "age:desc" people.json
//	sortkit records --keys-file keys.yaml people.json
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/amp-labs/amp-sort/envutil"
	"github.com/amp-labs/amp-sort/logger"
	"golang.org/x/text/language"
)

// CLI defines the command-line interface.
type CLI struct {
	Numbers NumbersCmd `cmd:"" help:"Sort numbers, one per line."`
	Strings StringsCmd `cmd:"" help:"Sort lines of text."`
	Dates   DatesCmd   `cmd:"" help:"Sort dates, one per line. Unparseable lines sort last."`
	Records RecordsCmd `cmd:"" help:"Sort a JSON array of objects by one or more keys."`

	Charset string `help:"Charset of the input (e.g. latin1). Detected when the input is not UTF-8."`
}

func (c *CLI) source(name string) source {
	return source{name: name, charset: c.Charset}
}

// streams are the process's standard streams, replaced in tests.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer

	// maxLine caps the length of one input line; zero means maxLineBytes.
	maxLine int
}

func run(ctx context.Context, args []string, s *streams) error {
	locale := envutil.Locale("SORTKIT_LOCALE", envutil.Default(language.Und)).ValueOrElse(language.Und)

	cli := CLI{}

	parser, err := kong.New(&cli,
		kong.Name("sortkit"),
		kong.Description("Non-destructive sorting of numbers, text, dates and records."),
		kong.UsageOnError(),
		kong.Writers(s.out, s.err),
		kong.Vars{"locale": locale.String()},
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.Bind(s),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return kctx.Run(&cli)
}

func main() {
	logger.ConfigureLogging("sortkit")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], &streams{in: os.Stdin, out: os.Stdout, err: os.Stderr}); err != nil {
		logger.Get(ctx).Error("sortkit failed", "error", err)
		fmt.Fprintln(os.Stderr, "sortkit:", err) //nolint:errcheck
		cancel()
		os.Exit(1) //nolint:gocritic
	}
}
