// Command ytpick-cli resolves a video URL, lists its downloadable formats and
// downloads the selected one with a terminal progress bar.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"github.com/ytget/ytpick/internal/download"
	"github.com/ytget/ytpick/internal/model"
	"github.com/ytget/ytpick/internal/platform"
	"github.com/ytget/ytpick/internal/resolver"
	"github.com/ytget/ytpick/internal/resolver/backend"
)

var version = "dev"

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2

	// sysexits EX_TEMPFAIL
	exitRetryLater = 75
)

type options struct {
	url       string
	format    string
	outputDir string
	backend   string
	ytdlpPath string
	list      bool
	verbose   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if !opts.verbose {
		log.SetOutput(io.Discard)
	}

	mediaResolver, err := backend.New(opts.backend, opts.ytdlpPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := backend.Check(ctx, mediaResolver); err != nil {
		fmt.Fprintln(stderr, resolver.FriendlyMessage(err))
		return exitFailure
	}

	bar := newProgressBar(stderr)
	finished := make(chan model.DownloadJob, 1)
	listener := download.ListenerFuncs{
		OnUpdate: func(job model.DownloadJob) {
			if job.Detail != "" {
				bar.Describe(job.Detail)
			}
			_ = bar.Set(int(job.Percent))
		},
		OnFinish: func(job model.DownloadJob) {
			finished <- job
		},
	}
	svc := download.NewService(mediaResolver, listener)
	defer svc.Close()

	fmt.Fprintf(stderr, "Fetching %s\n", opts.url)
	session, err := svc.Resolve(ctx, opts.url)
	if err != nil {
		var resolveErr *download.ResolveError
		if errors.As(err, &resolveErr) {
			fmt.Fprintln(stderr, resolveErr.Message())
		} else {
			fmt.Fprintln(stderr, err)
		}
		return exitFailure
	}

	fmt.Fprintln(stdout, session.Title)
	printCatalog(stdout, session)
	if opts.list {
		return exitOK
	}
	if len(session.Catalog) == 0 {
		fmt.Fprintln(stderr, "No downloadable formats found")
		return exitFailure
	}

	label := pickLabel(session, opts.format)
	if _, err := svc.Start(label, opts.outputDir); err != nil {
		fmt.Fprintf(stderr, "Cannot start download: %v\n", err)
		return exitFailure
	}

	job := <-finished
	_ = bar.Finish()
	fmt.Fprintln(stderr)

	if err := svc.LastError(); err != nil {
		fmt.Fprintln(stderr, job.LastMessage)
		return exitCode(err)
	}
	fmt.Fprintf(stdout, "%s: %s\n%s\n", job.LastMessage, job.DisplayTitle(), job.OutputPath)
	return exitOK
}

// exitCode maps a transfer error to the process exit status
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, resolver.ErrRateLimited):
		return exitRetryLater
	}
	return exitFailure
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("ytpick-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.format, "f", "", "format label or 1-based row number (default: first row)")
	fs.StringVar(&opts.outputDir, "o", "", "destination directory (default: ~/Downloads)")
	fs.StringVar(&opts.backend, "backend", backend.YtDlp, "resolver backend: ytdlp or native")
	fs.StringVar(&opts.ytdlpPath, "ytdlp", "", "path to the yt-dlp executable")
	fs.BoolVar(&opts.list, "list", false, "list formats and exit")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "ytpick-cli %s\n\nUsage: ytpick-cli [flags] URL\n\n", version)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return opts, errors.New("exactly one URL is required")
	}
	opts.url = fs.Arg(0)

	if opts.outputDir == "" {
		dir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return opts, err
		}
		opts.outputDir = dir
	}
	return opts, nil
}

// pickLabel maps the -f value to a catalog label. A value that is not a label
// but parses as a row number selects that row.
func pickLabel(session *model.VideoSession, format string) string {
	if format == "" {
		return session.Catalog[0].Label
	}
	for _, entry := range session.Catalog {
		if entry.Label == format {
			return format
		}
	}
	if row, err := strconv.Atoi(format); err == nil && row >= 1 && row <= len(session.Catalog) {
		return session.Catalog[row-1].Label
	}
	return format
}

func printCatalog(w io.Writer, session *model.VideoSession) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tFORMAT\tID\tSIZE")
	for i, entry := range session.Catalog {
		size := "-"
		if entry.Descriptor.Size > 0 {
			size = humanize.Bytes(uint64(entry.Descriptor.Size))
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, entry.Label, entry.Descriptor.ID, size)
	}
	tw.Flush()
}

func newProgressBar(w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(100,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Downloading"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
