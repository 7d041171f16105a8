// Package ytdlp implements resolver.MediaResolver on top of the yt-dlp
// command line tool. Progress is reported as the raw text lines the tool
// prints with --newline.
package ytdlp

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/alessio/shellescape"

	"github.com/ytget/ytpick/internal/model"
	"github.com/ytget/ytpick/internal/progress"
	"github.com/ytget/ytpick/internal/resolver"
)

// Defaults
const (
	DefaultBinary         = "yt-dlp"
	DefaultResolveTimeout = 60 * time.Second
	OutputTemplate        = "%(title)s.%(ext)s"
	ErrorLinePrefix       = "ERROR:"
	maxLineBytes          = 1024 * 1024
)

// Resolver runs yt-dlp as a subprocess
type Resolver struct {
	path           string
	resolveTimeout time.Duration
}

var _ resolver.MediaResolver = (*Resolver)(nil)

// New creates a resolver for the given yt-dlp binary; an empty path means
// "yt-dlp" from PATH
func New(path string) *Resolver {
	if path == "" {
		path = DefaultBinary
	}
	return &Resolver{
		path:           path,
		resolveTimeout: DefaultResolveTimeout,
	}
}


// CheckInstalled verifies that the yt-dlp binary can be executed
func (r *Resolver) CheckInstalled(ctx context.Context) error {
	if err := exec.CommandContext(ctx, r.path, "--version").Run(); err != nil {
		return fmt.Errorf("%w: %v", resolver.ErrNotInstalled, err)
	}
	return nil
}

// Resolve runs "yt-dlp -J" and converts the reported formats
func (r *Resolver) Resolve(ctx context.Context, url string) (*model.VideoInfo, error) {
	if r.resolveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.resolveTimeout)
		defer cancel()
	}

	args := []string{"-J", "--no-playlist", url}
	log.Printf("ytdlp: resolving %s", r.commandLine(args))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, r.failure(err, lastErrorLine(stderr.String()))
	}

	return ParseInfo(stdout.Bytes())
}

// Fetch downloads one format with --newline and streams every output line to
// the sink
func (r *Resolver) Fetch(ctx context.Context, req resolver.FetchRequest, sink resolver.ProgressSink) (string, error) {
	args := []string{
		"-f", req.Encoding.ID,
		"-o", filepath.Join(req.DestinationDir, OutputTemplate),
		"--newline",
		"--no-playlist",
		req.SourceURL,
	}
	log.Printf("ytdlp: downloading %s", r.commandLine(args))

	cmd := exec.CommandContext(ctx, r.path, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("failed to get stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return "", fmt.Errorf("failed to get stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return "", r.failure(err, "")
	}

	lines := make(chan outputLine)
	var wg sync.WaitGroup
	wg.Add(2)
	go scanLines(stdout, false, lines, &wg)
	go scanLines(stderr, true, lines, &wg)
	go func() {
		wg.Wait()
		close(lines)
	}()

	// lines from both pipes are consumed here so the sink sees one ordered stream
	var outputPath, lastError string
	for line := range lines {
		sink.Line(line.text)
		if path, ok := progress.ParseDestination(line.text); ok {
			outputPath = path
		}
		if line.stderr && strings.HasPrefix(line.text, ErrorLinePrefix) {
			lastError = line.text
		}
	}

	if err := cmd.Wait(); err != nil {
		return "", r.failure(err, lastError)
	}

	if outputPath == "" {
		outputPath = req.DestinationDir
	}
	return outputPath, nil
}

type outputLine struct {
	text   string
	stderr bool
}

func scanLines(reader io.Reader, isStderr bool, out chan<- outputLine, wg *sync.WaitGroup) {
	defer wg.Done()

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		out <- outputLine{text: text, stderr: isStderr}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("ytdlp: error reading output: %v", err)
	}
	// drain so the process never blocks on a full pipe
	io.Copy(io.Discard, reader)
}

// failure converts a process error into a classified resolver error
func (r *Resolver) failure(err error, message string) error {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", resolver.ErrNotInstalled, err)
	}

	if message == "" {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			message = fmt.Sprintf("Download failed with exit code %d", exitErr.ExitCode())
		} else {
			message = err.Error()
		}
	}
	log.Printf("ytdlp: command failed: %v (%s)", err, message)
	return resolver.Classify(message)
}

// lastErrorLine returns the last "ERROR:" line of the output, or the whole
// trimmed output when there is none
func lastErrorLine(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, ErrorLinePrefix) {
			return line
		}
	}
	return strings.TrimSpace(output)
}

func (r *Resolver) commandLine(args []string) string {
	return shellescape.QuoteCommand(append([]string{r.path}, args...))
}
