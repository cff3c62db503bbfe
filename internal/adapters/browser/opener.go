package browser

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/komodorio/kubectl-komodor/internal/ports"
)

var ErrUnavailable = errors.New("no browser launcher found")

type runFunc func(ctx context.Context, name string, args ...string) (stderr string, err error)

// Opener hands a URL to the platform's default browser launcher.
type Opener struct {
	goos string
	run  runFunc
}

var _ ports.URLOpener = (*Opener)(nil)

func NewOpener() *Opener {
	return &Opener{goos: runtime.GOOS, run: runLauncher}
}

func (o *Opener) Open(ctx context.Context, rawURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(rawURL) == "" {
		return errors.New("url is empty")
	}

	name, args := launcherFor(o.goos, rawURL)
	stderr, err := o.run(ctx, name, args...)
	if err != nil {
		if stderr == "" {
			return fmt.Errorf("open browser with %s: %w", name, err)
		}
		return fmt.Errorf("open browser with %s: %w: %s", name, err, stderr)
	}

	return nil
}

func launcherFor(goos string, rawURL string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{rawURL}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}
	default:
		return "xdg-open", []string{rawURL}
	}
}

func runLauncher(ctx context.Context, name string, args ...string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrUnavailable, name)
		}
		return "", fmt.Errorf("locate %s: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	return strings.TrimSpace(stderr.String()), err
}
