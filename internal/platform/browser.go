// Package platform talks to the host desktop.
package platform

import (
	"errors"
	"net/url"
	"os/exec"
	"runtime"

	"go.uber.org/zap"
)

// ErrUnsupported is returned for links that cannot be opened externally.
var ErrUnsupported = errors.New("platform: unsupported link")

// Browser opens links in a new browser context.
type Browser struct {
	log   *zap.Logger
	start func(name string, args ...string) error
}

func NewBrowser(log *zap.Logger) *Browser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Browser{log: log, start: startCommand}
}

// Open launches the system handler for link without waiting for it.
// Only absolute http(s) and mailto links are opened.
func (b *Browser) Open(link string) error {
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https" && u.Scheme != "mailto") {
		b.log.Debug("link not opened", zap.String("link", link))
		return ErrUnsupported
	}

	name, args := command(runtime.GOOS, u.String())
	if err := b.start(name, args...); err != nil {
		b.log.Warn("failed to open link", zap.String("link", link), zap.Error(err))
		return err
	}
	b.log.Info("opened link", zap.String("link", link))
	return nil
}

func command(goos, link string) (string, []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", link}
	case "darwin":
		return "open", []string{link}
	default:
		return "xdg-open", []string{link}
	}
}

func startCommand(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}
