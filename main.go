package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"PolyBoard/internal/config"
	"PolyBoard/internal/display"
	pbnet "PolyBoard/internal/net"
	"PolyBoard/internal/state"
	"PolyBoard/internal/ui"
)

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if link := flag.Arg(0); strings.HasPrefix(link, config.URLScheme) {
		runViewer(cfg, hostFromLink(link))
	} else if cfg.Discover {
		runViewer(cfg, "")
	} else {
		runHost(cfg)
	}
}

func hostFromLink(link string) string {
	address := strings.TrimPrefix(link, config.URLScheme)
	return strings.TrimSuffix(address, "/")
}

func viewportSize(cfg config.Config) (int, int) {
	return cfg.Width / 2, cfg.Height
}

func runHost(cfg config.Config) {
	log.Println("Starting as HOST")
	session := state.NewSession(float32(cfg.Tolerance))

	w, h := viewportSize(cfg)
	sw := display.NewSoftwareBackend(w, h, cfg.Supersample)
	publisher := pbnet.NewPublisher()

	srv := &http.Server{Addr: fmt.Sprintf(":%d", cfg.Port), Handler: publisher.Handler()}
	go func() {
		log.Printf("[HOST] frame publisher listening on port %d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	defer srv.Close()

	if cfg.Advertise {
		mdnsSrv, err := pbnet.Advertise(cfg.Port)
		if err != nil {
			log.Printf("[HOST] mDNS disabled: %v", err)
		} else {
			defer mdnsSrv.Shutdown()
		}
	}

	hostIP, err := pbnet.GetOutgoingIP()
	if err != nil {
		log.Printf("[HOST] could not determine LAN address: %v", err)
		hostIP = "127.0.0.1"
	}
	shareLink := fmt.Sprintf("%s%s:%d", config.URLScheme, hostIP, cfg.Port)

	loop := display.NewLoop(session, display.Multi(sw, publisher), cfg.Interval)
	loop.Start()
	defer loop.Stop()

	ui.RunApp(session, sw, shareLink, fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))
}

func runViewer(cfg config.Config, address string) {
	log.Println("Starting as VIEWER")
	w, h := viewportSize(cfg)
	sw := display.NewSoftwareBackend(w, h, cfg.Supersample)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ui.RunViewer(sw, fyne.NewSize(float32(w), float32(h)), func(v *ui.Viewer) {
		addr := address
		if addr == "" {
			v.SetStatus("Looking for a host...")
			found, err := pbnet.Discover(3 * time.Second)
			if err != nil {
				v.SetStatus(fmt.Sprintf("Discovery failed: %v", err))
				return
			}
			addr = found
		}

		v.SetStatus("Watching " + addr)
		err := pbnet.Subscribe(ctx, addr, func(f state.Frame) {
			var err error
			switch f.Type {
			case state.FrameRender:
				err = sw.Render(f)
			case state.FrameClear:
				err = sw.Clear()
			}
			if err != nil {
				log.Printf("[VIEWER] frame %d from %s: %v", f.Seq, f.Site, err)
			}
		})
		if err != nil && ctx.Err() == nil {
			v.SetStatus(fmt.Sprintf("Disconnected from host: %v", err))
		}
	})
}
