package commands

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/teranos/widgetgen/logger"
	"github.com/teranos/widgetgen/server"
	"github.com/teranos/widgetgen/watcher"
	"github.com/teranos/widgetgen/widget"
	"golang.org/x/sync/errgroup"
)

// ServeCmd serves a live-reloading preview
var ServeCmd = &cobra.Command{
	Use:   "serve <layout>",
	Short: "Serve a live-reloading preview of a layout",
	Long: `Serve an HTML preview of the layout and reload it in the browser every
time the file is saved.

Routes:
  /         Preview page with live reload
  /preview  Preview fragment
  /export   Generated Lua (?shape=full|widgets|function, ?download=1)
  /health   Server status as JSON
  /ws       Reload notifications

Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

var (
	serveAddr  string
	serveShape string
)

func init() {
	ServeCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
	ServeCmd.Flags().StringVarP(&serveShape, "shape", "s", "", "Default shape served by /export (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	shape, err := resolveShape(serveShape, cfg)
	if err != nil {
		return err
	}
	addr := cfg.Serve.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	// Server lifecycle is logged at -v even without the flag
	v := verbosity(cmd)
	if v == 0 {
		v = logger.VerbosityInfo
	}

	layout, err := widget.Load(args[0])
	if err != nil {
		return err
	}

	srv := server.New(layout, args[0], server.Options{
		Shape:          shape,
		Renderer:       newRenderer(cfg),
		AllowedOrigins: cfg.Serve.AllowedOrigins,
		Verbosity:      v,
		Session:        uuid.NewString(),
	})

	w, err := watcher.New(args[0], cfg.Debounce())
	if err != nil {
		return err
	}
	w.OnReload(srv.Update)

	ctx, stop := signalContext()
	defer stop()

	if len(cfg.Serve.AllowedOrigins) == 0 {
		statusWarning.Println("serve.allowed_origins is empty: WebSocket connections are accepted from any origin")
	}
	statusInfo.Printfln("Serving preview of %s at http://%s (Ctrl+C to stop)", args[0], addr)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return w.Run(ctx) })
	g.Go(func() error { return srv.ListenAndServe(ctx, addr) })
	if err := g.Wait(); err != nil {
		return err
	}

	statusSuccess.Println("Server stopped cleanly")
	return nil
}
