package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"noticegen/internal/config"
	"noticegen/internal/draft"
	"noticegen/internal/httpapi"
)

const lockFileName = "noticegen.lock"

func newServeCommand(a *app) *cobra.Command {
	var (
		port int
		addr string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web form and POST /generate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
			}
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr = addr
			}
			if err := config.Validate(a.cfg); err != nil {
				return err
			}
			return runServe(cmd, a)
		},
	}
	cmd.Flags().IntVar(&port, "port", 8000, "listen port")
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1", "listen address")
	return cmd
}

func runServe(cmd *cobra.Command, a *app) error {
	if err := os.MkdirAll(a.dataDir, 0o755); err != nil {
		return err
	}
	if a.configFlag == "" {
		path, err := config.EnsureUserConfig(a.dataDir)
		if err != nil {
			return fmt.Errorf("config bootstrap failed: %w", err)
		}
		a.log.Debug("config", "path", path)
	}

	lock := flock.New(filepath.Join(a.dataDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock data dir: %w", err)
	}
	if !locked {
		return fmt.Errorf("another server is already using %s", lock.Path())
	}
	defer func() { _ = lock.Unlock() }()

	deps := httpapi.Deps{
		Renderer: a.renderer,
		Logger:   a.log,
		Metrics:  httpapi.NewMetrics(),
		Config:   a.cfg,
	}
	if a.cfg.Draft.Enabled {
		client, err := draft.NewClient(a.cfg)
		switch {
		case errors.Is(err, draft.ErrNoAPIKey):
			a.log.Warn("drafting disabled: no API key")
		case err != nil:
			a.log.Warn("drafting disabled", "err", err)
		default:
			deps.Drafter = client
		}
	}

	srv := &httpapi.Server{
		Addr:            net.JoinHostPort(a.cfg.Server.Addr, strconv.Itoa(a.cfg.Server.Port)),
		Handler:         httpapi.NewHandler(deps),
		Logger:          a.log,
		ShutdownTimeout: a.cfg.ShutdownTimeout(),
	}
	a.log.Info("안내문 작성 비서 서버 실행 중", "url", "http://localhost:"+strconv.Itoa(a.cfg.Server.Port))
	return srv.Run(cmd.Context())
}
