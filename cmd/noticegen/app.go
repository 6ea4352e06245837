package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"noticegen/internal/config"
	"noticegen/internal/logger"
	"noticegen/internal/render"
)

const envDataDir = "NOTICEGEN_DATA_DIR"

// app is the state shared by every command once flags are parsed.
type app struct {
	configFlag string
	logLevel   string
	logJSON    bool

	dataDir  string
	cfgPath  string
	cfg      config.Config
	log      logger.Logger
	renderer *render.Renderer
}

// dataDirFromEnv returns the engine data dir: the env override, else the
// working directory.
func dataDirFromEnv() string {
	if d := strings.TrimSpace(os.Getenv(envDataDir)); d != "" {
		return d
	}
	return "."
}

// setup loads the config and builds the logger. A missing config.yml in
// the data dir is fine; an explicit --config must exist.
func (a *app) setup(cmd *cobra.Command) error {
	a.dataDir = dataDirFromEnv()
	a.cfg = config.Default()

	switch {
	case a.configFlag != "":
		cfg, err := config.Load(a.configFlag)
		if err != nil {
			return fmt.Errorf("config load failed (%s): %w", a.configFlag, err)
		}
		a.cfg, a.cfgPath = cfg, a.configFlag
	default:
		path := filepath.Join(a.dataDir, config.FileName)
		cfg, err := config.Load(path)
		switch {
		case err == nil:
			a.cfg, a.cfgPath = cfg, path
		case errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("config load failed (%s): %w", path, err)
		}
	}

	if cmd.Flags().Changed("log-level") {
		a.cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-json") {
		a.cfg.Log.JSON = a.logJSON
	}

	cfg, res := config.NormalizeAndValidate(a.cfg)
	if !res.OK() {
		return fmt.Errorf("invalid config:\n- %s", strings.Join(res.Errors, "\n- "))
	}
	a.cfg = cfg

	a.log = logger.NewLogger(&logger.Config{
		Level:      logger.LogLevel(a.cfg.Log.Level),
		Output:     cmd.ErrOrStderr(),
		JSON:       a.cfg.Log.JSON,
		TimeFormat: "15:04:05",
	})
	for _, w := range res.Warnings {
		a.log.Warn("config", "warning", w)
	}
	if a.cfgPath != "" {
		a.log.Debug("config loaded", "path", a.cfgPath)
	}

	a.renderer = render.New(render.DefaultStyle())
	cmd.SetContext(logger.ContextWithLogger(cmd.Context(), a.log))
	return nil
}
