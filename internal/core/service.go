// Package core wires configuration, the tree walker, the report renderer
// and the README updater into a single invocation.
package core

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/prittamravi/clines/internal/config"
	"github.com/prittamravi/clines/internal/db"
	"github.com/prittamravi/clines/internal/logging"
	"github.com/prittamravi/clines/internal/readme"
	"github.com/prittamravi/clines/internal/report"
	"github.com/prittamravi/clines/internal/scan"
	"github.com/prittamravi/clines/internal/size"
)

type Service struct {
	// Cache and DB are optional.
	Cache scan.Cache
	DB    *db.DB
}

func NewService(cache scan.Cache, database *db.DB) *Service {
	return &Service{Cache: cache, DB: database}
}

// LoadConfig returns the configuration for variant. Load problems are
// logged and the usable fallback is returned.
func (s *Service) LoadConfig(path string, variant config.Variant) config.Config {
	return s.loadConfig(path, variant, true)
}

// loadConfig with persist unset never creates the default config file.
func (s *Service) loadConfig(path string, variant config.Variant, persist bool) config.Config {
	load := config.Read
	if persist {
		load = config.Load
	}
	cfg, err := load(path, variant)
	if err != nil {
		if errors.Is(err, config.ErrInvalidPattern) {
			logging.L().Warn("ignoring invalid ignore patterns", zap.String("config", path), zap.Error(err))
		} else {
			logging.L().Error("error reading config file", zap.String("config", path), zap.Error(err))
		}
	}
	return cfg
}

// Scan walks root with cfg.
func (s *Service) Scan(ctx context.Context, root string, cfg config.Config, variant config.Variant) (*scan.Result, error) {
	walker := scan.New(scan.Options{
		Config:           cfg,
		SkipBinaryAssets: variant == config.Extended,
		Cache:            s.Cache,
	})
	return walker.Walk(ctx, root)
}

// Run loads the config, walks the tree, and updates (or plans) the README.
// A dry run writes nothing, not even the default config.
func (s *Service) Run(ctx context.Context, opts RunOptions) (*Outcome, error) {
	cfg := s.loadConfig(opts.ConfigPath, opts.Variant, !opts.DryRun)

	result, err := s.Scan(ctx, opts.Root, cfg, opts.Variant)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", opts.Root, err)
	}

	out := &Outcome{
		Result:   result,
		Category: size.Label(result.TotalLines),
		Block:    report.Block(result, opts.Variant),
	}

	if opts.DryRun {
		out.Readme, err = readme.Plan(opts.ReadmePath, out.Block)
	} else {
		out.Readme, err = readme.Update(opts.ReadmePath, out.Block)
	}
	if err != nil {
		return nil, err
	}
	s.logReadme(out.Readme, opts.DryRun)

	if opts.Record && s.DB != nil {
		out.Run, err = s.Record(result, opts.Variant)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Record stores result in the history database.
func (s *Service) Record(result *scan.Result, variant config.Variant) (*db.Run, error) {
	if s.DB == nil {
		return nil, fmt.Errorf("no history database attached")
	}
	stats := result.Sorted()
	extensions := make([]db.RunExtension, 0, len(stats))
	for _, stat := range stats {
		extensions = append(extensions, db.RunExtension{Extension: stat.Extension, Files: stat.Files, Lines: stat.Lines})
	}
	run, err := s.DB.InsertRun(db.Run{
		Root:       result.Root,
		Variant:    variant.String(),
		TotalLines: result.TotalLines,
		TotalFiles: result.TotalFiles,
		Category:   size.Label(result.TotalLines).String(),
	}, extensions)
	if err != nil {
		return nil, fmt.Errorf("record run: %w", err)
	}
	return run, nil
}

func (s *Service) logReadme(change *readme.Change, dryRun bool) {
	fields := []zap.Field{zap.String("readme", change.Path)}
	switch {
	case change.Action == readme.Missing:
		logging.L().Info("README not found, skipping update", fields...)
	case dryRun:
		logging.L().Debug("README update planned", append(fields, zap.Stringer("action", change.Action))...)
	case !change.Changed():
		logging.L().Info("README already up to date", fields...)
	case change.Action == readme.Replaced:
		logging.L().Info("updated placeholders with new line count information", fields...)
	default:
		logging.L().Info("added placeholders with new line count information at the end", fields...)
	}
}
