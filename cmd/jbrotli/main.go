package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/linearregression/jbrotli/config"
	"github.com/linearregression/jbrotli/pkg/brotli"
	"github.com/linearregression/jbrotli/pkg/checksum"
	"github.com/linearregression/jbrotli/pkg/fs"
	"github.com/linearregression/jbrotli/pkg/logger"
	"github.com/linearregression/jbrotli/pkg/middleware"
	"github.com/linearregression/jbrotli/pkg/system"
)

func main() {
	log := logger.New("jbrotli")
	defer log.Sync()

	app := &cli.Command{
		Name:  "jbrotli",
		Usage: "Brotli streaming compression toolkit",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file",
			},
		},
		Commands: []*cli.Command{
			compressCommand(log),
			decompressCommand(log),
			serveCommand(log),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Errorw("command failed", "error", err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	if path := cmd.String("config"); path != "" {
		return config.LoadConfig(path)
	}
	return config.DefaultConfig(), nil
}

func compressCommand(log *zap.SugaredLogger) *cli.Command {
	return &cli.Command{
		Name:  "compress",
		Usage: "Compress a file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "Input file", Required: true},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file", Required: true},
			&cli.IntFlag{Name: "quality", Aliases: []string{"q"}, Value: brotli.DefaultQuality, Usage: "Quality (0-11)"},
			&cli.IntFlag{Name: "window-bits", Value: brotli.DefaultWindowBits, Usage: "Sliding window exponent (10-24)"},
			&cli.BoolFlag{Name: "verify", Usage: "Decompress the result and verify its checksum"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			data, err := fs.ReadFile(cmd.String("input"))
			if err != nil {
				return err
			}

			var encoded bytes.Buffer
			w, err := brotli.NewWriterSize(&encoded, &brotli.Options{
				Quality:    int(cmd.Int("quality")),
				WindowBits: int(cmd.Int("window-bits")),
			}, cfg.Codec.ChunkSize)
			if err != nil {
				return err
			}
			if _, err := w.Write(data); err != nil {
				return err
			}
			if err := w.Close(); err != nil {
				return err
			}
			compressed := encoded.Bytes()

			if cmd.Bool("verify") {
				restored, err := brotli.Decompress(compressed)
				if err != nil {
					return fmt.Errorf("verification decode failed: %w", err)
				}
				if !checksum.Verify(restored, checksum.Checksum(data)) {
					return errors.New("verification failed: round-trip checksum mismatch")
				}
			}

			if exists, _ := fs.Exists(cmd.String("output")); exists {
				log.Warnw("overwriting existing output", "path", cmd.String("output"))
			}
			if err := fs.WriteFile(cmd.String("output"), compressed); err != nil {
				return err
			}

			log.Infow("compressed",
				"input", cmd.String("input"),
				"output", cmd.String("output"),
				"original_bytes", len(data),
				"compressed_bytes", len(compressed),
			)
			return nil
		},
	}
}

func decompressCommand(log *zap.SugaredLogger) *cli.Command {
	return &cli.Command{
		Name:  "decompress",
		Usage: "Decompress a file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "Input file", Required: true},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			data, err := fs.ReadFile(cmd.String("input"))
			if err != nil {
				return err
			}

			r := brotli.NewReaderSize(bytes.NewReader(data), cfg.Codec.ChunkSize)
			restored, err := io.ReadAll(r)
			if cerr := r.Close(); cerr != nil && err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}

			if exists, _ := fs.Exists(cmd.String("output")); exists {
				log.Warnw("overwriting existing output", "path", cmd.String("output"))
			}
			if err := fs.WriteFile(cmd.String("output"), restored); err != nil {
				return err
			}

			log.Infow("decompressed",
				"input", cmd.String("input"),
				"output", cmd.String("output"),
				"compressed_bytes", len(data),
				"restored_bytes", len(restored),
			)
			return nil
		},
	}
}

func serveCommand(log *zap.SugaredLogger) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve a directory with brotli response encoding",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dir", Aliases: []string{"d"}, Value: ".", Usage: "Directory to serve"},
			&cli.StringFlag{Name: "addr", Usage: "Listen address (overrides config)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			addr := cfg.HTTP.Address
			if cmd.String("addr") != "" {
				addr = cmd.String("addr")
			}

			handler := middleware.Brotli(http.FileServer(http.Dir(cmd.String("dir"))), &middleware.Options{
				Quality:    cfg.Codec.Quality,
				WindowBits: cfg.Codec.WindowBits,
				MinSize:    cfg.HTTP.MinSize,
				ChunkSize:  cfg.Codec.ChunkSize,
				Logger:     log,
			})

			srv := &http.Server{Addr: addr, Handler: handler}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Infow("listening", "addr", addr, "dir", cmd.String("dir"))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
			defer cancel()

			return system.RunWithContext(shutdownCtx, srv.Shutdown)
		},
	}
}
