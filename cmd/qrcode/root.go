package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	qrcode "github.com/sidneycadot/qrcode-go"
	"github.com/sidneycadot/qrcode-go/qrerr"
	"github.com/sidneycadot/qrcode-go/render/png"
	"github.com/sidneycadot/qrcode-go/render/svg"
	"github.com/sidneycadot/qrcode-go/render/terminal"
	"github.com/sidneycadot/qrcode-go/segment"
)

// Exit codes, per the CLI's documented contract.
const (
	exitOK        = 0
	exitCapacity  = 2
	exitBadInput  = 3
	exitIOFailure = 4
)

var (
	flagPayload      string
	flagLevel        string
	flagVersion      int
	flagOutput       string
	flagPattern      int
	flagNoQuietZone  bool
	flagByteEncoding string
	flagScale        int
	flagOpen         bool
	flagTerminal     bool
)

var rootCmd = &cobra.Command{
	Use:   "qrcode",
	Short: "Encode a payload into a QR code symbol",
	RunE:  runEncode,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&flagPayload, "payload", "p", "", "text payload to encode (required)")
	flags.StringVarP(&flagLevel, "level", "l", "M", "error correction level: L, M, Q, or H")
	flags.IntVarP(&flagVersion, "version", "v", 0, "force a specific symbol version (1-40); 0 picks the smallest that fits")
	flags.StringVarP(&flagOutput, "output", "o", "", "output file path; extension (.png, .svg) selects the format")
	flags.IntVar(&flagPattern, "pattern", int(qrcode.PatternAuto), "force a data mask pattern (0-7); -1 selects automatically")
	flags.BoolVar(&flagNoQuietZone, "no-quiet-zone", false, "omit the light quiet zone border")
	flags.StringVar(&flagByteEncoding, "byte-encoding", "UTF-8", "character encoding for byte-mode segments: UTF-8, ISO-8859-1, ISO-8859-7")
	flags.IntVar(&flagScale, "scale", 8, "pixels per module for PNG output")
	flags.BoolVar(&flagOpen, "open", false, "open the rendered image in the default browser")
	flags.BoolVar(&flagTerminal, "terminal", false, "render to the terminal using half-block characters instead of writing a file")

	_ = rootCmd.MarkFlagRequired("payload")
}

func setupLogging() *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	return logger
}

func runEncode(cmd *cobra.Command, args []string) error {
	logger := setupLogging()

	level, ok := qrcode.LevelFromString(flagLevel)
	if !ok {
		logger.Error("invalid error correction level", "level", flagLevel)
		os.Exit(exitBadInput)
	}

	byteEnc, ok := segment.ByteEncodingByName(flagByteEncoding)
	if !ok {
		logger.Error("invalid byte encoding", "encoding", flagByteEncoding)
		os.Exit(exitBadInput)
	}

	quietZoneWidth := 4
	if flagNoQuietZone {
		quietZoneWidth = 0
	}

	opts := []qrcode.Option{
		qrcode.WithPattern(qrcode.Pattern(flagPattern)),
		qrcode.WithQuietZoneWidth(quietZoneWidth),
		qrcode.WithByteEncoding(byteEnc),
	}
	if flagVersion != 0 {
		opts = append(opts, qrcode.WithPreferences([]qrcode.VersionLevel{{Version: flagVersion, Level: level}}))
	}

	if flagTerminal {
		if err := terminal.Write(os.Stdout, flagPayload, level); err != nil {
			logger.Error("terminal render failed", "error", err)
			os.Exit(exitIOFailure)
		}
		return nil
	}

	sym, err := qrcode.Encode(flagPayload, level, opts...)
	if err != nil {
		var qerr *qrerr.Error
		if errors.As(err, &qerr) && qerr.Kind == qrerr.Capacity {
			logger.Error("payload does not fit any candidate version/level", "error", err)
			os.Exit(exitCapacity)
		}
		logger.Error("encode failed", "error", err)
		os.Exit(exitBadInput)
	}

	logger.Info("encoded symbol", "version", sym.Version, "level", sym.Level, "pattern", sym.Pattern, "size", sym.Size)

	if flagOutput == "" {
		fmt.Println(svg.Write(sym, false))
		return nil
	}

	if err := renderToFile(sym, flagOutput); err != nil {
		logger.Error("failed to write output", "path", flagOutput, "error", err)
		os.Exit(exitIOFailure)
	}

	if flagOpen {
		if err := browser.OpenFile(flagOutput); err != nil {
			logger.Error("failed to open output in browser", "error", err)
			os.Exit(exitIOFailure)
		}
	}

	return nil
}

func renderToFile(sym *qrcode.Symbol, path string) error {
	ext := fileExt(path)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ext {
	case ".png":
		return png.Write(f, sym, flagScale)
	case ".svg":
		_, err := f.WriteString(svg.Write(sym, true))
		return err
	default:
		return fmt.Errorf("qrcode: unrecognized output extension %q (want .png or .svg)", ext)
	}
}

func fileExt(path string) string {
	for i := len(path) - 1; i >= 0 && path[i] != '/'; i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

// Execute runs the root command, terminating the process on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
