package cmd

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	qrterminal "github.com/mdp/qrterminal/v3"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/qrforge/qrforge"
	"github.com/qrforge/qrforge/internal/logging"
	"github.com/qrforge/qrforge/writer/styled"
)

// run executes the full pipeline: build config, encode, render, write.
func run(o *options) error {
	log := logging.L()

	if o.data == "" {
		return errors.New("data is required, use --data or --interactive")
	}

	data := o.data
	if o.encodeB64 {
		data = base64.StdEncoding.EncodeToString([]byte(data))
	}

	cfg, err := buildStyleConfig(o)
	if err != nil {
		return err
	}

	level := qrforge.ParseLevel(o.errorLevel)
	var matrix *qrforge.Matrix
	if o.qrVersion != 0 {
		matrix, err = qrforge.EncodeWithVersion(data, o.qrVersion, level)
	} else {
		matrix, err = qrforge.Encode(data, level)
	}
	if err != nil {
		return err
	}
	log.Debug("encoded",
		zap.Int("modules", matrix.Width()),
		zap.String("level", level.String()))

	if o.show {
		printTerminal(data, level)
	}

	out, err := styled.Render(matrix, cfg)
	if err != nil {
		return err
	}

	if err := writeOutput(out, o.output, cfg.Format); err != nil {
		return err
	}
	fmt.Println("✓ QR code saved to:", o.output)

	if o.copyPath {
		if err := clipboard.WriteAll(o.output); err != nil {
			fmt.Fprintln(os.Stderr, "⚠ Failed to copy to clipboard:", err)
		} else {
			fmt.Println("✓ Path copied to clipboard")
		}
	}
	return nil
}

func buildStyleConfig(o *options) (styled.StyleConfig, error) {
	var cfg styled.StyleConfig

	bg, err := styled.ParseColor(o.bgColor)
	if err != nil {
		return cfg, err
	}
	fg, err := styled.ParseColor(o.fgColor)
	if err != nil {
		return cfg, err
	}

	cfg = styled.StyleConfig{
		Size:       o.size,
		Border:     o.border,
		Background: bg,
		Foreground: fg,
		Dot:        styled.ParseDotStyle(strings.ToLower(o.dotStyle)),
		Eye:        styled.ParseEyeStyle(strings.ToLower(o.eyeStyle)),
		LogoPath:   o.logo,
		LogoRatio:  o.logoSize,
		Format:     strings.ToLower(o.format),
	}

	if o.gradient != "" {
		grad, err := styled.ParseGradient(o.gradient)
		if err != nil {
			return cfg, err
		}
		cfg.Gradient = grad
	}

	if _, err := styled.ParseFormat(cfg.Format); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func writeOutput(out *styled.Output, path, format string) error {
	fd, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %q", path)
	}
	defer fd.Close()

	if format == "svg" {
		_, err = fd.WriteString(out.SVG)
		return errors.Wrapf(err, "write %q", path)
	}
	return styled.Write(fd, out.Image, format)
}

func printTerminal(data string, level qrforge.Level) {
	qrLevel := qrterminal.M
	switch level {
	case qrforge.LevelL:
		qrLevel = qrterminal.L
	case qrforge.LevelQ, qrforge.LevelH:
		qrLevel = qrterminal.H
	}
	fmt.Println("\nQR Code:")
	qrterminal.GenerateHalfBlock(data, qrLevel, os.Stdout)
	fmt.Println()
}
