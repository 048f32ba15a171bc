// Package cmd implements the qrforge command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/qrforge/qrforge/internal/logging"
)

type options struct {
	data        string
	output      string
	format      string
	bgColor     string
	fgColor     string
	gradient    string
	dotStyle    string
	eyeStyle    string
	logo        string
	logoSize    float64
	errorLevel  string
	size        int
	border      int
	qrVersion   int
	show        bool
	copyPath    bool
	encodeB64   bool
	interactive bool
	verbose     bool
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "qrforge",
	Short: "Generate QR codes with custom styling",
	Long: `qrforge encodes text into QR codes and renders them with styled
modules (square, circle, rounded), styled finder patterns (square,
circle, frame), optional color gradients and an optional centered logo,
writing raster or SVG output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PreRun: func(cmd *cobra.Command, args []string) {
		logging.Initialize(opts.verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		applyConfigDefaults(cmd)
		if opts.interactive {
			if err := runInteractive(&opts); err != nil {
				return err
			}
		}
		return run(&opts)
	},
}

// Execute runs the CLI. Any error prints a diagnostic on stderr and
// exits non-zero.
func Execute() {
	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&opts.data, "data", "d", "", "text or URL to encode")
	f.StringVarP(&opts.output, "output", "o", "qrcode.png", "output file path")
	f.StringVarP(&opts.format, "format", "f", "png", "output format (png, jpg, jpeg, svg, webp, tiff, tif, ico, bmp, gif, tga, avif, qoi)")
	f.StringVar(&opts.bgColor, "bg-color", "#ffffff", "background color (CSS literal or \"transparent\")")
	f.StringVar(&opts.fgColor, "fg-color", "#000000", "foreground color")
	f.StringVarP(&opts.gradient, "gradient", "g", "", "gradient colors, e.g. \"#ff0000,#0000ff\"")
	f.StringVar(&opts.dotStyle, "dot-style", "square", "dot style (square, circle, rounded)")
	f.StringVar(&opts.eyeStyle, "eye-style", "square", "eye style (square, circle, frame)")
	f.StringVarP(&opts.logo, "logo", "l", "", "logo file path")
	f.Float64Var(&opts.logoSize, "logo-size", 0.2, "logo size ratio, clamped to [0.1, 0.4]")
	f.StringVarP(&opts.errorLevel, "error", "e", "M", "error correction level (L, M, Q, H)")
	f.IntVarP(&opts.size, "size", "s", 300, "QR code size in pixels")
	f.IntVarP(&opts.border, "border", "b", 4, "border size in modules (quiet zone)")
	f.IntVarP(&opts.qrVersion, "qr-version", "v", 0, "force QR version (1-40)")
	f.BoolVar(&opts.show, "show", false, "print the QR code to the terminal")
	f.BoolVar(&opts.copyPath, "copy", false, "copy the output path to the clipboard")
	f.BoolVar(&opts.encodeB64, "encode", false, "base64-encode the data before generating")
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "interactive mode")
	f.BoolVar(&opts.verbose, "verbose", false, "verbose logging")

	initConfigFile()
}

// initConfigFile wires viper: ~/.qrforge.yaml and QRFORGE_* environment
// variables provide defaults that explicit flags override.
func initConfigFile() {
	viper.SetConfigName(".qrforge")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("qrforge")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// applyConfigDefaults backfills flag values that the user did not set
// explicitly from the viper config.
func applyConfigDefaults(cmd *cobra.Command) {
	flags := cmd.Flags()
	for _, name := range []string{
		"format", "bg-color", "fg-color", "gradient", "dot-style",
		"eye-style", "logo", "logo-size", "error", "size", "border",
	} {
		if !flags.Changed(name) && viper.IsSet(name) {
			_ = flags.Set(name, viper.GetString(name))
		}
	}
}
