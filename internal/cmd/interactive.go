package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// runInteractive fills any missing options by prompting on stdin,
// mirroring the flag surface. Empty answers keep the shown default.
func runInteractive(o *options) error {
	in := bufio.NewReader(os.Stdin)

	if o.data == "" {
		o.data = prompt(in, "Enter text or URL", "")
	}
	o.fgColor = prompt(in, "Foreground color (hex)", o.fgColor)
	o.bgColor = prompt(in, "Background color (hex)", o.bgColor)

	if confirm(in, "Use gradient?") {
		o.gradient = prompt(in, "Gradient colors (format: #ff0000,#0000ff)", o.gradient)
	}

	o.dotStyle = choose(in, "Dot style", []string{"square", "circle", "rounded"}, o.dotStyle)
	o.eyeStyle = choose(in, "Eye style", []string{"square", "circle", "frame"}, o.eyeStyle)

	if confirm(in, "Add logo?") {
		o.logo = prompt(in, "Logo path", o.logo)
		o.logoSize = promptFloat(in, "Logo size ratio (0.1 to 0.4)", o.logoSize)
	}

	o.errorLevel = choose(in, "Error correction level", []string{"L", "M", "Q", "H"}, o.errorLevel)
	o.size = promptInt(in, "Image size (pixels)", o.size)
	o.output = prompt(in, "Output file path", o.output)
	return nil
}

func prompt(in *bufio.Reader, label, def string) string {
	if def != "" {
		fmt.Printf("%s [%s]: ", label, def)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, _ := in.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

func confirm(in *bufio.Reader, label string) bool {
	fmt.Printf("%s [y/N]: ", label)
	line, _ := in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func choose(in *bufio.Reader, label string, items []string, def string) string {
	fmt.Printf("%s (%s) [%s]: ", label, strings.Join(items, "/"), def)
	line, _ := in.ReadString('\n')
	line = strings.TrimSpace(line)
	for _, it := range items {
		if strings.EqualFold(line, it) {
			return it
		}
	}
	return def
}

func promptInt(in *bufio.Reader, label string, def int) int {
	if v, err := strconv.Atoi(prompt(in, label, strconv.Itoa(def))); err == nil {
		return v
	}
	return def
}

func promptFloat(in *bufio.Reader, label string, def float64) float64 {
	if v, err := strconv.ParseFloat(prompt(in, label, strconv.FormatFloat(def, 'g', -1, 64)), 64); err == nil {
		return v
	}
	return def
}
