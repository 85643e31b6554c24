package cmd

import (
	"os"

	"github.com/runger/ttycap/pkg/ttycap"
)

// ANSI color codes for terminal output.
// These are reset by applyColorMode once the backend is known.
var (
	colorGreen = "\033[0;32m"
	colorCyan  = "\033[0;36m"
	colorDim   = "\033[2m"
	colorBold  = "\033[1m"
	colorReset = "\033[0m"
)

// colorMode is auto, always, or never.
var colorMode = "auto"

func applyColorMode(b ttycap.Backend) {
	switch colorMode {
	case "always":
		enableColors()
	case "never":
		disableColors()
	default:
		if shouldDisableColors(b) {
			disableColors()
		} else {
			enableColors()
		}
	}
}

func shouldDisableColors(b ttycap.Backend) bool {
	// Check NO_COLOR environment variable (https://no-color.org/)
	if os.Getenv("NO_COLOR") != "" {
		return true
	}

	if os.Getenv("TERM") == "dumb" {
		return true
	}

	return !ttycap.IsTTY(b, ttycap.Stdout)
}

func enableColors() {
	colorGreen = "\033[0;32m"
	colorCyan = "\033[0;36m"
	colorDim = "\033[2m"
	colorBold = "\033[1m"
	colorReset = "\033[0m"
}

func disableColors() {
	colorGreen = ""
	colorCyan = ""
	colorDim = ""
	colorBold = ""
	colorReset = ""
}
