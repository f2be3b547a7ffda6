package cli

import "os"

type palette struct {
	enabled bool
}

func newPalette(noColor bool) palette {
	if noColor {
		return palette{enabled: false}
	}
	if os.Getenv("NO_COLOR") != "" {
		return palette{enabled: false}
	}
	if term := os.Getenv("TERM"); term == "" || term == "dumb" {
		return palette{enabled: false}
	}
	info, err := os.Stdout.Stat()
	if err != nil {
		return palette{enabled: false}
	}
	if info.Mode()&os.ModeCharDevice == 0 {
		return palette{enabled: false}
	}
	return palette{enabled: true}
}

var ansiCodes = map[string]string{
	"red":     "31",
	"green":   "32",
	"yellow":  "33",
	"blue":    "34",
	"magenta": "35",
	"cyan":    "36",
}

func (p palette) wrap(code string, text string) string {
	if !p.enabled || code == "" {
		return text
	}
	return "\x1b[" + code + "m" + text + "\x1b[0m"
}

// color wraps text in the ANSI code for a size category color name.
func (p palette) color(name string, text string) string {
	return p.wrap(ansiCodes[name], text)
}

func (p palette) dim(text string) string {
	return p.wrap("2", text)
}

func (p palette) bold(text string) string {
	return p.wrap("1", text)
}
