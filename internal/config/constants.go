package config

import "time"

const (
	ConfigFileName = "clines.json"
	ReadmeFileName = "README.md"
	StateDirName   = ".clines"
	DBFileName     = "history.db"

	// NoExtension is the bucket for files without a suffix.
	NoExtension = "no_ext"

	PlaceholderStart = "<!-- LINE_COUNT_PLACEHOLDER_1 -->"
	PlaceholderEnd   = "<!-- LINE_COUNT_PLACEHOLDER_2 -->"
)

var DefaultIgnoreDirs = []string{
	".git",
	".svn",
	".hg",
	"node_modules",
	"vendor",
	"dist",
	"build",
	"out",
	"target",
	"coverage",
	"__pycache__",
	".idea",
	".vscode",
	".next",
	StateDirName,
}

var DefaultIgnoreFiles = []string{
	".log",
	".lock",
	".DS_Store",
	"package-lock.json",
	"go.sum",
	ConfigFileName,
}

// BinaryAssetSuffixes are skipped by the extended variant regardless of
// configuration.
var BinaryAssetSuffixes = []string{
	".png", ".jpg", ".jpeg", ".gif", ".bmp", ".ico", ".webp",
	".pdf", ".zip", ".gz", ".tar", ".tgz", ".7z", ".rar",
	".exe", ".dll", ".so", ".dylib", ".a", ".o", ".class", ".jar", ".wasm",
	".woff", ".woff2", ".ttf", ".otf", ".eot",
	".mp3", ".mp4", ".mov", ".wav", ".avi",
	".db", ".sqlite",
}

const (
	DefaultWatchDebounce = 3 * time.Second
	DefaultServeAddr     = "127.0.0.1:7878"
	DefaultCacheSize     = 4096
)
