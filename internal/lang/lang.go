// Package lang maps file extensions to their comment syntax.
package lang

// Profile describes how comments look in one language. An empty marker
// means the language has no such comment form.
type Profile struct {
	SingleLine string
	BlockStart string
	BlockEnd   string
}

// HasBlock reports whether both block markers are configured.
func (p Profile) HasBlock() bool {
	return p.BlockStart != "" && p.BlockEnd != ""
}

var (
	cStyle    = Profile{SingleLine: "//", BlockStart: "/*", BlockEnd: "*/"}
	hashStyle = Profile{SingleLine: "#"}
	sqlStyle  = Profile{SingleLine: "--", BlockStart: "/*", BlockEnd: "*/"}
	markup    = Profile{BlockStart: "<!--", BlockEnd: "-->"}
	cssStyle  = Profile{BlockStart: "/*", BlockEnd: "*/"}
)

// profiles is keyed by the extension including the leading dot. Lookups
// are case-sensitive.
var profiles = map[string]Profile{
	".go":     cStyle,
	".js":     cStyle,
	".mjs":    cStyle,
	".cjs":    cStyle,
	".jsx":    cStyle,
	".ts":     cStyle,
	".tsx":    cStyle,
	".java":   cStyle,
	".kt":     cStyle,
	".kts":    cStyle,
	".scala":  cStyle,
	".c":      cStyle,
	".h":      cStyle,
	".cc":     cStyle,
	".cpp":    cStyle,
	".hpp":    cStyle,
	".cs":     cStyle,
	".rs":     cStyle,
	".swift":  cStyle,
	".dart":   cStyle,
	".php":    cStyle,
	".proto":  cStyle,
	".scss":   cStyle,
	".less":   cStyle,
	".css":    cssStyle,
	".py":     hashStyle,
	".sh":     hashStyle,
	".bash":   hashStyle,
	".zsh":    hashStyle,
	".yaml":   hashStyle,
	".yml":    hashStyle,
	".toml":   hashStyle,
	".r":      hashStyle,
	".pl":     hashStyle,
	".rb":     {SingleLine: "#", BlockStart: "=begin", BlockEnd: "=end"},
	".ex":     hashStyle,
	".exs":    hashStyle,
	".sql":    sqlStyle,
	".lua":    {SingleLine: "--", BlockStart: "--[[", BlockEnd: "]]"},
	".hs":     {SingleLine: "--", BlockStart: "{-", BlockEnd: "-}"},
	".html":   markup,
	".htm":    markup,
	".xml":    markup,
	".svg":    markup,
	".vue":    markup,
	".svelte": markup,
	".md":     markup,
	".ps1":    {SingleLine: "#", BlockStart: "<#", BlockEnd: "#>"},
	".bat":    {SingleLine: "REM"},
	".ini":    {SingleLine: ";"},
	".vim":    {SingleLine: `"`},
}

// For returns the profile registered for ext, or the zero Profile when the
// extension is unknown. The zero Profile strips no comments.
func For(ext string) Profile {
	return profiles[ext]
}

// Known reports whether ext has a registered profile.
func Known(ext string) bool {
	_, ok := profiles[ext]
	return ok
}
