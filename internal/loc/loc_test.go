package loc

import (
	"testing"

	"github.com/prittamravi/clines/internal/lang"
	"github.com/stretchr/testify/assert"
)

func TestCountLOC(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		want     int
	}{
		{name: "go comments", filename: "main.go", content: "package main\n\n// comment\nfunc main() {}\n", want: 2},
		{name: "python", filename: "app.py", content: "# comment\n\nx = 1\n", want: 1},
		{name: "js block comment", filename: "app.js", content: "/* a\nb */\ncode();\n", want: 1},
		{name: "crlf line endings", filename: "app.js", content: "// c\r\nx();\r\n\r\ny();\r\n", want: 2},
		{name: "unknown extension keeps comment-like lines", filename: "data.txt", content: "a\n\n# b\n// c\n", want: 3},
		{name: "empty", filename: "main.go", content: "", want: 0},
		{name: "only blank lines", filename: "main.go", content: "\n   \n\t\n", want: 0},
		{name: "case-sensitive extension", filename: "MAIN.GO", content: "// x\ny\n", want: 2},
		{name: "html block", filename: "index.html", content: "<!-- header\n-->\n<div></div>\n", want: 1},
		{name: "sql single line", filename: "q.sql", content: "-- c\nSELECT 1;\n", want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountLOC(tt.filename, tt.content))
		})
	}
}

func TestCountBlankOnlyIgnoresProfile(t *testing.T) {
	profiles := []lang.Profile{
		{},
		lang.For(".go"),
		lang.For(".py"),
		lang.For(".html"),
	}
	for _, p := range profiles {
		assert.Zero(t, Count("\n\n  \n\t\t\n", p))
	}
}

func TestCountSameLineBlockIsNeverCounted(t *testing.T) {
	p := lang.For(".go")

	// The opening line is skipped even though code follows the closing marker.
	assert.Equal(t, 1, Count("/* note */ x := 1\ny := 2\n", p))
}

func TestCountBlockStateSpansLines(t *testing.T) {
	p := lang.For(".c")
	content := "int a;\n/*\n * doc\n\n * more\n */\nint b;\n"
	assert.Equal(t, 2, Count(content, p))
}

func TestCountUnterminatedBlockSwallowsRest(t *testing.T) {
	p := lang.For(".js")
	assert.Equal(t, 1, Count("a();\n/* open\nb();\nc();\n", p))
}

func TestCountMarkerInsideStringIsNotSpecial(t *testing.T) {
	p := lang.For(".js")
	assert.Equal(t, 1, Count("const s = \"/*\";\nx();\ny(); */\nz();\n", p))
}
