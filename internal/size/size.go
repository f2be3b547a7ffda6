// Package size maps a total line count to a project size category.
package size

// Category is an ordinal size class; larger values mean larger projects.
type Category int

const (
	Tiny Category = iota
	Compact
	Growing
	WellStructured
	Robust
	Complex
	Massive
)

// Categories lists every category in ascending order.
var Categories = []Category{Tiny, Compact, Growing, WellStructured, Robust, Complex, Massive}

// upper bounds are exclusive; Massive has none.
var upperBounds = []int{500, 2000, 5000, 10000, 20000, 50000}

type meta struct {
	name  string
	title string
	color string
}

var metas = map[Category]meta{
	Tiny:           {name: "tiny", title: "Tiny scriptlet 💡", color: "green"},
	Compact:        {name: "compact", title: "Compact utility 🛠️", color: "yellow"},
	Growing:        {name: "growing", title: "Growing codebase 🏗️", color: "blue"},
	WellStructured: {name: "well-structured", title: "Well-structured project ⚙️", color: "magenta"},
	Robust:         {name: "robust", title: "Robust system 🔬", color: "cyan"},
	Complex:        {name: "complex", title: "Complex software 🏢", color: "red"},
	Massive:        {name: "massive", title: "Massive code empire 🌌", color: "red"},
}

// Label returns the category for totalLines. Negative input is treated as 0.
func Label(totalLines int) Category {
	for i, bound := range upperBounds {
		if totalLines < bound {
			return Category(i)
		}
	}
	return Massive
}

func (c Category) String() string {
	if m, ok := metas[c]; ok {
		return m.name
	}
	return "unknown"
}

// Title is the human-readable label shown in reports.
func (c Category) Title() string {
	return metas[c].title
}

// Color is the HTML color name used by the basic report.
func (c Category) Color() string {
	return metas[c].color
}
