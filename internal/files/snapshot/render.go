package snapshot

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// Render draws entry and its descendants as an indented tree, one line
// per entry, with human-readable sizes.
//
//	docs/ (1.2 kB)
//	├── guide/ (1.0 kB)
//	│   └── intro.md (1.0 kB)
//	└── readme.txt (200 B)
func Render(entry Entry) string {
	var sb strings.Builder
	sb.WriteString(label(entry))
	sb.WriteString("\n")

	if d, ok := entry.(*Directory); ok {
		renderChildren(&sb, d, "")
	}
	return sb.String()
}

func renderChildren(sb *strings.Builder, d *Directory, indent string) {
	for i, child := range d.children {
		last := i == len(d.children)-1

		branch, next := "├── ", "│   "
		if last {
			branch, next = "└── ", "    "
		}

		sb.WriteString(indent)
		sb.WriteString(branch)
		sb.WriteString(label(child))
		sb.WriteString("\n")

		if sub, ok := child.(*Directory); ok {
			renderChildren(sb, sub, indent+next)
		}
	}
}

func label(entry Entry) string {
	name := entry.Name()
	if entry.IsDir() {
		name += "/"
	}
	return name + " (" + humanize.Bytes(uint64(entry.Size())) + ")"
}
