package model

import "strings"

// TagInfo is one named snapshot in a repository, as reported by the engine
type TagInfo struct {
	Name string
	Time string
}

// tagColumn is the width the engine pads tag names to in full listings
const tagColumn = 36

// ParseTagLine splits one line of the engine's full tag listing.
//
// The engine pads the tag name to a fixed column, then prints the creation
// timestamp. Tags are any user string, so the split is positional, not on
// whitespace.
func ParseTagLine(line string) TagInfo {
	line = strings.TrimRight(line, "\r\n")
	if len(line) <= tagColumn {
		return TagInfo{Name: strings.TrimRight(line, " ")}
	}
	return TagInfo{
		Name: strings.TrimRight(line[:tagColumn], " "),
		Time: strings.TrimSpace(line[tagColumn:]),
	}
}

func (t TagInfo) String() string {
	if t.Time == "" {
		return t.Name
	}
	// mirror the engine's own column layout
	name := t.Name
	if len(name) < tagColumn {
		name += strings.Repeat(" ", tagColumn-len(name))
	}
	return name + " " + t.Time
}
