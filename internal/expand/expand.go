// Package expand builds the detail panel shown under an expanded row.
//
// A record is split into its flat fields, which the table already shows, and
// its nested fields, which become labeled sections. Sections are derived
// fresh on every call and hold no reference back to the view.
package expand

import (
	"strings"

	"github.com/rshade/recview/internal/record"
	"github.com/rshade/recview/internal/schema"
)

// DefaultIndent is one nesting level in rendered panels.
const DefaultIndent = "  "

// Entry is one labeled value in a section. Exactly one of Value or
// Children is meaningful: Children is non-nil for nested values.
type Entry struct {
	Label    string
	Value    string
	Children []Entry
}

// IsGroup reports whether the entry holds nested entries.
func (e Entry) IsGroup() bool { return e.Children != nil }

// Section is the expansion of one nested field of a record.
type Section struct {
	Title   string
	Entries []Entry
}

// Partition splits a record into scalar and nested fields, keeping key order.
//
//nolint:nonamedreturns // Named returns document the pair.
func Partition(r record.Record) (scalars, nested []record.Field) {
	for _, f := range r.Fields() {
		if f.Value.IsNested() {
			nested = append(nested, f)
		} else {
			scalars = append(scalars, f)
		}
	}
	return scalars, nested
}

// Expand returns one section per nested field of r. A record without
// nested fields yields no sections.
func Expand(r record.Record) []Section {
	_, nested := Partition(r)
	sections := make([]Section, 0, len(nested))
	for _, f := range nested {
		sections = append(sections, Section{
			Title:   schema.Capitalize(f.Key),
			Entries: entries(f.Value.Object()),
		})
	}
	return sections
}

func entries(obj *record.Object) []Entry {
	fields := obj.Fields()
	out := make([]Entry, 0, len(fields))
	for _, f := range fields {
		e := Entry{Label: schema.Capitalize(f.Key)}
		if f.Value.IsNested() {
			e.Children = entries(f.Value.Object())
		} else {
			e.Value = f.Value.String()
		}
		out = append(out, e)
	}
	return out
}

// Render flattens sections into text lines. Each section starts with its
// title; entries follow as "Label: value", one indent level deeper per
// nesting level.
func Render(sections []Section, indent string) []string {
	var lines []string
	for _, s := range sections {
		lines = append(lines, s.Title)
		lines = renderEntries(lines, s.Entries, indent, 1)
	}
	return lines
}

func renderEntries(lines []string, es []Entry, indent string, depth int) []string {
	prefix := strings.Repeat(indent, depth)
	for _, e := range es {
		if e.IsGroup() {
			lines = append(lines, prefix+e.Label+":")
			lines = renderEntries(lines, e.Children, indent, depth+1)
			continue
		}
		lines = append(lines, prefix+e.Label+": "+e.Value)
	}
	return lines
}

// Text is Render joined with newlines.
func Text(sections []Section) string {
	return strings.Join(Render(sections, DefaultIndent), "\n")
}
