package media

import (
	"bufio"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"thirdcoast.systems/reelscout/pkg/utils/markdown"
)

// CSVHeader is the column order of WriteCSV.
var CSVHeader = []string{"provider", "type", "preview", "download", "width", "height", "duration", "license", "attribution", "source_url"}

// WriteCSV writes items as comma separated lines. Values are not quoted;
// commas inside a value are replaced with spaces, which loses them.
func WriteCSV(w io.Writer, items []Item) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(CSVHeader, ",") + "\n"); err != nil {
		return err
	}
	for _, it := range items {
		fields := []string{
			it.Provider,
			it.Type,
			it.Preview,
			it.Download,
			optInt(it.Width),
			optInt(it.Height),
			optInt(it.Duration),
			it.License,
			it.Attribution,
			it.SourceURL,
		}
		for i, f := range fields {
			fields[i] = strings.ReplaceAll(f, ",", " ")
		}
		if _, err := bw.WriteString(strings.Join(fields, ",") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func optInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

// LicenseBlock renders the three line license note for an item.
func LicenseBlock(it Item) string {
	license := it.License
	if license == "" {
		license = "?"
	}
	return fmt.Sprintf("License: %s\nAttribution: %s\nSource: %s", license, it.Attribution, it.SourceURL)
}

// Credit is the attribution line pasted into a video description.
type Credit struct {
	Author  string `json:"author" validate:"required"`
	License string `json:"license" validate:"required"`
	Source  string `json:"source" validate:"required"`
	Changes string `json:"changes"`
}

// CreditFor builds the credit of an item.
func CreditFor(it Item) Credit {
	return Credit{Author: it.Attribution, License: it.License, Source: it.SourceURL}
}

// Line formats the credit as "Author — License. Source: URL", followed by
// " (Changes: ...)" when modifications are noted.
func (c Credit) Line() string {
	line := fmt.Sprintf("%s — %s. Source: %s", c.Author, c.License, c.Source)
	if changes := strings.TrimSpace(c.Changes); changes != "" {
		line += fmt.Sprintf(" (Changes: %s)", changes)
	}
	return line
}

// HTML renders the credit line with its source linked.
func (c Credit) HTML() template.HTML {
	return markdown.NewMarkdown(c.Line()).Render()
}

// CreditLine is shorthand for Credit{...}.Line().
func CreditLine(author, license, source, changes string) string {
	return Credit{Author: author, License: license, Source: source, Changes: changes}.Line()
}
