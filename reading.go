package coursegen

import (
	"slices"
	"strconv"
	"strings"
)

// unknownYear sorts readings without a numeric year last.
const unknownYear = 9999

// Reading is one entry of the reading list.
type Reading struct {
	Filename    string
	Questions   [3]string
	Writer      string
	Year        string
	Length      string
	KeyConcepts string
}

// Title derives a display title from the file name: ".pdf" is removed and
// underscores become spaces.
func (r Reading) Title() string {
	title := strings.ReplaceAll(r.Filename, ".pdf", "")
	return strings.ReplaceAll(title, "_", " ")
}

// SortYear returns the publication year used for ordering.
func (r Reading) SortYear() int {
	y := strings.TrimSpace(r.Year)
	if y == "" || strings.TrimLeft(y, "0123456789") != "" {
		return unknownYear
	}
	n, err := strconv.Atoi(y)
	if err != nil {
		return unknownYear
	}
	return n
}

// ParseReadings converts readings CSV rows into readings ordered by year.
// The columns are filename, three guide questions, writer, year, page
// length and key concepts; rows with fewer columns are skipped. Readings
// from the same year keep their file order.
func ParseReadings(t *Table) []Reading {
	var readings []Reading
	for _, row := range t.Rows {
		if len(row) < 8 {
			continue
		}
		readings = append(readings, Reading{
			Filename: strings.TrimSpace(row[0]),
			Questions: [3]string{
				strings.TrimSpace(row[1]),
				strings.TrimSpace(row[2]),
				strings.TrimSpace(row[3]),
			},
			Writer:      strings.TrimSpace(row[4]),
			Year:        strings.TrimSpace(row[5]),
			Length:      strings.TrimSpace(row[6]),
			KeyConcepts: strings.TrimSpace(row[7]),
		})
	}
	slices.SortStableFunc(readings, func(a, b Reading) int {
		return a.SortYear() - b.SortYear()
	})
	return readings
}

// RenderReadings builds the reading-list section fragment. Guide questions
// are shown in a collapsible block when at least one is present.
func RenderReadings(readings []Reading) string {
	lines := []string{
		`<section id="readings">`,
		`        <h2>Reading List</h2>`,
		`        <ul class="resource-list">`,
	}

	for _, r := range readings {
		lines = append(lines,
			`            <li class="reading-item">`,
			`                <div class="reading-header"><strong>`+r.Title()+`</strong> (`+r.Year+`) - `+r.Writer+`</div>`,
			`                <div class="reading-meta"><em>Keywords: `+r.KeyConcepts+`</em> | Length: `+r.Length+` pages</div>`,
		)

		if r.Questions != [3]string{} {
			lines = append(lines,
				`                <details>`,
				`                    <summary>Reading Guide Questions</summary>`,
				`                    <ul>`,
			)
			for _, q := range r.Questions {
				if q != "" {
					lines = append(lines, `                        <li>`+q+`</li>`)
				}
			}
			lines = append(lines,
				`                    </ul>`,
				`                </details>`,
			)
		}

		lines = append(lines, `            </li>`)
	}

	lines = append(lines,
		`        </ul>`,
		`    </section>`,
	)
	return strings.Join(lines, "\n")
}
