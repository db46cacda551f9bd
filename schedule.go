package coursegen

import (
	"regexp"
	"strings"
)

// ScheduleEntry is one row of the course schedule.
type ScheduleEntry struct {
	Date  string
	Type  string
	Topic string
	Notes string
	Due   string
}

// ParseSchedule converts schedule CSV rows into entries. Rows with fewer
// than five columns or without a date are skipped. Cells are trimmed.
func ParseSchedule(t *Table) []ScheduleEntry {
	var entries []ScheduleEntry
	for _, row := range t.Rows {
		if len(row) < 5 {
			continue
		}
		e := ScheduleEntry{
			Date:  strings.TrimSpace(row[0]),
			Type:  strings.TrimSpace(row[1]),
			Topic: strings.TrimSpace(row[2]),
			Notes: strings.TrimSpace(row[3]),
			Due:   strings.TrimSpace(row[4]),
		}
		if e.Date == "" {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

var (
	monthWordRe  = regexp.MustCompile(`[A-Za-z]+`)
	topicSlashRe = regexp.MustCompile(`\s*/\s*`)
)

var monthNames = map[string]string{
	"Jan": "January",
	"Feb": "February",
	"Mar": "March",
	"Apr": "April",
	"May": "May",
	"Jun": "June",
	"Jul": "July",
	"Aug": "August",
	"Sep": "September",
	"Oct": "October",
	"Nov": "November",
	"Dec": "December",
}

// MonthOf returns the month a date such as "Jan 10" falls in, spelled out.
// The first word of the date is used; words that are not a known
// abbreviation are returned unchanged. Returns "" if the date has no word.
func MonthOf(date string) string {
	word := monthWordRe.FindString(date)
	if full, ok := monthNames[word]; ok {
		return full
	}
	return word
}

// FormatTopic renders a topic cell as HTML. Slashes and newlines become
// <br> line breaks and every line starts with an upper-case letter.
func FormatTopic(topic string) string {
	s := topicSlashRe.ReplaceAllString(topic, "<br>")
	s = strings.ReplaceAll(s, "\n", "<br>")

	parts := strings.Split(s, "<br>")
	for i, part := range parts {
		parts[i] = upperFirst(strings.TrimSpace(part))
	}
	return strings.Join(parts, "<br>")
}

// RenderSchedule builds the schedule section fragment. A comment naming
// the month precedes the first entry of each month. Cell values are
// inserted as-is so authored markup is kept.
//
// The first line is not indented; the fragment replaces the section tag in
// place, after the host document's own indentation.
func RenderSchedule(entries []ScheduleEntry) string {
	lines := []string{
		`<section id="schedule">`,
		`        <h2>Schedule</h2>`,
		`        <div class="schedule-header schedule-row">`,
	}
	for _, label := range ScheduleHeader {
		lines = append(lines, `            <div>`+label+`</div>`)
	}
	lines = append(lines, `        </div>`)

	month := ""
	for _, e := range entries {
		if m := MonthOf(e.Date); m != "" && m != month {
			month = m
			lines = append(lines, "", `        <!-- `+month+` -->`)
		}
		lines = append(lines,
			`        <div class="schedule-row">`,
			`            <div class="schedule-date">`+e.Date+`</div>`,
			`            <div>`+e.Type+`</div>`,
			`            <div>`+FormatTopic(e.Topic)+`</div>`,
			`            <div>`+e.Notes+`</div>`,
			`            <div>`+e.Due+`</div>`,
			`        </div>`,
		)
	}

	lines = append(lines, `    </section>`)
	return strings.Join(lines, "\n")
}
