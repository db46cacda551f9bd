package coursegen

import (
	"slices"
	"strings"
)

// LineSeparator is appended to a cell's text for each line-break token.
const LineSeparator = "\n"

// TokenMatcher reports whether a tag token marks a boundary.
type TokenMatcher func(tok Token) bool

// MatchTag matches tags with the given name.
func MatchTag(name string) TokenMatcher {
	return func(tok Token) bool {
		return tok.Name == name
	}
}

// MatchID matches tags with the given name and id attribute.
func MatchID(name, id string) TokenMatcher {
	return func(tok Token) bool {
		v, ok := tok.Attr("id")
		return tok.Name == name && ok && v == id
	}
}

// MatchClass matches tags with the given name whose class list contains
// class.
func MatchClass(name, class string) TokenMatcher {
	return func(tok Token) bool {
		return tok.Name == name && tok.HasClass(class)
	}
}

// Markers configures how the extractor recognizes the region, rows and
// cells of a tabular layout. A nil matcher never matches.
type Markers struct {
	// Region matches the start tag that opens the region.
	Region TokenMatcher

	// Row matches a container start tag that opens a row directly under
	// the region.
	Row TokenMatcher

	// Container matches tags that count toward row and cell depth. Direct
	// children of a row are cells.
	Container TokenMatcher

	// LineBreak matches self-closing tags that become LineSeparator inside
	// a cell.
	LineBreak TokenMatcher
}

// ScheduleMarkers recognizes the course schedule layout:
// <section id="schedule"> holding <div class="schedule-row"> rows whose
// child divs are cells.
var ScheduleMarkers = Markers{
	Region:    MatchID("section", "schedule"),
	Row:       MatchClass("div", "schedule-row"),
	Container: MatchTag("div"),
	LineBreak: MatchTag("br"),
}

// Phase is the extractor's position relative to the region, row and cell.
type Phase int

// Phase constants.
const (
	PhaseOutside Phase = iota
	PhaseRegion
	PhaseRow
	PhaseCell
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseOutside:
		return "outside"
	case PhaseRegion:
		return "region"
	case PhaseRow:
		return "row"
	case PhaseCell:
		return "cell"
	default:
		return "unknown"
	}
}

// ScanState is the extractor's state between tokens. The zero value is
// the initial state, outside the region.
type ScanState struct {
	Phase Phase

	// RegionTag is the tag name of the open region. RegionDepth counts
	// open tags of that name since the region started, so only the
	// region's own closing tag ends it.
	RegionTag   string
	RegionDepth int

	// RowDepth counts open containers since the row boundary, starting at
	// 1 for the row itself. CellDepth does the same for the cell.
	RowDepth  int
	CellDepth int

	// Row holds the finished cells of the open row and Cell the text
	// fragments of the open cell.
	Row  []string
	Cell []string
}

// Transition advances the state by one token. It returns the new state and
// the row completed by this token, if any. Slices reachable from the input
// state are never modified, so earlier states stay valid.
func (m Markers) Transition(s ScanState, tok Token) (ScanState, []string) {
	if s.Phase == PhaseOutside {
		if tok.Kind == StartTagToken && match(m.Region, tok) {
			return ScanState{Phase: PhaseRegion, RegionTag: tok.Name, RegionDepth: 1}, nil
		}
		return s, nil
	}

	switch tok.Kind {
	case StartTagToken:
		return m.start(s, tok), nil
	case EndTagToken:
		return m.end(s, tok)
	case SelfClosingTagToken:
		if s.Phase == PhaseCell && match(m.LineBreak, tok) {
			s.Cell = appendClone(s.Cell, LineSeparator)
		}
	case TextToken:
		if s.Phase == PhaseCell {
			s.Cell = appendClone(s.Cell, CollapseSpace(tok.Data))
		}
	}
	return s, nil
}

func (m Markers) start(s ScanState, tok Token) ScanState {
	if tok.Name == s.RegionTag {
		s.RegionDepth++
	}
	if !match(m.Container, tok) {
		return s
	}

	switch s.Phase {
	case PhaseRegion:
		if match(m.Row, tok) {
			s.Phase = PhaseRow
			s.RowDepth = 1
			s.Row = nil
		}
	case PhaseRow:
		s.RowDepth++
		if s.RowDepth == 2 {
			s.Phase = PhaseCell
			s.CellDepth = 1
			s.Cell = nil
		}
	case PhaseCell:
		s.RowDepth++
		s.CellDepth++
	}
	return s
}

func (m Markers) end(s ScanState, tok Token) (ScanState, []string) {
	if tok.Name == s.RegionTag {
		s.RegionDepth--
		if s.RegionDepth <= 0 {
			// Any open row or cell is discarded with the region.
			return ScanState{}, nil
		}
	}
	if !match(m.Container, tok) || (s.Phase != PhaseRow && s.Phase != PhaseCell) {
		return s, nil
	}

	if s.Phase == PhaseCell {
		if s.CellDepth > 1 {
			s.CellDepth--
		} else {
			s.Row = appendClone(s.Row, strings.TrimSpace(strings.Join(s.Cell, "")))
			s.Phase = PhaseRow
			s.CellDepth = 0
			s.Cell = nil
		}
	}

	s.RowDepth--
	if s.RowDepth > 0 {
		return s, nil
	}

	row := s.Row
	s.Phase = PhaseRegion
	s.RowDepth = 0
	s.Row = nil
	if len(row) == 0 {
		return s, nil
	}
	return s, slices.Clone(row)
}

// Extract runs the tokens through the extractor and returns the completed
// rows in document order. Malformed markup never fails: unbalanced closing
// tags are absorbed and rows left open are dropped.
func (m Markers) Extract(tokens []Token) [][]string {
	var (
		state ScanState
		rows  [][]string
	)
	for _, tok := range tokens {
		var row []string
		state, row = m.Transition(state, tok)
		if row != nil {
			rows = append(rows, row)
		}
	}
	return rows
}

// Extract extracts schedule rows using ScheduleMarkers.
func Extract(tokens []Token) [][]string {
	return ScheduleMarkers.Extract(tokens)
}

func match(f TokenMatcher, tok Token) bool {
	return f != nil && f(tok)
}

// appendClone appends v to a fresh copy of s.
func appendClone(s []string, v string) []string {
	return append(s[:len(s):len(s)], v)
}
