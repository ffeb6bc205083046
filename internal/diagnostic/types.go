package diagnostic

import (
	"cmp"
	"errors"
	"fmt"
	"go/token"
	"slices"
	"strings"

	"github.com/goccy/go-json"
)

// Diagnostic codes.
const (
	CodeUnknownTag    = "unknown-tag"
	CodeUnknownType   = "unknown-type"
	CodeUnknownMember = "unknown-member"
	CodeInvalidValue  = "invalid-value"
	CodeShadowedTag   = "shadowed-tag"
	CodeSummary       = "summary"
)

// Diagnostics holds all diagnostic information from a check.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity `json:"severity"`
	// Code is a unique identifier for this kind of diagnostic.
	Code string `json:"code"`
	// Message is the human-readable description.
	Message string `json:"message"`
	// Type is the qualified name of the type concerned (if any).
	Type string `json:"type,omitempty"`
	// Member is the field or method concerned (if any).
	Member string `json:"member,omitempty"`
	// Pos is where the offending tag is written (if known).
	Pos token.Position `json:"-"`
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// At returns a Diagnostic template for the given type, member and position.
func At(typeName, member string, pos token.Position) Diagnostic {
	return Diagnostic{Type: typeName, Member: member, Pos: pos}
}

// AddError adds an error diagnostic based on at.
func (d *Diagnostics) AddError(at Diagnostic, code, message string) {
	d.Errors = append(d.Errors, at.with(SeverityError, code, message))
}

// AddWarning adds a warning diagnostic based on at.
func (d *Diagnostics) AddWarning(at Diagnostic, code, message string) {
	d.Warnings = append(d.Warnings, at.with(SeverityWarning, code, message))
}

// AddInfo adds an info diagnostic based on at.
func (d *Diagnostics) AddInfo(at Diagnostic, code, message string) {
	d.Infos = append(d.Infos, at.with(SeverityInfo, code, message))
}

func (d Diagnostic) with(s Severity, code, message string) Diagnostic {
	d.Severity, d.Code, d.Message = s, code, message
	return d
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// HasWarnings returns true if there are any warning diagnostics.
func (d *Diagnostics) HasWarnings() bool {
	return len(d.Warnings) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Sort orders each severity by file, line and column.
func (d *Diagnostics) Sort() {
	for _, list := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		slices.SortStableFunc(list, compare)
	}
}

func compare(a, b Diagnostic) int {
	return cmp.Or(
		cmp.Compare(a.Pos.Filename, b.Pos.Filename),
		cmp.Compare(a.Pos.Line, b.Pos.Line),
		cmp.Compare(a.Pos.Column, b.Pos.Column),
		cmp.Compare(a.Type, b.Type),
		cmp.Compare(a.Member, b.Member),
	)
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	return slices.Concat(d.Errors, d.Warnings, d.Infos)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string:
//
//	file.go:12:2: error: [unknown-tag] pkg.Order.ID: "nope": unknown tag
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.Pos.IsValid() {
		b.WriteString(d.Pos.String())
		b.WriteString(": ")
	}

	b.WriteString(d.Severity.String())
	b.WriteString(": ")

	if d.Code != "" {
		fmt.Fprintf(&b, "[%s] ", d.Code)
	}

	if subject := d.Subject(); subject != "" {
		b.WriteString(subject)
		b.WriteString(": ")
	}

	b.WriteString(d.Message)

	return b.String()
}

// Subject returns "Type.Member", "Type" or "".
func (d Diagnostic) Subject() string {
	switch {
	case d.Member == "":
		return d.Type
	case d.Type == "":
		return d.Member
	default:
		return d.Type + "." + d.Member
	}
}

// report is the JSON form of a diagnostic, with the position flattened.
type report struct {
	Diagnostic
	File   string `json:"file,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

// MarshalJSON renders all diagnostics as one flat JSON array.
func (d Diagnostics) MarshalJSON() ([]byte, error) {
	all := d.All()
	out := make([]report, 0, len(all))

	for _, diag := range all {
		out = append(out, report{Diagnostic: diag, File: diag.Pos.Filename, Line: diag.Pos.Line, Column: diag.Pos.Column})
	}

	return json.Marshal(out)
}
