// Package types provides type definitions for structured data used throughout the bill drafting assistant.
package types

import "strings"

// SectionID identifies one of the fixed structural parts of a bill.
type SectionID string

// Section identifiers, in document order.
const (
	SectionTitle       SectionID = "title"
	SectionPurpose     SectionID = "purpose"
	SectionDefinitions SectionID = "definitions"
	SectionProvisions  SectionID = "provisions"
	SectionFiscal      SectionID = "fiscal"
	SectionEnforcement SectionID = "enforcement"

	// SectionOverall targets feedback at the whole bill rather than one section.
	SectionOverall SectionID = "overall"
)

// Valid reports whether id names a bill section. SectionOverall is not a section.
func (id SectionID) Valid() bool {
	switch id {
	case SectionTitle, SectionPurpose, SectionDefinitions, SectionProvisions, SectionFiscal, SectionEnforcement:
		return true
	}
	return false
}

// Section describes one bill section: its identifier, display label and drafting guidance.
type Section struct {
	ID     SectionID `json:"id"`
	Label  string    `json:"label"`
	Prompt string    `json:"prompt"`
}

// Draft holds the in-progress text of every bill section.
// Every section always has a value; an unwritten section is the empty string.
type Draft struct {
	Title       string `json:"title"`
	Purpose     string `json:"purpose"`
	Definitions string `json:"definitions"`
	Provisions  string `json:"provisions"`
	Fiscal      string `json:"fiscal"`
	Enforcement string `json:"enforcement"`
}

// Get returns the raw text of a section. Unknown ids read as empty.
func (d Draft) Get(id SectionID) string {
	switch id {
	case SectionTitle:
		return d.Title
	case SectionPurpose:
		return d.Purpose
	case SectionDefinitions:
		return d.Definitions
	case SectionProvisions:
		return d.Provisions
	case SectionFiscal:
		return d.Fiscal
	case SectionEnforcement:
		return d.Enforcement
	}
	return ""
}

// With returns a copy of the draft with exactly one section replaced.
// An unknown id returns the draft unchanged.
func (d Draft) With(id SectionID, text string) Draft {
	switch id {
	case SectionTitle:
		d.Title = text
	case SectionPurpose:
		d.Purpose = text
	case SectionDefinitions:
		d.Definitions = text
	case SectionProvisions:
		d.Provisions = text
	case SectionFiscal:
		d.Fiscal = text
	case SectionEnforcement:
		d.Enforcement = text
	}
	return d
}

// IsEmpty reports whether a section holds only whitespace.
func (d Draft) IsEmpty(id SectionID) bool {
	return strings.TrimSpace(d.Get(id)) == ""
}
