// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// KnownEducation maps a match predicate to a pre-written education record.
// The rule matches an item when every string in Match occurs in it.
type KnownEducation struct {
	Match []string       `json:"match" yaml:"match" mapstructure:"match"`
	Entry EducationEntry `json:"entry" yaml:"entry" mapstructure:"entry"`
}

// KnownAppointment maps a match predicate to a pre-written appointment record.
type KnownAppointment struct {
	Match []string         `json:"match" yaml:"match" mapstructure:"match"`
	Entry AppointmentEntry `json:"entry" yaml:"entry" mapstructure:"entry"`
}

// KnownRecords is the recognize-and-substitute table used by the pattern
// extractor for the education and appointment sections.
type KnownRecords struct {
	// Strict drops items that match no rule. When false, unmatched items
	// are emitted as their literal parse instead.
	Strict bool `json:"strict" yaml:"strict" mapstructure:"strict"`

	Education    []KnownEducation   `json:"education" yaml:"education" mapstructure:"education"`
	Appointments []KnownAppointment `json:"appointments" yaml:"appointments" mapstructure:"appointments"`
}

// matchesAll reports whether every needle occurs in s. An empty needle
// list never matches.
func matchesAll(s string, needles []string) bool {
	if len(needles) == 0 {
		return false
	}
	for _, n := range needles {
		if !strings.Contains(s, n) {
			return false
		}
	}
	return true
}

// LookupEducation returns the first education rule matching item.
func (k KnownRecords) LookupEducation(item string) (EducationEntry, bool) {
	for _, r := range k.Education {
		if matchesAll(item, r.Match) {
			return r.Entry, true
		}
	}
	return EducationEntry{}, false
}

// LookupAppointment returns the first appointment rule matching item.
func (k KnownRecords) LookupAppointment(item string) (AppointmentEntry, bool) {
	for _, r := range k.Appointments {
		if matchesAll(item, r.Match) {
			return r.Entry, true
		}
	}
	return AppointmentEntry{}, false
}
