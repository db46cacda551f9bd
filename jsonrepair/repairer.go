// Package jsonrepair fixes malformed JSON such as text copied out of an LLM
// chat: single quotes, trailing commas, missing brackets and comments.
package jsonrepair

import (
	"github.com/fwojciec/coursegen"
	"github.com/kaptinlin/jsonrepair"
)

// Ensure Repairer implements coursegen.Repairer at compile time.
var _ coursegen.Repairer = (*Repairer)(nil)

// Repairer wraps kaptinlin/jsonrepair.
type Repairer struct{}

// NewRepairer creates a new Repairer.
func NewRepairer() *Repairer {
	return &Repairer{}
}

// Repair returns s rewritten as valid JSON.
// Returns EINVALID if s cannot be repaired.
func (r *Repairer) Repair(s string) (string, error) {
	repaired, err := jsonrepair.JSONRepair(s)
	if err != nil {
		return "", coursegen.Errorf(coursegen.EINVALID, "cannot repair JSON: %v", err)
	}
	return repaired, nil
}
