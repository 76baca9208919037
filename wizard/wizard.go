// SPDX-License-Identifier: GPL-3.0-only

// Package wizard drives multi-step forms: a finite state machine over steps 1..N whose
// forward transitions are guarded by the fields each step owns.
package wizard

import (
	"encoding/json"
	"errors"
	"fmt"

	"scratchcard-server/validation"
)

var (
	ErrSubmitted      = errors.New("wizard has already been submitted")
	ErrLastStep       = errors.New("wizard is already on its last step")
	ErrNotLastStep    = errors.New("wizard can only be submitted from its last step")
	ErrDraftVersion   = errors.New("draft was saved with an incompatible version")
	ErrDraftFlow      = errors.New("draft belongs to a different flow")
	ErrStepOutOfRange = errors.New("draft step is out of range")
)

// Checker validates a whole form value. *validation.Validator implements it.
type Checker interface {
	Check(i any) validation.FieldErrors
}

type Step struct {
	Name   string
	Fields []string
}

type Flow struct {
	Name  string
	Steps []Step
}

var OrderFlow = Flow{
	Name: "order",
	Steps: []Step{
		{Name: "contact", Fields: []string{"full_name", "email", "phone", "organization", "delivery_address"}},
		{Name: "items", Fields: []string{"items"}},
		{Name: "review"},
	},
}

var RedemptionFlow = Flow{
	Name: "redemption",
	Steps: []Step{
		{Name: "card", Fields: []string{"serial_number", "card_code"}},
		{Name: "identity", Fields: []string{"full_name", "phone", "bvn", "nin"}},
		{Name: "bank", Fields: []string{"bank_name", "account_number", "account_name"}},
		{Name: "review"},
	},
}

type Machine[T any] struct {
	flow      Flow
	checker   Checker
	step      int
	submitted bool
	values    T
}

func New[T any](flow Flow, checker Checker) *Machine[T] {
	return &Machine[T]{flow: flow, checker: checker, step: 1}
}

func (m *Machine[T]) Flow() Flow       { return m.flow }
func (m *Machine[T]) Step() int        { return m.step }
func (m *Machine[T]) Steps() int       { return len(m.flow.Steps) }
func (m *Machine[T]) Submitted() bool  { return m.submitted }
func (m *Machine[T]) Values() T        { return m.values }
func (m *Machine[T]) StepName() string { return m.flow.Steps[m.step-1].Name }
func (m *Machine[T]) IsLastStep() bool { return m.step == len(m.flow.Steps) }

// Update records values without validating them or changing step.
func (m *Machine[T]) Update(values T) error {
	if m.submitted {
		return ErrSubmitted
	}
	m.values = values
	return nil
}

// Next records values and advances one step when the fields owned by the current
// step are valid. Otherwise it stays put and returns validation.FieldErrors limited
// to those fields.
func (m *Machine[T]) Next(values T) error {
	if m.submitted {
		return ErrSubmitted
	}
	m.values = values
	if m.IsLastStep() {
		return ErrLastStep
	}

	fields := m.flow.Steps[m.step-1].Fields
	if errs := m.checker.Check(&values).Only(fields...); errs != nil {
		return errs
	}
	m.step++
	return nil
}

// Prev goes back one step, keeping the entered values. It is a no-op on step 1.
func (m *Machine[T]) Prev() error {
	if m.submitted {
		return ErrSubmitted
	}
	if m.step > 1 {
		m.step--
	}
	return nil
}

// Submit validates the complete form from the last step and marks the machine done.
func (m *Machine[T]) Submit(values T) error {
	if m.submitted {
		return ErrSubmitted
	}
	m.values = values
	if !m.IsLastStep() {
		return ErrNotLastStep
	}
	if errs := m.checker.Check(&values); errs != nil {
		return errs
	}
	m.submitted = true
	return nil
}

func (m *Machine[T]) Reset() {
	var zero T
	m.step = 1
	m.submitted = false
	m.values = zero
}

// Snapshot captures the machine as a versioned draft.
func (m *Machine[T]) Snapshot() (Draft, error) {
	raw, err := json.Marshal(m.values)
	if err != nil {
		return Draft{}, fmt.Errorf("encode %s draft values: %w", m.flow.Name, err)
	}
	return Draft{
		Version:   DraftVersion,
		Flow:      m.flow.Name,
		Step:      m.step,
		Submitted: m.submitted,
		Values:    raw,
	}, nil
}

// Restore loads a draft produced by Snapshot. Drafts from another version or flow are
// refused rather than loaded into a possibly different form shape.
func (m *Machine[T]) Restore(d Draft) error {
	if d.Version != DraftVersion {
		return fmt.Errorf("%w: got %d, want %d", ErrDraftVersion, d.Version, DraftVersion)
	}
	if d.Flow != m.flow.Name {
		return fmt.Errorf("%w: got %q, want %q", ErrDraftFlow, d.Flow, m.flow.Name)
	}
	if d.Step < 1 || d.Step > len(m.flow.Steps) {
		return fmt.Errorf("%w: %d", ErrStepOutOfRange, d.Step)
	}

	var values T
	if len(d.Values) > 0 {
		if err := json.Unmarshal(d.Values, &values); err != nil {
			return fmt.Errorf("decode %s draft values: %w", m.flow.Name, err)
		}
	}
	m.values = values
	m.step = d.Step
	m.submitted = d.Submitted
	return nil
}

func FlowByName(name string) (Flow, bool) {
	switch name {
	case OrderFlow.Name:
		return OrderFlow, true
	case RedemptionFlow.Name:
		return RedemptionFlow, true
	}
	return Flow{}, false
}
