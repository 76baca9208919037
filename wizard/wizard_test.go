// SPDX-License-Identifier: GPL-3.0-only

package wizard

import (
	"encoding/json"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scratchcard-server/network"
	"scratchcard-server/validation"
)

func newOrderMachine() *Machine[validation.OrderRequest] {
	return New[validation.OrderRequest](OrderFlow, validation.New(network.Default()))
}

func contactOnly() validation.OrderRequest {
	return validation.OrderRequest{
		FullName:        "Chidi Nwosu",
		Email:           "chidi@example.com",
		Phone:           "0805 123 4567",
		DeliveryAddress: "4 Independence Layout, Enugu",
	}
}

func TestOrderFlowAdvancesStepByStep(t *testing.T) {
	m := newOrderMachine()
	values := contactOnly()

	require.NoError(t, m.Next(values), "contact step must not look at items")
	assert.Equal(t, 2, m.Step())
	assert.Equal(t, "items", m.StepName())

	err := m.Next(values)
	fe, ok := validation.AsFieldErrors(err)
	require.True(t, ok, "expected field errors, got %v", err)
	assert.Contains(t, fe, "items")
	assert.Equal(t, 2, m.Step())

	values.Items = []validation.OrderItem{{Denomination: "2000", Quantity: 50}, {Denomination: "5000", Quantity: 50}}
	err = m.Next(values)
	fe, ok = validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Len(t, fe, 1)

	values.Items[0].Quantity = 100
	require.NoError(t, m.Next(values))
	assert.True(t, m.IsLastStep())

	assert.ErrorIs(t, m.Next(values), ErrLastStep)
	require.NoError(t, m.Submit(values))
	assert.True(t, m.Submitted())
	assert.ErrorIs(t, m.Next(values), ErrSubmitted)
	assert.ErrorIs(t, m.Prev(), ErrSubmitted)
	assert.ErrorIs(t, m.Submit(values), ErrSubmitted)
}

func TestContactStepReportsOnlyItsFields(t *testing.T) {
	m := newOrderMachine()
	values := contactOnly()
	values.Email = "nope"

	err := m.Next(values)
	fe, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"email"}, keys(fe))
	assert.Equal(t, 1, m.Step())
}

func TestPrevAndReset(t *testing.T) {
	m := newOrderMachine()
	require.NoError(t, m.Prev())
	assert.Equal(t, 1, m.Step())

	require.NoError(t, m.Next(contactOnly()))
	require.NoError(t, m.Prev())
	assert.Equal(t, 1, m.Step())
	assert.Equal(t, "Chidi Nwosu", m.Values().FullName)

	m.Reset()
	assert.Equal(t, 1, m.Step())
	assert.False(t, m.Submitted())
	assert.Empty(t, m.Values().FullName)
}

func TestUpdateKeepsStepAndSkipsValidation(t *testing.T) {
	m := newOrderMachine()
	values := contactOnly()
	values.Email = "not-yet-finished@"

	require.NoError(t, m.Update(values))
	assert.Equal(t, 1, m.Step())
	assert.Equal(t, "not-yet-finished@", m.Values().Email)
}

func TestSubmitOnlyFromLastStep(t *testing.T) {
	m := newOrderMachine()
	assert.ErrorIs(t, m.Submit(contactOnly()), ErrNotLastStep)
}

func TestSubmitRevalidatesEverything(t *testing.T) {
	m := newOrderMachine()
	values := contactOnly()
	values.Items = []validation.OrderItem{{Denomination: "1000", Quantity: 100}}
	require.NoError(t, m.Next(values))
	require.NoError(t, m.Next(values))

	values.Email = ""
	err := m.Submit(values)
	fe, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fe, "email")
	assert.False(t, m.Submitted())
}

func TestSnapshotRestore(t *testing.T) {
	m := newOrderMachine()
	require.NoError(t, m.Next(contactOnly()))

	draft, err := m.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, DraftVersion, draft.Version)
	assert.Equal(t, "order", draft.Flow)
	assert.Equal(t, 2, draft.Step)

	blob, err := json.Marshal(draft)
	require.NoError(t, err)
	var decoded Draft
	require.NoError(t, json.Unmarshal(blob, &decoded))

	restored := newOrderMachine()
	require.NoError(t, restored.Restore(decoded))
	assert.Equal(t, 2, restored.Step())
	assert.Equal(t, m.Values(), restored.Values())
}

func TestRestoreRejectsIncompatibleDrafts(t *testing.T) {
	m := newOrderMachine()

	assert.ErrorIs(t, m.Restore(Draft{Version: DraftVersion + 1, Flow: "order", Step: 1}), ErrDraftVersion)
	assert.ErrorIs(t, m.Restore(Draft{Version: 0, Flow: "order", Step: 1}), ErrDraftVersion)
	assert.ErrorIs(t, m.Restore(Draft{Version: DraftVersion, Flow: "redemption", Step: 1}), ErrDraftFlow)
	assert.ErrorIs(t, m.Restore(Draft{Version: DraftVersion, Flow: "order", Step: 4}), ErrStepOutOfRange)
	assert.ErrorIs(t, m.Restore(Draft{Version: DraftVersion, Flow: "order", Step: 0}), ErrStepOutOfRange)
	assert.Error(t, m.Restore(Draft{Version: DraftVersion, Flow: "order", Step: 1, Values: json.RawMessage(`[1,2]`)}))
	assert.Equal(t, 1, m.Step())
}

func TestRedemptionFlow(t *testing.T) {
	m := New[validation.RedemptionRequest](RedemptionFlow, validation.New(network.Default()))
	r := validation.RedemptionRequest{SerialNumber: "AB-123456", CardCode: "A1B-2C3D-4E5F-6A7B"}

	require.NoError(t, m.Next(r))
	assert.Equal(t, "identity", m.StepName())

	r.FullName = "Ngozi Eze"
	r.Phone = "07011111111"
	r.BVN = "12345"
	err := m.Next(r)
	fe, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"bvn", "nin"}, keys(fe))

	r.BVN = "22212345678"
	r.NIN = "12345678901"
	require.NoError(t, m.Next(r))
	assert.Equal(t, "bank", m.StepName())
}

func TestFlowByName(t *testing.T) {
	f, ok := FlowByName("redemption")
	assert.True(t, ok)
	assert.Len(t, f.Steps, 4)

	_, ok = FlowByName("citizen")
	assert.False(t, ok)
}

func keys(fe validation.FieldErrors) []string {
	return slices.Sorted(maps.Keys(fe))
}
