package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStateDefaultsToNormal(t *testing.T) {
	m := New()
	assert.Equal(t, StateNormal, m.GetState(42))
}

func TestSetAndClearState(t *testing.T) {
	m := New()

	m.SetState(42, StateAddingItems)
	assert.Equal(t, StateAddingItems, m.GetState(42))
	assert.Equal(t, StateNormal, m.GetState(43))

	m.ClearState(42)
	assert.Equal(t, StateNormal, m.GetState(42))
}

func TestStaleStateExpires(t *testing.T) {
	m := New()

	m.states[42] = ChatState{
		State:     StateAddingItems,
		Timestamp: time.Now().Add(-staleAfter - time.Minute),
	}

	assert.Equal(t, StateNormal, m.GetState(42))
}
