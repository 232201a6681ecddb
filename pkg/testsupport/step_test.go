package testsupport_test

import (
	"testing"
	"time"

	"github.com/aretw0/riveting/pkg/testsupport"
	"github.com/stretchr/testify/assert"
)

func TestSequence_MixesStepsAndActions(t *testing.T) {
	steps := testsupport.Sequence[string](
		"a",
		testsupport.Wait[string](5*time.Millisecond),
		testsupport.Send("b"),
		testsupport.Actions("c", "d"),
	)

	assert.Len(t, steps, 5)
	assert.Equal(t, "a", steps[0].Action())
	assert.True(t, steps[1].IsWait())
	assert.Equal(t, 5*time.Millisecond, steps[1].Duration())
	assert.Equal(t, "b", steps[2].Action())
	assert.Equal(t, "d", steps[4].Action())
}

func TestSequence_RejectsForeignItems(t *testing.T) {
	assert.Panics(t, func() {
		testsupport.Sequence[string](42)
	})
}
