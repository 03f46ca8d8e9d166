package action_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/causeway/pkg/action"
	"github.com/aretw0/causeway/pkg/adapters/memory"
	"github.com/aretw0/causeway/pkg/domain"
)

func TestStartTask_EmitsStartMessage(t *testing.T) {
	dest := memory.NewDestination()

	task, err := action.StartTask(dest, "app:main", action.WithFields(domain.Fields{"entry": 42}))
	require.NoError(t, err)

	msgs := dest.Messages()
	require.Len(t, msgs, 1)

	start := msgs[0]
	assert.Equal(t, task.TaskUUID(), start[domain.FieldTaskUUID])
	assert.Equal(t, "/", start[domain.FieldTaskLevel])
	assert.Equal(t, "app:main", start[domain.FieldActionType])
	assert.Equal(t, domain.StatusStarted, start[domain.FieldActionStatus])
	assert.Equal(t, 42, start["entry"])
	assert.Equal(t, 0, start[domain.FieldMessageCounter])
}

func TestStartTask_FreshUUIDPerTask(t *testing.T) {
	dest := memory.NewDestination()

	a, err := action.StartTask(dest, "app:a")
	require.NoError(t, err)
	b, err := action.StartTask(dest, "app:b")
	require.NoError(t, err)

	assert.NotEmpty(t, a.TaskUUID())
	assert.NotEqual(t, a.TaskUUID(), b.TaskUUID())
}

func TestChild_SharesTaskUUIDAcrossTree(t *testing.T) {
	dest := memory.NewDestination()

	root, err := action.StartTask(dest, "app:root")
	require.NoError(t, err)

	// Walk a chain of children several levels deep.
	current := root
	for i := 0; i < 5; i++ {
		current = current.Child(dest, "app:step", nil)
		assert.Equal(t, root.TaskUUID(), current.TaskUUID())
	}
}

func TestChild_LevelAssignment(t *testing.T) {
	dest := memory.NewDestination()

	root, err := action.StartTask(dest, "app:root")
	require.NoError(t, err)
	require.Equal(t, "/", root.TaskLevel())

	first := root.Child(dest, "app:first", nil)
	second := root.Child(dest, "app:second", nil)
	third := root.Child(dest, "app:third", nil)

	assert.Equal(t, "/1/", first.TaskLevel())
	assert.Equal(t, "/2/", second.TaskLevel())
	assert.Equal(t, "/3/", third.TaskLevel())

	// Nesting under the first child restarts the numbering there.
	nested := first.Child(dest, "app:nested", nil)
	assert.Equal(t, "/1/1/", nested.TaskLevel())

	// Finish order has no effect on already-assigned levels.
	require.NoError(t, third.Finish(nil))
	fourth := root.Child(dest, "app:fourth", nil)
	assert.Equal(t, "/4/", fourth.TaskLevel())
}

func TestFinish_Success(t *testing.T) {
	dest := memory.NewDestination()

	task, err := action.StartTask(dest, "app:op")
	require.NoError(t, err)

	task.AddSuccessFields(domain.Fields{"x": 1})
	task.AddSuccessFields(domain.Fields{"x": 2, "y": "done"}) // last write wins
	require.NoError(t, task.Finish(nil))

	msgs := dest.Messages()
	require.Len(t, msgs, 2)

	finish := msgs[1]
	assert.Equal(t, domain.StatusSucceeded, finish[domain.FieldActionStatus])
	assert.Equal(t, 2, finish["x"])
	assert.Equal(t, "done", finish["y"])
	assert.Equal(t, task.TaskUUID(), finish[domain.FieldTaskUUID])
	assert.Equal(t, 1, finish[domain.FieldMessageCounter])
	assert.True(t, task.Finished())
}

type boomError struct{ msg string }

func (e *boomError) Error() string { return e.msg }

func TestFinish_Failure(t *testing.T) {
	dest := memory.NewDestination()

	task, err := action.StartTask(dest, "app:op")
	require.NoError(t, err)

	task.AddSuccessFields(domain.Fields{"x": 1})
	require.NoError(t, task.Finish(&boomError{msg: "boom"}))

	finish := dest.Messages()[1]
	assert.Equal(t, domain.StatusFailed, finish[domain.FieldActionStatus])
	exception, ok := finish[domain.FieldException].(string)
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(exception, ".boomError"), "want fully-qualified type name, got %q", exception)
	assert.Equal(t, "boom", finish[domain.FieldReason])

	// Success fields must be absent from a failure finish.
	_, present := finish["x"]
	assert.False(t, present, "success fields leaked into failure finish")
}

func TestFinish_Idempotent(t *testing.T) {
	dest := memory.NewDestination()

	task, err := action.StartTask(dest, "app:op")
	require.NoError(t, err)

	require.NoError(t, task.Finish(errors.New("first")))
	require.NoError(t, task.Finish(nil))
	require.NoError(t, task.Finish(errors.New("third")))

	msgs := dest.Messages()
	require.Len(t, msgs, 2, "exactly one finish message")

	// The first call's outcome is the one recorded.
	assert.Equal(t, domain.StatusFailed, msgs[1][domain.FieldActionStatus])
	assert.Equal(t, "first", msgs[1][domain.FieldReason])
}

func TestAddSuccessFields_DroppedAfterFinish(t *testing.T) {
	dest := memory.NewDestination()

	task, err := action.StartTask(dest, "app:op")
	require.NoError(t, err)
	require.NoError(t, task.Finish(nil))

	task.AddSuccessFields(domain.Fields{"late": true})

	finish := dest.Messages()[1]
	_, present := finish["late"]
	assert.False(t, present)
}

func TestLog_CountsMessagesWithinAction(t *testing.T) {
	dest := memory.NewDestination()

	task, err := action.StartTask(dest, "app:op")
	require.NoError(t, err)

	require.NoError(t, task.Log(domain.Fields{"event": "midway"}))
	require.NoError(t, task.Finish(nil))

	msgs := dest.Messages()
	require.Len(t, msgs, 3)

	// Counter order is emission order: start, free message, finish.
	assert.Equal(t, 0, msgs[0][domain.FieldMessageCounter])
	assert.Equal(t, 1, msgs[1][domain.FieldMessageCounter])
	assert.Equal(t, "midway", msgs[1]["event"])
	assert.Equal(t, task.TaskUUID(), msgs[1][domain.FieldTaskUUID])
	assert.Equal(t, 2, msgs[2][domain.FieldMessageCounter])
}
