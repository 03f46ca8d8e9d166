package action

import (
	"fmt"

	"github.com/aretw0/causeway/pkg/domain"
	"github.com/aretw0/causeway/pkg/message"
	"github.com/aretw0/causeway/pkg/ports"
)

// Action is one unit of work in a nested hierarchy of ongoing actions.
// It has a start and an end; a message is logged for each.
//
// Construct actions through StartTask, StartAction or Child only; those
// are the paths that assign the task UUID and level. An Action must be
// used from the single logical thread of control that created it.
type Action struct {
	logger      ports.Logger
	taskUUID    string
	taskLevel   string
	actionType  string
	serializers *ports.ActionSerializers

	numberOfChildren int
	messageCounter   int
	successFields    domain.Fields
	finished         bool
}

func newAction(logger ports.Logger, taskUUID, taskLevel, actionType string, serializers *ports.ActionSerializers) *Action {
	return &Action{
		logger:        logger,
		taskUUID:      taskUUID,
		taskLevel:     taskLevel,
		actionType:    actionType,
		serializers:   serializers,
		successFields: domain.Fields{},
	}
}

// TaskUUID returns the identifier shared by this action and every
// action in its task tree.
func (a *Action) TaskUUID() string { return a.taskUUID }

// TaskLevel returns the action's position in the task tree as a path,
// e.g. "/" or "/3/2/".
func (a *Action) TaskLevel() string { return a.taskLevel }

// ActionType returns the kind of work this action represents.
func (a *Action) ActionType() string { return a.actionType }

// Finished reports whether the finish message has been emitted.
func (a *Action) Finished() bool { return a.finished }

// NextMessageCounter hands out the ordinal of the next message logged
// within this action. Part of the message.Origin contract.
func (a *Action) NextMessageCounter() int {
	n := a.messageCounter
	a.messageCounter++
	return n
}

func (a *Action) identifyInto(fields domain.Fields) {
	fields[domain.FieldTaskUUID] = a.taskUUID
	fields[domain.FieldTaskLevel] = a.taskLevel
	fields[domain.FieldActionType] = a.actionType
}

// start emits the start message. Called exactly once, by the factory
// functions, immediately after construction.
func (a *Action) start(extra domain.Fields) error {
	fields := extra.Clone()
	fields[domain.FieldActionStatus] = domain.StatusStarted
	a.identifyInto(fields)

	var serializer ports.Serializer
	if a.serializers != nil {
		serializer = a.serializers.Start
	}
	return message.New(fields, serializer).Write(a.logger, a)
}

// Finish emits the finish message, exactly once; further calls are
// no-ops returning nil. With err == nil the message carries the
// accumulated success fields and status "succeeded"; otherwise it
// carries the error's fully-qualified type name, its best-effort string
// form, and status "failed". A serializer failure is returned to the
// caller after the action is already marked finished.
func (a *Action) Finish(err error) error {
	if a.finished {
		return nil
	}
	a.finished = true

	var fields domain.Fields
	var serializer ports.Serializer
	if err == nil {
		fields = a.successFields.Clone()
		fields[domain.FieldActionStatus] = domain.StatusSucceeded
		if a.serializers != nil {
			serializer = a.serializers.Success
		}
	} else {
		fields = domain.Fields{
			domain.FieldException:    domain.TypeOf(err),
			domain.FieldReason:       domain.ReasonOf(err),
			domain.FieldActionStatus: domain.StatusFailed,
		}
		if a.serializers != nil {
			serializer = a.serializers.Failure
		}
	}
	a.identifyInto(fields)

	return message.New(fields, serializer).Write(a.logger, a)
}

// Child creates an unstarted child action sharing this action's task
// UUID. The child's level appends this action's post-increment children
// count, so successive children get .../1/, .../2/, ... regardless of
// finish order. Prefer StartAction, which resolves the parent from the
// scope and starts the child.
func (a *Action) Child(logger ports.Logger, actionType string, serializers *ports.ActionSerializers) *Action {
	a.numberOfChildren++
	level := domain.ChildLevel(a.taskLevel, a.numberOfChildren)
	return newAction(logger, a.taskUUID, level, actionType, serializers)
}

// AddSuccessFields merges fields into the success finish message,
// last write wins per key. Calls after the action finished are dropped.
func (a *Action) AddSuccessFields(fields domain.Fields) {
	if a.finished {
		return
	}
	a.successFields.Merge(fields)
}

// Log writes a one-off message within this action's context, consuming
// one counter value.
func (a *Action) Log(fields domain.Fields) error {
	return message.Log(a.logger, a, fields)
}

// PanicError carries a panic value recovered while an action scope was
// unwinding, so the failure finish message has something to report
// before the panic continues.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Enter pushes the action onto the scope and returns the exit function
// that tears the scope back down. Defer the exit with a pointer to the
// caller's named error:
//
//	act, err := action.StartAction(scope, logger, "app:op")
//	if err != nil {
//		return err
//	}
//	defer act.Enter(scope)(&err)
//
// On teardown the action is popped and finished with *errp, so an error
// propagating out of the enclosing function turns into a failure finish
// and a normal return into a success finish. A panic unwinding through
// the exit finishes the action as failed with a PanicError and then
// re-panics. If Finish itself fails (serializer rejection) and *errp is
// nil, the failure is written to *errp.
func (a *Action) Enter(scope *Scope) func(errp *error) {
	scope.Push(a)
	return func(errp *error) {
		scope.Pop()
		if r := recover(); r != nil {
			_ = a.Finish(&PanicError{Value: r})
			panic(r)
		}
		var err error
		if errp != nil {
			err = *errp
		}
		if finishErr := a.Finish(err); finishErr != nil && errp != nil && *errp == nil {
			*errp = finishErr
		}
	}
}

// EnterOnly pushes the action onto the scope without tying finish to
// the teardown: the returned exit function only pops. For actions whose
// completion is signalled elsewhere, typically via FinishAfter.
func (a *Action) EnterOnly(scope *Scope) func() {
	scope.Push(a)
	return scope.Pop
}

// Run invokes fn with this action as the scope's current action,
// popping on the way out whether or not fn fails. The action is not
// finished; fn's error is returned unchanged.
func (a *Action) Run(scope *Scope, fn func() error) error {
	scope.Push(a)
	defer scope.Pop()
	return fn()
}

// FinishAfter defers this action's finish until the completion settles:
// the registered continuation finishes with the completion's error (nil
// on success). Other subscribers still observe the original outcome.
// Should only be called once per action; a duplicate registration's
// second finish attempt is absorbed by finish idempotence. A serializer
// failure inside the continuation has no caller to surface to and is
// dropped.
func (a *Action) FinishAfter(c ports.Completion) {
	c.Subscribe(func(_ any, err error) {
		_ = a.Finish(err)
	})
}
