package domain

// Well-known field names of the message wire format.
const (
	FieldTaskUUID       = "task_uuid"
	FieldTaskLevel      = "task_level"
	FieldActionType     = "action_type"
	FieldActionStatus   = "action_status"
	FieldMessageCounter = "message_counter"
	FieldException      = "exception"
	FieldReason         = "reason"
)

// ActionStatus is the lifecycle phase recorded in a message.
type ActionStatus string

const (
	StatusStarted   ActionStatus = "started"
	StatusSucceeded ActionStatus = "succeeded"
	StatusFailed    ActionStatus = "failed"
)
