package service

// Stable numeric event codes attached to every service log event.
// Codes are part of the operational contract: alerting and filtering
// key on these values, not on message text, so they must never be
// renumbered once shipped.
const (
	EventListTasksStarted   = 1001
	EventListTasksCompleted = 1002

	EventAddTaskStarted          = 1101
	EventAddTaskCompleted        = 1102
	EventAddTaskValidationFailed = 1103

	EventToggleTaskStarted   = 1201
	EventToggleTaskCompleted = 1202
	EventToggleTaskNotFound  = 1203

	EventRemoveTaskStarted   = 1301
	EventRemoveTaskCompleted = 1302
	EventRemoveTaskNotFound  = 1303

	EventStoreFailure = 1901
)

// eventCodeKey is the attribute name event codes are logged under.
const eventCodeKey = "event_code"
