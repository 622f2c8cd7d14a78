package domain

// Action is the closed set of operations the permission gate decides on.
type Action string

const (
	ActionCreate     Action = "create"
	ActionEditOwn    Action = "edit-own"
	ActionSubmit     Action = "submit"
	ActionApprove    Action = "approve"
	ActionReject     Action = "reject"
	ActionPublish    Action = "publish"
	ActionArchive    Action = "archive"
	ActionDelete     Action = "delete"
	ActionChangeRole Action = "change-role"
	ActionDeactivate Action = "deactivate"
)

// Trigger is the closed set of workflow transition triggers. Each (current
// status, trigger) pair either maps to exactly one target status or is
// invalid.
type Trigger string

const (
	TriggerSubmit   Trigger = "submit"
	TriggerResubmit Trigger = "resubmit"
	TriggerApprove  Trigger = "approve"
	TriggerReject   Trigger = "reject"
	TriggerPublish  Trigger = "publish"
	TriggerArchive  Trigger = "archive"
)
