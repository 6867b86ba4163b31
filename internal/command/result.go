// Package command defines the outcome type shared by the engine commands.
// A rejected command is a normal result, not an error: the engines never
// leave partial state behind, and callers can tell "nothing happened"
// apart from "succeeded" by the reason tag.
package command

// Reason explains why a command was rejected.
type Reason string

const (
	ReasonAlreadyDoneToday     Reason = "already_done_today"
	ReasonInsufficientPoints   Reason = "insufficient_points"
	ReasonReservedList         Reason = "reserved_list"
	ReasonListInUse            Reason = "list_in_use"
	ReasonUnknownList          Reason = "unknown_list"
	ReasonDuplicateList        Reason = "duplicate_list"
	ReasonNotFound             Reason = "not_found"
	ReasonUnknownMode          Reason = "unknown_mode"
	ReasonInvalidDate          Reason = "invalid_date"
	ReasonUnknownActor         Reason = "unknown_actor"
	ReasonConfirmationRequired Reason = "confirmation_required"
	ReasonEmptyTitle           Reason = "empty_title"
	ReasonNonPositiveValue     Reason = "non_positive_value"
)

// Result is the outcome of an engine command.
type Result struct {
	Applied bool   `json:"applied"`
	Reason  Reason `json:"reason,omitempty"`
}

// Applied is the successful outcome.
var Applied = Result{Applied: true}

// Rejected builds a no-op outcome carrying the reason.
func Rejected(reason Reason) Result {
	return Result{Reason: reason}
}
