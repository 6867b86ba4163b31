// Package handler implements the JSON API for the household ledger,
// calendar, and chore cycle.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mverdier/foyer/internal/command"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

type resultResponse struct {
	Applied bool           `json:"applied"`
	Reason  command.Reason `json:"reason,omitempty"`
}

// writeResult reports a command outcome. Applied commands answer 200;
// rejections carry the reason and a status that matches its nature.
func writeResult(w http.ResponseWriter, res command.Result) {
	if res.Applied {
		writeJSON(w, http.StatusOK, resultResponse{Applied: true})
		return
	}
	writeJSON(w, statusForReason(res.Reason), resultResponse{Reason: res.Reason})
}

// writeResultWith is like writeResult but answers with a payload when the
// command applied.
func writeResultWith(w http.ResponseWriter, res command.Result, v any) {
	if res.Applied {
		writeJSON(w, http.StatusOK, v)
		return
	}
	writeJSON(w, statusForReason(res.Reason), resultResponse{Reason: res.Reason})
}

func statusForReason(reason command.Reason) int {
	switch reason {
	case command.ReasonNotFound:
		return http.StatusNotFound
	case command.ReasonAlreadyDoneToday,
		command.ReasonInsufficientPoints,
		command.ReasonReservedList,
		command.ReasonListInUse,
		command.ReasonDuplicateList,
		command.ReasonConfirmationRequired:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
