package service

import (
	"encoding/json"
	"net/http"

	"org-roles-service/internal/policy"
)

// Response is the JSON error envelope. Reason carries the policy denial
// code when present; clients map it to a localized message and must not
// show Message to end users.
type Response struct {
	Message string        `json:"message"`
	Reason  policy.Reason `json:"reason,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	_ = enc.Encode(v)
}

// writeDenied translates a denied Decision into the 403 envelope.
func writeDenied(w http.ResponseWriter, decision policy.Decision) {
	writeJSON(w, http.StatusForbidden, Response{
		Message: "forbidden",
		Reason:  decision.Reason,
	})
}
