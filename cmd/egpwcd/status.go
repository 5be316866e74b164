package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/stratux/egpwc/internal/egpwc"
)

var (
	currentOutputs egpwc.Outputs
	startedAt      time.Time
)

type statusResponse struct {
	egpwc.Outputs
	StartedAgo string `json:"startedAgo"`
}

// handleStatusRequest marshals the latest tick's output struct straight to
// JSON, plus a humanized uptime.
func handleStatusRequest(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := statusResponse{
		Outputs:    currentOutputs,
		StartedAgo: humanize.Time(startedAt),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
