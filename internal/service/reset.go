package service

import (
	"github.com/efreitasn/minibroker/internal/broadcast"
	"github.com/efreitasn/minibroker/internal/engine"
)

// DailyResetJob re-arms the daily purchase allowance at the trading-day
// boundary and pushes the updated limits to subscribers. Scheduled at
// local midnight; the reset is keyed to the calendar day on the server
// side rather than to client session lifecycle.
type DailyResetJob struct {
	gate        *engine.LimitsGate
	broadcaster *broadcast.Broadcaster
}

// NewDailyResetJob creates the job.
func NewDailyResetJob(gate *engine.LimitsGate, broadcaster *broadcast.Broadcaster) *DailyResetJob {
	return &DailyResetJob{gate: gate, broadcaster: broadcaster}
}

// Name implements scheduler.Job.
func (j *DailyResetJob) Name() string { return "daily-limits-reset" }

// Run implements scheduler.Job.
func (j *DailyResetJob) Run() error {
	j.gate.ResetForNewDay()
	j.broadcaster.BroadcastNow()
	return nil
}
