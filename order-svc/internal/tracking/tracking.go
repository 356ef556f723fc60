// Package tracking derives an order's delivery progress from its age.
package tracking

import "time"

const (
	StepInterval = 30 * time.Second

	baseEstimateMinutes = 45
	minutesPerStep      = 10
	minEstimateMinutes  = 5
)

// Statuses in delivery order.
var Statuses = []string{"confirmed", "preparing", "ready", "out_for_delivery", "delivered"}

type Progress struct {
	Status           string `json:"status"`
	Step             int    `json:"step"`
	Steps            int    `json:"steps"`
	EstimatedMinutes int    `json:"estimatedMinutes"`
	Delivered        bool   `json:"delivered"`
}

// At reports progress for an order placed at placedAt. The order advances one
// status per StepInterval and stays delivered.
func At(placedAt, now time.Time) Progress {
	step := 0
	if elapsed := now.Sub(placedAt); elapsed > 0 {
		step = int(elapsed / StepInterval)
	}
	if step > len(Statuses)-1 {
		step = len(Statuses) - 1
	}

	estimate := baseEstimateMinutes - step*minutesPerStep
	if estimate < minEstimateMinutes {
		estimate = minEstimateMinutes
	}

	return Progress{
		Status:           Statuses[step],
		Step:             step,
		Steps:            len(Statuses),
		EstimatedMinutes: estimate,
		Delivered:        step == len(Statuses)-1,
	}
}
