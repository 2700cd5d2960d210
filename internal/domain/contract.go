package domain

// Contract is the host's authoritative task-accounting snapshot. It is
// always replaced wholesale on contract-info events, never merged.
type Contract struct {
	ContractName  string  `json:"contractName"`
	BaseTasks     float64 `json:"baseTasks"`
	AdjustedTasks float64 `json:"adjustedTasks"`
	TasksPerMonth float64 `json:"tasksPerMonth"`
	UsedThisMonth float64 `json:"usedThisMonth"`
}

// MonthlyUsagePct returns the month's usage as a percentage capped at 100.
// Zero when no monthly allowance applies.
func (c *Contract) MonthlyUsagePct() float64 {
	if c == nil || c.TasksPerMonth <= 0 {
		return 0
	}
	pct := c.UsedThisMonth / c.TasksPerMonth * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// Exhausted reports whether no contracted tasks remain.
func (c *Contract) Exhausted() bool {
	return c != nil && c.AdjustedTasks <= 0
}
