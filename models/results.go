package models

// GenerationResult reports one route-generation run.
type GenerationResult struct {
	Created int      `json:"created"`
	Errors  []string `json:"errors"`
}

// BillingRunResult reports one monthly billing run. Success counts customers
// whose invoice was persisted, Failed counts storage-level failures, Charged
// counts confirmed autopay charges. Skips (no service type, bad price, zero
// billable visits) only append to Errors.
type BillingRunResult struct {
	Month   int      `json:"month"`
	Year    int      `json:"year"`
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Charged int      `json:"charged"`
	Errors  []string `json:"errors"`
}

// ReminderRunResult reports one reminder dispatch run.
type ReminderRunResult struct {
	Date   string   `json:"date"`
	Sent   int      `json:"sent"`
	Failed int      `json:"failed"`
	Errors []string `json:"errors"`
}
