package volume

// SampleDataset returns the built-in demo table of monthly search volumes.
// It seeds the local provider at startup and serves as the fallback when the
// persisted dataset file is absent or unreadable.
func SampleDataset() Dataset {
	return Dataset{
		{Term: "best laptops", Period: "2025-01", Value: 120000},
		{Term: "best laptops", Period: "2025-02", Value: 130000},
		{Term: "best laptops", Period: "2025-03", Value: 125000},
		{Term: "python tutorial", Period: "2025-01", Value: 80000},
		{Term: "python tutorial", Period: "2025-02", Value: 85000},
		{Term: "python tutorial", Period: "2025-03", Value: 90000},
		{Term: "cheap flights", Period: "2025-01", Value: 200000},
		{Term: "cheap flights", Period: "2025-02", Value: 210000},
		{Term: "cheap flights", Period: "2025-03", Value: 190000},
	}
}
