package domain

// Report rows are aggregations over live (non-deleted) records. They are
// read-only: reports never mutate the rows they summarise.

// WaterUsage summarises irrigation volume per block.
type WaterUsage struct {
	Block      string  `json:"block"`
	Runs       int     `json:"runs"`
	TotalWater float64 `json:"totalWaterUsed"`
}

// SymptomFrequency counts how often a symptom was scouted per crop.
type SymptomFrequency struct {
	CropType string `json:"cropType"`
	Symptoms string `json:"symptoms"`
	Count    int    `json:"count"`
}
