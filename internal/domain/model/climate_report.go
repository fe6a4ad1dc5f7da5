package model

// ClimateReport is the periodic snapshot published to the report queue
type ClimateReport struct {
	ID                     string              `json:"id"`
	GeneratedAt            string              `json:"generatedAt"`
	MostRecentDate         string              `json:"mostRecentDate"`
	TrailingYearStart      string              `json:"trailingYearStart"`
	Stations               []string            `json:"stations"`
	RecentTemperatureCount int                 `json:"recentTemperatureCount"`
	TrailingYear           *TemperatureSummary `json:"trailingYear"`
}
