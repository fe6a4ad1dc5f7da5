package model

import "encoding/json"

// TemperatureSummary is the min/avg/max temperature of a date range.
// It is serialized as the JSON array [min, avg, max].
type TemperatureSummary struct {
	Min float64
	Avg float64
	Max float64
}

func (s TemperatureSummary) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{s.Min, s.Avg, s.Max})
}

func (s *TemperatureSummary) UnmarshalJSON(data []byte) error {
	var values [3]float64
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	s.Min, s.Avg, s.Max = values[0], values[1], values[2]
	return nil
}
