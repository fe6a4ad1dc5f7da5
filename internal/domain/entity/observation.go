package entity

// Observation is a daily weather record of a station, as stored in the measurement table
type Observation struct {
	StationID     string   `json:"station"`
	Date          string   `json:"date"`
	Precipitation *float64 `json:"prcp"`
	Temperature   *float64 `json:"tobs"`
}

// PrecipitationReading is a (date, precipitation) pair read from the measurement table
type PrecipitationReading struct {
	Date          string
	Precipitation *float64
}

// TemperatureAggregate holds min/avg/max of the non-null temperatures of a date range.
// Min, Avg and Max are nil when Count is zero.
type TemperatureAggregate struct {
	Min   *float64
	Avg   *float64
	Max   *float64
	Count int64
}
