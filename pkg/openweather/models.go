package openweather

// WeatherRecord is the normalized current-weather observation for one city.
// Values are already metric: degrees Celsius, hPa, meters per second.
type WeatherRecord struct {
	LocationName             string           `json:"locationName" yaml:"location_name"`
	TemperatureCelsius       float64          `json:"temperatureCelsius" yaml:"temperature_celsius"`
	FeelsLikeCelsius         *float64         `json:"feelsLikeCelsius,omitempty" yaml:"feels_like_celsius,omitempty"`
	PressureHpa              int              `json:"pressureHpa" yaml:"pressure_hpa"`
	Conditions               []ConditionEntry `json:"conditions" yaml:"conditions"`
	WindSpeedMetersPerSecond float64          `json:"windSpeedMetersPerSecond" yaml:"wind_speed_meters_per_second"`
}

// ConditionEntry is one entry of the provider's condition list, in the
// provider's order.
type ConditionEntry struct {
	Category    string `json:"category" yaml:"category"`
	Description string `json:"description" yaml:"description"`
	IconID      string `json:"iconId" yaml:"icon_id"`
}
