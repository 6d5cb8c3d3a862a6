package models

import "time"

// WeatherSnapshot is a typed capture of the OpenWeather current-weather
// payload. Temperatures stay in Kelvin exactly as the provider returns them;
// unit conversion is a presentation concern and happens in the browser client.
type WeatherSnapshot struct {
	Name    string             `json:"name"`
	Coord   Coordinates        `json:"coord"`
	Weather []WeatherCondition `json:"weather"`
	Main    WeatherMain        `json:"main"`
	Wind    WeatherWind        `json:"wind"`
	Rain    *WeatherRain       `json:"rain,omitempty"`
	Sys     WeatherSys         `json:"sys"`
	Dt      int64              `json:"dt"`

	// AirQualityIndex is the pm2.5 reading formatted as a string, or "N/A"
	// when the air-quality provider has no data. Populated by the service
	// layer, never by the weather provider itself.
	AirQualityIndex string `json:"airQualityIndex,omitempty"`
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// WeatherCondition is one entry of the provider's weather array.
type WeatherCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// WeatherMain holds the core measurements. Temp and FeelsLike are Kelvin.
type WeatherMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  float64 `json:"humidity"`
	Pressure  float64 `json:"pressure"`
}

// WeatherWind holds wind measurements in m/s.
type WeatherWind struct {
	Speed float64 `json:"speed"`
}

// WeatherRain holds recent precipitation volume in mm. Absent when dry.
type WeatherRain struct {
	OneH float64 `json:"1h"`
}

// WeatherSys holds provider metadata such as the country code.
type WeatherSys struct {
	Country string `json:"country"`
}

// WeatherRecord is one persisted weather lookup. UserID is a non-owning
// back-reference: deleting a user does not delete their records, so orphans
// are possible. Records are append-only and only deletable in bulk.
type WeatherRecord struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    *uint           `gorm:"index" json:"userId"`
	City      string          `json:"city"`
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Weather   WeatherSnapshot `gorm:"serializer:json" json:"weather"`
	Timestamp time.Time       `json:"timestamp"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
