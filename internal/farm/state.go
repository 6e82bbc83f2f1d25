package farm

type Weather string

const (
	WeatherSunny Weather = "SUNNY"
	WeatherRainy Weather = "RAINY"
)

// DayStartTime is 06:00 on the 0-2400 clock.
const DayStartTime = 600

// GameState is the session clock and weather.
type GameState struct {
	Day     int     `toml:"day" yaml:"day"`
	Time    int     `toml:"time" yaml:"time"`
	Weather Weather `toml:"weather" yaml:"weather"`
}

func NewGameState() GameState {
	return GameState{Day: 1, Time: DayStartTime, Weather: WeatherSunny}
}

func (s GameState) Raining() bool {
	return s.Weather == WeatherRainy
}
