package config // package config loads application configuration from environment variables

import "os"

// Config holds the runtime configuration of the service. Every knob has a
// default so the server starts with no environment at all; the data file
// paths point at the sample documents shipped in data/.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Port          string // HTTP port to listen on
	OrderData     string // path of the orders JSON document
	GameData      string // path of the games JSON document
	SeatData      string // path of the seats JSON document
	EventsEnabled bool   // publish order.created events to the broker
	RunConsumer   bool   // run the order.created consumer in this process
}

// Load reads configuration values from environment variables, falling back
// to defaults for anything unset.
func Load() Config {
	return Config{
		Env:           getenv("APP_ENV", "dev"),
		Port:          getenv("APP_PORT", "5555"),
		OrderData:     getenv("ORDER_DATA", "data/orders.json"),
		GameData:      getenv("GAME_DATA", "data/games.json"),
		SeatData:      getenv("SEAT_DATA", "data/seats.json"),
		EventsEnabled: envBool("EVENTS_ENABLED", false),
		RunConsumer:   envBool("ORDER_CONSUMER", false),
	}
}

// getenv returns the value of the environment variable key, or def when it
// is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
