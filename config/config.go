package config

// AppConfig holds the application configuration. It is built once at process
// start and treated as immutable afterwards.
type AppConfig struct {
	DBURL          string
	RedisAddress   string
	BearerToken    string
	ServerAddress  string
	AllowedOrigins []string
}

// GetBearerToken returns the BearerToken from the config
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}
