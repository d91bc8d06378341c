// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for notekeep.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (HTTP ports, TLS, log level, request limits);
// AppConfig is everything specific to this service.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// AuthSecret signs the HS256 bearer tokens. Loaded once at startup
	// and held immutable for the process lifetime.
	AuthSecret string

	// CORSOrigins is the comma-separated allow-list for the web client.
	CORSOrigins string

	// BotAPIEnabled mounts the unauthenticated /bot/notes endpoints.
	// They have no token or ownership checks, so deployments that do not
	// run the Discord bot on a trusted network should turn this off.
	BotAPIEnabled bool
}
