package config

// Defaults returns the configuration used for any key the yaml file and environment leave unset.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        4000,
			Env:         "development",
			CORSOrigins: []string{"http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Driver:       "postgres",
			MaxOpenConns: 20,
			MaxIdleConns: 5,
			AutoMigrate:  true,
		},
		JWT: JWTConfig{
			Issuer: "freelance-identity",
		},
		Session: SessionConfig{
			EphemeralTTLMinutes: 12 * 60,
			PersistentTTLHours:  30 * 24,
			AllowPersistent:     true,
		},
		Lifecycle: LifecycleConfig{
			CountWithdrawn:     false,
			AutoRejectOnAccept: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 5,
			Burst:             10,
		},
	}
}
