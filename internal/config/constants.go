package config

// Environment names
const (
	EnvironmentDev  = "dev"
	EnvironmentProd = "prod"
)

// Error messages
const (
	ErrMsgParseEnv         = "failed to parse environment: %w"
	ErrMsgJWTSecretMissing = "JWT_SECRET environment variable must be set for security"
	ErrMsgInvalidPort      = "invalid PORT value: %d"
)

// Example values shipped in .env.example that must never reach production
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleJWTSecret  = "generate_with_openssl_rand_hex_32"

	// MinJWTSecretLength is the shortest HS256 secret accepted without a warning
	MinJWTSecretLength = 32
	// MinAdminPasswordLength is the shortest bootstrap admin password accepted without a warning
	MinAdminPasswordLength = 12
)
