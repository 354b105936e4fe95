package config

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	// DefaultEnvFile is loaded before the config file when present.
	DefaultEnvFile = ".env"

	// DefaultGitBranch is the branch `folio publish --target git` commits to.
	DefaultGitBranch = "gh-pages"

	defaultPort        = 2333
	defaultEnv         = "development"
	defaultContentRoot = "content"
	defaultCacheMaxAge = 60
	defaultGitRemote   = "origin"
	defaultS3Region    = "us-east-1"
)

// Environment overrides, applied after the YAML file.
const (
	EnvPort          = "FOLIO_PORT"
	EnvEnv           = "FOLIO_ENV"
	EnvContentRoot   = "FOLIO_CONTENT_ROOT"
	EnvS3AccessKeyID = "FOLIO_S3_ACCESS_KEY_ID"
	EnvS3SecretKey   = "FOLIO_S3_SECRET_ACCESS_KEY"
)
