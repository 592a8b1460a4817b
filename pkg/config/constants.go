package config

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "sokolink"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "SOKOLINK_DB_DSN"
	EnvDBHost = "SOKOLINK_DB_HOST"
	EnvDBUser = "SOKOLINK_DB_USER"
	EnvDBName = "SOKOLINK_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
