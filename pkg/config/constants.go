package config

// EnvPrefix is passed to envconfig; the struct tags already carry the full
// AGRISENSE_ names so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "AGRISENSE_DB_DSN"
	EnvDBHost = "AGRISENSE_DB_HOST"
	EnvDBUser = "AGRISENSE_DB_USER"
	EnvDBName = "AGRISENSE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
