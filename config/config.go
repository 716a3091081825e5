package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
}

type AppConfig struct {
	Port string
	Env  string

	// FacilityCode is the hospital prefix used in UHIDs, e.g. "PAMCH".
	FacilityCode string

	// RegistrationFee is the flat charge billed on every new OPD visit.
	RegistrationFee string

	// CORSAllowedOrigin is the origin echoed in CORS headers, normally
	// the hospital frontend. "*" stays the development default.
	CORSAllowedOrigin string

	MigrationsPath string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	facilityCode := viper.GetString("FACILITY_CODE")
	if facilityCode == "" {
		facilityCode = "PAMCH"
	}

	registrationFee := viper.GetString("REGISTRATION_FEE")
	if registrationFee == "" {
		registrationFee = "100"
	}

	corsAllowedOrigin := viper.GetString("CORS_ALLOWED_ORIGIN")
	if corsAllowedOrigin == "" {
		corsAllowedOrigin = "*"
	}

	migrationsPath := viper.GetString("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "migrations"
	}

	config := &Config{
		App: AppConfig{
			Port:              viper.GetString("APP_PORT"),
			Env:               viper.GetString("APP_ENV"),
			FacilityCode:      facilityCode,
			RegistrationFee:   registrationFee,
			CORSAllowedOrigin: corsAllowedOrigin,
			MigrationsPath:    migrationsPath,
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
	}

	return config, nil
}
