package app

import (
	"time"

	"github.com/studymood/studymood-backend/internal/pkg/logger"
	"github.com/studymood/studymood-backend/internal/utils"
)

type Config struct {
	Port            string
	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	ReportLocation  *time.Location
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTLSeconds := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)

	tzName := utils.GetEnv("REPORT_TIMEZONE", "UTC", log)
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Warn("invalid REPORT_TIMEZONE, falling back to UTC", "value", tzName, "error", err)
		loc = time.UTC
	}

	return Config{
		Port:            port,
		JWTSecretKey:    jwtSecretKey,
		AccessTokenTTL:  time.Duration(accessTokenTTLSeconds) * time.Second,
		RefreshTokenTTL: time.Duration(refreshTokenTTLSeconds) * time.Second,
		ReportLocation:  loc,
	}
}
