package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	JWT         JWTConfig
	Redis       RedisConfig
	Minio       MinioConfig
	Storage     StorageConfig
	Payment     PaymentConfig
}

type JWTConfig struct {
	Token         string
	ExpiresIn     time.Duration
	SigningMethod jwt.SigningMethod
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// StorageConfig choisit le puits d'écriture des actes générés
type StorageConfig struct {
	Mode     string // "minio" ou "local"
	LocalDir string
	BaseURL  string // Base des URLs de téléchargement en mode local
}

type PaymentConfig struct {
	// Clé statique attendue sur les callbacks du prestataire de paiement
	CallbackKey string
}

const (
	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"

	envMinioEndpoint  = "MINIO_ENDPOINT"
	envMinioAccessKey = "MINIO_ACCESS_KEY"
	envMinioSecretKey = "MINIO_SECRET_KEY"
	envMinioBucket    = "MINIO_BUCKET"

	envJWTSecret          = "JWT_SECRET"
	envPaymentCallbackKey = "PAYMENT_CALLBACK_KEY"
)

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")
	viper.WatchConfig()

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	// Secrets et accès techniques repris de l'environnement
	jwtSecret := os.Getenv(envJWTSecret)
	if jwtSecret == "" {
		jwtSecret = "etatcivil-dev"
	}
	cfg.JWT = JWTConfig{
		Token:         jwtSecret,
		ExpiresIn:     time.Hour,
		SigningMethod: jwt.SigningMethodHS256,
	}

	cfg.Redis.Host = os.Getenv(envRedisHost)
	cfg.Redis.Port, err = strconv.Atoi(os.Getenv(envRedisPort))
	if err != nil {
		return nil, fmt.Errorf("redis port must be int value: %w", err)
	}
	cfg.Redis.Password = os.Getenv(envRedisPass)
	cfg.Redis.User = os.Getenv(envRedisUser)
	cfg.Redis.DialTimeout = 10 * time.Second
	cfg.Redis.ReadTimeout = 10 * time.Second

	if v := os.Getenv(envMinioEndpoint); v != "" {
		cfg.Minio.Endpoint = v
	}
	if v := os.Getenv(envMinioAccessKey); v != "" {
		cfg.Minio.AccessKey = v
	}
	if v := os.Getenv(envMinioSecretKey); v != "" {
		cfg.Minio.SecretKey = v
	}
	if v := os.Getenv(envMinioBucket); v != "" {
		cfg.Minio.Bucket = v
	}
	if cfg.Minio.Bucket == "" {
		cfg.Minio.Bucket = "actes"
	}

	if v := os.Getenv(envPaymentCallbackKey); v != "" {
		cfg.Payment.CallbackKey = v
	}
	if cfg.Payment.CallbackKey == "" {
		cfg.Payment.CallbackKey = "etatcivil-payment-key"
	}

	if cfg.Storage.Mode == "" {
		cfg.Storage.Mode = "minio"
	}
	if cfg.Storage.LocalDir == "" {
		cfg.Storage.LocalDir = "generated"
	}

	log.Info("config parsed")

	return cfg, nil
}
