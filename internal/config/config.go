package config

import (
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	Auth struct {
		JWTSecret     string        `mapstructure:"jwt_secret"`
		TokenLifespan time.Duration `mapstructure:"token_lifespan"`
	} `mapstructure:"auth"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	} `mapstructure:"cloudinary"`
	Translator struct {
		Endpoint string        `mapstructure:"endpoint"`
		ApiKey   string        `mapstructure:"api_key"`
		CacheTTL time.Duration `mapstructure:"cache_ttl"`
	} `mapstructure:"translator"`
	MercadoPago struct {
		AccessToken string `mapstructure:"access_token"`
		BackURL     string `mapstructure:"back_url"`
	} `mapstructure:"mercadopago"`
	Jaeger struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"jaeger"`
}

func LoadConfig(path ...string) (cfg Config, err error) {
	dir := "."
	if len(path) > 0 {
		dir = path[0]
	}

	err = godotenv.Load(filepath.Join(dir, ".env"))
	if err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	viper.AddConfigPath(dir)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err = viper.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("app.port", "APP_PORT")
	viper.BindEnv("app.env", "APP_ENV")
	viper.BindEnv("db.dsn", "DB_DSN")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	viper.BindEnv("auth.jwt_secret", "JWT_SECRET")
	viper.BindEnv("auth.token_lifespan", "TOKEN_LIFESPAN")

	viper.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	viper.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	viper.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")

	viper.BindEnv("translator.endpoint", "TRANSLATOR_ENDPOINT")
	viper.BindEnv("translator.api_key", "TRANSLATOR_API_KEY")
	viper.BindEnv("translator.cache_ttl", "TRANSLATOR_CACHE_TTL")

	viper.BindEnv("mercadopago.access_token", "MERCADOPAGO_ACCESS_TOKEN")
	viper.BindEnv("mercadopago.back_url", "MERCADOPAGO_BACK_URL")

	viper.BindEnv("jaeger.otlp_endpoint", "JAEGER_OTLP_ENDPOINT")

	err = viper.Unmarshal(&cfg)
	return
}
