package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port                    string
	Env                     string
	FirebaseCredentialsPath string
	PostgresUrl             string
	MongoURI                string
	MongoDatabase           string
	JWTSecret               string
	AMQPURL                 string
	FanOutQueue             string
	FanOutConcurrency       int
	PageSize                int
	MaxPageSize             int
	CORSAllowOrigins        []string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("env", "development")
	v.SetDefault("firebase_credentials_path", "")
	v.SetDefault("postgres_url", "host=localhost user=postgres password=postgres dbname=waterboard port=5432 sslmode=disable")
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_database", "waterboard")
	v.SetDefault("jwt_secret", "supersecretjwtkey")
	v.SetDefault("amqp_url", "")
	v.SetDefault("fanout_queue", "notification_fanout")
	v.SetDefault("fanout_concurrency", 8)
	v.SetDefault("notifications_page_size", 20)
	v.SetDefault("notifications_max_page_size", 50)
	v.SetDefault("cors_allow_origins", "*")
	v.AutomaticEnv()
	return v
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Port:                    v.GetString("port"),
		Env:                     v.GetString("env"),
		FirebaseCredentialsPath: v.GetString("firebase_credentials_path"),
		PostgresUrl:             v.GetString("postgres_url"),
		MongoURI:                v.GetString("mongo_uri"),
		MongoDatabase:           v.GetString("mongo_database"),
		JWTSecret:               v.GetString("jwt_secret"),
		AMQPURL:                 v.GetString("amqp_url"),
		FanOutQueue:             v.GetString("fanout_queue"),
		FanOutConcurrency:       v.GetInt("fanout_concurrency"),
		PageSize:                v.GetInt("notifications_page_size"),
		MaxPageSize:             v.GetInt("notifications_max_page_size"),
		CORSAllowOrigins:        splitList(v.GetString("cors_allow_origins")),
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
