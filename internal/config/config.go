package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type StorefrontConfig struct {
	Env          string `yaml:"env" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	StorefrontDB `yaml:"storefront_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Cart         `yaml:"cart"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type StorefrontDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"text"`
	LogOutput string `yaml:"log_output" env-default:"stdout"`
}

type KafkaService struct {
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	OrderTopic string `yaml:"order_topic" env-default:"order-events"`
}

type Cart struct {
	StatePath   string `yaml:"state_path" env-default:"cart_state.json"`
	ShippingFee int64  `yaml:"shipping_fee" env-default:"500"`
}

func MustLoad() *StorefrontConfig {

	// Processing env config variable and file
	configPath := os.Getenv("STOREFRONT_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("STOREFRONT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg StorefrontConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
