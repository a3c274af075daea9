package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"org-roles-service/internal/utils/runtime"
)

const (
	kafkaHostFlag   = "kafka-host"
	kafkaPortFlag   = "kafka-port"
	mongoDBURIFlag  = "mongodb-uri"
	developmentFlag = "development"
	httpPortFlag    = "port"
)

type Config struct {
	Kafka   KafkaConfig
	MongoDB MongoDBConfig

	Development bool

	HTTPPort int
}

type KafkaConfig struct {
	Host string
	Port int
}

type MongoDBConfig struct {
	URI string
}

func LoadGlobalConfig() Config {
	viper.SetDefault(kafkaHostFlag, "localhost")
	viper.SetDefault(kafkaPortFlag, 9092)
	viper.SetDefault(mongoDBURIFlag, "mongodb://localhost:27017")
	viper.SetDefault(developmentFlag, true)
	viper.SetDefault(httpPortFlag, 8080)

	pflag.String(kafkaHostFlag, viper.GetString(kafkaHostFlag), "Kafka host")
	pflag.Int32(kafkaPortFlag, viper.GetInt32(kafkaPortFlag), "Kafka port")
	pflag.String(mongoDBURIFlag, viper.GetString(mongoDBURIFlag), "MongoDB URI")
	pflag.Bool(developmentFlag, viper.GetBool(developmentFlag), "Development mode")
	pflag.Int32(httpPortFlag, viper.GetInt32(httpPortFlag), "HTTP port")
	pflag.Parse()

	// Bind the viper flags to environment variables
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	runtime.Must(viper.BindEnv(kafkaHostFlag))
	runtime.Must(viper.BindEnv(kafkaPortFlag))
	runtime.Must(viper.BindEnv(mongoDBURIFlag))
	runtime.Must(viper.BindEnv(developmentFlag))
	runtime.Must(viper.BindEnv(httpPortFlag))

	return Config{
		Kafka: KafkaConfig{
			Host: viper.GetString(kafkaHostFlag),
			Port: int(viper.GetInt32(kafkaPortFlag)),
		},
		MongoDB: MongoDBConfig{
			URI: viper.GetString(mongoDBURIFlag),
		},
		Development: viper.GetBool(developmentFlag),
		HTTPPort:    int(viper.GetInt32(httpPortFlag)),
	}
}
