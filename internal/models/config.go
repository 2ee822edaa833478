package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (d DatabaseConfig) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type Config struct {
	// Record source: "csv" reads DatasetPath, "postgres" scans the orders table.
	Source      string `mapstructure:"source"`
	DatasetPath string `mapstructure:"dataset_path"`

	KafkaEnabled     bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList  string `mapstructure:"kafka_broker_list"`
	KafkaTopicPrefix string `mapstructure:"kafka_topic_prefix"`
	SessionTimeoutMs int    `mapstructure:"session_timeout_ms"`

	OutputFormat      string `mapstructure:"output_format"`
	OutputPath        string `mapstructure:"output_path"`
	OutputDestination string `mapstructure:"output_destination"` // "local" or a cloud provider

	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`
	Database     DatabaseConfig     `mapstructure:"database"`

	// Sample dataset generation.
	Seed              int64     `mapstructure:"seed"`
	GenerateOrders    int       `mapstructure:"generate_orders"`
	GenerateOutlets   int       `mapstructure:"generate_outlets"`
	GenerateCustomers int       `mapstructure:"generate_customers"`
	StartDate         time.Time `mapstructure:"start_date"`
	EndDate           time.Time `mapstructure:"end_date"`
}

// LoadConfig initializes and reads the configuration using Viper. A missing
// config file is only an error when one was named explicitly; flags and
// environment variables are enough to run without one.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	viper.SetDefault("source", "csv")
	viper.SetDefault("output_format", "console")
	viper.SetDefault("output_destination", "local")
	viper.SetDefault("kafka_topic_prefix", "restalytics")
	viper.SetDefault("generate_orders", 5000)
	viper.SetDefault("generate_outlets", 4)
	viper.SetDefault("generate_customers", 400)
	viper.SetDefault("seed", 42)

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
