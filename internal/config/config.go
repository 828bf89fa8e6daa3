package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	MailDriverSMTP  = "smtp"
	MailDriverGmail = "gmail"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	Mail struct {
		Driver   string        `mapstructure:"driver"`
		User     string        `mapstructure:"user"`
		Password string        `mapstructure:"password"`
		Receiver string        `mapstructure:"receiver"`
		Host     string        `mapstructure:"host"`
		Port     int           `mapstructure:"port"`
		Timeout  time.Duration `mapstructure:"timeout"`

		Gmail struct {
			ClientID     string `mapstructure:"client_id"`
			ClientSecret string `mapstructure:"client_secret"`
			RefreshToken string `mapstructure:"refresh_token"`
		} `mapstructure:"gmail"`
	} `mapstructure:"mail"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	Jaeger struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"jaeger"`
}

// LoadConfig reads config.yaml from the given search paths (the working
// directory when none are given), then .env, then the environment.
func LoadConfig(paths ...string) (cfg Config, err error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	envFiles := make([]string, 0, len(paths))
	for _, p := range paths {
		envFiles = append(envFiles, strings.TrimSuffix(p, "/")+"/.env")
	}
	if err = godotenv.Load(envFiles...); err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("mail.driver", MailDriverSMTP)
	v.SetDefault("mail.host", "smtp.gmail.com")
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.timeout", 10*time.Second)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("app.env", "APP_ENV")

	v.BindEnv("mail.driver", "MAIL_DRIVER")
	v.BindEnv("mail.user", "EMAIL_USER")
	v.BindEnv("mail.password", "EMAIL_PASS")
	v.BindEnv("mail.receiver", "EMAIL_RECEIVER")
	v.BindEnv("mail.host", "SMTP_HOST")
	v.BindEnv("mail.port", "SMTP_PORT")
	v.BindEnv("mail.timeout", "MAIL_TIMEOUT")
	v.BindEnv("mail.gmail.client_id", "GMAIL_CLIENT_ID")
	v.BindEnv("mail.gmail.client_secret", "GMAIL_CLIENT_SECRET")
	v.BindEnv("mail.gmail.refresh_token", "GMAIL_REFRESH_TOKEN")

	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("jaeger.otlp_endpoint", "OTEL_EXPORTER_OTLP_ENDPOINT")

	err = v.Unmarshal(&cfg)
	return
}
