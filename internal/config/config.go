package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Config анмаршлит данные из конфига и окружения в структуры
type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Blockchain Blockchain `yaml:"blockchain"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:5000"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Blockchain описывает подключение к ноде Fhenix
type Blockchain struct {
	RPCURL  string `yaml:"rpc_url" env:"FHENIX_RPC_URL" env-default:"https://api.testnet.fhenix.zone:7747"`
	ChainID int64  `yaml:"chain_id" env:"FHENIX_CHAIN_ID" env-default:"42069"`
}

// MustLoad выгружает конфиг: .env, затем файл (если задан путь), затем окружение.
// Паникует, если конфиг прочитать не удалось.
func MustLoad() *Config {
	loadDotEnv(".env")

	path := fetchConfigPath()

	var (
		cfg *Config
		err error
	)
	if path == "" {
		cfg, err = LoadFromEnv()
	} else {
		cfg, err = LoadByPath(path)
	}
	if err != nil {
		panic("cannot read config: " + err.Error())
	}

	return cfg
}

// LoadByPath читает YAML-файл; переменные окружения имеют приоритет над файлом.
func LoadByPath(configPath string) (*Config, error) {
	const op = "config.LoadByPath"

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: config file does not exist: %s", op, configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

// LoadFromEnv собирает конфиг только из переменных окружения и дефолтов.
func LoadFromEnv() (*Config, error) {
	const op = "config.LoadFromEnv"

	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown env %q", c.Env)
	}

	if c.Blockchain.RPCURL == "" {
		return errors.New("blockchain rpc url is empty")
	}

	return nil
}

// loadDotEnv подтягивает переменные из .env, если файл есть. Уже заданные переменные не перезаписываются.
func loadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = godotenv.Load(path)
}

// fetchConfigPath извлекает путь конфигурации из флага командной строки или переменной среды.
// Приоритет: flag > env > default.
// Дефолтное значение — пустая строка (конфиг только из окружения).
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "config file path")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
