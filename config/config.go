package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

// GEMINI_API_KEY_ENV is the environment variable holding the credential for
// all four generative collaborators. A missing key is a startup-time fatal
// configuration error, never a per-run error.
const GEMINI_API_KEY_ENV = "GEMINI_API_KEY"

type AppConfig struct {
	Logging               LoggingConfig `yaml:"logging"`
	Gemini                GeminiConfig  `yaml:"gemini"`
	Server                ServerConfig  `yaml:"server"`
	DefaultPerSourceCount int           `yaml:"default_per_source_count"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// GeminiConfig names the models used per collaborator. The text model serves
// discovery, analysis and draft composition; the image model serves
// thumbnail generation.
type GeminiConfig struct {
	TextModel  string `yaml:"text_model"`
	ImageModel string `yaml:"image_model"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	applyDefaults(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func applyDefaults(c *AppConfig) {
	if c.Gemini.TextModel == "" {
		c.Gemini.TextModel = "gemini-2.5-flash"
	}
	if c.Gemini.ImageModel == "" {
		c.Gemini.ImageModel = "imagen-4.0-generate-001"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.DefaultPerSourceCount <= 0 {
		c.DefaultPerSourceCount = 2
	}
}

// GeminiAPIKey returns the collaborator credential, or an error when it is
// absent. Callers in cmd/ treat the error as fatal before starting any run.
func GeminiAPIKey() (string, error) {
	key := os.Getenv(GEMINI_API_KEY_ENV)
	if key == "" {
		return "", fmt.Errorf("%s environment variable is not set", GEMINI_API_KEY_ENV)
	}
	return key, nil
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
