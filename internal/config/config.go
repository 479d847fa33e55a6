package config

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Pg                    Pg       `yaml:"pg"`
	HttpPort              int      `yaml:"http_port"`
	UploadDir             string   `yaml:"upload_dir"`
	MaxUploadSizeBytes    int64    `yaml:"max_upload_size_bytes"`
	AllowedImageMimeTypes []string `yaml:"allowed_image_mime_types"`
	LogLevel              string   `yaml:"log_level"`
	LogJSON               bool     `yaml:"log_json"`
	SeedOnEmpty           bool     `yaml:"seed_on_empty"`
}

type Pg struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	User   string `yaml:"user"`
	Dbname string `yaml:"dbname"`
}

type Private struct {
	PgPassword string `yaml:"pg_password"`
}

func New(public Public, private Private) *Config {
	return &Config{public, private}
}

func (c *Config) PgPassword() string {
	return c.private.PgPassword
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	return &Config{public, private}
}
