package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// defaultOutputDir is where saved files land when no directory is configured.
const defaultOutputDir = "./images"

type Server struct {
	API     Api     `yaml:"api"`
	Storage Storage `yaml:"storage"`
}

type Api struct {
	HTTPAddr string `yaml:"http_addr"`
}

type Storage struct {
	OutputDir string `yaml:"output_dir"`
}

func Parse(path string) (Server, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Server{}, fmt.Errorf("can't read config file: %w", err)
	}

	var cfg Server
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Server{}, fmt.Errorf("can't unmarshal config: %w", err)
	}

	if cfg.Storage.OutputDir == "" {
		cfg.Storage.OutputDir = defaultOutputDir
	}

	return cfg, nil
}

func (s Server) Validate() error {
	if s.API.HTTPAddr == "" {
		return errors.New("api.http_addr must be set")
	}
	if s.Storage.OutputDir == "" {
		return errors.New("storage.output_dir must be set")
	}

	return nil
}
