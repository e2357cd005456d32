package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/count-ovro-files/internal/domain/repository"
	"github.com/diillson/count-ovro-files/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config, err := decodeConfig(fileExtension, fileData)
	if err != nil {
		return nil, err
	}

	if config.MaxDepth != nil && *config.MaxDepth < 0 {
		return nil, fmt.Errorf("invalid max_depth %d in %s: %w", *config.MaxDepth, filePath, types.ErrInvalidMaxDepth)
	}

	return config, nil
}

// decodeConfig escolhe o decodificador pela extensão do arquivo.
func decodeConfig(fileExtension string, fileData []byte) (*types.Config, error) {
	var config types.Config

	var err error
	switch fileExtension {
	case ".toml":
		if err = toml.Unmarshal(fileData, &config); err != nil {
			err = fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(fileData, &config); err != nil {
			err = fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err = json.Unmarshal(fileData, &config); err != nil {
			err = fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		err = fmt.Errorf("unsupported config file format: %s", fileExtension)
	}
	if err != nil {
		return nil, err
	}

	return &config, nil
}
