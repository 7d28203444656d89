package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	json "github.com/go-json-experiment/json"
	"github.com/goccy/go-yaml"

	"github.com/Yamashou/methodgen/model"
)

// DefaultConfigFilenames are searched in order by FindConfigFile.
var DefaultConfigFilenames = []string{".methodgen.yml", "methodgen.yml", ".methodgen.yaml", "methodgen.yaml"}

// Config represents the methodgen config file.
type Config struct {
	Model         []string            `yaml:"model"`
	Output        string              `yaml:"output,omitempty"`
	ObjectMethods ObjectMethodsConfig `yaml:"objectmethods,omitempty"`
}

// ObjectMethodsConfig are the allowed options for the 'objectmethods' config.
type ObjectMethodsConfig struct {
	SkipToString bool `yaml:"skip_to_string,omitempty"`
}

// FindConfigFile は dir から親ディレクトリへ遡りながら設定ファイルを探す。
func FindConfigFile(dir string, filenames []string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("unable to resolve directory: %w", err)
	}

	for {
		for _, name := range filenames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("unable to find config file, tried %s", strings.Join(filenames, ", "))
		}
		dir = parent
	}
}

// LoadConfig loads and parses the methodgen config.
func LoadConfig(configFilename string) (*Config, error) {
	configContent, err := os.ReadFile(configFilename)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	var c Config

	yamlDecoder := yaml.NewDecoder(bytes.NewReader([]byte(os.ExpandEnv(string(configContent)))), yaml.DisallowUnknownField())
	if err := yamlDecoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	// validation
	if len(c.Model) == 0 {
		return nil, errors.New("'model' not specified. Use model to list the class model files to generate methods for")
	}

	return &c, nil
}

// LoadModel はモデル記述ファイルを読み込み、リンク済みの Unit を返す。
func (c *Config) LoadModel() (*model.Unit, error) {
	filenames, err := modelFilenames(c.Model)
	if err != nil {
		return nil, err
	}

	files := make([]*model.File, 0, len(filenames))
	for _, filename := range filenames {
		f, err := LoadModelFile(filename)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	unit, err := model.Link(files...)
	if err != nil {
		return nil, fmt.Errorf("link model failed: %w", err)
	}

	return unit, nil
}

// LoadModelFile は拡張子に応じて YAML または JSON のモデル記述ファイルをデコードする。
// どちらの形式でも未知のキーはエラーになる。
func LoadModelFile(filename string) (*model.File, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to open model: %w", err)
	}

	var f model.File

	switch ext := filepath.Ext(filename); ext {
	case ".yml", ".yaml":
		if err := yaml.NewDecoder(bytes.NewReader(content), yaml.DisallowUnknownField()).Decode(&f); err != nil {
			return nil, fmt.Errorf("unable to parse model %s: %w", filename, err)
		}
	case ".json":
		if err := json.Unmarshal(content, &f, json.RejectUnknownMembers(true)); err != nil {
			return nil, fmt.Errorf("unable to parse model %s: %w", filename, err)
		}
	default:
		return nil, fmt.Errorf("unsupported model file extension %q: %s", ext, filename)
	}

	return &f, nil
}

// modelFilenames はグロブを展開し、重複を除いた上でパターンごとにソートして返す。
func modelFilenames(patterns []string) ([]string, error) {
	var filenames []string

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid model pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no model files matched %q", pattern)
		}

		slices.Sort(matches)
		for _, m := range matches {
			if !slices.Contains(filenames, m) {
				filenames = append(filenames, m)
			}
		}
	}

	return filenames, nil
}
