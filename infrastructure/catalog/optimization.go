package catalog

import (
	_ "embed"

	"github.com/pkg/errors"
	"github.com/vfg2006/geo-content-api/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/optimization.yaml
var embeddedOptimization []byte

type optimizationFile struct {
	Platforms  map[string][]string          `yaml:"platforms"`
	Goals      map[string]string            `yaml:"goals"`
	Strategies map[string]map[string]string `yaml:"strategies"`
	Tips       map[string][]string          `yaml:"tips"`
}

// StrategyTable guarda as estratégias por plataforma e objetivo e as dicas por plataforma
type StrategyTable struct {
	platforms  map[string][]string
	goals      map[string]string
	strategies map[string]map[string]string
	tips       map[string][]string
}

func LoadStrategies() (*StrategyTable, error) {
	return ParseStrategies(embeddedOptimization)
}

func ParseStrategies(data []byte) (*StrategyTable, error) {
	var file optimizationFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "catalog: decoding optimization strategies")
	}

	if len(file.Strategies) == 0 {
		return nil, errors.New("catalog: no optimization strategies defined")
	}

	return &StrategyTable{
		platforms:  file.Platforms,
		goals:      file.Goals,
		strategies: file.Strategies,
		tips:       file.Tips,
	}, nil
}

// Strategy busca a estratégia exata para o par plataforma/objetivo
func (t *StrategyTable) Strategy(platform, goal string) (string, bool) {
	strategy, ok := t.strategies[platform][goal]
	return strategy, ok
}

func (t *StrategyTable) Tips(platform string) ([]string, bool) {
	tips, ok := t.tips[platform]
	if !ok || len(tips) == 0 {
		return nil, false
	}
	return append([]string(nil), tips...), true
}

func (t *StrategyTable) Options() *domain.OptimizationOptions {
	options := &domain.OptimizationOptions{
		Platforms: make(map[string][]string, len(t.platforms)),
		Goals:     make(map[string]string, len(t.goals)),
	}
	for platform, channels := range t.platforms {
		options.Platforms[platform] = append([]string(nil), channels...)
	}
	for goal, description := range t.goals {
		options.Goals[goal] = description
	}
	return options
}
