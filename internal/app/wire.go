package app

import (
	"github.com/sirupsen/logrus"

	"blskdf/internal/domain"
	"blskdf/internal/services/keygen"
	"blskdf/internal/services/seed"
	"blskdf/internal/store"
)

// Wire builds the dependency graph from cfg.
func Wire(cfg *Config) (*App, error) {
	log := cfg.Logger()

	var vectors domain.VectorStore = store.EmbeddedStore{}
	if cfg.VectorsFile != "" {
		vectors = store.NewVectorFileStore(cfg.VectorsFile)
	}

	keys := keygen.New(cfg.Policy(), log.WithField("component", "keygen"))

	log.WithFields(logrus.Fields{
		"home":            cfg.Home,
		"min_seed_length": cfg.MinSeedLength,
		"workers":         cfg.Workers,
		"vectors":         cfg.VectorsFile,
	}).Debug("Wired app")

	return New(keys, seed.New(), vectors), nil
}
