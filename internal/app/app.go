package app

import "blskdf/internal/domain"

// App is the set of services the CLI commands run against.
type App struct {
	Keys    domain.KeyDerivationService
	Seeds   domain.SeedService
	Vectors domain.VectorStore
}

func New(keys domain.KeyDerivationService, seeds domain.SeedService, vectors domain.VectorStore) *App {
	return &App{
		Keys:    keys,
		Seeds:   seeds,
		Vectors: vectors,
	}
}
