package app

import "sturgeon/internal/domain"

// App bundles the services the CLI commands call into.
type App struct {
	Keys   domain.KeyService
	Cipher domain.CipherService
	Tape   domain.TapeService
}

func New(keys domain.KeyService, cipher domain.CipherService, tape domain.TapeService) *App {
	return &App{
		Keys:   keys,
		Cipher: cipher,
		Tape:   tape,
	}
}
