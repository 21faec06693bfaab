package storage

import "github.com/Danik911/dublin-accommodation-bot/models"

// ResultWriter is the interface any run-result sink must satisfy.
type ResultWriter interface {
	Write(result *models.RunResult) error
	Close() error
}
