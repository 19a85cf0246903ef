package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Source identifies where a note came from.
type Source string

const (
	SourceHTTP     Source = "http"
	SourceTelegram Source = "telegram"
	SourceCLI      Source = "cli"
)

// Scope carries caller identity through usecases.
type Scope struct {
	UserID string
	Source Source
}
