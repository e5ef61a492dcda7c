package model

// Scope carries the identity of the caller through usecases and
// repositories. Every data access is constrained to Scope.UserID.
type Scope struct {
	UserID   string
	Username string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
