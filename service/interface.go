package service

// Service is the lifecycle of a long-lived subsystem: the speaker, the
// spectator feed listener, the logic scheduler
//
// Lifecycle:
//  1. Construction
//  2. Init(args...) - acquire devices, apply settings
//  3. Start() - launch background goroutines
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must start before this one
	Dependencies() []string

	// Init configures the service; args are service-specific
	Init(args ...any) error

	// Start begins service operation, called after every service initialized
	Start() error

	// Stop halts the service; must be idempotent
	Stop() error
}
