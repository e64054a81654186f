package engine

import "errors"

var (
	// ErrInvalidConfig is returned by Config.Validate and NewGame
	ErrInvalidConfig = errors.New("invalid engine config")

	// ErrSchedulerRunning is returned when a scheduler is started twice
	ErrSchedulerRunning = errors.New("scheduler already running")

	// ErrSchedulerStopped is returned when a scheduler is started after its loop exited
	ErrSchedulerStopped = errors.New("scheduler stopped")
)
