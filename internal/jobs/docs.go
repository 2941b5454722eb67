// Package jobs provides scheduled background tasks for the travel order
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. NotificationDispatchJob - Runs every second to drain the notification
// outbox and deliver pending status-change notifications to requesters
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(notificationRepository, notifier, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch job uses the cron expression "* * * * * *" (every second) so
// requesters see status-change notifications promptly after the admin's
// decision commits.
//
// # Error Handling
//
// Delivery is at-least-once: a notification is marked sent only after the
// notifier accepted it. Failures are logged and the batch stops, preserving
// oldest-first ordering on the next tick.
package jobs
