// Package jobs provides scheduled background tasks for the operations board.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the request path should not do.
//
// # Available Jobs
//
// 1. PickupArchivalJob - Runs nightly to archive completed pickup runs past
// the retention window, releasing their pickup quota while keeping their
// order references for history
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(archiveHandler, retention, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Archival failures are logged and retried on the next scheduled run; a
// failed sweep never stops the scheduler.
package jobs
