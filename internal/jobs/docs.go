// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions
// with seconds) and are started and stopped through JobManager:
//
//	reminder := jobs.NewRiderPoolReminderJob(handler, "0 */1 * * * *", 2*time.Minute, 5*time.Second, logger)
//	jobManager := jobs.NewJobManager(reminder)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// RiderPoolReminderJob broadcasts orders that are still waiting in
// notifying_riders to the rider pool again. A run that is still going
// when the next one is due is skipped.
//
// # Error Handling
//
// A failed run is logged and the schedule continues. Failed job starts
// stop any already running jobs.
package jobs
