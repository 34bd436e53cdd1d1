// Package jobs provides scheduled background tasks for the package
// tracking service.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(dispatchNoticesHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is NotificationRelayJob, which drains the
// notification outbox every five seconds. Transport failures are recorded
// on the affected notice and retried on a later tick; they never
// propagate beyond the job.
package jobs
