// Package jobs provides scheduled background tasks for the marketplace
// service, implemented with github.com/robfig/cron/v3.
//
// The single job today is StoreScheduleJob, which runs at every full minute
// and reconciles each vendor's store-open flag with its configured working
// hours. Days marked inactive are left alone so manual open/close decisions
// survive on off days, and vendors whose state already matches the schedule
// are not written at all.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(syncStoreHoursHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
