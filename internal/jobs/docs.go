// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, with a seconds field) and
// only observe the system: they sample state and publish it as Prometheus
// gauges. They never change orders.
//
// # Available Jobs
//
// 1. HubReportJob - samples the live event hubs (subscribers, buffered, published, dropped)
// 2. OrderBacklogJob - counts orders per stage and the age of the oldest waiting order
//
// # Usage
//
//	hubJob := jobs.NewHubReportJob(broadcaster, m, "*/30 * * * * *", logger)
//	backlogJob := jobs.NewOrderBacklogJob(backlogHandler, m, kernel.SystemClock(), "*/30 * * * * *", logger)
//	jobManager := jobs.NewJobManager(hubJob, backlogJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed backlog query is logged; the gauges keep their previous values
// - Failed job starts will stop any already running jobs
package jobs
