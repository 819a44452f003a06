// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(assignPartnerHandler, schedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// PartnerAssignmentJob sweeps the unassigned order backlog on its schedule
// (every second by default) and pairs waiting orders with available delivery
// partners, so an order placed while the whole fleet was busy is picked up as
// soon as a partner frees.
//
// The sweep treats an empty backlog and a fully busy fleet as expected
// outcomes and does not log them; any other failure is logged as an error.
package jobs
