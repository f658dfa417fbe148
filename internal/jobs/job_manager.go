package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	hubReportJob    *HubReportJob
	orderBacklogJob *OrderBacklogJob
}

func NewJobManager(hubReportJob *HubReportJob, orderBacklogJob *OrderBacklogJob) *JobManager {
	return &JobManager{
		hubReportJob:    hubReportJob,
		orderBacklogJob: orderBacklogJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.hubReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start hub report job: %w", err)
	}

	if err := jm.orderBacklogJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.hubReportJob.Stop()
		return fmt.Errorf("failed to start order backlog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.orderBacklogJob.Stop()
	jm.hubReportJob.Stop()
}
