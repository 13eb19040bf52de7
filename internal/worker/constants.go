package worker

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// DefaultWorkerCount is used when a pool is asked for fewer than one worker
const DefaultWorkerCount = 1
