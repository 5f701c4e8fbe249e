package processing

import (
	"sync"
	"time"

	"github.com/agent-motor/controller/pkg/actions"
	customlog "github.com/agent-motor/controller/pkg/log"
)

// Job is one decoded action queued for execution, tagged with the command id
// handed back to the submitter.
type Job struct {
	CommandID  string
	Action     actions.Action
	ReceivedNs int64
}

// Result is the outcome of executing a job
type Result struct {
	Job *Job
	Err error
}

// ResultHandler is a function that handles execution results
type ResultHandler func(result *Result)

// ActionProcessor executes one queued job
type ActionProcessor func(job *Job) error

// ActionPool represents a priority-based worker pool draining jobs into a
// processor
type ActionPool struct {
	name          string
	workerCount   int
	logger        customlog.Logger
	jobQueue      chan *Job
	running       bool
	wg            sync.WaitGroup
	mu            sync.Mutex
	processor     ActionProcessor
	resultHandler ResultHandler
	queueSize     int
	metrics       *PoolMetrics
}

// PoolMetrics tracks metrics for an action pool
type PoolMetrics struct {
	ProcessedCount    int64
	ErrorCount        int64
	QueuedCount       int64
	LastProcessedTime int64
	ProcessingTimeAvg int64 // in microseconds
	ProcessingTimeMax int64 // in microseconds
	mu                sync.Mutex
}

// NewActionPool creates a new action pool
func NewActionPool(
	name string,
	workerCount int,
	queueSize int,
	logger customlog.Logger,
) *ActionPool {
	return &ActionPool{
		name:        name,
		workerCount: workerCount,
		queueSize:   queueSize,
		logger:      logger,
		jobQueue:    make(chan *Job, queueSize),
		metrics:     &PoolMetrics{},
	}
}

// SetProcessor sets the action processor function
func (p *ActionPool) SetProcessor(processor ActionProcessor) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processor = processor
}

// SetResultHandler sets the result handler function
func (p *ActionPool) SetResultHandler(handler ResultHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resultHandler = handler
}

// Enqueue adds a job to the queue for execution. The lock is held across
// the send so Stop cannot close the queue between the running check and
// the send; the send itself never blocks.
func (p *ActionPool) Enqueue(job *Job) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		p.logger.Warnf("%s pool not running, discarding action %s", p.name, job.Action.Name())
		return false
	}

	p.metrics.mu.Lock()
	p.metrics.QueuedCount++
	p.metrics.mu.Unlock()

	// Non-blocking enqueue; a full queue drops the job
	select {
	case p.jobQueue <- job:
		return true
	default:
		p.logger.Warnf("%s pool queue is full, discarding action %s", p.name, job.Action.Name())
		return false
	}
}

// Start starts the pool workers
func (p *ActionPool) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return
	}

	p.running = true
	p.logger.Infof("Starting %s priority pool with %d workers", p.name, p.workerCount)

	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Stop stops the pool
func (p *ActionPool) Stop() {
	p.mu.Lock()

	if !p.running {
		p.mu.Unlock()
		return
	}

	p.running = false
	// Close under the lock so a concurrent Enqueue never sends on a closed
	// channel. Unlock before waiting so workers can still read state.
	close(p.jobQueue)
	p.mu.Unlock()

	p.logger.Infof("Stopping %s priority pool", p.name)

	p.wg.Wait()
	p.logger.Infof("%s priority pool stopped", p.name)

	p.logMetrics()
}

// worker executes jobs from the queue
func (p *ActionPool) worker(id int) {
	defer p.wg.Done()

	p.logger.Debugf("%s pool worker %d started", p.name, id)

	for job := range p.jobQueue {
		name := job.Action.Name()
		p.logger.Debugf("%s pool worker %d executing %s for agent %s", p.name, id, name, job.Action.AgentID())

		p.mu.Lock()
		processor := p.processor
		resultHandler := p.resultHandler
		p.mu.Unlock()

		if processor == nil {
			p.logger.Errorf("No action processor set for %s pool", p.name)
			continue
		}

		startTime := time.Now()
		err := processor(job)
		processingTime := time.Since(startTime).Microseconds()

		p.metrics.mu.Lock()
		p.metrics.ProcessedCount++
		p.metrics.LastProcessedTime = time.Now().UnixNano()
		if p.metrics.ProcessingTimeAvg == 0 {
			p.metrics.ProcessingTimeAvg = processingTime
		} else {
			// Simple moving average
			p.metrics.ProcessingTimeAvg = (p.metrics.ProcessingTimeAvg + processingTime) / 2
		}
		if processingTime > p.metrics.ProcessingTimeMax {
			p.metrics.ProcessingTimeMax = processingTime
		}
		if err != nil {
			p.metrics.ErrorCount++
		}
		p.metrics.mu.Unlock()

		if err != nil {
			p.logger.Errorf("Error executing %s in %s pool: %v", name, p.name, err)
		}

		if resultHandler != nil {
			resultHandler(&Result{Job: job, Err: err})
		}
	}

	p.logger.Debugf("%s pool worker %d stopped", p.name, id)
}

// GetMetrics returns a copy of the current metrics
func (p *ActionPool) GetMetrics() PoolMetrics {
	p.metrics.mu.Lock()
	defer p.metrics.mu.Unlock()

	return PoolMetrics{
		ProcessedCount:    p.metrics.ProcessedCount,
		ErrorCount:        p.metrics.ErrorCount,
		QueuedCount:       p.metrics.QueuedCount,
		LastProcessedTime: p.metrics.LastProcessedTime,
		ProcessingTimeAvg: p.metrics.ProcessingTimeAvg,
		ProcessingTimeMax: p.metrics.ProcessingTimeMax,
	}
}

// logMetrics logs the current metrics
func (p *ActionPool) logMetrics() {
	metrics := p.GetMetrics()

	p.logger.Infof("%s pool metrics: processed=%d, errors=%d, avg_time=%dµs, max_time=%dµs",
		p.name, metrics.ProcessedCount, metrics.ErrorCount,
		metrics.ProcessingTimeAvg, metrics.ProcessingTimeMax)
}

// GetName returns the pool name
func (p *ActionPool) GetName() string {
	return p.name
}

// GetQueueLength returns the current length of the job queue
func (p *ActionPool) GetQueueLength() int {
	return len(p.jobQueue)
}

// GetQueueCapacity returns the capacity of the job queue
func (p *ActionPool) GetQueueCapacity() int {
	return p.queueSize
}
