package processing

import (
	"fmt"
	"sync"
	"time"

	customlog "github.com/agent-motor/controller/pkg/log"
)

// GetCurrentTimestamp gets the current timestamp in nanoseconds
func GetCurrentTimestamp() int64 {
	return time.Now().UnixNano()
}

// Constants for priority levels
const (
	PriorityHigh     = "HIGH"
	PriorityStandard = "STANDARD"
	PriorityLow      = "LOW"
)

// ActionDirector routes jobs to the appropriate pool based on the priority
// configured for the action variant
type ActionDirector struct {
	logger           customlog.Logger
	highPriorityPool *ActionPool
	standardPool     *ActionPool
	lowPriorityPool  *ActionPool
	registry         *ActionRegistry
	running          bool
	mu               sync.RWMutex

	defaultQueueSize int
}

// DirectorOptions holds configuration options for the ActionDirector
type DirectorOptions struct {
	// DefaultQueueSize caps each pool's job queue. Zero or negative falls
	// back to 100.
	DefaultQueueSize int
}

// NewActionDirector creates a new action director
func NewActionDirector(
	logger customlog.Logger,
	registry *ActionRegistry,
	options *DirectorOptions,
) *ActionDirector {
	queueSize := 100
	if options != nil && options.DefaultQueueSize > 0 {
		queueSize = options.DefaultQueueSize
	}

	return &ActionDirector{
		logger:           logger,
		registry:         registry,
		defaultQueueSize: queueSize,
	}
}

// Initialize creates the pools based on the provided worker counts
func (d *ActionDirector) Initialize(highWorkers, standardWorkers, lowWorkers int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.highPriorityPool = NewActionPool(PriorityHigh, highWorkers, d.defaultQueueSize, d.logger)
	d.standardPool = NewActionPool(PriorityStandard, standardWorkers, d.defaultQueueSize, d.logger)
	d.lowPriorityPool = NewActionPool(PriorityLow, lowWorkers, d.defaultQueueSize, d.logger)

	d.logger.Infof("Action Director initialized with pools: HIGH(%d), STANDARD(%d), LOW(%d)",
		highWorkers, standardWorkers, lowWorkers)
}

// SetProcessor sets the action processor function for all pools
func (d *ActionDirector) SetProcessor(processor ActionProcessor) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.highPriorityPool != nil {
		d.highPriorityPool.SetProcessor(processor)
	}
	if d.standardPool != nil {
		d.standardPool.SetProcessor(processor)
	}
	if d.lowPriorityPool != nil {
		d.lowPriorityPool.SetProcessor(processor)
	}
}

// SetResultHandler sets the result handler function for all pools
func (d *ActionDirector) SetResultHandler(handler ResultHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.highPriorityPool != nil {
		d.highPriorityPool.SetResultHandler(handler)
	}
	if d.standardPool != nil {
		d.standardPool.SetResultHandler(handler)
	}
	if d.lowPriorityPool != nil {
		d.lowPriorityPool.SetResultHandler(handler)
	}
}

// Route routes a job to the pool matching its action's configured priority.
// Actions with no mapping run at STANDARD priority.
func (d *ActionDirector) Route(job *Job) error {
	d.mu.RLock()
	running := d.running
	d.mu.RUnlock()

	if !running {
		return fmt.Errorf("action director is not running")
	}

	name := job.Action.Name()

	priority, exists := d.registry.GetPriority(name)
	if !exists {
		d.logger.Warnf("No priority configured for action '%s', using STANDARD", name)
		priority = PriorityStandard
	}
	d.registry.UpdateStats(name, job.ReceivedNs)

	var successful bool
	switch priority {
	case PriorityHigh:
		d.logger.Debugf("Routing action '%s' to HIGH priority pool", name)
		successful = d.highPriorityPool.Enqueue(job)
	case PriorityLow:
		d.logger.Debugf("Routing action '%s' to LOW priority pool", name)
		successful = d.lowPriorityPool.Enqueue(job)
	default:
		d.logger.Debugf("Routing action '%s' to STANDARD priority pool", name)
		successful = d.standardPool.Enqueue(job)
	}

	if !successful {
		return fmt.Errorf("failed to enqueue action '%s' (priority: %s)", name, priority)
	}

	return nil
}

// Start starts all pools
func (d *ActionDirector) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return
	}

	d.running = true
	d.logger.Infof("Starting Action Director")

	d.highPriorityPool.Start()
	d.standardPool.Start()
	d.lowPriorityPool.Start()
}

// Stop stops all pools
func (d *ActionDirector) Stop() {
	d.mu.Lock()
	running := d.running
	d.running = false
	d.mu.Unlock()

	if !running {
		return
	}

	d.logger.Infof("Stopping Action Director")

	d.highPriorityPool.Stop()
	d.standardPool.Stop()
	d.lowPriorityPool.Stop()

	d.logger.Infof("Action Director stopped")
}

// GetPoolMetrics returns metrics for all pools
func (d *ActionDirector) GetPoolMetrics() map[string]PoolMetrics {
	d.mu.RLock()
	defer d.mu.RUnlock()

	metrics := make(map[string]PoolMetrics)

	if d.highPriorityPool != nil {
		metrics[PriorityHigh] = d.highPriorityPool.GetMetrics()
	}
	if d.standardPool != nil {
		metrics[PriorityStandard] = d.standardPool.GetMetrics()
	}
	if d.lowPriorityPool != nil {
		metrics[PriorityLow] = d.lowPriorityPool.GetMetrics()
	}

	return metrics
}
