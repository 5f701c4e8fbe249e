package processing

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/agent-motor/controller/pkg/actions"
	"github.com/agent-motor/controller/pkg/config"
)

// testLogger discards all output.
type testLogger struct{}

func (testLogger) Debugf(format string, args ...interface{}) {}
func (testLogger) Infof(format string, args ...interface{})  {}
func (testLogger) Warnf(format string, args ...interface{})  {}
func (testLogger) Errorf(format string, args ...interface{}) {}
func (testLogger) Fatalf(format string, args ...interface{}) {}

func TestPoolExecutesJobs(t *testing.T) {
	pool := NewActionPool(PriorityStandard, 2, 10, testLogger{})

	var executed int64
	pool.SetProcessor(func(job *Job) error {
		atomic.AddInt64(&executed, 1)
		return nil
	})

	var results int64
	pool.SetResultHandler(func(result *Result) {
		if result.Err != nil {
			t.Errorf("Unexpected result error: %v", result.Err)
		}
		atomic.AddInt64(&results, 1)
	})

	pool.Start()

	const jobs = 5
	for i := 0; i < jobs; i++ {
		job := &Job{
			CommandID:  "cmd",
			Action:     actions.NewMoveForward("agent_01", 0.1),
			ReceivedNs: GetCurrentTimestamp(),
		}
		if !pool.Enqueue(job) {
			t.Fatalf("Enqueue %d failed", i)
		}
	}

	// Stop drains the queue before returning.
	pool.Stop()

	if got := atomic.LoadInt64(&executed); got != jobs {
		t.Errorf("Expected %d executed jobs, got %d", jobs, got)
	}
	if got := atomic.LoadInt64(&results); got != jobs {
		t.Errorf("Expected %d results, got %d", jobs, got)
	}

	metrics := pool.GetMetrics()
	if metrics.ProcessedCount != jobs {
		t.Errorf("Expected processed count %d, got %d", jobs, metrics.ProcessedCount)
	}
	if metrics.ErrorCount != 0 {
		t.Errorf("Expected no errors, got %d", metrics.ErrorCount)
	}
}

func TestPoolRejectsWhenStopped(t *testing.T) {
	pool := NewActionPool(PriorityLow, 1, 1, testLogger{})

	job := &Job{CommandID: "cmd", Action: actions.NewTurnLeft("agent_01", 45)}
	if pool.Enqueue(job) {
		t.Errorf("Expected Enqueue to fail before Start")
	}
}

func TestDirectorRoutesByPriority(t *testing.T) {
	registry := NewActionRegistry(testLogger{})
	registry.LoadFromConfig(&config.Config{
		ActionMappings: []config.ActionMapping{
			{Action: "set_agent_pose", Priority: PriorityHigh},
			{Action: "move_forward", Priority: PriorityStandard},
		},
		Defaults: config.DefaultsConfig{Priority: PriorityStandard},
	})

	director := NewActionDirector(testLogger{}, registry, &DirectorOptions{DefaultQueueSize: 10})
	director.Initialize(1, 1, 1)

	var mu sync.Mutex
	executed := make(map[string]int)
	director.SetProcessor(func(job *Job) error {
		mu.Lock()
		executed[job.Action.Name()]++
		mu.Unlock()
		return nil
	})

	director.Start()

	jobs := []*Job{
		{CommandID: "1", Action: actions.NewSetAgentPose("a", actions.VectorXYZ{}, actions.QuaternionWXYZ{1, 0, 0, 0})},
		{CommandID: "2", Action: actions.NewMoveForward("a", 0.5)},
		// Unmapped action falls back to STANDARD.
		{CommandID: "3", Action: actions.NewTurnRight("a", 45)},
	}
	for _, job := range jobs {
		job.ReceivedNs = GetCurrentTimestamp()
		if err := director.Route(job); err != nil {
			t.Fatalf("Route(%s) failed: %v", job.Action.Name(), err)
		}
	}

	director.Stop()

	for _, name := range []string{"set_agent_pose", "move_forward", "turn_right"} {
		if executed[name] != 1 {
			t.Errorf("Expected %s executed once, got %d", name, executed[name])
		}
	}

	stats := registry.GetStats()
	if stats["turn_right"]["priority"] != PriorityStandard {
		t.Errorf("Expected turn_right registered at STANDARD, got %v", stats["turn_right"]["priority"])
	}
}

func TestDirectorQueueBuffersBurstWithZeroOptions(t *testing.T) {
	registry := NewActionRegistry(testLogger{})
	// Zero-value options mirror a bootstrap config without queue_size.
	director := NewActionDirector(testLogger{}, registry, &DirectorOptions{})
	director.Initialize(1, 1, 1)

	release := make(chan struct{})
	var processed int64
	director.SetProcessor(func(job *Job) error {
		<-release
		atomic.AddInt64(&processed, 1)
		return nil
	})

	director.Start()

	const burst = 10
	for i := 0; i < burst; i++ {
		job := &Job{
			CommandID:  "cmd",
			Action:     actions.NewMoveForward("a", 0.1),
			ReceivedNs: GetCurrentTimestamp(),
		}
		// With all workers parked, every job in the burst must still queue.
		if err := director.Route(job); err != nil {
			t.Fatalf("Route %d failed while workers were busy: %v", i, err)
		}
	}

	close(release)
	director.Stop()

	if got := atomic.LoadInt64(&processed); got != burst {
		t.Errorf("Expected %d processed jobs, got %d", burst, got)
	}
}

func TestEnqueueDuringStopDoesNotPanic(t *testing.T) {
	pool := NewActionPool(PriorityStandard, 1, 4, testLogger{})
	pool.SetProcessor(func(job *Job) error { return nil })
	pool.Start()

	var wg sync.WaitGroup
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			job := &Job{CommandID: "cmd", Action: actions.NewMoveForward("a", 0.1)}
			for {
				select {
				case <-done:
					return
				default:
					pool.Enqueue(job)
				}
			}
		}()
	}

	time.Sleep(10 * time.Millisecond)
	pool.Stop()
	close(done)
	wg.Wait()

	if pool.Enqueue(&Job{CommandID: "cmd", Action: actions.NewTurnLeft("a", 45)}) {
		t.Errorf("Expected Enqueue to fail after Stop")
	}
}

func TestDirectorRejectsWhenStopped(t *testing.T) {
	registry := NewActionRegistry(testLogger{})
	director := NewActionDirector(testLogger{}, registry, nil)
	director.Initialize(1, 1, 1)

	job := &Job{CommandID: "1", Action: actions.NewMoveForward("a", 1), ReceivedNs: time.Now().UnixNano()}
	if err := director.Route(job); err == nil {
		t.Errorf("Expected Route to fail before Start")
	}
}
