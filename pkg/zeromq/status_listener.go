package zeromq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	zmq "github.com/pebbe/zmq4"
)

// AgentStatusSink receives status reports parsed off the status socket.
type AgentStatusSink interface {
	UpdateAgentStatus(agentID, status string, batteryPercent float64, timestampMs int64)
}

type agentStatusReport struct {
	AgentID        string  `json:"agent_id"`
	Status         string  `json:"status"`
	BatteryPercent float64 `json:"battery_percent"`
	TimestampMs    int64   `json:"timestamp_ms"`
}

// StatusListener subscribes to agent status broadcasts and forwards them to
// the sink.
type StatusListener struct {
	socket *zmq.Socket
	sink   AgentStatusSink
	logger *log.Logger
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewStatusListener(bindAddress string, sink AgentStatusSink, logger *log.Logger) (*StatusListener, error) {
	socket, err := zmq.NewSocket(zmq.SUB)
	if err != nil {
		return nil, fmt.Errorf("failed to create SUB socket: %w", err)
	}

	if err := socket.Bind(bindAddress); err != nil {
		socket.Close()
		return nil, fmt.Errorf("failed to bind SUB socket to %s: %w", bindAddress, err)
	}

	if err := socket.SetSubscribe(""); err != nil {
		socket.Close()
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	l := &StatusListener{
		socket: socket,
		sink:   sink,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}

	logger.Printf("Status socket bound to %s", bindAddress)
	return l, nil
}

func (l *StatusListener) Start() {
	l.wg.Add(1)
	go l.listenLoop()
}

func (l *StatusListener) listenLoop() {
	defer l.wg.Done()

	poller := zmq.NewPoller()
	poller.Add(l.socket, zmq.POLLIN)

	for {
		select {
		case <-l.ctx.Done():
			return
		default:
		}

		sockets, err := poller.Poll(100 * time.Millisecond)
		if err != nil {
			if l.ctx.Err() != nil {
				return
			}
			l.logger.Printf("Status poll error: %v", err)
			continue
		}

		if len(sockets) == 0 {
			continue
		}

		data, err := l.socket.RecvBytes(0)
		if err != nil {
			l.logger.Printf("Status receive error: %v", err)
			continue
		}

		var report agentStatusReport
		if err := json.Unmarshal(data, &report); err != nil {
			l.logger.Printf("Malformed status report: %v", err)
			continue
		}
		if report.AgentID == "" {
			continue
		}

		l.sink.UpdateAgentStatus(report.AgentID, report.Status, report.BatteryPercent, report.TimestampMs)
	}
}

func (l *StatusListener) Close() error {
	l.cancel()
	l.wg.Wait()
	return l.socket.Close()
}
