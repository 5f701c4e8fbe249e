package zeromq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	zmq "github.com/pebbe/zmq4"
)

// Message types used on the command (REP) socket.
const (
	MsgTypeConfigRequest  = "CONFIG_REQUEST"
	MsgTypeConfigResponse = "CONFIG_RESPONSE"
	MsgTypeConfigUpdate   = "CONFIG_UPDATE"
	MsgTypeActionSubmit   = "ACTION_SUBMIT"
	MsgTypeActionAck      = "ACTION_ACK"
	MsgTypeError          = "ERROR"
)

var (
	ErrServiceClosed      = errors.New("zeromq service is closed")
	ErrInvalidMessage     = errors.New("invalid message format")
	ErrUnknownMessageType = errors.New("unknown message type")
)

// ZeroMQMessage is the JSON envelope exchanged on the command socket.
type ZeroMQMessage struct {
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// MessageHandler processes a single inbound message and returns the reply.
type MessageHandler interface {
	HandleMessage(msg *ZeroMQMessage) (*ZeroMQMessage, error)
}

// MessageDispatcher routes inbound envelopes to registered handlers by type.
type MessageDispatcher struct {
	handlers map[string]MessageHandler
	mu       sync.RWMutex
	logger   *log.Logger
}

func NewMessageDispatcher(logger *log.Logger) *MessageDispatcher {
	return &MessageDispatcher{
		handlers: make(map[string]MessageHandler),
		logger:   logger,
	}
}

func (d *MessageDispatcher) RegisterHandler(msgType string, handler MessageHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[msgType] = handler
}

// Dispatch parses the raw frame and invokes the matching handler.
func (d *MessageDispatcher) Dispatch(data []byte) (*ZeroMQMessage, error) {
	var msg ZeroMQMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if msg.Type == "" {
		return nil, fmt.Errorf("%w: missing type", ErrInvalidMessage)
	}

	d.mu.RLock()
	handler, ok := d.handlers[msg.Type]
	d.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMessageType, msg.Type)
	}

	return handler.HandleMessage(&msg)
}

// MessageReceiver owns the REP command socket and runs the request loop.
type MessageReceiver struct {
	socket     *zmq.Socket
	dispatcher *MessageDispatcher
	logger     *log.Logger
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	closed     bool
	mu         sync.Mutex
}

func NewMessageReceiver(bindAddress string, dispatcher *MessageDispatcher, logger *log.Logger) (*MessageReceiver, error) {
	socket, err := zmq.NewSocket(zmq.REP)
	if err != nil {
		return nil, fmt.Errorf("failed to create REP socket: %w", err)
	}

	if err := socket.Bind(bindAddress); err != nil {
		socket.Close()
		return nil, fmt.Errorf("failed to bind REP socket to %s: %w", bindAddress, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	r := &MessageReceiver{
		socket:     socket,
		dispatcher: dispatcher,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}

	logger.Printf("Command socket bound to %s", bindAddress)
	return r, nil
}

// Start runs the receive loop until Close is called.
func (r *MessageReceiver) Start() {
	r.wg.Add(1)
	go r.receiveLoop()
}

func (r *MessageReceiver) receiveLoop() {
	defer r.wg.Done()

	poller := zmq.NewPoller()
	poller.Add(r.socket, zmq.POLLIN)

	for {
		select {
		case <-r.ctx.Done():
			return
		default:
		}

		sockets, err := poller.Poll(100 * time.Millisecond)
		if err != nil {
			if r.ctx.Err() != nil {
				return
			}
			r.logger.Printf("Poll error: %v", err)
			continue
		}

		if len(sockets) == 0 {
			continue
		}

		data, err := r.socket.RecvBytes(0)
		if err != nil {
			r.logger.Printf("Receive error: %v", err)
			continue
		}

		reply, err := r.dispatcher.Dispatch(data)
		if err != nil {
			r.logger.Printf("Dispatch error: %v", err)
			reply = ErrorMessage(err)
		}

		replyData, err := json.Marshal(reply)
		if err != nil {
			r.logger.Printf("Failed to marshal reply: %v", err)
			replyData, _ = json.Marshal(ErrorMessage(err))
		}

		if _, err := r.socket.SendBytes(replyData, 0); err != nil {
			r.logger.Printf("Send error: %v", err)
		}
	}
}

func (r *MessageReceiver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true

	r.cancel()
	r.wg.Wait()
	return r.socket.Close()
}

// ErrorMessage builds an ERROR envelope carrying the error text.
func ErrorMessage(err error) *ZeroMQMessage {
	return &ZeroMQMessage{
		Type:      MsgTypeError,
		Timestamp: time.Now().UnixMilli(),
		Data:      map[string]interface{}{"error": err.Error()},
	}
}

// MessageSender owns the PUB socket used to publish actions and notifications.
type MessageSender struct {
	socket *zmq.Socket
	logger *log.Logger
	mu     sync.Mutex
	closed bool
}

func NewMessageSender(bindAddress string, logger *log.Logger) (*MessageSender, error) {
	socket, err := zmq.NewSocket(zmq.PUB)
	if err != nil {
		return nil, fmt.Errorf("failed to create PUB socket: %w", err)
	}

	if err := socket.Bind(bindAddress); err != nil {
		socket.Close()
		return nil, fmt.Errorf("failed to bind PUB socket to %s: %w", bindAddress, err)
	}

	logger.Printf("Publish socket bound to %s", bindAddress)
	return &MessageSender{socket: socket, logger: logger}, nil
}

// PublishMessage publishes data under topic using two-frame envelope framing.
func (s *MessageSender) PublishMessage(topic string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrServiceClosed
	}

	if _, err := s.socket.Send(topic, zmq.SNDMORE); err != nil {
		return fmt.Errorf("failed to send topic frame: %w", err)
	}
	if _, err := s.socket.SendBytes(data, 0); err != nil {
		return fmt.Errorf("failed to send data frame: %w", err)
	}
	return nil
}

func (s *MessageSender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.socket.Close()
}

// ZeroMQService bundles the command receiver and the publisher.
type ZeroMQService struct {
	Receiver   *MessageReceiver
	Sender     *MessageSender
	Dispatcher *MessageDispatcher
	logger     *log.Logger
}

func NewZeroMQService(commandBindAddress, publishBindAddress string, logger *log.Logger) (*ZeroMQService, error) {
	dispatcher := NewMessageDispatcher(logger)

	receiver, err := NewMessageReceiver(commandBindAddress, dispatcher, logger)
	if err != nil {
		return nil, err
	}

	sender, err := NewMessageSender(publishBindAddress, logger)
	if err != nil {
		receiver.Close()
		return nil, err
	}

	return &ZeroMQService{
		Receiver:   receiver,
		Sender:     sender,
		Dispatcher: dispatcher,
		logger:     logger,
	}, nil
}

func (s *ZeroMQService) Start() {
	s.Receiver.Start()
}

func (s *ZeroMQService) Close() error {
	var firstErr error
	if err := s.Receiver.Close(); err != nil {
		firstErr = err
	}
	if err := s.Sender.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
