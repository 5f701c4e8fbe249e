package api

import (
	"encoding/json"
	"errors"
	"syscall"

	"github.com/gofiber/contrib/websocket"

	"github.com/agent-motor/controller/domain/motor"
	customlog "github.com/agent-motor/controller/pkg/log"
)

// ActionWebSocketHandler handles a control WebSocket connection. Each text
// frame is one wire action object; the reply frame reports acceptance or
// the decode failure.
func ActionWebSocketHandler(conn *websocket.Conn, logger customlog.Logger, motorService *motor.MotorService) {
	logger.Infof("Control WebSocket connected: %s", conn.RemoteAddr())
	var (
		mt  int
		msg []byte
		err error
	)
	for {
		if mt, msg, err = conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Errorf("Control WS read error: %v", err)
			} else if err != websocket.ErrCloseSent && !errors.Is(err, syscall.EPIPE) && !errors.Is(err, syscall.ECONNRESET) {
				logger.Infof("Control WS connection closed: %v", err)
			} else {
				logger.Infof("Control WS connection closed normally.")
			}
			break
		}

		if mt != websocket.TextMessage {
			logger.Infof("Ignoring non-text control WS message type: %d", mt)
			continue
		}

		commandID, err := motorService.SubmitJSON(msg)
		if err != nil {
			logger.Warnf("Rejected WS action: %v", err)
			writeWSResponse(conn, logger, map[string]interface{}{
				"status": "rejected",
				"error":  err.Error(),
			})
			continue
		}

		writeWSResponse(conn, logger, map[string]interface{}{
			"status":     "accepted",
			"command_id": commandID,
		})
	}
	logger.Infof("Control WebSocket disconnected: %s", conn.RemoteAddr())
}

func writeWSResponse(conn *websocket.Conn, logger customlog.Logger, payload map[string]interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Errorf("Failed to marshal WS response: %v", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		logger.Warnf("Failed to write WS response: %v", err)
	}
}
