package controller

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/service"
	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
	log         *zap.Logger
}

func NewWebSocketController(gameService *service.GameService, log *zap.Logger) *WebSocketController {
	if log == nil {
		log = zap.NewNop()
	}
	return &WebSocketController{
		gameService: gameService,
		log:         log,
	}
}

// HandleConnection runs the read loop for one socket. The session pushes
// state frames on its own; this loop only consumes client requests and
// reports rejected ones back on the same socket.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)
	log := wsc.log.With(zap.String("gameId", gameID), zap.String("clientId", playerID))

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		log.Warn("failed to register connection", zap.Error(err))
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, playerID)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debug("read loop closed", zap.Error(err))
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Warn("unparseable frame", zap.Error(err))
			continue
		}
		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			log.Info("request rejected", zap.String("type", string(msg.Type)), zap.Error(err))
			wsc.gameService.SendError(gameID, playerID, err.Error())
		}
	}
}

func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		return wsc.gameService.HandleMove(gameID, playerID, move.From, move.To, move.Promotion)

	case ws.MessageTypeResign:
		return wsc.gameService.Resign(gameID, playerID)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
