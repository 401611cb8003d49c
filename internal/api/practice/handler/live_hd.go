package practiceHandler

import (
	"EmotiClose/internal/api/practice"
	"time"

	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"
)

// handleLive scores emotion frames over a websocket for one active session.
// Each inbound JSON frame is scored like an HTTP utterance and the result is
// written straight back, so the client sees metrics update as it speaks.
func (h *PracticeHandler) handleLive(c *websocket.Conn) {
	h.log.Info("Live scoring client connected")
	defer h.log.Info("Live scoring client disconnected")

	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		c.WriteJSON(practice.LiveResult{Error: "unauthorized"})
		return
	}

	sessionID := c.Params("id")

	c.SetPingHandler(func(data string) error {
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	maxReadTimeout := 60 * time.Second

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		var frame practice.LiveFrame
		if err := c.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Live scoring websocket error: %v", err)
			} else {
				h.log.Info("Live scoring connection closed")
			}
			break
		}

		res, err := h.practiceService.SubmitUtterance(context.Background(), userID, sessionID, practice.UtteranceRequest{
			Emotions:   frame.Emotions,
			Transcript: frame.Transcript,
		})
		if err != nil {
			if writeErr := c.WriteJSON(practice.LiveResult{Error: err.Error()}); writeErr != nil {
				h.log.Errorf("Error sending error response: %v", writeErr)
				break
			}
			continue
		}

		if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			h.log.Errorf("Error setting write deadline: %v", err)
			break
		}

		if err := c.WriteJSON(practice.LiveResult{
			Metrics:      res.Metrics,
			Feedback:     res.Feedback,
			Intent:       res.Intent,
			MessageCount: res.MessageCount,
		}); err != nil {
			h.log.Errorf("Error writing JSON response: %v", err)
			break
		}

		if err := c.SetWriteDeadline(time.Time{}); err != nil {
			h.log.Errorf("Error resetting write deadline: %v", err)
			break
		}
	}
}
