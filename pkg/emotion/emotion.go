package emotion

import (
	"EmotiClose/pkg/salescoring"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// IEmotionStream is the client for the upstream emotion-AI service. Audio
// chunks go out as binary websocket frames, emotion vectors come back as
// JSON.
type IEmotionStream interface {
	AnalyzeUtterance(audio []byte) (salescoring.EmotionVector, error)
	IsConnected() bool
	Reconnect() error
	Close()
}

type emotionStreamClient struct {
	conn         *websocket.Conn
	mu           sync.Mutex
	pingInterval time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration
}

type analysisResponse struct {
	Emotions map[string]float64 `json:"emotions"`
	Error    string             `json:"error,omitempty"`
}

func NewEmotionStreamClient() IEmotionStream {
	client := &emotionStreamClient{
		pingInterval: 30 * time.Second,
		readTimeout:  10 * time.Second,
		writeTimeout: 5 * time.Second,
	}

	go client.connectInBackground()

	return client
}

func (c *emotionStreamClient) connectInBackground() {
	if err := c.Reconnect(); err != nil {
		log.Printf("Initial connection to emotion AI failed: %v. Will retry on demand.", err)
	} else {
		log.Printf("Successfully connected to emotion AI service")
	}
}

func (c *emotionStreamClient) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

func (c *emotionStreamClient) Reconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}

	url := getEmotionStreamURL()

	log.Printf("Connecting to emotion AI at %s", url)

	dialer := websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", url, err)
	}

	conn.SetPingHandler(func(appData string) error {
		err := conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(c.writeTimeout))
		if err != nil {
			log.Printf("Error sending pong: %v", err)
		}
		return nil
	})

	c.conn = conn

	go c.keepAlive()

	return nil
}

func (c *emotionStreamClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

func (c *emotionStreamClient) keepAlive() {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		conn := c.conn

		if conn == nil {
			c.mu.Unlock()
			return
		}

		err := conn.WriteControl(
			websocket.PingMessage,
			[]byte{},
			time.Now().Add(c.writeTimeout),
		)

		if err != nil {
			log.Printf("Ping failed for emotion AI, marking connection as dead: %v", err)
			c.conn = nil
			conn.Close()
			c.mu.Unlock()
			return
		}

		c.mu.Unlock()
	}
}

func (c *emotionStreamClient) getConnection() (*websocket.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil, fmt.Errorf("not connected to emotion AI service")
	}

	return c.conn, nil
}

func (c *emotionStreamClient) AnalyzeUtterance(audio []byte) (salescoring.EmotionVector, error) {
	conn, err := c.getConnection()
	if err != nil {
		if err := c.Reconnect(); err != nil {
			return nil, fmt.Errorf("cannot connect to emotion AI service: %w", err)
		}
		conn, err = c.getConnection()
		if err != nil {
			return nil, err
		}
	}

	c.mu.Lock()

	conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))

	if err := conn.WriteMessage(websocket.BinaryMessage, audio); err != nil {
		c.conn = nil
		conn.Close()
		c.mu.Unlock()
		return nil, fmt.Errorf("error sending audio chunk: %w", err)
	}

	conn.SetReadDeadline(time.Now().Add(c.readTimeout))

	c.mu.Unlock()

	_, message, err := conn.ReadMessage()
	if err != nil {
		c.mu.Lock()
		c.conn = nil
		conn.Close()
		c.mu.Unlock()
		return nil, fmt.Errorf("error reading emotion response: %w", err)
	}

	c.mu.Lock()
	conn.SetReadDeadline(time.Time{})
	conn.SetWriteDeadline(time.Time{})
	c.mu.Unlock()

	var result analysisResponse
	if err := json.Unmarshal(message, &result); err != nil {
		return nil, fmt.Errorf("error unmarshaling emotion response: %w", err)
	}

	if result.Error != "" {
		return nil, fmt.Errorf("emotion AI error: %s", result.Error)
	}

	return salescoring.EmotionVector(result.Emotions), nil
}

func getEmotionStreamURL() string {
	url := os.Getenv("EMOTION_AI_URL")
	if url == "" {
		url = "ws://localhost:8000/v0/stream/models"
	}
	return url
}
