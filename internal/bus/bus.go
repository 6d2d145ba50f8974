// Package bus connects the assistant to an optional websocket hub so
// other shards can send it command lines remotely.
package bus

import (
	"context"
	"encoding/json"
	log "log/slog"
	"net/url"

	"github.com/gorilla/websocket"

	"iris/internal/command"
)

type Client struct {
	conn *websocket.Conn
}

type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Kind    string `json:"kind"`
	Content string `json:"content"`
}

func Dial(wsURL string) (*Client, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, err
	}

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, err
	}

	log.Info("connected to bus", "url", wsURL)
	return &Client{conn: conn}, nil
}

func (c *Client) Read() (*Message, error) {
	_, raw, err := c.conn.ReadMessage()
	if err != nil {
		return nil, err
	}

	var m Message
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) Write(m *Message) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, raw)
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// Serve feeds incoming bus lines through the dispatcher and writes the
// responses back, until the connection drops or a quit command lands.
// Quit from the bus ends only the bus loop, never the local session.
func Serve(ctx context.Context, c *Client, disp *command.Dispatcher) error {
	for {
		m, err := c.Read()
		if err != nil {
			return err
		}

		res := disp.Dispatch(ctx, m.Content)
		if res.Quit {
			return nil
		}
		if res.Text == "" {
			continue
		}

		reply := &Message{
			From:    "iris",
			To:      m.From,
			Kind:    "reply",
			Content: res.Text,
		}
		if err := c.Write(reply); err != nil {
			return err
		}
	}
}
