// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package biosignal

import (
	"context"
	"errors"
	"fmt"

	"nhooyr.io/websocket"
)

const DefaultURL = "ws://localhost:8765"

// Run connects to url and feeds every frame to h until the connection ends
// or ctx is cancelled. There is no reconnect: once Run returns, the session
// is over.
//
// A clean close (normal closure, going away, or ctx cancellation) returns nil
// after OnClose. Any other read failure is passed to OnError before OnClose
// and returned. Only text frames reach OnMessage; anything else goes to
// OnInvalidMessage.
func Run(ctx context.Context, url string, h Handler) error {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		err = fmt.Errorf("websocket dial: %w", err)
		h.OnError(err)
		return err
	}
	defer conn.Close(websocket.StatusNormalClosure, "closing")

	h.OnOpen()

	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil || isCleanClose(err) {
				h.OnClose()
				return nil
			}
			h.OnError(err)
			h.OnClose()
			return fmt.Errorf("read error: %w", err)
		}
		if typ != websocket.MessageText {
			h.OnInvalidMessage(fmt.Errorf("unexpected %v frame", typ))
			continue
		}
		h.OnMessage(data)
	}
}

func isCleanClose(err error) bool {
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return true
	}
	return errors.Is(err, context.Canceled)
}
