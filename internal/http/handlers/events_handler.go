package handlers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"brushworks/internal/notify"
	"brushworks/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

type EventsHandler struct {
	Feed *notify.Broker
}

// Paintings streams change events for the paintings table as
// server-sent events. The subscription is released when the client goes
// away (detected on the next write).
func (h *EventsHandler) Paintings(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set("Connection", "keep-alive")

	sub := h.Feed.Subscribe(services.PaintingsTable)
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer sub.Close()
		keepalive := time.NewTicker(25 * time.Second)
		defer keepalive.Stop()
		for {
			select {
			case ev, ok := <-sub.C:
				if !ok {
					return
				}
				b, _ := json.Marshal(ev)
				fmt.Fprintf(w, "event: change\ndata: %s\n\n", b)
			case <-keepalive.C:
				fmt.Fprint(w, ": keepalive\n\n")
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
	}))
	return nil
}
