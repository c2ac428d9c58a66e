package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"overcooked-client/storefront/internal/domain"
	"overcooked-client/storefront/internal/service"

	"github.com/gorilla/mux"
)

type streamEvent struct {
	name string
	data any
}

// openStream switches the response to server-sent events.
func openStream(w http.ResponseWriter) (http.Flusher, bool) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return nil, false
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()
	return flusher, true
}

func writeEvent(w http.ResponseWriter, flusher http.Flusher, ev streamEvent) error {
	payload, err := json.Marshal(ev.data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.name, payload); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}

func errorEvent(r *http.Request, err error) streamEvent {
	return streamEvent{name: "error", data: domain.ErrorResponseDTO{
		APIPath:      r.URL.Path,
		ErrorMessage: domain.Message(err),
	}}
}

// watchOrder streams the order timeline until the order reaches a terminal
// status or the client goes away.
func (h *Handler) watchOrder(w http.ResponseWriter, r *http.Request) {
	flusher, ok := openStream(w)
	if !ok {
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	events := make(chan streamEvent)
	send := func(ev streamEvent) {
		select {
		case events <- ev:
		case <-ctx.Done():
		}
	}

	sub := h.Orders.WatchOrder(ctx, mux.Vars(r)["id"], func(order domain.Order, err error) {
		if err != nil {
			send(errorEvent(r, err))
			return
		}
		send(streamEvent{name: "timeline", data: service.NewTimelineView(order)})
	})
	// cancel first so a callback blocked on send can return before Stop waits
	defer sub.Stop()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if err := writeEvent(w, flusher, ev); err != nil {
				return
			}
			if view, ok := ev.data.(service.TimelineView); ok && view.Terminal {
				return
			}
		}
	}
}

// watchRestaurantOrders streams the owner's order list until the client goes away.
func (h *Handler) watchRestaurantOrders(w http.ResponseWriter, r *http.Request) {
	flusher, ok := openStream(w)
	if !ok {
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	events := make(chan streamEvent)
	send := func(ev streamEvent) {
		select {
		case events <- ev:
		case <-ctx.Done():
		}
	}

	sub := h.Orders.WatchRestaurantOrders(ctx, mux.Vars(r)["id"], func(orders []domain.Order, err error) {
		if err != nil {
			send(errorEvent(r, err))
			return
		}
		send(streamEvent{name: "orders", data: orders})
	})
	defer sub.Stop()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if err := writeEvent(w, flusher, ev); err != nil {
				return
			}
		}
	}
}
