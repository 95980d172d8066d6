package hue

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	sse "github.com/r3labs/sse/v2"
)

type HueEventConsumer struct {
	logger *log.Logger

	client       *sse.Client
	eventChannel chan *sse.Event
}

func NewHueEventConsumer(logger *log.Logger, bridgeIP string, appKey string) *HueEventConsumer {
	client := sse.NewClient(fmt.Sprintf("https://%s/eventstream/clip/v2", bridgeIP))
	client.Connection.Transport = &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}
	client.Headers["hue-application-key"] = appKey

	return &HueEventConsumer{logger: logger, client: client}
}

// Subscribe streams light events from the bridge to handler until Unsubscribe is called.
func (h *HueEventConsumer) Subscribe(handler func(LightEvent)) error {
	h.eventChannel = make(chan *sse.Event)

	h.client.OnConnect(func(_ *sse.Client) {
		h.logger.Info("Connected to HUE bridge, listening for events...")
	})
	h.client.OnDisconnect(func(_ *sse.Client) {
		h.logger.Info("Disconnected from HUE bridge")
	})

	if err := h.client.SubscribeChan("", h.eventChannel); err != nil {
		return fmt.Errorf("Error subscribing to light updates: %w", err)
	}

	go func() {
		for event := range h.eventChannel {
			events, err := ParseLightEvents(event.Data)
			if err != nil {
				h.logger.Error("Error parsing bridge event", "err", err)
				continue
			}
			for _, e := range events {
				handler(e)
			}
		}
	}()

	return nil
}

func (h *HueEventConsumer) Unsubscribe() {
	h.logger.Debug("Unsubscribe events")
	h.client.Unsubscribe(h.eventChannel)
}

// ParseLightEvents extracts the light on/off and connectivity changes from
// one event stream message. Resources without a v1 light id are ignored.
func ParseLightEvents(data []byte) ([]LightEvent, error) {
	batches := []bridgeEvent{}
	if err := json.Unmarshal(data, &batches); err != nil {
		return nil, err
	}

	events := []LightEvent{}
	for _, batch := range batches {
		if batch.Type != eventBatchTypeUpdate {
			continue
		}
		for _, d := range batch.Data {
			id, ok := lightIDFromV1(d.IDV1)
			if !ok {
				continue
			}

			switch d.Type {
			case eventTypeLight:
				if d.On == nil {
					continue
				}
				events = append(events, LightEvent{LightID: id, TurnedOn: d.On.On, TurnedOff: !d.On.On})

			case eventTypeZigbeeConnectivity:
				switch d.Status {
				case eventStatusConnected:
					// a light that was powered on at the wall
					events = append(events, LightEvent{LightID: id, TurnedOn: true})
				case eventStatusConnectivityIssue:
					events = append(events, LightEvent{LightID: id, Unreachable: true})
				}
			}
		}
	}
	return events, nil
}

func lightIDFromV1(v1 string) (int, bool) {
	raw, found := strings.CutPrefix(v1, "/lights/")
	if !found {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
