package hue

import "time"

// a batch received from the bridge event stream
type bridgeEvent struct {
	CreationTime time.Time         `json:"creationtime"`
	Data         []bridgeEventData `json:"data"`
	Type         string            `json:"type"`
}

type bridgeEventData struct {
	ID string `json:"id"`
	// e.g. "/lights/3", links the resource to the v1 light id
	IDV1 string `json:"id_v1"`
	On   *struct {
		On bool `json:"on"`
	} `json:"on"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

const (
	eventBatchTypeUpdate = "update"

	eventTypeLight               = "light"
	eventTypeZigbeeConnectivity  = "zigbee_connectivity"
	eventStatusConnected         = "connected"
	eventStatusConnectivityIssue = "connectivity_issue"
)

// LightEvent is a change to a light reported by the bridge.
type LightEvent struct {
	LightID     int
	TurnedOn    bool
	TurnedOff   bool
	Unreachable bool
}
