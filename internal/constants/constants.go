package constants

import "time"

const MainUpdateInterval = time.Minute

// minimum spacing between two calls to the bridge
const BridgeThrottleInterval = 100 * time.Millisecond

// bridge scenes named <ScenePrefix><schedule name> follow that schedule
const ScenePrefix = "Daylight_"

// the bridge only accepts colour temperatures in this range
const BridgeMinKelvin = 2000
const BridgeMaxKelvin = 6500

const BridgeMaxBrightness = 254

// a light already within these distances of its target is not updated
const ToleranceColourTempMired = 5
const ToleranceBrightness = 3

const DefaultHTTPAddress = ":8080"
const DefaultDatabasePath = "daylight.db"
