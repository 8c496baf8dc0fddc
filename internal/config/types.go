package config

const (
	BackendNiconico = "niconico"
	BackendNXJikkyo = "nxjikkyo"
)

const DefaultUserAgent = "livecomment/1.0"

// ValidBackends lists the accepted backend.kind values
var ValidBackends = map[string]bool{
	BackendNiconico: true,
	BackendNXJikkyo: true,
}

// ValidLogLevels lists the accepted logging.level values
var ValidLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}
