// README: Diagnostics returned alongside a breakdown instead of inline logging.
package fare

// Diagnostic levels.
const (
	LevelInfo = "info"
	LevelWarn = "warn"
)

// Diagnostic codes.
const (
	CodePlatformFeeFallback = "platform_fee_fallback"
	CodeZonesMissing        = "zones_missing"
	CodeStationaryGuard     = "stationary_guard"
	CodeSlabFallback        = "slab_fallback"
	CodeMapsEstimate        = "maps_estimate"
)

// Diagnostic is one recoverable event observed during a calculation. The
// engine's control flow never depends on these; callers log them.
type Diagnostic struct {
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Diagnostics []Diagnostic

func (d *Diagnostics) add(level, code, message string) {
	*d = append(*d, Diagnostic{Level: level, Code: code, Message: message})
}
