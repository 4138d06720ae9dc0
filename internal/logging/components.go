package logging

// Component constants for structured logging.
const (
	ComponentStartup   = "startup"
	ComponentConfig    = "config"
	ComponentIO        = "io"
	ComponentHistogram = "histogram"
	ComponentDither    = "dither"
	ComponentFilter    = "filter"
	ComponentGradient  = "gradient"
	ComponentEdge      = "edge"
	ComponentSketch    = "sketch"
)
