package logger

// Logger is the structured logging surface shared by all components.
// The component tag identifies the emitting subsystem (engine, bridge, gui).
type Logger interface {
	Debug(component, msg string, fields map[string]interface{})
	Info(component, msg string, fields map[string]interface{})
	Warning(component, msg string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}
