package logger

// Logger is the logging surface the pipeline stages write to. The
// library defaults to Nop; binaries install the zerolog adapter.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{})   {}
func (nopLogger) Info(string, string, map[string]interface{})    {}
func (nopLogger) Warning(string, string, map[string]interface{}) {}
func (nopLogger) Error(string, error, map[string]interface{})    {}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}
