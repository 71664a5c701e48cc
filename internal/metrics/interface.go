package metrics

// Metrics defines the instrumentation points exposed by the application.
type Metrics interface {
	IncConnection()
	DecConnection()
	IncMessageHandled()
	IncBroadcast()
	IncBroadcastDropped()
	SetStartupTime(seconds float64)
}
