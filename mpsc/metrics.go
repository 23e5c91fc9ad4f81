package mpsc

import "expvar"

// channelMetrics records activity counters across every mpsc channel in
// the process, mirroring the shape of chirp's peerMetrics.
type channelMetrics struct {
	channelsOpened expvar.Int
	sendsOK        expvar.Int
	sendsExpired   expvar.Int
	recvsOK        expvar.Int
	sendersCloned  expvar.Int

	emap *expvar.Map
}

var metrics = newChannelMetrics()

func newChannelMetrics() *channelMetrics {
	m := &channelMetrics{emap: new(expvar.Map)}
	m.emap.Set("channels_opened", &m.channelsOpened)
	m.emap.Set("sends_ok", &m.sendsOK)
	m.emap.Set("sends_expired", &m.sendsExpired)
	m.emap.Set("recvs_ok", &m.recvsOK)
	m.emap.Set("senders_cloned", &m.sendersCloned)
	return m
}

// Metrics returns the package's metrics map. It is safe for the caller
// to add additional metrics to the map.
func Metrics() *expvar.Map { return metrics.emap }
