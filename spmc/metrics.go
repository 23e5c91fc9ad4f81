package spmc

import "expvar"

// channelMetrics records activity counters across every spmc channel in
// the process, mirroring the shape of chirp's peerMetrics.
type channelMetrics struct {
	channelsOpened  expvar.Int
	sendsOK         expvar.Int
	recvsOK         expvar.Int
	recvsExpired    expvar.Int
	receiversCloned expvar.Int

	emap *expvar.Map
}

var metrics = newChannelMetrics()

func newChannelMetrics() *channelMetrics {
	m := &channelMetrics{emap: new(expvar.Map)}
	m.emap.Set("channels_opened", &m.channelsOpened)
	m.emap.Set("sends_ok", &m.sendsOK)
	m.emap.Set("recvs_ok", &m.recvsOK)
	m.emap.Set("recvs_expired", &m.recvsExpired)
	m.emap.Set("receivers_cloned", &m.receiversCloned)
	return m
}

// Metrics returns the package's metrics map. It is safe for the caller
// to add additional metrics to the map.
func Metrics() *expvar.Map { return metrics.emap }
