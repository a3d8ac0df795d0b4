// Package metrics exposes Prometheus metrics for a blocknet.Topology.
//
// A Collector is a blocknet.TopologyListener: subscribe it to a Topology and
// register it with a prometheus.Registerer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/blocknet/blocknet"
)

// Collector counts topology events.
type Collector struct {
	NetworksCreated   prometheus.Counter
	NetworksDestroyed prometheus.Counter
	NodeEvents        *prometheus.CounterVec
	Networks          prometheus.Gauge
	Members           prometheus.Gauge
}

// NewCollector builds unregistered metrics under namespace ("blocknet" if
// empty).
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = "blocknet"
	}

	return &Collector{
		NetworksCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "networks_created_total",
			Help:      "Networks created by insertions and splits",
		}),
		NetworksDestroyed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "networks_destroyed_total",
			Help:      "Networks destroyed by merges, removals and resets",
		}),
		NodeEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "node_events_total",
			Help:      "Node membership events by type",
		}, []string{"event"}),
		Networks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "networks",
			Help:      "Currently registered networks",
		}),
		Members: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "nodes",
			Help:      "Currently registered nodes",
		}),
	}
}

// Register adds every metric to reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, m := range []prometheus.Collector{
		c.NetworksCreated, c.NetworksDestroyed, c.NodeEvents, c.Networks, c.Members,
	} {
		if err := reg.Register(m); err != nil {
			return err
		}
	}

	return nil
}

var _ blocknet.TopologyListener = (*Collector)(nil)

// NetworkAdded counts a created network.
func (c *Collector) NetworkAdded(blocknet.Network) error {
	c.NetworksCreated.Inc()
	c.Networks.Inc()
	return nil
}

// NetworkRemoved counts a destroyed network.
func (c *Collector) NetworkRemoved(blocknet.Network) error {
	c.NetworksDestroyed.Inc()
	c.Networks.Dec()
	return nil
}

// NodeAdded also fires for members moved by a merge or split, paired with a
// NodeRemoved, so the nodes gauge stays exact.
func (c *Collector) NodeAdded(blocknet.Network, blocknet.Node) error {
	c.NodeEvents.WithLabelValues(blocknet.NodeAdded.String()).Inc()
	c.Members.Inc()
	return nil
}

// NodeRemoved counts a node leaving a network.
func (c *Collector) NodeRemoved(blocknet.Network, blocknet.Node) error {
	c.NodeEvents.WithLabelValues(blocknet.NodeRemoved.String()).Inc()
	c.Members.Dec()
	return nil
}
