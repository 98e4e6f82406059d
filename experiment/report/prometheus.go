package report

import (
	"strconv"

	"github.com/npillmayer/ordtrees/experiment"
	"github.com/prometheus/client_golang/prometheus"
)

// Gatherer collects the results of an experiment into a fresh registry,
// as gauges ordtrees_insert_cost and ordtrees_remove_cost labeled by engine
// and tree size.
func Gatherer(res *experiment.Results) (prometheus.Gatherer, error) {
	reg := prometheus.NewRegistry()
	gauges := map[experiment.Kind]*prometheus.GaugeVec{
		experiment.Insertion: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ordtrees",
			Name:      "insert_cost",
			Help:      "Average structural cost of the insertions up to a tree size.",
		}, []string{"engine", "size"}),
		experiment.Removal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ordtrees",
			Name:      "remove_cost",
			Help:      "Average structural cost of emptying a tree of a given size.",
		}, []string{"engine", "size"}),
	}
	for kind, g := range gauges {
		if err := reg.Register(g); err != nil {
			return nil, err
		}
		for _, name := range res.Engines {
			for i, v := range res.Series(kind, name) {
				g.WithLabelValues(name, strconv.Itoa(res.Sizes[i])).Set(float64(v))
			}
		}
	}
	return reg, nil
}

// WritePrometheus writes the results of an experiment to a textfile which
// the node exporter's textfile collector can pick up.
func WritePrometheus(path string, res *experiment.Results) error {
	g, err := Gatherer(res)
	if err != nil {
		return err
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return err
	}
	tracer().Infof("report: wrote %s", path)
	return nil
}
