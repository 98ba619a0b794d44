// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package telemetry exposes quorum.Weight results as Prometheus gauges,
// following the same registerer-and-gauge pattern used elsewhere in this
// stack's node metrics, generalized to one gauge pair per observed
// identity instead of a fixed set of block-lifecycle counters.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/scpquorum/identity"
	"github.com/luxfi/scpquorum/quorum"
)

// Reporter tracks the weight() of a set of identities against a quorum set
// and exposes the result as external gauges. It holds no reference to the
// quorum set itself; callers recompute and re-report weight whenever the
// set changes.
type Reporter struct {
	numerator   *prometheus.GaugeVec
	denominator *prometheus.GaugeVec
}

// NewReporter builds a Reporter and registers its gauges with reg.
func NewReporter(reg prometheus.Registerer) (*Reporter, error) {
	r := &Reporter{
		numerator: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "scpquorum_weight_numerator",
			Help: "Numerator of quorum.Weight for a tracked identity",
		}, []string{"id"}),
		denominator: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "scpquorum_weight_denominator",
			Help: "Denominator of quorum.Weight for a tracked identity",
		}, []string{"id"}),
	}

	if err := reg.Register(r.numerator); err != nil {
		return nil, err
	}
	if err := reg.Register(r.denominator); err != nil {
		return nil, err
	}
	return r, nil
}

// Report computes quorum.Weight(q, id) and publishes it under id's string
// label. Call it again whenever q changes to keep the exported gauges
// current; there is no background refresh.
func Report[ID identity.ID](r *Reporter, q quorum.Set[ID], id ID) {
	num, den := quorum.Weight(q, id)
	label := id.String()
	r.numerator.WithLabelValues(label).Set(float64(num))
	r.denominator.WithLabelValues(label).Set(float64(den))
}

// ReportAll reports weight for every identity named anywhere in q.
func ReportAll[ID identity.ID](r *Reporter, q quorum.Set[ID]) {
	for _, id := range q.Nodes().List() {
		Report(r, q, id)
	}
}
