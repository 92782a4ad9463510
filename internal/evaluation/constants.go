package evaluation

func DefaultCutoffs() []int {
	return []int{1, 3, 5}
}

func DefaultMetrics() []Metric {
	return []Metric{MetricDCG, MetricNDCG}
}
