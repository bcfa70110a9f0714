package log

// Standard attribute keys for estimator operations. Using these keys keeps
// log output filterable across packages.
const (
	// ModelNameKey identifies the estimator type.
	// Examples: "KNeighborsTimeSeriesRegressor", "DummyRegressor"
	ModelNameKey = "model.name"

	// ComponentKey identifies the package performing the operation.
	// Examples: "regression", "preprocessing", "datasets"
	ComponentKey = "ml.component"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "transform", "score"
	OperationKey = "ml.operation"

	// InstancesKey is the number of time-series instances being processed.
	InstancesKey = "data.instances"

	// ChannelsKey is the channel count of the panel.
	ChannelsKey = "data.channels"

	// TimepointsKey is the series length of the panel.
	TimepointsKey = "data.timepoints"

	// DurationMsKey is the wall-clock duration of an operation in
	// milliseconds.
	DurationMsKey = "perf.duration_ms"

	// DatasetKey names the dataset involved in the operation.
	DatasetKey = "data.dataset"
)
