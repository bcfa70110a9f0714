package regression

// Golden predictions for the bundled benchmark datasets, produced by the
// results-comparison configuration of each estimator fit on a fixed
// 10-instance subsample (seed 0 for covid_3month, seed 4 for
// cardano_sentiment) and predicting a subsample of the test split.
// Values are checked to 4 decimal places. Estimators absent from a table
// have no pinned results on that dataset and are skipped.

var covid3MonthExpected = map[string][]float64{
	"DummyRegressor": {
		0.1978, 0.1978, 0.1978, 0.1978, 0.1978,
		0.1978, 0.1978, 0.1978, 0.1978, 0.1978,
	},
	"KNeighborsTimeSeriesRegressor": {
		0.1140, 0.2067, 0.2141, 0.1545, 0.1140,
		0.2450, 0.1545, 0.2450, 0.2514, 0.2514,
	},
	"SummaryFeaturesRegressor": {
		0.1618, 0.1907, 0.1873, 0.1730, 0.1696,
		0.1980, 0.1746, 0.1981, 0.1936, 0.2061,
	},
	"RandomIntervalRegressor": {
		0.1565, 0.1888, 0.1912, 0.1706, 0.1646,
		0.1963, 0.1713, 0.1954, 0.1995, 0.2163,
	},
}

var cardanoSentimentExpected = map[string][]float64{
	"DummyRegressor": {
		-0.0065, -0.0065, -0.0065, -0.0065, -0.0065,
		-0.0065, -0.0065, -0.0065, -0.0065, -0.0065,
	},
	"KNeighborsTimeSeriesRegressor": {
		-0.0029, 0.0119, 0.0132, -0.0209, 0.0197,
		0.0132, 0.0212, 0.0132, -0.0339, 0.0119,
	},
}
