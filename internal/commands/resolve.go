package commands

import (
	"fmt"
	"strings"

	"github.com/vedpawar2254/aeon/core/model"
	"github.com/vedpawar2254/aeon/datasets"
	"github.com/vedpawar2254/aeon/datatypes"
	"github.com/vedpawar2254/aeon/regression"
)

type datasetLoader func(datasets.Split) (datatypes.Panel, []float64, error)

var loaders = map[string]datasetLoader{
	"covid_3month":      datasets.LoadCovid3Month,
	"cardano_sentiment": datasets.LoadCardanoSentiment,
}

func resolveDataset(name string) (datasetLoader, error) {
	loader, ok := loaders[name]
	if !ok {
		names := make([]string, 0, len(loaders))
		for n := range loaders {
			names = append(names, n)
		}
		return nil, fmt.Errorf("unknown dataset %q (available: %s)", name, strings.Join(names, ", "))
	}
	return loader, nil
}

func resolveRegressor(name string) (model.TimeSeriesRegressor, error) {
	var names []string
	for _, entry := range regression.Registry() {
		if strings.EqualFold(entry.Name, name) {
			return entry.New(regression.ParamsDefault), nil
		}
		names = append(names, entry.Name)
	}
	return nil, fmt.Errorf("unknown regressor %q (available: %s)", name, strings.Join(names, ", "))
}
