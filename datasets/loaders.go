// Package datasets provides deterministic loaders for the benchmark
// datasets embedded in the binary. Each loader returns the same split
// byte-for-byte on every call, which the golden-value regression tests
// rely on.
package datasets

import (
	"embed"
	"sync"

	"github.com/goccy/go-json"

	"github.com/vedpawar2254/aeon/datatypes"
	"github.com/vedpawar2254/aeon/pkg/errors"
	"github.com/vedpawar2254/aeon/pkg/log"
)

//go:embed data/*.json
var dataFS embed.FS

// Split selects the train or test part of a dataset.
type Split string

const (
	// TrainSplit selects the training part of a dataset.
	TrainSplit Split = "train"
	// TestSplit selects the held-out part of a dataset.
	TestSplit Split = "test"
)

type splitFile struct {
	X [][][]float64 `json:"X"`
	Y []float64     `json:"y"`
}

type datasetFile struct {
	Problem  string    `json:"problem"`
	Channels int       `json:"channels"`
	Length   int       `json:"length"`
	Train    splitFile `json:"train"`
	Test     splitFile `json:"test"`
}

// Info describes an embedded dataset.
type Info struct {
	Name           string
	NChannels      int
	SeriesLength   int
	TrainInstances int
	TestInstances  int
}

var (
	loadOnce sync.Once
	loaded   map[string]*datasetFile
	loadErr  error
)

func load(name string) (*datasetFile, error) {
	loadOnce.Do(func() {
		loaded = make(map[string]*datasetFile)
		for _, fname := range []string{"covid_3month", "cardano_sentiment"} {
			raw, err := dataFS.ReadFile("data/" + fname + ".json")
			if err != nil {
				loadErr = errors.Wrap(err, "datasets: reading embedded data")
				return
			}
			var df datasetFile
			if err := json.Unmarshal(raw, &df); err != nil {
				loadErr = errors.Wrap(err, "datasets: decoding embedded data")
				return
			}
			loaded[fname] = &df
			log.GetLoggerWithName("datasets").Debug("dataset decoded",
				log.DatasetKey, df.Problem,
				log.InstancesKey, len(df.Train.Y)+len(df.Test.Y),
				log.ChannelsKey, df.Channels,
				log.TimepointsKey, df.Length,
			)
		}
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return loaded[name], nil
}

func toPanel(X [][][]float64) datatypes.Panel {
	p := make(datatypes.Panel, len(X))
	for i, inst := range X {
		p[i] = datatypes.Instance(inst)
	}
	return p
}

func loadSplit(name string, split Split) (datatypes.Panel, []float64, error) {
	df, err := load(name)
	if err != nil {
		return nil, nil, err
	}
	switch split {
	case TrainSplit:
		return toPanel(df.Train.X), df.Train.Y, nil
	case TestSplit:
		return toPanel(df.Test.X), df.Test.Y, nil
	default:
		return nil, nil, errors.NewValueError("datasets", "unknown split "+string(split))
	}
}

// LoadCovid3Month returns the requested split of the Covid3Month dataset:
// univariate case-rate curves of length 84 with a continuous target in
// [0, 1]. 140 train and 61 test instances.
//
// The returned panel shares backing arrays across calls; callers must not
// mutate it.
func LoadCovid3Month(split Split) (datatypes.Panel, []float64, error) {
	return loadSplit("covid_3month", split)
}

// LoadCardanoSentiment returns the requested split of the CardanoSentiment
// dataset: bivariate series (sentiment score and normalised volume) of
// length 24 with a real-valued target. 74 train and 107 test instances.
//
// The returned panel shares backing arrays across calls; callers must not
// mutate it.
func LoadCardanoSentiment(split Split) (datatypes.Panel, []float64, error) {
	return loadSplit("cardano_sentiment", split)
}

// Describe returns metadata for every embedded dataset.
func Describe() ([]Info, error) {
	infos := make([]Info, 0, 2)
	for _, name := range []string{"covid_3month", "cardano_sentiment"} {
		df, err := load(name)
		if err != nil {
			return nil, err
		}
		infos = append(infos, Info{
			Name:           df.Problem,
			NChannels:      df.Channels,
			SeriesLength:   df.Length,
			TrainInstances: len(df.Train.Y),
			TestInstances:  len(df.Test.Y),
		})
	}
	return infos, nil
}
