package boss

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// TrainEstimate is the leave-one-out ensemble estimate over the training set.
type TrainEstimate struct {
	Accuracy  float64
	Actual    []int
	Predicted []int
}

// reportRow is one training instance of the report.
type reportRow struct {
	Actual    int `csv:"actual"`
	Predicted int `csv:"predicted"`
}

// TrainAccuracy estimates training accuracy, each instance classified with
// its own bag held out of every member. Computed once per Fit.
//
// Complexity: O(N·C·M·N·|bag|).
func (e *Ensemble) TrainAccuracy() (*TrainEstimate, error) {
	if e.train == nil {
		return nil, ErrNotFitted
	}
	if e.estimate != nil {
		return e.estimate, nil
	}

	n := e.train.Len()
	est := &TrainEstimate{Actual: e.train.Labels(), Predicted: make([]int, n)}
	correct := 0
	for i := 0; i < n; i++ {
		dist, err := e.distributionHoldingOut(i)
		if err != nil {
			return nil, errors.Wrapf(err, "boss: train estimate of instance %d", i)
		}
		est.Predicted[i] = floats.MaxIdx(dist)
		if est.Predicted[i] == est.Actual[i] {
			correct++
		}
	}
	est.Accuracy = float64(correct) / float64(n)
	e.estimate = est

	return est, nil
}

// WriteTrainReport writes the training estimate to path: a header line,
// the overall accuracy, then one "actual,predicted" line per instance.
func (e *Ensemble) WriteTrainReport(path string) error {
	est, err := e.TrainAccuracy()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "boss: create train report")
	}
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s,BOSS,train\n", e.train.Name)
	fmt.Fprintln(w, strconv.FormatFloat(est.Accuracy, 'g', -1, 64))

	rows := make([]reportRow, len(est.Actual))
	for i := range rows {
		rows[i] = reportRow{Actual: est.Actual[i], Predicted: est.Predicted[i]}
	}
	if err := gocsv.MarshalWithoutHeaders(rows, w); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "boss: write train report rows")
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "boss: flush train report")
	}

	return errors.Wrap(f.Close(), "boss: close train report")
}

// Parameters describes the configuration and every member, comma separated.
func (e *Ensemble) Parameters() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "seed,%d,strategy,%s,numChannels,%d,ensembleSize,%d",
		e.cfg.seed, e.cfg.strategy, len(e.channels), e.Size())
	if e.cfg.strategy == Contract {
		fmt.Fprintf(&sb, ",timeLimit,%d", e.cfg.timeLimit.Nanoseconds())
	}
	for _, ch := range e.channels {
		for _, m := range ch.members {
			sb.WriteByte(',')
			sb.WriteString(m.params.String())
		}
	}
	return sb.String()
}

// ChannelSummary describes one channel's members.
type ChannelSummary struct {
	Members      int
	MinAccuracy  float64
	MeanAccuracy float64
	MaxAccuracy  float64
}

// Summary returns member count and accuracy spread per channel. Accuracies
// are only recorded by the exhaustive strategy.
func (e *Ensemble) Summary() []ChannelSummary {
	out := make([]ChannelSummary, len(e.channels))
	for c, ch := range e.channels {
		out[c].Members = len(ch.members)
		if len(ch.members) == 0 {
			continue
		}
		accs := make(stats.Float64Data, len(ch.members))
		for i, m := range ch.members {
			accs[i] = m.accuracy
		}
		out[c].MinAccuracy, _ = accs.Min()
		out[c].MeanAccuracy, _ = accs.Mean()
		out[c].MaxAccuracy, _ = accs.Max()
	}
	return out
}
