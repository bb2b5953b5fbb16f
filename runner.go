// Package easyrider validates a bus-line dataset and prints its reports.
//
// A run parses one JSON payload, executes the configured reports in order and writes
// them in the configured format:
//
//	cfg, _ := config.LoadAppConfig()
//	logger, _ := internal.NewLogger(cfg.Log.Level)
//	r, _ := easyrider.NewRunner(cfg, logger)
//	if err := r.Run(os.Stdin, os.Stdout); err != nil {
//	    // only malformed input and I/O failures end up here
//	}
package easyrider

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/easyrider/config"
	"github.com/theoremus-urban-solutions/easyrider/dataset"
	"github.com/theoremus-urban-solutions/easyrider/formatter"
	"github.com/theoremus-urban-solutions/easyrider/metrics"
	"github.com/theoremus-urban-solutions/easyrider/report"
	"github.com/theoremus-urban-solutions/easyrider/utils"
	"github.com/theoremus-urban-solutions/easyrider/validation"
)

// Runner coordinates parsing, reports and output for one payload
type Runner struct {
	cfg       config.AppConfig
	logger    *zap.Logger
	validator *validation.Validator
	metrics   *metrics.Collector
}

// NewRunner creates a runner. The metrics collector is only created when a textfile
// is configured.
func NewRunner(cfg config.AppConfig, logger *zap.Logger) (*Runner, error) {
	v, err := validation.New()
	if err != nil {
		return nil, err
	}
	r := &Runner{cfg: cfg, logger: logger, validator: v}
	if cfg.Metrics.Textfile != "" {
		r.metrics = metrics.NewCollector()
	}
	return r, nil
}

// Run reads the payload from in and writes the reports to out.
func (r *Runner) Run(in io.Reader, out io.Writer) error {
	runID := uuid.NewString()
	logger := r.logger.With(zap.String("run_id", runID))
	start := time.Now()

	ds, err := dataset.ParseReader(in)
	if err != nil {
		logger.Error("payload rejected", zap.Error(err))
		return err
	}
	logger.Debug("payload parsed", zap.Int("records", ds.Len()))

	s := r.Summarize(ds)
	s.RunID = runID

	b, err := formatter.NewReportBuilder().Build(r.cfg.Format, s)
	if err != nil {
		return err
	}
	if _, err := out.Write(b); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if r.metrics != nil {
		r.metrics.Observe(s)
		if err := r.metrics.WriteTextfile(r.cfg.Metrics.Textfile); err != nil {
			logger.Warn("metrics not written", zap.String("path", r.cfg.Metrics.Textfile), zap.Error(err))
		}
	}

	logger.Info("run complete",
		zap.Int("records", s.Records),
		zap.Strings("reports", s.Order),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// Summarize executes the configured reports over ds.
func (r *Runner) Summarize(ds *dataset.Dataset) *formatter.Summary {
	s := &formatter.Summary{
		GeneratedAt: utils.Iso8601Now(),
		Records:     ds.Len(),
	}
	for _, name := range r.cfg.Reports {
		switch name {
		case formatter.ReportValidation:
			res := r.validator.Validate(ds)
			r.logValidation(res)
			s.Validation = formatter.NewValidationSummary(res)
		case formatter.ReportLines:
			s.Lines = report.StopsPerLine(ds)
		case formatter.ReportStops:
			stops := report.ClassifyStops(ds)
			s.Stops = &stops
		case formatter.ReportArrival:
			arr := report.CheckArrivalTimes(ds)
			for _, v := range arr.Violations {
				r.logger.Debug("arrival time not increasing",
					zap.String("bus_id", v.Line), zap.String("stop_name", v.Stop),
					zap.String("a_time", v.Time), zap.String("after", v.After))
			}
			s.Arrival = &arr
		case formatter.ReportOnDemand:
			od := report.CheckOnDemandStops(ds)
			if !od.OK() {
				r.logger.Debug("on-demand stops used as transfer stops", zap.Strings("stops", od.Conflicts))
			}
			s.OnDemand = &od
		case formatter.ReportStartFinish:
			sf := report.CheckStartFinish(ds)
			s.StartFinish = &sf
		default:
			r.logger.Warn("unknown report skipped", zap.String("report", name))
			continue
		}
		s.Order = append(s.Order, name)
	}
	return s
}

func (r *Runner) logValidation(res *validation.Result) {
	for _, f := range res.Fields {
		if f.Errors() == 0 {
			continue
		}
		r.logger.Debug("field errors",
			zap.String("field", f.Field),
			zap.Int("missing", f.Missing),
			zap.Int("format", f.Format),
			zap.Strings("examples", f.Examples),
		)
	}
}
