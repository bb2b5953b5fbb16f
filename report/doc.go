// Package report derives the line and stop summaries of a dataset.
//
// All functions are read-only over the dataset:
//   - StopsPerLine, DistinctLines: line inventory
//   - HasSingleStartAndFinish, CheckStartFinish: start/finish presence per line
//   - ClassifyStops: start, transfer and finish stop names
//   - CheckArrivalTimes: strictly increasing arrival times per line
//   - CheckOnDemandStops: on-demand stops that are also transfer stops
//
// Two transfer definitions exist. ClassifyStops counts a name as a transfer stop when it
// appears more than once anywhere. CheckOnDemandStops only counts records that are
// on-demand or regular, start and finish records are left out.
package report
