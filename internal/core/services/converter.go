package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/wikiplain/internal/core/domain"
	"github.com/custodia-labs/wikiplain/internal/core/ports/driven"
	"github.com/custodia-labs/wikiplain/internal/core/ports/driving"
	"github.com/custodia-labs/wikiplain/internal/logger"
)

// Ensure ConversionService implements the interface.
var _ driving.Converter = (*ConversionService)(nil)

// ConversionService drives a dump through the transform pipeline into a corpus.
type ConversionService struct {
	dumps      driven.DumpOpener
	corpora    driven.CorpusCreator
	extractors driven.ExtractorFactory
	runStore   driven.RunStore
	sink       driven.ProgressSink
	now        func() time.Time
}

// NewConversionService creates a new conversion service.
// runStore and sink are optional - if nil, runs are not recorded and
// progress is not reported.
func NewConversionService(
	dumps driven.DumpOpener,
	corpora driven.CorpusCreator,
	extractors driven.ExtractorFactory,
	runStore driven.RunStore,
	sink driven.ProgressSink,
) *ConversionService {
	return &ConversionService{
		dumps:      dumps,
		corpora:    corpora,
		extractors: extractors,
		runStore:   runStore,
		sink:       sink,
		now:        time.Now,
	}
}

// Convert runs a full conversion.
//
// A missing dump is reported before anything is created. Every other
// failure aborts the run immediately; the corpus written so far is left
// in place but the run is recorded as failed.
func (s *ConversionService) Convert(ctx context.Context, settings domain.ConversionSettings) (*domain.ConversionStats, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	extractor, err := s.extractors.Create(settings)
	if err != nil {
		return nil, fmt.Errorf("create extractor: %w", err)
	}

	source, err := s.dumps.Open(settings.InputPath)
	if err != nil {
		return nil, fmt.Errorf("open dump: %w", err)
	}
	defer source.Close()

	logger.Section("Conversion")
	logger.Info("Converting %s -> %s (%d workers, threshold %d, extractor %s)",
		settings.InputPath, settings.OutputPath, settings.Workers, settings.Threshold, settings.Extractor)

	run := s.startRun(ctx, settings)

	stats := &domain.ConversionStats{TotalBytes: source.TotalBytes()}
	err = s.convert(ctx, settings, source, extractor, stats)
	stats.PagesSkipped = source.Skipped()
	stats.BytesRead = source.BytesRead()
	logger.Debug("Skipped %d pages outside the main namespace", stats.PagesSkipped)

	s.finishRun(ctx, run, *stats, err)
	if err != nil {
		return stats, err
	}

	logger.Info("Conversion complete: %d pages written, %d skipped, %d flushes",
		stats.PagesEmitted, stats.PagesSkipped, stats.Flushes)
	return stats, nil
}

// convert is the producer loop: parse, submit, drain at the threshold.
func (s *ConversionService) convert(
	ctx context.Context,
	settings domain.ConversionSettings,
	source driven.PageSource,
	extractor driven.TextExtractor,
	stats *domain.ConversionStats,
) (err error) {
	writer, err := s.corpora.Create(settings.OutputPath)
	if err != nil {
		return fmt.Errorf("create corpus: %w", err)
	}

	pipeline := NewPipeline(extractor, settings.Workers, settings.Threshold)
	progress := NewProgressReporter(s.sink)

	// The pool is shut down only after the last drain.
	defer func() {
		if cerr := pipeline.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close pipeline: %w", cerr)
		}
		if cerr := writer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close corpus: %w", cerr)
		}
		stats.PagesEmitted = writer.Records()
	}()

	for {
		page, err := source.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("parse dump: %w", err)
		}

		if err := pipeline.Submit(ctx, *page); err != nil {
			return fmt.Errorf("submit page %d: %w", page.ID, err)
		}

		if pipeline.Full() {
			if err := s.drain(ctx, pipeline, writer, stats); err != nil {
				return err
			}
			progress.Report(source.BytesRead(), source.TotalBytes())
		}
	}

	if err := s.drain(ctx, pipeline, writer, stats); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush corpus: %w", err)
	}
	progress.Report(source.BytesRead(), source.TotalBytes())
	return nil
}

// drain flushes the pipeline and writes the batch in order.
// Nothing from the batch is written if any page in it failed.
func (s *ConversionService) drain(
	ctx context.Context,
	pipeline *Pipeline,
	writer driven.RecordWriter,
	stats *domain.ConversionStats,
) error {
	pending := pipeline.Pending()
	if pending == 0 {
		return nil
	}

	start := s.now()
	records, err := pipeline.Flush(ctx)
	if err != nil {
		return err
	}
	stats.Flushes++

	for _, rec := range records {
		if err := writer.Write(rec); err != nil {
			return fmt.Errorf("write page %d: %w", rec.ID, err)
		}
	}

	logger.Debug("Flushed %d pages in %s", pending, s.now().Sub(start))
	return nil
}

// startRun records a running conversion. History failures are logged,
// never fatal.
func (s *ConversionService) startRun(ctx context.Context, settings domain.ConversionSettings) *domain.Run {
	if s.runStore == nil || !settings.HistoryEnabled {
		return nil
	}

	run := &domain.Run{
		ID:         uuid.New().String(),
		InputPath:  settings.InputPath,
		OutputPath: settings.OutputPath,
		Extractor:  settings.Extractor,
		Threshold:  settings.Threshold,
		Workers:    settings.Workers,
		Status:     domain.RunRunning,
		StartedAt:  s.now(),
	}
	if err := s.runStore.Save(ctx, *run); err != nil {
		logger.Warn("Failed to record run: %v", err)
		return nil
	}
	logger.Debug("Recording run %s", run.ID)
	return run
}

// finishRun stores the outcome of a recorded run.
func (s *ConversionService) finishRun(ctx context.Context, run *domain.Run, stats domain.ConversionStats, err error) {
	if run == nil {
		return
	}

	run.Finish(stats, err, s.now())
	// The run context may already be cancelled; the outcome is still worth keeping.
	if serr := s.runStore.Save(context.WithoutCancel(ctx), *run); serr != nil {
		logger.Warn("Failed to record run %s: %v", run.ID, serr)
	}
}
