// Package importer replays payments recorded as "customer_id,amount" lines
// through the payment service.
package importer

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/GlebRadaev/pointpay/internal/domain"
	"github.com/GlebRadaev/pointpay/pkg/clients"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=importer.go -destination=mock_importer.go -package=importer

type Payer interface {
	Pay(ctx context.Context, amount int64, customerID int64) (*domain.Receipt, error)
}

var ErrUnexpectedStatus = errors.New("unexpected status code")

type Summary struct {
	Processed int64
	Failed    int64
	Points    int64
}

type Service struct {
	payer      Payer
	client     clients.HTTPClientI
	workerPool WorkerPoolI
	workers    int
}

func New(payer Payer, client clients.HTTPClientI, workers int) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		payer:      payer,
		client:     client,
		workerPool: NewWorkerPool(workers),
		workers:    workers,
	}
}

func (s *Service) Close() {
	s.workerPool.Close()
}

// Import reads payments from a local file or an http(s) URL.
func (s *Service) Import(ctx context.Context, source string) (Summary, error) {
	r, err := s.open(ctx, source)
	if err != nil {
		return Summary{}, err
	}
	defer r.Close()

	zap.L().Info("import started", zap.String("source", source))
	return s.ImportReader(ctx, r)
}

func (s *Service) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("can't open %s: %w", source, err)
		}
		return f, nil
	}

	statusCode, body, _, err := s.client.Get(ctx, source, nil)
	if err != nil {
		return nil, fmt.Errorf("can't fetch %s: %w", source, err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("%w %d from %s", ErrUnexpectedStatus, statusCode, source)
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}

// ImportReader pays every line of r. Bad lines and rejected payments are
// counted as failed and do not stop the import; a read error or a cancelled
// context does.
func (s *Service) ImportReader(ctx context.Context, r io.Reader) (Summary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	var (
		processed, failed, points atomic.Int64
		tasks                     sync.WaitGroup
		g                         errgroup.Group
	)
	g.SetLimit(s.workers)

	summary := func() Summary {
		return Summary{Processed: processed.Load(), Failed: failed.Load(), Points: points.Load()}
	}

	for records := 0; ; records++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) && errors.Is(parseErr.Err, csv.ErrFieldCount) {
				zap.L().Warn("skipping malformed line", zap.Int("line", parseErr.StartLine), zap.Error(err))
				failed.Add(1)
				continue
			}
			_ = g.Wait()
			tasks.Wait()
			return summary(), fmt.Errorf("read payments: %w", err)
		}
		// comment lines are skipped by the reader, so the record count is not a line number
		line, _ := reader.FieldPos(0)
		if records == 0 && strings.EqualFold(strings.TrimSpace(record[0]), "customer_id") {
			continue
		}

		customerID, amount, err := parseRecord(record)
		if err != nil {
			zap.L().Warn("skipping malformed line", zap.Int("line", line), zap.Error(err))
			failed.Add(1)
			continue
		}

		tasks.Add(1)
		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer tasks.Done()
				receipt, err := s.payer.Pay(ctx, amount, customerID)
				if err != nil {
					failed.Add(1)
					return fmt.Errorf("line %d: %w", line, err)
				}
				processed.Add(1)
				points.Add(receipt.Point)
				return nil
			})
			if err != nil {
				tasks.Done()
				failed.Add(1)
				return err
			}
			return nil
		})

		if ctx.Err() != nil {
			break
		}
	}

	err := g.Wait()
	tasks.Wait()

	result := summary()
	zap.L().Info("import finished",
		zap.Int64("processed", result.Processed),
		zap.Int64("failed", result.Failed),
		zap.Int64("points", result.Points),
	)
	if err == nil {
		err = ctx.Err()
	}
	return result, err
}

func parseRecord(record []string) (customerID, amount int64, err error) {
	customerID, err = strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("customer id %q: %w", record[0], err)
	}
	amount, err = strconv.ParseInt(strings.TrimSpace(record[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("amount %q: %w", record[1], err)
	}
	return customerID, amount, nil
}
