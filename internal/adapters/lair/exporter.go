package lair

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"
	"sync"
	"time"

	"broodcore/internal/catalog"
)

// Format identifies an export output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatPNG  Format = "png" // colour swatch strip, colours collection only
)

// ExportStatus describes the lifecycle stage of an export request.
type ExportStatus string

const (
	ExportStatusQueued    ExportStatus = "queued"
	ExportStatusRunning   ExportStatus = "running"
	ExportStatusSucceeded ExportStatus = "succeeded"
	ExportStatusFailed    ExportStatus = "failed"
)

// ExportArtifact captures a stored export artifact.
type ExportArtifact struct {
	ID          string         `json:"id"`
	Format      Format         `json:"format"`
	ContentType string         `json:"content_type"`
	SizeBytes   int64          `json:"size_bytes"`
	URL         string         `json:"url,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// ExportRecord tracks an export request and resulting artifacts.
type ExportRecord struct {
	ID          string           `json:"id"`
	Collection  string           `json:"collection"`
	Formats     []Format         `json:"formats"`
	Status      ExportStatus     `json:"status"`
	Error       string           `json:"error,omitempty"`
	Artifacts   []ExportArtifact `json:"artifacts,omitempty"`
	RequestedBy string           `json:"requested_by,omitempty"`
	Reason      string           `json:"reason,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
}

// ExportInput represents an enqueue request for the worker.
type ExportInput struct {
	Collection  string
	Formats     []Format
	RequestedBy string
	Reason      string
}

// ExportScheduler queues export requests and exposes status.
type ExportScheduler interface {
	EnqueueExport(ctx context.Context, input ExportInput) (ExportRecord, error)
	GetExport(id string) (ExportRecord, bool)
}

// ObjectStore persists export artifacts.
type ObjectStore interface {
	Put(ctx context.Context, key string, payload []byte, contentType string, metadata map[string]any) (ExportArtifact, error)
	Get(ctx context.Context, key string) (ExportArtifact, []byte, error)
	Delete(ctx context.Context, key string) (bool, error)
	List(ctx context.Context, prefix string) ([]ExportArtifact, error)
}

// AuditLogger records export audit entries.
type AuditLogger interface {
	Record(ctx context.Context, entry AuditEntry)
}

// AuditEntry captures audit trail metadata for exports.
type AuditEntry struct {
	ID         string         `json:"id"`
	Action     string         `json:"action"`
	Actor      string         `json:"actor,omitempty"`
	Collection string         `json:"collection"`
	Status     ExportStatus   `json:"status"`
	Reason     string         `json:"reason,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// Worker renders dataset collection exports asynchronously.
type Worker struct {
	service *catalog.Service
	store   ObjectStore
	audit   AuditLogger

	queue chan exportTask
	mu    sync.RWMutex
	jobs  map[string]*ExportRecord

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type exportTask struct {
	id    string
	input ExportInput
}

type renderedArtifact struct {
	artifact ExportArtifact
	payload  []byte
}

// NewWorker constructs an export worker over the catalog service.
func NewWorker(svc *catalog.Service, store ObjectStore, audit AuditLogger) *Worker {
	ctx, cancel := context.WithCancel(context.Background())
	return &Worker{
		service: svc,
		store:   store,
		audit:   audit,
		queue:   make(chan exportTask, 32),
		jobs:    make(map[string]*ExportRecord),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start begins processing export requests.
func (w *Worker) Start() {
	w.wg.Add(1)
	go w.loop()
}

// Stop signals the worker to halt and waits for completion.
func (w *Worker) Stop(ctx context.Context) error {
	w.cancel()
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Worker) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case task := <-w.queue:
			w.process(task)
		}
	}
}

// EnqueueExport schedules an export job and returns the queued record.
func (w *Worker) EnqueueExport(ctx context.Context, input ExportInput) (ExportRecord, error) {
	if w.service == nil {
		return ExportRecord{}, fmt.Errorf("export service not configured")
	}
	collection := strings.ToLower(strings.TrimSpace(input.Collection))
	if collection == "" {
		return ExportRecord{}, fmt.Errorf("collection required")
	}
	if !knownCollection(collection) {
		return ExportRecord{}, fmt.Errorf("unknown collection %s", collection)
	}

	formats := input.Formats
	if len(formats) == 0 {
		formats = []Format{FormatJSON, FormatCSV}
	}
	uniq := make([]Format, 0, len(formats))
	seen := make(map[Format]struct{})
	for _, format := range formats {
		if _, dup := seen[format]; dup {
			continue
		}
		if !supportsFormat(collection, format) {
			return ExportRecord{}, fmt.Errorf("format %s not supported for collection %s", format, collection)
		}
		uniq = append(uniq, format)
		seen[format] = struct{}{}
	}

	id := newID()
	now := time.Now().UTC()
	record := ExportRecord{
		ID:          id,
		Collection:  collection,
		Formats:     uniq,
		Status:      ExportStatusQueued,
		RequestedBy: input.RequestedBy,
		Reason:      input.Reason,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	w.mu.Lock()
	w.jobs[id] = &record
	queued := record.copy()
	w.mu.Unlock()

	w.recordAudit(ctx, id, ExportStatusQueued, nil)

	select {
	case w.queue <- exportTask{id: id, input: input}:
	default:
		return ExportRecord{}, fmt.Errorf("export queue full")
	}
	return queued, nil
}

// GetExport returns a snapshot of the export record.
func (w *Worker) GetExport(id string) (ExportRecord, bool) {
	w.mu.RLock()
	record, ok := w.jobs[id]
	if !ok {
		w.mu.RUnlock()
		return ExportRecord{}, false
	}
	snapshot := record.copy()
	w.mu.RUnlock()
	return snapshot, true
}

func (w *Worker) process(task exportTask) {
	record, ok := w.GetExport(task.id)
	if !ok {
		return
	}

	w.updateStatus(task.id, ExportStatusRunning, "")

	artifacts := make([]ExportArtifact, 0, len(record.Formats))
	for _, format := range record.Formats {
		rendered, err := w.materialize(record.Collection, format)
		if err != nil {
			w.fail(task.id, err.Error())
			return
		}
		if w.store != nil {
			key := fmt.Sprintf("exports/%s/%s.%s", task.id, record.Collection, format)
			stored, err := w.store.Put(w.ctx, key, rendered.payload, rendered.artifact.ContentType, rendered.artifact.Metadata)
			if err != nil {
				w.fail(task.id, fmt.Sprintf("store artifact: %v", err))
				return
			}
			stored.Format = format
			if stored.ContentType == "" {
				stored.ContentType = rendered.artifact.ContentType
			}
			if stored.CreatedAt.IsZero() {
				stored.CreatedAt = rendered.artifact.CreatedAt
			}
			artifacts = append(artifacts, stored)
		} else {
			artifacts = append(artifacts, rendered.artifact)
		}
	}

	w.complete(task.id, artifacts)
}

func (w *Worker) updateStatus(id string, status ExportStatus, message string) {
	now := time.Now().UTC()
	w.mu.Lock()
	if record, ok := w.jobs[id]; ok {
		record.Status = status
		record.Error = message
		record.UpdatedAt = now
	}
	w.mu.Unlock()
	var md map[string]any
	if message != "" {
		md = map[string]any{"note": message}
	}
	w.recordAudit(w.ctx, id, status, md)
}

func (w *Worker) complete(id string, artifacts []ExportArtifact) {
	now := time.Now().UTC()
	w.mu.Lock()
	if record, ok := w.jobs[id]; ok {
		record.Status = ExportStatusSucceeded
		record.Error = ""
		record.Artifacts = artifacts
		record.UpdatedAt = now
		record.CompletedAt = &now
	}
	w.mu.Unlock()
	w.recordAudit(w.ctx, id, ExportStatusSucceeded, map[string]any{"artifacts": len(artifacts)})
}

func (w *Worker) fail(id, reason string) {
	now := time.Now().UTC()
	w.mu.Lock()
	if record, ok := w.jobs[id]; ok {
		record.Status = ExportStatusFailed
		record.Error = reason
		record.UpdatedAt = now
		record.CompletedAt = &now
	}
	w.mu.Unlock()
	w.recordAudit(w.ctx, id, ExportStatusFailed, map[string]any{"error": reason})
}

func (w *Worker) recordAudit(ctx context.Context, id string, status ExportStatus, metadata map[string]any) {
	if w.audit == nil {
		return
	}
	w.mu.RLock()
	var actor, collection, reason string
	if record, ok := w.jobs[id]; ok {
		actor, collection, reason = record.RequestedBy, record.Collection, record.Reason
	}
	w.mu.RUnlock()
	w.audit.Record(ctx, AuditEntry{
		ID:         newID(),
		Action:     "dataset_export",
		Actor:      actor,
		Collection: collection,
		Status:     status,
		Reason:     reason,
		Metadata:   metadata,
		OccurredAt: time.Now().UTC(),
	})
}

func (w *Worker) materialize(collection string, format Format) (renderedArtifact, error) {
	switch format {
	case FormatJSON:
		columns, rows, err := collectionRows(w.service, collection)
		if err != nil {
			return renderedArtifact{}, err
		}
		payload, err := json.Marshal(map[string]any{
			"collection": collection,
			"columns":    columns,
			"rows":       rows,
		})
		if err != nil {
			return renderedArtifact{}, fmt.Errorf("marshal json: %w", err)
		}
		return newRendered(FormatJSON, "application/json", payload, len(rows)), nil
	case FormatCSV:
		columns, rows, err := collectionRows(w.service, collection)
		if err != nil {
			return renderedArtifact{}, err
		}
		buf := &bytes.Buffer{}
		writer := csv.NewWriter(buf)
		if err := writer.Write(columns); err != nil {
			return renderedArtifact{}, err
		}
		for _, row := range rows {
			record := make([]string, len(columns))
			for i, column := range columns {
				record[i] = formatValue(row[column])
			}
			if err := writer.Write(record); err != nil {
				return renderedArtifact{}, err
			}
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return renderedArtifact{}, err
		}
		return newRendered(FormatCSV, "text/csv", buf.Bytes(), len(rows)), nil
	case FormatPNG:
		payload, count, err := buildSwatchStrip(w.service)
		if err != nil {
			return renderedArtifact{}, err
		}
		return newRendered(FormatPNG, "image/png", payload, count), nil
	default:
		return renderedArtifact{}, fmt.Errorf("unsupported export format %s", format)
	}
}

func newRendered(format Format, contentType string, payload []byte, rows int) renderedArtifact {
	return renderedArtifact{
		artifact: ExportArtifact{
			ID:          newID(),
			Format:      format,
			ContentType: contentType,
			SizeBytes:   int64(len(payload)),
			Metadata:    map[string]any{"rows": rows},
			CreatedAt:   time.Now().UTC(),
		},
		payload: payload,
	}
}

// buildSwatchStrip renders the colour wheel as one vertical stripe per
// colour, in wheel order, so adjacency is visible at a glance.
func buildSwatchStrip(svc *catalog.Service) ([]byte, int, error) {
	colours := svc.Colours()
	if len(colours) == 0 {
		return nil, 0, fmt.Errorf("colour wheel empty")
	}
	const stripeWidth, height = 8, 64
	img := image.NewRGBA(image.Rect(0, 0, stripeWidth*len(colours), height))
	for i, c := range colours {
		rgba, err := parseHex(c.Hex)
		if err != nil {
			return nil, 0, fmt.Errorf("colour %s: %w", c.Name, err)
		}
		rect := image.Rect(i*stripeWidth, 0, (i+1)*stripeWidth, height)
		draw.Draw(img, rect, &image.Uniform{rgba}, image.Point{}, draw.Src)
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), len(colours), nil
}

func parseHex(hex string) (color.RGBA, error) {
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("hex %q is not 6 digits", hex)
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		var v uint8
		for _, r := range hex[i*2 : i*2+2] {
			v <<= 4
			switch {
			case r >= '0' && r <= '9':
				v |= uint8(r - '0')
			case r >= 'a' && r <= 'f':
				v |= uint8(r-'a') + 10
			case r >= 'A' && r <= 'F':
				v |= uint8(r-'A') + 10
			default:
				return color.RGBA{}, fmt.Errorf("hex %q contains non-hex digit", hex)
			}
		}
		rgb[i] = v
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
}

func (r ExportRecord) copy() ExportRecord {
	dup := r
	dup.Formats = append([]Format(nil), r.Formats...)
	if len(r.Artifacts) > 0 {
		dup.Artifacts = append([]ExportArtifact(nil), r.Artifacts...)
	}
	return dup
}

func newID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return fmt.Sprintf("%x", b[:])
}
