package handler

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"zeroclick-go/internal/metrics"
	"zeroclick-go/pkg/logger"
	"zeroclick-go/pkg/resolver"
	"zeroclick-go/pkg/stats"
	"zeroclick-go/pkg/volume"
)

// Controller exposes the demo over HTTP: the fixed survey chart, the impact
// slider, term resolution through the provider chain, and dataset
// upload/download.
type Controller struct {
	store        *volume.Store
	uploads      *resolver.UploadedFileProvider
	resolv       *resolver.TermVolumeResolver
	defaultOrder []resolver.SourceTag
	log          *logger.Logger
}

func NewController(
	store *volume.Store,
	uploads *resolver.UploadedFileProvider,
	resolv *resolver.TermVolumeResolver,
	defaultOrder []resolver.SourceTag,
) *Controller {
	return &Controller{
		store:        store,
		uploads:      uploads,
		resolv:       resolv,
		defaultOrder: defaultOrder,
		log:          logger.GetLogger().WithField("component", "controller"),
	}
}

// ZeroClickStats serves the hard-coded Bain survey figures with chart
// metadata.
func (h *Controller) ZeroClickStats(c *fiber.Ctx) error {
	bars, meta := stats.ZeroClickSurvey()
	return c.JSON(fiber.Map{
		"bars":  bars,
		"chart": meta,
	})
}

// Impact answers the slider question for a given zero-click percentage.
func (h *Controller) Impact(c *fiber.Ctx) error {
	percent := c.QueryInt("percent", 40)
	loss, err := stats.TrafficLossPercent(percent)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"zero_click_percent":   percent,
		"traffic_loss_percent": loss,
		"message": fmt.Sprintf(
			"If %d%% of searches are zero-click, a website could lose up to %d%% of its potential traffic from search results.",
			percent, loss),
	})
}

// Terms lists the distinct terms of the active dataset.
func (h *Controller) Terms(c *fiber.Ctx) error {
	_, snapshotID := h.store.Snapshot()
	return c.JSON(fiber.Map{
		"terms":       h.store.Terms(),
		"snapshot_id": snapshotID,
		"origin":      h.store.Origin(),
	})
}

// Volume resolves one term through the provider chain. The order query
// parameter is a comma-separated provider list; absent, the configured
// default applies.
func (h *Controller) Volume(c *fiber.Ctx) error {
	term, err := url.PathUnescape(c.Params("term"))
	if err != nil || term == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid term"})
	}

	order := h.defaultOrder
	if raw := c.Query("order"); raw != "" {
		order = parseOrder(raw)
	}

	result, trace, err := h.resolv.Resolve(c.Context(), term, order)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	metrics.RecordResolution(result, trace)

	if result.Outcome != resolver.OutcomeFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fmt.Sprintf("no data found for '%s'", term),
			"trace": trace,
		})
	}

	return c.JSON(fiber.Map{
		"term":             term,
		"source":           result.Source,
		"unit":             result.Unit,
		"series":           result.Series,
		"chart":            stats.SeriesChartMeta(term, result.Unit),
		"estimated_impact": stats.EstimatedImpact(result.Series, stats.DefaultZeroClickShare),
		"trace":            trace,
	})
}

// UploadDataset replaces the active dataset from a CSV upload. Accepts either
// a multipart form with a "file" field or a raw CSV body.
func (h *Controller) UploadDataset(c *fiber.Ctx) error {
	raw, err := h.uploadBytes(c)
	if err != nil {
		metrics.RecordUpload("error")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	snapshotID, err := h.uploads.Load(raw)
	if err != nil {
		var schemaErr *volume.SchemaError
		if errors.As(err, &schemaErr) {
			metrics.RecordUpload("schema_error")
		} else {
			metrics.RecordUpload("error")
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	metrics.RecordUpload("success")
	return c.JSON(fiber.Map{
		"snapshot_id": snapshotID,
		"rows":        h.store.Len(),
		"terms":       h.store.Terms(),
	})
}

// DownloadDataset streams the active dataset as CSV in the canonical column
// order.
func (h *Controller) DownloadDataset(c *fiber.Ctx) error {
	dataset, snapshotID := h.store.Snapshot()
	data, err := volume.EncodeCSV(dataset)
	if err != nil {
		h.log.WithError(err).Error("Failed to encode active dataset")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to encode dataset"})
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set("X-Snapshot-ID", snapshotID)
	return c.Send(data)
}

// Health is a liveness probe.
func (h *Controller) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Controller) uploadBytes(c *fiber.Ctx) ([]byte, error) {
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open uploaded file: %w", err)
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	if len(c.Body()) == 0 {
		return nil, fmt.Errorf("no CSV data in request")
	}
	return c.Body(), nil
}

func parseOrder(raw string) []resolver.SourceTag {
	parts := strings.Split(raw, ",")
	order := make([]resolver.SourceTag, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		order = append(order, resolver.SourceTag(p))
	}
	return order
}
