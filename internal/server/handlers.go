package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"camper-renderer/internal/camper"
	"camper-renderer/internal/export"
	"camper-renderer/internal/order"
	"camper-renderer/internal/preview"
	"camper-renderer/internal/pricing"

	"github.com/gofiber/fiber/v3"
	"github.com/samber/lo"
)

func (s *Server) live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "alive"})
}

func (s *Server) ready(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ready",
		"cached":   s.cache.Len(),
		"ordering": s.opts.Relay != nil,
	})
}

// renderQuery serves GET /render?frame=&wheels=&options=a,b&format=&width=.
func (s *Server) renderQuery(c fiber.Ctx) error {
	cfg := camper.Config{
		Frame:  camper.Frame(c.Query("frame", string(camper.FrameStandard))),
		Wheels: camper.Wheels(c.Query("wheels", string(camper.WheelsStandard))),
	}
	opts, err := camper.ParseOptions(c.Query("options"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return s.render(c, cfg.WithOptions(opts...))
}

// renderBody serves POST /render with a JSON build body.
func (s *Server) renderBody(c fiber.Ctx) error {
	cfg, err := decodeBuild(c.Body())
	if err != nil {
		return err
	}
	return s.render(c, cfg)
}

func (s *Server) render(c fiber.Ctx, cfg camper.Config) error {
	opts, err := s.exportOptions(c)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("%s|%s|%d|%t", cfg.Key(), opts.Format, opts.Raster.Width, opts.Trim)
	data, err := s.cache.Get(key, func() ([]byte, error) {
		return export.Bytes(preview.Render(cfg), opts)
	})
	if err != nil {
		return fmt.Errorf("render %s: %w", cfg.Key(), err)
	}

	c.Set(fiber.HeaderContentType, opts.Format.ContentType())
	return c.Send(data)
}

// exportOptions applies format, width and trim query overrides to the defaults.
func (s *Server) exportOptions(c fiber.Ctx) (export.Options, error) {
	opts := s.opts.Export

	f, err := export.ParseFormat(c.Query("format", string(opts.Format)))
	if err != nil {
		return opts, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	opts.Format = f

	if w := c.Query("width"); w != "" {
		n, err := strconv.Atoi(w)
		if err != nil || n < 16 || n > 4096 {
			return opts, fiber.NewError(fiber.StatusBadRequest, "width must be between 16 and 4096")
		}
		opts.Raster.Width = n
	}
	if t := c.Query("trim"); t != "" {
		opts.Trim = t == "1" || t == "true"
	}
	return opts, nil
}

type quoteResponse struct {
	pricing.Quote
	Display string `json:"display"`
	Summary string `json:"summary"`
}

func (s *Server) quote(c fiber.Ctx) error {
	cfg, err := decodeBuild(c.Body())
	if err != nil {
		return err
	}
	q := pricing.QuoteFor(cfg)
	return c.JSON(quoteResponse{Quote: q, Display: pricing.FormatUSD(q.Total), Summary: cfg.Summary()})
}

type orderRequest struct {
	Customer order.Customer  `json:"customer"`
	Items    []camper.Config `json:"items"`
}

type orderResponse struct {
	order.Receipt
	Display string       `json:"display"`
	Items   []order.Item `json:"items"`
}

// submitOrder prices the posted builds server-side and relays the order.
func (s *Server) submitOrder(c fiber.Ctx) error {
	if s.opts.Relay == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, order.ErrRelayNotConfigured.Error())
	}

	var req orderRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid JSON payload")
	}
	items := lo.Map(req.Items, func(cfg camper.Config, _ int) order.Item {
		return order.NewItem(normalize(cfg))
	})

	rc, err := s.opts.Relay.Submit(c.Context(), req.Customer, items)
	switch {
	case errors.Is(err, order.ErrMissingContact), errors.Is(err, order.ErrEmptyCart):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, order.ErrRelayNotConfigured):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	case err != nil:
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}

	s.log.Info("order relayed", "order", rc.OrderID, "count", rc.Count, "total", rc.Total)
	return c.Status(fiber.StatusCreated).JSON(orderResponse{Receipt: rc, Display: pricing.FormatUSD(rc.Total), Items: items})
}

func decodeBuild(body []byte) (camper.Config, error) {
	if len(body) == 0 {
		return camper.Config{}, fiber.NewError(fiber.StatusBadRequest, "body required")
	}
	cfg, err := camper.Decode(body)
	if err != nil {
		return camper.Config{}, fiber.NewError(fiber.StatusBadRequest, "invalid JSON payload")
	}
	return cfg, nil
}

// normalize fills an empty frame or wheel package the way camper.Decode does.
func normalize(cfg camper.Config) camper.Config {
	if cfg.Frame == "" {
		cfg.Frame = camper.FrameStandard
	}
	if cfg.Wheels == "" {
		cfg.Wheels = camper.WheelsStandard
	}
	return cfg
}
