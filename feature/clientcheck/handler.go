package clientcheck

import (
	"objectfs/core/errs"
	"objectfs/core/logger"
	"objectfs/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for client checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the client check routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/client")
	group.Get("/ready", h.HandleReady)
	group.Get("/check", h.HandleCheck)
	group.Get("/presign/:hash", h.HandlePresign)
	group.Get("/range/:hash", h.HandleRange)
}

// HandleReady reports whether the object client is ready.
// @Summary Client Readiness
// @Description Evaluates host configuration, provider selection, SDK availability, connection and permissions in order.
// @Tags client
// @Produce json
// @Success 200 {object} readiness.Decision "Ready"
// @Failure 503 {object} readiness.Decision "Not ready"
// @Router /client/ready [get]
func (h *Handler) HandleReady(c *fiber.Ctx) error {
	d := h.service.Ready(c.Context())
	if !d.Ready {
		return c.Status(fiber.StatusServiceUnavailable).JSON(d)
	}
	return c.JSON(d)
}

// HandleCheck runs the diagnostics.
// @Summary Client Diagnostics
// @Description Tests the connection and, when it succeeds, the permissions of the object client.
// @Tags client
// @Produce json
// @Param delete query boolean false "Verify that delete is not granted"
// @Success 200 {object} map[string]interface{} "Messages"
// @Router /client/check [get]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	testDelete := utils.ToBoolDefault(c.Query("delete"), h.service.DefaultTestDelete())

	messages := h.service.Diagnose(c.Context(), testDelete)
	logger.WithRayID(h.service.logger, c).Info("Diagnostics finished", zap.Int("messages", len(messages)))

	return c.JSON(fiber.Map{"messages": messages})
}

// HandlePresign generates a signed download URL.
// @Summary Presign Download
// @Description Generates a pre-signed URL for the object stored under the content hash.
// @Tags client
// @Produce json
// @Param hash path string true "Content hash"
// @Param disposition query string false "Content-Disposition override"
// @Param content_type query string false "Content-Type override"
// @Param size query integer false "File size in bytes, adds should_presign to the response"
// @Success 200 {object} map[string]interface{} "URL"
// @Failure 400 {object} map[string]string "Invalid size"
// @Failure 501 {object} map[string]string "Not supported"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /client/presign/{hash} [get]
func (h *Handler) HandlePresign(c *fiber.Ctx) error {
	size, sized, err := querySize(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid size"})
	}

	url, err := h.service.Presign(c.Context(), c.Params("hash"), c.Query("disposition"), c.Query("content_type"))
	if err != nil {
		return h.fail(c, err)
	}

	body := fiber.Map{"url": url}
	if sized {
		body["should_presign"] = h.service.ShouldPresign(size)
	}
	return c.JSON(body)
}

// HandleRange proxies a byte range of an object.
// @Summary Proxy Range
// @Description Returns the requested bytes of the object stored under the content hash.
// @Tags client
// @Produce octet-stream
// @Param hash path string true "Content hash"
// @Param Range header string true "Byte range, e.g. bytes=0-99"
// @Param size query integer false "File size in bytes"
// @Success 206 {file} binary "Partial content"
// @Failure 400 {object} map[string]string "Malformed range"
// @Failure 501 {object} map[string]string "Not handled by the client"
// @Router /client/range/{hash} [get]
func (h *Handler) HandleRange(c *fiber.Ctx) error {
	size, _, err := querySize(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid size"})
	}

	rng, data, err := h.service.Range(c.Context(), c.Params("hash"), c.Get(fiber.HeaderRange), size)
	if err != nil {
		return h.fail(c, err)
	}

	c.Set(fiber.HeaderContentRange, rng.ContentRange(size))
	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	return c.Status(fiber.StatusPartialContent).Send(data)
}

// querySize reads the optional size query parameter.
func querySize(c *fiber.Ctx) (int64, bool, error) {
	raw := c.Query("size")
	if raw == "" {
		return 0, false, nil
	}
	size, err := utils.ToInt64(raw)
	if err != nil {
		return 0, false, err
	}
	if size < 0 {
		return 0, false, errs.New(errs.KindInvalidInput, "size must not be negative")
	}
	return size, true, nil
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errs.IsInvalidInput(err):
		status = fiber.StatusBadRequest
	case errs.IsNotFound(err):
		status = fiber.StatusNotFound
	case errs.IsPermissionDenied(err):
		status = fiber.StatusForbidden
	case errs.IsUnsupported(err), errs.IsNotHandled(err):
		status = fiber.StatusNotImplemented
	case errs.IsUnavailable(err):
		status = fiber.StatusServiceUnavailable
	case errs.IsConnectionFailed(err):
		status = fiber.StatusBadGateway
	}
	if status == fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Error("Client request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
