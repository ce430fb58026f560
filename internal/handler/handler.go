package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"shortlinks/internal/cache"
	"shortlinks/internal/domain"
	"shortlinks/internal/service"
	"shortlinks/internal/validation"
)

var (
	errInvalidBody     = map[string]string{"error": "invalid request body"}
	errTargetRequired  = map[string]string{"error": "targetUrl is required"}
	errCodeRequired    = map[string]string{"error": "code is required"}
	errLinkNotFound    = map[string]string{"error": "link not found"}
	errInvalidPageSpec = map[string]string{"error": "page must be >= 0 and size between 1 and 100"}
	errCreateFailed    = map[string]string{"error": "failed to create short link"}
	errGetFailed       = map[string]string{"error": "failed to resolve short link"}
	errStatsFailed     = map[string]string{"error": "failed to compute stats"}
	respHealthOK       = map[string]string{"status": "ok"}
)

const (
	defaultStatsPage = 0
	defaultStatsSize = 10
)

type Handler struct {
	linkService LinkService
	dispatcher  ClickDispatcher
	linkCache   *cache.LinkCache
	baseURL     string
	logger      *slog.Logger
	recorder    BusinessRecorder
}

func New(
	linkService LinkService,
	dispatcher ClickDispatcher,
	linkCache *cache.LinkCache,
	baseURL string,
	logger *slog.Logger,
	recorder BusinessRecorder,
) *Handler {
	return &Handler{
		linkService: linkService,
		dispatcher:  dispatcher,
		linkCache:   linkCache,
		baseURL:     baseURL,
		logger:      logger,
		recorder:    recorder,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/api/v1/health", h.Health)
	e.POST("/links", h.CreateLink)
	e.GET("/stats", h.GetStats)
	e.GET("/:code", h.Redirect)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

// CreateLink shortens a target URL. Repeating a target returns the existing
// short link with the same 201 body.
func (h *Handler) CreateLink(c echo.Context) error {
	var req domain.CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	link, err := h.linkService.CreateShortLink(c.Request().Context(), req.TargetURL)
	if err != nil {
		if errors.Is(err, validation.ErrTargetURLRequired) {
			return c.JSON(http.StatusBadRequest, errTargetRequired)
		}
		h.logger.Error("failed to create short link", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errCreateFailed)
	}

	return c.JSON(http.StatusCreated, domain.CreateLinkResponse{
		ShortURL:  fmt.Sprintf("%s/%s", h.baseURL, link.ShortCode),
		TargetURL: link.TargetURL,
	})
}

// Redirect resolves a short code, fires the click off the request path, and
// 302s to the target. An unknown code records nothing.
func (h *Handler) Redirect(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, errCodeRequired)
	}

	link, cached := h.linkCache.Get(code)
	if !cached {
		found, err := h.linkService.GetByShortCode(c.Request().Context(), code)
		if err != nil {
			if errors.Is(err, service.ErrLinkNotFound) {
				h.recorder.RecordBusiness("link_not_found", 1, map[string]string{
					"short_code": code,
					"client_ip":  c.RealIP(),
				})
				return c.JSON(http.StatusNotFound, errLinkNotFound)
			}
			h.logger.Error("failed to resolve short link", slog.String("error", err.Error()))
			return c.JSON(http.StatusInternalServerError, errGetFailed)
		}
		link = *found
		h.linkCache.Set(link)
	}

	h.dispatcher.Dispatch(link)

	h.recorder.RecordBusiness("redirects", 1, map[string]string{
		"short_code": code,
		"referrer":   extractDomain(c.Request().Referer()),
	})

	return c.Redirect(http.StatusFound, link.TargetURL)
}

// GetStats serves one page of per-link click and earnings analytics.
func (h *Handler) GetStats(c echo.Context) error {
	page, err := queryInt(c, "page", defaultStatsPage)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidPageSpec)
	}
	size, err := queryInt(c, "size", defaultStatsSize)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidPageSpec)
	}

	stats, err := h.linkService.GetStats(c.Request().Context(), page, size)
	if err != nil {
		if errors.Is(err, validation.ErrPageSizeOutOfRange) || errors.Is(err, validation.ErrNegativePageIndex) {
			return c.JSON(http.StatusBadRequest, errInvalidPageSpec)
		}
		h.logger.Error("failed to compute stats", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errStatsFailed)
	}

	return c.JSON(http.StatusOK, stats)
}

func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func extractDomain(referer string) string {
	if referer == "" {
		return "direct"
	}

	parsed, err := url.Parse(referer)
	if err != nil || parsed.Host == "" {
		return "unknown"
	}

	return parsed.Host
}
