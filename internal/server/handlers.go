package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"sensor-compare.klederson.com/internal/compare"
	"sensor-compare.klederson.com/internal/config"
	"sensor-compare.klederson.com/internal/export"
	"sensor-compare.klederson.com/internal/logging"
	"sensor-compare.klederson.com/internal/overlay"
	"sensor-compare.klederson.com/internal/sensor"
)

type Handler struct {
	catalog  *sensor.Catalog
	sessions *SessionStore
	cfg      *config.Settings
}

func NewHandler(c *sensor.Catalog, cfg *config.Settings) *Handler {
	return &Handler{
		catalog:  c,
		sessions: NewSessionStore(c, cfg.ScreenDiagonalInches()),
		cfg:      cfg,
	}
}

type searchRequest struct {
	Search string `json:"search"`
}

type displayRequest struct {
	RealPhysicalSize *bool   `json:"realPhysicalSize"`
	ScreenSize       *string `json:"screenSize"`
}

type sessionResponse struct {
	ID   string       `json:"id"`
	View compare.View `json:"view"`
}

func fail(c fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func (h *Handler) sessionError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, compare.ErrUnknownSensor), errors.Is(err, compare.ErrUnknownColumn):
		return fail(c, fiber.StatusNotFound, err.Error())
	}
	logging.L().Error("session request failed", "path", c.Path(), "err", err)
	return fail(c, fiber.StatusInternalServerError, err.Error())
}

// queryFloat reads a positive float query parameter, or def.
func queryFloat(c fiber.Ctx, key string, def float64) float64 {
	v, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil || !(v > 0) {
		return def
	}
	return v
}

// viewport reads the canvas bounds from the query. Without them the canvas
// is the configured screen width minus margins, at the fixed page height,
// with every box centered on x=0.
func (h *Handler) viewport(c fiber.Ctx) (overlay.Viewport, float64) {
	vp := overlay.Viewport{
		Width:  queryFloat(c, "width", float64(h.cfg.Screen.WidthPx-2*config.CanvasOffset)),
		Height: queryFloat(c, "height", config.CanvasHeight),
	}
	if cx, err := strconv.ParseFloat(c.Query("centerX"), 64); err == nil {
		vp.CenterX = cx
	}
	return vp, queryFloat(c, "diagonalPx", h.cfg.ScreenDiagonalPx())
}

// mutate applies fn to the session and answers with the recomputed view.
func (h *Handler) mutate(c fiber.Ctx, fn func(*compare.Session) error) error {
	vp, diag := h.viewport(c)
	var view compare.View
	err := h.sessions.With(c.Params("id"), func(s *compare.Session) error {
		if err := fn(s); err != nil {
			return err
		}
		view = s.View(vp, diag)
		return nil
	})
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(view)
}

func param(c fiber.Ctx, key string) string {
	v := c.Params(key)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

// ListSensors answers the All table for ?search=&sort=&dir= without a session.
func (h *Handler) ListSensors(c fiber.Ctx) error {
	var st compare.SortState
	if name := c.Query("sort"); name != "" {
		col, err := compare.ColumnByName(name)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		dir, err := compare.ParseDirection(c.Query("dir"))
		if err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		if dir == compare.DirNone {
			dir = compare.Asc
		}
		st = compare.SortState{Primary: col.Key, Secondary: col.Key2, Direction: dir}
	}

	list := compare.FilterSort(compare.Pointers(h.catalog), c.Query("search"), st)
	rows := compare.Rows(list, func(int) bool { return false })
	if !st.Active() {
		compare.MarkGroups(rows)
	}
	return c.JSON(fiber.Map{"sensors": rows, "sort": st})
}

func (h *Handler) CreateSession(c fiber.Ctx) error {
	id := h.sessions.Create()
	vp, diag := h.viewport(c)
	var view compare.View
	_ = h.sessions.With(id, func(s *compare.Session) error {
		view = s.View(vp, diag)
		return nil
	})
	logging.L().Info("session created", "id", id, "sessions", h.sessions.Len())
	return c.Status(fiber.StatusCreated).JSON(sessionResponse{ID: id, View: view})
}

func (h *Handler) GetView(c fiber.Ctx) error {
	return h.mutate(c, func(*compare.Session) error { return nil })
}

func (h *Handler) ToggleSensor(c fiber.Ctx) error {
	model := param(c, "model")
	return h.mutate(c, func(s *compare.Session) error {
		return s.ToggleSensor(model)
	})
}

func (h *Handler) ToggleLogo(c fiber.Ctx) error {
	logo := param(c, "logo")
	return h.mutate(c, func(s *compare.Session) error {
		s.ToggleLogo(logo)
		return nil
	})
}

func (h *Handler) ChangeSort(c fiber.Ctx) error {
	col, err := compare.ColumnByName(param(c, "column"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return h.mutate(c, func(s *compare.Session) error {
		s.ChangeSort(col)
		return nil
	})
}

func (h *Handler) SetSearch(c fiber.Ctx) error {
	var req searchRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid JSON payload")
	}
	return h.mutate(c, func(s *compare.Session) error {
		s.SetSearch(req.Search)
		return nil
	})
}

func (h *Handler) SetDisplay(c fiber.Ctx) error {
	var req displayRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid JSON payload")
	}
	return h.mutate(c, func(s *compare.Session) error {
		if req.RealPhysicalSize != nil {
			s.SetRealPhysicalSize(*req.RealPhysicalSize)
		}
		if req.ScreenSize != nil {
			s.SetScreenSize(*req.ScreenSize)
		}
		return nil
	})
}

func (h *Handler) ExportCSV(c fiber.Ctx) error {
	var buf bytes.Buffer
	err := h.sessions.With(c.Params("id"), func(s *compare.Session) error {
		view := s.View(h.viewport(c))
		return export.WriteRows(&buf, view.All)
	})
	if err != nil {
		return h.sessionError(c, err)
	}
	c.Set("Content-Type", "text/csv")
	return c.Send(buf.Bytes())
}

func (h *Handler) DeleteSession(c fiber.Ctx) error {
	if !h.sessions.Delete(c.Params("id")) {
		return fail(c, fiber.StatusNotFound, ErrSessionNotFound.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}
