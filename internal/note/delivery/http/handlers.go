package http

import (
	"github.com/gin-gonic/gin"

	"smart-notes/internal/model"
	"smart-notes/pkg/response"
)

func scopeOf(c *gin.Context) model.Scope {
	return model.Scope{UserID: c.ClientIP(), Source: model.SourceHTTP}
}

// fail writes err as a client error when it maps to one, else as a 500.
func (h *handler) fail(c *gin.Context, op string, err error) {
	if httpErr, ok := h.mapError(err); ok {
		response.Error(c, httpErr, nil)
		return
	}
	h.l.Errorf(c.Request.Context(), "uc.%s: %v", op, err)
	response.InternalError(c, err)
}

// Create godoc
// @Summary     Create a note
// @Description Analyzes the note with Gemini, stores it and starts its countdown when it has a future due date. A degraded analysis still stores the note and sets warning.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       X-Gemini-Api-Key header string    false "Overrides the configured Gemini API key"
// @Param       body             body   createReq true  "Note content"
// @Success     201 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Create(ctx, scopeOf(c), req.toInput())
	if err != nil {
		h.fail(c, "Create", err)
		return
	}

	response.Created(c, h.newCreateResp(out))
}

// List godoc
// @Summary     List notes
// @Description Returns notes newest first. q filters by content, tags, summary, venue and author, case-insensitively.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       q query string false "Search text"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.List(ctx, scopeOf(c), req.toInput())
	if err != nil {
		h.fail(c, "List", err)
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get a note
// @Tags        Notes
// @Produce     json
// @Param       id path string true "Note ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	n, err := h.uc.Detail(ctx, scopeOf(c), id)
	if err != nil {
		h.fail(c, "Detail", err)
		return
	}

	response.OK(c, h.newDetailResp(n))
}

// Delete godoc
// @Summary     Delete a note
// @Description Removes the note and stops its countdown.
// @Tags        Notes
// @Produce     json
// @Param       id path string true "Note ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, scopeOf(c), id); err != nil {
		h.fail(c, "Delete", err)
		return
	}

	response.OK(c, nil)
}

// ToggleComplete godoc
// @Summary     Toggle note completion
// @Description Flips the completed flag. Completing stops the countdown, reopening restarts it while the due date is ahead.
// @Tags        Notes
// @Produce     json
// @Param       id path string true "Note ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes/{id}/complete [PATCH]
func (h *handler) ToggleComplete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	n, err := h.uc.ToggleComplete(ctx, scopeOf(c), id)
	if err != nil {
		h.fail(c, "ToggleComplete", err)
		return
	}

	response.OK(c, h.newDetailResp(n))
}

// Countdown godoc
// @Summary     Get a note's countdown
// @Description Returns the live countdown state, or a detached view when none is running.
// @Tags        Notes
// @Produce     json
// @Param       id path string true "Note ID"
// @Success     200 {object} countdown.State
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Note has no due date"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes/{id}/countdown [GET]
func (h *handler) Countdown(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	st, err := h.uc.Countdown(ctx, scopeOf(c), id)
	if err != nil {
		h.fail(c, "Countdown", err)
		return
	}

	response.OK(c, st)
}
