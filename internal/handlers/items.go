package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"itemdesk/internal/flash"
	"itemdesk/internal/service"
	"itemdesk/internal/views"

	"github.com/gin-gonic/gin"
)

type itemForm struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
}

type searchForm struct {
	Search string `form:"search"`
}

func (f itemForm) input() service.ItemInput {
	return service.ItemInput{Name: f.Name, Description: f.Description}
}

// dashboard godoc
// @Summary      Dashboard
// @Description  Lists every item. Requires a session.
// @Tags         items
// @Produce      html
// @Success      200
// @Success      302  "no session"
// @Router       /dashboard [get]
func (h *Handler) dashboard(c *gin.Context) {
	items, err := h.services.Items.List(c.Request.Context())
	if err != nil {
		h.internalError(c, "items_list_failed", err)
		return
	}
	h.render(c, http.StatusOK, views.DashboardPage, views.Page{Title: "Dashboard", Items: items})
}

// newItemForm godoc
// @Summary      New item form
// @Tags         items
// @Produce      html
// @Success      200
// @Router       /new [get]
func (h *Handler) newItemForm(c *gin.Context) {
	h.render(c, http.StatusOK, views.NewItemPage, views.Page{Title: "New item"})
}

// createItem godoc
// @Summary      Create item
// @Tags         items
// @Accept       x-www-form-urlencoded
// @Param        name         formData  string  true   "Name"
// @Param        description  formData  string  false  "Description"
// @Success      302
// @Router       /new [post]
func (h *Handler) createItem(c *gin.Context) {
	var in itemForm
	if err := c.ShouldBind(&in); err != nil {
		h.redirectWithNotice(c, "/new", flash.Danger(noticeNameRequired))
		return
	}

	it, err := h.services.Items.Create(c.Request.Context(), in.input())
	if errors.Is(err, service.ErrEmptyName) {
		h.redirectWithNotice(c, "/new", flash.Danger(noticeNameRequired))
		return
	}
	if err != nil {
		h.internalError(c, "item_create_failed", err)
		return
	}

	if h.log != nil {
		h.log.Infow("item_created", "item_id", it.ID)
	}
	h.redirectWithNotice(c, "/dashboard", flash.Success(noticeItemCreated))
}

// editItemForm godoc
// @Summary      Edit item form
// @Tags         items
// @Produce      html
// @Param        id  path  int  true  "Item id"
// @Success      200
// @Success      302  "unknown id"
// @Router       /edit/{id} [get]
func (h *Handler) editItemForm(c *gin.Context) {
	id, ok := h.loadItemID(c)
	if !ok {
		return
	}
	it, err := h.services.Items.Get(c.Request.Context(), id)
	if errors.Is(err, service.ErrItemNotFound) {
		h.redirectWithNotice(c, "/dashboard", flash.Danger(noticeItemNotFound))
		return
	}
	if err != nil {
		h.internalError(c, "item_get_failed", err, "item_id", id)
		return
	}
	h.render(c, http.StatusOK, views.EditItemPage, views.Page{Title: "Edit item", Item: it})
}

// updateItem godoc
// @Summary      Update item
// @Tags         items
// @Accept       x-www-form-urlencoded
// @Param        id           path      int     true   "Item id"
// @Param        name         formData  string  true   "Name"
// @Param        description  formData  string  false  "Description"
// @Success      302
// @Router       /edit/{id} [post]
func (h *Handler) updateItem(c *gin.Context) {
	id, ok := h.loadItemID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	// Unknown ids win over form errors.
	if _, err := h.services.Items.Get(ctx, id); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			h.redirectWithNotice(c, "/dashboard", flash.Danger(noticeItemNotFound))
			return
		}
		h.internalError(c, "item_get_failed", err, "item_id", id)
		return
	}

	var in itemForm
	if err := c.ShouldBind(&in); err != nil {
		h.redirectWithNotice(c, editPath(id), flash.Danger(noticeNameRequired))
		return
	}

	err := h.services.Items.Update(ctx, id, in.input())
	switch {
	case errors.Is(err, service.ErrEmptyName):
		h.redirectWithNotice(c, editPath(id), flash.Danger(noticeNameRequired))
		return
	case errors.Is(err, service.ErrItemNotFound):
		h.redirectWithNotice(c, "/dashboard", flash.Danger(noticeItemNotFound))
		return
	case err != nil:
		h.internalError(c, "item_update_failed", err, "item_id", id)
		return
	}

	if h.log != nil {
		h.log.Infow("item_updated", "item_id", id)
	}
	h.redirectWithNotice(c, "/dashboard", flash.Success(noticeItemUpdated))
}

// searchAll godoc
// @Summary      Search page
// @Description  Lists every item.
// @Tags         items
// @Produce      html
// @Success      200
// @Router       /search [get]
func (h *Handler) searchAll(c *gin.Context) {
	h.renderSearch(c, "")
}

// search godoc
// @Summary      Search items
// @Description  Case-insensitive substring match on item names.
// @Tags         items
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        search  formData  string  false  "Name fragment"
// @Success      200
// @Router       /search [post]
func (h *Handler) search(c *gin.Context) {
	var in searchForm
	// An unreadable body falls back to the empty query, which lists everything.
	if err := c.ShouldBind(&in); err != nil {
		if h.log != nil {
			h.log.Debugw("search_bad_form", "err", err, "request_id", c.GetString(ctxRequestID))
		}
		in = searchForm{}
	}
	h.renderSearch(c, in.Search)
}

func (h *Handler) renderSearch(c *gin.Context, query string) {
	res, err := h.services.Items.Search(c.Request.Context(), query)
	if err != nil {
		h.internalError(c, "items_search_failed", err, "query", query)
		return
	}
	h.render(c, http.StatusOK, views.SearchPage, views.Page{
		Title:   "Search",
		Items:   res.Items,
		Query:   res.Query,
		Matched: len(res.Items),
		Total:   res.Total,
	})
}

// loadItemID parses the :id path parameter. Non-numeric ids are treated as
// unknown items.
func (h *Handler) loadItemID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		h.redirectWithNotice(c, "/dashboard", flash.Danger(noticeItemNotFound))
		return 0, false
	}
	return id, true
}

func editPath(id int) string {
	return "/edit/" + strconv.Itoa(id)
}
