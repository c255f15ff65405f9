package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pasko-evg/superlists/internal/auth"
	apperrors "github.com/pasko-evg/superlists/internal/errors"
	"github.com/pasko-evg/superlists/internal/forms"
	"github.com/pasko-evg/superlists/internal/model"
	"github.com/pasko-evg/superlists/internal/service"
	"github.com/pasko-evg/superlists/internal/view"
)

// ListHandler serves the home, list and my-lists pages.
type ListHandler struct {
	lists service.ListService
}

// NewListHandler creates a list handler.
func NewListHandler(lists service.ListService) *ListHandler {
	return &ListHandler{lists: lists}
}

// Home renders the home page with an empty new-item form.
func (h *ListHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home", view.Page{
		Title:       "To-Do lists",
		CurrentUser: auth.EmailFromContext(c),
		Flashes:     popFlashes(c),
	})
}

// CreateList handles POST /lists/new: a valid first item creates the list
// and redirects to its canonical URL; invalid input re-renders the home
// page with the submitted text and field errors, persisting nothing.
func (h *ListHandler) CreateList(c echo.Context) error {
	text := c.FormValue("text")

	var owner *string
	if email := auth.EmailFromContext(c); email != "" {
		owner = &email
	}

	intent := forms.NewListIntent{Text: text, Owner: owner}
	if errs := intent.Validate(); errs.Any() {
		return h.renderHome(c, text, errs.Field("text"))
	}

	list, err := h.lists.CreateList(c.Request().Context(), text, owner)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyItem) {
			return h.renderHome(c, text, []string{forms.EmptyItemError})
		}
		return echo.NewHTTPError(apperrors.HTTPStatus(err), "failed to create list")
	}

	return c.Redirect(http.StatusSeeOther, list.URL())
}

// ViewList renders a list's items with a fresh item form.
func (h *ListHandler) ViewList(c echo.Context) error {
	id, err := listID(c)
	if err != nil {
		return err
	}

	list, items, err := h.lists.GetList(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrListNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "list not found")
		}
		return echo.NewHTTPError(apperrors.HTTPStatus(err), "failed to load list")
	}

	return h.renderList(c, list, items, "", nil)
}

// AddItem handles POST /lists/:id/: appends on success and redirects back
// to the same canonical URL; blank or duplicate text re-renders the list
// page with field errors.
func (h *ListHandler) AddItem(c echo.Context) error {
	id, err := listID(c)
	if err != nil {
		return err
	}

	list, items, err := h.lists.GetList(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrListNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "list not found")
		}
		return echo.NewHTTPError(apperrors.HTTPStatus(err), "failed to load list")
	}

	text := c.FormValue("text")
	intent := forms.ExistingListItemIntent{ListID: id, Text: text}
	if errs := intent.Validate(itemTexts(items)); errs.Any() {
		return h.renderList(c, list, items, text, errs.Field("text"))
	}

	if _, err := h.lists.AddItem(c.Request().Context(), id, text); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrEmptyItem):
			return h.renderList(c, list, items, text, []string{forms.EmptyItemError})
		case errors.Is(err, apperrors.ErrDuplicateItem):
			// Lost a race with a concurrent insert of the same text.
			return h.renderList(c, list, items, text, []string{forms.DuplicateItemError})
		default:
			return echo.NewHTTPError(apperrors.HTTPStatus(err), "failed to add item")
		}
	}

	return c.Redirect(http.StatusSeeOther, list.URL())
}

// MyLists renders the lists owned by the user in the URL. An unknown email
// is a 404; a known user with no lists renders an empty page.
func (h *ListHandler) MyLists(c echo.Context) error {
	email := c.Param("email")

	owner, summaries, err := h.lists.ListsForUser(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return echo.NewHTTPError(apperrors.HTTPStatus(err), "failed to load lists")
	}

	return c.Render(http.StatusOK, "my_lists", view.Page{
		Title:       "My lists",
		CurrentUser: auth.EmailFromContext(c),
		Flashes:     popFlashes(c),
		Owner:       owner,
		Lists:       summaries,
	})
}

func (h *ListHandler) renderHome(c echo.Context, text string, textErrors []string) error {
	return c.Render(http.StatusOK, "home", view.Page{
		Title:       "To-Do lists",
		CurrentUser: auth.EmailFromContext(c),
		Flashes:     popFlashes(c),
		FormText:    text,
		TextErrors:  textErrors,
	})
}

func (h *ListHandler) renderList(c echo.Context, list *model.List, items []model.Item, text string, textErrors []string) error {
	return c.Render(http.StatusOK, "list", view.Page{
		Title:       "To-Do lists",
		CurrentUser: auth.EmailFromContext(c),
		Flashes:     popFlashes(c),
		FormText:    text,
		TextErrors:  textErrors,
		List:        list,
		Items:       items,
	})
}

func listID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "list not found")
	}
	return uint(id), nil
}

func itemTexts(items []model.Item) []string {
	texts := make([]string, 0, len(items))
	for _, item := range items {
		texts = append(texts, item.Text)
	}
	return texts
}
