package http

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"fbmobile/internal/core"
	"fbmobile/internal/form"
	"fbmobile/internal/log"
	"fbmobile/internal/report"
	"fbmobile/internal/store"
)

type (
	fieldsView struct {
		Vis            form.Visibility
		Models         []option
		ShowModelOther bool
		Input          form.Input
		Errors         form.FieldErrors
		Suggestions    []string
	}

	formView struct {
		Mode       string // create or edit
		ID         string
		Action     string
		Categories []option
		Input      form.Input
		Errors     form.FieldErrors
		Fields     fieldsView
	}
)

// handleForm renders the transaction form partial. Without an id it
// opens in create mode with defaults (date = today, everything else
// empty); with an id it prefills every field from the target record.
func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	if resp := RequireMethod(r, http.MethodGet); resp != nil {
		resp.Write(w)
		return
	}

	in := form.Input{Date: core.Today()}
	mode, id := "create", ""
	if v := sanitizeInput(r.URL.Query().Get("id")); v != "" {
		tx, err := s.store.Get(v)
		if err != nil {
			// Edit target vanished; fall back to a fresh create form.
			slog.WarnContext(r.Context(), "Edit target not found", log.FieldTransactionID, v)
		} else {
			in = form.FromTransaction(tx)
			mode, id = "edit", tx.ID
		}
	}

	s.renderForm(w, r, http.StatusOK, mode, id, in, nil)
}

// handleFormFields re-renders the category-conditional section whenever
// the category selector changes.
func (s *Server) handleFormFields(w http.ResponseWriter, r *http.Request) {
	if resp := RequireMethod(r, http.MethodGet); resp != nil {
		resp.Write(w)
		return
	}
	in := parseFormInput(r.URL.Query())
	s.render(w, r, "form_fields.html", s.buildFieldsView(in, nil))
}

func (s *Server) renderForm(w http.ResponseWriter, r *http.Request, status int, mode, id string, in form.Input, errs form.FieldErrors) {
	action := "/transactions"
	if mode == "edit" {
		action = "/transactions/update"
	}
	data := formView{
		Mode:   mode,
		ID:     id,
		Action: action,
		Input:  in,
		Errors: errs,
		Fields: s.buildFieldsView(in, errs),
	}
	for _, c := range core.Categories() {
		data.Categories = append(data.Categories, option{
			Value: string(c), Label: c.Label(), Selected: string(c) == in.Category,
		})
	}
	s.renderStatus(w, r, status, "form.html", data)
}

func (s *Server) buildFieldsView(in form.Input, errs form.FieldErrors) fieldsView {
	cat := core.Category(in.Category)
	view := fieldsView{
		Vis:         form.VisibilityFor(cat),
		Input:       in,
		Errors:      errs,
		Suggestions: report.DistinctModels(s.store.List()),
	}

	models := form.Models(cat)
	selected := in.Model
	// A stored brand outside the taxonomy was entered through the
	// "other" override; re-select the sentinel and surface the text.
	if selected != "" && !slices.Contains(models, selected) {
		view.Input.ModelOther = selected
		selected = core.OtherModel
	}
	view.ShowModelOther = selected == core.OtherModel
	for _, m := range models {
		view.Models = append(view.Models, option{Value: m, Label: m, Selected: m == selected})
	}
	return view
}

func (s *Server) renderStatus(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", log.FieldPath, r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution failed",
			log.FieldError, err, "template", name, log.FieldPath, r.URL.Path)
	}
}

// handleCreateTransaction validates the submission and appends a new
// transaction. Validation failures re-render the form with inline field
// errors at 422; nothing is stored.
func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	if resp := ParseFormOrFail(r); resp != nil {
		resp.Write(w)
		return
	}

	in := parseFormInput(r.Form)
	patch, errs := in.Validate(core.Today())
	if !errs.OK() {
		slog.DebugContext(r.Context(), "Transaction rejected", log.FieldCount, len(errs))
		s.renderForm(w, r, http.StatusUnprocessableEntity, "create", "", in, errs)
		return
	}

	tx := s.store.Add(patch)
	s.invalidateViews()

	slog.InfoContext(r.Context(), "Transaction created",
		log.FieldTransactionID, tx.ID, log.FieldCategory, tx.Category,
		log.FieldDate, tx.Date, "price", tx.Price, "profit", tx.Profit)

	NewHTMXResponse().
		TriggerTransactionCreated(tx.ID).
		SuccessMessage("บันทึกรายการแล้ว").
		Write(w)
}

// handleUpdateTransaction merges the submission onto an existing
// transaction. A vanished target is a silent no-op, not an error.
func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	if resp := ParseFormOrFail(r); resp != nil {
		resp.Write(w)
		return
	}

	id := sanitizeInput(r.Form.Get("id"))
	if id == "" {
		BadRequestError("ไม่พบรายการ").Write(w)
		return
	}

	in := parseFormInput(r.Form)
	patch, errs := in.Validate(core.Today())
	if !errs.OK() {
		s.renderForm(w, r, http.StatusUnprocessableEntity, "edit", id, in, errs)
		return
	}

	tx, err := s.store.Update(id, patch)
	if errors.Is(err, store.ErrNotFound) {
		slog.WarnContext(r.Context(), "Update target not found", log.FieldTransactionID, id)
		NewHTMXResponse().TriggerTransactionUpdated(id).Write(w)
		return
	}
	s.invalidateViews()

	slog.InfoContext(r.Context(), "Transaction updated",
		log.FieldTransactionID, tx.ID, log.FieldCategory, tx.Category,
		log.FieldDate, tx.Date, "profit", tx.Profit)

	NewHTMXResponse().
		TriggerTransactionUpdated(tx.ID).
		SuccessMessage("แก้ไขรายการแล้ว").
		Write(w)
}

// handleDeleteTransaction removes a transaction. Deleting an id that no
// longer exists is a silent no-op.
func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if resp := RequireDeleteOrPOST(r); resp != nil {
		resp.Write(w)
		return
	}
	if resp := ParseFormOrFail(r); resp != nil {
		resp.Write(w)
		return
	}

	id := sanitizeInput(r.Form.Get("id"))
	if id == "" {
		id = sanitizeInput(r.URL.Query().Get("id"))
	}
	if id == "" {
		BadRequestError("ไม่พบรายการ").Write(w)
		return
	}

	if err := s.store.Delete(id); errors.Is(err, store.ErrNotFound) {
		slog.WarnContext(r.Context(), "Delete target not found", log.FieldTransactionID, id)
		NewHTMXResponse().TriggerTransactionDeleted(id).Write(w)
		return
	}
	s.invalidateViews()

	slog.InfoContext(r.Context(), "Transaction deleted", log.FieldTransactionID, id)
	NewHTMXResponse().TriggerTransactionDeleted(id).Write(w)
}
