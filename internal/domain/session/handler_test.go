package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/anamneza/anamneza/internal/catalog"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(newTestService())
	e := echo.New()
	return h, e
}

func createTestSession(t *testing.T, h *Handler, e *echo.Echo) *Session {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"sex":"female"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.CreateSession(c); err != nil {
		t.Fatalf("create session: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var sess Session
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	return &sess
}

func TestHandler_CreateSession(t *testing.T) {
	h, e := newTestHandler()
	sess := createTestSession(t, h, e)
	if sess.Sex != catalog.SexFemale {
		t.Errorf("sex = %q", sess.Sex)
	}
}

func TestHandler_CreateSession_InvalidSex(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"sex":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := h.CreateSession(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}

func TestHandler_GetSession(t *testing.T) {
	h, e := newTestHandler()
	sess := createTestSession(t, h, e)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(sess.ID.String())
	if err := h.GetSession(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_GetSession_NotFound(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())
	err := h.GetSession(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404 error, got %v", err)
	}
}

func TestHandler_UpdateHistory(t *testing.T) {
	h, e := newTestHandler()
	sess := createTestSession(t, h, e)

	body := `{"asked":true,"normal":false,"detail":"Glavobol od včeraj."}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "section")
	c.SetParamValues(sess.ID.String(), "mainComplaint")
	if err := h.UpdateHistory(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got Session
	json.Unmarshal(rec.Body.Bytes(), &got)
	st := got.History[catalog.MainComplaint]
	if !st.Asked || st.Normal || st.Detail != "Glavobol od včeraj." {
		t.Errorf("state = %+v", st)
	}
}

func TestHandler_UpdateHistory_UnknownSection(t *testing.T) {
	h, e := newTestHandler()
	sess := createTestSession(t, h, e)

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"asked":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "section")
	c.SetParamValues(sess.ID.String(), "bogus")
	err := h.UpdateHistory(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404 error, got %v", err)
	}
}

func TestHandler_SetSubfinding(t *testing.T) {
	h, e := newTestHandler()
	sess := createTestSession(t, h, e)

	// Section must be asked and abnormal before flags apply.
	body := `{"asked":true,"normal":false}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "section")
	c.SetParamValues(sess.ID.String(), "chest")
	if err := h.UpdateExam(c); err != nil {
		t.Fatalf("update exam: %v", err)
	}

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"present":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("id", "section", "key")
	c.SetParamValues(sess.ID.String(), "chest", "wheezes")
	if err := h.SetSubfinding(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got Session
	json.Unmarshal(rec.Body.Bytes(), &got)
	if !got.Exam[catalog.ExamChest].Subfindings["wheezes"] {
		t.Error("wheezes flag not set")
	}
}

func TestHandler_UpdateVitalsAndReport(t *testing.T) {
	h, e := newTestHandler()
	sess := createTestSession(t, h, e)

	body := `{"weight":"70","height":"175"}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(sess.ID.String())
	if err := h.UpdateVitals(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got Session
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Vitals.BMI == nil || *got.Vitals.BMI != 22.9 {
		t.Fatalf("BMI = %v, want 22.9", got.Vitals.BMI)
	}

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(sess.ID.String())
	if err := h.GenerateReport(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_DeleteSession(t *testing.T) {
	h, e := newTestHandler()
	sess := createTestSession(t, h, e)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(sess.ID.String())
	if err := h.DeleteSession(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}
