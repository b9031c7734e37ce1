package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CreativeMB/Server/internal/notify"
	"github.com/CreativeMB/Server/internal/user"

	"github.com/gin-gonic/gin"
)

type deleterMock struct {
	runFunc func(ctx context.Context, target user.Target) user.Outcome

	targets []user.Target
}

func (m *deleterMock) Run(ctx context.Context, target user.Target) user.Outcome {
	m.targets = append(m.targets, target)
	if m.runFunc == nil {
		return user.Outcome{Status: "ok", Message: "eliminado"}
	}
	return m.runFunc(ctx, target)
}

type notifierMock struct {
	notifyFunc func(ctx context.Context, title string) notify.Outcome

	titles []string
}

func (m *notifierMock) Notify(ctx context.Context, title string) notify.Outcome {
	m.titles = append(m.titles, title)
	if m.notifyFunc == nil {
		return notify.Outcome{Status: "ok", Message: "enviado"}
	}
	return m.notifyFunc(ctx, title)
}

func newRouter(deleter UserDeleter, notifier OrderNotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(deleter, notifier).RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNotifyOrderRequiresTitle(t *testing.T) {
	notifier := &notifierMock{}
	r := newRouter(&deleterMock{}, notifier)

	for _, body := range []string{`{}`, `{"titulo":""}`, `not json`} {
		w := doJSON(t, r, "/correo", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, w.Code)
		}
	}

	if len(notifier.titles) != 0 {
		t.Fatalf("notifier invoked for invalid requests")
	}
}

func TestNotifyOrderSuccess(t *testing.T) {
	notifier := &notifierMock{}
	r := newRouter(&deleterMock{}, notifier)

	w := doJSON(t, r, "/correo", `{"titulo":"Matrix"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(notifier.titles) != 1 || notifier.titles[0] != "Matrix" {
		t.Fatalf("unexpected titles: %v", notifier.titles)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["status"] != "ok" {
		t.Fatalf("unexpected status field: %q", resp["status"])
	}
}

func TestNotifyOrderTransportFailureIs500(t *testing.T) {
	notifier := &notifierMock{
		notifyFunc: func(_ context.Context, _ string) notify.Outcome {
			return notify.Outcome{Status: "error", Message: "no disponible"}
		},
	}
	r := newRouter(&deleterMock{}, notifier)

	w := doJSON(t, r, "/correo", `{"titulo":"Matrix"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestDeleteUserByUID(t *testing.T) {
	deleter := &deleterMock{}
	r := newRouter(deleter, &notifierMock{})

	w := doJSON(t, r, "/eliminar-usuario", `{"uid":"u1"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(deleter.targets) != 1 || deleter.targets[0].UID != "u1" {
		t.Fatalf("unexpected targets: %+v", deleter.targets)
	}
}

func TestDeleteUserByEmail(t *testing.T) {
	deleter := &deleterMock{}
	r := newRouter(deleter, &notifierMock{})

	doJSON(t, r, "/eliminar-usuario", `{"email":"a.b@x.com"}`)

	if len(deleter.targets) != 1 {
		t.Fatalf("expected one run, got %d", len(deleter.targets))
	}
	if deleter.targets[0].Email != "a.b@x.com" || deleter.targets[0].UID != "" {
		t.Fatalf("unexpected target: %+v", deleter.targets[0])
	}
}

func TestDeleteUserOutcomeMapping(t *testing.T) {
	cases := []struct {
		kind user.Kind
		want int
	}{
		{user.KindNone, http.StatusOK},
		{user.KindInvalidInput, http.StatusBadRequest},
		{user.KindNotFound, http.StatusNotFound},
		{user.KindInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		status := "error"
		if tc.kind == user.KindNone {
			status = "ok"
		}
		deleter := &deleterMock{
			runFunc: func(_ context.Context, _ user.Target) user.Outcome {
				return user.Outcome{Status: status, Kind: tc.kind, Message: "m"}
			},
		}
		r := newRouter(deleter, &notifierMock{})

		w := doJSON(t, r, "/eliminar-usuario", `{"uid":"u1"}`)
		if w.Code != tc.want {
			t.Fatalf("kind %v: expected %d, got %d", tc.kind, tc.want, w.Code)
		}
	}
}

func TestDeleteUserResponseShape(t *testing.T) {
	deleter := &deleterMock{
		runFunc: func(_ context.Context, _ user.Target) user.Outcome {
			return user.Outcome{Status: "error", Kind: user.KindNotFound, Message: "no existe"}
		},
	}
	r := newRouter(deleter, &notifierMock{})

	w := doJSON(t, r, "/eliminar-usuario", `{"uid":"ghost"}`)

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["status"] != "error" || resp["mensaje"] != "no existe" {
		t.Fatalf("unexpected body: %v", resp)
	}
	if _, leaked := resp["Kind"]; leaked {
		t.Fatalf("internal classification leaked into the response")
	}
}
