package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/smarthr-api/internal/application/dto"
	"github.com/jhoicas/smarthr-api/internal/domain/entity"
	apphttp "github.com/jhoicas/smarthr-api/internal/interfaces/http"
)

// El kiosco nunca recibe un status de error por fallos de imagen: cuerpo
// ilegible o base64 corrupto responden 200 con ok:false y una razón.
func TestScan_FallosDeImagenSonHTTP200(t *testing.T) {
	handler := apphttp.NewAttendanceHandler(nil, nil, nil, nil)
	app := fiber.New()
	app.Post("/api/attendance/scan", handler.Scan)

	cases := []struct {
		name       string
		body       string
		wantReason string
	}{
		{"cuerpo no JSON", "esto no es json", "no_image"},
		{"sin imagen", `{}`, "no_image"},
		{"base64 corrupto", `{"imageBase64":"!!!no-es-base64!!!"}`, "bad_image"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/attendance/scan", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode,
				"los fallos suaves siempre van sobre 200")

			var out dto.ScanResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			assert.False(t, out.OK)
			assert.Equal(t, "Invalid Entry", out.Message)
			assert.Equal(t, tc.wantReason, out.Reason)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Notificaciones
// ──────────────────────────────────────────────────────────────────────────────

type fakeNotificationRepo struct {
	items []*entity.Notification
}

func (f *fakeNotificationRepo) InsertIfAbsent(n *entity.Notification) (bool, error) {
	f.items = append(f.items, n)
	return true, nil
}

func (f *fakeNotificationRepo) ListByEmpID(empID string, limit int) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range f.items {
		if n.EmpID == empID && len(out) < limit {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) ListAll(limit int) ([]*entity.Notification, error) {
	if len(f.items) > limit {
		return f.items[:limit], nil
	}
	return f.items, nil
}

func notifApp(repo *fakeNotificationRepo) *fiber.App {
	handler := apphttp.NewNotificationHandler(repo)
	app := fiber.New()
	app.Get("/api/notifications",
		apphttp.AuthMiddleware(testJWTSecret),
		handler.List,
	)
	return app
}

func seedNotifications() *fakeNotificationRepo {
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	return &fakeNotificationRepo{items: []*entity.Notification{
		{ID: "n1", To: "E002", Type: entity.NotificationEmployee, EmpID: "E002",
			Reason: entity.ReasonLate3Days, Date: day, CreatedAt: day, Streak: 3},
		{ID: "n2", To: "HR", Type: entity.NotificationHR, EmpID: "E005",
			Reason: entity.ReasonLate5Days, Date: day, CreatedAt: day, Streak: 5},
	}}
}

func TestNotifications_HRVeTodas(t *testing.T) {
	app := notifApp(seedNotifications())

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	req.Header.Set("Authorization", tokenForRole(t, "hr"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []dto.NotificationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 2)
	assert.Equal(t, "2025-03-12", out[0].Date)
	assert.Equal(t, 3, out[0].Streak)
}

func TestNotifications_EmpleadoSoloVeLasSuyas(t *testing.T) {
	app := notifApp(seedNotifications())

	// tokenForRole emite para testEmpID = E002
	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	req.Header.Set("Authorization", tokenForRole(t, "employee"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []dto.NotificationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, "E002", out[0].EmpID)
	assert.Equal(t, entity.ReasonLate3Days, out[0].Reason)
}
