//go:build e2e

package admin_test

import (
	"net/http"
	"testing"
	"time"

	"giftsafer/internal/handler/dto/response"
	"giftsafer/tests/common/dbtest"
	"giftsafer/tests/common/httptest"
	"giftsafer/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL     = "/api/admin/login"
	logsURL      = "/api/admin/logs"
	usedCodesURL = "/api/admin/used-codes"
)

type AdminSuite struct {
	e2e.SharedSuite
}

func TestAdminSuite(t *testing.T) {
	suite.Run(t, new(AdminSuite))
}

func (s *AdminSuite) login(t *testing.T) string {
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, map[string]any{
		"password": e2e.AdminPassword,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "Login should succeed")

	var body response.AdminLoginResponse
	err := httptest.DecodeResponseBody(t, w.Body, &body)
	require.NoError(t, err)
	require.NotEmpty(t, body.Token)
	require.Equal(t, "admin", body.Role)
	return body.Token
}

func (s *AdminSuite) TestLogin() {
	s.Run("Normal case: correct password yields a token", func() {
		s.login(s.T())
	})

	s.Run("Error case: wrong password returns 401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, map[string]any{
			"password": "not-the-password",
		}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: missing password returns 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, map[string]any{}, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *AdminSuite) TestGetCheckLogs() {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	seedLogs := func(t *testing.T) {
		dbtest.InsertCheckLog(t, s.DB, "1.1.1.1", "DemoCard", "***************9010", "valid", "AAAA000001", base)
		dbtest.InsertCheckLog(t, s.DB, "1.1.1.2", "DemoCard", "***************9011", "invalid", "AAAA000002", base.Add(time.Second))
		dbtest.InsertCheckLog(t, s.DB, "1.1.1.3", "MockFlix", "********CD30", "valid", "AAAA000003", base.Add(2*time.Second))
	}

	s.Run("Error case: missing token returns 401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, logsURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Normal case: pages through the audit trail newest first", func() {
		t := s.T()
		seedLogs(t)
		token := s.login(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, logsURL+"?limit=2", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var page response.CheckLogListResponse
		err := httptest.DecodeResponseBody(t, w.Body, &page)
		require.NoError(t, err)
		require.Len(t, page.Logs, 2)
		require.Equal(t, int64(3), page.Total)
		require.NotEmpty(t, page.NextCursor)
		require.Equal(t, "AAAA000003", page.Logs[0].Reference)
		require.Equal(t, "AAAA000002", page.Logs[1].Reference)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, logsURL+"?limit=2&cursor="+page.NextCursor, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var rest response.CheckLogListResponse
		err = httptest.DecodeResponseBody(t, w.Body, &rest)
		require.NoError(t, err)
		require.Len(t, rest.Logs, 1)
		require.Empty(t, rest.NextCursor)
		require.Equal(t, "AAAA000001", rest.Logs[0].Reference)
	})

	s.Run("Normal case: status filter narrows the listing", func() {
		t := s.T()
		seedLogs(t)
		token := s.login(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, logsURL+"?status=valid", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var page response.CheckLogListResponse
		err := httptest.DecodeResponseBody(t, w.Body, &page)
		require.NoError(t, err)
		require.Len(t, page.Logs, 2)
		require.Equal(t, int64(2), page.Total)
		for _, row := range page.Logs {
			require.Equal(t, "valid", row.Status)
		}
	})

	s.Run("Error case: bogus status filter returns 400", func() {
		t := s.T()
		token := s.login(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, logsURL+"?status=bogus", nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: garbage cursor returns 400", func() {
		t := s.T()
		token := s.login(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, logsURL+"?cursor=garbage", nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *AdminSuite) TestGetUsedCodes() {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s.Run("Normal case: lists consumed codes newest first", func() {
		t := s.T()
		dbtest.InsertUsedCode(t, s.DB, "DemoCard", "DEMO-1234-5678-9010", "AAAA000001", base)
		dbtest.InsertUsedCode(t, s.DB, "MockFlix", "MF-AB12-CD30", "AAAA000002", base.Add(time.Second))
		token := s.login(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, usedCodesURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var page response.UsedCodeListResponse
		err := httptest.DecodeResponseBody(t, w.Body, &page)
		require.NoError(t, err)
		require.Len(t, page.UsedCodes, 2)
		require.Equal(t, int64(2), page.Total)
		require.Equal(t, "MF-AB12-CD30", page.UsedCodes[0].Code)
		require.Equal(t, "DEMO-1234-5678-9010", page.UsedCodes[1].Code)
	})

	s.Run("Error case: missing token returns 401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, usedCodesURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
