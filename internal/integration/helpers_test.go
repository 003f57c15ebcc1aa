package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/tundeojo/learnly-api/internal/domain"
)

var keysToIgnore = map[string]struct{}{
	"timestamp":  {},
	"requestId":  {},
	"createdAt":  {},
	"paidAt":     {},
	"reference":  {},
	"enrolledAt": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, c := range cookies {
		req.AddCookie(&c)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

func executeSQLFile(t testing.TB, db *pgxpool.Pool, path string) {
	sqlBytes, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(), string(sqlBytes))
	require.NoError(t, err)
}

func truncateUsersAndTokens(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), "TRUNCATE tokens RESTART IDENTITY CASCADE")
	require.NoError(t, err)
	_, err = db.Exec(context.Background(), "TRUNCATE users RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

func truncatePaymentsAndEnrollments(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), "TRUNCATE payments RESTART IDENTITY CASCADE")
	require.NoError(t, err)
	_, err = db.Exec(context.Background(), "TRUNCATE enrollments CASCADE")
	require.NoError(t, err)
}

func defaultTestUser(t testing.TB) *domain.User {
	user := &domain.User{
		FirstName: TestUserFirstName,
		LastName:  TestUserLastName,
		Email:     TestUserEmail,
		Role:      domain.RoleMember,
	}

	err := user.Password.Set(TestUserPassword)
	require.NoError(t, err)

	return user
}

func insertTestUser(t testing.TB, db *pgxpool.Pool, user *domain.User) {
	err := db.QueryRow(
		context.Background(),
		`INSERT INTO users (first_name, last_name, email, password_hash, role, activated)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Password.Hash,
		user.Role,
		user.Activated,
	).Scan(&user.ID)

	require.NoError(t, err)
}

// authenticatedUserCookies resets the users table, seeds an activated user and
// logs it in, returning the session cookie for use in later scenarios.
func (app *TestApp) authenticatedUserCookies(t testing.TB) []http.Cookie {
	return app.cookiesForRole(t, domain.RoleMember)
}

func (app *TestApp) authenticatedAdminCookies(t testing.TB) []http.Cookie {
	return app.cookiesForRole(t, domain.RoleAdmin)
}

func (app *TestApp) cookiesForRole(t testing.TB, role domain.Role) []http.Cookie {
	truncateUsersAndTokens(t, app.DB)

	user := defaultTestUser(t)
	user.Activated = true
	user.Role = role
	insertTestUser(t, app.DB, user)

	body := strings.NewReader(fmt.Sprintf(`{"email": %q, "password": %q}`, TestUserEmail, TestUserPassword))

	req, err := prepareRequest(http.MethodPost, "/sessions", body, nil, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code, "login for test user failed")

	res := rec.Result()
	defer res.Body.Close()

	cookies := make([]http.Cookie, 0, len(res.Cookies()))
	for _, c := range res.Cookies() {
		cookies = append(cookies, *c)
	}
	require.NotEmpty(t, cookies, "expected a session cookie after login")

	return cookies
}
