package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/lightbnb/internal/auth"
	"github.com/iliyamo/lightbnb/internal/middleware"
	"github.com/iliyamo/lightbnb/internal/model"
	"github.com/iliyamo/lightbnb/internal/queue"
)

var errBoom = errors.New("boom")

type fakeUsers struct {
	byEmail map[string]model.User
	added   []model.NewUser
	addErr  error
	getErr  error
}

func (f *fakeUsers) GetUserWithEmail(_ context.Context, email string) (model.User, error) {
	if f.getErr != nil {
		return model.User{}, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return model.User{}, notFound()
	}
	return u, nil
}

func (f *fakeUsers) GetUserWithID(_ context.Context, id int64) (model.User, error) {
	if f.getErr != nil {
		return model.User{}, f.getErr
	}
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, notFound()
}

func (f *fakeUsers) AddUser(_ context.Context, u model.NewUser) (model.User, error) {
	if f.addErr != nil {
		return model.User{}, f.addErr
	}
	f.added = append(f.added, u)
	return model.User{ID: int64(len(f.added)), Name: u.Name, Email: u.Email, Password: u.Password}, nil
}

type fakeProperties struct {
	filter model.SearchFilter
	limit  int
	result []model.PropertyWithRating
	added  []model.NewProperty
	err    error
}

func (f *fakeProperties) GetAllProperties(_ context.Context, fl model.SearchFilter, limit int) ([]model.PropertyWithRating, error) {
	f.filter, f.limit = fl, limit
	return f.result, f.err
}

func (f *fakeProperties) AddProperty(_ context.Context, p model.NewProperty) (model.Property, error) {
	if f.err != nil {
		return model.Property{}, f.err
	}
	f.added = append(f.added, p)
	return model.Property{ID: 99, OwnerID: p.OwnerID, Title: p.Title, CostPerNight: p.CostPerNight}, nil
}

type fakeReservations struct {
	guest  int64
	limit  int
	result []model.ReservedProperty
	err    error
}

func (f *fakeReservations) GetAllReservations(_ context.Context, guestID int64, limit int) ([]model.ReservedProperty, error) {
	f.guest, f.limit = guestID, limit
	return f.result, f.err
}

type fakePublisher struct {
	events []queue.PropertyListedEvent
	err    error
}

func (f *fakePublisher) PublishPropertyListed(_ context.Context, ev queue.PropertyListedEvent) error {
	f.events = append(f.events, ev)
	return f.err
}

type fakeCache struct{ invalidated int }

func (f *fakeCache) Invalidate(context.Context) error {
	f.invalidated++
	return nil
}

type fakeRevoker struct{ revoked map[string]time.Time }

func (f *fakeRevoker) Revoke(_ context.Context, id string, until time.Time) error {
	f.revoked[id] = until
	return nil
}

func (f *fakeRevoker) IsRevoked(_ context.Context, id string) (bool, error) {
	_, ok := f.revoked[id]
	return ok, nil
}

// call runs h against a request; session, when non-nil, is installed the
// way JWTAuth would.
func call(h echo.HandlerFunc, method, target, body string, session *auth.Session) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if session != nil {
		c.Set(middleware.ContextSession, *session)
		c.Set(middleware.ContextUserID, session.UserID)
	}
	err := h(c)
	return rec, err
}

func statusOf(rec *httptest.ResponseRecorder, err error) int {
	if err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he.Code
		}
		return http.StatusInternalServerError
	}
	return rec.Code
}
