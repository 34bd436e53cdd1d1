package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	adapter "packagetracker/internal/adapters/in/http"
	"packagetracker/internal/core/application/usecases/commands"
	"packagetracker/internal/core/application/usecases/queries"
	"packagetracker/internal/core/domain/model/kernel"
	"packagetracker/internal/core/domain/model/tracking"
	"packagetracker/internal/core/ports"
	"packagetracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepository is an in-memory PackageRepository for handler tests.
type memRepository struct {
	packages map[string]*tracking.Package
	nextID   int64
}

func newMemRepository() *memRepository {
	return &memRepository{packages: make(map[string]*tracking.Package), nextID: 1}
}

func (r *memRepository) FindAll(_ context.Context) ([]*tracking.Package, error) {
	all := make([]*tracking.Package, 0, len(r.packages))
	for _, p := range r.packages {
		all = append(all, p)
	}
	return all, nil
}

func (r *memRepository) FindByCode(_ context.Context, code kernel.TrackingCode) (*tracking.Package, error) {
	pkg, ok := r.packages[code.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("code", code.String())
	}
	return pkg, nil
}

func (r *memRepository) FindUpdateByID(pkg *tracking.Package, updateID int64) (*tracking.PackageUpdate, error) {
	update, ok := pkg.UpdateByID(updateID)
	if !ok {
		return nil, errs.NewObjectNotFoundError("updateId", updateID)
	}
	return update, nil
}

func (r *memRepository) Add(_ context.Context, pkg *tracking.Package) error {
	if err := pkg.AssignID(r.nextID); err != nil {
		return err
	}
	r.nextID++
	r.packages[pkg.Code().String()] = pkg
	return nil
}

func (r *memRepository) Save(_ context.Context, pkg *tracking.Package) error {
	for _, u := range pkg.Updates() {
		if u.ID() == 0 {
			if err := u.AssignID(r.nextID); err != nil {
				return err
			}
			r.nextID++
		}
	}
	pkg.CommitVersion()
	return nil
}

func (r *memRepository) Remove(_ context.Context, pkg *tracking.Package) error {
	delete(r.packages, pkg.Code().String())
	return nil
}

// memOutbox collects enqueued notices.
type memOutbox struct {
	notices []ports.Message
}

func (o *memOutbox) Enqueue(_ context.Context, m ports.Message) error {
	o.notices = append(o.notices, m)
	return nil
}

func (o *memOutbox) Pending(_ context.Context, _ int) ([]ports.Notice, error) { return nil, nil }
func (o *memOutbox) MarkSent(_ context.Context, _ int64) error                { return nil }
func (o *memOutbox) MarkFailed(_ context.Context, _ int64) error              { return nil }

// memUoW is a transactionless unit of work over the in-memory stores.
type memUoW struct {
	repo   *memRepository
	outbox *memOutbox
}

func (u *memUoW) Begin(_ context.Context) error                { return nil }
func (u *memUoW) Commit(_ context.Context) error               { return nil }
func (u *memUoW) Rollback(_ context.Context) error             { return nil }
func (u *memUoW) PackageRepository() ports.PackageRepository   { return u.repo }
func (u *memUoW) NotificationOutbox() ports.NotificationOutbox { return u.outbox }

type memUoWFactory struct{ uow *memUoW }

func (f *memUoWFactory) Create() commands.PackageUoW { return f.uow }

type serverFixture struct {
	echo   *echo.Echo
	repo   *memRepository
	outbox *memOutbox
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()
	repo := newMemRepository()
	outbox := &memOutbox{}
	factory := &memUoWFactory{uow: &memUoW{repo: repo, outbox: outbox}}

	server := adapter.NewServer(
		commands.NewRegisterPackageCommandHandler(factory),
		commands.NewEditPackageDetailsCommandHandler(factory),
		commands.NewAddPackageUpdateCommandHandler(factory),
		commands.NewEditPackageUpdateCommandHandler(factory),
		commands.NewRemovePackageCommandHandler(factory),
		// Query handlers hit the database directly and are covered by
		// their own integration suite.
		queries.NewGetAllPackagesQueryHandler(nil),
		queries.NewGetPackageByCodeQueryHandler(nil),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return &serverFixture{echo: e, repo: repo, outbox: outbox}
}

func (f *serverFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func (f *serverFixture) registerPackage(t *testing.T, body string) adapter.Package {
	t.Helper()
	rec := f.do(http.MethodPost, "/api/v1/packages", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var pkg adapter.Package
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pkg))
	return pkg
}

func TestServer_Health(t *testing.T) {
	f := newServerFixture(t)
	rec := f.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestServer_RegisterPackage(t *testing.T) {
	f := newServerFixture(t)
	pkg := f.registerPackage(t, `{"title":"Books","weight":2.5,"senderName":"Ann","senderEmail":"ann@example.com"}`)

	assert.NotEmpty(t, pkg.Code)
	assert.Equal(t, "Books", pkg.Title)
	assert.False(t, pkg.Delivered)
	assert.Empty(t, pkg.Updates)

	// Sender info present, so a dispatched notice was enqueued.
	require.Len(t, f.outbox.notices, 1)
	assert.Equal(t, "Hi Ann, Your Package was dispatched!", f.outbox.notices[0].Subject)
}

func TestServer_RegisterPackage_NoSenderSkipsNotice(t *testing.T) {
	f := newServerFixture(t)
	f.registerPackage(t, `{"title":"Books","weight":1}`)
	assert.Empty(t, f.outbox.notices)
}

func TestServer_RegisterPackage_InvalidBody(t *testing.T) {
	f := newServerFixture(t)
	rec := f.do(http.MethodPost, "/api/v1/packages", `{"title":"","weight":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_GetPackageByCode_InvalidCode(t *testing.T) {
	f := newServerFixture(t)
	rec := f.do(http.MethodGet, "/api/v1/packages/not-a-code", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_AddPackageUpdate_LifecycleAndGuard(t *testing.T) {
	f := newServerFixture(t)
	pkg := f.registerPackage(t, `{"title":"Books","weight":1}`)
	base := "/api/v1/packages/" + pkg.Code

	rec := f.do(http.MethodPost, base+"/updates", `{"status":"In transit","delivered":false}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = f.do(http.MethodPost, base+"/updates", `{"status":"Delivered","delivered":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var updated adapter.Package
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.True(t, updated.Delivered)
	assert.Len(t, updated.Updates, 2)

	// Delivered packages accept no further updates.
	rec = f.do(http.MethodPost, base+"/updates", `{"status":"Returned","delivered":false}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already delivered")
}

func TestServer_AddPackageUpdate_UnknownCode(t *testing.T) {
	f := newServerFixture(t)
	rec := f.do(http.MethodPost,
		"/api/v1/packages/"+kernel.NewTrackingCode().String()+"/updates",
		`{"status":"In transit","delivered":false}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_EditPackageDetails_RejectedOnceTracked(t *testing.T) {
	f := newServerFixture(t)
	pkg := f.registerPackage(t, `{"title":"Books","weight":1}`)
	base := "/api/v1/packages/" + pkg.Code

	rec := f.do(http.MethodPut, base, `{"title":"Vinyl","weight":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(http.MethodPost, base+"/updates", `{"status":"In transit","delivered":false}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(http.MethodPut, base, `{"title":"Tapes","weight":3}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already has updates")
}

func TestServer_EditPackageUpdate_CorrectionPath(t *testing.T) {
	f := newServerFixture(t)
	pkg := f.registerPackage(t, `{"title":"Books","weight":1,"senderName":"Ann","senderEmail":"ann@example.com"}`)
	base := "/api/v1/packages/" + pkg.Code

	rec := f.do(http.MethodPost, base+"/updates", `{"status":"Delivered","delivered":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var withUpdate adapter.Package
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &withUpdate))
	updateID := withUpdate.Updates[0].ID

	// Correct the mistaken delivery flag; works even though the package
	// is marked delivered.
	rec = f.do(http.MethodPut, base+"/updates/"+strconv.FormatInt(updateID, 10),
		`{"status":"In transit","delivered":false}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var corrected adapter.Package
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &corrected))
	assert.False(t, corrected.Delivered)
	assert.Equal(t, "In transit", corrected.Updates[0].Status)
}

func TestServer_EditPackageUpdate_UnknownUpdate(t *testing.T) {
	f := newServerFixture(t)
	pkg := f.registerPackage(t, `{"title":"Books","weight":1}`)

	rec := f.do(http.MethodPut, "/api/v1/packages/"+pkg.Code+"/updates/999",
		`{"status":"Delivered","delivered":true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_EditPackageUpdate_InvalidUpdateID(t *testing.T) {
	f := newServerFixture(t)
	pkg := f.registerPackage(t, `{"title":"Books","weight":1}`)

	rec := f.do(http.MethodPut, "/api/v1/packages/"+pkg.Code+"/updates/abc",
		`{"status":"Delivered","delivered":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_RemovePackage(t *testing.T) {
	f := newServerFixture(t)
	pkg := f.registerPackage(t, `{"title":"Books","weight":1}`)
	path := "/api/v1/packages/" + pkg.Code

	rec := f.do(http.MethodDelete, path, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
