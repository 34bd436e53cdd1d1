// Package http is the inbound HTTP adapter: echo handlers translating
// requests into commands and queries, and domain outcomes into status
// codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"packagetracker/internal/core/application/usecases/commands"
	"packagetracker/internal/core/application/usecases/queries"
	"packagetracker/internal/core/domain/model/kernel"
	"packagetracker/internal/core/domain/model/tracking"
	"packagetracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	registerPackageHandler    commands.RegisterPackageCommandHandler
	editPackageDetailsHandler commands.EditPackageDetailsCommandHandler
	addPackageUpdateHandler   commands.AddPackageUpdateCommandHandler
	editPackageUpdateHandler  commands.EditPackageUpdateCommandHandler
	removePackageHandler      commands.RemovePackageCommandHandler

	getAllPackagesHandler   queries.GetAllPackagesQueryHandler
	getPackageByCodeHandler queries.GetPackageByCodeQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	registerPackageHandler commands.RegisterPackageCommandHandler,
	editPackageDetailsHandler commands.EditPackageDetailsCommandHandler,
	addPackageUpdateHandler commands.AddPackageUpdateCommandHandler,
	editPackageUpdateHandler commands.EditPackageUpdateCommandHandler,
	removePackageHandler commands.RemovePackageCommandHandler,
	getAllPackagesHandler queries.GetAllPackagesQueryHandler,
	getPackageByCodeHandler queries.GetPackageByCodeQueryHandler,
) *Server {
	return &Server{
		registerPackageHandler:    registerPackageHandler,
		editPackageDetailsHandler: editPackageDetailsHandler,
		addPackageUpdateHandler:   addPackageUpdateHandler,
		editPackageUpdateHandler:  editPackageUpdateHandler,
		removePackageHandler:      removePackageHandler,
		getAllPackagesHandler:     getAllPackagesHandler,
		getPackageByCodeHandler:   getPackageByCodeHandler,
	}
}

// RegisterRoutes wires all package tracking endpoints onto the echo
// instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.GET("/packages", s.GetPackages)
	v1.POST("/packages", s.RegisterPackage)
	v1.GET("/packages/:code", s.GetPackageByCode)
	v1.PUT("/packages/:code", s.EditPackageDetails)
	v1.DELETE("/packages/:code", s.RemovePackage)
	v1.POST("/packages/:code/updates", s.AddPackageUpdate)
	v1.PUT("/packages/:code/updates/:updateId", s.EditPackageUpdate)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetPackages handles GET /api/v1/packages - lists package summaries.
func (s *Server) GetPackages(ctx echo.Context) error {
	query := queries.NewGetAllPackagesQuery()

	packages, err := s.getAllPackagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]PackageSummary, 0, len(packages))
	for _, p := range packages {
		response = append(response, summaryFromQuery(p))
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterPackage handles POST /api/v1/packages - registers a new package.
func (s *Server) RegisterPackage(ctx echo.Context) error {
	var req RegisterPackageRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterPackageCommand(req.Title, req.Weight, req.SenderName, req.SenderEmail)
	if err != nil {
		return badRequest(ctx, "Invalid package data: "+err.Error())
	}

	pkg, err := s.registerPackageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, packageFromDomain(pkg))
}

// GetPackageByCode handles GET /api/v1/packages/:code - retrieves one
// package with its full history.
func (s *Server) GetPackageByCode(ctx echo.Context) error {
	code, err := kernel.TrackingCodeFromString(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking code")
	}

	query, err := queries.NewGetPackageByCodeQuery(code)
	if err != nil {
		return badRequest(ctx, "Invalid tracking code")
	}

	pkg, err := s.getPackageByCodeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, packageFromQuery(pkg))
}

// EditPackageDetails handles PUT /api/v1/packages/:code - edits metadata
// of a package that has no updates yet.
func (s *Server) EditPackageDetails(ctx echo.Context) error {
	code, err := kernel.TrackingCodeFromString(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking code")
	}

	var req EditPackageRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewEditPackageDetailsCommand(code, req.Title, req.Weight, req.SenderName, req.SenderEmail)
	if err != nil {
		return badRequest(ctx, "Invalid package data: "+err.Error())
	}

	pkg, err := s.editPackageDetailsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, packageFromDomain(pkg))
}

// RemovePackage handles DELETE /api/v1/packages/:code - deletes a package
// and its whole history.
func (s *Server) RemovePackage(ctx echo.Context) error {
	code, err := kernel.TrackingCodeFromString(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking code")
	}

	cmd, err := commands.NewRemovePackageCommand(code)
	if err != nil {
		return badRequest(ctx, "Invalid tracking code")
	}

	if err = s.removePackageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddPackageUpdate handles POST /api/v1/packages/:code/updates - appends
// a status event.
func (s *Server) AddPackageUpdate(ctx echo.Context) error {
	code, err := kernel.TrackingCodeFromString(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking code")
	}

	var req AddPackageUpdateRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddPackageUpdateCommand(code, req.Status, req.Delivered)
	if err != nil {
		return badRequest(ctx, "Invalid update data: "+err.Error())
	}

	pkg, err := s.addPackageUpdateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, packageFromDomain(pkg))
}

// EditPackageUpdate handles PUT /api/v1/packages/:code/updates/:updateId -
// corrects an existing status event.
func (s *Server) EditPackageUpdate(ctx echo.Context) error {
	code, err := kernel.TrackingCodeFromString(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking code")
	}

	updateID, err := strconv.ParseInt(ctx.Param("updateId"), 10, 64)
	if err != nil {
		return badRequest(ctx, "Invalid update id")
	}

	var req EditPackageUpdateRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewEditPackageUpdateCommand(code, updateID, req.Status, req.Delivered)
	if err != nil {
		return badRequest(ctx, "Invalid update data: "+err.Error())
	}

	pkg, err := s.editPackageUpdateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, packageFromDomain(pkg))
}

// writeError maps domain outcomes onto status codes: unknown code or
// update id gives 404, lifecycle guard rejections and lost version races
// give 409, everything else is a plain 500 without internals.
func (s *Server) writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.NoContent(http.StatusNotFound)
	case errors.Is(err, tracking.ErrAlreadyDelivered),
		errors.Is(err, tracking.ErrHasUpdates),
		errors.Is(err, errs.ErrConcurrentModification):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
