// Package http exposes the production pipeline over a REST API.
package http

import (
	"net/http"

	"production/internal/core/application/usecases/commands"
	"production/internal/core/application/usecases/queries"
	"production/internal/core/domain/model/kernel"
	"production/internal/metrics"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	createPanHandler        commands.CreatePanCommandHandler
	createWorkcenterHandler commands.CreateWorkcenterCommandHandler
	moveOrderHandler        commands.MoveOrderCommandHandler
	assignPanHandler        commands.AssignPanCommandHandler

	// Query handlers
	getOrdersHandler         queries.GetProductionOrdersQueryHandler
	getOrderHandler          queries.GetProductionOrderQueryHandler
	getOrdersByPhaseHandler  queries.GetProductionOrdersByPhaseQueryHandler
	getOrdersByBufferHandler queries.GetProductionOrdersByBufferQueryHandler
	getPansHandler           queries.GetPansQueryHandler
	getWorkcentersHandler    queries.GetWorkcentersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createPanHandler commands.CreatePanCommandHandler,
	createWorkcenterHandler commands.CreateWorkcenterCommandHandler,
	moveOrderHandler commands.MoveOrderCommandHandler,
	assignPanHandler commands.AssignPanCommandHandler,
	getOrdersHandler queries.GetProductionOrdersQueryHandler,
	getOrderHandler queries.GetProductionOrderQueryHandler,
	getOrdersByPhaseHandler queries.GetProductionOrdersByPhaseQueryHandler,
	getOrdersByBufferHandler queries.GetProductionOrdersByBufferQueryHandler,
	getPansHandler queries.GetPansQueryHandler,
	getWorkcentersHandler queries.GetWorkcentersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		createPanHandler:         createPanHandler,
		createWorkcenterHandler:  createWorkcenterHandler,
		moveOrderHandler:         moveOrderHandler,
		assignPanHandler:         assignPanHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrderHandler:          getOrderHandler,
		getOrdersByPhaseHandler:  getOrdersByPhaseHandler,
		getOrdersByBufferHandler: getOrdersByBufferHandler,
		getPansHandler:           getPansHandler,
		getWorkcentersHandler:    getWorkcentersHandler,
	}
}

// RegisterRoutes mounts all API endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/phase/:phase", s.GetOrdersByPhase)
	api.GET("/orders/buffer/:buffer", s.GetOrdersByBuffer)
	api.POST("/orders/:id/move", s.MoveOrder)
	api.POST("/orders/:id/pan", s.AssignPan)
	api.POST("/pans", s.CreatePan)
	api.GET("/pans", s.GetPans)
	api.GET("/pans/available", s.GetAvailablePans)
	api.POST("/workcenters", s.CreateWorkcenter)
	api.GET("/workcenters", s.GetWorkcenters)
	api.GET("/workcenters/phase/:phase", s.GetWorkcentersByPhase)
}

// CreateOrder handles POST /api/v1/orders - registers a production order.
//
//	@Summary	Register a production order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		CreateOrderRequest	true	"Order to register"
//	@Success	201		{object}	Created
//	@Failure	400		{object}	Error
//	@Failure	409		{object}	Error
//	@Router		/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, request.OrderNumber, request.Quantity)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, statusFromError(err), err.Error())
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - retrieves all orders with resolved
// workcenter and pan details.
//
//	@Summary	List all production orders
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}	ProductionOrder
//	@Router		/orders [get]
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetProductionOrdersQuery()

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toProductionOrders(orders))
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
//
//	@Summary	Get a production order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Order ID"
//	@Success	200	{object}	ProductionOrder
//	@Failure	404	{object}	Error
//	@Router		/orders/{id} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// GetOrdersByPhase handles GET /api/v1/orders/phase/:phase.
//
//	@Summary	List orders located in a phase
//	@Tags		orders
//	@Produce	json
//	@Param		phase	path	string	true	"Phase name"	Enums(charging, mixing, extrusion)
//	@Success	200		{array}	ProductionOrder
//	@Failure	400		{object}	Error
//	@Router		/orders/phase/{phase} [get]
func (s *Server) GetOrdersByPhase(ctx echo.Context) error {
	phase, err := kernel.PhaseFromString(ctx.Param("phase"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid phase name")
	}

	query, err := queries.NewGetProductionOrdersByPhaseQuery(phase)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	orders, err := s.getOrdersByPhaseHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toProductionOrders(orders))
}

// GetOrdersByBuffer handles GET /api/v1/orders/buffer/:buffer.
//
//	@Summary	List orders waiting in a buffer
//	@Tags		orders
//	@Produce	json
//	@Param		buffer	path	string	true	"Buffer name"	Enums(charging_mixing_buffer, mixing_extrusion_buffer)
//	@Success	200		{array}	ProductionOrder
//	@Failure	400		{object}	Error
//	@Router		/orders/buffer/{buffer} [get]
func (s *Server) GetOrdersByBuffer(ctx echo.Context) error {
	buffer, err := kernel.BufferFromString(ctx.Param("buffer"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid buffer name")
	}

	query, err := queries.NewGetProductionOrdersByBufferQuery(buffer)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	orders, err := s.getOrdersByBufferHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toProductionOrders(orders))
}

// MoveOrder handles POST /api/v1/orders/:id/move - moves an order through
// the pipeline and returns its new state.
//
//	@Summary	Move a production order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Order ID"
//	@Param		move	body		MoveOrderRequest	true	"Target location and resource bindings"
//	@Success	200		{object}	ProductionOrder
//	@Failure	400		{object}	Error
//	@Failure	404		{object}	Error
//	@Failure	409		{object}	Error
//	@Failure	422		{object}	Error
//	@Router		/orders/{id}/move [post]
func (s *Server) MoveOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var request MoveOrderRequest
	if err = ctx.Bind(&request); err != nil {
		metrics.OrderMoves.WithLabelValues(metrics.MoveRejectedInvalid).Inc()
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := moveOrderCommandFromRequest(orderID, request)
	if err != nil {
		metrics.OrderMoves.WithLabelValues(metrics.MoveRejectedInvalid).Inc()
		return errorResponse(ctx, http.StatusBadRequest, "Invalid move data: "+err.Error())
	}

	if err = s.moveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		status := statusFromError(err)
		metrics.OrderMoves.WithLabelValues(moveOutcome(status)).Inc()
		return errorResponse(ctx, status, err.Error())
	}

	metrics.OrderMoves.WithLabelValues(metrics.MoveAccepted).Inc()
	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// AssignPan handles POST /api/v1/orders/:id/pan - rebinds the order's pan
// and returns the order's new state.
//
//	@Summary	Assign a pan to a production order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id	path		string				true	"Order ID"
//	@Param		pan	body		AssignPanRequest	true	"Pan to bind"
//	@Success	200	{object}	ProductionOrder
//	@Failure	400	{object}	Error
//	@Failure	404	{object}	Error
//	@Failure	409	{object}	Error
//	@Failure	422	{object}	Error
//	@Router		/orders/{id}/pan [post]
func (s *Server) AssignPan(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var request AssignPanRequest
	if err = ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	panID, err := kernel.UUIDFromString(request.PanID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid pan id")
	}

	cmd, err := commands.NewAssignPanCommand(orderID, panID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid assignment data: "+err.Error())
	}

	if err = s.assignPanHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, statusFromError(err), err.Error())
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// CreatePan handles POST /api/v1/pans - adds a pan to the pool.
//
//	@Summary	Register a pan
//	@Tags		pans
//	@Accept		json
//	@Produce	json
//	@Param		pan	body		CreatePanRequest	true	"Pan to register"
//	@Success	201	{object}	Created
//	@Failure	400	{object}	Error
//	@Router		/pans [post]
func (s *Server) CreatePan(ctx echo.Context) error {
	var request CreatePanRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	panID := kernel.NewUUID()
	cmd, err := commands.NewCreatePanCommand(panID, request.Name)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid pan data: "+err.Error())
	}

	if err = s.createPanHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, statusFromError(err), err.Error())
	}

	return ctx.JSON(http.StatusCreated, Created{ID: panID.String()})
}

// GetPans handles GET /api/v1/pans - retrieves the whole pan pool.
//
//	@Summary	List all pans
//	@Tags		pans
//	@Produce	json
//	@Success	200	{array}	Pan
//	@Router		/pans [get]
func (s *Server) GetPans(ctx echo.Context) error {
	pans, err := s.getPansHandler.Handle(ctx.Request().Context(), queries.NewGetPansQuery())
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve pans")
	}

	return ctx.JSON(http.StatusOK, toPans(pans))
}

// GetAvailablePans handles GET /api/v1/pans/available - retrieves unclaimed pans.
//
//	@Summary	List available pans
//	@Tags		pans
//	@Produce	json
//	@Success	200	{array}	Pan
//	@Router		/pans/available [get]
func (s *Server) GetAvailablePans(ctx echo.Context) error {
	pans, err := s.getPansHandler.Handle(ctx.Request().Context(), queries.NewGetAvailablePansQuery())
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve pans")
	}

	return ctx.JSON(http.StatusOK, toPans(pans))
}

// CreateWorkcenter handles POST /api/v1/workcenters - registers a workcenter.
//
//	@Summary	Register a workcenter
//	@Tags		workcenters
//	@Accept		json
//	@Produce	json
//	@Param		workcenter	body		CreateWorkcenterRequest	true	"Workcenter to register"
//	@Success	201			{object}	Created
//	@Failure	400			{object}	Error
//	@Router		/workcenters [post]
func (s *Server) CreateWorkcenter(ctx echo.Context) error {
	var request CreateWorkcenterRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	phase, err := kernel.PhaseFromString(request.Phase)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid phase name")
	}

	workcenterID := kernel.NewUUID()
	cmd, err := commands.NewCreateWorkcenterCommand(workcenterID, request.Name, phase, request.Capacity)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid workcenter data: "+err.Error())
	}

	if err = s.createWorkcenterHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, statusFromError(err), err.Error())
	}

	return ctx.JSON(http.StatusCreated, Created{ID: workcenterID.String()})
}

// GetWorkcenters handles GET /api/v1/workcenters - retrieves all workcenters.
//
//	@Summary	List all workcenters
//	@Tags		workcenters
//	@Produce	json
//	@Success	200	{array}	Workcenter
//	@Router		/workcenters [get]
func (s *Server) GetWorkcenters(ctx echo.Context) error {
	workcenters, err := s.getWorkcentersHandler.Handle(ctx.Request().Context(), queries.NewGetWorkcentersQuery())
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve workcenters")
	}

	return ctx.JSON(http.StatusOK, toWorkcenters(workcenters))
}

// GetWorkcentersByPhase handles GET /api/v1/workcenters/phase/:phase.
//
//	@Summary	List workcenters serving a phase
//	@Tags		workcenters
//	@Produce	json
//	@Param		phase	path	string	true	"Phase name"	Enums(charging, mixing, extrusion)
//	@Success	200		{array}	Workcenter
//	@Failure	400		{object}	Error
//	@Router		/workcenters/phase/{phase} [get]
func (s *Server) GetWorkcentersByPhase(ctx echo.Context) error {
	phase, err := kernel.PhaseFromString(ctx.Param("phase"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid phase name")
	}

	query, err := queries.NewGetWorkcentersByPhaseQuery(phase)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	workcenters, err := s.getWorkcentersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve workcenters")
	}

	return ctx.JSON(http.StatusOK, toWorkcenters(workcenters))
}

// respondWithOrder returns the current read model of one order, resolving
// its workcenter and pan details.
func (s *Server) respondWithOrder(ctx echo.Context, status int, orderID kernel.UUID) error {
	query, err := queries.NewGetProductionOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, statusFromError(err), err.Error())
	}

	return ctx.JSON(status, toProductionOrder(result))
}

// moveOrderCommandFromRequest parses the wire representation into a command,
// rejecting malformed names and identifiers.
func moveOrderCommandFromRequest(orderID kernel.UUID, request MoveOrderRequest) (commands.MoveOrderCommand, error) {
	locationType, err := kernel.LocationTypeFromString(request.LocationType)
	if err != nil {
		return commands.MoveOrderCommand{}, err
	}

	var phase *kernel.Phase
	if request.Phase != nil {
		parsed, parseErr := kernel.PhaseFromString(*request.Phase)
		if parseErr != nil {
			return commands.MoveOrderCommand{}, parseErr
		}
		phase = &parsed
	}

	var buffer *kernel.Buffer
	if request.Buffer != nil {
		parsed, parseErr := kernel.BufferFromString(*request.Buffer)
		if parseErr != nil {
			return commands.MoveOrderCommand{}, parseErr
		}
		buffer = &parsed
	}

	var workcenterID *kernel.UUID
	if request.WorkcenterID != nil {
		parsed, parseErr := kernel.UUIDFromString(*request.WorkcenterID)
		if parseErr != nil {
			return commands.MoveOrderCommand{}, parseErr
		}
		workcenterID = &parsed
	}

	var panID *kernel.UUID
	if request.PanID != nil {
		parsed, parseErr := kernel.UUIDFromString(*request.PanID)
		if parseErr != nil {
			return commands.MoveOrderCommand{}, parseErr
		}
		panID = &parsed
	}

	return commands.NewMoveOrderCommand(orderID, locationType, phase, buffer, workcenterID, panID)
}

// moveOutcome maps an HTTP status onto a move metric label.
func moveOutcome(status int) string {
	switch status {
	case http.StatusNotFound:
		return metrics.MoveRejectedNotFound
	case http.StatusConflict:
		return metrics.MoveRejectedConflict
	case http.StatusUnprocessableEntity:
		return metrics.MoveRejectedInvalid
	default:
		return metrics.MoveRejectedInvalid
	}
}
