package handlers

import (
	"errors"
	"log"
	"net/http"

	request "webquote/internal/adapter/http/dto/request"
	response "webquote/internal/adapter/http/dto/response"
	"webquote/internal/usecase"
	"webquote/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOfferPayload = pkg.NewDomainErrorSimple("INVALID_OFFER_INPUT", "Invalid offer payload", http.StatusBadRequest)

// OfferHandler exposes the offer configuration session over HTTP: one route
// per mutator plus the session lifecycle and acceptance.
type OfferHandler struct {
	sessions   usecase.IOfferSessionUseCase
	acceptance usecase.IAcceptanceUseCase
}

func NewOfferHandler(sessions usecase.IOfferSessionUseCase, acceptance usecase.IAcceptanceUseCase) *OfferHandler {
	return &OfferHandler{sessions: sessions, acceptance: acceptance}
}

// StartSession creates or resumes an editing session. The prior draft, if
// any, is restored before the response is produced.
func (h *OfferHandler) StartSession(c *gin.Context) {
	var payload request.StartSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidOfferPayload.HTTPStatus, errInvalidOfferPayload.ToHTTPError())
			return
		}
	}

	summary, err := h.sessions.StartSession(c.Request.Context(), payload.ResolveSessionID())
	if err != nil {
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOfferSummary(summary))
}

// GetSummary returns the current state and a freshly computed breakdown.
func (h *OfferHandler) GetSummary(c *gin.Context) {
	summary, err := h.sessions.GetSummary(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOfferSummary(summary))
}

// EndSession flushes the draft and releases the in-memory session.
func (h *OfferHandler) EndSession(c *gin.Context) {
	if err := h.sessions.EndSession(c.Request.Context(), c.Param("session_id")); err != nil {
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OfferHandler) SetPackage(c *gin.Context) {
	var payload request.SetPackageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOfferPayload.HTTPStatus, errInvalidOfferPayload.ToHTTPError())
		return
	}
	h.respond(c, func() (usecase.OfferSummary, error) {
		return h.sessions.SetPackage(c.Request.Context(), c.Param("session_id"), payload.PackageID)
	})
}

func (h *OfferHandler) ToggleOption(c *gin.Context) {
	var payload request.ToggleOptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOfferPayload.HTTPStatus, errInvalidOfferPayload.ToHTTPError())
		return
	}
	h.respond(c, func() (usecase.OfferSummary, error) {
		return h.sessions.ToggleOption(c.Request.Context(), c.Param("session_id"), payload.OptionID)
	})
}

func (h *OfferHandler) SetCustomPrice(c *gin.Context) {
	var payload request.CustomPriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOfferPayload.HTTPStatus, errInvalidOfferPayload.ToHTTPError())
		return
	}
	h.respond(c, func() (usecase.OfferSummary, error) {
		return h.sessions.SetCustomPrice(c.Request.Context(), c.Param("session_id"), payload.OptionID, *payload.Amount)
	})
}

func (h *OfferHandler) SetOptionNote(c *gin.Context) {
	var payload request.OptionNoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOfferPayload.HTTPStatus, errInvalidOfferPayload.ToHTTPError())
		return
	}
	h.respond(c, func() (usecase.OfferSummary, error) {
		return h.sessions.SetOptionNote(c.Request.Context(), c.Param("session_id"), payload.OptionID, payload.Note)
	})
}

func (h *OfferHandler) SetQuantities(c *gin.Context) {
	var payload request.QuantitiesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOfferPayload.HTTPStatus, errInvalidOfferPayload.ToHTTPError())
		return
	}
	h.respond(c, func() (usecase.OfferSummary, error) {
		return h.sessions.SetQuantities(c.Request.Context(), c.Param("session_id"), payload.ExtraPages, payload.ContentPages)
	})
}

func (h *OfferHandler) SetMaintenance(c *gin.Context) {
	var payload request.MaintenanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOfferPayload.HTTPStatus, errInvalidOfferPayload.ToHTTPError())
		return
	}
	h.respond(c, func() (usecase.OfferSummary, error) {
		return h.sessions.SetMaintenance(c.Request.Context(), c.Param("session_id"), payload.OptionID)
	})
}

func (h *OfferHandler) AddLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOfferPayload.HTTPStatus, errInvalidOfferPayload.ToHTTPError())
		return
	}
	h.respond(c, func() (usecase.OfferSummary, error) {
		return h.sessions.AddCustomLineItem(c.Request.Context(), c.Param("session_id"), payload.Name, *payload.Price)
	})
}

func (h *OfferHandler) RemoveLineItem(c *gin.Context) {
	h.respond(c, func() (usecase.OfferSummary, error) {
		return h.sessions.RemoveCustomLineItem(c.Request.Context(), c.Param("session_id"), c.Param("item_id"))
	})
}

func (h *OfferHandler) SetDiscount(c *gin.Context) {
	var payload request.DiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOfferPayload.HTTPStatus, errInvalidOfferPayload.ToHTTPError())
		return
	}
	h.respond(c, func() (usecase.OfferSummary, error) {
		return h.sessions.SetDiscount(c.Request.Context(), c.Param("session_id"), payload.Type, payload.Value)
	})
}

func (h *OfferHandler) SetPaymentSchedule(c *gin.Context) {
	var payload request.PaymentScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOfferPayload.HTTPStatus, errInvalidOfferPayload.ToHTTPError())
		return
	}
	h.respond(c, func() (usecase.OfferSummary, error) {
		return h.sessions.SetPaymentSchedule(c.Request.Context(), c.Param("session_id"), payload.Schedule)
	})
}

func (h *OfferHandler) SetDetails(c *gin.Context) {
	var payload request.DetailsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOfferPayload.HTTPStatus, errInvalidOfferPayload.ToHTTPError())
		return
	}
	h.respond(c, func() (usecase.OfferSummary, error) {
		return h.sessions.SetDetails(c.Request.Context(), c.Param("session_id"), payload.ScopeDescription, payload.Timeline)
	})
}

// AcceptOffer finalizes a valid offer, optionally collecting the deposit.
func (h *OfferHandler) AcceptOffer(c *gin.Context) {
	var payload request.AcceptOfferRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidOfferPayload.HTTPStatus, errInvalidOfferPayload.ToHTTPError())
			return
		}
	}

	sessionID := c.Param("session_id")
	accepted, err := h.acceptance.Accept(c.Request.Context(), sessionID, payload.WithDeposit)
	if err != nil {
		log.Printf("[offer][handler] accept failed session_id=%s err=%v", sessionID, err)
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAcceptedOffer(accepted))
}

func (h *OfferHandler) respond(c *gin.Context, op func() (usecase.OfferSummary, error)) {
	summary, err := op()
	if err != nil {
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOfferSummary(summary))
}

func mapOfferError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidLineItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPackageNotFound):
		return pkg.NewDomainErrorSimple("PACKAGE_NOT_FOUND", "Package not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOptionNotFound):
		return pkg.NewDomainErrorSimple("OPTION_NOT_FOUND", "Option not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotMaintenanceOption):
		return pkg.NewDomainErrorSimple("NOT_MAINTENANCE_OPTION", "Option is not a maintenance option", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOfferIncomplete):
		return pkg.NewDomainErrorSimple("OFFER_INCOMPLETE", "Select a package before accepting the offer", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrDepositFailed):
		return pkg.NewDomainErrorSimple("DEPOSIT_FAILED", "Deposit payment failed", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
