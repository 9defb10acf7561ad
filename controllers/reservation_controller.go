package controllers

import (
	"net/http"
	"strconv"
	"time"

	"gym-backend/services"
	"gym-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{Service: service}
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// GET /api/reservations
func (rc *ReservationController) GetReservations(c *gin.Context) {
	list, err := rc.Service.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GET /api/reservations/:id
func (rc *ReservationController) GetReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	reservation, err := rc.Service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// POST /api/reservations
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var input services.ReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	reservation, err := rc.Service.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, reservation)
}

// PUT /api/reservations/:id
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input services.ReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	reservation, err := rc.Service.Update(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// POST /api/reservations/:id/confirm
func (rc *ReservationController) ConfirmReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	reservation, err := rc.Service.Confirm(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// POST /api/reservations/:id/cancel
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	reservation, err := rc.Service.Cancel(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// POST /api/reservations/:id/complete
func (rc *ReservationController) CompleteReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	reservation, err := rc.Service.Complete(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// DELETE /api/reservations/:id
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := rc.Service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// GET /api/reservations/client/:id
func (rc *ReservationController) GetReservationsByClient(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	list, err := rc.Service.GetByClient(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GET /api/reservations/salle/:id
func (rc *ReservationController) GetReservationsBySalle(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	list, err := rc.Service.GetBySalle(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GET /api/reservations/status/:status
func (rc *ReservationController) GetReservationsByStatus(c *gin.Context) {
	list, err := rc.Service.GetByStatus(c.Param("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GET /api/reservations/between?debut=...&fin=... (RFC 3339)
func (rc *ReservationController) GetReservationsBetween(c *gin.Context) {
	debut, err := time.Parse(time.RFC3339, c.Query("debut"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid debut, expected RFC 3339")
		return
	}
	fin, err := time.Parse(time.RFC3339, c.Query("fin"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid fin, expected RFC 3339")
		return
	}
	list, err := rc.Service.GetBetween(debut, fin)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}
