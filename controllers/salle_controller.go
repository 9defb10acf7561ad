package controllers

import (
	"net/http"
	"strconv"
	"time"

	"gym-backend/models"
	"gym-backend/services"
	"gym-backend/utils"

	"github.com/gin-gonic/gin"
)

type SalleController struct {
	Service *services.SalleService
}

func NewSalleController(service *services.SalleService) *SalleController {
	return &SalleController{Service: service}
}

// GET /api/salles
// Optional filters: ?type=, ?minCapacity=, ?maxPrice=, ?available=true
func (sc *SalleController) GetSalles(c *gin.Context) {
	var (
		salles []models.Salle
		err    error
	)

	switch {
	case c.Query("type") != "":
		salles, err = sc.Service.GetByType(c.Query("type"))
	case c.Query("minCapacity") != "":
		capacity, convErr := strconv.Atoi(c.Query("minCapacity"))
		if convErr != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid minCapacity")
			return
		}
		salles, err = sc.Service.GetByMinCapacity(capacity)
	case c.Query("maxPrice") != "":
		price, convErr := strconv.ParseFloat(c.Query("maxPrice"), 64)
		if convErr != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid maxPrice")
			return
		}
		salles, err = sc.Service.GetByMaxPrice(price)
	case c.Query("available") == "true":
		salles, err = sc.Service.GetAvailableFlagged()
	default:
		salles, err = sc.Service.GetAll()
	}

	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, salles)
}

// GET /api/salles/availability?debut=...&fin=... (RFC 3339)
func (sc *SalleController) GetAvailableSalles(c *gin.Context) {
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

	salles, err := sc.Service.FindAvailable(debut, fin)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, salles)
}

// GET /api/salles/:id
func (sc *SalleController) GetSalle(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	salle, err := sc.Service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, salle)
}

// POST /api/salles
func (sc *SalleController) CreateSalle(c *gin.Context) {
	var salle models.Salle
	if err := c.ShouldBindJSON(&salle); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := sc.Service.Create(&salle); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, salle)
}

// PUT /api/salles/:id
func (sc *SalleController) UpdateSalle(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var details models.Salle
	if err := c.ShouldBindJSON(&details); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	salle, err := sc.Service.Update(id, &details)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, salle)
}

// DELETE /api/salles/:id
func (sc *SalleController) DeleteSalle(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := sc.Service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
