package controllers

import (
	"net/http"

	"gym-backend/models"
	"gym-backend/services"
	"gym-backend/utils"

	"github.com/gin-gonic/gin"
)

type ClientController struct {
	Service *services.ClientService
}

func NewClientController(service *services.ClientService) *ClientController {
	return &ClientController{Service: service}
}

// GET /api/clients
// Optional filters: ?q= (name search), ?subscription=
func (cc *ClientController) GetClients(c *gin.Context) {
	var (
		clients []models.Client
		err     error
	)

	switch {
	case c.Query("q") != "":
		clients, err = cc.Service.Search(c.Query("q"))
	case c.Query("subscription") != "":
		clients, err = cc.Service.GetBySubscription(c.Query("subscription"))
	default:
		clients, err = cc.Service.GetAll()
	}

	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, clients)
}

// GET /api/clients/:id
func (cc *ClientController) GetClient(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	client, err := cc.Service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, client)
}

// POST /api/clients
func (cc *ClientController) CreateClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := cc.Service.Create(&client); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, client)
}

// PUT /api/clients/:id
func (cc *ClientController) UpdateClient(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var details models.Client
	if err := c.ShouldBindJSON(&details); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	client, err := cc.Service.Update(id, &details)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, client)
}

// DELETE /api/clients/:id
func (cc *ClientController) DeleteClient(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := cc.Service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
