package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type DestinationsController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationsController(destinationService services.DestinationServiceInterface) *DestinationsController {
	return &DestinationsController{
		destinationService: destinationService,
	}
}

func (dc *DestinationsController) SearchDestinationsHandler(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter 'q' is required")
		return
	}

	destinations, err := dc.destinationService.SearchDestinations(query, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}

func (dc *DestinationsController) PopularDestinationsHandler(c *gin.Context) {
	popular, err := dc.destinationService.GetPopularDestinations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, popular, "Popular destinations fetched successfully")
}

func (dc *DestinationsController) ListAllDestinationsHandler(c *gin.Context) {
	destinations, err := dc.destinationService.GetAllDestinations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}
