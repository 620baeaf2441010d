package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Wjpayne/Inventory-Management/models"
	"github.com/gin-gonic/gin"
)

func ListItems(context *gin.Context) {
	items, err := models.ListItems()
	if err != nil {
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not list items"})
		context.Abort()
		return
	}
	context.JSON(http.StatusOK, items)
}

func CreateItem(context *gin.Context) {
	var payload ItemPayload
	if err := context.ShouldBindJSON(&payload); err != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: "Does not bind schema"})
		context.Abort()
		return
	}

	item := models.Item{
		Name:     payload.Name,
		Quantity: *payload.Quantity,
		Unit:     payload.Unit,
	}
	if err := item.CreateItem(); err != nil {
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not create item"})
		context.Abort()
		return
	}
	context.JSON(http.StatusOK, item)
}

func UpdateItem(context *gin.Context) {
	id, err := parseItemID(context)
	if err != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item id"})
		context.Abort()
		return
	}

	var payload ItemPayload
	if err := context.ShouldBindJSON(&payload); err != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: "Does not bind schema"})
		context.Abort()
		return
	}

	item, err := models.UpdateItem(id, models.ItemFields{
		Name:     payload.Name,
		Quantity: *payload.Quantity,
		Unit:     payload.Unit,
	})
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			context.JSON(http.StatusNotFound, ErrorResponse{Error: "item not found"})
		} else {
			context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not update item"})
		}
		context.Abort()
		return
	}
	context.JSON(http.StatusOK, item)
}

// DeleteItem reports success whether or not the id existed.
func DeleteItem(context *gin.Context) {
	id, err := parseItemID(context)
	if err != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item id"})
		context.Abort()
		return
	}

	if err := models.DeleteItem(id); err != nil {
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not delete item"})
		context.Abort()
		return
	}
	context.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func parseItemID(context *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(context.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
