package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/calconv/backend/config"
	"github.com/calconv/backend/internal/domain"
	"github.com/calconv/backend/internal/usecase"
)

// ExpiredInteractionMessage is shown when a convert refers to an unknown interaction
const ExpiredInteractionMessage = "Your search has expired, please search again."

// Converter is the usecase the handlers drive
type Converter interface {
	Search(ctx context.Context, foodName string, calories float64) (*domain.Interaction, error)
	Convert(ctx context.Context, interactionID string, selection int, calories float64) (*domain.Interaction, error)
	ConvertFood(ctx context.Context, foodName string, selection int, calories float64) (*domain.Interaction, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	converter Converter
	calories  config.ConverterConfig
}

// NewHandler creates a new HTTP handler
func NewHandler(converter Converter, calories config.ConverterConfig) *Handler {
	return &Handler{
		converter: converter,
		calories:  calories,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "calconv-backend",
		"version": "1.0.0",
	})
}

// pageData is the view model of the converter page
type pageData struct {
	FoodName    string
	Calories    float64
	MinCalories float64
	MaxCalories float64
	Step        float64
	Interaction *domain.Interaction
	Selected    int
	Conversion  *domain.Conversion
	Error       string
}

func (h *Handler) newPage(foodName string, calories float64) pageData {
	return pageData{
		FoodName:    foodName,
		Calories:    calories,
		MinCalories: h.calories.MinCalories,
		MaxCalories: h.calories.MaxCalories,
		Step:        h.calories.Step,
	}
}

type searchForm struct {
	Food     string   `form:"food"`
	Calories *float64 `form:"calories"`
}

type convertForm struct {
	Interaction string   `form:"interaction" binding:"required"`
	Selection   *int     `form:"selection" binding:"required"`
	Calories    *float64 `form:"calories"`
}

func (h *Handler) caloriesOrDefault(calories *float64) float64 {
	if calories == nil {
		return h.calories.DefaultCalories
	}
	return *calories
}

// Index renders the converter page. With a non-empty food name it also
// runs the search and shows the candidates to choose from.
func (h *Handler) Index(c *gin.Context) {
	var form searchForm
	if err := c.ShouldBindQuery(&form); err != nil {
		page := h.newPage("", h.calories.DefaultCalories)
		page.Error = "Target calories must be a number."
		c.HTML(http.StatusBadRequest, "index.html", page)
		return
	}

	foodName := strings.TrimSpace(form.Food)
	page := h.newPage(foodName, h.caloriesOrDefault(form.Calories))
	if foodName == "" {
		c.HTML(http.StatusOK, "index.html", page)
		return
	}

	interaction, err := h.converter.Search(c.Request.Context(), foodName, page.Calories)
	if err != nil {
		status, message := errorResponse(err)
		page.Error = message
		c.HTML(status, "index.html", page)
		return
	}

	page.Interaction = interaction
	page.Error = interaction.Message
	c.HTML(http.StatusOK, "index.html", page)
}

// ConvertPage handles the confirm action of the converter page
func (h *Handler) ConvertPage(c *gin.Context) {
	var form convertForm
	if err := c.ShouldBind(&form); err != nil {
		page := h.newPage("", h.calories.DefaultCalories)
		page.Error = "Choose a food from the search results first."
		c.HTML(http.StatusBadRequest, "index.html", page)
		return
	}

	calories := h.caloriesOrDefault(form.Calories)
	interaction, err := h.converter.Convert(c.Request.Context(), form.Interaction, *form.Selection, calories)

	page := h.newPage("", calories)
	if interaction != nil {
		page.FoodName = interaction.FoodName
		page.Interaction = interaction
		page.Selected = interaction.Selected
		page.Conversion = interaction.Conversion
	}
	if err != nil {
		status, message := errorResponse(err)
		page.Error = message
		if interaction != nil && interaction.Message != "" {
			page.Error = interaction.Message
		}
		c.HTML(status, "index.html", page)
		return
	}

	c.HTML(http.StatusOK, "index.html", page)
}

// candidateResponse is one selectable search result
type candidateResponse struct {
	Index       int    `json:"index"`
	FdcID       int    `json:"fdcId"`
	Description string `json:"description"`
}

type searchResponse struct {
	InteractionID  string              `json:"interactionId"`
	FoodName       string              `json:"foodName"`
	TargetCalories float64             `json:"targetCalories"`
	Candidates     []candidateResponse `json:"candidates"`
	Message        string              `json:"message,omitempty"`
}

type searchQuery struct {
	Query    string   `form:"query" binding:"required"`
	Calories *float64 `form:"calories"`
}

// SearchFoods handles GET /api/v1/foods/search
func (h *Handler) SearchFoods(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}

	interaction, err := h.converter.Search(c.Request.Context(), q.Query, h.caloriesOrDefault(q.Calories))
	if err != nil {
		status, message := errorResponse(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	candidates := make([]candidateResponse, 0, len(interaction.Candidates))
	for i, cand := range interaction.Candidates {
		candidates = append(candidates, candidateResponse{
			Index:       i,
			FdcID:       cand.FdcID,
			Description: cand.Description,
		})
	}

	c.JSON(http.StatusOK, searchResponse{
		InteractionID:  interaction.ID,
		FoodName:       interaction.FoodName,
		TargetCalories: interaction.TargetCalories,
		Candidates:     candidates,
		Message:        interaction.Message,
	})
}

// ConversionRequest is the body of POST /api/v1/conversions. Either
// InteractionID from a previous search or FoodName must be set.
type ConversionRequest struct {
	InteractionID string  `json:"interactionId"`
	FoodName      string  `json:"foodName"`
	Selection     int     `json:"selection"`
	Calories      float64 `json:"calories" binding:"required"`
}

type conversionResponse struct {
	InteractionID string `json:"interactionId"`
	*domain.Conversion
}

// CreateConversion handles POST /api/v1/conversions
func (h *Handler) CreateConversion(c *gin.Context) {
	var req ConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: calories is required"})
		return
	}

	ctx := c.Request.Context()
	var (
		interaction *domain.Interaction
		err         error
	)
	switch {
	case req.InteractionID != "":
		interaction, err = h.converter.Convert(ctx, req.InteractionID, req.Selection, req.Calories)
	case strings.TrimSpace(req.FoodName) != "":
		interaction, err = h.converter.ConvertFood(ctx, req.FoodName, req.Selection, req.Calories)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "interactionId or foodName is required"})
		return
	}

	if err != nil {
		status, message := errorResponse(err)
		body := gin.H{"error": message}
		if interaction != nil {
			body["interactionId"] = interaction.ID
			if interaction.Message != "" {
				body["error"] = interaction.Message
			}
		}
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, conversionResponse{
		InteractionID: interaction.ID,
		Conversion:    interaction.Conversion,
	})
}

// errorResponse maps a usecase error to a status code and the message
// shown to the user
func errorResponse(err error) (int, string) {
	var missing *domain.MissingCaloriesError
	switch {
	case errors.As(err, &missing):
		return http.StatusUnprocessableEntity, missing.Error()
	case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrInvalidSelection):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInteractionNotFound):
		return http.StatusNotFound, ExpiredInteractionMessage
	case errors.Is(err, domain.ErrNoResults):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrUSDAAPIFailure), errors.Is(err, domain.ErrNutritionixAPIFailure):
		log.Printf("[HTTP] Upstream failure: %v", err)
		return http.StatusBadGateway, usecase.ConversionFailedMessage
	default:
		log.Printf("[HTTP] Unexpected error: %v", err)
		return http.StatusInternalServerError, usecase.ConversionFailedMessage
	}
}
