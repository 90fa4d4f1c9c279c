package v1

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cfranzen/modelhub"
	"github.com/cfranzen/modelhub/log"
)

type ApiService struct {
	reloader *modelhub.Reloader
}

func NewApiService(reloader *modelhub.Reloader) *ApiService {
	return &ApiService{
		reloader: reloader,
	}
}

func (s *ApiService) Register(g *echo.Group) {
	g.GET("/models", s.ListModels)
	g.GET("/models/:id", s.GetModel)
	g.POST("/reload", s.Reload)
}

type ModelData struct {
	ID           string   `json:"id"`
	Object       string   `json:"object"`
	Provider     string   `json:"provider"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	APIVersion   string   `json:"api_version"`
	Capabilities []string `json:"capabilities"`
	Default      bool     `json:"default"`
}

type ModelList struct {
	Object string      `json:"object"`
	Data   []ModelData `json:"data"`
}

type ReloadResult struct {
	Reloaded bool `json:"reloaded"`
	Models   int  `json:"models"`
}

func (s *ApiService) ListModels(c echo.Context) error {
	reg := s.reloader.Registry()

	list := ModelList{
		Object: "list",
		Data:   []ModelData{},
	}
	for _, info := range reg.Infos() {
		list.Data = append(list.Data, toModelData(reg, info))
	}

	return c.JSON(http.StatusOK, list)
}

func (s *ApiService) GetModel(c echo.Context) error {
	reg := s.reloader.Registry()

	id := c.Param("id")
	info, ok := reg.Info(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("model %s not found", id))
	}

	return c.JSON(http.StatusOK, toModelData(reg, info))
}

func (s *ApiService) Reload(c echo.Context) error {
	reg, err := s.reloader.Reload()
	if err != nil {
		log.Errorw("registry reload fail", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "reload fail")
	}

	log.Infow("registry reloaded", "models", len(reg.ModelIDs()))
	return c.JSON(http.StatusOK, ReloadResult{
		Reloaded: true,
		Models:   len(reg.ModelIDs()),
	})
}

func toModelData(reg *modelhub.Registry, info modelhub.ModelInfo) ModelData {
	return ModelData{
		ID:           info.ID,
		Object:       "model",
		Provider:     info.Provider,
		Name:         info.Name,
		Description:  info.Description,
		APIVersion:   info.APIVersion,
		Capabilities: info.Capabilities,
		Default:      info.ID == reg.DefaultModelID(),
	}
}
